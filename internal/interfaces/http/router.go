package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nomina-api/internal/application/auth"
	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/application/usecase"
	"github.com/jhoicas/nomina-api/pkg/config"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC    *auth.SessionUseCase
	UserUC       *usecase.UserUseCase
	WorksheetUC  *usecase.WorksheetUseCase
	PayrollUC    *payroll.PayrollUseCase
	ReviewUC     *usecase.ReviewUseCase
	MessageUC    *usecase.MessageUseCase
	Log          *logger.Logger
	JWTSecret    string
	Cookie       config.CookieConfig
	StoreTimeout time.Duration
}

// Router registra las rutas de la API.
//
// Dos puertas componen la autorización: AuthMiddleware establece identidad
// desde la cookie y RequireAdmin exige rol admin resuelto contra la base.
// Las rutas con parámetro :email se registran después de sus hermanas con
// segmento fijo (verified, role, admin, fired) para que Fiber no capture
// esos segmentos como email.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGate := AuthMiddleware(deps.JWTSecret, deps.Cookie.Name)
	adminGate := RequireAdmin(deps.UserUC, deps.Log, deps.StoreTimeout)

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.Cookie)
	api.Post("/jwt", sessionHandler.IssueToken)
	api.Post("/logout", sessionHandler.Logout)

	// Cuentas
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log, deps.StoreTimeout)
	users.Post("/", userHandler.Register) // registro público; 409 en duplicado
	users.Get("/", authGate, adminGate, userHandler.List)
	users.Get("/verified", authGate, adminGate, userHandler.ListVerified)
	users.Get("/role/:email", authGate, userHandler.GetRole)
	users.Get("/admin/:email", authGate, userHandler.GetAdmin)
	users.Get("/fired/:email", authGate, userHandler.GetFired)
	users.Get("/:email", authGate, userHandler.GetByEmail)
	users.Patch("/verify/:email", authGate, userHandler.Verify)
	// Despedir exige admin: la variante sin puerta es un defecto conocido,
	// no un contrato a preservar.
	users.Patch("/fired/:email", authGate, adminGate, userHandler.Fire)
	users.Patch("/:email", authGate, userHandler.Update)

	// Entradas de trabajo (protegido)
	worksheets := api.Group("/worksheets", authGate)
	worksheetHandler := NewWorksheetHandler(deps.WorksheetUC, deps.UserUC, deps.Log, deps.StoreTimeout)
	worksheets.Post("/", worksheetHandler.Create)
	worksheets.Get("/", adminGate, worksheetHandler.List)
	worksheets.Get("/:email", worksheetHandler.ListByEmail)

	// Pagos de nómina (protegido)
	payments := api.Group("/payments", authGate)
	paymentHandler := NewPaymentHandler(deps.PayrollUC, deps.UserUC, deps.Log, deps.StoreTimeout)
	payments.Post("/", adminGate, paymentHandler.Create)
	payments.Get("/:id/payslip", paymentHandler.Payslip)
	payments.Get("/:email", paymentHandler.ListByEmail)

	// Testimonios (público)
	reviews := api.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC, deps.Log, deps.StoreTimeout)
	reviews.Post("/", reviewHandler.Create)
	reviews.Get("/", reviewHandler.List)

	// Mensajes de contacto
	messages := api.Group("/messages")
	messageHandler := NewMessageHandler(deps.MessageUC, deps.Log, deps.StoreTimeout)
	messages.Post("/", messageHandler.Create)
	messages.Get("/", authGate, adminGate, messageHandler.List)
}
