package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/nomina-api/internal/application/auth"
	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/application/usecase"
	"github.com/jhoicas/nomina-api/internal/infrastructure/payments"
	infrapdf "github.com/jhoicas/nomina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/nomina-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/nomina-api/internal/interfaces/http"
	"github.com/jhoicas/nomina-api/pkg/config"
	"github.com/jhoicas/nomina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	worksheetRepo := postgres.NewWorksheetRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionUC := auth.NewSessionUseCase(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	worksheetUC := usecase.NewWorksheetUseCase(worksheetRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo)

	// Procesador de pagos: con PAYMENTS_API_KEY vacío opera en modo simulado,
	// sin llamadas de red.
	intentClient := payments.NewIntentClient(cfg.Payments.APIURL, cfg.Payments.APIKey)
	payslipGen := infrapdf.NewMarotoPayslipGenerator(cfg.App.Name)
	payrollUC := payroll.NewPayrollUseCase(txRunner, userRepo, paymentRepo, intentClient, payslipGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// El frontend manda la cookie de sesión: credentials obligatorio y
	// orígenes explícitos, nunca comodín.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.CORSOrigins, ","),
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nómina Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:    sessionUC,
		UserUC:       userUC,
		WorksheetUC:  worksheetUC,
		PayrollUC:    payrollUC,
		ReviewUC:     reviewUC,
		MessageUC:    messageUC,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		Cookie:       cfg.Cookie,
		StoreTimeout: cfg.DB.Timeout,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
