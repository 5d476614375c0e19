package auth

import (
	"github.com/jhoicas/nomina-api/internal/application/dto"
	"github.com/jhoicas/nomina-api/pkg/jwt"
)

// JWTConfig configuración para emisión de sesiones.
type JWTConfig struct {
	Secret string
	Issuer string
}

// SessionUseCase emite la credencial de sesión. La identidad llega ya verificada
// por el proveedor de identidad del frontend; aquí solo se firma el email.
// No hay estado de sesión en el servidor: revocar = borrar la cookie o esperar
// la expiración.
type SessionUseCase struct {
	cfg JWTConfig
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(cfg JWTConfig) *SessionUseCase {
	return &SessionUseCase{cfg: cfg}
}

// Issue firma un token de sesión de 1 hora para el email dado.
func (uc *SessionUseCase) Issue(in dto.SessionRequest) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, in.Email, uc.cfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, Message: "sesión iniciada"}, nil
}
