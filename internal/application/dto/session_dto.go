package dto

// SessionRequest entrada para emitir la cookie de sesión (solo email).
type SessionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionResponse salida de emisión de sesión.
type SessionResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// LogoutResponse salida de cierre de sesión.
type LogoutResponse struct {
	Success bool `json:"success"`
}
