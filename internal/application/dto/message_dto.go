package dto

import "time"

// CreateMessageRequest entrada para enviar un mensaje de contacto.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// MessageResponse salida de un mensaje de contacto.
type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
