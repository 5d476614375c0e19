package entity

import "time"

// Message es un mensaje de contacto enviado desde el sitio público.
type Message struct {
	ID        string // uuid
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}
