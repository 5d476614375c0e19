package entity

import "time"

// Review es un testimonio público sobre la plataforma.
type Review struct {
	ID        string // uuid
	Name      string
	Email     string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
