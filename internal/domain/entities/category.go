package entities

import "time"

// Category representa uma categoria de treino (ex: Scale, RX)
type Category struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}
