package entities

import "time"

// TrainingCenter representa um centro de treinamento
type TrainingCenter struct {
	ID        uint
	Name      string
	Address   string
	Owner     string
	CreatedAt time.Time
}
