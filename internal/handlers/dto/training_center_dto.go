package dto

import (
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CreateTrainingCenterRequest representa a requisição para criar um
// centro de treinamento
type CreateTrainingCenterRequest struct {
	Nome         string `json:"nome" binding:"required,max=20"`
	Endereco     string `json:"endereco" binding:"required,max=60"`
	Proprietario string `json:"proprietario" binding:"required,max=30"`
}

// TrainingCenterResponse representa a resposta de um centro de treinamento
type TrainingCenterResponse struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco,omitempty"`
	Proprietario string    `json:"proprietario,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToTrainingCenterResponse converte uma entidade TrainingCenter
func ToTrainingCenterResponse(center *entities.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:           center.ID,
		Nome:         center.Name,
		Endereco:     center.Address,
		Proprietario: center.Owner,
		CreatedAt:    center.CreatedAt,
	}
}

// ToTrainingCenterResponses converte uma lista de entidades TrainingCenter
func ToTrainingCenterResponses(centers []*entities.TrainingCenter) []TrainingCenterResponse {
	responses := make([]TrainingCenterResponse, len(centers))
	for i, center := range centers {
		responses[i] = ToTrainingCenterResponse(center)
	}
	return responses
}
