package dto

import (
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CreateCategoryRequest representa a requisição para criar uma categoria
type CreateCategoryRequest struct {
	Nome string `json:"nome" binding:"required,max=10"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Nome:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryResponses converte uma lista de entidades Category
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
