package dto

import (
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// ReferenceByName identifica uma referência pelo nome único
type ReferenceByName struct {
	Nome string `json:"nome" binding:"required,max=20"`
}

// CreateAthleteRequest representa a requisição para criar um atleta.
// Categoria e centro de treinamento são referenciados pelo nome e
// resolvidos para as chaves estrangeiras antes do insert.
type CreateAthleteRequest struct {
	Nome              string          `json:"nome" binding:"required,max=50"`
	CPF               string          `json:"cpf" binding:"required,cpf"`
	Idade             int             `json:"idade" binding:"required,gt=0"`
	Peso              float64         `json:"peso" binding:"required,gt=0"`
	Altura            float64         `json:"altura" binding:"required,gt=0"`
	Sexo              string          `json:"sexo" binding:"required,oneof=M F"`
	Categoria         ReferenceByName `json:"categoria" binding:"required"`
	CentroTreinamento ReferenceByName `json:"centro_treinamento" binding:"required"`
}

// UpdateAthleteRequest representa a requisição de atualização parcial.
// Presença (ponteiro não-nil), e não nulabilidade, determina quais campos
// serão alterados. As chaves estrangeiras são atribuídas diretamente,
// sem re-resolução por nome.
type UpdateAthleteRequest struct {
	Nome                *string  `json:"nome" binding:"omitempty,max=50"`
	CPF                 *string  `json:"cpf" binding:"omitempty,cpf"`
	Idade               *int     `json:"idade" binding:"omitempty,gt=0"`
	Peso                *float64 `json:"peso" binding:"omitempty,gt=0"`
	Altura              *float64 `json:"altura" binding:"omitempty,gt=0"`
	Sexo                *string  `json:"sexo" binding:"omitempty,oneof=M F"`
	CategoriaID         *uint    `json:"categoria_id" binding:"omitempty,gt=0"`
	CentroTreinamentoID *uint    `json:"centro_treinamento_id" binding:"omitempty,gt=0"`
}

// ListAthletesQuery representa os parâmetros de consulta da listagem
type ListAthletesQuery struct {
	Nome   string `form:"nome" binding:"omitempty,max=50"`
	CPF    string `form:"cpf" binding:"omitempty,cpf"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset int    `form:"offset" binding:"omitempty,gte=0"`
}

// AthleteResponse representa a resposta completa de um atleta
type AthleteResponse struct {
	ID                uint                    `json:"id"`
	Nome              string                  `json:"nome"`
	CPF               string                  `json:"cpf"`
	Idade             int                     `json:"idade"`
	Peso              float64                 `json:"peso"`
	Altura            float64                 `json:"altura"`
	Sexo              string                  `json:"sexo"`
	Categoria         *CategoryResponse       `json:"categoria,omitempty"`
	CentroTreinamento *TrainingCenterResponse `json:"centro_treinamento,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

// AthleteSummaryResponse é a projeção usada na listagem
type AthleteSummaryResponse struct {
	Nome              string `json:"nome"`
	Categoria         string `json:"categoria"`
	CentroTreinamento string `json:"centro_treinamento"`
}

// ToAthleteResponse converte uma entidade Athlete para AthleteResponse
func ToAthleteResponse(athlete *entities.Athlete) AthleteResponse {
	response := AthleteResponse{
		ID:        athlete.ID,
		Nome:      athlete.Name,
		CPF:       athlete.CPF,
		Idade:     athlete.Age,
		Peso:      athlete.Weight,
		Altura:    athlete.Height,
		Sexo:      athlete.Sex,
		CreatedAt: athlete.CreatedAt,
	}

	if athlete.Category != nil {
		category := ToCategoryResponse(athlete.Category)
		response.Categoria = &category
	}
	if athlete.TrainingCenter != nil {
		center := ToTrainingCenterResponse(athlete.TrainingCenter)
		response.CentroTreinamento = &center
	}

	return response
}

// ToAthleteSummaryResponse projeta uma entidade para a forma de listagem.
// Referências não carregadas viram string vazia.
func ToAthleteSummaryResponse(athlete *entities.Athlete) AthleteSummaryResponse {
	return AthleteSummaryResponse{
		Nome:              athlete.Name,
		Categoria:         athlete.CategoryName(),
		CentroTreinamento: athlete.TrainingCenterName(),
	}
}

// ToAthleteSummaryResponses projeta uma lista de entidades
func ToAthleteSummaryResponses(athletes []*entities.Athlete) []AthleteSummaryResponse {
	responses := make([]AthleteSummaryResponse, len(athletes))
	for i, athlete := range athletes {
		responses[i] = ToAthleteSummaryResponse(athlete)
	}
	return responses
}
