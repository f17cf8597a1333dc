package repositories

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// AthleteRepository define a interface para persistência de atletas
type AthleteRepository interface {
	Create(ctx context.Context, athlete *entities.Athlete) error
	FindByID(ctx context.Context, id uint) (*entities.Athlete, error)
	Update(ctx context.Context, athlete *entities.Athlete) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters AthleteFilters) ([]*entities.Athlete, error)
}

// AthleteFilters contém filtros para listagem de atletas.
// Os filtros são conjuntivos quando presentes; vazio significa sem filtro.
type AthleteFilters struct {
	Name string // substring, case-insensitive
	CPF  string // igualdade exata (11 dígitos)
}
