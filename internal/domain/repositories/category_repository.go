package repositories

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	FindByName(ctx context.Context, name string) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
}
