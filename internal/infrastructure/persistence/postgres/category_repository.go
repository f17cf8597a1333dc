package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := &CategoryModel{
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Unix(),
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translateError(err)
	}

	category.ID = model.ID
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	var model CategoryModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	var model CategoryModel

	db := r.getDB(ctx)
	// Resolução por nome: igualdade exata, nome é único
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := r.getDB(ctx)
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, r.toEntity(model))
	}
	return categories, nil
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *CategoryRepository) toEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
	}
}
