package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// TrainingCenterRepository implementa repositories.TrainingCenterRepository
type TrainingCenterRepository struct {
	db *gorm.DB
}

// NewTrainingCenterRepository cria um novo TrainingCenterRepository
func NewTrainingCenterRepository(db *gorm.DB) repositories.TrainingCenterRepository {
	return &TrainingCenterRepository{db: db}
}

func (r *TrainingCenterRepository) Create(ctx context.Context, center *entities.TrainingCenter) error {
	model := &TrainingCenterModel{
		Name:      center.Name,
		Address:   center.Address,
		Owner:     center.Owner,
		CreatedAt: center.CreatedAt.Unix(),
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translateError(err)
	}

	center.ID = model.ID
	return nil
}

func (r *TrainingCenterRepository) FindByID(ctx context.Context, id uint) (*entities.TrainingCenter, error) {
	var model TrainingCenterModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TrainingCenterRepository) FindByName(ctx context.Context, name string) (*entities.TrainingCenter, error) {
	var model TrainingCenterModel

	db := r.getDB(ctx)
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TrainingCenterRepository) List(ctx context.Context) ([]*entities.TrainingCenter, error) {
	var models []*TrainingCenterModel

	db := r.getDB(ctx)
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	centers := make([]*entities.TrainingCenter, 0, len(models))
	for _, model := range models {
		centers = append(centers, r.toEntity(model))
	}
	return centers, nil
}

func (r *TrainingCenterRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *TrainingCenterRepository) toEntity(model *TrainingCenterModel) *entities.TrainingCenter {
	return &entities.TrainingCenter{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Owner:     model.Owner,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
	}
}
