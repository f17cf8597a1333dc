package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// AthleteRepository implementa repositories.AthleteRepository
type AthleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository cria um novo AthleteRepository
func NewAthleteRepository(db *gorm.DB) repositories.AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) Create(ctx context.Context, athlete *entities.Athlete) error {
	model := r.toModel(athlete)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translateError(err)
	}

	athlete.ID = model.ID
	return nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id uint) (*entities.Athlete, error) {
	var model AthleteModel

	db := r.getDB(ctx)
	// Preload das referências para que a resposta resolva os nomes
	if err := db.Preload("Category").Preload("TrainingCenter").
		Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AthleteRepository) Update(ctx context.Context, athlete *entities.Athlete) error {
	model := r.toModel(athlete)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *AthleteRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Hard delete: sem tombstone
	return db.Where("id = ?", id).Delete(&AthleteModel{}).Error
}

func (r *AthleteRepository) List(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	var models []*AthleteModel

	db := r.getDB(ctx)
	query := db.Model(&AthleteModel{}).
		Preload("Category").
		Preload("TrainingCenter")

	// Filtros conjuntivos
	if filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Name+"%")
	}
	if filters.CPF != "" {
		query = query.Where("cpf = ?", filters.CPF)
	}

	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	athletes := make([]*entities.Athlete, 0, len(models))
	for _, model := range models {
		athletes = append(athletes, r.toEntity(model))
	}
	return athletes, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *AthleteRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *AthleteRepository) toModel(athlete *entities.Athlete) *AthleteModel {
	return &AthleteModel{
		ID:               athlete.ID,
		Name:             athlete.Name,
		CPF:              athlete.CPF,
		Age:              athlete.Age,
		Weight:           athlete.Weight,
		Height:           athlete.Height,
		Sex:              athlete.Sex,
		CategoryID:       athlete.CategoryID,
		TrainingCenterID: athlete.TrainingCenterID,
		CreatedAt:        athlete.CreatedAt.Unix(),
	}
}

func (r *AthleteRepository) toEntity(model *AthleteModel) *entities.Athlete {
	athlete := &entities.Athlete{
		ID:               model.ID,
		Name:             model.Name,
		CPF:              model.CPF,
		Age:              model.Age,
		Weight:           model.Weight,
		Height:           model.Height,
		Sex:              model.Sex,
		CategoryID:       model.CategoryID,
		TrainingCenterID: model.TrainingCenterID,
		CreatedAt:        time.Unix(model.CreatedAt, 0).UTC(),
	}

	if model.Category != nil {
		athlete.Category = &entities.Category{
			ID:        model.Category.ID,
			Name:      model.Category.Name,
			CreatedAt: time.Unix(model.Category.CreatedAt, 0).UTC(),
		}
	}
	if model.TrainingCenter != nil {
		athlete.TrainingCenter = &entities.TrainingCenter{
			ID:        model.TrainingCenter.ID,
			Name:      model.TrainingCenter.Name,
			Address:   model.TrainingCenter.Address,
			Owner:     model.TrainingCenter.Owner,
			CreatedAt: time.Unix(model.TrainingCenter.CreatedAt, 0).UTC(),
		}
	}

	return athlete
}
