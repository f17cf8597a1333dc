package services

import (
	"context"
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// TrainingCenterService contém a lógica de negócio para centros de treinamento
type TrainingCenterService struct {
	centerRepo repositories.TrainingCenterRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewTrainingCenterService cria um novo TrainingCenterService
func NewTrainingCenterService(
	centerRepo repositories.TrainingCenterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *TrainingCenterService {
	return &TrainingCenterService{
		centerRepo: centerRepo,
		uow:        uow,
		logger:     logger,
	}
}

// CreateTrainingCenterInput representa os dados para criar um centro
type CreateTrainingCenterInput struct {
	Name    string
	Address string
	Owner   string
}

// CreateTrainingCenter persiste um novo centro dentro de uma transação
func (s *TrainingCenterService) CreateTrainingCenter(ctx context.Context, input CreateTrainingCenterInput) (*entities.TrainingCenter, error) {
	s.logger.Info("creating training center", "nome", input.Name)

	center := &entities.TrainingCenter{
		Name:      input.Name,
		Address:   input.Address,
		Owner:     input.Owner,
		CreatedAt: time.Now().UTC(),
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.centerRepo.Create(txCtx, center)
	})
	if err != nil {
		return nil, err
	}
	return center, nil
}

// GetTrainingCenter busca um centro por id
func (s *TrainingCenterService) GetTrainingCenter(ctx context.Context, id uint) (*entities.TrainingCenter, error) {
	center, err := s.centerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, domainerrors.ErrTrainingCenterNotFound
	}
	return center, nil
}

// ListTrainingCenters lista todos os centros de treinamento
func (s *TrainingCenterService) ListTrainingCenters(ctx context.Context) ([]*entities.TrainingCenter, error) {
	return s.centerRepo.List(ctx)
}
