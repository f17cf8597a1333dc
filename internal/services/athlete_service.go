package services

import (
	"context"
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// AthleteService contém a lógica de negócio para atletas
type AthleteService struct {
	athleteRepo  repositories.AthleteRepository
	categoryRepo repositories.CategoryRepository
	centerRepo   repositories.TrainingCenterRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewAthleteService cria um novo AthleteService
func NewAthleteService(
	athleteRepo repositories.AthleteRepository,
	categoryRepo repositories.CategoryRepository,
	centerRepo repositories.TrainingCenterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AthleteService {
	return &AthleteService{
		athleteRepo:  athleteRepo,
		categoryRepo: categoryRepo,
		centerRepo:   centerRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateAthleteInput representa os dados para criar um atleta.
// Categoria e centro de treinamento chegam como nomes e são resolvidos
// para as chaves estrangeiras antes do insert.
type CreateAthleteInput struct {
	Name               string
	CPF                string
	Age                int
	Weight             float64
	Height             float64
	Sex                string
	CategoryName       string
	TrainingCenterName string
}

// UpdateAthleteInput representa uma atualização parcial: apenas campos
// com ponteiro não-nil são aplicados. As chaves estrangeiras são
// atribuídas diretamente, sem re-resolução por nome.
type UpdateAthleteInput struct {
	Name             *string
	CPF              *string
	Age              *int
	Weight           *float64
	Height           *float64
	Sex              *string
	CategoryID       *uint
	TrainingCenterID *uint
}

// CreateAthlete resolve as referências por nome, monta o registro com
// timestamp do servidor e persiste dentro de uma transação.
func (s *AthleteService) CreateAthlete(ctx context.Context, input CreateAthleteInput) (*entities.Athlete, error) {
	s.logger.Info("creating athlete", "nome", input.Name, "cpf", input.CPF)

	category, err := s.categoryRepo.FindByName(ctx, input.CategoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}

	center, err := s.centerRepo.FindByName(ctx, input.TrainingCenterName)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, domainerrors.ErrTrainingCenterNotFound
	}

	athlete := &entities.Athlete{
		Name:             input.Name,
		CPF:              input.CPF,
		Age:              input.Age,
		Weight:           input.Weight,
		Height:           input.Height,
		Sex:              input.Sex,
		CategoryID:       category.ID,
		TrainingCenterID: center.ID,
		// Timestamp atribuído pelo servidor, nunca pelo cliente
		CreatedAt: time.Now().UTC(),
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.athleteRepo.Create(txCtx, athlete)
	})
	if err != nil {
		return nil, err
	}

	athlete.Category = category
	athlete.TrainingCenter = center
	return athlete, nil
}

// GetAthlete busca um atleta por id
func (s *AthleteService) GetAthlete(ctx context.Context, id uint) (*entities.Athlete, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, domainerrors.ErrAthleteNotFound
	}
	return athlete, nil
}

// UpdateAthlete carrega o registro, aplica apenas os campos presentes
// no payload e persiste dentro de uma transação.
func (s *AthleteService) UpdateAthlete(ctx context.Context, id uint, input UpdateAthleteInput) (*entities.Athlete, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, domainerrors.ErrAthleteNotFound
	}

	if input.Name != nil {
		athlete.Name = *input.Name
	}
	if input.CPF != nil {
		athlete.CPF = *input.CPF
	}
	if input.Age != nil {
		athlete.Age = *input.Age
	}
	if input.Weight != nil {
		athlete.Weight = *input.Weight
	}
	if input.Height != nil {
		athlete.Height = *input.Height
	}
	if input.Sex != nil {
		athlete.Sex = *input.Sex
	}
	if input.CategoryID != nil {
		athlete.CategoryID = *input.CategoryID
	}
	if input.TrainingCenterID != nil {
		athlete.TrainingCenterID = *input.TrainingCenterID
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.athleteRepo.Update(txCtx, athlete)
	})
	if err != nil {
		return nil, err
	}

	// Recarregar para resolver as referências após possível troca de FK
	updated, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return athlete, nil
	}
	return updated, nil
}

// DeleteAthlete remove o atleta permanentemente (hard delete)
func (s *AthleteService) DeleteAthlete(ctx context.Context, id uint) error {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if athlete == nil {
		return domainerrors.ErrAthleteNotFound
	}

	s.logger.Info("deleting athlete", "id", id)

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.athleteRepo.Delete(txCtx, id)
	})
}

// ListAthletes materializa todos os atletas que satisfazem os filtros,
// com as referências carregadas para projeção na listagem
func (s *AthleteService) ListAthletes(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	return s.athleteRepo.List(ctx, filters)
}
