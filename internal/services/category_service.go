package services

import (
	"context"
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// CategoryService contém a lógica de negócio para categorias
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateCategory persiste uma nova categoria dentro de uma transação
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	s.logger.Info("creating category", "nome", name)

	category := &entities.Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.categoryRepo.Create(txCtx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory busca uma categoria por id
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}
	return category, nil
}

// ListCategories lista todas as categorias
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx)
}
