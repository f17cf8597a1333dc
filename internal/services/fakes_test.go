package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// Fakes em memória com a mesma semântica de erros tipados da camada
// de persistência real (ErrCPFAlreadyExists, ErrNameAlreadyExists).

type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[uint]*entities.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Name == category.Name {
			return domainerrors.ErrNameAlreadyExists
		}
	}
	r.nextID++
	category.ID = r.nextID
	clone := *category
	r.byID[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.byID {
		if category.Name == name {
			clone := *category
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entities.Category, 0, len(r.byID))
	for id := uint(1); id <= r.nextID; id++ {
		if category, ok := r.byID[id]; ok {
			clone := *category
			result = append(result, &clone)
		}
	}
	return result, nil
}

type fakeTrainingCenterRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.TrainingCenter
}

func newFakeTrainingCenterRepo() *fakeTrainingCenterRepo {
	return &fakeTrainingCenterRepo{byID: make(map[uint]*entities.TrainingCenter)}
}

func (r *fakeTrainingCenterRepo) Create(_ context.Context, center *entities.TrainingCenter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Name == center.Name {
			return domainerrors.ErrNameAlreadyExists
		}
	}
	r.nextID++
	center.ID = r.nextID
	clone := *center
	r.byID[center.ID] = &clone
	return nil
}

func (r *fakeTrainingCenterRepo) FindByID(_ context.Context, id uint) (*entities.TrainingCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	center, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *center
	return &clone, nil
}

func (r *fakeTrainingCenterRepo) FindByName(_ context.Context, name string) (*entities.TrainingCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, center := range r.byID {
		if center.Name == name {
			clone := *center
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTrainingCenterRepo) List(_ context.Context) ([]*entities.TrainingCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entities.TrainingCenter, 0, len(r.byID))
	for id := uint(1); id <= r.nextID; id++ {
		if center, ok := r.byID[id]; ok {
			clone := *center
			result = append(result, &clone)
		}
	}
	return result, nil
}

type fakeAthleteRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.Athlete

	categories *fakeCategoryRepo
	centers    *fakeTrainingCenterRepo

	// failWith força o próximo Create/Update a falhar com esse erro
	failWith error
}

func newFakeAthleteRepo(categories *fakeCategoryRepo, centers *fakeTrainingCenterRepo) *fakeAthleteRepo {
	return &fakeAthleteRepo{
		byID:       make(map[uint]*entities.Athlete),
		categories: categories,
		centers:    centers,
	}
}

func (r *fakeAthleteRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *fakeAthleteRepo) Create(_ context.Context, athlete *entities.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.byID {
		if existing.CPF == athlete.CPF {
			return domainerrors.ErrCPFAlreadyExists
		}
	}
	r.nextID++
	athlete.ID = r.nextID
	clone := *athlete
	clone.Category = nil
	clone.TrainingCenter = nil
	r.byID[athlete.ID] = &clone
	return nil
}

func (r *fakeAthleteRepo) FindByID(ctx context.Context, id uint) (*entities.Athlete, error) {
	r.mu.Lock()
	athlete, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return nil, nil
	}
	clone := *athlete
	r.mu.Unlock()

	r.loadReferences(ctx, &clone)
	return &clone, nil
}

func (r *fakeAthleteRepo) Update(_ context.Context, athlete *entities.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.byID {
		if existing.ID != athlete.ID && existing.CPF == athlete.CPF {
			return domainerrors.ErrCPFAlreadyExists
		}
	}
	clone := *athlete
	clone.Category = nil
	clone.TrainingCenter = nil
	r.byID[athlete.ID] = &clone
	return nil
}

func (r *fakeAthleteRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *fakeAthleteRepo) List(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	r.mu.Lock()
	matched := make([]*entities.Athlete, 0, len(r.byID))
	for id := uint(1); id <= r.nextID; id++ {
		athlete, ok := r.byID[id]
		if !ok {
			continue
		}
		if filters.Name != "" && !strings.Contains(strings.ToLower(athlete.Name), strings.ToLower(filters.Name)) {
			continue
		}
		if filters.CPF != "" && athlete.CPF != filters.CPF {
			continue
		}
		clone := *athlete
		matched = append(matched, &clone)
	}
	r.mu.Unlock()

	for _, athlete := range matched {
		r.loadReferences(ctx, athlete)
	}
	return matched, nil
}

func (r *fakeAthleteRepo) loadReferences(ctx context.Context, athlete *entities.Athlete) {
	if category, _ := r.categories.FindByID(ctx, athlete.CategoryID); category != nil {
		athlete.Category = category
	}
	if center, _ := r.centers.FindByID(ctx, athlete.TrainingCenterID); center != nil {
		athlete.TrainingCenter = center
	}
}

// fakeUnitOfWork executa fn diretamente; os fakes de repository já são
// atômicos por operação
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

func (l nopLogger) With(...any) ports.Logger { return l }
