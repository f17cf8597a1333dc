package http

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/handlers/middleware"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
	"github.com/rafabene/workout-api/internal/services"
)

var registerValidationsOnce sync.Once

// setupTestLocales grava os arquivos de tradução usados pelas respostas
// de erro dos handlers
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	ptContent := `{
  "error.validation.title": "Erro de validação",
  "error.validation.detail": "Um ou mais campos da requisição são inválidos",
  "error.bad_request.title": "Requisição inválida",
  "error.not_found.title": "Recurso não encontrado",
  "error.athlete_not_found.detail": "Atleta não encontrado no id: {{.ID}}",
  "error.category_not_found.detail": "A categoria {{.Nome}} não foi encontrada.",
  "error.category_id_not_found.detail": "Categoria não encontrada no id: {{.ID}}",
  "error.training_center_not_found.detail": "O centro de treinamento {{.Nome}} não foi encontrado.",
  "error.training_center_id_not_found.detail": "Centro de treinamento não encontrado no id: {{.ID}}",
  "error.duplicate.title": "Registro duplicado",
  "error.duplicate_cpf.detail": "Já existe um atleta cadastrado com o cpf: {{.CPF}}",
  "error.duplicate_category.detail": "Já existe uma categoria com o nome: {{.Nome}}",
  "error.duplicate_training_center.detail": "Já existe um centro de treinamento com o nome: {{.Nome}}",
  "error.internal.title": "Erro interno",
  "error.internal.detail": "Ocorreu um erro ao processar a requisição",
  "error.storage.detail": "Ocorreu um erro ao inserir os dados no banco"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0o600); err != nil {
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	return tmpDir
}

type testEnv struct {
	router       *gin.Engine
	athleteRepo  *memAthleteRepo
	categoryRepo *memCategoryRepo
	centerRepo   *memCenterRepo
}

// setupTestServer monta o router completo sobre repositories em memória,
// com a mesma cadeia de middlewares do binário
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	registerValidationsOnce.Do(func() {
		if err := dto.RegisterCustomValidations(); err != nil {
			t.Fatalf("failed to register validations: %v", err)
		}
	})

	i18nService, err := i18n.NewService(setupTestLocales(t), "pt-BR")
	if err != nil {
		t.Fatalf("failed to initialize i18n: %v", err)
	}

	categoryRepo := newMemCategoryRepo()
	centerRepo := newMemCenterRepo()
	athleteRepo := newMemAthleteRepo(categoryRepo, centerRepo)
	uow := memUnitOfWork{}
	logger := testLogger{}

	athleteService := services.NewAthleteService(athleteRepo, categoryRepo, centerRepo, uow, logger)
	categoryService := services.NewCategoryService(categoryRepo, uow, logger)
	centerService := services.NewTrainingCenterService(centerRepo, uow, logger)

	athleteHandler := NewAthleteHandler(athleteService)
	categoryHandler := NewCategoryHandler(categoryService)
	centerHandler := NewTrainingCenterHandler(centerService)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

	v1 := router.Group("/api/v1")
	{
		atletas := v1.Group("/atletas")
		{
			atletas.POST("", athleteHandler.CreateAthlete)
			atletas.GET("", athleteHandler.ListAthletes)
			atletas.GET("/:id", athleteHandler.GetAthlete)
			atletas.PATCH("/:id", athleteHandler.UpdateAthlete)
			atletas.DELETE("/:id", athleteHandler.DeleteAthlete)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoryHandler.CreateCategory)
			categorias.GET("", categoryHandler.ListCategories)
			categorias.GET("/:id", categoryHandler.GetCategory)
		}

		centros := v1.Group("/centros_treinamento")
		{
			centros.POST("", centerHandler.CreateTrainingCenter)
			centros.GET("", centerHandler.ListTrainingCenters)
			centros.GET("/:id", centerHandler.GetTrainingCenter)
		}
	}

	return &testEnv{
		router:       router,
		athleteRepo:  athleteRepo,
		categoryRepo: categoryRepo,
		centerRepo:   centerRepo,
	}
}

// seedReferences cadastra a categoria e o centro usados nos cenários
func (e *testEnv) seedReferences(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if err := e.categoryRepo.Create(ctx, &entities.Category{Name: "CrossFit"}); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	if err := e.centerRepo.Create(ctx, &entities.TrainingCenter{
		Name:    "CT Centro",
		Address: "Rua X, 123",
		Owner:   "Marcos",
	}); err != nil {
		t.Fatalf("failed to seed training center: %v", err)
	}
}

// Repositories em memória com erros tipados da camada real

type memCategoryRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: make(map[uint]*entities.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, category *entities.Category) error {
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

func (r *memCategoryRepo) FindByID(_ context.Context, id uint) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *category
	return &clone, nil
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*entities.Category, error) {
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

func (r *memCategoryRepo) List(_ context.Context) ([]*entities.Category, error) {
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

type memCenterRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.TrainingCenter
}

func newMemCenterRepo() *memCenterRepo {
	return &memCenterRepo{byID: make(map[uint]*entities.TrainingCenter)}
}

func (r *memCenterRepo) Create(_ context.Context, center *entities.TrainingCenter) error {
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

func (r *memCenterRepo) FindByID(_ context.Context, id uint) (*entities.TrainingCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	center, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *center
	return &clone, nil
}

func (r *memCenterRepo) FindByName(_ context.Context, name string) (*entities.TrainingCenter, error) {
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

func (r *memCenterRepo) List(_ context.Context) ([]*entities.TrainingCenter, error) {
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

type memAthleteRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*entities.Athlete

	categories *memCategoryRepo
	centers    *memCenterRepo

	// failCreate força o próximo Create a falhar com esse erro
	failCreate error
}

func newMemAthleteRepo(categories *memCategoryRepo, centers *memCenterRepo) *memAthleteRepo {
	return &memAthleteRepo{
		byID:       make(map[uint]*entities.Athlete),
		categories: categories,
		centers:    centers,
	}
}

func (r *memAthleteRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *memAthleteRepo) Create(_ context.Context, athlete *entities.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate != nil {
		return r.failCreate
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

func (r *memAthleteRepo) FindByID(ctx context.Context, id uint) (*entities.Athlete, error) {
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

func (r *memAthleteRepo) Update(_ context.Context, athlete *entities.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

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

func (r *memAthleteRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *memAthleteRepo) List(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
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

func (r *memAthleteRepo) loadReferences(ctx context.Context, athlete *entities.Athlete) {
	if category, _ := r.categories.FindByID(ctx, athlete.CategoryID); category != nil {
		athlete.Category = category
	}
	if center, _ := r.centers.FindByID(ctx, athlete.TrainingCenterID); center != nil {
		athlete.TrainingCenter = center
	}
}

type memUnitOfWork struct{}

func (memUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (memUnitOfWork) Commit(context.Context) error { return nil }
func (memUnitOfWork) Rollback(context.Context) error { return nil }
func (memUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type testLogger struct{}

func (testLogger) Info(string, ...any)  {}
func (testLogger) Error(string, ...any) {}
func (testLogger) Debug(string, ...any) {}
func (testLogger) Warn(string, ...any)  {}

func (l testLogger) With(...any) ports.Logger { return l }
