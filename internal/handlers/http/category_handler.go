package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// CategoryHandler lida com requisições HTTP relacionadas a categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory cria uma nova categoria
//
//	@Summary		Criar uma nova categoria
//	@Tags			categorias
//	@Accept			json
//	@Produce		json
//	@Param			categoria	body		dto.CreateCategoryRequest	true	"Dados da categoria"
//	@Success		201			{object}	dto.CategoryResponse
//	@Failure		303			{object}	dto.Problem	"Nome já cadastrado"
//	@Router			/api/v1/categorias [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Nome)
	if err != nil {
		if errs.Is(err, errors.ErrNameAlreadyExists) {
			dto.RenderProblem(c, dto.DuplicateProblemI18n(c, "error.duplicate_category.detail",
				map[string]interface{}{"Nome": req.Nome}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.storage.detail"))
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// ListCategories lista todas as categorias
//
//	@Summary		Consultar categorias
//	@Tags			categorias
//	@Produce		json
//	@Param			limit	query		int	false	"Tamanho da página"
//	@Param			offset	query		int	false	"Deslocamento"
//	@Success		200		{object}	dto.Page[dto.CategoryResponse]
//	@Router			/api/v1/categorias [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	items := dto.ToCategoryResponses(categories)
	c.JSON(http.StatusOK, dto.Paginate(items, query.Limit, query.Offset))
}

// GetCategory consulta uma categoria pelo id
//
//	@Summary		Consultar uma categoria pelo id
//	@Tags			categorias
//	@Produce		json
//	@Param			id	path		int	true	"ID da categoria"
//	@Success		200	{object}	dto.CategoryResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/categorias/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrCategoryNotFound) {
			dto.RenderProblem(c, dto.NotFoundProblemI18n(c, "error.category_id_not_found.detail",
				map[string]interface{}{"ID": id}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}
