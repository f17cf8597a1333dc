package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// TrainingCenterHandler lida com requisições HTTP relacionadas a
// centros de treinamento
type TrainingCenterHandler struct {
	centerService *services.TrainingCenterService
}

// NewTrainingCenterHandler cria um novo TrainingCenterHandler
func NewTrainingCenterHandler(centerService *services.TrainingCenterService) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		centerService: centerService,
	}
}

// CreateTrainingCenter cria um novo centro de treinamento
//
//	@Summary		Criar um novo centro de treinamento
//	@Tags			centros_treinamento
//	@Accept			json
//	@Produce		json
//	@Param			centro	body		dto.CreateTrainingCenterRequest	true	"Dados do centro"
//	@Success		201		{object}	dto.TrainingCenterResponse
//	@Failure		303		{object}	dto.Problem	"Nome já cadastrado"
//	@Router			/api/v1/centros_treinamento [post]
func (h *TrainingCenterHandler) CreateTrainingCenter(c *gin.Context) {
	var req dto.CreateTrainingCenterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	center, err := h.centerService.CreateTrainingCenter(c.Request.Context(), services.CreateTrainingCenterInput{
		Name:    req.Nome,
		Address: req.Endereco,
		Owner:   req.Proprietario,
	})
	if err != nil {
		if errs.Is(err, errors.ErrNameAlreadyExists) {
			dto.RenderProblem(c, dto.DuplicateProblemI18n(c, "error.duplicate_training_center.detail",
				map[string]interface{}{"Nome": req.Nome}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.storage.detail"))
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainingCenterResponse(center))
}

// ListTrainingCenters lista todos os centros de treinamento
//
//	@Summary		Consultar centros de treinamento
//	@Tags			centros_treinamento
//	@Produce		json
//	@Param			limit	query		int	false	"Tamanho da página"
//	@Param			offset	query		int	false	"Deslocamento"
//	@Success		200		{object}	dto.Page[dto.TrainingCenterResponse]
//	@Router			/api/v1/centros_treinamento [get]
func (h *TrainingCenterHandler) ListTrainingCenters(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	centers, err := h.centerService.ListTrainingCenters(c.Request.Context())
	if err != nil {
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	items := dto.ToTrainingCenterResponses(centers)
	c.JSON(http.StatusOK, dto.Paginate(items, query.Limit, query.Offset))
}

// GetTrainingCenter consulta um centro de treinamento pelo id
//
//	@Summary		Consultar um centro de treinamento pelo id
//	@Tags			centros_treinamento
//	@Produce		json
//	@Param			id	path		int	true	"ID do centro"
//	@Success		200	{object}	dto.TrainingCenterResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/centros_treinamento/{id} [get]
func (h *TrainingCenterHandler) GetTrainingCenter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	center, err := h.centerService.GetTrainingCenter(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrTrainingCenterNotFound) {
			dto.RenderProblem(c, dto.NotFoundProblemI18n(c, "error.training_center_id_not_found.detail",
				map[string]interface{}{"ID": id}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainingCenterResponse(center))
}
