package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// AthleteHandler lida com requisições HTTP relacionadas a atletas
type AthleteHandler struct {
	athleteService *services.AthleteService
}

// NewAthleteHandler cria um novo AthleteHandler
func NewAthleteHandler(athleteService *services.AthleteService) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
	}
}

// CreateAthlete cria um novo atleta
//
//	@Summary		Criar um novo atleta
//	@Tags			atletas
//	@Accept			json
//	@Produce		json
//	@Param			atleta	body		dto.CreateAthleteRequest	true	"Dados do atleta"
//	@Success		201		{object}	dto.AthleteResponse
//	@Failure		400		{object}	dto.Problem	"Categoria ou centro de treinamento inexistente"
//	@Failure		303		{object}	dto.Problem	"CPF já cadastrado"
//	@Failure		500		{object}	dto.Problem
//	@Router			/api/v1/atletas [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req dto.CreateAthleteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	athlete, err := h.athleteService.CreateAthlete(c.Request.Context(), services.CreateAthleteInput{
		Name:               req.Nome,
		CPF:                req.CPF,
		Age:                req.Idade,
		Weight:             req.Peso,
		Height:             req.Altura,
		Sex:                req.Sexo,
		CategoryName:       req.Categoria.Nome,
		TrainingCenterName: req.CentroTreinamento.Nome,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrCategoryNotFound):
			dto.RenderProblem(c, dto.ReferenceProblemI18n(c, "error.category_not_found.detail",
				map[string]interface{}{"Nome": req.Categoria.Nome}))
		case errs.Is(err, errors.ErrTrainingCenterNotFound):
			dto.RenderProblem(c, dto.ReferenceProblemI18n(c, "error.training_center_not_found.detail",
				map[string]interface{}{"Nome": req.CentroTreinamento.Nome}))
		case errs.Is(err, errors.ErrCPFAlreadyExists):
			dto.RenderProblem(c, dto.DuplicateProblemI18n(c, "error.duplicate_cpf.detail",
				map[string]interface{}{"CPF": req.CPF}))
		default:
			// Falha de persistência: nada de detalhe interno para o cliente
			dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.storage.detail"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAthleteResponse(athlete))
}

// ListAthletes consulta atletas com filtros e paginação
//
//	@Summary		Consultar atletas (filtros: nome/cpf) + paginação
//	@Tags			atletas
//	@Produce		json
//	@Param			nome	query		string	false	"Filtro por nome (contém, case-insensitive)"	maxlength(50)
//	@Param			cpf		query		string	false	"Filtro por CPF (igualdade exata)"				minlength(11)	maxlength(11)
//	@Param			limit	query		int		false	"Tamanho da página"
//	@Param			offset	query		int		false	"Deslocamento"
//	@Success		200		{object}	dto.Page[dto.AthleteSummaryResponse]
//	@Failure		400		{object}	dto.Problem
//	@Router			/api/v1/atletas [get]
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	var query dto.ListAthletesQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	athletes, err := h.athleteService.ListAthletes(c.Request.Context(), repositories.AthleteFilters{
		Name: query.Nome,
		CPF:  query.CPF,
	})
	if err != nil {
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	// Projeta primeiro, pagina a lista projetada depois
	items := dto.ToAthleteSummaryResponses(athletes)
	c.JSON(http.StatusOK, dto.Paginate(items, query.Limit, query.Offset))
}

// GetAthlete consulta um atleta pelo id
//
//	@Summary		Consultar um atleta pelo id
//	@Tags			atletas
//	@Produce		json
//	@Param			id	path		int	true	"ID do atleta"
//	@Success		200	{object}	dto.AthleteResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/atletas/{id} [get]
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	athlete, err := h.athleteService.GetAthlete(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrAthleteNotFound) {
			dto.RenderProblem(c, dto.NotFoundProblemI18n(c, "error.athlete_not_found.detail",
				map[string]interface{}{"ID": id}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// UpdateAthlete edita parcialmente um atleta pelo id
//
//	@Summary		Editar um atleta pelo id
//	@Tags			atletas
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"ID do atleta"
//	@Param			atleta	body		dto.UpdateAthleteRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.AthleteResponse
//	@Failure		404		{object}	dto.Problem
//	@Failure		303		{object}	dto.Problem	"CPF já cadastrado"
//	@Router			/api/v1/atletas/{id} [patch]
func (h *AthleteHandler) UpdateAthlete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, dto.ToValidationErrors(err)))
		return
	}

	athlete, err := h.athleteService.UpdateAthlete(c.Request.Context(), id, services.UpdateAthleteInput{
		Name:             req.Nome,
		CPF:              req.CPF,
		Age:              req.Idade,
		Weight:           req.Peso,
		Height:           req.Altura,
		Sex:              req.Sexo,
		CategoryID:       req.CategoriaID,
		TrainingCenterID: req.CentroTreinamentoID,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrAthleteNotFound):
			dto.RenderProblem(c, dto.NotFoundProblemI18n(c, "error.athlete_not_found.detail",
				map[string]interface{}{"ID": id}))
		case errs.Is(err, errors.ErrCPFAlreadyExists):
			// O CPF pode estar ausente do payload parcial
			cpf := ""
			if req.CPF != nil {
				cpf = *req.CPF
			}
			dto.RenderProblem(c, dto.DuplicateProblemI18n(c, "error.duplicate_cpf.detail",
				map[string]interface{}{"CPF": cpf}))
		default:
			dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// DeleteAthlete remove um atleta pelo id
//
//	@Summary		Deletar um atleta pelo id
//	@Tags			atletas
//	@Param			id	path	int	true	"ID do atleta"
//	@Success		204
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/atletas/{id} [delete]
func (h *AthleteHandler) DeleteAthlete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.athleteService.DeleteAthlete(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrAthleteNotFound) {
			dto.RenderProblem(c, dto.NotFoundProblemI18n(c, "error.athlete_not_found.detail",
				map[string]interface{}{"ID": id}))
			return
		}
		dto.RenderProblem(c, dto.InternalProblemI18n(c, "error.internal.detail"))
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extrai o id numérico do path; responde 400 quando inválido
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.RenderProblem(c, dto.ValidationProblemI18n(c, []dto.ValidationError{
			{Field: "id", Message: "id must be a positive integer", Tag: "numeric", Value: c.Param("id")},
		}))
		return 0, false
	}
	return uint(id), true
}
