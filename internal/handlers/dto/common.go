package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// Problem estende o problem RFC 7807 com a lista de erros de validação
type Problem struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewProblemI18n cria um problem RFC 7807 com título e detalhe traduzidos
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *Problem {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &Problem{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RenderProblem serializa o problem com o media type RFC 7807
func RenderProblem(c *gin.Context, p *Problem) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(p.Status, p)
}

// Helpers para respostas de erro comuns com i18n

// ValidationProblemI18n cria uma resposta 400 para payload/query inválidos
func ValidationProblemI18n(c *gin.Context, validationErrors []ValidationError) *Problem {
	p := NewProblemI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	p.Errors = validationErrors
	return p
}

// NotFoundProblemI18n cria uma resposta 404 com detalhe específico do recurso
func NotFoundProblemI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *Problem {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
		params...,
	)
}

// ReferenceProblemI18n cria uma resposta 400 para referência inexistente
// (categoria ou centro de treinamento resolvidos por nome no create)
func ReferenceProblemI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *Problem {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
		params...,
	)
}

// DuplicateProblemI18n cria uma resposta 303 para violação de unicidade.
// O status 303 é herdado do contrato original da API.
func DuplicateProblemI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *Problem {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.duplicate.title",
		detailKey,
		http.StatusSeeOther,
		params...,
	)
}

// InternalProblemI18n cria uma resposta 500 genérica, sem vazar detalhe interno
func InternalProblemI18n(c *gin.Context, detailKey string) *Problem {
	return NewProblemI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		detailKey,
		http.StatusInternalServerError,
	)
}
