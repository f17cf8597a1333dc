package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrAthleteNotFound        = errors.New("error.athlete_not_found")
	ErrCategoryNotFound       = errors.New("error.category_not_found")
	ErrTrainingCenterNotFound = errors.New("error.training_center_not_found")
)

// Storage errors
// Retornados pela camada de persistência como valores tipados, para que
// os services possam ramificar sem inspecionar strings/códigos do driver.
var (
	ErrCPFAlreadyExists  = errors.New("error.cpf_already_exists")
	ErrNameAlreadyExists = errors.New("error.name_already_exists")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeBadRequest = "/problems/bad-request"
	ProblemTypeInternal   = "/problems/internal-error"
)
