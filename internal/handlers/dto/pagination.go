package dto

// Limites de paginação limit/offset
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// PageQuery representa os parâmetros de paginação de uma listagem
type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset" binding:"omitempty,gte=0"`
}

// Page é o envelope de paginação limit/offset
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate fatia a lista já materializada conforme limit/offset e monta o
// envelope. Total reflete a lista inteira (pós-filtro), não a fatia.
func Paginate[T any](items []T, limit, offset int) Page[T] {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	slice := items[start:end]
	if slice == nil {
		slice = []T{}
	}

	return Page[T]{
		Items:  slice,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
