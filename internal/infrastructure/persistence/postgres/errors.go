package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// uniqueViolationCode é o código de erro do PostgreSQL para violação de
// constraint de unicidade
const uniqueViolationCode = "23505"

// translateError converte erros do driver em erros tipados de domínio,
// para que os services possam ramificar sem inspecionar strings.
// Violações de unicidade viram ErrCPFAlreadyExists ou ErrNameAlreadyExists
// conforme a constraint violada; qualquer outro erro é devolvido intacto.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if pgErr.ConstraintName == "idx_atletas_cpf" {
			return domainerrors.ErrCPFAlreadyExists
		}
		return domainerrors.ErrNameAlreadyExists
	}

	return err
}
