package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Toda operação de escrita (create/update/delete) roda dentro de
// WithTransaction: commit no sucesso, rollback em qualquer erro.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
