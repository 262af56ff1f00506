package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ usecase.InteresTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInteres inicia una transacción con el repo de intereses atado a la tx y
// hace Commit o Rollback. Se usa al crear un interés: la lectura de la próxima
// secuencia y el INSERT deben ser atómicos para que la secuencia sea monotónica.
func (r *TxRunner) RunInteres(ctx context.Context, fn func(repo repository.InteresRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInteresRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
