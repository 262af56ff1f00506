package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.InteresRepository = (*InteresRepo)(nil)

// InteresRepo implementación de InteresRepository (usable con pool o tx).
type InteresRepo struct {
	q Querier
}

// NewInteresRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInteresRepository(q Querier) *InteresRepo {
	return &InteresRepo{q: q}
}

const interesCols = `id, cliente_id, propiedad_id, estado, asesor, observacion, nota, secuencia, created_at, updated_at`

// Create persiste un nuevo interés.
func (r *InteresRepo) Create(i *entity.Interes) error {
	query := `
		INSERT INTO intereses (` + interesCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.ClienteID, i.PropiedadID, i.Estado, i.Asesor, i.Observacion,
		i.Nota, i.Secuencia, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interes: %w", err)
	}
	return nil
}

// GetByID obtiene un interés por ID.
func (r *InteresRepo) GetByID(id string) (*entity.Interes, error) {
	query := `SELECT ` + interesCols + ` FROM intereses WHERE id = $1`
	var i entity.Interes
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ClienteID, &i.PropiedadID, &i.Estado, &i.Asesor, &i.Observacion,
		&i.Nota, &i.Secuencia, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interes: %w", err)
	}
	return &i, nil
}

// List lista intereses en orden de creación (secuencia ascendente).
func (r *InteresRepo) List(limit, offset int) ([]*entity.Interes, error) {
	query := `SELECT ` + interesCols + ` FROM intereses ORDER BY secuencia, created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list intereses: %w", err)
	}
	return collectIntereses(rows)
}

// ListByCliente lista los intereses de un cliente en orden de creación.
func (r *InteresRepo) ListByCliente(clienteID string) ([]*entity.Interes, error) {
	query := `SELECT ` + interesCols + ` FROM intereses WHERE cliente_id = $1 ORDER BY secuencia, created_at`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list intereses by cliente: %w", err)
	}
	return collectIntereses(rows)
}

// NextSecuencia devuelve el siguiente número de secuencia. Se llama dentro de
// la misma transacción que el INSERT para que la secuencia sea monotónica.
func (r *InteresRepo) NextSecuencia() (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(secuencia), 0) + 1 FROM intereses`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next secuencia: %w", err)
	}
	return next, nil
}

func collectIntereses(rows pgx.Rows) ([]*entity.Interes, error) {
	defer rows.Close()
	var list []*entity.Interes
	for rows.Next() {
		var i entity.Interes
		if err := rows.Scan(
			&i.ID, &i.ClienteID, &i.PropiedadID, &i.Estado, &i.Asesor, &i.Observacion,
			&i.Nota, &i.Secuencia, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interes: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
