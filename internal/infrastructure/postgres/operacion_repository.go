package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.OperacionRepository = (*OperacionRepo)(nil)

// OperacionRepo implementación de OperacionRepository (usable con pool o tx).
type OperacionRepo struct {
	q Querier
}

// NewOperacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperacionRepository(q Querier) *OperacionRepo {
	return &OperacionRepo{q: q}
}

const operacionCols = `id, tipo_gestion, estado, fecha_operacion, fecha_contrato, precio_final, honorarios, asesor, propiedad_id, cliente_id, created_at, updated_at`

// Create persiste una nueva operación.
func (r *OperacionRepo) Create(o *entity.Operacion) error {
	query := `
		INSERT INTO operaciones (` + operacionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	clienteID := (*string)(nil)
	if o.ClienteID != "" {
		clienteID = &o.ClienteID
	}
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.TipoGestion, o.Estado, o.FechaOperacion, o.FechaContrato,
		o.PrecioFinal, o.Honorarios, o.Asesor, o.PropiedadID, clienteID,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operacion: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID.
func (r *OperacionRepo) GetByID(id string) (*entity.Operacion, error) {
	query := `SELECT ` + operacionCols + ` FROM operaciones WHERE id = $1`
	var o entity.Operacion
	var clienteID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.TipoGestion, &o.Estado, &o.FechaOperacion, &o.FechaContrato,
		&o.PrecioFinal, &o.Honorarios, &o.Asesor, &o.PropiedadID, &clienteID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operacion: %w", err)
	}
	if clienteID != nil {
		o.ClienteID = *clienteID
	}
	return &o, nil
}

// List lista operaciones con paginación, más recientes primero.
func (r *OperacionRepo) List(limit, offset int) ([]*entity.Operacion, error) {
	query := `SELECT ` + operacionCols + ` FROM operaciones ORDER BY fecha_operacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list operaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operacion
	for rows.Next() {
		var o entity.Operacion
		var clienteID *string
		if err := rows.Scan(
			&o.ID, &o.TipoGestion, &o.Estado, &o.FechaOperacion, &o.FechaContrato,
			&o.PrecioFinal, &o.Honorarios, &o.Asesor, &o.PropiedadID, &clienteID,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operacion: %w", err)
		}
		if clienteID != nil {
			o.ClienteID = *clienteID
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
