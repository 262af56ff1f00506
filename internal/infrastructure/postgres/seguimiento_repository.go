package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.SeguimientoRepository = (*SeguimientoRepo)(nil)

// SeguimientoRepo implementación de SeguimientoRepository (usable con pool o tx).
type SeguimientoRepo struct {
	q Querier
}

// NewSeguimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeguimientoRepository(q Querier) *SeguimientoRepo {
	return &SeguimientoRepo{q: q}
}

const seguimientoCols = `id, tipo_accion, fecha, respuesta, cliente_id, propiedad_id, created_at, updated_at`

// Create persiste un nuevo seguimiento.
func (r *SeguimientoRepo) Create(s *entity.Seguimiento) error {
	query := `
		INSERT INTO seguimientos (` + seguimientoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TipoAccion, s.Fecha, s.Respuesta, s.ClienteID, s.PropiedadID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seguimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un seguimiento por ID.
func (r *SeguimientoRepo) GetByID(id string) (*entity.Seguimiento, error) {
	query := `SELECT ` + seguimientoCols + ` FROM seguimientos WHERE id = $1`
	var s entity.Seguimiento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TipoAccion, &s.Fecha, &s.Respuesta, &s.ClienteID, &s.PropiedadID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seguimiento: %w", err)
	}
	return &s, nil
}

// List lista seguimientos con paginación, más recientes primero.
func (r *SeguimientoRepo) List(limit, offset int) ([]*entity.Seguimiento, error) {
	query := `SELECT ` + seguimientoCols + ` FROM seguimientos ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list seguimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seguimiento
	for rows.Next() {
		var s entity.Seguimiento
		if err := rows.Scan(
			&s.ID, &s.TipoAccion, &s.Fecha, &s.Respuesta, &s.ClienteID, &s.PropiedadID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan seguimiento: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
