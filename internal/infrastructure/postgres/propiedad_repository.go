package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.PropiedadRepository = (*PropiedadRepo)(nil)

// PropiedadRepo implementación de PropiedadRepository (usable con pool o tx).
type PropiedadRepo struct {
	q Querier
}

// NewPropiedadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropiedadRepository(q Querier) *PropiedadRepo {
	return &PropiedadRepo{q: q}
}

const propiedadCols = `id, direccion, precio, moneda, tipo, modalidad, area, area_construida, descripcion, propietario_id, created_at, updated_at`

// Create persiste una nueva propiedad.
func (r *PropiedadRepo) Create(p *entity.Propiedad) error {
	query := `
		INSERT INTO propiedades (` + propiedadCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Direccion, p.Precio, p.Moneda, p.Tipo, p.Modalidad,
		p.Area, p.AreaConstruida, p.Descripcion, p.PropietarioID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert propiedad: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad por ID.
func (r *PropiedadRepo) GetByID(id string) (*entity.Propiedad, error) {
	query := `SELECT ` + propiedadCols + ` FROM propiedades WHERE id = $1`
	var p entity.Propiedad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Direccion, &p.Precio, &p.Moneda, &p.Tipo, &p.Modalidad,
		&p.Area, &p.AreaConstruida, &p.Descripcion, &p.PropietarioID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get propiedad: %w", err)
	}
	return &p, nil
}

// List lista propiedades con paginación.
func (r *PropiedadRepo) List(limit, offset int) ([]*entity.Propiedad, error) {
	query := `SELECT ` + propiedadCols + ` FROM propiedades ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list propiedades: %w", err)
	}
	return collectPropiedades(rows)
}

// ListByPropietario lista las propiedades de un propietario.
func (r *PropiedadRepo) ListByPropietario(propietarioID string) ([]*entity.Propiedad, error) {
	query := `SELECT ` + propiedadCols + ` FROM propiedades WHERE propietario_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, propietarioID)
	if err != nil {
		return nil, fmt.Errorf("list propiedades by propietario: %w", err)
	}
	return collectPropiedades(rows)
}

func collectPropiedades(rows pgx.Rows) ([]*entity.Propiedad, error) {
	defer rows.Close()
	var list []*entity.Propiedad
	for rows.Next() {
		var p entity.Propiedad
		if err := rows.Scan(
			&p.ID, &p.Direccion, &p.Precio, &p.Moneda, &p.Tipo, &p.Modalidad,
			&p.Area, &p.AreaConstruida, &p.Descripcion, &p.PropietarioID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan propiedad: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
