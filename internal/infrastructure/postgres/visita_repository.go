package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.VisitaRepository = (*VisitaRepo)(nil)

// VisitaRepo implementación de VisitaRepository (usable con pool o tx).
type VisitaRepo struct {
	q Querier
}

// NewVisitaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitaRepository(q Querier) *VisitaRepo {
	return &VisitaRepo{q: q}
}

const visitaCols = `id, asesor, fecha, hora, resultado, comentario, cliente_id, propiedad_id, created_at, updated_at`

// Create persiste una nueva visita. Hora ya debe venir en forma canónica "HH:MM".
func (r *VisitaRepo) Create(v *entity.Visita) error {
	query := `
		INSERT INTO visitas (` + visitaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Asesor, v.Fecha, v.Hora, v.Resultado, v.Comentario,
		v.ClienteID, v.PropiedadID, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visita: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID.
func (r *VisitaRepo) GetByID(id string) (*entity.Visita, error) {
	query := `SELECT ` + visitaCols + ` FROM visitas WHERE id = $1`
	var v entity.Visita
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Asesor, &v.Fecha, &v.Hora, &v.Resultado, &v.Comentario,
		&v.ClienteID, &v.PropiedadID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visita: %w", err)
	}
	return &v, nil
}

// List lista visitas con paginación, más recientes primero.
func (r *VisitaRepo) List(limit, offset int) ([]*entity.Visita, error) {
	query := `SELECT ` + visitaCols + ` FROM visitas ORDER BY fecha DESC, hora DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visitas: %w", err)
	}
	return collectVisitas(rows)
}

// ListByPropiedad lista las visitas registradas sobre una propiedad.
func (r *VisitaRepo) ListByPropiedad(propiedadID string) ([]*entity.Visita, error) {
	query := `SELECT ` + visitaCols + ` FROM visitas WHERE propiedad_id = $1 ORDER BY fecha, hora`
	rows, err := r.q.Query(context.Background(), query, propiedadID)
	if err != nil {
		return nil, fmt.Errorf("list visitas by propiedad: %w", err)
	}
	return collectVisitas(rows)
}

func collectVisitas(rows pgx.Rows) ([]*entity.Visita, error) {
	defer rows.Close()
	var list []*entity.Visita
	for rows.Next() {
		var v entity.Visita
		if err := rows.Scan(
			&v.ID, &v.Asesor, &v.Fecha, &v.Hora, &v.Resultado, &v.Comentario,
			&v.ClienteID, &v.PropiedadID, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan visita: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
