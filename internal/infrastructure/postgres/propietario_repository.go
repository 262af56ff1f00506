package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var _ repository.PropietarioRepository = (*PropietarioRepo)(nil)

// PropietarioRepo implementación de PropietarioRepository (usable con pool o tx).
type PropietarioRepo struct {
	q Querier
}

// NewPropietarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropietarioRepository(q Querier) *PropietarioRepo {
	return &PropietarioRepo{q: q}
}

// Create persiste un nuevo propietario.
func (r *PropietarioRepo) Create(p *entity.Propietario) error {
	query := `
		INSERT INTO propietarios (id, nombre, dni, fecha_nacimiento, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.DNI, p.FechaNacimiento, p.Direccion, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert propietario: %w", err)
	}
	return nil
}

// GetByID obtiene un propietario por ID.
func (r *PropietarioRepo) GetByID(id string) (*entity.Propietario, error) {
	query := `
		SELECT id, nombre, dni, fecha_nacimiento, direccion, created_at, updated_at
		FROM propietarios WHERE id = $1`
	return scanPropietario(r.q.QueryRow(context.Background(), query, id), "get propietario")
}

// GetByDNI obtiene un propietario por DNI.
func (r *PropietarioRepo) GetByDNI(dni string) (*entity.Propietario, error) {
	query := `
		SELECT id, nombre, dni, fecha_nacimiento, direccion, created_at, updated_at
		FROM propietarios WHERE dni = $1`
	return scanPropietario(r.q.QueryRow(context.Background(), query, dni), "get propietario by dni")
}

// List lista propietarios con paginación.
func (r *PropietarioRepo) List(limit, offset int) ([]*entity.Propietario, error) {
	query := `
		SELECT id, nombre, dni, fecha_nacimiento, direccion, created_at, updated_at
		FROM propietarios ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list propietarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Propietario
	for rows.Next() {
		var p entity.Propietario
		if err := rows.Scan(&p.ID, &p.Nombre, &p.DNI, &p.FechaNacimiento, &p.Direccion, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan propietario: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanPropietario(row pgx.Row, op string) (*entity.Propietario, error) {
	var p entity.Propietario
	err := row.Scan(&p.ID, &p.Nombre, &p.DNI, &p.FechaNacimiento, &p.Direccion, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
