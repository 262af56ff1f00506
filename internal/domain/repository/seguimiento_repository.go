package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// SeguimientoRepository define el puerto de persistencia para Seguimiento.
type SeguimientoRepository interface {
	Create(s *entity.Seguimiento) error
	GetByID(id string) (*entity.Seguimiento, error)
	List(limit, offset int) ([]*entity.Seguimiento, error)
}
