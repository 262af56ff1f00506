package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// VisitaRepository define el puerto de persistencia para Visita.
type VisitaRepository interface {
	Create(v *entity.Visita) error
	GetByID(id string) (*entity.Visita, error)
	List(limit, offset int) ([]*entity.Visita, error)
	ListByPropiedad(propiedadID string) ([]*entity.Visita, error)
}
