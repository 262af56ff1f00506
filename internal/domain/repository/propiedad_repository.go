package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// PropiedadRepository define el puerto de persistencia para Propiedad.
type PropiedadRepository interface {
	Create(p *entity.Propiedad) error
	GetByID(id string) (*entity.Propiedad, error)
	List(limit, offset int) ([]*entity.Propiedad, error)
	ListByPropietario(propietarioID string) ([]*entity.Propiedad, error)
}
