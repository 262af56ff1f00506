package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// PropietarioRepository define el puerto de persistencia para Propietario.
type PropietarioRepository interface {
	Create(p *entity.Propietario) error
	GetByID(id string) (*entity.Propietario, error)
	GetByDNI(dni string) (*entity.Propietario, error)
	List(limit, offset int) ([]*entity.Propietario, error)
}
