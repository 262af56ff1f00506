package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// OperacionRepository define el puerto de persistencia para Operacion.
type OperacionRepository interface {
	Create(o *entity.Operacion) error
	GetByID(id string) (*entity.Operacion, error)
	List(limit, offset int) ([]*entity.Operacion, error)
}
