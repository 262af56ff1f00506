package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// InteresRepository define el puerto de persistencia para Interes.
// List y ListByCliente devuelven los intereses en orden de creación
// (secuencia ascendente).
type InteresRepository interface {
	Create(i *entity.Interes) error
	GetByID(id string) (*entity.Interes, error)
	List(limit, offset int) ([]*entity.Interes, error)
	ListByCliente(clienteID string) ([]*entity.Interes, error)
	NextSecuencia() (int64, error)
}
