package repository

import "github.com/inmotek/inmobiliaria-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByDNI(dni string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
}
