package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// ClienteUseCase casos de uso para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create registra un cliente nuevo. DNI: 8 dígitos exactos.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Direccion == "" {
		return nil, domain.ErrInvalidInput
	}
	if !dniValido(in.DNI) {
		return nil, domain.ErrInvalidInput
	}
	nacimiento, err := parseFecha(in.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByDNI(in.DNI)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		DNI:             in.DNI,
		FechaNacimiento: nacimiento,
		Direccion:       in.Direccion,
		Telefono:        in.Telefono,
		Email:           in.Email,
		EstadoCivil:     in.EstadoCivil,
		Ocupacion:       in.Ocupacion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		DNI:             c.DNI,
		FechaNacimiento: c.FechaNacimiento.Format(formatoFecha),
		Direccion:       c.Direccion,
		Telefono:        c.Telefono,
		Email:           c.Email,
		EstadoCivil:     c.EstadoCivil,
		Ocupacion:       c.Ocupacion,
	}
}
