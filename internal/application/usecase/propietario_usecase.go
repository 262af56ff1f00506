package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// PropietarioUseCase casos de uso para propietarios.
type PropietarioUseCase struct {
	repo repository.PropietarioRepository
}

// NewPropietarioUseCase construye el caso de uso.
func NewPropietarioUseCase(repo repository.PropietarioRepository) *PropietarioUseCase {
	return &PropietarioUseCase{repo: repo}
}

// Create registra un propietario nuevo. DNI: 8 dígitos exactos.
func (uc *PropietarioUseCase) Create(in dto.CreatePropietarioRequest) (*dto.PropietarioResponse, error) {
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
	p := &entity.Propietario{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		DNI:             in.DNI,
		FechaNacimiento: nacimiento,
		Direccion:       in.Direccion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPropietarioResponse(p), nil
}

// List lista propietarios con paginación.
func (uc *PropietarioUseCase) List(limit, offset int) ([]*dto.PropietarioResponse, error) {
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
	out := make([]*dto.PropietarioResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPropietarioResponse(p))
	}
	return out, nil
}

func toPropietarioResponse(p *entity.Propietario) *dto.PropietarioResponse {
	if p == nil {
		return nil
	}
	return &dto.PropietarioResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		DNI:             p.DNI,
		FechaNacimiento: p.FechaNacimiento.Format(formatoFecha),
		Direccion:       p.Direccion,
	}
}
