package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// PropiedadUseCase casos de uso para propiedades.
type PropiedadUseCase struct {
	repo            repository.PropiedadRepository
	propietarioRepo repository.PropietarioRepository
}

// NewPropiedadUseCase construye el caso de uso.
func NewPropiedadUseCase(repo repository.PropiedadRepository, propietarioRepo repository.PropietarioRepository) *PropiedadUseCase {
	return &PropiedadUseCase{repo: repo, propietarioRepo: propietarioRepo}
}

// Create registra una propiedad. La propiedad siempre pertenece a exactamente
// un propietario, que debe existir.
func (uc *PropiedadUseCase) Create(in dto.CreatePropiedadRequest) (*dto.PropiedadResponse, error) {
	if in.Direccion == "" || in.Moneda == "" || in.Modalidad == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Moneda != entity.MonedaUSD && in.Moneda != entity.MonedaPEN {
		return nil, domain.ErrInvalidInput
	}
	switch in.Modalidad {
	case entity.ModalidadVenta, entity.ModalidadAlquiler, entity.ModalidadAnticresis:
	default:
		return nil, domain.ErrInvalidInput
	}
	propietario, err := uc.propietarioRepo.GetByID(in.PropietarioID)
	if err != nil {
		return nil, err
	}
	if propietario == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	p := &entity.Propiedad{
		ID:             uuid.New().String(),
		Direccion:      in.Direccion,
		Precio:         in.Precio,
		Moneda:         in.Moneda,
		Tipo:           in.Tipo,
		Modalidad:      in.Modalidad,
		Area:           in.Area,
		AreaConstruida: in.AreaConstruida,
		Descripcion:    in.Descripcion,
		PropietarioID:  in.PropietarioID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	out := toPropiedadResponse(p)
	out.Propietario = toPropietarioResponse(propietario)
	return out, nil
}

// List lista propiedades con su propietario anidado.
func (uc *PropiedadUseCase) List(limit, offset int) ([]*dto.PropiedadResponse, error) {
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
	out := make([]*dto.PropiedadResponse, 0, len(list))
	for _, p := range list {
		resp := toPropiedadResponse(p)
		if propietario, err := uc.propietarioRepo.GetByID(p.PropietarioID); err == nil {
			resp.Propietario = toPropietarioResponse(propietario)
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetByID obtiene una propiedad con su propietario anidado.
func (uc *PropiedadUseCase) GetByID(id string) (*dto.PropiedadResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPropiedadResponse(p)
	if propietario, err := uc.propietarioRepo.GetByID(p.PropietarioID); err == nil {
		resp.Propietario = toPropietarioResponse(propietario)
	}
	return resp, nil
}

func toPropiedadResponse(p *entity.Propiedad) *dto.PropiedadResponse {
	if p == nil {
		return nil
	}
	return &dto.PropiedadResponse{
		ID:             p.ID,
		Direccion:      p.Direccion,
		Precio:         p.Precio,
		Moneda:         p.Moneda,
		Tipo:           p.Tipo,
		Modalidad:      p.Modalidad,
		Area:           p.Area,
		AreaConstruida: p.AreaConstruida,
		Descripcion:    p.Descripcion,
		PropietarioID:  p.PropietarioID,
	}
}
