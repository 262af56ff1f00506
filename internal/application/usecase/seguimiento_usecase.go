package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var accionesSeguimiento = map[string]bool{
	entity.AccionLlamada:  true,
	entity.AccionWhatsApp: true,
	entity.AccionCorreo:   true,
	entity.AccionReunion:  true,
}

// SeguimientoUseCase casos de uso para seguimientos de clientes.
type SeguimientoUseCase struct {
	repo          repository.SeguimientoRepository
	clienteRepo   repository.ClienteRepository
	propiedadRepo repository.PropiedadRepository
}

// NewSeguimientoUseCase construye el caso de uso.
func NewSeguimientoUseCase(
	repo repository.SeguimientoRepository,
	clienteRepo repository.ClienteRepository,
	propiedadRepo repository.PropiedadRepository,
) *SeguimientoUseCase {
	return &SeguimientoUseCase{repo: repo, clienteRepo: clienteRepo, propiedadRepo: propiedadRepo}
}

// Create registra un seguimiento sobre una propiedad de interés del cliente.
func (uc *SeguimientoUseCase) Create(in dto.CreateSeguimientoRequest) (*dto.SeguimientoResponse, error) {
	if !accionesSeguimiento[in.TipoAccion] {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	propiedad, err := uc.propiedadRepo.GetByID(in.PropiedadID)
	if err != nil {
		return nil, err
	}
	if propiedad == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	s := &entity.Seguimiento{
		ID:          uuid.New().String(),
		TipoAccion:  in.TipoAccion,
		Fecha:       fecha,
		Respuesta:   in.Respuesta,
		ClienteID:   in.ClienteID,
		PropiedadID: in.PropiedadID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	resp := toSeguimientoResponse(s)
	resp.Cliente = toClienteResponse(cliente)
	resp.Propiedad = toPropiedadResponse(propiedad)
	return resp, nil
}

// List lista seguimientos con cliente y propiedad anidados.
func (uc *SeguimientoUseCase) List(limit, offset int) ([]*dto.SeguimientoResponse, error) {
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
	out := make([]*dto.SeguimientoResponse, 0, len(list))
	for _, s := range list {
		resp := toSeguimientoResponse(s)
		if cliente, err := uc.clienteRepo.GetByID(s.ClienteID); err == nil {
			resp.Cliente = toClienteResponse(cliente)
		}
		if propiedad, err := uc.propiedadRepo.GetByID(s.PropiedadID); err == nil {
			resp.Propiedad = toPropiedadResponse(propiedad)
		}
		out = append(out, resp)
	}
	return out, nil
}

func toSeguimientoResponse(s *entity.Seguimiento) *dto.SeguimientoResponse {
	return &dto.SeguimientoResponse{
		ID:          s.ID,
		TipoAccion:  s.TipoAccion,
		Fecha:       s.Fecha.Format(formatoFecha),
		Respuesta:   s.Respuesta,
		ClienteID:   s.ClienteID,
		PropiedadID: s.PropiedadID,
	}
}
