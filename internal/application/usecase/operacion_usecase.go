package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// OperacionUseCase casos de uso para operaciones cerradas (gestión).
type OperacionUseCase struct {
	repo          repository.OperacionRepository
	propiedadRepo repository.PropiedadRepository
	clienteRepo   repository.ClienteRepository
}

// NewOperacionUseCase construye el caso de uso.
func NewOperacionUseCase(
	repo repository.OperacionRepository,
	propiedadRepo repository.PropiedadRepository,
	clienteRepo repository.ClienteRepository,
) *OperacionUseCase {
	return &OperacionUseCase{repo: repo, propiedadRepo: propiedadRepo, clienteRepo: clienteRepo}
}

// Create cierra una operación. El tipo de gestión se copia de la modalidad de
// la propiedad en este momento y no se vuelve a derivar: si la propiedad
// cambia de modalidad después, la operación conserva el valor original.
func (uc *OperacionUseCase) Create(in dto.CreateOperacionRequest) (*dto.OperacionResponse, error) {
	if in.Estado != entity.OperacionAlta && in.Estado != entity.OperacionBaja {
		return nil, domain.ErrInvalidInput
	}
	if in.Asesor == "" {
		return nil, domain.ErrInvalidInput
	}
	fechaOperacion, err := parseFecha(in.FechaOperacion)
	if err != nil {
		return nil, err
	}
	fechaContrato, err := parseFecha(in.FechaContrato)
	if err != nil {
		return nil, err
	}

	propiedad, err := uc.propiedadRepo.GetByID(in.PropiedadID)
	if err != nil {
		return nil, err
	}
	if propiedad == nil {
		return nil, domain.ErrNotFound
	}
	var cliente *entity.Cliente
	if in.ClienteID != "" {
		cliente, err = uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	o := &entity.Operacion{
		ID:             uuid.New().String(),
		TipoGestion:    propiedad.Modalidad, // copia, no referencia
		Estado:         in.Estado,
		FechaOperacion: fechaOperacion,
		FechaContrato:  fechaContrato,
		PrecioFinal:    in.PrecioFinal,
		Honorarios:     in.Honorarios,
		Asesor:         in.Asesor,
		PropiedadID:    in.PropiedadID,
		ClienteID:      in.ClienteID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	resp := toOperacionResponse(o)
	resp.Propiedad = toPropiedadResponse(propiedad)
	resp.Cliente = toClienteResponse(cliente)
	return resp, nil
}

// List lista operaciones con propiedad y cliente anidados.
func (uc *OperacionUseCase) List(limit, offset int) ([]*dto.OperacionResponse, error) {
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
	out := make([]*dto.OperacionResponse, 0, len(list))
	for _, o := range list {
		resp := toOperacionResponse(o)
		if propiedad, err := uc.propiedadRepo.GetByID(o.PropiedadID); err == nil {
			resp.Propiedad = toPropiedadResponse(propiedad)
		}
		if o.ClienteID != "" {
			if cliente, err := uc.clienteRepo.GetByID(o.ClienteID); err == nil {
				resp.Cliente = toClienteResponse(cliente)
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func toOperacionResponse(o *entity.Operacion) *dto.OperacionResponse {
	return &dto.OperacionResponse{
		ID:             o.ID,
		TipoGestion:    o.TipoGestion,
		Estado:         o.Estado,
		FechaOperacion: o.FechaOperacion.Format(formatoFecha),
		FechaContrato:  o.FechaContrato.Format(formatoFecha),
		PrecioFinal:    o.PrecioFinal,
		Honorarios:     o.Honorarios,
		Asesor:         o.Asesor,
		PropiedadID:    o.PropiedadID,
		ClienteID:      o.ClienteID,
	}
}
