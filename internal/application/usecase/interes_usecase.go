package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/nota"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// InteresTxRunner ejecuta un callback con el repo de intereses dentro de una
// transacción: la asignación de secuencia y el INSERT deben ser atómicos.
type InteresTxRunner interface {
	RunInteres(ctx context.Context, fn func(repo repository.InteresRepository) error) error
}

// InteresUseCase casos de uso para intereses cliente↔propiedad, incluida la
// selección del interés principal de un cliente.
type InteresUseCase struct {
	repo          repository.InteresRepository
	clienteRepo   repository.ClienteRepository
	propiedadRepo repository.PropiedadRepository
	txRunner      InteresTxRunner
}

// NewInteresUseCase construye el caso de uso.
func NewInteresUseCase(
	repo repository.InteresRepository,
	clienteRepo repository.ClienteRepository,
	propiedadRepo repository.PropiedadRepository,
	txRunner InteresTxRunner,
) *InteresUseCase {
	return &InteresUseCase{repo: repo, clienteRepo: clienteRepo, propiedadRepo: propiedadRepo, txRunner: txRunner}
}

// Create registra el interés de un cliente en una propiedad. Ambos deben
// existir. Asesor y observación se persisten como campos separados; la nota
// codificada solo existe en registros heredados.
func (uc *InteresUseCase) Create(ctx context.Context, in dto.CreateInteresRequest) (*dto.InteresResponse, error) {
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
	i := &entity.Interes{
		ID:          uuid.New().String(),
		ClienteID:   in.ClienteID,
		PropiedadID: in.PropiedadID,
		Estado:      in.Estado,
		Asesor:      in.Asesor,
		Observacion: in.Observacion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunInteres(ctx, func(repo repository.InteresRepository) error {
		secuencia, err := repo.NextSecuencia()
		if err != nil {
			return err
		}
		i.Secuencia = secuencia
		return repo.Create(i)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.toInteresResponse(i)
	resp.Cliente = toClienteResponse(cliente)
	resp.Propiedad = toPropiedadResponse(propiedad)
	return resp, nil
}

// List lista intereses en orden de creación, con cliente y propiedad anidados.
func (uc *InteresUseCase) List(limit, offset int) ([]*dto.InteresResponse, error) {
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
	out := make([]*dto.InteresResponse, 0, len(list))
	for _, i := range list {
		out = append(out, uc.expandir(i))
	}
	return out, nil
}

// Principal devuelve el interés principal de un cliente: el creado más
// recientemente, expandido con la propiedad y con asesor/observación ya
// resueltos. Si el cliente no tiene intereses devuelve ErrSinInteres: el
// consumidor debe mostrar un estado vacío explícito.
func (uc *InteresUseCase) Principal(clienteID string) (*dto.InteresResponse, error) {
	intereses, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	principal := entity.PrincipalInteres(clienteID, intereses)
	if principal == nil {
		return nil, domain.ErrSinInteres
	}
	return uc.expandir(principal), nil
}

// expandir arma la respuesta con los registros relacionados anidados.
func (uc *InteresUseCase) expandir(i *entity.Interes) *dto.InteresResponse {
	resp := uc.toInteresResponse(i)
	if cliente, err := uc.clienteRepo.GetByID(i.ClienteID); err == nil {
		resp.Cliente = toClienteResponse(cliente)
	}
	if propiedad, err := uc.propiedadRepo.GetByID(i.PropiedadID); err == nil {
		resp.Propiedad = toPropiedadResponse(propiedad)
	}
	return resp
}

// toInteresResponse resuelve asesor y observación: los registros nuevos los
// traen como campos propios; los heredados solo traen la nota codificada y
// se decodifican aquí.
func (uc *InteresUseCase) toInteresResponse(i *entity.Interes) *dto.InteresResponse {
	asesor, observacion := i.Asesor, i.Observacion
	if asesor == "" && observacion == "" && i.Nota != "" {
		partes := nota.Decode(i.Nota)
		asesor, observacion = partes.Asesor, partes.Observacion
	}
	return &dto.InteresResponse{
		ID:          i.ID,
		ClienteID:   i.ClienteID,
		PropiedadID: i.PropiedadID,
		Estado:      i.Estado,
		Asesor:      asesor,
		Observacion: observacion,
		Secuencia:   i.Secuencia,
	}
}
