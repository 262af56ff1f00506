package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/horario"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

var resultadosVisita = map[string]bool{
	entity.VisitaListoParaComprar: true,
	entity.VisitaPosibleComprador: true,
	entity.VisitaNoLeInteresa:     true,
}

// VisitaUseCase casos de uso para visitas físicas a propiedades.
type VisitaUseCase struct {
	repo          repository.VisitaRepository
	clienteRepo   repository.ClienteRepository
	propiedadRepo repository.PropiedadRepository
}

// NewVisitaUseCase construye el caso de uso.
func NewVisitaUseCase(
	repo repository.VisitaRepository,
	clienteRepo repository.ClienteRepository,
	propiedadRepo repository.PropiedadRepository,
) *VisitaUseCase {
	return &VisitaUseCase{repo: repo, clienteRepo: clienteRepo, propiedadRepo: propiedadRepo}
}

// Create registra una visita. La hora de 12 horas que ingresa el asesor se
// normaliza a la forma canónica de 24 horas antes de persistir; un minuto
// ausente equivale a 0.
func (uc *VisitaUseCase) Create(in dto.CreateVisitaRequest) (*dto.VisitaResponse, error) {
	if in.Asesor == "" || !resultadosVisita[in.Resultado] {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	minuto := 0
	if in.Minuto != nil {
		minuto = *in.Minuto
	}
	hora, err := horario.Canonical(in.Hora, minuto, in.Meridiano)
	if err != nil {
		return nil, domain.ErrInvalidInput
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
	v := &entity.Visita{
		ID:          uuid.New().String(),
		Asesor:      in.Asesor,
		Fecha:       fecha,
		Hora:        hora,
		Resultado:   in.Resultado,
		Comentario:  in.Comentario,
		ClienteID:   in.ClienteID,
		PropiedadID: in.PropiedadID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	resp := toVisitaResponse(v)
	resp.Cliente = toClienteResponse(cliente)
	resp.Propiedad = toPropiedadResponse(propiedad)
	return resp, nil
}

// List lista visitas con cliente y propiedad anidados.
func (uc *VisitaUseCase) List(limit, offset int) ([]*dto.VisitaResponse, error) {
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
	return uc.expandir(list)
}

// ListByPropiedad lista las visitas registradas sobre una propiedad.
func (uc *VisitaUseCase) ListByPropiedad(propiedadID string) ([]*dto.VisitaResponse, error) {
	list, err := uc.repo.ListByPropiedad(propiedadID)
	if err != nil {
		return nil, err
	}
	return uc.expandir(list)
}

func (uc *VisitaUseCase) expandir(list []*entity.Visita) ([]*dto.VisitaResponse, error) {
	out := make([]*dto.VisitaResponse, 0, len(list))
	for _, v := range list {
		resp := toVisitaResponse(v)
		if cliente, err := uc.clienteRepo.GetByID(v.ClienteID); err == nil {
			resp.Cliente = toClienteResponse(cliente)
		}
		if propiedad, err := uc.propiedadRepo.GetByID(v.PropiedadID); err == nil {
			resp.Propiedad = toPropiedadResponse(propiedad)
		}
		out = append(out, resp)
	}
	return out, nil
}

func toVisitaResponse(v *entity.Visita) *dto.VisitaResponse {
	display, err := horario.Display12h(v.Hora)
	if err != nil {
		// Hora fuera de la forma canónica (dato legado); se muestra tal cual.
		display = v.Hora
	}
	return &dto.VisitaResponse{
		ID:          v.ID,
		Asesor:      v.Asesor,
		Fecha:       v.Fecha.Format(formatoFecha),
		Hora:        v.Hora,
		HoraDisplay: display,
		Resultado:   v.Resultado,
		Comentario:  v.Comentario,
		ClienteID:   v.ClienteID,
		PropiedadID: v.PropiedadID,
	}
}
