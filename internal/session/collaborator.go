package session

import (
	"context"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
)

// Collaborator define las operaciones que este núcleo consume del backend.
// Todas pueden fallar; el Store nunca deja estado parcial cuando fallan.
type Collaborator interface {
	// SetToken fija el Bearer token usado en las rutas protegidas.
	SetToken(token string)

	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error)

	CreatePropietario(ctx context.Context, in dto.CreatePropietarioRequest) (*dto.PropietarioResponse, error)
	ListPropietarios(ctx context.Context) ([]*dto.PropietarioResponse, error)

	CreatePropiedad(ctx context.Context, in dto.CreatePropiedadRequest) (*dto.PropiedadResponse, error)
	ListPropiedades(ctx context.Context) ([]*dto.PropiedadResponse, error)

	CreateCliente(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error)
	ListClientes(ctx context.Context) ([]*dto.ClienteResponse, error)

	CreateInteres(ctx context.Context, in dto.CreateInteresRequest) (*dto.InteresResponse, error)
	ListIntereses(ctx context.Context) ([]*dto.InteresResponse, error)
	InteresPrincipal(ctx context.Context, clienteID string) (*dto.InteresResponse, error)

	CreateOperacion(ctx context.Context, in dto.CreateOperacionRequest) (*dto.OperacionResponse, error)
	ListOperaciones(ctx context.Context) ([]*dto.OperacionResponse, error)

	CreateVisita(ctx context.Context, in dto.CreateVisitaRequest) (*dto.VisitaResponse, error)
	ListVisitas(ctx context.Context) ([]*dto.VisitaResponse, error)

	CreateSeguimiento(ctx context.Context, in dto.CreateSeguimientoRequest) (*dto.SeguimientoResponse, error)
	ListSeguimientos(ctx context.Context) ([]*dto.SeguimientoResponse, error)
}
