package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// HTTPClient implementa Collaborator contra la API HTTP del backend.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient construye el cliente. baseURL sin slash final, p.ej.
// "http://localhost:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken fija el Bearer token usado en las rutas protegidas.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do ejecuta la petición y decodifica la respuesta en out (si out != nil).
// Los errores del backend llegan como dto.ErrorResponse y se traducen a
// errores de dominio cuando hay mapeo directo.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("session: serializar petición: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("session: construir petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("session: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorDesde(resp, method, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("session: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// errorDesde traduce una respuesta de error del backend.
func (c *HTTPClient) errorDesde(resp *http.Response, method, path string) error {
	var e dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
		return fmt.Errorf("session: %s %s: HTTP %d", method, path, resp.StatusCode)
	}
	switch e.Code {
	case "SIN_INTERES_PRINCIPAL":
		return domain.ErrSinInteres
	case "UNAUTHORIZED", "MISSING_TOKEN", "INVALID_TOKEN":
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, e.Message)
	case "NOT_FOUND", "PROPIETARIO_NOT_FOUND":
		return fmt.Errorf("%w: %s", domain.ErrNotFound, e.Message)
	case "DUPLICATE", "EMAIL_EXISTS":
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, e.Message)
	}
	return fmt.Errorf("session: %s %s: %s (%s)", method, path, e.Message, e.Code)
}

func (c *HTTPClient) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	var out dto.UsuarioResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreatePropietario(ctx context.Context, in dto.CreatePropietarioRequest) (*dto.PropietarioResponse, error) {
	var out dto.PropietarioResponse
	if err := c.do(ctx, http.MethodPost, "/api/propietarios/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListPropietarios(ctx context.Context) ([]*dto.PropietarioResponse, error) {
	var out []*dto.PropietarioResponse
	if err := c.do(ctx, http.MethodGet, "/api/propietarios/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePropiedad(ctx context.Context, in dto.CreatePropiedadRequest) (*dto.PropiedadResponse, error) {
	var out dto.PropiedadResponse
	if err := c.do(ctx, http.MethodPost, "/api/propiedades/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListPropiedades(ctx context.Context) ([]*dto.PropiedadResponse, error) {
	var out []*dto.PropiedadResponse
	if err := c.do(ctx, http.MethodGet, "/api/propiedades/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCliente(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	var out dto.ClienteResponse
	if err := c.do(ctx, http.MethodPost, "/api/clientes/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListClientes(ctx context.Context) ([]*dto.ClienteResponse, error) {
	var out []*dto.ClienteResponse
	if err := c.do(ctx, http.MethodGet, "/api/clientes/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateInteres(ctx context.Context, in dto.CreateInteresRequest) (*dto.InteresResponse, error) {
	var out dto.InteresResponse
	if err := c.do(ctx, http.MethodPost, "/api/intereses/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListIntereses(ctx context.Context) ([]*dto.InteresResponse, error) {
	var out []*dto.InteresResponse
	if err := c.do(ctx, http.MethodGet, "/api/intereses/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) InteresPrincipal(ctx context.Context, clienteID string) (*dto.InteresResponse, error) {
	var out dto.InteresResponse
	if err := c.do(ctx, http.MethodGet, "/api/clientes/"+clienteID+"/interes-principal", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateOperacion(ctx context.Context, in dto.CreateOperacionRequest) (*dto.OperacionResponse, error) {
	var out dto.OperacionResponse
	if err := c.do(ctx, http.MethodPost, "/api/operaciones/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListOperaciones(ctx context.Context) ([]*dto.OperacionResponse, error) {
	var out []*dto.OperacionResponse
	if err := c.do(ctx, http.MethodGet, "/api/operaciones/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateVisita(ctx context.Context, in dto.CreateVisitaRequest) (*dto.VisitaResponse, error) {
	var out dto.VisitaResponse
	if err := c.do(ctx, http.MethodPost, "/api/visitas/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListVisitas(ctx context.Context) ([]*dto.VisitaResponse, error) {
	var out []*dto.VisitaResponse
	if err := c.do(ctx, http.MethodGet, "/api/visitas/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateSeguimiento(ctx context.Context, in dto.CreateSeguimientoRequest) (*dto.SeguimientoResponse, error) {
	var out dto.SeguimientoResponse
	if err := c.do(ctx, http.MethodPost, "/api/seguimientos/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListSeguimientos(ctx context.Context) ([]*dto.SeguimientoResponse, error) {
	var out []*dto.SeguimientoResponse
	if err := c.do(ctx, http.MethodGet, "/api/seguimientos/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Collaborator = (*HTTPClient)(nil)
