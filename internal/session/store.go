// Package session implementa el núcleo de sesión del back-office: el
// contenedor de estado inyectable (Store), la puerta de autorización (Guard),
// la persistencia de credenciales y el cliente HTTP hacia el backend.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
)

// coleccion es la caché de una colección de dominio. Cada colección tiene su
// propio flag de carga y su propio último error: el spinner de un refresh no
// enmascara el de otro.
type coleccion[T any] struct {
	items    []T
	cargando bool
	err      error
}

// EstadoColeccion expone el estado de una caché para los consumidores.
type EstadoColeccion struct {
	Cargando bool
	Err      error
}

// Store es el contenedor de estado de la sesión. Se construye una vez y se
// inyecta en los componentes que lo necesitan. Cada colección es una caché
// independiente que arranca vacía y se refresca por separado; un refresh
// reemplaza la colección completa de forma atómica (última escritura gana,
// nunca un registro parcial).
type Store struct {
	api  Collaborator
	cred CredencialStorage

	mu          sync.RWMutex
	usuario     *dto.UsuarioResponse
	autenticado bool

	propietarios coleccion[*dto.PropietarioResponse]
	propiedades  coleccion[*dto.PropiedadResponse]
	clientes     coleccion[*dto.ClienteResponse]
	intereses    coleccion[*dto.InteresResponse]
	operaciones  coleccion[*dto.OperacionResponse]
	visitas      coleccion[*dto.VisitaResponse]
	seguimientos coleccion[*dto.SeguimientoResponse]
}

// NewStore construye el Store con su colaborador y su storage de credenciales.
func NewStore(api Collaborator, cred CredencialStorage) *Store {
	return &Store{api: api, cred: cred}
}

// ── Autenticación ─────────────────────────────────────────────────────────────

// Login autentica contra el colaborador, persiste token y usuario, y recién
// entonces marca la sesión en memoria. Todo o nada: si la persistencia falla
// la sesión no queda a medias.
func (s *Store) Login(ctx context.Context, in dto.LoginRequest) (*dto.UsuarioResponse, error) {
	out, err := s.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.cred.Guardar(out.Token, &out.Usuario); err != nil {
		return nil, fmt.Errorf("session: login sin persistir, sesión no iniciada: %w", err)
	}
	s.api.SetToken(out.Token)
	s.mu.Lock()
	s.usuario = &out.Usuario
	s.autenticado = true
	s.mu.Unlock()
	return &out.Usuario, nil
}

// Logout limpia credenciales persistidas y estado en memoria.
func (s *Store) Logout() error {
	if err := s.cred.Limpiar(); err != nil {
		return err
	}
	s.api.SetToken("")
	s.mu.Lock()
	s.usuario = nil
	s.autenticado = false
	s.mu.Unlock()
	return nil
}

// Register registra al usuario y NO lo autentica: registro y login están
// desacoplados a propósito.
func (s *Store) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	return s.api.Register(ctx, in)
}

// Autenticado informa el flag de sesión en memoria.
func (s *Store) Autenticado() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autenticado
}

// Usuario devuelve el usuario en memoria (nil si no hay sesión).
func (s *Store) Usuario() *dto.UsuarioResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usuario
}

// reconciliar repone usuario y flag desde los datos persistidos. Lo invoca el
// Guard cuando hay credenciales en disco pero la memoria arrancó limpia.
func (s *Store) reconciliar(token string, usuario *dto.UsuarioResponse) {
	s.api.SetToken(token)
	s.mu.Lock()
	s.usuario = usuario
	s.autenticado = true
	s.mu.Unlock()
}

// ── Refresh de colecciones ────────────────────────────────────────────────────

// refresh ejecuta el ciclo común: marcar cargando, llamar al colaborador y, si
// salió bien, reemplazar la colección completa. Ante error la caché queda como
// estaba (sin escrituras parciales) y el error queda registrado en la
// colección. La colección refrescada también se devuelve, para que el caller
// pueda asertar o renderizar sin releer el Store.
func refresh[T any](s *Store, c *coleccion[T], fn func() ([]T, error)) ([]T, error) {
	s.mu.Lock()
	c.cargando = true
	s.mu.Unlock()

	items, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	c.cargando = false
	if err != nil {
		c.err = err
		return nil, err
	}
	c.err = nil
	c.items = items
	return items, nil
}

func estado[T any](s *Store, c *coleccion[T]) ([]T, EstadoColeccion) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.items, EstadoColeccion{Cargando: c.cargando, Err: c.err}
}

// RefreshPropietarios refresca la colección de propietarios.
func (s *Store) RefreshPropietarios(ctx context.Context) ([]*dto.PropietarioResponse, error) {
	return refresh(s, &s.propietarios, func() ([]*dto.PropietarioResponse, error) {
		return s.api.ListPropietarios(ctx)
	})
}

// Propietarios devuelve la caché y su estado.
func (s *Store) Propietarios() ([]*dto.PropietarioResponse, EstadoColeccion) {
	return estado(s, &s.propietarios)
}

// RefreshPropiedades refresca la colección de propiedades.
func (s *Store) RefreshPropiedades(ctx context.Context) ([]*dto.PropiedadResponse, error) {
	return refresh(s, &s.propiedades, func() ([]*dto.PropiedadResponse, error) {
		return s.api.ListPropiedades(ctx)
	})
}

// Propiedades devuelve la caché y su estado.
func (s *Store) Propiedades() ([]*dto.PropiedadResponse, EstadoColeccion) {
	return estado(s, &s.propiedades)
}

// RefreshClientes refresca la colección de clientes.
func (s *Store) RefreshClientes(ctx context.Context) ([]*dto.ClienteResponse, error) {
	return refresh(s, &s.clientes, func() ([]*dto.ClienteResponse, error) {
		return s.api.ListClientes(ctx)
	})
}

// Clientes devuelve la caché y su estado.
func (s *Store) Clientes() ([]*dto.ClienteResponse, EstadoColeccion) {
	return estado(s, &s.clientes)
}

// RefreshIntereses refresca la colección de intereses.
func (s *Store) RefreshIntereses(ctx context.Context) ([]*dto.InteresResponse, error) {
	return refresh(s, &s.intereses, func() ([]*dto.InteresResponse, error) {
		return s.api.ListIntereses(ctx)
	})
}

// Intereses devuelve la caché y su estado.
func (s *Store) Intereses() ([]*dto.InteresResponse, EstadoColeccion) {
	return estado(s, &s.intereses)
}

// RefreshOperaciones refresca la colección de operaciones.
func (s *Store) RefreshOperaciones(ctx context.Context) ([]*dto.OperacionResponse, error) {
	return refresh(s, &s.operaciones, func() ([]*dto.OperacionResponse, error) {
		return s.api.ListOperaciones(ctx)
	})
}

// Operaciones devuelve la caché y su estado.
func (s *Store) Operaciones() ([]*dto.OperacionResponse, EstadoColeccion) {
	return estado(s, &s.operaciones)
}

// RefreshVisitas refresca la colección de visitas.
func (s *Store) RefreshVisitas(ctx context.Context) ([]*dto.VisitaResponse, error) {
	return refresh(s, &s.visitas, func() ([]*dto.VisitaResponse, error) {
		return s.api.ListVisitas(ctx)
	})
}

// Visitas devuelve la caché y su estado.
func (s *Store) Visitas() ([]*dto.VisitaResponse, EstadoColeccion) {
	return estado(s, &s.visitas)
}

// RefreshSeguimientos refresca la colección de seguimientos.
func (s *Store) RefreshSeguimientos(ctx context.Context) ([]*dto.SeguimientoResponse, error) {
	return refresh(s, &s.seguimientos, func() ([]*dto.SeguimientoResponse, error) {
		return s.api.ListSeguimientos(ctx)
	})
}

// Seguimientos devuelve la caché y su estado.
func (s *Store) Seguimientos() ([]*dto.SeguimientoResponse, EstadoColeccion) {
	return estado(s, &s.seguimientos)
}
