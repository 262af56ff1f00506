package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeAPI implementa solo los métodos de Collaborator que cada test usa; el
// resto está delegado a la interfaz embebida nil (panic si se llama).
type fakeAPI struct {
	Collaborator
	token string

	loginFn        func(dto.LoginRequest) (*dto.LoginResponse, error)
	registerFn     func(dto.RegisterRequest) (*dto.UsuarioResponse, error)
	listClientesFn func() ([]*dto.ClienteResponse, error)
}

func (f *fakeAPI) SetToken(token string) { f.token = token }

func (f *fakeAPI) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginFn(in)
}

func (f *fakeAPI) Register(_ context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	return f.registerFn(in)
}

func (f *fakeAPI) ListClientes(_ context.Context) ([]*dto.ClienteResponse, error) {
	return f.listClientesFn()
}

// fallaAlGuardar es un CredencialStorage que rechaza Guardar.
type fallaAlGuardar struct{ FileStorage }

func (f *fallaAlGuardar) Guardar(string, *dto.UsuarioResponse) error {
	return errors.New("disco lleno")
}

func tempStorage(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
}

func usuarioAna() dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: "u1", Nombre: "Ana", Email: "ana@inmo.pe", Rol: "asesor"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout / Register
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PersisteYMarcaSesion(t *testing.T) {
	api := &fakeAPI{loginFn: func(in dto.LoginRequest) (*dto.LoginResponse, error) {
		return &dto.LoginResponse{Token: "tok-123", Usuario: usuarioAna()}, nil
	}}
	cred := tempStorage(t)
	s := NewStore(api, cred)

	u, err := s.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.pe", Password: "secreta99"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Nombre)
	assert.True(t, s.Autenticado())
	assert.Equal(t, "tok-123", api.token, "el token debe quedar fijado en el cliente")

	token, persistido, err := cred.Cargar()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, persistido)
	assert.Equal(t, "u1", persistido.ID)
}

func TestLogin_ColaboradorRechaza_NoAutentica(t *testing.T) {
	api := &fakeAPI{loginFn: func(dto.LoginRequest) (*dto.LoginResponse, error) {
		return nil, errors.New("credenciales inválidas")
	}}
	cred := tempStorage(t)
	s := NewStore(api, cred)

	_, err := s.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.pe", Password: "mala"})
	require.Error(t, err)
	assert.False(t, s.Autenticado())

	token, persistido, err := cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token, "nada debe persistirse tras un login rechazado")
	assert.Nil(t, persistido)
}

// Todo o nada: si la persistencia falla, la sesión en memoria no se marca.
func TestLogin_PersistenciaFalla_NoDejaSesionAMedias(t *testing.T) {
	api := &fakeAPI{loginFn: func(dto.LoginRequest) (*dto.LoginResponse, error) {
		return &dto.LoginResponse{Token: "tok-123", Usuario: usuarioAna()}, nil
	}}
	s := NewStore(api, &fallaAlGuardar{})

	_, err := s.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.pe", Password: "secreta99"})
	require.Error(t, err)
	assert.False(t, s.Autenticado())
	assert.Nil(t, s.Usuario())
}

func TestLogout_LimpiaCredencialesYMemoria(t *testing.T) {
	api := &fakeAPI{loginFn: func(dto.LoginRequest) (*dto.LoginResponse, error) {
		return &dto.LoginResponse{Token: "tok-123", Usuario: usuarioAna()}, nil
	}}
	cred := tempStorage(t)
	s := NewStore(api, cred)

	_, err := s.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.pe", Password: "secreta99"})
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	assert.False(t, s.Autenticado())
	assert.Nil(t, s.Usuario())
	assert.Empty(t, api.token)

	token, persistido, err := cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, persistido)
}

// Registro y login están desacoplados: registrarse nunca autentica.
func TestRegister_NoAutentica(t *testing.T) {
	u := usuarioAna()
	api := &fakeAPI{registerFn: func(dto.RegisterRequest) (*dto.UsuarioResponse, error) {
		return &u, nil
	}}
	cred := tempStorage(t)
	s := NewStore(api, cred)

	out, err := s.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Ana", Email: "ana@inmo.pe", Password: "secreta99",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Nombre)
	assert.False(t, s.Autenticado())

	token, _, err := cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh de colecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRefreshClientes_ReemplazaYDevuelve(t *testing.T) {
	lote := []*dto.ClienteResponse{{ID: "c1", Nombre: "Luis"}, {ID: "c2", Nombre: "María"}}
	api := &fakeAPI{listClientesFn: func() ([]*dto.ClienteResponse, error) {
		return lote, nil
	}}
	s := NewStore(api, tempStorage(t))

	out, err := s.RefreshClientes(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2, "el refresh debe devolver la colección además de cachearla")

	cache, est := s.Clientes()
	assert.Len(t, cache, 2)
	assert.False(t, est.Cargando)
	assert.NoError(t, est.Err)
}

// Última escritura gana: un segundo refresh reemplaza la colección completa.
func TestRefreshClientes_UltimaEscrituraGana(t *testing.T) {
	respuestas := [][]*dto.ClienteResponse{
		{{ID: "c1"}, {ID: "c2"}},
		{{ID: "c3"}},
	}
	llamada := 0
	api := &fakeAPI{listClientesFn: func() ([]*dto.ClienteResponse, error) {
		out := respuestas[llamada]
		llamada++
		return out, nil
	}}
	s := NewStore(api, tempStorage(t))

	_, err := s.RefreshClientes(context.Background())
	require.NoError(t, err)
	_, err = s.RefreshClientes(context.Background())
	require.NoError(t, err)

	cache, _ := s.Clientes()
	require.Len(t, cache, 1)
	assert.Equal(t, "c3", cache[0].ID)
}

// Ante error del colaborador la caché queda intacta y el error queda
// registrado en el estado de esa colección.
func TestRefreshClientes_ErrorNoTocaLaCache(t *testing.T) {
	llamada := 0
	api := &fakeAPI{listClientesFn: func() ([]*dto.ClienteResponse, error) {
		llamada++
		if llamada == 1 {
			return []*dto.ClienteResponse{{ID: "c1"}}, nil
		}
		return nil, errors.New("backend caído")
	}}
	s := NewStore(api, tempStorage(t))

	_, err := s.RefreshClientes(context.Background())
	require.NoError(t, err)

	_, err = s.RefreshClientes(context.Background())
	require.Error(t, err)

	cache, est := s.Clientes()
	require.Len(t, cache, 1, "la caché previa debe sobrevivir al error")
	assert.Equal(t, "c1", cache[0].ID)
	assert.False(t, est.Cargando)
	assert.Error(t, est.Err)
}

// ──────────────────────────────────────────────────────────────────────────────
// FileStorage
// ──────────────────────────────────────────────────────────────────────────────

func TestFileStorage_SinArchivo_NoHaySesion(t *testing.T) {
	cred := tempStorage(t)
	token, usuario, err := cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, usuario)
}

func TestFileStorage_GuardarCargarLimpiar(t *testing.T) {
	cred := tempStorage(t)
	u := usuarioAna()
	require.NoError(t, cred.Guardar("tok-9", &u))

	token, persistido, err := cred.Cargar()
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)
	require.NotNil(t, persistido)
	assert.Equal(t, "ana@inmo.pe", persistido.Email)

	require.NoError(t, cred.Limpiar())
	token, persistido, err = cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, persistido)

	// Limpiar dos veces no es un error.
	require.NoError(t, cred.Limpiar())
}
