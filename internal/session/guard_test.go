package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardConStorage(t *testing.T, cred *FileStorage) (*Guard, *Store, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	store := NewStore(api, cred)
	return NewGuard(store, cred), store, api
}

// Sin token persistido, ruta privada → redirige a /login.
func TestGuard_SinTokenRutaPrivada_RedirigeALogin(t *testing.T) {
	guard, _, _ := guardConStorage(t, tempStorage(t))

	d, err := guard.Evaluar("/clientes")
	require.NoError(t, err)
	assert.False(t, d.Autorizado)
	assert.Equal(t, RutaLogin, d.RedirigirA)
}

// Sin token, ruta pública → autoriza (el login tiene que poder renderizar).
func TestGuard_SinTokenRutaPublica_Autoriza(t *testing.T) {
	guard, _, _ := guardConStorage(t, tempStorage(t))

	for _, ruta := range []string{RutaLogin, RutaRegistro} {
		d, err := guard.Evaluar(ruta)
		require.NoError(t, err)
		assert.True(t, d.Autorizado, "ruta %s debe autorizarse sin sesión", ruta)
		assert.Empty(t, d.RedirigirA)
	}
}

// Con token persistido, ruta pública → redirige al home.
func TestGuard_ConTokenRutaPublica_RedirigeAlHome(t *testing.T) {
	cred := tempStorage(t)
	u := usuarioAna()
	require.NoError(t, cred.Guardar("tok-1", &u))
	guard, _, _ := guardConStorage(t, cred)

	d, err := guard.Evaluar(RutaLogin)
	require.NoError(t, err)
	assert.False(t, d.Autorizado)
	assert.Equal(t, RutaHome, d.RedirigirA)
}

// Token y usuario persistidos pero flag en memoria apagado (arranque en frío)
// → reconcilia desde disco y autoriza sin redirección.
func TestGuard_ReconciliaDesdeDisco(t *testing.T) {
	cred := tempStorage(t)
	u := usuarioAna()
	require.NoError(t, cred.Guardar("tok-1", &u))
	guard, store, api := guardConStorage(t, cred)

	require.False(t, store.Autenticado(), "la memoria arranca limpia")

	d, err := guard.Evaluar(RutaHome)
	require.NoError(t, err)
	assert.True(t, d.Autorizado)
	assert.Empty(t, d.RedirigirA)

	assert.True(t, store.Autenticado(), "el flag debe reponerse desde disco")
	require.NotNil(t, store.Usuario())
	assert.Equal(t, "Ana", store.Usuario().Nombre)
	assert.Equal(t, "tok-1", api.token, "el token persistido debe fijarse en el cliente")
}

// Sesión ya reconciliada → autoriza directo, sin volver a tocar la memoria.
func TestGuard_SesionActiva_AutorizaDirecto(t *testing.T) {
	cred := tempStorage(t)
	u := usuarioAna()
	require.NoError(t, cred.Guardar("tok-1", &u))
	guard, store, _ := guardConStorage(t, cred)

	_, err := guard.Evaluar(RutaHome)
	require.NoError(t, err)
	require.True(t, store.Autenticado())

	d, err := guard.Evaluar("/propiedades")
	require.NoError(t, err)
	assert.True(t, d.Autorizado)
	assert.Empty(t, d.RedirigirA)
}

// Token sin usuario persistido: sesión rota → logout forzado y /login.
func TestGuard_TokenSinUsuario_LogoutForzado(t *testing.T) {
	cred := tempStorage(t)
	require.NoError(t, cred.Guardar("tok-huerfano", nil))
	guard, store, _ := guardConStorage(t, cred)

	d, err := guard.Evaluar(RutaHome)
	require.NoError(t, err)
	assert.False(t, d.Autorizado)
	assert.Equal(t, RutaLogin, d.RedirigirA)
	assert.False(t, store.Autenticado())

	// Las credenciales rotas deben haberse limpiado.
	token, usuario, err := cred.Cargar()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, usuario)
}

// Terminal: para cada navegación, exactamente una de las dos salidas.
func TestGuard_DecisionTerminal(t *testing.T) {
	cred := tempStorage(t)
	u := usuarioAna()
	require.NoError(t, cred.Guardar("tok-1", &u))
	guard, _, _ := guardConStorage(t, cred)

	for _, ruta := range []string{RutaHome, RutaLogin, "/clientes", "/visitas"} {
		d, err := guard.Evaluar(ruta)
		require.NoError(t, err)
		if d.Autorizado {
			assert.Empty(t, d.RedirigirA, "ruta %s: autorizado no puede además redirigir", ruta)
		} else {
			assert.NotEmpty(t, d.RedirigirA, "ruta %s: no autorizado debe redirigir", ruta)
		}
	}
}
