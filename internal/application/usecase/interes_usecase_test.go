package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInteresRepo struct {
	intereses []*entity.Interes
	secuencia int64
}

func (f *fakeInteresRepo) Create(i *entity.Interes) error {
	f.intereses = append(f.intereses, i)
	return nil
}

func (f *fakeInteresRepo) GetByID(id string) (*entity.Interes, error) {
	for _, i := range f.intereses {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInteresRepo) List(limit, offset int) ([]*entity.Interes, error) {
	return f.intereses, nil
}

func (f *fakeInteresRepo) ListByCliente(clienteID string) ([]*entity.Interes, error) {
	var out []*entity.Interes
	for _, i := range f.intereses {
		if i.ClienteID == clienteID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInteresRepo) NextSecuencia() (int64, error) {
	f.secuencia++
	return f.secuencia, nil
}

// fakeTxRunner corre el callback directo contra el repo, sin transacción.
type fakeTxRunner struct{ repo repository.InteresRepository }

func (f *fakeTxRunner) RunInteres(_ context.Context, fn func(repository.InteresRepository) error) error {
	return fn(f.repo)
}

type fakeClienteRepo struct{ clientes map[string]*entity.Cliente }

func (f *fakeClienteRepo) Create(c *entity.Cliente) error             { f.clientes[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return f.clientes[id], nil }
func (f *fakeClienteRepo) GetByDNI(string) (*entity.Cliente, error)   { return nil, nil }
func (f *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error)   { return nil, nil }

type fakePropiedadRepo struct{ propiedades map[string]*entity.Propiedad }

func (f *fakePropiedadRepo) Create(p *entity.Propiedad) error { f.propiedades[p.ID] = p; return nil }
func (f *fakePropiedadRepo) GetByID(id string) (*entity.Propiedad, error) {
	return f.propiedades[id], nil
}
func (f *fakePropiedadRepo) List(int, int) ([]*entity.Propiedad, error) { return nil, nil }
func (f *fakePropiedadRepo) ListByPropietario(string) ([]*entity.Propiedad, error) {
	return nil, nil
}

func armarInteresUC() (*InteresUseCase, *fakeInteresRepo) {
	repo := &fakeInteresRepo{}
	clientes := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"c1": {ID: "c1", Nombre: "Luis"},
	}}
	propiedades := &fakePropiedadRepo{propiedades: map[string]*entity.Propiedad{
		"p1": {ID: "p1", Direccion: "Av. Arequipa 123"},
		"p2": {ID: "p2", Direccion: "Jr. Cusco 456"},
	}}
	uc := NewInteresUseCase(repo, clientes, propiedades, &fakeTxRunner{repo: repo})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Cada alta recibe la siguiente secuencia; el principal es siempre el último.
func TestInteres_CreateAsignaSecuenciaYElUltimoEsPrincipal(t *testing.T) {
	uc, _ := armarInteresUC()
	ctx := context.Background()

	primero, err := uc.Create(ctx, dto.CreateInteresRequest{ClienteID: "c1", PropiedadID: "p1", Asesor: "Ana"})
	require.NoError(t, err)
	segundo, err := uc.Create(ctx, dto.CreateInteresRequest{ClienteID: "c1", PropiedadID: "p2", Asesor: "Ana"})
	require.NoError(t, err)
	assert.Greater(t, segundo.Secuencia, primero.Secuencia)

	principal, err := uc.Principal("c1")
	require.NoError(t, err)
	assert.Equal(t, segundo.ID, principal.ID)
	require.NotNil(t, principal.Propiedad)
	assert.Equal(t, "Jr. Cusco 456", principal.Propiedad.Direccion)
}

// Cliente sin intereses → ErrSinInteres, no un principal en blanco.
func TestInteres_PrincipalSinIntereses(t *testing.T) {
	uc, _ := armarInteresUC()

	_, err := uc.Principal("c1")
	assert.ErrorIs(t, err, domain.ErrSinInteres)
}

// Cliente o propiedad inexistente → ErrNotFound, nada se persiste.
func TestInteres_CreateReferenciaInexistente(t *testing.T) {
	uc, repo := armarInteresUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateInteresRequest{ClienteID: "c9", PropiedadID: "p1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateInteresRequest{ClienteID: "c1", PropiedadID: "p9"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, repo.intereses)
}

// Registro heredado: asesor/observación vacíos pero nota codificada → la
// respuesta los resuelve decodificando la nota.
func TestInteres_NotaHeredadaSeDecodifica(t *testing.T) {
	uc, repo := armarInteresUC()
	repo.intereses = append(repo.intereses, &entity.Interes{
		ID:          "i-legacy",
		ClienteID:   "c1",
		PropiedadID: "p1",
		Nota:        "Asesor Cliente: Ana. Obs: Quiere ver de noche",
		Secuencia:   0,
	})

	principal, err := uc.Principal("c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", principal.Asesor)
	assert.Equal(t, "Quiere ver de noche", principal.Observacion)
}

// Registro nuevo con campos propios: la nota no interviene.
func TestInteres_CamposPropiosNoDecodifican(t *testing.T) {
	uc, repo := armarInteresUC()
	repo.intereses = append(repo.intereses, &entity.Interes{
		ID:          "i1",
		ClienteID:   "c1",
		PropiedadID: "p1",
		Asesor:      "Rosa",
		Observacion: "prefiere estreno",
		Nota:        "Asesor Cliente: Ana. Obs: vieja",
		Secuencia:   1,
	})

	principal, err := uc.Principal("c1")
	require.NoError(t, err)
	assert.Equal(t, "Rosa", principal.Asesor)
	assert.Equal(t, "prefiere estreno", principal.Observacion)
}
