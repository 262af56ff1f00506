package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
)

type fakeVisitaRepo struct{ visitas []*entity.Visita }

func (f *fakeVisitaRepo) Create(v *entity.Visita) error {
	f.visitas = append(f.visitas, v)
	return nil
}

func (f *fakeVisitaRepo) GetByID(id string) (*entity.Visita, error) {
	for _, v := range f.visitas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVisitaRepo) List(limit, offset int) ([]*entity.Visita, error) {
	return f.visitas, nil
}

func (f *fakeVisitaRepo) ListByPropiedad(propiedadID string) ([]*entity.Visita, error) {
	var out []*entity.Visita
	for _, v := range f.visitas {
		if v.PropiedadID == propiedadID {
			out = append(out, v)
		}
	}
	return out, nil
}

func armarVisitaUC() (*VisitaUseCase, *fakeVisitaRepo) {
	repo := &fakeVisitaRepo{}
	clientes := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"c1": {ID: "c1", Nombre: "Luis"},
	}}
	propiedades := &fakePropiedadRepo{propiedades: map[string]*entity.Propiedad{
		"p1": {ID: "p1", Direccion: "Av. Arequipa 123"},
	}}
	return NewVisitaUseCase(repo, clientes, propiedades), repo
}

func requestVisita(hora int, minuto *int, meridiano string) dto.CreateVisitaRequest {
	return dto.CreateVisitaRequest{
		Asesor:      "Ana",
		ClienteID:   "c1",
		PropiedadID: "p1",
		Fecha:       "2026-08-15",
		Hora:        hora,
		Minuto:      minuto,
		Meridiano:   meridiano,
		Resultado:   entity.VisitaPosibleComprador,
	}
}

func intPtr(n int) *int { return &n }

// La hora de 12h que ingresa el asesor se guarda canónica y la respuesta trae
// las dos formas.
func TestVisita_CreateNormalizaHora(t *testing.T) {
	uc, repo := armarVisitaUC()

	out, err := uc.Create(requestVisita(3, intPtr(30), "PM"))
	require.NoError(t, err)
	assert.Equal(t, "15:30", out.Hora)
	assert.Equal(t, "3:30 PM", out.HoraDisplay)
	assert.Equal(t, "2026-08-15", out.Fecha)

	require.Len(t, repo.visitas, 1)
	assert.Equal(t, "15:30", repo.visitas[0].Hora, "lo persistido es la forma canónica")
}

// Minuto ausente equivale a 0, como el campo del formulario al perder el foco.
func TestVisita_MinutoAusenteEsCero(t *testing.T) {
	uc, _ := armarVisitaUC()

	out, err := uc.Create(requestVisita(9, nil, "AM"))
	require.NoError(t, err)
	assert.Equal(t, "09:00", out.Hora)
	assert.Equal(t, "9:00 AM", out.HoraDisplay)
}

// Medianoche y mediodía: 12 AM → 00:00, 12 PM → 12:00.
func TestVisita_CasosDoce(t *testing.T) {
	uc, _ := armarVisitaUC()

	madrugada, err := uc.Create(requestVisita(12, intPtr(0), "AM"))
	require.NoError(t, err)
	assert.Equal(t, "00:00", madrugada.Hora)
	assert.Equal(t, "12:00 AM", madrugada.HoraDisplay)

	mediodia, err := uc.Create(requestVisita(12, intPtr(0), "PM"))
	require.NoError(t, err)
	assert.Equal(t, "12:00", mediodia.Hora)
	assert.Equal(t, "12:00 PM", mediodia.HoraDisplay)
}

// Hora fuera de rango o meridiano desconocido: error, nunca coerción.
func TestVisita_HoraInvalidaRechazada(t *testing.T) {
	uc, repo := armarVisitaUC()

	_, err := uc.Create(requestVisita(0, nil, "AM"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(requestVisita(13, nil, "PM"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(requestVisita(9, nil, "XM"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.visitas)
}

// Resultado fuera del catálogo → rechazado.
func TestVisita_ResultadoInvalido(t *testing.T) {
	uc, _ := armarVisitaUC()

	in := requestVisita(9, nil, "AM")
	in.Resultado = "Tal vez"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
