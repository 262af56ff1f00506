package horario_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmotek/inmobiliaria-api/internal/domain/horario"
)

func TestCanonical_CasosConocidos(t *testing.T) {
	casos := []struct {
		hora      int
		minuto    int
		meridiano string
		esperado  string
	}{
		{9, 0, horario.AM, "09:00"},
		{9, 30, horario.PM, "21:30"},
		{12, 0, horario.AM, "00:00"}, // medianoche
		{12, 0, horario.PM, "12:00"}, // mediodía
		{12, 59, horario.AM, "00:59"},
		{1, 5, horario.PM, "13:05"},
		{11, 59, horario.PM, "23:59"},
		{1, 0, horario.AM, "01:00"},
	}
	for _, c := range casos {
		t.Run(fmt.Sprintf("%d:%02d_%s", c.hora, c.minuto, c.meridiano), func(t *testing.T) {
			got, err := horario.Canonical(c.hora, c.minuto, c.meridiano)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, got)
		})
	}
}

func TestCanonical_EntradaInvalida(t *testing.T) {
	_, err := horario.Canonical(0, 0, horario.AM)
	assert.Error(t, err, "hora 0 no existe en formato de 12 horas")

	_, err = horario.Canonical(13, 0, horario.AM)
	assert.Error(t, err)

	_, err = horario.Canonical(10, 60, horario.AM)
	assert.Error(t, err)

	_, err = horario.Canonical(10, 0, "XM")
	assert.Error(t, err, "meridiano desconocido debe rechazarse")
}

func TestDisplay12h_CasosConocidos(t *testing.T) {
	casos := []struct {
		canonica string
		esperado string
	}{
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"09:15", "9:15 AM"},
		{"21:30", "9:30 PM"},
		{"23:59", "11:59 PM"},
		{"13:05", "1:05 PM"},
	}
	for _, c := range casos {
		got, err := horario.Display12h(c.canonica)
		require.NoError(t, err, "canónica %q debe ser válida", c.canonica)
		assert.Equal(t, c.esperado, got)
	}
}

func TestDisplay12h_EntradaMalformada(t *testing.T) {
	for _, mala := range []string{"", "930", "aa:bb", "12:xx", "25:00", "-1:00"} {
		_, err := horario.Display12h(mala)
		assert.Error(t, err, "entrada %q debe rechazarse, no corregirse", mala)
	}
}

// TestIdaYVuelta verifica que toda tripleta válida sobrevive el viaje
// 12h -> canónica -> 12h: misma hora mostrada, mismo meridiano, mismo minuto.
func TestIdaYVuelta(t *testing.T) {
	for _, meridiano := range []string{horario.AM, horario.PM} {
		for hora := 1; hora <= 12; hora++ {
			for _, minuto := range []int{0, 1, 30, 59} {
				canonica, err := horario.Canonical(hora, minuto, meridiano)
				require.NoError(t, err)

				display, err := horario.Display12h(canonica)
				require.NoError(t, err)

				esperado := fmt.Sprintf("%d:%02d %s", hora, minuto, meridiano)
				assert.Equal(t, esperado, display,
					"la tripleta %d:%02d %s debe reproducirse tras normalizar", hora, minuto, meridiano)
			}
		}
	}
}
