package usecase

import (
	"time"

	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// formatoFecha es el formato de las fechas de formulario (input type=date).
const formatoFecha = "2006-01-02"

// parseFecha convierte "YYYY-MM-DD" a time.Time. Devuelve ErrInvalidInput si
// el formato no coincide.
func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// dniValido verifica que el DNI tenga exactamente 8 dígitos numéricos.
func dniValido(dni string) bool {
	if len(dni) != 8 {
		return false
	}
	for _, r := range dni {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
