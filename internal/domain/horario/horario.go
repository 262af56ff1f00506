// Package horario convierte entre la hora de 12 horas que ingresa el asesor
// (hora 1–12, minuto 0–59, AM/PM) y la forma canónica de 24 horas "HH:MM" con
// la que se almacena la hora de una visita.
package horario

import (
	"fmt"
	"strconv"
	"strings"
)

// Meridianos válidos.
const (
	AM = "AM"
	PM = "PM"
)

// Canonical convierte la tripleta de 12 horas a la forma canónica "HH:MM".
// Regla: PM con hora distinta de 12 suma 12; AM con hora 12 es la hora 0;
// en el resto de casos la hora no cambia. El minuto se usa tal cual, con
// relleno a dos dígitos.
func Canonical(hora, minuto int, meridiano string) (string, error) {
	if hora < 1 || hora > 12 {
		return "", fmt.Errorf("horario: hora %d fuera de rango 1..12", hora)
	}
	if minuto < 0 || minuto > 59 {
		return "", fmt.Errorf("horario: minuto %d fuera de rango 0..59", minuto)
	}
	h24 := hora
	switch meridiano {
	case PM:
		if h24 != 12 {
			h24 += 12
		}
	case AM:
		if h24 == 12 {
			h24 = 0
		}
	default:
		return "", fmt.Errorf("horario: meridiano %q inválido (AM|PM)", meridiano)
	}
	return fmt.Sprintf("%02d:%02d", h24, minuto), nil
}

// Display12h convierte una hora canónica "HH:MM" a su forma de presentación
// "H:MM AM|PM". Regla: PM si HH >= 12; la hora mostrada es HH mod 12, con el
// 0 mostrado como 12. Una entrada no numérica es un error del llamador y se
// señala, nunca se corrige en silencio.
func Display12h(hora24 string) (string, error) {
	partes := strings.SplitN(hora24, ":", 2)
	if len(partes) != 2 {
		return "", fmt.Errorf("horario: %q no tiene forma HH:MM", hora24)
	}
	hh, err := strconv.Atoi(partes[0])
	if err != nil {
		return "", fmt.Errorf("horario: hora no numérica en %q", hora24)
	}
	if _, err := strconv.Atoi(partes[1]); err != nil {
		return "", fmt.Errorf("horario: minuto no numérico en %q", hora24)
	}
	if hh < 0 || hh > 23 {
		return "", fmt.Errorf("horario: hora %d fuera de rango 0..23", hh)
	}
	meridiano := AM
	if hh >= 12 {
		meridiano = PM
	}
	h12 := hh % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, partes[1], meridiano), nil
}
