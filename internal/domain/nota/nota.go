// Package nota codifica y decodifica la nota de un interés, que en los
// registros antiguos empaquetaba asesor y observación en un solo campo de
// texto con la gramática:
//
//	"Asesor Cliente: <asesor>. Obs: <observación>"
//
// Los registros nuevos persisten ambos campos por separado; este paquete se
// mantiene como compatibilidad para decodificar las notas ya almacenadas.
package nota

import "strings"

// Literales de la gramática. Cualquier productor distinto de Encode rompe el
// parseo estructurado y cae en el fallback de Decode.
const (
	PrefijoAsesor = "Asesor Cliente: "
	SeparadorObs  = ". Obs: "
)

// Valores por defecto.
const (
	AsesorNA             = "N/A"             // al codificar sin asesor
	AsesorNoEspecificado = "No especificado" // al decodificar una nota sin estructura
)

// Partes es el resultado de decodificar una nota.
type Partes struct {
	Asesor      string
	Observacion string
}

// Encode produce la forma codificada de (asesor, observación). Un asesor vacío
// se codifica como "N/A".
//
// La gramática es ambigua si asesor u observación contienen el separador
// ". Obs: " o la observación empieza con el prefijo del asesor: en ese caso
// Decode(Encode(...)) no reproduce las partes originales. Limitación conocida
// del formato; no se corrige sin una migración.
func Encode(asesor, observacion string) string {
	if asesor == "" {
		asesor = AsesorNA
	}
	return PrefijoAsesor + asesor + SeparadorObs + observacion
}

// Decode separa una nota en asesor y observación.
//
// Se parte la nota en el primer ". Obs: ". Si la primera parte lleva el
// prefijo "Asesor Cliente: ", se le quita para obtener el asesor; si no,
// el asesor queda "No especificado". Si no hay separador, la nota completa
// es la observación: las notas anteriores a la gramática (o creadas por otros
// medios) no tienen forma estructurada y se conservan íntegras.
func Decode(n string) Partes {
	partes := strings.SplitN(n, SeparadorObs, 2)

	asesor := AsesorNoEspecificado
	if resto, ok := strings.CutPrefix(partes[0], PrefijoAsesor); ok {
		asesor = resto
	}

	if len(partes) == 2 {
		return Partes{Asesor: asesor, Observacion: partes[1]}
	}
	return Partes{Asesor: asesor, Observacion: n}
}
