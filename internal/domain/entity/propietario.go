package entity

import "time"

// Propietario representa al dueño de una o más propiedades.
// DNI: exactamente 8 dígitos (se valida en la capa de entrada, no aquí).
type Propietario struct {
	ID              string
	Nombre          string
	DNI             string
	FechaNacimiento time.Time
	Direccion       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
