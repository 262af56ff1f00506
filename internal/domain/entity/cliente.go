package entity

import "time"

// Cliente representa a un comprador o arrendatario potencial.
// DNI: exactamente 8 dígitos (se valida en la capa de entrada).
type Cliente struct {
	ID              string
	Nombre          string
	DNI             string
	FechaNacimiento time.Time
	Direccion       string
	Telefono        string
	Email           string
	EstadoCivil     string
	Ocupacion       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
