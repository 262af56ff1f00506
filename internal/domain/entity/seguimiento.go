package entity

import "time"

// Canales de contacto de un seguimiento.
const (
	AccionLlamada  = "Llamada"
	AccionWhatsApp = "WhatsApp"
	AccionCorreo   = "Correo"
	AccionReunion  = "Reunion"
)

// Seguimiento registra un contacto con el cliente sobre una propiedad
// (llamada, WhatsApp, correo o reunión) y la respuesta obtenida.
type Seguimiento struct {
	ID          string
	TipoAccion  string
	Fecha       time.Time
	Respuesta   string
	ClienteID   string
	PropiedadID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
