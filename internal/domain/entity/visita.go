package entity

import "time"

// Resultados posibles de una visita física.
const (
	VisitaListoParaComprar = "Listo para comprar"
	VisitaPosibleComprador = "Posible comprador"
	VisitaNoLeInteresa     = "No le interesa"
)

// Visita registra una visita física de un cliente a una propiedad.
// Hora se almacena siempre en forma canónica de 24 horas "HH:MM" (ver paquete
// horario); el asesor la ingresa y la ve en formato de 12 horas.
type Visita struct {
	ID          string
	Asesor      string
	Fecha       time.Time
	Hora        string // canónica "HH:MM"
	Resultado   string
	Comentario  string
	ClienteID   string
	PropiedadID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
