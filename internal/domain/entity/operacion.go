package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una operación cerrada.
const (
	OperacionAlta = "Alta" // concretada
	OperacionBaja = "Baja" // cancelada
)

// Operacion representa un cierre de gestión (venta, alquiler o anticresis).
//
// TipoGestion se copia de la modalidad de la propiedad en el momento de crear la
// operación y no se vuelve a derivar: un cambio posterior de modalidad en la
// propiedad no altera operaciones ya registradas.
type Operacion struct {
	ID             string
	TipoGestion    string // Venta, Alquiler, Anticresis (copiado de la propiedad)
	Estado         string // Alta, Baja
	FechaOperacion time.Time
	FechaContrato  time.Time
	PrecioFinal    decimal.Decimal
	Honorarios     decimal.Decimal // porcentaje de comisión
	Asesor         string
	PropiedadID    string
	ClienteID      string // opcional
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
