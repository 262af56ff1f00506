package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modalidades de una propiedad. La modalidad se copia a Operacion.TipoGestion al
// cerrar una operación; si la propiedad cambia de modalidad después, la operación
// conserva el valor original.
const (
	ModalidadVenta      = "Venta"
	ModalidadAlquiler   = "Alquiler"
	ModalidadAnticresis = "Anticresis"
)

// Monedas soportadas para el precio.
const (
	MonedaUSD = "USD"
	MonedaPEN = "PEN"
)

// Tipos de propiedad.
const (
	TipoCasa         = "Casa"
	TipoDepartamento = "Departamento"
	TipoTerreno      = "Terreno"
)

// Propiedad representa un inmueble en cartera. Siempre pertenece a exactamente
// un Propietario.
type Propiedad struct {
	ID             string
	Direccion      string
	Precio         decimal.Decimal
	Moneda         string // USD, PEN
	Tipo           string // Casa, Departamento, Terreno
	Modalidad      string // Venta, Alquiler, Anticresis
	Area           decimal.Decimal // m2 de terreno
	AreaConstruida decimal.Decimal // m2 construidos
	Descripcion    string
	PropietarioID  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SimboloMoneda devuelve el símbolo de la moneda para presentación.
func (p *Propiedad) SimboloMoneda() string {
	if p.Moneda == MonedaPEN {
		return "S/."
	}
	return "$"
}
