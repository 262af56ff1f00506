package dto

import "github.com/shopspring/decimal"

// CreatePropiedadRequest entrada para registrar una propiedad.
type CreatePropiedadRequest struct {
	Direccion      string          `json:"direccion" validate:"required"`
	Precio         decimal.Decimal `json:"precio" validate:"required"`
	Moneda         string          `json:"moneda" validate:"required,oneof=USD PEN"`
	Tipo           string          `json:"tipo" validate:"required,oneof=Casa Departamento Terreno"`
	Modalidad      string          `json:"modalidad" validate:"required,oneof=Venta Alquiler Anticresis"`
	Area           decimal.Decimal `json:"area"`
	AreaConstruida decimal.Decimal `json:"areaConstruida"`
	Descripcion    string          `json:"descripcion"`
	PropietarioID  string          `json:"propietarioId" validate:"required,uuid"`
}

// PropiedadResponse salida de una propiedad, con el propietario anidado si se
// pidió el join (como lo devolvía el backend original).
type PropiedadResponse struct {
	ID             string               `json:"id"`
	Direccion      string               `json:"direccion"`
	Precio         decimal.Decimal      `json:"precio"`
	Moneda         string               `json:"moneda"`
	Tipo           string               `json:"tipo"`
	Modalidad      string               `json:"modalidad"`
	Area           decimal.Decimal      `json:"area"`
	AreaConstruida decimal.Decimal      `json:"areaConstruida"`
	Descripcion    string               `json:"descripcion"`
	PropietarioID  string               `json:"propietarioId"`
	Propietario    *PropietarioResponse `json:"Propietario,omitempty"`
}
