package dto

import "github.com/shopspring/decimal"

// CreateOperacionRequest entrada para cerrar una operación. El tipo de gestión
// no se envía: se copia de la modalidad de la propiedad referenciada.
type CreateOperacionRequest struct {
	PropiedadID    string          `json:"propiedadId" validate:"required,uuid"`
	ClienteID      string          `json:"clienteId" validate:"omitempty,uuid"`
	Estado         string          `json:"estado" validate:"required,oneof=Alta Baja"`
	FechaOperacion string          `json:"fechaOperacion" validate:"required"`
	FechaContrato  string          `json:"fechaContrato" validate:"required"`
	PrecioFinal    decimal.Decimal `json:"precioFinal" validate:"required"`
	Honorarios     decimal.Decimal `json:"honorarios" validate:"required"`
	Asesor         string          `json:"asesor" validate:"required"`
}

// OperacionResponse salida de una operación cerrada.
type OperacionResponse struct {
	ID             string             `json:"id"`
	TipoGestion    string             `json:"tipoGestion"`
	Estado         string             `json:"estado"`
	FechaOperacion string             `json:"fechaOperacion"`
	FechaContrato  string             `json:"fechaContrato"`
	PrecioFinal    decimal.Decimal    `json:"precioFinal"`
	Honorarios     decimal.Decimal    `json:"honorarios"`
	Asesor         string             `json:"asesor"`
	PropiedadID    string             `json:"propiedadId"`
	ClienteID      string             `json:"clienteId,omitempty"`
	Propiedad      *PropiedadResponse `json:"Propiedad,omitempty"`
	Cliente        *ClienteResponse   `json:"Cliente,omitempty"`
}
