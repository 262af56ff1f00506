package dto

// CreateSeguimientoRequest entrada para registrar un seguimiento.
type CreateSeguimientoRequest struct {
	TipoAccion  string `json:"tipoAccion" validate:"required,oneof=Llamada WhatsApp Correo Reunion"`
	Fecha       string `json:"fecha" validate:"required"`
	Respuesta   string `json:"respuesta"`
	ClienteID   string `json:"clienteId" validate:"required,uuid"`
	PropiedadID string `json:"propiedadId" validate:"required,uuid"`
}

// SeguimientoResponse salida de un seguimiento.
type SeguimientoResponse struct {
	ID          string             `json:"id"`
	TipoAccion  string             `json:"tipoAccion"`
	Fecha       string             `json:"fecha"`
	Respuesta   string             `json:"respuesta"`
	ClienteID   string             `json:"clienteId"`
	PropiedadID string             `json:"propiedadId"`
	Cliente     *ClienteResponse   `json:"Cliente,omitempty"`
	Propiedad   *PropiedadResponse `json:"Propiedad,omitempty"`
}
