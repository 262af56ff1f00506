package dto

// CreateInteresRequest entrada para registrar el interés de un cliente en una
// propiedad. Asesor y observación son campos separados; la nota codificada en
// un solo string es un formato heredado que ya no se produce al crear.
type CreateInteresRequest struct {
	ClienteID   string `json:"clienteId" validate:"required,uuid"`
	PropiedadID string `json:"propiedadId" validate:"required,uuid"`
	Estado      string `json:"estado"`
	Asesor      string `json:"asesor"`
	Observacion string `json:"observacion"`
}

// InteresResponse salida de un interés, con asesor y observación ya resueltos:
// para registros heredados provienen de decodificar la nota.
type InteresResponse struct {
	ID          string             `json:"id"`
	ClienteID   string             `json:"clienteId"`
	PropiedadID string             `json:"propiedadId"`
	Estado      string             `json:"estado"`
	Asesor      string             `json:"asesor"`
	Observacion string             `json:"observacion"`
	Secuencia   int64              `json:"secuencia"`
	Cliente     *ClienteResponse   `json:"Cliente,omitempty"`
	Propiedad   *PropiedadResponse `json:"Propiedad,omitempty"`
}
