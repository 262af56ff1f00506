package dto

// CreateVisitaRequest entrada para registrar una visita. La hora llega como la
// ingresa el asesor (formato de 12 horas); el caso de uso la normaliza a la
// forma canónica de 24 horas antes de persistir. Un minuto vacío equivale a 0,
// igual que el campo del formulario al perder el foco.
type CreateVisitaRequest struct {
	Asesor      string `json:"asesor" validate:"required"`
	ClienteID   string `json:"clienteId" validate:"required,uuid"`
	PropiedadID string `json:"propiedadId" validate:"required,uuid"`
	Fecha       string `json:"fecha" validate:"required"`
	Hora        int    `json:"hora" validate:"required,min=1,max=12"`
	Minuto      *int   `json:"minuto" validate:"omitempty,min=0,max=59"`
	Meridiano   string `json:"meridiano" validate:"required,oneof=AM PM"`
	Resultado   string `json:"resultado" validate:"required"`
	Comentario  string `json:"comentario"`
}

// VisitaResponse salida de una visita: hora canónica almacenada más su forma
// de presentación de 12 horas.
type VisitaResponse struct {
	ID          string             `json:"id"`
	Asesor      string             `json:"asesor"`
	Fecha       string             `json:"fecha"`
	Hora        string             `json:"hora"`        // canónica "HH:MM"
	HoraDisplay string             `json:"horaDisplay"` // "H:MM AM|PM"
	Resultado   string             `json:"resultado"`
	Comentario  string             `json:"comentario,omitempty"`
	ClienteID   string             `json:"clienteId"`
	PropiedadID string             `json:"propiedadId"`
	Cliente     *ClienteResponse   `json:"Cliente,omitempty"`
	Propiedad   *PropiedadResponse `json:"Propiedad,omitempty"`
}
