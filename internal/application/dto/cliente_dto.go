package dto

// CreateClienteRequest entrada para registrar un cliente.
type CreateClienteRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=200"`
	DNI             string `json:"dni" validate:"required,len=8,numeric"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required"`
	Direccion       string `json:"direccion" validate:"required"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email" validate:"omitempty,email"`
	EstadoCivil     string `json:"estadoCivil"`
	Ocupacion       string `json:"ocupacion"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	DNI             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email,omitempty"`
	EstadoCivil     string `json:"estadoCivil,omitempty"`
	Ocupacion       string `json:"ocupacion,omitempty"`
}
