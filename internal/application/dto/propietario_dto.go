package dto

// CreatePropietarioRequest entrada para registrar un propietario.
// Las fechas viajan como "YYYY-MM-DD" (formato del input date del formulario).
type CreatePropietarioRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=200"`
	DNI             string `json:"dni" validate:"required,len=8,numeric"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required"`
	Direccion       string `json:"direccion" validate:"required"`
}

// PropietarioResponse salida de un propietario.
type PropietarioResponse struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	DNI             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Direccion       string `json:"direccion"`
}
