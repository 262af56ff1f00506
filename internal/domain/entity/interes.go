package entity

import "time"

// Interes vincula un Cliente con una Propiedad que le interesa.
//
// Asesor y Observacion son los campos estructurados actuales. Nota conserva el
// texto plano de los registros antiguos, que codificaban ambos campos en un solo
// string (ver paquete nota); cuando Asesor está vacío y Nota no, la capa de
// aplicación decodifica Nota para presentación.
type Interes struct {
	ID          string
	ClienteID   string
	PropiedadID string
	Estado      string
	Asesor      string
	Observacion string
	Nota        string // legacy: "Asesor Cliente: X. Obs: Y" o texto libre
	Secuencia   int64  // orden de creación, monotónico por tabla
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrincipalInteres selecciona el interés "principal" de un cliente: el creado
// más recientemente. El orden se decide por Secuencia; ante empate (registros
// migrados con secuencia 0) gana el que aparece más tarde en la colección, que
// es el comportamiento histórico. Devuelve nil si el cliente no tiene intereses:
// el consumidor debe mostrar un estado vacío explícito, no un render en blanco.
func PrincipalInteres(clienteID string, intereses []*Interes) *Interes {
	var principal *Interes
	for _, in := range intereses {
		if in == nil || in.ClienteID != clienteID {
			continue
		}
		if principal == nil || in.Secuencia >= principal.Secuencia {
			principal = in
		}
	}
	return principal
}
