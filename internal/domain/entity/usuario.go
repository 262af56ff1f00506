package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin  = "admin"
	RolAsesor = "asesor"
)

// Usuario representa un usuario del sistema (asesor u administrador de la inmobiliaria).
type Usuario struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // admin, asesor
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
