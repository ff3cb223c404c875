package entity

import "time"

// Roles de usuario disponibles.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario de la aplicación, siempre asociado a una empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
