package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleGerente   = "gerente"
	RoleBodeguero = "bodeguero"
)

// User representa un usuario del sistema (pertenece a una sucursal).
type User struct {
	ID           string
	BranchID     int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, gerente, bodeguero
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
