package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario" // operario de corte: puede recibir órdenes asignadas
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema. El núcleo lo usa como identidad del
// actor (auditoría) y para la regla de asignación de órdenes de corte.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operario, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanBeAssignedCuts indica si el usuario puede recibir órdenes de corte.
// Regla de negocio: un administrador no es operario asignable.
func (u *User) CanBeAssignedCuts() bool {
	return u.Role != RoleAdmin && u.Status == "active"
}
