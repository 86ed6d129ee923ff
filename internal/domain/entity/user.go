package entity

import "time"

// Roles válidos para User.
const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

// Estados de cuenta.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa una cuenta de la plataforma (cliente, vendedor o admin).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // user, vendor, admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si la cuenta puede operar.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
