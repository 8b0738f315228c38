package entity

import "time"

// Perfis válidos de User.
const (
	RoleAdmin      = "admin"
	RoleAlmoxarife = "almoxarife"
	RoleConsulta   = "consulta"
)

// User usuário que acessa a API.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, almoxarife, consulta
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
