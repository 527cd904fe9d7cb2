package entity

import "time"

// Roles conocidos. El rol por defecto se usa cuando el usuario no existe o no tiene rol.
const (
	RoleAdmin   = "admin"
	RoleHR      = "hr"
	RoleDefault = "user"
)

// UserStatusActive estado asignado cuando el alta no informa uno.
const UserStatusActive = "active"

// User miembro del directorio. El email no es único.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Status    string
	Team      string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveRole devuelve el rol o RoleDefault si está vacío.
func (u *User) EffectiveRole() string {
	if u == nil || u.Role == "" {
		return RoleDefault
	}
	return u.Role
}
