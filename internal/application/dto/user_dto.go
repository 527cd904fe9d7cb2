package dto

import "time"

// CreateUserRequest entrada para registrar un usuario.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Team     string `json:"team"`
	PhotoURL string `json:"photoURL"`
}

// UpdateUserRequest actualización parcial: solo se aplican los campos presentes y no vacíos.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Team     *string `json:"team"`
	PhotoURL *string `json:"photoURL"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	Team      string    `json:"team,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCreatedResponse respuesta del alta de usuario.
type UserCreatedResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

// RoleResponse respuesta de la consulta de rol por email.
type RoleResponse struct {
	Role string `json:"role"`
}
