package entity

import "github.com/google/uuid"

// NewID genera un identificador opaco para un documento nuevo.
func NewID() string {
	return uuid.New().String()
}

// ValidID indica si id tiene el formato de los identificadores que asigna el sistema.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
