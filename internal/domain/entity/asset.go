package entity

import "time"

// Asset representa un ítem del inventario con cantidad disponible y categoría.
// Quantity nunca es negativa en reposo: solo se descuenta con una actualización condicional.
type Asset struct {
	ID        string
	Name      string // minúsculas y sin espacios en los extremos
	Quantity  int
	Image     *string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameContent indica si dos assets tienen los mismos campos editables.
func (a *Asset) SameContent(o *Asset) bool {
	if a.Name != o.Name || a.Quantity != o.Quantity || a.Type != o.Type {
		return false
	}
	if a.Image == nil || o.Image == nil {
		return a.Image == nil && o.Image == nil
	}
	return *a.Image == *o.Image
}
