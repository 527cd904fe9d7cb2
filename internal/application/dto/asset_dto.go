package dto

import (
	"encoding/json"
	"time"
)

// CreateAssetRequest entrada para crear un asset. Quantity acepta número o string numérico.
type CreateAssetRequest struct {
	Name     string       `json:"name"`
	Quantity *json.Number `json:"quantity"`
	Image    *string      `json:"image"`
	Type     string       `json:"type"`
}

// UpdateAssetRequest entrada para reemplazar un asset: name, quantity y type son obligatorios.
type UpdateAssetRequest struct {
	Name     *string      `json:"name"`
	Quantity *json.Number `json:"quantity"`
	Image    *string      `json:"image"`
	Type     *string      `json:"type"`
}

// AssetResponse salida de un asset.
type AssetResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Image     *string   `json:"image"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
