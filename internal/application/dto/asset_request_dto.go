package dto

import (
	"encoding/json"
	"time"
)

// CreateAssetRequestRequest entrada para solicitar un asset.
type CreateAssetRequestRequest struct {
	AssetID  string       `json:"assetId"`
	Quantity *json.Number `json:"quantity"`
	Reason   string       `json:"reason"`
	UserName string       `json:"userName"`
	Email    string       `json:"email"`
}

// AssetRequestResponse salida de una solicitud.
type AssetRequestResponse struct {
	ID          string     `json:"_id"`
	AssetID     string     `json:"assetId"`
	AssetName   string     `json:"assetName"`
	Quantity    int        `json:"quantity"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UserName    string     `json:"userName"`
	Email       string     `json:"email"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

// RequestDeleteResponse respuesta al borrar una solicitud.
type RequestDeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
