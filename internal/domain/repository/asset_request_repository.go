package repository

import (
	"context"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
)

// AssetRequestRepository define el puerto de persistencia para AssetRequest.
type AssetRequestRepository interface {
	Create(ctx context.Context, req *entity.AssetRequest) error
	// GetByID devuelve (nil, nil) si no existe. Dentro de una transacción bloquea la fila.
	GetByID(ctx context.Context, id string) (*entity.AssetRequest, error)
	// ListNewestFirst ordena por created_at descendente.
	ListNewestFirst(ctx context.Context) ([]*entity.AssetRequest, error)
	Delete(ctx context.Context, id string) (int64, error)

	// TransitionStatus cambia from → to solo si el estado actual es from (compare-and-swap).
	TransitionStatus(ctx context.Context, id string, from, to entity.RequestStatus, at time.Time) (bool, error)
}
