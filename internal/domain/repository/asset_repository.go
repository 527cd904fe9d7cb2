package repository

import (
	"context"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia para Asset (DIP).
// GetByID devuelve (nil, nil) si no existe.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	List(ctx context.Context) ([]*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id string) (int64, error)

	// DecrementIfAvailable descuenta qty solo si quantity >= qty, en una única operación.
	// Devuelve false si el asset no existe o no tiene stock suficiente.
	DecrementIfAvailable(ctx context.Context, id string, qty int) (bool, error)
}
