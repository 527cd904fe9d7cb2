package workflow

import (
	"context"

	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios atados a esa tx.
// Si fn devuelve error, ninguna de sus escrituras queda persistida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		requestRepo repository.AssetRequestRepository,
	) error) error
}
