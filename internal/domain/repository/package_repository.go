package repository

import (
	"context"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
)

// PackageRepository persiste el paquete contratado por cada cuenta HR.
type PackageRepository interface {
	Upsert(ctx context.Context, pkg *entity.HRPackage) error
	GetByHRID(ctx context.Context, hrID string) (*entity.HRPackage, error)
}
