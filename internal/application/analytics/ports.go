package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
)

// DashboardCache almacén opcional de respuestas serializadas del dashboard.
// Get devuelve ok=false cuando la clave no existe o expiró.
type DashboardCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// AssetReportData datos que se vuelcan en el reporte PDF de inventario.
type AssetReportData struct {
	GeneratedAt  time.Time
	Assets       []*entity.Asset
	TypeCounts   []dto.GroupCountDTO
	TopRequested []dto.GroupCountDTO
}

// ReportGenerator genera la representación PDF del reporte de inventario.
type ReportGenerator interface {
	GenerateAssetReport(ctx context.Context, data AssetReportData) ([]byte, error)
}
