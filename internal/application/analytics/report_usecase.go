package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// ReportUseCase arma el reporte PDF de inventario con los mismos agregados del dashboard.
type ReportUseCase struct {
	assetRepo repository.AssetRepository
	dashboard *DashboardUseCase
	generator ReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(assetRepo repository.AssetRepository, dashboard *DashboardUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{assetRepo: assetRepo, dashboard: dashboard, generator: generator, now: time.Now}
}

// AssetReportPDF devuelve los bytes del PDF.
func (uc *ReportUseCase) AssetReportPDF(ctx context.Context) ([]byte, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar assets: %w", err)
	}
	types, err := uc.dashboard.AssetTypeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.dashboard.TopRequestedAssets(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateAssetReport(ctx, AssetReportData{
		GeneratedAt:  uc.now(),
		Assets:       assets,
		TypeCounts:   types,
		TopRequested: top,
	})
}
