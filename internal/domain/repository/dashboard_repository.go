package repository

import "context"

// GroupCount resultado de un agrupamiento: clave del grupo y cantidad de documentos.
type GroupCount struct {
	Key   string
	Count int
}

// DashboardRepository consultas de solo lectura para los widgets del dashboard.
type DashboardRepository interface {
	// CountAssetsByType agrupa assets por type.
	CountAssetsByType(ctx context.Context) ([]GroupCount, error)
	// CountRequestsByAssetName agrupa todas las solicitudes por asset_name,
	// en el orden en que cada nombre apareció por primera vez.
	CountRequestsByAssetName(ctx context.Context) ([]GroupCount, error)
}
