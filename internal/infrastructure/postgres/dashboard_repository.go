package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los widgets del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountAssetsByType agrupa assets por type, en orden de primera aparición.
func (r *DashboardRepo) CountAssetsByType(ctx context.Context) ([]repository.GroupCount, error) {
	const query = `
	SELECT type, COUNT(*) AS count
	FROM assets
	GROUP BY type
	ORDER BY MIN(seq)`
	return r.groupCounts(ctx, query)
}

// CountRequestsByAssetName agrupa solicitudes por asset_name, en orden de primera aparición.
func (r *DashboardRepo) CountRequestsByAssetName(ctx context.Context) ([]repository.GroupCount, error) {
	const query = `
	SELECT asset_name, COUNT(*) AS count
	FROM asset_requests
	GROUP BY asset_name
	ORDER BY MIN(seq)`
	return r.groupCounts(ctx, query)
}

func (r *DashboardRepo) groupCounts(ctx context.Context, query string) ([]repository.GroupCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard query: %w", err)
	}
	defer rows.Close()
	out := make([]repository.GroupCount, 0)
	for rows.Next() {
		var g repository.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("scan dashboard group: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
