// Package analytics contiene los agregados del dashboard y el reporte de inventario.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// DashboardTopRequested número de assets en el gráfico de barras.
const DashboardTopRequested = 5

const (
	cacheKeyTypeDistribution = "dashboard:pie"
	cacheKeyTopRequested     = "dashboard:bar"
)

// DashboardUseCase calcula la distribución por tipo y el top de assets solicitados.
//
// Fuente de datos: DashboardRepository (consultas read-only). Si hay cache, los resultados
// se sirven desde ahí hasta que vence el TTL; un fallo del cache nunca falla la consulta.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache DashboardCache
	ttl   time.Duration
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, cache DashboardCache, ttl time.Duration, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{repo: repo, cache: cache, ttl: ttl, log: log}
}

// AssetTypeDistribution cuenta assets por type.
func (uc *DashboardUseCase) AssetTypeDistribution(ctx context.Context) ([]dto.GroupCountDTO, error) {
	return uc.cached(ctx, cacheKeyTypeDistribution, func() ([]dto.GroupCountDTO, error) {
		groups, err := uc.repo.CountAssetsByType(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard: distribución por tipo: %w", err)
		}
		return toGroupDTOs(groups), nil
	})
}

// TopRequestedAssets cuenta todas las solicitudes por assetName (sin importar su estado),
// ordena de mayor a menor y conserva los primeros DashboardTopRequested.
// Los empates mantienen el orden de primera aparición.
func (uc *DashboardUseCase) TopRequestedAssets(ctx context.Context) ([]dto.GroupCountDTO, error) {
	return uc.cached(ctx, cacheKeyTopRequested, func() ([]dto.GroupCountDTO, error) {
		groups, err := uc.repo.CountRequestsByAssetName(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard: top solicitados: %w", err)
		}
		return RankTop(groups, DashboardTopRequested), nil
	})
}

// RankTop ordena grupos por conteo descendente de forma estable y trunca a limit.
func RankTop(groups []repository.GroupCount, limit int) []dto.GroupCountDTO {
	ranked := make([]repository.GroupCount, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return toGroupDTOs(ranked)
}

func (uc *DashboardUseCase) cached(ctx context.Context, key string, load func() ([]dto.GroupCountDTO, error)) ([]dto.GroupCountDTO, error) {
	if uc.cache != nil {
		raw, ok, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			uc.log.Warn().Err(err).Str("key", key).Msg("dashboard: lectura de cache")
		case ok:
			var out []dto.GroupCountDTO
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			uc.log.Warn().Str("key", key).Msg("dashboard: entrada de cache corrupta")
		}
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && uc.ttl > 0 {
		raw, err := json.Marshal(out)
		if err == nil {
			err = uc.cache.Set(ctx, key, raw, uc.ttl)
		}
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("dashboard: escritura de cache")
		}
	}
	return out, nil
}

func toGroupDTOs(groups []repository.GroupCount) []dto.GroupCountDTO {
	out := make([]dto.GroupCountDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupCountDTO{ID: g.Key, Count: g.Count})
	}
	return out
}
