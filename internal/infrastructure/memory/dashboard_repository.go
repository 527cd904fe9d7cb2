package memory

import (
	"context"

	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agregados calculados sobre las colecciones en memoria.
type DashboardRepo struct {
	s *Store
}

// CountAssetsByType agrupa assets por type en orden de primera aparición.
func (r *DashboardRepo) CountAssetsByType(_ context.Context) ([]repository.GroupCount, error) {
	defer r.s.lock(false)()
	keys := make([]string, 0, len(r.s.assetOrder))
	for _, id := range r.s.assetOrder {
		keys = append(keys, r.s.assets[id].Type)
	}
	return groupInOrder(keys), nil
}

// CountRequestsByAssetName agrupa solicitudes por asset_name en orden de primera aparición.
func (r *DashboardRepo) CountRequestsByAssetName(_ context.Context) ([]repository.GroupCount, error) {
	defer r.s.lock(false)()
	keys := make([]string, 0, len(r.s.requestOrder))
	for _, id := range r.s.requestOrder {
		keys = append(keys, r.s.requests[id].AssetName)
	}
	return groupInOrder(keys), nil
}

func groupInOrder(keys []string) []repository.GroupCount {
	index := make(map[string]int)
	var out []repository.GroupCount
	for _, k := range keys {
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, repository.GroupCount{Key: k, Count: 1})
	}
	return out
}
