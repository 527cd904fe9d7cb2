package analytics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/memory"
)

// mapCache cache en memoria para tests; failGet/failSet simulan un Redis caído.
type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
	failSet bool
	sets    int
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("redis caído")
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return errors.New("redis caído")
	}
	c.sets++
	c.data[key] = value
	return nil
}

func addRequests(t *testing.T, s *memory.Store, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, s.Requests().Create(context.Background(), &entity.AssetRequest{
			ID: entity.NewID(), AssetName: n, Quantity: 1, Status: entity.RequestPending, CreatedAt: time.Now(),
		}))
	}
}

func TestRankTop_OrdenaYTrunca(t *testing.T) {
	groups := []repository.GroupCount{
		{Key: "a", Count: 1}, {Key: "b", Count: 3}, {Key: "c", Count: 2},
		{Key: "d", Count: 3}, {Key: "e", Count: 1}, {Key: "f", Count: 5}, {Key: "g", Count: 1},
	}
	got := analytics.RankTop(groups, 5)
	assert.Equal(t, []dto.GroupCountDTO{
		{ID: "f", Count: 5}, {ID: "b", Count: 3}, {ID: "d", Count: 3}, {ID: "c", Count: 2}, {ID: "a", Count: 1},
	}, got, "los empates conservan el orden de primera aparición")
	assert.Equal(t, 3, groups[1].Count, "no modifica la entrada")
}

func TestTopRequestedAssets_EscenarioBarras(t *testing.T) {
	s := memory.NewStore()
	addRequests(t, s, "laptop", "laptop", "monitor", "pen", "laptop", "monitor", "chair", "desk", "mouse")
	uc := analytics.NewDashboardUseCase(s.Dashboard(), nil, 0, nil)

	got, err := uc.TopRequestedAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, dto.GroupCountDTO{ID: "laptop", Count: 3}, got[0])
	assert.Equal(t, dto.GroupCountDTO{ID: "monitor", Count: 2}, got[1])
	assert.Equal(t, "pen", got[2].ID)
	assert.Equal(t, "chair", got[3].ID)
	assert.Equal(t, "desk", got[4].ID)
}

func TestAssetTypeDistribution(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	for _, typ := range []string{"Returnable", "Non-returnable", "Returnable"} {
		require.NoError(t, s.Assets().Create(ctx, &entity.Asset{ID: entity.NewID(), Name: "x", Type: typ}))
	}
	uc := analytics.NewDashboardUseCase(s.Dashboard(), nil, 0, nil)

	got, err := uc.AssetTypeDistribution(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []dto.GroupCountDTO{{ID: "Returnable", Count: 2}, {ID: "Non-returnable", Count: 1}}, got)
}

func TestDashboard_UsaCacheHastaQueVence(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	addRequests(t, s, "laptop")
	cache := newMapCache()
	uc := analytics.NewDashboardUseCase(s.Dashboard(), cache, time.Minute, nil)

	first, err := uc.TopRequestedAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	addRequests(t, s, "monitor")
	second, err := uc.TopRequestedAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "mientras la entrada esté vigente se sirve desde el cache")
	assert.Equal(t, 1, cache.sets)
}

func TestDashboard_FalloDeCacheNoFallaLaConsulta(t *testing.T) {
	s := memory.NewStore()
	addRequests(t, s, "laptop")
	cache := newMapCache()
	cache.failGet, cache.failSet = true, true
	uc := analytics.NewDashboardUseCase(s.Dashboard(), cache, time.Minute, nil)

	got, err := uc.TopRequestedAssets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.GroupCountDTO{{ID: "laptop", Count: 1}}, got)
}

func TestDashboard_EntradaCorruptaSeRecalcula(t *testing.T) {
	s := memory.NewStore()
	addRequests(t, s, "pen")
	cache := newMapCache()
	cache.data["dashboard:bar"] = []byte("{no-json")
	uc := analytics.NewDashboardUseCase(s.Dashboard(), cache, time.Minute, nil)

	got, err := uc.TopRequestedAssets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.GroupCountDTO{{ID: "pen", Count: 1}}, got)
}
