package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAsset(t *testing.T, s *memory.Store, name, typ string, qty int) *entity.Asset {
	t.Helper()
	a := &entity.Asset{ID: entity.NewID(), Name: name, Type: typ, Quantity: qty, CreatedAt: time.Now()}
	require.NoError(t, s.Assets().Create(context.Background(), a))
	return a
}

func TestRun_RestauraEstadoSiFnFalla(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := seedAsset(t, s, "laptop", "Returnable", 5)

	boom := errors.New("boom")
	err := s.Run(ctx, func(assets repository.AssetRepository, requests repository.AssetRequestRepository) error {
		ok, err := assets.DecrementIfAvailable(ctx, a.ID, 3)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, requests.Create(ctx, &entity.AssetRequest{ID: entity.NewID(), AssetID: a.ID, Quantity: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Assets().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)

	list, err := s.Requests().ListNewestFirst(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRun_ConfirmaSiFnTermina(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := seedAsset(t, s, "laptop", "Returnable", 5)

	err := s.Run(ctx, func(assets repository.AssetRepository, _ repository.AssetRequestRepository) error {
		_, err := assets.DecrementIfAvailable(ctx, a.ID, 2)
		return err
	})
	require.NoError(t, err)

	got, _ := s.Assets().GetByID(ctx, a.ID)
	assert.Equal(t, 3, got.Quantity)
}

func TestDecrementIfAvailable(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := seedAsset(t, s, "mouse", "Non-returnable", 2)

	ok, err := s.Assets().DecrementIfAvailable(ctx, a.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Assets().DecrementIfAvailable(ctx, a.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Assets().DecrementIfAvailable(ctx, "no-existe", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransitionStatus_SoloDesdeEstadoEsperado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	req := &entity.AssetRequest{ID: entity.NewID(), Status: entity.RequestPending, Quantity: 1}
	require.NoError(t, s.Requests().Create(ctx, req))

	now := time.Now()
	ok, err := s.Requests().TransitionStatus(ctx, req.ID, entity.RequestPending, entity.RequestRejected, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Requests().TransitionStatus(ctx, req.ID, entity.RequestPending, entity.RequestApproved, now)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := s.Requests().GetByID(ctx, req.ID)
	assert.Equal(t, entity.RequestRejected, got.Status)
	require.NotNil(t, got.ProcessedAt)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Requests().Create(ctx, &entity.AssetRequest{
			ID: entity.NewID(), AssetName: name, Quantity: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	list, err := s.Requests().ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].AssetName)
	assert.Equal(t, "a", list[2].AssetName)
}

func TestUserGetByEmail_PrimeroDadoDeAlta(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: entity.NewID(), Email: "a@x.com", Role: "hr"}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: entity.NewID(), Email: "a@x.com", Role: "admin"}))

	u, err := s.Users().GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hr", u.Role)

	u, err = s.Users().GetByEmail(ctx, "nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDashboard_AgrupaEnOrdenDeAparicion(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAsset(t, s, "laptop", "Returnable", 1)
	seedAsset(t, s, "pen", "Non-returnable", 1)
	seedAsset(t, s, "monitor", "Returnable", 1)

	groups, err := s.Dashboard().CountAssetsByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, []repository.GroupCount{
		{Key: "Returnable", Count: 2},
		{Key: "Non-returnable", Count: 1},
	}, groups)
}
