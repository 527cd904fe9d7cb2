package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación en memoria de AssetRepository.
type AssetRepo struct {
	s    *Store
	inTx bool
}

// Create persiste un nuevo asset.
func (r *AssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.assets[asset.ID]; ok {
		return fmt.Errorf("insert asset: id duplicado %s", asset.ID)
	}
	r.s.assets[asset.ID] = copyAsset(asset)
	r.s.assetOrder = append(r.s.assetOrder, asset.ID)
	return nil
}

// GetByID obtiene un asset por ID.
func (r *AssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	defer r.s.lock(r.inTx)()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	out := copyAsset(&a)
	return &out, nil
}

// List devuelve los assets en orden de alta.
func (r *AssetRepo) List(_ context.Context) ([]*entity.Asset, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.Asset, 0, len(r.s.assetOrder))
	for _, id := range r.s.assetOrder {
		a := copyAsset(ptr(r.s.assets[id]))
		list = append(list, &a)
	}
	return list, nil
}

// Update reemplaza los campos editables.
func (r *AssetRepo) Update(_ context.Context, asset *entity.Asset) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.assets[asset.ID]; !ok {
		return nil
	}
	r.s.assets[asset.ID] = copyAsset(asset)
	return nil
}

// Delete elimina un asset por ID.
func (r *AssetRepo) Delete(_ context.Context, id string) (int64, error) {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.assets[id]; !ok {
		return 0, nil
	}
	delete(r.s.assets, id)
	r.s.assetOrder = removeID(r.s.assetOrder, id)
	return 1, nil
}

// DecrementIfAvailable descuenta qty bajo el mutex del almacén.
func (r *AssetRepo) DecrementIfAvailable(_ context.Context, id string, qty int) (bool, error) {
	defer r.s.lock(r.inTx)()
	a, ok := r.s.assets[id]
	if !ok || a.Quantity < qty {
		return false, nil
	}
	a.Quantity -= qty
	r.s.assets[id] = a
	return true, nil
}

func copyAsset(a *entity.Asset) entity.Asset {
	out := *a
	if a.Image != nil {
		img := *a.Image
		out.Image = &img
	}
	return out
}

func ptr[T any](v T) *T { return &v }
