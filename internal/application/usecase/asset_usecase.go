package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/inventory"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// AssetUseCase casos de uso CRUD del catálogo de assets.
type AssetUseCase struct {
	repo repository.AssetRepository
	now  func() time.Time
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los assets, sin filtros ni paginación.
func (uc *AssetUseCase) List(ctx context.Context) ([]dto.AssetResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return items, nil
}

// GetByID obtiene un asset por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	return toAssetResponse(asset), nil
}

// Create valida y normaliza el nombre antes de persistir.
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.InsertResult, error) {
	name := inventory.NormalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrMissingFields
	}
	quantity := 0
	if in.Quantity != nil {
		q, err := inventory.ParseQuantity(in.Quantity.String())
		if err != nil {
			return nil, err
		}
		quantity = q
	}
	now := uc.now()
	asset := &entity.Asset{
		ID:        entity.NewID(),
		Name:      name,
		Quantity:  quantity,
		Image:     nonEmptyPtr(in.Image),
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: asset.ID}, nil
}

// Update reemplaza name, quantity, image y type. Image ausente se guarda como null.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.UpdateResult, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	var name string
	if in.Name != nil {
		name = inventory.NormalizeName(*in.Name)
	}
	if name == "" || in.Quantity == nil || in.Type == nil || *in.Type == "" {
		return nil, domain.ErrMissingFields
	}
	quantity, err := inventory.ParseQuantity(in.Quantity.String())
	if err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrAssetNotFound
	}

	next := *current
	next.Name = name
	next.Quantity = quantity
	next.Image = nonEmptyPtr(in.Image)
	next.Type = *in.Type
	if current.SameContent(&next) {
		return &dto.UpdateResult{ModifiedCount: 0}, nil
	}
	next.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, &next); err != nil {
		return nil, err
	}
	return &dto.UpdateResult{ModifiedCount: 1}, nil
}

// Delete elimina sin verificar existencia; informa cuántos documentos se borraron.
func (uc *AssetUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResult, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Quantity:  a.Quantity,
		Image:     a.Image,
		Type:      a.Type,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
