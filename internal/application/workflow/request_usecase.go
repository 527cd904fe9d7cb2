// Package workflow contiene el ciclo de vida de las solicitudes de assets:
// alta, aprobación con descuento de stock, rechazo y borrado.
package workflow

import (
	"context"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/inventory"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// RequestUseCase orquesta las solicitudes de assets.
//
// Máquina de estados: pending → approved | pending → rejected; ambos terminales.
// La aprobación descuenta stock con una actualización condicional dentro de la misma
// transacción que cambia el estado, de modo que dos aprobaciones concurrentes nunca dejan
// la cantidad por debajo de cero.
type RequestUseCase struct {
	txRunner    TxRunner
	assetRepo   repository.AssetRepository
	requestRepo repository.AssetRequestRepository
	now         func() time.Time
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	requestRepo repository.AssetRequestRepository,
) *RequestUseCase {
	return &RequestUseCase{
		txRunner:    txRunner,
		assetRepo:   assetRepo,
		requestRepo: requestRepo,
		now:         time.Now,
	}
}

// List devuelve todas las solicitudes, las más recientes primero.
func (uc *RequestUseCase) List(ctx context.Context) ([]dto.AssetRequestResponse, error) {
	list, err := uc.requestRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToAssetRequestResponse(r))
	}
	return items, nil
}

// Create registra una solicitud en estado pending copiando el nombre actual del asset.
func (uc *RequestUseCase) Create(ctx context.Context, in dto.CreateAssetRequestRequest) (*dto.InsertResult, error) {
	if in.AssetID == "" || in.Quantity == nil {
		return nil, domain.ErrMissingFields
	}
	if !entity.ValidID(in.AssetID) {
		return nil, domain.ErrInvalidID
	}
	qty, err := inventory.ParseQuantity(in.Quantity.String())
	if err != nil {
		return nil, err
	}
	if qty == 0 {
		return nil, domain.ErrInvalidInput
	}

	asset, err := uc.assetRepo.GetByID(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	req := &entity.AssetRequest{
		ID:        entity.NewID(),
		AssetID:   asset.ID,
		AssetName: asset.Name,
		Quantity:  qty,
		Reason:    in.Reason,
		Status:    entity.RequestPending,
		UserName:  orDefault(in.UserName, entity.DefaultRequesterName),
		Email:     orDefault(in.Email, entity.DefaultRequesterEmail),
		CreatedAt: uc.now(),
	}
	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return &dto.InsertResult{Acknowledged: true, InsertedID: req.ID}, nil
}

// Approve descuenta el stock y marca la solicitud como approved en una sola transacción.
// Errores: ErrRequestNotFound, ErrInvalidTransition (ya no está pending), ErrAssetNotFound,
// ErrInsufficientStock. En cualquier error no queda ninguna escritura.
func (uc *RequestUseCase) Approve(ctx context.Context, id string) error {
	if !entity.ValidID(id) {
		return domain.ErrInvalidID
	}
	now := uc.now()
	return uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		requestRepo repository.AssetRequestRepository,
	) error {
		req, err := requestRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrRequestNotFound
		}
		if !req.Status.CanTransition(entity.RequestApproved) {
			return domain.ErrInvalidTransition
		}

		ok, err := assetRepo.DecrementIfAvailable(ctx, req.AssetID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			asset, err := assetRepo.GetByID(ctx, req.AssetID)
			if err != nil {
				return err
			}
			if asset == nil {
				return domain.ErrAssetNotFound
			}
			return domain.ErrInsufficientStock
		}

		moved, err := requestRepo.TransitionStatus(ctx, id, entity.RequestPending, entity.RequestApproved, now)
		if err != nil {
			return err
		}
		if !moved {
			// Otro proceso resolvió la solicitud entre la lectura y el cambio; el rollback devuelve el stock.
			return domain.ErrInvalidTransition
		}
		return nil
	})
}

// Reject marca la solicitud como rejected. Solo se permite desde pending.
func (uc *RequestUseCase) Reject(ctx context.Context, id string) error {
	if !entity.ValidID(id) {
		return domain.ErrInvalidID
	}
	moved, err := uc.requestRepo.TransitionStatus(ctx, id, entity.RequestPending, entity.RequestRejected, uc.now())
	if err != nil {
		return err
	}
	if moved {
		return nil
	}
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrRequestNotFound
	}
	return domain.ErrInvalidTransition
}

// Delete elimina la solicitud sin devolver stock al asset.
func (uc *RequestUseCase) Delete(ctx context.Context, id string) (*dto.RequestDeleteResponse, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	n, err := uc.requestRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RequestDeleteResponse{DeletedCount: n}, nil
}

// ToAssetRequestResponse convierte la entidad al DTO de salida.
func ToAssetRequestResponse(r *entity.AssetRequest) *dto.AssetRequestResponse {
	if r == nil {
		return nil
	}
	return &dto.AssetRequestResponse{
		ID:          r.ID,
		AssetID:     r.AssetID,
		AssetName:   r.AssetName,
		Quantity:    r.Quantity,
		Reason:      r.Reason,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UserName:    r.UserName,
		Email:       r.Email,
		ProcessedAt: r.ProcessedAt,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
