package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.AssetRequestRepository = (*AssetRequestRepo)(nil)

// AssetRequestRepo implementación en memoria de AssetRequestRepository.
type AssetRequestRepo struct {
	s    *Store
	inTx bool
}

// Create persiste una nueva solicitud.
func (r *AssetRequestRepo) Create(_ context.Context, req *entity.AssetRequest) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.requests[req.ID]; ok {
		return fmt.Errorf("insert asset request: id duplicado %s", req.ID)
	}
	r.s.requests[req.ID] = *req
	r.s.requestOrder = append(r.s.requestOrder, req.ID)
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *AssetRequestRepo) GetByID(_ context.Context, id string) (*entity.AssetRequest, error) {
	defer r.s.lock(r.inTx)()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

// ListNewestFirst ordena por CreatedAt descendente; a igual fecha, la última insertada primero.
func (r *AssetRequestRepo) ListNewestFirst(_ context.Context) ([]*entity.AssetRequest, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.AssetRequest, 0, len(r.s.requestOrder))
	for i := len(r.s.requestOrder) - 1; i >= 0; i-- {
		req := r.s.requests[r.s.requestOrder[i]]
		list = append(list, &req)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Delete elimina una solicitud por ID.
func (r *AssetRequestRepo) Delete(_ context.Context, id string) (int64, error) {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.requests[id]; !ok {
		return 0, nil
	}
	delete(r.s.requests, id)
	r.s.requestOrder = removeID(r.s.requestOrder, id)
	return 1, nil
}

// TransitionStatus aplica from → to solo si el estado actual coincide con from.
func (r *AssetRequestRepo) TransitionStatus(_ context.Context, id string, from, to entity.RequestStatus, at time.Time) (bool, error) {
	defer r.s.lock(r.inTx)()
	req, ok := r.s.requests[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	req.ProcessedAt = &at
	r.s.requests[id] = req
	return true, nil
}
