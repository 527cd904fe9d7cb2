package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.AssetRequestRepository = (*AssetRequestRepo)(nil)

// AssetRequestRepo implementación de AssetRequestRepository sobre PostgreSQL.
type AssetRequestRepo struct {
	q Querier
	// forUpdate agrega FOR UPDATE a GetByID; solo tiene sentido dentro de una tx.
	forUpdate bool
}

// NewAssetRequestRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAssetRequestRepository(q Querier) *AssetRequestRepo {
	return &AssetRequestRepo{q: q}
}

func newLockingAssetRequestRepository(tx pgx.Tx) *AssetRequestRepo {
	return &AssetRequestRepo{q: tx, forUpdate: true}
}

const requestColumns = `id, asset_id, asset_name, quantity, reason, status, user_name, email, created_at, processed_at`

func scanRequest(row pgx.Row) (*entity.AssetRequest, error) {
	var req entity.AssetRequest
	var status string
	if err := row.Scan(
		&req.ID, &req.AssetID, &req.AssetName, &req.Quantity, &req.Reason, &status,
		&req.UserName, &req.Email, &req.CreatedAt, &req.ProcessedAt,
	); err != nil {
		return nil, err
	}
	req.Status = entity.RequestStatus(status)
	return &req, nil
}

// Create persiste una nueva solicitud.
func (r *AssetRequestRepo) Create(ctx context.Context, req *entity.AssetRequest) error {
	query := `
		INSERT INTO asset_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.AssetID, req.AssetName, req.Quantity, req.Reason, string(req.Status),
		req.UserName, req.Email, req.CreatedAt, req.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *AssetRequestRepo) GetByID(ctx context.Context, id string) (*entity.AssetRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM asset_requests WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	req, err := scanRequest(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset request: %w", err)
	}
	return req, nil
}

// ListNewestFirst lista todas las solicitudes, más recientes primero.
func (r *AssetRequestRepo) ListNewestFirst(ctx context.Context) ([]*entity.AssetRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM asset_requests ORDER BY created_at DESC, seq DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list asset requests: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.AssetRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Delete elimina una solicitud por ID.
func (r *AssetRequestRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM asset_requests WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete asset request: %w", err)
	}
	return tag.RowsAffected(), nil
}

// TransitionStatus aplica from → to solo si el estado actual coincide con from.
func (r *AssetRequestRepo) TransitionStatus(ctx context.Context, id string, from, to entity.RequestStatus, at time.Time) (bool, error) {
	query := `
		UPDATE asset_requests SET status = $3, processed_at = $4
		WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(ctx, query, id, string(from), string(to), at)
	if err != nil {
		return false, fmt.Errorf("transition asset request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
