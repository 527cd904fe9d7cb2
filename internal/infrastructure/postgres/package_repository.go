package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo persiste el paquete HR vigente por cuenta.
type PackageRepo struct {
	pool *pgxpool.Pool
}

// NewPackageRepository construye el adaptador.
func NewPackageRepository(pool *pgxpool.Pool) *PackageRepo {
	return &PackageRepo{pool: pool}
}

// Upsert inserta o reemplaza el paquete. amount es NUMERIC (codec pgx-shopspring-decimal).
func (r *PackageRepo) Upsert(ctx context.Context, pkg *entity.HRPackage) error {
	query := `
		INSERT INTO hr_packages (hr_id, package_type, package_limit, session_id, amount, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (hr_id)
		DO UPDATE SET package_type = EXCLUDED.package_type, package_limit = EXCLUDED.package_limit,
		              session_id = EXCLUDED.session_id, amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query, pkg.HRID, pkg.PackageType, pkg.PackageLimit, pkg.SessionID, pkg.Amount, pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert hr package: %w", err)
	}
	return nil
}

// GetByHRID obtiene el paquete de la cuenta.
func (r *PackageRepo) GetByHRID(ctx context.Context, hrID string) (*entity.HRPackage, error) {
	query := `
		SELECT hr_id, package_type, package_limit, session_id, amount, updated_at
		FROM hr_packages WHERE hr_id = $1`
	var p entity.HRPackage
	err := r.pool.QueryRow(ctx, query, hrID).Scan(
		&p.HRID, &p.PackageType, &p.PackageLimit, &p.SessionID, &p.Amount, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hr package: %w", err)
	}
	return &p, nil
}
