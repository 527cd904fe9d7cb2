package memory

import (
	"context"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación en memoria de PackageRepository.
type PackageRepo struct {
	s *Store
}

// Upsert inserta o reemplaza el paquete de la cuenta.
func (r *PackageRepo) Upsert(_ context.Context, pkg *entity.HRPackage) error {
	defer r.s.lock(false)()
	r.s.packages[pkg.HRID] = *pkg
	return nil
}

// GetByHRID obtiene el paquete de la cuenta.
func (r *PackageRepo) GetByHRID(_ context.Context, hrID string) (*entity.HRPackage, error) {
	defer r.s.lock(false)()
	p, ok := r.s.packages[hrID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
