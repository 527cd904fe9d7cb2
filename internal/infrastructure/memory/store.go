// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa con DB_DRIVER=memory y como doble de pruebas; no sobrevive a un reinicio.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/AssetVerse-api/internal/application/workflow"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ workflow.TxRunner = (*Store)(nil)

// Store contiene todas las colecciones. Un único mutex serializa escrituras y transacciones.
type Store struct {
	mu       sync.Mutex
	assets   map[string]entity.Asset
	requests map[string]entity.AssetRequest
	users    map[string]entity.User
	packages map[string]entity.HRPackage

	// Orden de inserción para listados y desempates estables.
	assetOrder   []string
	requestOrder []string
	userOrder    []string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		assets:   make(map[string]entity.Asset),
		requests: make(map[string]entity.AssetRequest),
		users:    make(map[string]entity.User),
		packages: make(map[string]entity.HRPackage),
	}
}

// Assets devuelve el repositorio de assets.
func (s *Store) Assets() *AssetRepo { return &AssetRepo{s: s} }

// Requests devuelve el repositorio de solicitudes.
func (s *Store) Requests() *AssetRequestRepo { return &AssetRequestRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Packages devuelve el repositorio de paquetes HR.
func (s *Store) Packages() *PackageRepo { return &PackageRepo{s: s} }

// Dashboard devuelve el repositorio de agregados.
func (s *Store) Dashboard() *DashboardRepo { return &DashboardRepo{s: s} }

// Run ejecuta fn con el almacén bloqueado. Si fn falla, restaura assets y solicitudes al estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	requestRepo repository.AssetRequestRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	assets, assetOrder := cloneMap(s.assets), append([]string(nil), s.assetOrder...)
	requests, requestOrder := cloneMap(s.requests), append([]string(nil), s.requestOrder...)

	if err := fn(&AssetRepo{s: s, inTx: true}, &AssetRequestRepo{s: s, inTx: true}); err != nil {
		s.assets, s.assetOrder = assets, assetOrder
		s.requests, s.requestOrder = requests, requestOrder
		return err
	}
	return nil
}

// lock toma el mutex salvo que el repositorio opere dentro de Run, que ya lo tiene.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}
