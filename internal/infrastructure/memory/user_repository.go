package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lock(false)()
	if _, ok := r.s.users[user.ID]; ok {
		return fmt.Errorf("insert user: id duplicado %s", user.ID)
	}
	r.s.users[user.ID] = *user
	r.s.userOrder = append(r.s.userOrder, user.ID)
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.lock(false)()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail devuelve el primer usuario dado de alta con ese email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.s.lock(false)()
	for _, id := range r.s.userOrder {
		if u := r.s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// List devuelve los usuarios en orden de alta.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	defer r.s.lock(false)()
	list := make([]*entity.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		u := r.s.users[id]
		list = append(list, &u)
	}
	return list, nil
}

// Update reemplaza el usuario.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.lock(false)()
	if _, ok := r.s.users[user.ID]; ok {
		r.s.users[user.ID] = *user
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(_ context.Context, id string) (int64, error) {
	defer r.s.lock(false)()
	if _, ok := r.s.users[id]; !ok {
		return 0, nil
	}
	delete(r.s.users, id)
	r.s.userOrder = removeID(r.s.userOrder, id)
	return 1, nil
}
