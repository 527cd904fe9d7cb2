package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para el directorio de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// Create registra un usuario. No verifica emails duplicados.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserCreatedResponse, error) {
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return nil, domain.ErrMissingFields
	}
	status := in.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	now := uc.now()
	user := &entity.User{
		ID:        entity.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    status,
		Team:      in.Team,
		PhotoURL:  in.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserCreatedResponse{Success: true, InsertedID: user.ID}, nil
}

// Update aplica solo los campos presentes y no vacíos; el resto conserva su valor.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UpdateResult, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUserNotFound
	}

	next := *current
	for _, f := range []struct {
		in  *string
		dst *string
	}{
		{in.Name, &next.Name},
		{in.Email, &next.Email},
		{in.Role, &next.Role},
		{in.Status, &next.Status},
		{in.Team, &next.Team},
		{in.PhotoURL, &next.PhotoURL},
	} {
		if present(f.in) {
			*f.dst = *f.in
		}
	}
	if next.Name == current.Name && next.Email == current.Email && next.Role == current.Role &&
		next.Status == current.Status && next.Team == current.Team && next.PhotoURL == current.PhotoURL {
		return &dto.UpdateResult{ModifiedCount: 0}, nil
	}
	next.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, &next); err != nil {
		return nil, err
	}
	return &dto.UpdateResult{ModifiedCount: 1}, nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResult, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

// RoleByEmail devuelve el rol del primer usuario con ese email. Nunca falla hacia el cliente:
// sin coincidencia, sin rol o ante error del almacén el rol es RoleDefault; el error se devuelve
// solo para que el llamador lo registre.
func (uc *UserUseCase) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return entity.RoleDefault, err
	}
	return user.EffectiveRole(), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.EffectiveRole(),
		Status:    u.Status,
		Team:      u.Team,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
