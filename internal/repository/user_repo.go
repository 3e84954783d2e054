package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/store"
)

type UserRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user *domain.User) error
	ClearCurrentUser(ctx context.Context) error
}

// StoreUserRepository keeps user records under the "users" key and the
// single active session under "current_user".
type StoreUserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *StoreUserRepository {
	return &StoreUserRepository{store: s}
}

func (r *StoreUserRepository) load(ctx context.Context) ([]domain.Credential, error) {
	var users []domain.Credential
	err := store.GetJSON(ctx, r.store, store.KeyUsers, &users)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return nil, domain.NewStorageError("load users", err)
	}
	return users, nil
}

func (r *StoreUserRepository) Create(ctx context.Context, cred *domain.Credential) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == cred.Email {
			return domain.ErrDuplicateEmail
		}
	}
	users = append(users, *cred)
	if err := store.PutJSON(ctx, r.store, store.KeyUsers, users); err != nil {
		return domain.NewStorageError("save users", err)
	}
	return nil
}

// FindByEmail matches the email exactly, case-sensitive. Returns (nil, nil)
// when no user matches.
func (r *StoreUserRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			cred := u
			return &cred, nil
		}
	}
	return nil, nil
}

func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			user := u.User
			return &user, nil
		}
	}
	return nil, nil
}

func (r *StoreUserRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	err := store.GetJSON(ctx, r.store, store.KeyCurrentUser, &user)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("load current user", err)
	}
	return &user, nil
}

func (r *StoreUserRepository) SetCurrentUser(ctx context.Context, user *domain.User) error {
	if err := store.PutJSON(ctx, r.store, store.KeyCurrentUser, user); err != nil {
		return domain.NewStorageError("save current user", err)
	}
	return nil
}

func (r *StoreUserRepository) ClearCurrentUser(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyCurrentUser); err != nil {
		return domain.NewStorageError("clear current user", err)
	}
	return nil
}

var _ UserRepository = (*StoreUserRepository)(nil)
