package auth

import (
	"context"
	"strings"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/repository"
	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
)

// Session is the authenticated user recognized by the credential store.
// Callers hold a Session value and pass it into workflow operations instead
// of reading a process-wide current-user variable, so several sessions can
// coexist in one process even though a single client persists at most one.
type Session struct {
	User domain.User
}

type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) bool
	Resume(ctx context.Context) (*Session, error)
}

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user. The password is stored as a salted argon2id
// hash; nothing reversible is ever persisted.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(email) == "" {
		verr.Add("email", "email is required")
	}
	if password == "" {
		verr.Add("password", "password is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		User:         domain.User{ID: uuid.NewString(), Email: email},
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, cred); err != nil {
		return nil, err
	}

	user := cred.User
	return &user, nil
}

// Login verifies the credentials and makes the user the current session.
// An unknown email and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	cred, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrInvalidCredentials
	}

	match, err := argon2id.ComparePasswordAndHash(password, cred.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, domain.ErrInvalidCredentials
	}

	user := cred.User
	if err := s.users.SetCurrentUser(ctx, &user); err != nil {
		return nil, err
	}
	return &Session{User: user}, nil
}

// Logout clears the current session only; user records are untouched.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.users.ClearCurrentUser(ctx)
}

// CurrentUser returns (nil, nil) if nobody is logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.users.CurrentUser(ctx)
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	user, err := s.users.CurrentUser(ctx)
	return err == nil && user != nil
}

// Resume rebuilds a Session from the persisted current user, so a process
// restart picks up where the last committed login left off.
func (s *AuthService) Resume(ctx context.Context) (*Session, error) {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return &Session{User: *user}, nil
}

var _ AuthUseCase = (*AuthService)(nil)
