package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGUserRepository stores user records in Postgres. The single active
// session keeps the same one-row-per-client semantics as the key-value
// store: sessions has at most one row per client id, and this repository
// serves one client.
type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewPGUserRepository(db *pgxpool.Pool) *PGUserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, cred *domain.Credential) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4)`,
		cred.ID, cred.Email, cred.Name, cred.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return domain.NewStorageError("insert user", err)
	}
	return nil
}

func (r *PGUserRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, name, password_hash FROM users WHERE email=$1`, email)
	var cred domain.Credential
	if err := row.Scan(&cred.ID, &cred.Email, &cred.Name, &cred.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("find user", err)
	}
	return &cred, nil
}

func (r *PGUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, name FROM users WHERE id=$1`, id)
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get user", err)
	}
	return &user, nil
}

func (r *PGUserRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT u.id, u.email, u.name FROM sessions s JOIN users u ON u.id = s.user_id LIMIT 1`)
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("current user", err)
	}
	return &user, nil
}

func (r *PGUserRepository) SetCurrentUser(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.NewStorageError("set current user", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sessions`); err != nil {
		return domain.NewStorageError("set current user", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO sessions (user_id) VALUES ($1)`, user.ID); err != nil {
		return domain.NewStorageError("set current user", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStorageError("set current user", err)
	}
	return nil
}

func (r *PGUserRepository) ClearCurrentUser(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions`); err != nil {
		return domain.NewStorageError("clear current user", err)
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
