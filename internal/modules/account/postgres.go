package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Schema creates the tables used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS profiles (
    uid          TEXT PRIMARY KEY,
    email        TEXT NOT NULL,
    nickname     TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore is both a CredentialStore and a ProfileStore.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate applies Schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

func (s *PostgresStore) CreateCredential(ctx context.Context, c Credential) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Email, c.PasswordHash, c.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (s *PostgresStore) CredentialByEmail(ctx context.Context, email string) (Credential, error) {
	var c Credential
	query := `
		SELECT id, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
	`
	var id string
	err := s.db.QueryRowContext(ctx, query, email).Scan(&id, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Credential{}, ErrUserNotFound
	}
	if err != nil {
		return Credential{}, err
	}
	c.ID, err = uuid.Parse(id)
	return c, err
}

func (s *PostgresStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $2
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query, id, hash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) SaveProfile(ctx context.Context, uid string, user User) error {
	query := `
		INSERT INTO profiles (uid, email, nickname, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email, nickname = EXCLUDED.nickname,
		    phone_number = EXCLUDED.phone_number, updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, uid, user.Email, user.Nickname, user.PhoneNumber)
	return err
}

func (s *PostgresStore) Profile(ctx context.Context, uid string) (User, error) {
	var u User
	query := `
		SELECT email, nickname, phone_number
		FROM profiles
		WHERE uid = $1
	`
	err := s.db.QueryRowContext(ctx, query, uid).Scan(&u.Email, &u.Nickname, &u.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
