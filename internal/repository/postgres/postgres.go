// Package postgres implements the repository contracts on PostgreSQL
// using a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotodo/backend/internal/config"
	"github.com/gotodo/backend/internal/repository"
)

type Store struct {
	pool  *pgxpool.Pool
	users *UserRepository
	todos *TodoRepository
}

func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dsn, err := buildURL(cfg)
	if err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Store{
		pool:  pool,
		users: &UserRepository{pool: pool},
		todos: &TodoRepository{pool: pool},
	}, nil
}

func (s *Store) Users() repository.UserRepository { return s.users }

func (s *Store) Todos() repository.TodoRepository { return s.todos }

func (s *Store) Close() { s.pool.Close() }

func (s *Store) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			derived_key TEXT NOT NULL,
			salt TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS todos (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			deadline TIMESTAMPTZ,
			done BOOLEAN NOT NULL DEFAULT FALSE,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)
		`,
		`CREATE INDEX IF NOT EXISTS todos_user_id_idx ON todos(user_id)`,
	}

	for _, query := range queries {
		if _, err := s.pool.Exec(ctx, query); err != nil {
			return mapError(err)
		}
	}
	return nil
}

func buildURL(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	if cfg.User == "" || cfg.Name == "" {
		return "", fmt.Errorf("missing required env: DATABASE_URL or DB_USER/DB_NAME")
	}

	port := cfg.Port
	if port == "" {
		port = "5432"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, port),
		Path:   cfg.Name,
	}
	if cfg.Password == "" {
		u.User = url.User(cfg.User)
	} else {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// mapError folds pgx errors into the repository taxonomy. Context errors
// pass through so cancellation stays recognizable upstream.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violations, class 08: connection
		if strings.HasPrefix(pgErr.Code, "23") {
			return fmt.Errorf("%w: %s", repository.ErrConflict, pgErr.Code)
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			return fmt.Errorf("%w: %s", repository.ErrUnavailable, pgErr.Code)
		}
	}

	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
