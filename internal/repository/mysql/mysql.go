// Package mysql implements the repository contracts on MySQL via
// database/sql and the go-sql-driver driver.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/gotodo/backend/internal/config"
	"github.com/gotodo/backend/internal/repository"
)

type Store struct {
	db    *sql.DB
	users *UserRepository
	todos *TodoRepository
}

func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	return &Store{
		db:    db,
		users: &UserRepository{db: db},
		todos: &TodoRepository{db: db},
	}, nil
}

func (s *Store) Users() repository.UserRepository { return s.users }

func (s *Store) Todos() repository.TodoRepository { return s.todos }

func (s *Store) Close() { _ = s.db.Close() }

func (s *Store) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			username VARCHAR(64) NOT NULL,
			derived_key CHAR(64) NOT NULL,
			salt CHAR(32) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			deleted_at DATETIME(6) NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS todos (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			status VARCHAR(16) NOT NULL,
			priority VARCHAR(16) NOT NULL,
			deadline DATETIME(6) NULL,
			done BOOLEAN NOT NULL DEFAULT FALSE,
			version BIGINT NOT NULL DEFAULT 1,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			deleted_at DATETIME(6) NULL,
			KEY todos_user_id_idx (user_id),
			CONSTRAINT todos_user_id_fk FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)
		`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return mapError(err)
		}
	}
	return nil
}

func buildDSN(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	if cfg.User == "" || cfg.Name == "" {
		return "", fmt.Errorf("missing required env: DATABASE_URL or DB_USER/DB_NAME")
	}

	port := cfg.Port
	if port == "" {
		port = "3306"
	}

	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, port)
	mc.DBName = cfg.Name
	mc.ParseTime = true

	return mc.FormatDSN(), nil
}

// mapError folds driver errors into the repository taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		// 1062 duplicate entry, 1451/1452 foreign key
		case 1062, 1451, 1452:
			return fmt.Errorf("%w: %d", repository.ErrConflict, myErr.Number)
		}
	}

	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
