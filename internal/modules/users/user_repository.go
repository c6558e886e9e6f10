package users

import (
	"context"
	"errors"
	"fmt"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with user storage.
type RepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT username, password_hash, role, name, kurir_id FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.Role, &user.Name, &user.KurirID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByUsername: %w", err)
	}
	return user, nil
}
