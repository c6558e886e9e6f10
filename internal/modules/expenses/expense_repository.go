package expenses

import (
	"context"
	"errors"
	"fmt"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for expense storage.
type RepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	FindByID(ctx context.Context, id string) (*models.Expense, error)
	ListAll(ctx context.Context) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id string) error
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new expense repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Create inserts a new expense.
func (r *Repository) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, tanggal, kategori, deskripsi, nominal)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, expense.ID, expense.Tanggal, expense.Kategori, expense.Deskripsi, expense.Nominal)
	if err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

// FindByID retrieves a single expense.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	query := `SELECT id, tanggal, kategori, deskripsi, nominal FROM expenses WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&expense.ID, &expense.Tanggal, &expense.Kategori, &expense.Deskripsi, &expense.Nominal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return &expense, nil
}

// ListAll retrieves every expense, newest day first.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Expense, error) {
	query := `SELECT id, tanggal, kategori, deskripsi, nominal FROM expenses ORDER BY tanggal DESC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAll: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Tanggal, &expense.Kategori, &expense.Deskripsi, &expense.Nominal); err != nil {
			return nil, fmt.Errorf("repository.ListAll.Scan: %w", err)
		}
		expenses = append(expenses, &expense)
	}
	return expenses, rows.Err()
}

// Update replaces an expense's fields.
func (r *Repository) Update(ctx context.Context, expense *models.Expense) error {
	query := `UPDATE expenses SET tanggal = $1, kategori = $2, deskripsi = $3, nominal = $4 WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, query, expense.Tanggal, expense.Kategori, expense.Deskripsi, expense.Nominal, expense.ID)
	if err != nil {
		return fmt.Errorf("repository.Update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes an expense.
func (r *Repository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
