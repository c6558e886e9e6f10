package couriers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the courier registry storage.
type RepositoryInterface interface {
	Create(ctx context.Context, courier *models.Courier) error
	FindByID(ctx context.Context, kurirID string) (*models.Courier, error)
	ListAll(ctx context.Context) ([]*models.Courier, error)
	ListAktif(ctx context.Context) ([]*models.Courier, error)
	Update(ctx context.Context, kurirID string, req models.UpdateCourierRequest) (*models.Courier, error)
	SetAktif(ctx context.Context, kurirID string, aktif bool) error
	SetOnline(ctx context.Context, kurirID string, online bool) error
	ExistsNamaOrWA(ctx context.Context, nama, wa, excludeID string) (namaTaken, waTaken bool, err error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new courier repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func scanCourier(row pgx.Row) (*models.Courier, error) {
	var courier models.Courier
	err := row.Scan(&courier.ID, &courier.Nama, &courier.WA, &courier.Aktif, &courier.Online, &courier.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan courier: %w", err)
	}
	return &courier, nil
}

// Create inserts a new courier.
func (r *Repository) Create(ctx context.Context, courier *models.Courier) error {
	query := `
		INSERT INTO couriers (id, nama, wa, aktif, online, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, courier.ID, courier.Nama, courier.WA, courier.Aktif, courier.Online, courier.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

// FindByID retrieves a single courier.
func (r *Repository) FindByID(ctx context.Context, kurirID string) (*models.Courier, error) {
	query := `SELECT id, nama, wa, aktif, online, created_at FROM couriers WHERE id = $1`
	courier, err := scanCourier(r.db.QueryRow(ctx, query, kurirID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return courier, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]*models.Courier, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.list: %w", err)
	}
	defer rows.Close()

	var couriers []*models.Courier
	for rows.Next() {
		courier, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, courier)
	}
	return couriers, rows.Err()
}

// ListAll retrieves every courier, active or not.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Courier, error) {
	return r.list(ctx, `SELECT id, nama, wa, aktif, online, created_at FROM couriers ORDER BY nama ASC`)
}

// ListAktif retrieves couriers eligible for assignment.
func (r *Repository) ListAktif(ctx context.Context) ([]*models.Courier, error) {
	return r.list(ctx, `SELECT id, nama, wa, aktif, online, created_at FROM couriers WHERE aktif ORDER BY nama ASC`)
}

// Update modifies a courier's details.
func (r *Repository) Update(ctx context.Context, kurirID string, req models.UpdateCourierRequest) (*models.Courier, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	if req.Nama != nil {
		setClauses = append(setClauses, fmt.Sprintf("nama = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Nama))
		argIdx++
	}
	if req.WA != nil {
		setClauses = append(setClauses, fmt.Sprintf("wa = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.WA))
		argIdx++
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, kurirID)
	}

	args = append(args, kurirID)
	query := fmt.Sprintf(`UPDATE couriers SET %s WHERE id = $%d RETURNING id, nama, wa, aktif, online, created_at`,
		strings.Join(setClauses, ", "), argIdx)

	courier, err := scanCourier(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return courier, nil
}

// SetAktif flips assignment eligibility.
func (r *Repository) SetAktif(ctx context.Context, kurirID string, aktif bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE couriers SET aktif = $1 WHERE id = $2`, aktif, kurirID)
	if err != nil {
		return fmt.Errorf("repository.SetAktif: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetOnline flips the presence flag.
func (r *Repository) SetOnline(ctx context.Context, kurirID string, online bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE couriers SET online = $1 WHERE id = $2`, online, kurirID)
	if err != nil {
		return fmt.Errorf("repository.SetOnline: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ExistsNamaOrWA checks collisions against every courier, active or not.
// Nama is compared trimmed and case-folded; wa is an exact match.
func (r *Repository) ExistsNamaOrWA(ctx context.Context, nama, wa, excludeID string) (bool, bool, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE LOWER(TRIM(nama)) = LOWER(TRIM($1))),
			COUNT(*) FILTER (WHERE wa = $2)
		FROM couriers
		WHERE id <> $3`

	var namaCount, waCount int
	if err := r.db.QueryRow(ctx, query, nama, wa, excludeID).Scan(&namaCount, &waCount); err != nil {
		return false, false, fmt.Errorf("repository.ExistsNamaOrWA: %w", err)
	}
	return namaCount > 0, waCount > 0, nil
}
