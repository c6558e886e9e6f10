package settlement

import (
	"context"
	"errors"
	"fmt"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for settlement storage.
type RepositoryInterface interface {
	// ListOutstanding returns a courier's completed, unpaid COD orders in
	// FIFO order: ascending creation time, insertion order on ties.
	ListOutstanding(ctx context.Context, kurirID string) ([]*models.Order, error)
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)
	// ApplySettlement marks the given orders' COD as paid and appends the
	// history records in one transaction. Readers never observe one
	// without the other.
	ApplySettlement(ctx context.Context, orderIDs []string, records []*models.CODHistory) error
	ListHistory(ctx context.Context) ([]*models.CODHistory, error)
	ListHistoryByKurir(ctx context.Context, kurirID string) ([]*models.CODHistory, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new settlement repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const orderColumns = `id, created_at, created_date, pengirim_nama, pengirim_wa, pickup_alamat, dropoff_alamat,
		kurir_id, status, jenis_order, service_type, ongkir, dana_talangan, bayar_ongkir,
		cod_nominal, cod_paid, non_cod_paid, talangan_reimbursed, notes`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.CreatedDate,
		&order.Pengirim.Nama, &order.Pengirim.WA, &order.PickupAlamat, &order.DropoffAlamat,
		&order.KurirID, &order.Status, &order.JenisOrder, &order.ServiceType,
		&order.Ongkir, &order.DanaTalangan, &order.BayarOngkir,
		&order.COD.Nominal, &order.COD.CODPaid, &order.NonCodPaid, &order.TalanganReimbursed, &order.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	order.NormalizeCOD()
	return &order, nil
}

// ListOutstanding selects the orders a deposit may cover.
func (r *Repository) ListOutstanding(ctx context.Context, kurirID string) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE kurir_id = $1 AND cod_nominal > 0 AND status = $2 AND NOT cod_paid
		ORDER BY created_at ASC, seq ASC`

	rows, err := r.db.Query(ctx, query, kurirID, models.StatusSelesai)
	if err != nil {
		return nil, fmt.Errorf("repository.ListOutstanding: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// FindOrder retrieves a single order for the single-order settlement path.
func (r *Repository) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindOrder: %w", err)
	}
	return order, nil
}

// ApplySettlement commits the order flag flips and the history append
// atomically.
func (r *Repository) ApplySettlement(ctx context.Context, orderIDs []string, records []*models.CODHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository.ApplySettlement.Begin: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE orders SET cod_paid = TRUE WHERE id = ANY($1)`, orderIDs)
	if err != nil {
		return fmt.Errorf("repository.ApplySettlement.Update: %w", err)
	}
	if int(cmdTag.RowsAffected()) != len(orderIDs) {
		return models.ErrNotFound
	}

	for _, rec := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO cod_history (id, order_id, kurir_id, nominal, tanggal, bukti_url)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ID, rec.OrderID, rec.KurirID, rec.Nominal, rec.Tanggal, rec.BuktiURL,
		)
		if err != nil {
			return fmt.Errorf("repository.ApplySettlement.Insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository.ApplySettlement.Commit: %w", err)
	}
	return nil
}

func (r *Repository) listHistory(ctx context.Context, query string, args ...interface{}) ([]*models.CODHistory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.listHistory: %w", err)
	}
	defer rows.Close()

	var history []*models.CODHistory
	for rows.Next() {
		var rec models.CODHistory
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.KurirID, &rec.Nominal, &rec.Tanggal, &rec.BuktiURL); err != nil {
			return nil, fmt.Errorf("repository.listHistory.Scan: %w", err)
		}
		history = append(history, &rec)
	}
	return history, rows.Err()
}

// ListHistory returns the full settlement ledger, oldest first.
func (r *Repository) ListHistory(ctx context.Context) ([]*models.CODHistory, error) {
	return r.listHistory(ctx, `
		SELECT id, order_id, kurir_id, nominal, tanggal, bukti_url
		FROM cod_history ORDER BY tanggal ASC, id ASC`)
}

// ListHistoryByKurir returns a courier's settlement ledger entries.
func (r *Repository) ListHistoryByKurir(ctx context.Context, kurirID string) ([]*models.CODHistory, error) {
	return r.listHistory(ctx, `
		SELECT id, order_id, kurir_id, nominal, tanggal, bukti_url
		FROM cod_history WHERE kurir_id = $1 ORDER BY tanggal ASC, id ASC`, kurirID)
}
