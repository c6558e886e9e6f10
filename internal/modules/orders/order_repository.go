package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the order ledger storage.
type RepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	ListAll(ctx context.Context) ([]*models.Order, error)
	ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error)
	Update(ctx context.Context, orderID string, req models.UpdateOrderRequest) (*models.Order, error)
	Delete(ctx context.Context, orderID string) error
	AssignCourier(ctx context.Context, orderID, kurirID string) error
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, event *models.StatusEvent) error
	SetNonCodPaid(ctx context.Context, orderID string, paid bool) error
	SetTalanganReimbursed(ctx context.Context, orderID string) error
	ListStatusEvents(ctx context.Context, orderID string) ([]*models.StatusEvent, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new order repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const orderColumns = `id, created_at, created_date, pengirim_nama, pengirim_wa, pickup_alamat, dropoff_alamat,
		kurir_id, status, jenis_order, service_type, ongkir, dana_talangan, bayar_ongkir,
		cod_nominal, cod_paid, non_cod_paid, talangan_reimbursed, notes`

// scanOrder is a helper to scan a row into an Order model. The cod.is_cod
// flag is derived from the nominal, never read from storage.
func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.CreatedDate,
		&order.Pengirim.Nama,
		&order.Pengirim.WA,
		&order.PickupAlamat,
		&order.DropoffAlamat,
		&order.KurirID,
		&order.Status,
		&order.JenisOrder,
		&order.ServiceType,
		&order.Ongkir,
		&order.DanaTalangan,
		&order.BayarOngkir,
		&order.COD.Nominal,
		&order.COD.CODPaid,
		&order.NonCodPaid,
		&order.TalanganReimbursed,
		&order.Notes,
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

func scanOrders(rows pgx.Rows) ([]*models.Order, error) {
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

// Create inserts a new order into the ledger.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, created_at, created_date, pengirim_nama, pengirim_wa, pickup_alamat, dropoff_alamat,
			kurir_id, status, jenis_order, service_type, ongkir, dana_talangan, bayar_ongkir,
			cod_nominal, cod_paid, non_cod_paid, talangan_reimbursed, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.Exec(ctx, query,
		order.ID, order.CreatedAt, order.CreatedDate,
		order.Pengirim.Nama, order.Pengirim.WA, order.PickupAlamat, order.DropoffAlamat,
		order.KurirID, order.Status, order.JenisOrder, order.ServiceType,
		order.Ongkir, order.DanaTalangan, order.BayarOngkir,
		order.COD.Nominal, order.COD.CODPaid, order.NonCodPaid, order.TalanganReimbursed, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

// FindByID retrieves a single order.
func (r *Repository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return order, nil
}

// ListAll retrieves every order, newest first. seq preserves insertion order
// for orders created in the same instant.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, seq DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAll: %w", err)
	}
	return scanOrders(rows)
}

// ListByKurir retrieves every order assigned to a courier, oldest first.
func (r *Repository) ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE kurir_id = $1 ORDER BY created_at ASC, seq ASC`
	rows, err := r.db.Query(ctx, query, kurirID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListByKurir: %w", err)
	}
	return scanOrders(rows)
}

// Update modifies an existing order's details.
func (r *Repository) Update(ctx context.Context, orderID string, req models.UpdateOrderRequest) (*models.Order, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.PengirimNama != nil {
		add("pengirim_nama", *req.PengirimNama)
	}
	if req.PengirimWA != nil {
		add("pengirim_wa", *req.PengirimWA)
	}
	if req.PickupAlamat != nil {
		add("pickup_alamat", *req.PickupAlamat)
	}
	if req.DropoffAlamat != nil {
		add("dropoff_alamat", *req.DropoffAlamat)
	}
	if req.JenisOrder != nil {
		add("jenis_order", *req.JenisOrder)
	}
	if req.ServiceType != nil {
		add("service_type", *req.ServiceType)
	}
	if req.Ongkir != nil {
		add("ongkir", *req.Ongkir)
	}
	if req.DanaTalangan != nil {
		add("dana_talangan", *req.DanaTalangan)
	}
	if req.BayarOngkir != nil {
		add("bayar_ongkir", *req.BayarOngkir)
	}
	if req.CODNominal != nil {
		add("cod_nominal", *req.CODNominal)
	}
	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, orderID)
	}

	args = append(args, orderID)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d RETURNING `+orderColumns,
		strings.Join(setClauses, ", "), argIdx)

	order, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return order, nil
}

// Delete removes an order from the ledger.
func (r *Repository) Delete(ctx context.Context, orderID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AssignCourier dispatches an order to a courier.
func (r *Repository) AssignCourier(ctx context.Context, orderID, kurirID string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE orders SET kurir_id = $1 WHERE id = $2`, kurirID, orderID)
	if err != nil {
		return fmt.Errorf("repository.AssignCourier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateStatus moves an order to a new status and appends the audit event in
// the same transaction, so a status change is never visible without its
// event.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, event *models.StatusEvent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository.UpdateStatus.Begin: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("repository.UpdateStatus: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO status_events (id, order_id, from_status, to_status, actor_role, override, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.OrderID, event.FromStatus, event.ToStatus, event.ActorRole, event.Override, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository.UpdateStatus.Event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository.UpdateStatus.Commit: %w", err)
	}
	return nil
}

// SetNonCodPaid sets the directly-paid delivery fee flag.
func (r *Repository) SetNonCodPaid(ctx context.Context, orderID string, paid bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE orders SET non_cod_paid = $1 WHERE id = $2`, paid, orderID)
	if err != nil {
		return fmt.Errorf("repository.SetNonCodPaid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetTalanganReimbursed marks the advance float as returned to the courier.
func (r *Repository) SetTalanganReimbursed(ctx context.Context, orderID string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE orders SET talangan_reimbursed = TRUE WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("repository.SetTalanganReimbursed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListStatusEvents returns the audit trail of an order, oldest first.
func (r *Repository) ListStatusEvents(ctx context.Context, orderID string) ([]*models.StatusEvent, error) {
	query := `
		SELECT id, order_id, from_status, to_status, actor_role, override, created_at
		FROM status_events
		WHERE order_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListStatusEvents: %w", err)
	}
	defer rows.Close()

	var events []*models.StatusEvent
	for rows.Next() {
		var ev models.StatusEvent
		if err := rows.Scan(&ev.ID, &ev.OrderID, &ev.FromStatus, &ev.ToStatus, &ev.ActorRole, &ev.Override, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository.ListStatusEvents.Scan: %w", err)
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
