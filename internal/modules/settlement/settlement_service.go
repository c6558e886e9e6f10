package settlement

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"rayo-courier/internal/models"

	"github.com/google/uuid"
)

// ServiceInterface defines the contract for the COD settlement engine.
type ServiceInterface interface {
	Outstanding(ctx context.Context, kurirID string) (*models.CODOutstanding, error)
	Settle(ctx context.Context, req models.SettleRequest) (*models.SettleResult, error)
	SettleOne(ctx context.Context, orderID, buktiURL string) (*models.SettleResult, error)
	History(ctx context.Context, kurirID string) ([]*models.CODHistory, error)
}

// Service implements the settlement engine.
type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

// NewService creates a new settlement service. now is injectable for tests;
// pass nil to use the wall clock.
func NewService(repo RepositoryInterface, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Outstanding lists a courier's completed, unpaid COD orders and the totals
// a deposit may cover. The maximum deposit is the COD principal plus the
// ongkir bundled into those remittances.
func (s *Service) Outstanding(ctx context.Context, kurirID string) (*models.CODOutstanding, error) {
	orders, err := s.repo.ListOutstanding(ctx, kurirID)
	if err != nil {
		return nil, fmt.Errorf("service.Outstanding: %w", err)
	}

	out := &models.CODOutstanding{Orders: orders}
	for _, order := range orders {
		out.CODTotal += order.COD.Nominal
		out.OngkirViaCODTotal += order.Ongkir
	}
	out.Total = out.CODTotal + out.OngkirViaCODTotal
	return out, nil
}

// allocateFIFO walks the outstanding orders oldest first and decides which
// ones the deposit fully covers. An order is either fully covered or not
// touched at all: the walk stops at the first order the remainder cannot
// cover, and whatever is left stays undistributed. History rows carry only
// the COD principal, never the bundled ongkir.
func allocateFIFO(orders []*models.Order, amount int64, buktiURL string, tanggal time.Time) *models.SettleResult {
	sorted := make([]*models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	result := &models.SettleResult{Remaining: amount}
	for _, order := range sorted {
		if result.Remaining <= 0 {
			break
		}
		orderTotal := order.OutstandingCODTotal()
		if result.Remaining < orderTotal {
			break
		}

		order.COD.CODPaid = true
		result.UpdatedOrders = append(result.UpdatedOrders, order)
		result.NewRecords = append(result.NewRecords, &models.CODHistory{
			ID:       uuid.New().String(),
			OrderID:  order.ID,
			KurirID:  derefKurir(order.KurirID),
			Nominal:  order.COD.Nominal,
			Tanggal:  tanggal,
			BuktiURL: buktiURL,
		})
		result.Remaining -= orderTotal
	}
	return result
}

func derefKurir(kurirID *string) string {
	if kurirID == nil {
		return ""
	}
	return *kurirID
}

// Settle distributes a courier's cash deposit FIFO across their outstanding
// COD orders and appends the audit records, atomically.
func (s *Service) Settle(ctx context.Context, req models.SettleRequest) (*models.SettleResult, error) {
	outstanding, err := s.Outstanding(ctx, req.KurirID)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 || req.Amount > outstanding.Total {
		return nil, &models.InvalidAmountError{Amount: req.Amount, Outstanding: outstanding.Total}
	}

	tanggal := truncateToDay(s.now())
	result := allocateFIFO(outstanding.Orders, req.Amount, strings.TrimSpace(req.BuktiURL), tanggal)

	if len(result.UpdatedOrders) > 0 {
		orderIDs := make([]string, len(result.UpdatedOrders))
		for i, order := range result.UpdatedOrders {
			orderIDs[i] = order.ID
		}
		if err := s.repo.ApplySettlement(ctx, orderIDs, result.NewRecords); err != nil {
			return nil, fmt.Errorf("service.Settle: %w", err)
		}
	}
	return result, nil
}

// SettleOne confirms remittance of exactly one completed COD order. Like the
// FIFO path, the history row stores only the COD principal.
func (s *Service) SettleOne(ctx context.Context, orderID, buktiURL string) (*models.SettleResult, error) {
	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.COD.IsCOD {
		return nil, &models.ValidationError{Fields: map[string]string{
			"cod_nominal": "order ini bukan order COD",
		}}
	}
	if order.COD.CODPaid {
		return nil, &models.ValidationError{Fields: map[string]string{
			"cod_paid": "COD order ini sudah disetor",
		}}
	}

	order.COD.CODPaid = true
	record := &models.CODHistory{
		ID:       uuid.New().String(),
		OrderID:  order.ID,
		KurirID:  derefKurir(order.KurirID),
		Nominal:  order.COD.Nominal,
		Tanggal:  truncateToDay(s.now()),
		BuktiURL: strings.TrimSpace(buktiURL),
	}

	if err := s.repo.ApplySettlement(ctx, []string{order.ID}, []*models.CODHistory{record}); err != nil {
		return nil, fmt.Errorf("service.SettleOne: %w", err)
	}
	return &models.SettleResult{
		UpdatedOrders: []*models.Order{order},
		NewRecords:    []*models.CODHistory{record},
	}, nil
}

// History returns settlement ledger entries, optionally scoped to a courier.
func (s *Service) History(ctx context.Context, kurirID string) ([]*models.CODHistory, error) {
	if kurirID != "" {
		return s.repo.ListHistoryByKurir(ctx, kurirID)
	}
	return s.repo.ListHistory(ctx)
}

// ListHistoryByKurir satisfies the courier registry's performance reader.
func (s *Service) ListHistoryByKurir(ctx context.Context, kurirID string) ([]*models.CODHistory, error) {
	return s.repo.ListHistoryByKurir(ctx, kurirID)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
