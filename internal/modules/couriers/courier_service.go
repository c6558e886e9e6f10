package couriers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rayo-courier/internal/models"

	"github.com/google/uuid"
)

// OrderReaderInterface is the slice of the order ledger the registry needs
// for performance metrics.
type OrderReaderInterface interface {
	ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error)
}

// HistoryReaderInterface reads a courier's settlement ledger entries.
type HistoryReaderInterface interface {
	ListHistoryByKurir(ctx context.Context, kurirID string) ([]*models.CODHistory, error)
}

// ServiceInterface defines the contract for the courier registry.
type ServiceInterface interface {
	List(ctx context.Context) ([]*models.Courier, error)
	ListAktif(ctx context.Context) ([]*models.Courier, error)
	Get(ctx context.Context, kurirID string) (*models.Courier, error)
	Create(ctx context.Context, req models.CreateCourierRequest) (*models.Courier, error)
	Update(ctx context.Context, kurirID string, req models.UpdateCourierRequest) (*models.Courier, error)
	ToggleAktif(ctx context.Context, kurirID string) (*models.Courier, error)
	ToggleOnline(ctx context.Context, kurirID string) (*models.Courier, error)
	Performance(ctx context.Context, kurirID string) (*models.CourierPerformance, error)
}

// Service implements the courier registry logic.
type Service struct {
	repo    RepositoryInterface
	orders  OrderReaderInterface
	history HistoryReaderInterface
	now     func() time.Time
}

// NewService creates a new courier service. now is injectable for tests;
// pass nil to use the wall clock.
func NewService(repo RepositoryInterface, orders OrderReaderInterface, history HistoryReaderInterface, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, orders: orders, history: history, now: now}
}

// List returns every courier.
func (s *Service) List(ctx context.Context) ([]*models.Courier, error) {
	return s.repo.ListAll(ctx)
}

// ListAktif returns couriers eligible for assignment. Assignment UIs must
// only offer these.
func (s *Service) ListAktif(ctx context.Context) ([]*models.Courier, error) {
	return s.repo.ListAktif(ctx)
}

// Get returns a single courier.
func (s *Service) Get(ctx context.Context, kurirID string) (*models.Courier, error) {
	return s.repo.FindByID(ctx, kurirID)
}

// FindByID satisfies the order service's assignment check.
func (s *Service) FindByID(ctx context.Context, kurirID string) (*models.Courier, error) {
	return s.repo.FindByID(ctx, kurirID)
}

// Create registers a new courier. Name collisions are checked trimmed and
// case-folded; phone numbers must match exactly. Inactive couriers count.
func (s *Service) Create(ctx context.Context, req models.CreateCourierRequest) (*models.Courier, error) {
	nama := strings.TrimSpace(req.Nama)
	wa := strings.TrimSpace(req.WA)

	namaTaken, waTaken, err := s.repo.ExistsNamaOrWA(ctx, nama, wa, "")
	if err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	if namaTaken {
		return nil, &models.DuplicateError{Field: "nama", Value: nama}
	}
	if waTaken {
		return nil, &models.DuplicateError{Field: "wa", Value: wa}
	}

	courier := &models.Courier{
		ID:        uuid.New().String(),
		Nama:      nama,
		WA:        wa,
		Aktif:     true,
		Online:    false,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, courier); err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return courier, nil
}

// Update patches a courier, re-running the duplicate checks against everyone
// else.
func (s *Service) Update(ctx context.Context, kurirID string, req models.UpdateCourierRequest) (*models.Courier, error) {
	nama := ""
	if req.Nama != nil {
		nama = strings.TrimSpace(*req.Nama)
	}
	wa := ""
	if req.WA != nil {
		wa = strings.TrimSpace(*req.WA)
	}

	if nama != "" || wa != "" {
		namaTaken, waTaken, err := s.repo.ExistsNamaOrWA(ctx, nama, wa, kurirID)
		if err != nil {
			return nil, fmt.Errorf("service.Update: %w", err)
		}
		if req.Nama != nil && namaTaken {
			return nil, &models.DuplicateError{Field: "nama", Value: nama}
		}
		if req.WA != nil && waTaken {
			return nil, &models.DuplicateError{Field: "wa", Value: wa}
		}
	}

	return s.repo.Update(ctx, kurirID, req)
}

// ToggleAktif flips assignment eligibility and returns the updated courier.
func (s *Service) ToggleAktif(ctx context.Context, kurirID string) (*models.Courier, error) {
	courier, err := s.repo.FindByID(ctx, kurirID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetAktif(ctx, kurirID, !courier.Aktif); err != nil {
		return nil, err
	}
	courier.Aktif = !courier.Aktif
	return courier, nil
}

// ToggleOnline flips the presence flag and returns the updated courier.
func (s *Service) ToggleOnline(ctx context.Context, kurirID string) (*models.Courier, error) {
	courier, err := s.repo.FindByID(ctx, kurirID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetOnline(ctx, kurirID, !courier.Online); err != nil {
		return nil, err
	}
	courier.Online = !courier.Online
	return courier, nil
}

// Performance folds a courier's orders and settlement ledger into their
// aggregate track record.
func (s *Service) Performance(ctx context.Context, kurirID string) (*models.CourierPerformance, error) {
	if _, err := s.repo.FindByID(ctx, kurirID); err != nil {
		return nil, err
	}

	courierOrders, err := s.orders.ListByKurir(ctx, kurirID)
	if err != nil {
		return nil, fmt.Errorf("service.Performance: %w", err)
	}
	history, err := s.history.ListHistoryByKurir(ctx, kurirID)
	if err != nil {
		return nil, fmt.Errorf("service.Performance: %w", err)
	}

	perf := &models.CourierPerformance{KurirID: kurirID}
	for _, order := range courierOrders {
		perf.OngkirDikumpulkan += order.Ongkir
		if order.Status == models.StatusSelesai {
			perf.TotalOrderSelesai++
			if order.DanaTalangan > 0 {
				perf.TalanganDiganti += order.DanaTalangan
			}
		}
	}
	for _, entry := range history {
		perf.CODDisetor += entry.Nominal
	}
	return perf, nil
}
