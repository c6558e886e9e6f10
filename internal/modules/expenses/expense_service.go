package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rayo-courier/internal/models"

	"github.com/google/uuid"
)

// ServiceInterface defines the contract for the expense ledger.
type ServiceInterface interface {
	List(ctx context.Context) ([]*models.Expense, error)
	Create(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error)
	Update(ctx context.Context, id string, req models.ExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, id string) error
}

// Service implements the expense ledger logic.
type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

// NewService creates a new expense service. now is injectable for tests;
// pass nil to use the wall clock.
func NewService(repo RepositoryInterface, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

func (s *Service) validate(req models.ExpenseRequest) error {
	fields := map[string]string{}
	if !models.IsExpenseCategory(req.Kategori) {
		fields["kategori"] = "kategori wajib dipilih"
	}
	if strings.TrimSpace(req.Deskripsi) == "" {
		fields["deskripsi"] = "deskripsi wajib diisi"
	}
	if req.Nominal <= 0 {
		fields["nominal"] = "nominal harus lebih dari 0"
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// List returns every expense.
func (s *Service) List(ctx context.Context) ([]*models.Expense, error) {
	return s.repo.ListAll(ctx)
}

// Create records a new operating cost. A zero tanggal defaults to today.
func (s *Service) Create(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	tanggal := req.Tanggal
	if tanggal.IsZero() {
		tanggal = s.now()
	}

	expense := &models.Expense{
		ID:        uuid.New().String(),
		Tanggal:   truncateToDay(tanggal),
		Kategori:  req.Kategori,
		Deskripsi: strings.TrimSpace(req.Deskripsi),
		Nominal:   req.Nominal,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}
	return expense, nil
}

// Update replaces an expense's fields.
func (s *Service) Update(ctx context.Context, id string, req models.ExpenseRequest) (*models.Expense, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tanggal := req.Tanggal
	if tanggal.IsZero() {
		tanggal = existing.Tanggal
	}

	expense := &models.Expense{
		ID:        existing.ID,
		Tanggal:   truncateToDay(tanggal),
		Kategori:  req.Kategori,
		Deskripsi: strings.TrimSpace(req.Deskripsi),
		Nominal:   req.Nominal,
	}
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("service.Update: %w", err)
	}
	return expense, nil
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
