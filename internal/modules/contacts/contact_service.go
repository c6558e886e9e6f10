package contacts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"rayo-courier/internal/models"

	"github.com/google/uuid"
)

var nonDigits = regexp.MustCompile(`\D`)

// ServiceInterface defines the contract for the address book.
type ServiceInterface interface {
	List(ctx context.Context) ([]*models.Contact, error)
	Tags(ctx context.Context) ([]string, error)
	SyncFromOrder(ctx context.Context, name, whatsapp, address string) error
}

// Service implements the address book logic.
type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

// NewService creates a new contact service. now is injectable for tests;
// pass nil to use the wall clock.
func NewService(repo RepositoryInterface, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// List returns the whole address book.
func (s *Service) List(ctx context.Context) ([]*models.Contact, error) {
	return s.repo.ListAll(ctx)
}

// Tags returns every distinct tag in use, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	contacts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Tags: %w", err)
	}

	seen := map[string]struct{}{}
	var tags []string
	for _, contact := range contacts {
		for _, tag := range contact.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// SyncFromOrder upserts the address book entry for an order's sender.
// Matching is case-folded on name and digits-only on the whatsapp number.
func (s *Service) SyncFromOrder(ctx context.Context, name, whatsapp, address string) error {
	name = strings.TrimSpace(name)
	whatsapp = strings.TrimSpace(whatsapp)
	address = strings.TrimSpace(address)
	if name == "" {
		return nil
	}

	waDigits := nonDigits.ReplaceAllString(whatsapp, "")
	now := s.now()

	existing, err := s.repo.FindByNameAndWA(ctx, name, waDigits)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("service.SyncFromOrder: %w", err)
		}
		contact := &models.Contact{
			ID:            uuid.New().String(),
			Name:          name,
			Whatsapp:      whatsapp,
			Address:       address,
			Tags:          []string{"pengirim"},
			CreatedAt:     now,
			LastContacted: &now,
		}
		if err := s.repo.Create(ctx, contact); err != nil {
			return fmt.Errorf("service.SyncFromOrder: %w", err)
		}
		return nil
	}

	existing.Address = address
	existing.LastContacted = &now
	if err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("service.SyncFromOrder: %w", err)
	}
	return nil
}
