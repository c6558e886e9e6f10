package contacts

import (
	"context"
	"errors"
	"fmt"

	"rayo-courier/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the address book storage.
type RepositoryInterface interface {
	// FindByNameAndWA matches on case-folded name plus digits-only
	// whatsapp number.
	FindByNameAndWA(ctx context.Context, name, waDigits string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	ListAll(ctx context.Context) ([]*models.Contact, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new contact repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.Name, &contact.Whatsapp, &contact.Address,
		&contact.Tags, &contact.Notes, &contact.CreatedAt, &contact.LastContacted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return &contact, nil
}

// FindByNameAndWA looks up an existing address book entry.
func (r *Repository) FindByNameAndWA(ctx context.Context, name, waDigits string) (*models.Contact, error) {
	query := `
		SELECT id, name, whatsapp, address, tags, notes, created_at, last_contacted
		FROM contacts
		WHERE LOWER(name) = LOWER($1) AND regexp_replace(whatsapp, '\D', '', 'g') = $2`

	contact, err := scanContact(r.db.QueryRow(ctx, query, name, waDigits))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByNameAndWA: %w", err)
	}
	return contact, nil
}

// Create inserts a new contact.
func (r *Repository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, whatsapp, address, tags, notes, created_at, last_contacted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query, contact.ID, contact.Name, contact.Whatsapp, contact.Address,
		contact.Tags, contact.Notes, contact.CreatedAt, contact.LastContacted)
	if err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

// Update replaces a contact's mutable fields.
func (r *Repository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET address = $1, tags = $2, notes = $3, last_contacted = $4
		WHERE id = $5`

	cmdTag, err := r.db.Exec(ctx, query, contact.Address, contact.Tags, contact.Notes, contact.LastContacted, contact.ID)
	if err != nil {
		return fmt.Errorf("repository.Update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListAll retrieves the whole address book.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Contact, error) {
	query := `SELECT id, name, whatsapp, address, tags, notes, created_at, last_contacted FROM contacts ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAll: %w", err)
	}
	defer rows.Close()

	var list []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, contact)
	}
	return list, rows.Err()
}
