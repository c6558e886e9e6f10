package expenses

import (
	"context"
	"testing"
	"time"

	"rayo-courier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a testify mock of RepositoryInterface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, expense *models.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, expense *models.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 16, 45, 0, 0, time.Local)
}

func TestCreate_DefaultsTanggalToToday(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, fixedNow)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	expense, err := svc.Create(context.Background(), models.ExpenseRequest{
		Kategori:  "Bensin",
		Deskripsi: "isi bensin motor",
		Nominal:   25000,
	})
	require.NoError(t, err)

	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	assert.True(t, expense.Tanggal.Equal(want), "zero tanggal defaults to today at day granularity")
	assert.NotEmpty(t, expense.ID)
}

func TestCreate_RejectsUnknownCategory(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, fixedNow)

	_, err := svc.Create(context.Background(), models.ExpenseRequest{
		Kategori:  "Jajan",
		Deskripsi: "snack",
		Nominal:   5000,
	})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "kategori")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RejectsNonPositiveNominal(t *testing.T) {
	svc := NewService(new(MockRepository), fixedNow)

	for _, nominal := range []int64{0, -100} {
		_, err := svc.Create(context.Background(), models.ExpenseRequest{
			Kategori:  "Parkir/Tol",
			Deskripsi: "parkir",
			Nominal:   nominal,
		})
		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestUpdate_KeepsExistingTanggal(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, fixedNow)

	existing := &models.Expense{
		ID:       "e1",
		Tanggal:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		Kategori: "Bensin",
		Nominal:  20000,
	}
	repo.On("FindByID", mock.Anything, "e1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	expense, err := svc.Update(context.Background(), "e1", models.ExpenseRequest{
		Kategori:  "Maintenance Motor",
		Deskripsi: "ganti oli",
		Nominal:   60000,
	})
	require.NoError(t, err)
	assert.True(t, expense.Tanggal.Equal(existing.Tanggal))
	assert.Equal(t, "Maintenance Motor", expense.Kategori)
}
