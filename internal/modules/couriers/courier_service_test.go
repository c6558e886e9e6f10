package couriers

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

func (m *MockRepository) Create(ctx context.Context, courier *models.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, kurirID string) (*models.Courier, error) {
	args := m.Called(ctx, kurirID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Courier), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*models.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Courier), args.Error(1)
}

func (m *MockRepository) ListAktif(ctx context.Context) ([]*models.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Courier), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, kurirID string, req models.UpdateCourierRequest) (*models.Courier, error) {
	args := m.Called(ctx, kurirID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Courier), args.Error(1)
}

func (m *MockRepository) SetAktif(ctx context.Context, kurirID string, aktif bool) error {
	args := m.Called(ctx, kurirID, aktif)
	return args.Error(0)
}

func (m *MockRepository) SetOnline(ctx context.Context, kurirID string, online bool) error {
	args := m.Called(ctx, kurirID, online)
	return args.Error(0)
}

func (m *MockRepository) ExistsNamaOrWA(ctx context.Context, nama, wa, excludeID string) (bool, bool, error) {
	args := m.Called(ctx, nama, wa, excludeID)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

// MockOrderReader is a testify mock of OrderReaderInterface.
type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error) {
	args := m.Called(ctx, kurirID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

// MockHistoryReader is a testify mock of HistoryReaderInterface.
type MockHistoryReader struct {
	mock.Mock
}

func (m *MockHistoryReader) ListHistoryByKurir(ctx context.Context, kurirID string) ([]*models.CODHistory, error) {
	args := m.Called(ctx, kurirID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CODHistory), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("ExistsNamaOrWA", mock.Anything, "Budi", "08123456789", "").Return(false, false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	courier, err := svc.Create(context.Background(), models.CreateCourierRequest{Nama: "  Budi ", WA: "08123456789"})
	require.NoError(t, err)

	assert.NotEmpty(t, courier.ID)
	assert.Equal(t, "Budi", courier.Nama, "name is stored trimmed")
	assert.True(t, courier.Aktif, "new couriers are aktif")
	assert.False(t, courier.Online, "new couriers start offline")
	repo.AssertExpectations(t)
}

func TestCreate_DuplicateNama(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("ExistsNamaOrWA", mock.Anything, "budi", "0811111", "").Return(true, false, nil)

	_, err := svc.Create(context.Background(), models.CreateCourierRequest{Nama: "budi", WA: "0811111"})
	var dupErr *models.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "nama", dupErr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateWA(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("ExistsNamaOrWA", mock.Anything, "Sari", "08123456789", "").Return(false, true, nil)

	_, err := svc.Create(context.Background(), models.CreateCourierRequest{Nama: "Sari", WA: "08123456789"})
	var dupErr *models.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "wa", dupErr.Field)
}

func TestUpdate_ExcludesSelfFromDuplicateCheck(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	nama := "Budi"
	updated := &models.Courier{ID: "k1", Nama: "Budi"}
	repo.On("ExistsNamaOrWA", mock.Anything, "Budi", "", "k1").Return(false, false, nil)
	repo.On("Update", mock.Anything, "k1", mock.Anything).Return(updated, nil)

	courier, err := svc.Update(context.Background(), "k1", models.UpdateCourierRequest{Nama: &nama})
	require.NoError(t, err)
	assert.Equal(t, "Budi", courier.Nama)
	repo.AssertExpectations(t)
}

func TestToggleAktif(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("FindByID", mock.Anything, "k1").Return(&models.Courier{ID: "k1", Aktif: true}, nil)
	repo.On("SetAktif", mock.Anything, "k1", false).Return(nil)

	courier, err := svc.ToggleAktif(context.Background(), "k1")
	require.NoError(t, err)
	assert.False(t, courier.Aktif)
	repo.AssertExpectations(t)
}

func TestToggleOnline(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("FindByID", mock.Anything, "k1").Return(&models.Courier{ID: "k1", Online: false}, nil)
	repo.On("SetOnline", mock.Anything, "k1", true).Return(nil)

	courier, err := svc.ToggleOnline(context.Background(), "k1")
	require.NoError(t, err)
	assert.True(t, courier.Online)
}

func TestPerformance(t *testing.T) {
	repo := new(MockRepository)
	orders := new(MockOrderReader)
	history := new(MockHistoryReader)
	svc := NewService(repo, orders, history, fixedNow)

	repo.On("FindByID", mock.Anything, "k1").Return(&models.Courier{ID: "k1"}, nil)

	k1 := "k1"
	done := &models.Order{ID: "a", KurirID: &k1, Status: models.StatusSelesai, Ongkir: 15000, DanaTalangan: 20000}
	done.TalanganReimbursed = true
	inFlight := &models.Order{ID: "b", KurirID: &k1, Status: models.StatusSedangDikirim, Ongkir: 10000}
	orders.On("ListByKurir", mock.Anything, "k1").Return([]*models.Order{done, inFlight}, nil)
	history.On("ListHistoryByKurir", mock.Anything, "k1").Return([]*models.CODHistory{
		{ID: "h1", OrderID: "a", KurirID: "k1", Nominal: 50000},
	}, nil)

	perf, err := svc.Performance(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, 1, perf.TotalOrderSelesai)
	assert.Equal(t, int64(25000), perf.OngkirDikumpulkan)
	assert.Equal(t, int64(50000), perf.CODDisetor)
	assert.Equal(t, int64(20000), perf.TalanganDiganti)
}

func TestPerformance_UnknownCourier(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, fixedNow)

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, models.ErrNotFound)

	_, err := svc.Performance(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
