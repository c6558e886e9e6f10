package orders

import (
	"context"
	"testing"
	"time"

	"rayo-courier/internal/config"
	"rayo-courier/internal/models"
	"rayo-courier/internal/modules/finance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a testify mock of RepositoryInterface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockRepository) ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error) {
	args := m.Called(ctx, kurirID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, orderID string, req models.UpdateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockRepository) AssignCourier(ctx context.Context, orderID, kurirID string) error {
	args := m.Called(ctx, orderID, kurirID)
	return args.Error(0)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, event *models.StatusEvent) error {
	args := m.Called(ctx, orderID, status, event)
	return args.Error(0)
}

func (m *MockRepository) SetNonCodPaid(ctx context.Context, orderID string, paid bool) error {
	args := m.Called(ctx, orderID, paid)
	return args.Error(0)
}

func (m *MockRepository) SetTalanganReimbursed(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockRepository) ListStatusEvents(ctx context.Context, orderID string) ([]*models.StatusEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StatusEvent), args.Error(1)
}

// MockCourierChecker is a testify mock of CourierCheckerInterface.
type MockCourierChecker struct {
	mock.Mock
}

func (m *MockCourierChecker) FindByID(ctx context.Context, kurirID string) (*models.Courier, error) {
	args := m.Called(ctx, kurirID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Courier), args.Error(1)
}

func testPricing() config.Pricing {
	return config.Pricing{BaseOngkir: 15000, MinOngkir: 5000, SurchargeExpress: 5000, SurchargeSameDay: 10000}
}

func testRules() config.Validation {
	return config.Validation{MinNameLen: 2, MinAddressLen: 10, PhonePattern: `^(\+62|62|0)[0-9]{9,13}$`}
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
}

func newTestService(repo RepositoryInterface, couriers CourierCheckerInterface) *Service {
	return NewService(repo, couriers, nil, testPricing(), testRules(), fixedNow)
}

func validCreateReq() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		PengirimNama:  "Budi Santoso",
		PengirimWA:    "08123456789",
		PickupAlamat:  "Jl. Merdeka No. 10, Bandung",
		DropoffAlamat: "Jl. Asia Afrika No. 25, Bandung",
		JenisOrder:    models.JenisBarang,
		ServiceType:   models.ServiceReguler,
		Ongkir:        15000,
	}
}

func TestCreate_DefaultsAndNormalization(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	var captured *models.Order
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*models.Order)
	}).Return(nil)

	req := validCreateReq()
	req.CODNominal = 50000

	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusMenungguPickup, order.Status)
	assert.Equal(t, models.BayarOngkirNonCOD, order.BayarOngkir, "bayar_ongkir defaults to NON_COD")
	assert.True(t, order.COD.IsCOD, "is_cod follows the nominal")
	assert.False(t, order.COD.CODPaid)
	assert.True(t, order.CreatedDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)))
	assert.Same(t, order, captured)
}

func TestCreate_NonCodOrderRecognizedAsPaid(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// A plain NON_COD order carries its fee up front and is paid from
	// day one.
	order, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)
	assert.True(t, order.NonCodPaid)

	// Any COD nominal defers the fee to settlement, even with a NON_COD
	// bayar_ongkir.
	withCOD := validCreateReq()
	withCOD.CODNominal = 50000
	order, err = svc.Create(context.Background(), withCOD)
	require.NoError(t, err)
	assert.False(t, order.NonCodPaid)

	// A COD-bundled fee is never born paid.
	bundled := validCreateReq()
	bundled.BayarOngkir = models.BayarOngkirCOD
	order, err = svc.Create(context.Background(), bundled)
	require.NoError(t, err)
	assert.False(t, order.NonCodPaid)
}

func TestCreate_FreshNonCodOrderCountsAsRevenueToday(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)

	// The fee shows up in the daily summary on the creation day without
	// any further marking.
	summary := finance.BuildSummary([]*models.Order{order}, nil, nil, order.CreatedDate)
	assert.Equal(t, int64(15000), summary.NonCodRevenueToday)
	assert.Equal(t, int64(15000), summary.ProfitToday)
}

func TestCreate_ReportsEveryViolationAtOnce(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	req := models.CreateOrderRequest{
		PengirimNama:  "B",
		PengirimWA:    "12345",
		PickupAlamat:  "pendek",
		DropoffAlamat: "",
		JenisOrder:    "Lain",
		ServiceType:   "Kilat",
		Ongkir:        0,
		CODNominal:    -1,
		DanaTalangan:  -1,
	}

	_, err := svc.Create(context.Background(), req)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	for _, field := range []string{
		"pengirim_nama", "pengirim_wa", "pickup_alamat", "dropoff_alamat",
		"jenis_order", "service_type", "ongkir", "cod_nominal", "dana_talangan",
	} {
		assert.Contains(t, vErr.Fields, field)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_OngkirBelowMinimum(t *testing.T) {
	svc := newTestService(new(MockRepository), nil)

	req := validCreateReq()
	req.Ongkir = 4999

	_, err := svc.Create(context.Background(), req)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "ongkir")
}

func TestCreate_EmptyWAIsAllowed(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validCreateReq()
	req.PengirimWA = ""

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestFeeQuote(t *testing.T) {
	svc := newTestService(new(MockRepository), nil)

	cases := []struct {
		serviceType string
		surcharge   int64
		suggested   int64
	}{
		{models.ServiceReguler, 0, 15000},
		{models.ServiceExpress, 5000, 20000},
		{models.ServiceSameDay, 10000, 25000},
	}
	for _, tc := range cases {
		quote, err := svc.FeeQuote(tc.serviceType)
		require.NoError(t, err, tc.serviceType)
		assert.Equal(t, tc.surcharge, quote.Surcharge)
		assert.Equal(t, tc.suggested, quote.SuggestedOngkir)
	}

	_, err := svc.FeeQuote("Kilat")
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestAssignCourier_RejectsInactive(t *testing.T) {
	repo := new(MockRepository)
	couriers := new(MockCourierChecker)
	svc := newTestService(repo, couriers)

	couriers.On("FindByID", mock.Anything, "k1").Return(&models.Courier{ID: "k1", Aktif: false}, nil)

	err := svc.AssignCourier(context.Background(), "o1", "k1")
	assert.ErrorIs(t, err, models.ErrCourierInactive)
	repo.AssertNotCalled(t, "AssignCourier", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignCourier_Active(t *testing.T) {
	repo := new(MockRepository)
	couriers := new(MockCourierChecker)
	svc := newTestService(repo, couriers)

	couriers.On("FindByID", mock.Anything, "k1").Return(&models.Courier{ID: "k1", Aktif: true}, nil)
	repo.On("AssignCourier", mock.Anything, "o1", "k1").Return(nil)

	err := svc.AssignCourier(context.Background(), "o1", "k1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_CourierForwardStep(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", Status: models.StatusMenungguPickup}, nil)
	repo.On("UpdateStatus", mock.Anything, "o1", models.StatusPickupOTW, mock.Anything).Return(nil)

	err := svc.UpdateStatus(context.Background(), "o1", models.StatusPickupOTW, models.RoleKurir)
	require.NoError(t, err)

	event := repo.Calls[len(repo.Calls)-1].Arguments.Get(3).(*models.StatusEvent)
	assert.Equal(t, models.StatusMenungguPickup, event.FromStatus)
	assert.Equal(t, models.StatusPickupOTW, event.ToStatus)
	assert.False(t, event.Override)
}

func TestUpdateStatus_CourierCannotSkip(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", Status: models.StatusMenungguPickup}, nil)

	err := svc.UpdateStatus(context.Background(), "o1", models.StatusSelesai, models.RoleKurir)
	var transErr *models.IllegalTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, models.StatusMenungguPickup, transErr.From)
	assert.Equal(t, models.StatusSelesai, transErr.To)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_AdminJumpIsAuditedAsOverride(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", Status: models.StatusMenungguPickup}, nil)
	repo.On("UpdateStatus", mock.Anything, "o1", models.StatusSelesai, mock.Anything).Return(nil)

	err := svc.UpdateStatus(context.Background(), "o1", models.StatusSelesai, models.RoleAdmin)
	require.NoError(t, err)

	event := repo.Calls[len(repo.Calls)-1].Arguments.Get(3).(*models.StatusEvent)
	assert.True(t, event.Override)
	assert.Equal(t, models.RoleAdmin, event.ActorRole)
}

func TestUpdateStatus_AdminForwardStepIsNotOverride(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", Status: models.StatusSedangDikirim}, nil)
	repo.On("UpdateStatus", mock.Anything, "o1", models.StatusSelesai, mock.Anything).Return(nil)

	err := svc.UpdateStatus(context.Background(), "o1", models.StatusSelesai, models.RoleAdmin)
	require.NoError(t, err)

	event := repo.Calls[len(repo.Calls)-1].Arguments.Get(3).(*models.StatusEvent)
	assert.False(t, event.Override)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newTestService(new(MockRepository), nil)

	err := svc.UpdateStatus(context.Background(), "o1", models.OrderStatus("DIKIRIM"), models.RoleAdmin)
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestToggleNonCodPaid_FlipsBothWays(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	unpaid := &models.Order{ID: "o1", BayarOngkir: models.BayarOngkirNonCOD, NonCodPaid: false}
	repo.On("FindByID", mock.Anything, "o1").Return(unpaid, nil).Once()
	repo.On("SetNonCodPaid", mock.Anything, "o1", true).Return(nil).Once()
	require.NoError(t, svc.ToggleNonCodPaid(context.Background(), "o1"))

	// A mis-click can be undone.
	paid := &models.Order{ID: "o1", BayarOngkir: models.BayarOngkirNonCOD, NonCodPaid: true}
	repo.On("FindByID", mock.Anything, "o1").Return(paid, nil).Once()
	repo.On("SetNonCodPaid", mock.Anything, "o1", false).Return(nil).Once()
	require.NoError(t, svc.ToggleNonCodPaid(context.Background(), "o1"))

	repo.AssertExpectations(t)
}

func TestToggleNonCodPaid_RejectsCODBundledFee(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", BayarOngkir: models.BayarOngkirCOD}, nil)

	err := svc.ToggleNonCodPaid(context.Background(), "o1")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "SetNonCodPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkTalanganReimbursed_RequiresTalangan(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, nil)

	repo.On("FindByID", mock.Anything, "o1").Return(&models.Order{ID: "o1", DanaTalangan: 0}, nil)

	err := svc.MarkTalanganReimbursed(context.Background(), "o1")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "SetTalanganReimbursed", mock.Anything, mock.Anything)
}
