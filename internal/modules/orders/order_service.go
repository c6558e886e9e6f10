package orders

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rayo-courier/internal/config"
	"rayo-courier/internal/models"

	"github.com/google/uuid"
)

// CourierCheckerInterface is the slice of the courier registry the order
// service needs for assignment checks.
type CourierCheckerInterface interface {
	FindByID(ctx context.Context, kurirID string) (*models.Courier, error)
}

// ContactSyncerInterface feeds the address book from order sender details.
type ContactSyncerInterface interface {
	SyncFromOrder(ctx context.Context, name, whatsapp, address string) error
}

// ServiceInterface defines the contract for the order ledger service.
type ServiceInterface interface {
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	Get(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error)
	Update(ctx context.Context, orderID string, req models.UpdateOrderRequest) (*models.Order, error)
	Delete(ctx context.Context, orderID string) error
	FeeQuote(serviceType string) (*models.FeeQuote, error)
	AssignCourier(ctx context.Context, orderID, kurirID string) error
	UpdateStatus(ctx context.Context, orderID string, target models.OrderStatus, actorRole string) error
	ToggleNonCodPaid(ctx context.Context, orderID string) error
	MarkTalanganReimbursed(ctx context.Context, orderID string) error
	StatusEvents(ctx context.Context, orderID string) ([]*models.StatusEvent, error)
}

// Service implements the order ledger logic.
type Service struct {
	repo     RepositoryInterface
	couriers CourierCheckerInterface
	contacts ContactSyncerInterface
	pricing  config.Pricing
	rules    config.Validation
	phoneRe  *regexp.Regexp
	now      func() time.Time
}

// NewService creates a new order service. now is injectable for tests; pass
// nil to use the wall clock.
func NewService(repo RepositoryInterface, couriers CourierCheckerInterface, contacts ContactSyncerInterface,
	pricing config.Pricing, rules config.Validation, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		couriers: couriers,
		contacts: contacts,
		pricing:  pricing,
		rules:    rules,
		phoneRe:  regexp.MustCompile(rules.PhonePattern),
		now:      now,
	}
}

func isOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// validateCreate checks the business rules of an order. Every violated field
// is reported at once.
func (s *Service) validateCreate(req models.CreateOrderRequest) error {
	fields := map[string]string{}

	nama := strings.TrimSpace(req.PengirimNama)
	if nama == "" {
		fields["pengirim_nama"] = "nama pengirim wajib diisi"
	} else if len([]rune(nama)) < s.rules.MinNameLen {
		fields["pengirim_nama"] = fmt.Sprintf("nama pengirim minimal %d karakter", s.rules.MinNameLen)
	}

	if pickup := strings.TrimSpace(req.PickupAlamat); pickup == "" {
		fields["pickup_alamat"] = "alamat pickup wajib diisi"
	} else if len([]rune(pickup)) < s.rules.MinAddressLen {
		fields["pickup_alamat"] = fmt.Sprintf("alamat pickup minimal %d karakter", s.rules.MinAddressLen)
	}

	if dropoff := strings.TrimSpace(req.DropoffAlamat); dropoff == "" {
		fields["dropoff_alamat"] = "alamat dropoff wajib diisi"
	} else if len([]rune(dropoff)) < s.rules.MinAddressLen {
		fields["dropoff_alamat"] = fmt.Sprintf("alamat dropoff minimal %d karakter", s.rules.MinAddressLen)
	}

	if !isOneOf(req.JenisOrder, models.JenisOrderValues) {
		fields["jenis_order"] = "jenis order wajib dipilih"
	}
	if !isOneOf(req.ServiceType, models.ServiceTypeValues) {
		fields["service_type"] = "service type wajib dipilih"
	}

	if req.Ongkir <= 0 {
		fields["ongkir"] = "ongkir wajib diisi dan harus lebih dari 0"
	} else if req.Ongkir < s.pricing.MinOngkir {
		fields["ongkir"] = fmt.Sprintf("ongkir minimal Rp %d", s.pricing.MinOngkir)
	}

	if wa := strings.ReplaceAll(req.PengirimWA, " ", ""); wa != "" && !s.phoneRe.MatchString(wa) {
		fields["pengirim_wa"] = "format nomor WhatsApp tidak valid (contoh: 08123456789)"
	}

	if req.CODNominal < 0 {
		fields["cod_nominal"] = "nominal COD tidak boleh negatif"
	}
	if req.DanaTalangan < 0 {
		fields["dana_talangan"] = "dana talangan tidak boleh negatif"
	}

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// Create validates and records a new order with status MENUNGGU_PICKUP.
func (s *Service) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	bayarOngkir := req.BayarOngkir
	if bayarOngkir == "" {
		bayarOngkir = models.BayarOngkirNonCOD
	}

	now := s.now()
	order := &models.Order{
		ID:          uuid.New().String(),
		CreatedAt:   now,
		CreatedDate: truncateToDay(now),
		Pengirim: models.Pengirim{
			Nama: strings.TrimSpace(req.PengirimNama),
			WA:   strings.TrimSpace(req.PengirimWA),
		},
		PickupAlamat:  strings.TrimSpace(req.PickupAlamat),
		DropoffAlamat: strings.TrimSpace(req.DropoffAlamat),
		Status:        models.StatusMenungguPickup,
		JenisOrder:    req.JenisOrder,
		ServiceType:   req.ServiceType,
		Ongkir:        req.Ongkir,
		DanaTalangan:  req.DanaTalangan,
		BayarOngkir:   bayarOngkir,
		COD:           models.CODDetail{Nominal: req.CODNominal},
		Notes:         strings.TrimSpace(req.Notes),
		// A plain non-COD order has its fee collected up front, so it is
		// recognized as paid from day one. Any COD nominal defers the fee
		// to settlement.
		NonCodPaid: req.CODNominal == 0 && bayarOngkir == models.BayarOngkirNonCOD,
	}
	order.NormalizeCOD()

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("service.Create: %w", err)
	}

	// Address book sync is best effort; a failed upsert must not fail the
	// order.
	if s.contacts != nil {
		_ = s.contacts.SyncFromOrder(ctx, order.Pengirim.Nama, order.Pengirim.WA, order.PickupAlamat)
	}

	return order, nil
}

// Get retrieves a single order.
func (s *Service) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

// List retrieves every order.
func (s *Service) List(ctx context.Context) ([]*models.Order, error) {
	return s.repo.ListAll(ctx)
}

// ListByKurir retrieves a courier's orders.
func (s *Service) ListByKurir(ctx context.Context, kurirID string) ([]*models.Order, error) {
	return s.repo.ListByKurir(ctx, kurirID)
}

// validateUpdate applies the create rules to the fields present in a patch.
func (s *Service) validateUpdate(req models.UpdateOrderRequest) error {
	fields := map[string]string{}

	if req.PengirimNama != nil && len([]rune(strings.TrimSpace(*req.PengirimNama))) < s.rules.MinNameLen {
		fields["pengirim_nama"] = fmt.Sprintf("nama pengirim minimal %d karakter", s.rules.MinNameLen)
	}
	if req.PickupAlamat != nil && len([]rune(strings.TrimSpace(*req.PickupAlamat))) < s.rules.MinAddressLen {
		fields["pickup_alamat"] = fmt.Sprintf("alamat pickup minimal %d karakter", s.rules.MinAddressLen)
	}
	if req.DropoffAlamat != nil && len([]rune(strings.TrimSpace(*req.DropoffAlamat))) < s.rules.MinAddressLen {
		fields["dropoff_alamat"] = fmt.Sprintf("alamat dropoff minimal %d karakter", s.rules.MinAddressLen)
	}
	if req.JenisOrder != nil && !isOneOf(*req.JenisOrder, models.JenisOrderValues) {
		fields["jenis_order"] = "jenis order tidak dikenal"
	}
	if req.ServiceType != nil && !isOneOf(*req.ServiceType, models.ServiceTypeValues) {
		fields["service_type"] = "service type tidak dikenal"
	}
	if req.Ongkir != nil && *req.Ongkir < s.pricing.MinOngkir {
		fields["ongkir"] = fmt.Sprintf("ongkir minimal Rp %d", s.pricing.MinOngkir)
	}
	if req.PengirimWA != nil {
		if wa := strings.ReplaceAll(*req.PengirimWA, " ", ""); wa != "" && !s.phoneRe.MatchString(wa) {
			fields["pengirim_wa"] = "format nomor WhatsApp tidak valid (contoh: 08123456789)"
		}
	}
	if req.CODNominal != nil && *req.CODNominal < 0 {
		fields["cod_nominal"] = "nominal COD tidak boleh negatif"
	}
	if req.DanaTalangan != nil && *req.DanaTalangan < 0 {
		fields["dana_talangan"] = "dana talangan tidak boleh negatif"
	}

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// Update patches an order's details.
func (s *Service) Update(ctx context.Context, orderID string, req models.UpdateOrderRequest) (*models.Order, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}
	order, err := s.repo.Update(ctx, orderID, req)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order. Admin action only.
func (s *Service) Delete(ctx context.Context, orderID string) error {
	return s.repo.Delete(ctx, orderID)
}

// FeeQuote computes the suggested ongkir for a service tier. The caller may
// still override it on submission.
func (s *Service) FeeQuote(serviceType string) (*models.FeeQuote, error) {
	if !isOneOf(serviceType, models.ServiceTypeValues) {
		return nil, &models.ValidationError{Fields: map[string]string{
			"service_type": "service type wajib dipilih",
		}}
	}
	return &models.FeeQuote{
		ServiceType:     serviceType,
		BaseOngkir:      s.pricing.BaseOngkir,
		Surcharge:       s.pricing.Surcharge(serviceType),
		SuggestedOngkir: s.pricing.SuggestedOngkir(serviceType),
	}, nil
}

// AssignCourier dispatches an order to an aktif courier.
func (s *Service) AssignCourier(ctx context.Context, orderID, kurirID string) error {
	courier, err := s.couriers.FindByID(ctx, kurirID)
	if err != nil {
		return err
	}
	if !courier.Aktif {
		return models.ErrCourierInactive
	}
	return s.repo.AssignCourier(ctx, orderID, kurirID)
}

// UpdateStatus moves an order along the pipeline. Couriers may only take the
// single legal next step; admins may jump anywhere, and such jumps are
// recorded as overrides in the audit trail. Reaching SELESAI never
// auto-settles COD or talangan.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, target models.OrderStatus, actorRole string) error {
	if !target.IsValid() {
		return &models.ValidationError{Fields: map[string]string{"status": "status tidak dikenal"}}
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	override := false
	if actorRole != models.RoleAdmin {
		if !models.CanCourierTransition(order.Status, target) {
			return &models.IllegalTransitionError{From: order.Status, To: target}
		}
	} else if !models.CanCourierTransition(order.Status, target) {
		override = true
	}

	event := &models.StatusEvent{
		ID:         uuid.New().String(),
		OrderID:    orderID,
		FromStatus: order.Status,
		ToStatus:   target,
		ActorRole:  actorRole,
		Override:   override,
		CreatedAt:  s.now(),
	}
	return s.repo.UpdateStatus(ctx, orderID, target, event)
}

// ToggleNonCodPaid flips the directly-paid fee flag, so an accidental mark
// can be undone. Only meaningful for NON_COD orders.
func (s *Service) ToggleNonCodPaid(ctx context.Context, orderID string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.BayarOngkir != models.BayarOngkirNonCOD {
		return &models.ValidationError{Fields: map[string]string{
			"bayar_ongkir": "ongkir order ini dibayar via COD",
		}}
	}
	return s.repo.SetNonCodPaid(ctx, orderID, !order.NonCodPaid)
}

// MarkTalanganReimbursed records that the advance float was returned.
func (s *Service) MarkTalanganReimbursed(ctx context.Context, orderID string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.DanaTalangan <= 0 {
		return &models.ValidationError{Fields: map[string]string{
			"dana_talangan": "order ini tidak memiliki dana talangan",
		}}
	}
	return s.repo.SetTalanganReimbursed(ctx, orderID)
}

// StatusEvents returns an order's audit trail.
func (s *Service) StatusEvents(ctx context.Context, orderID string) ([]*models.StatusEvent, error) {
	return s.repo.ListStatusEvents(ctx, orderID)
}

// truncateToDay drops the time-of-day component in local time.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
