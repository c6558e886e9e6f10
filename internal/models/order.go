package models

import "time"

// Order kinds offered by the dispatch desk.
const (
	JenisBarang      = "Barang"
	JenisMakanan     = "Makanan"
	JenisDokumen     = "Dokumen"
	JenisAntarJemput = "Antar Jemput"
)

// JenisOrderValues is the closed set of order kinds.
var JenisOrderValues = []string{JenisBarang, JenisMakanan, JenisDokumen, JenisAntarJemput}

// Service tiers. Each tier carries a fixed surcharge on top of the base fee.
const (
	ServiceReguler = "Reguler"
	ServiceExpress = "Express"
	ServiceSameDay = "Same Day"
)

// ServiceTypeValues is the closed set of service tiers.
var ServiceTypeValues = []string{ServiceReguler, ServiceExpress, ServiceSameDay}

// How the delivery fee is collected.
const (
	BayarOngkirNonCOD = "NON_COD" // fee paid directly by the sender
	BayarOngkirCOD    = "COD"     // fee bundled into the COD remittance
)

// CODDetail is the cash-on-delivery sub-record of an order.
// IsCOD is derived: it is true exactly when Nominal > 0, and is normalized
// on every write, never stored independently.
type CODDetail struct {
	Nominal int64 `json:"nominal"`
	IsCOD   bool  `json:"is_cod"`
	CODPaid bool  `json:"cod_paid"`
}

// Pengirim holds the sender's contact details.
type Pengirim struct {
	Nama string `json:"nama"`
	WA   string `json:"wa"`
}

// Order is a delivery request. All money fields are rupiah integers.
type Order struct {
	ID                 string      `json:"id"`
	CreatedAt          time.Time   `json:"created_at"`
	CreatedDate        time.Time   `json:"created_date"` // day granularity, local time
	Pengirim           Pengirim    `json:"pengirim"`
	PickupAlamat       string      `json:"pickup_alamat"`
	DropoffAlamat      string      `json:"dropoff_alamat"`
	KurirID            *string     `json:"kurir_id"`
	Status             OrderStatus `json:"status"`
	JenisOrder         string      `json:"jenis_order"`
	ServiceType        string      `json:"service_type"`
	Ongkir             int64       `json:"ongkir"`
	DanaTalangan       int64       `json:"dana_talangan"`
	BayarOngkir        string      `json:"bayar_ongkir"`
	COD                CODDetail   `json:"cod"`
	NonCodPaid         bool        `json:"non_cod_paid"`
	TalanganReimbursed bool        `json:"talangan_reimbursed"`
	Notes              string      `json:"notes,omitempty"`
}

// NormalizeCOD re-derives the IsCOD flag from the nominal.
func (o *Order) NormalizeCOD() {
	o.COD.IsCOD = o.COD.Nominal > 0
}

// OutstandingCODTotal is what the courier owes on this order when it is a
// completed, unsettled COD delivery: the merchant cash plus the bundled fee.
func (o *Order) OutstandingCODTotal() int64 {
	return o.COD.Nominal + o.Ongkir
}

// CreateOrderRequest is the payload for creating a new order.
// Business rules beyond these tags (configurable minimum lengths, minimum
// ongkir, phone format) are enforced by the order service so that all
// violations come back in one ValidationError.
type CreateOrderRequest struct {
	PengirimNama  string `json:"pengirim_nama"`
	PengirimWA    string `json:"pengirim_wa"`
	PickupAlamat  string `json:"pickup_alamat"`
	DropoffAlamat string `json:"dropoff_alamat"`
	JenisOrder    string `json:"jenis_order"`
	ServiceType   string `json:"service_type"`
	Ongkir        int64  `json:"ongkir"`
	DanaTalangan  int64  `json:"dana_talangan"`
	BayarOngkir   string `json:"bayar_ongkir" validate:"omitempty,oneof=NON_COD COD"`
	CODNominal    int64  `json:"cod_nominal"`
	Notes         string `json:"notes"`
}

// UpdateOrderRequest is a partial update; nil fields are left untouched.
type UpdateOrderRequest struct {
	PengirimNama  *string `json:"pengirim_nama,omitempty"`
	PengirimWA    *string `json:"pengirim_wa,omitempty"`
	PickupAlamat  *string `json:"pickup_alamat,omitempty"`
	DropoffAlamat *string `json:"dropoff_alamat,omitempty"`
	JenisOrder    *string `json:"jenis_order,omitempty"`
	ServiceType   *string `json:"service_type,omitempty"`
	Ongkir        *int64  `json:"ongkir,omitempty"`
	DanaTalangan  *int64  `json:"dana_talangan,omitempty"`
	BayarOngkir   *string `json:"bayar_ongkir,omitempty" validate:"omitempty,oneof=NON_COD COD"`
	CODNominal    *int64  `json:"cod_nominal,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AssignCourierRequest dispatches an order to a courier.
type AssignCourierRequest struct {
	KurirID string `json:"kurir_id" validate:"required"`
}

// UpdateStatusRequest moves an order along the pipeline.
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// FeeQuote is the suggested ongkir for a service tier. The caller may
// override the suggestion before submitting the order.
type FeeQuote struct {
	ServiceType     string `json:"service_type"`
	BaseOngkir      int64  `json:"base_ongkir"`
	Surcharge       int64  `json:"surcharge"`
	SuggestedOngkir int64  `json:"suggested_ongkir"`
}

// StatusEvent is an append-only audit record of a status change.
// Override is true when an admin jump bypassed the courier transition table.
type StatusEvent struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status"`
	ActorRole  string      `json:"actor_role"`
	Override   bool        `json:"override"`
	CreatedAt  time.Time   `json:"created_at"`
}
