package models

import "time"

// CODHistory is an immutable settlement audit entry. Nominal stores only the
// COD principal of the referenced order; the ongkir portion of a bundled
// remittance is never written into the ledger.
type CODHistory struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"order_id"`
	KurirID  string    `json:"kurir_id"`
	Nominal  int64     `json:"nominal"`
	Tanggal  time.Time `json:"tanggal"` // day granularity
	BuktiURL string    `json:"bukti_url,omitempty"`
}

// CODOutstanding is what a courier currently owes: their completed, unpaid
// COD orders plus the totals a deposit may cover.
type CODOutstanding struct {
	Orders            []*Order `json:"orders"`
	CODTotal          int64    `json:"cod_total"`
	OngkirViaCODTotal int64    `json:"ongkir_via_cod_total"`
	Total             int64    `json:"total"`
}

// SettleRequest is a courier cash deposit to distribute FIFO across their
// outstanding COD orders.
type SettleRequest struct {
	KurirID  string `json:"kurir_id" validate:"required"`
	Amount   int64  `json:"amount" validate:"required"`
	BuktiURL string `json:"bukti_url,omitempty" validate:"omitempty,url"`
}

// SettleOneRequest confirms remittance of exactly one completed COD order.
type SettleOneRequest struct {
	BuktiURL string `json:"bukti_url,omitempty" validate:"omitempty,url"`
}

// SettleResult reports which orders a deposit covered and the history rows
// appended for them.
type SettleResult struct {
	UpdatedOrders []*Order      `json:"updated_orders"`
	NewRecords    []*CODHistory `json:"new_records"`
	Remaining     int64         `json:"remaining"`
}
