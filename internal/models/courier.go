package models

import "time"

// Courier is a delivery worker. Aktif gates assignment eligibility; Online
// is a soft presence flag and is independent of Aktif.
type Courier struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	WA        string    `json:"wa"`
	Aktif     bool      `json:"aktif"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCourierRequest registers a new courier.
type CreateCourierRequest struct {
	Nama string `json:"nama" validate:"required,min=2,max=100"`
	WA   string `json:"wa" validate:"required"`
}

// UpdateCourierRequest is a partial courier update.
type UpdateCourierRequest struct {
	Nama *string `json:"nama,omitempty" validate:"omitempty,min=2,max=100"`
	WA   *string `json:"wa,omitempty"`
}

// CourierPerformance aggregates a courier's delivery and cash track record.
type CourierPerformance struct {
	KurirID           string `json:"kurir_id"`
	TotalOrderSelesai int    `json:"total_order_selesai"`
	CODDisetor        int64  `json:"cod_disetor"`
	OngkirDikumpulkan int64  `json:"ongkir_dikumpulkan"`
	TalanganDiganti   int64  `json:"talangan_diganti"`
}
