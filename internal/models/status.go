package models

// OrderStatus is the delivery pipeline state of an order.
type OrderStatus string

const (
	StatusMenungguPickup OrderStatus = "MENUNGGU_PICKUP"
	StatusPickupOTW      OrderStatus = "PICKUP_OTW"
	StatusBarangDiambil  OrderStatus = "BARANG_DIAMBIL"
	StatusSedangDikirim  OrderStatus = "SEDANG_DIKIRIM"
	StatusSelesai        OrderStatus = "SELESAI"
)

// AllStatuses lists every pipeline state in forward order.
var AllStatuses = []OrderStatus{
	StatusMenungguPickup,
	StatusPickupOTW,
	StatusBarangDiambil,
	StatusSedangDikirim,
	StatusSelesai,
}

// courierTransitions is the single legal next state per current state.
// SELESAI is terminal and has no entry.
var courierTransitions = map[OrderStatus]OrderStatus{
	StatusMenungguPickup: StatusPickupOTW,
	StatusPickupOTW:      StatusBarangDiambil,
	StatusBarangDiambil:  StatusSedangDikirim,
	StatusSedangDikirim:  StatusSelesai,
}

// IsValid reports whether s is one of the known pipeline states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusMenungguPickup, StatusPickupOTW, StatusBarangDiambil, StatusSedangDikirim, StatusSelesai:
		return true
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusSelesai
}

// NextStatus returns the only state a courier may advance to from s.
// ok is false when s is terminal.
func (s OrderStatus) NextStatus() (next OrderStatus, ok bool) {
	next, ok = courierTransitions[s]
	return next, ok
}

// CanCourierTransition reports whether a courier may move an order from
// `from` to `to`. Admins bypass this table entirely.
func CanCourierTransition(from, to OrderStatus) bool {
	next, ok := courierTransitions[from]
	return ok && next == to
}
