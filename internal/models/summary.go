package models

import "time"

// FinancialSummary is the daily cash reconciliation picture. Revenue is
// ongkir only; COD principal and dana talangan are pass-through cash and are
// deliberately excluded from profit.
type FinancialSummary struct {
	Tanggal                  time.Time `json:"tanggal"`
	NonCodRevenueToday       int64     `json:"non_cod_revenue_today"`
	CODRevenueViaSettleToday int64     `json:"cod_revenue_via_settlement_today"`
	TotalRevenueToday        int64     `json:"total_revenue_today"`
	CODOutstanding           int64     `json:"cod_outstanding"`
	CODSettledToday          int64     `json:"cod_settled_today"`
	FloatOutstanding         int64     `json:"float_outstanding"`
	FloatReimbursedToday     int64     `json:"float_reimbursed_today"`
	DailyExpenses            int64     `json:"daily_expenses"`
	ProfitToday              int64     `json:"profit_today"`
}

// CourierLedger is the per-courier cash breakdown used on the finance page.
type CourierLedger struct {
	Courier             *Courier `json:"courier"`
	OrderCount          int      `json:"order_count"`
	TotalOngkir         int64    `json:"total_ongkir"`
	TotalCOD            int64    `json:"total_cod"`
	TotalDanaTalangan   int64    `json:"total_dana_talangan"`
	DepositedCOD        int64    `json:"deposited_cod"`
	TalanganDiganti     int64    `json:"talangan_diganti"`
	OutstandingCOD      int64    `json:"outstanding_cod"`
	OutstandingTalangan int64    `json:"outstanding_talangan"`
}
