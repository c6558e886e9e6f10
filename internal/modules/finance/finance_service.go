package finance

import (
	"context"
	"fmt"
	"time"

	"rayo-courier/internal/models"
)

// OrderReaderInterface supplies the full order ledger.
type OrderReaderInterface interface {
	ListAll(ctx context.Context) ([]*models.Order, error)
}

// HistoryReaderInterface supplies the full settlement ledger.
type HistoryReaderInterface interface {
	ListHistory(ctx context.Context) ([]*models.CODHistory, error)
}

// ExpenseReaderInterface supplies the expense ledger.
type ExpenseReaderInterface interface {
	ListAll(ctx context.Context) ([]*models.Expense, error)
}

// CourierReaderInterface supplies the courier registry.
type CourierReaderInterface interface {
	ListAll(ctx context.Context) ([]*models.Courier, error)
}

// ServiceInterface defines the contract for the financial aggregator.
type ServiceInterface interface {
	Summary(ctx context.Context, today time.Time) (*models.FinancialSummary, error)
	CourierLedgers(ctx context.Context) ([]*models.CourierLedger, error)
}

// Service recomputes summaries on demand from the full collections. There is
// no cache to invalidate: each request folds over the current ledgers.
type Service struct {
	orders   OrderReaderInterface
	history  HistoryReaderInterface
	expenses ExpenseReaderInterface
	couriers CourierReaderInterface
}

// NewService creates a new finance service.
func NewService(orders OrderReaderInterface, history HistoryReaderInterface,
	expenses ExpenseReaderInterface, couriers CourierReaderInterface) *Service {
	return &Service{orders: orders, history: history, expenses: expenses, couriers: couriers}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildSummary folds the ledgers into the daily reconciliation figures.
// Revenue is ongkir only: NON_COD fees paid directly on orders created
// today, plus fees whose bundled COD remittance settled today. COD principal
// and dana talangan are pass-through cash and never count toward profit.
func BuildSummary(orders []*models.Order, history []*models.CODHistory, expenses []*models.Expense, today time.Time) *models.FinancialSummary {
	byID := make(map[string]*models.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	summary := &models.FinancialSummary{Tanggal: today}

	for _, order := range orders {
		if !order.COD.IsCOD && order.NonCodPaid && sameDay(order.CreatedDate, today) {
			summary.NonCodRevenueToday += order.Ongkir
		}
		if order.COD.IsCOD && order.Status == models.StatusSelesai && !order.COD.CODPaid {
			summary.CODOutstanding += order.COD.Nominal + order.Ongkir
		}
		if order.DanaTalangan > 0 && order.Status != models.StatusSelesai {
			summary.FloatOutstanding += order.DanaTalangan
		}
		if order.DanaTalangan > 0 && order.TalanganReimbursed && sameDay(order.CreatedDate, today) {
			summary.FloatReimbursedToday += order.DanaTalangan
		}
	}

	for _, rec := range history {
		if !sameDay(rec.Tanggal, today) {
			continue
		}
		// A record for a since-deleted order contributes no ongkir.
		var ongkir int64
		if order, ok := byID[rec.OrderID]; ok {
			ongkir = order.Ongkir
		}
		summary.CODRevenueViaSettleToday += ongkir
		summary.CODSettledToday += rec.Nominal + ongkir
	}

	for _, expense := range expenses {
		if sameDay(expense.Tanggal, today) {
			summary.DailyExpenses += expense.Nominal
		}
	}

	summary.TotalRevenueToday = summary.NonCodRevenueToday + summary.CODRevenueViaSettleToday
	summary.ProfitToday = summary.TotalRevenueToday - summary.DailyExpenses
	return summary
}

// BuildCourierLedgers folds the ledgers into the per-courier cash breakdown.
// Couriers with no orders are omitted.
func BuildCourierLedgers(couriers []*models.Courier, orders []*models.Order, history []*models.CODHistory) []*models.CourierLedger {
	deposited := make(map[string]int64)
	for _, rec := range history {
		deposited[rec.KurirID] += rec.Nominal
	}

	var ledgers []*models.CourierLedger
	for _, courier := range couriers {
		ledger := &models.CourierLedger{Courier: courier, DepositedCOD: deposited[courier.ID]}
		for _, order := range orders {
			if order.KurirID == nil || *order.KurirID != courier.ID {
				continue
			}
			ledger.OrderCount++
			ledger.TotalOngkir += order.Ongkir
			if order.COD.IsCOD {
				ledger.TotalCOD += order.COD.Nominal
			}
			ledger.TotalDanaTalangan += order.DanaTalangan
			if order.TalanganReimbursed && order.DanaTalangan > 0 {
				ledger.TalanganDiganti += order.DanaTalangan
			}
			if order.COD.IsCOD && order.Status == models.StatusSelesai && !order.COD.CODPaid {
				ledger.OutstandingCOD += order.COD.Nominal + order.Ongkir
			}
			if order.DanaTalangan > 0 && !order.TalanganReimbursed {
				ledger.OutstandingTalangan += order.DanaTalangan
			}
		}
		if ledger.OrderCount > 0 {
			ledgers = append(ledgers, ledger)
		}
	}
	return ledgers
}

// Summary computes the daily reconciliation for the given day.
func (s *Service) Summary(ctx context.Context, today time.Time) (*models.FinancialSummary, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Summary: %w", err)
	}
	history, err := s.history.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Summary: %w", err)
	}
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Summary: %w", err)
	}
	return BuildSummary(orders, history, expenses, today), nil
}

// CourierLedgers computes the per-courier breakdown.
func (s *Service) CourierLedgers(ctx context.Context) ([]*models.CourierLedger, error) {
	couriers, err := s.couriers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CourierLedgers: %w", err)
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CourierLedgers: %w", err)
	}
	history, err := s.history.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CourierLedgers: %w", err)
	}
	return BuildCourierLedgers(couriers, orders, history), nil
}
