package models

import "time"

// Operating cost categories.
var ExpenseCategories = []string{
	"Bensin",
	"Parkir/Tol",
	"Maintenance Motor",
	"Pulsa/Internet",
	"Seragam/Atribut",
	"Lainnya",
}

// IsExpenseCategory reports whether k is one of the known categories.
func IsExpenseCategory(k string) bool {
	for _, c := range ExpenseCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Expense is an operating cost entry, independent of orders.
type Expense struct {
	ID        string    `json:"id"`
	Tanggal   time.Time `json:"tanggal"` // day granularity
	Kategori  string    `json:"kategori"`
	Deskripsi string    `json:"deskripsi"`
	Nominal   int64     `json:"nominal"`
}

// ExpenseRequest creates or replaces an expense entry.
type ExpenseRequest struct {
	Tanggal   time.Time `json:"tanggal"`
	Kategori  string    `json:"kategori" validate:"required"`
	Deskripsi string    `json:"deskripsi" validate:"required"`
	Nominal   int64     `json:"nominal" validate:"required,gt=0"`
}
