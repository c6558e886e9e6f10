package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when a login attempt fails.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCourierInactive is returned when an order is assigned to a courier
	// that is not aktif.
	ErrCourierInactive = errors.New("courier is not active")
)

// ErrorResponse is the JSON error envelope returned to API clients.
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ValidationError reports every violated field of a create/update request at
// once. Nothing is applied when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DuplicateError reports a courier name/phone collision. No mutation was
// performed.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %q already registered", e.Field, e.Value)
}

// IllegalTransitionError reports a courier status jump the pipeline does not
// allow. The order is left unchanged.
type IllegalTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// InvalidAmountError reports a settlement deposit that is non-positive or
// exceeds the courier's outstanding total. No orders or history were mutated.
type InvalidAmountError struct {
	Amount      int64
	Outstanding int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid deposit amount %d (outstanding %d)", e.Amount, e.Outstanding)
}
