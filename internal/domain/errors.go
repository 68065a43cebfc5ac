package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the calculation error taxonomy.
// Every typed error below matches exactly one of these via errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrTermExceeded        = errors.New("term exceeded")
	ErrNotFound            = errors.New("not found")
)

// ValidationError reports an invalid debt selection, an out-of-range amount or rate,
// or an unknown strategy.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientPaymentError reports a payment that does not exceed the interest
// accrued in the first period. It is raised before any simulation loop starts.
type InsufficientPaymentError struct {
	Payment  decimal.Decimal
	Interest decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("payment %s must exceed monthly interest %s",
		e.Payment.StringFixed(2), e.Interest.StringFixed(2))
}

func (e *InsufficientPaymentError) Is(target error) bool { return target == ErrInsufficientPayment }

// TermExceededError reports a simulation that needs more than MaxMonths months.
type TermExceededError struct {
	MaxMonths        int
	RemainingBalance decimal.Decimal
}

func (e *TermExceededError) Error() string {
	return fmt.Sprintf("payoff exceeds maximum term of %d months (remaining balance %s)",
		e.MaxMonths, e.RemainingBalance.StringFixed(2))
}

func (e *TermExceededError) Is(target error) bool { return target == ErrTermExceeded }

// NotFoundError reports a referenced entity that does not exist
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
