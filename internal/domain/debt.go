package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType represents the kind of debt
type DebtType string

const (
	DebtTypeCreditCard  DebtType = "CREDIT_CARD"
	DebtTypeLoan        DebtType = "LOAN"
	DebtTypeMortgage    DebtType = "MORTGAGE"
	DebtTypeStudentLoan DebtType = "STUDENT_LOAN"
	DebtTypeOther       DebtType = "OTHER"
)

// DebtTypes lists every debt type in declaration order
var DebtTypes = []DebtType{
	DebtTypeCreditCard,
	DebtTypeLoan,
	DebtTypeMortgage,
	DebtTypeStudentLoan,
	DebtTypeOther,
}

// Valid reports whether t is one of the declared debt types
func (t DebtType) Valid() bool {
	for _, known := range DebtTypes {
		if t == known {
			return true
		}
	}
	return false
}

var (
	hundred = decimal.NewFromInt(100)
)

// Debt is a read-only snapshot of a debt record.
// The calculators receive value copies and never write back.
type Debt struct {
	ID             uuid.UUID
	Name           string
	Type           DebtType
	OriginalAmount decimal.Decimal
	CurrentBalance decimal.Decimal
	InterestRate   decimal.Decimal // Annual percentage, 18.99 = 18.99% APR
	MinimumPayment decimal.Decimal
	PaymentDueDate int                 // Day of month, 1-31
	CreditLimit    decimal.NullDecimal // Only meaningful for CREDIT_CARD
	CreditorName   string
	IsActive       bool
	StartDate      time.Time
	CreatedAt      time.Time
}

// Validate ensures the debt snapshot adheres to domain rules
func (d *Debt) Validate() error {
	if d.Name == "" {
		return NewValidationError("name", "debt name cannot be empty")
	}
	if !d.Type.Valid() {
		return NewValidationError("type", "debt type must be CREDIT_CARD, LOAN, MORTGAGE, STUDENT_LOAN, or OTHER")
	}
	if d.OriginalAmount.IsNegative() {
		return NewValidationError("original_amount", "must not be negative")
	}
	if d.CurrentBalance.IsNegative() {
		return NewValidationError("current_balance", "must not be negative")
	}
	if err := ValidateRate("interest_rate", d.InterestRate); err != nil {
		return err
	}
	if d.MinimumPayment.IsNegative() {
		return NewValidationError("minimum_payment", "must not be negative")
	}
	if d.PaymentDueDate < 1 || d.PaymentDueDate > 31 {
		return NewValidationError("payment_due_date", "must be a day of month between 1 and 31")
	}
	if d.CreditLimit.Valid {
		if d.Type != DebtTypeCreditCard {
			return NewValidationError("credit_limit", "only credit cards carry a credit limit")
		}
		if d.CreditLimit.Decimal.IsNegative() {
			return NewValidationError("credit_limit", "must not be negative")
		}
	}
	return nil
}

// ValidateForCalculation checks only the numeric fields the calculators read
func (d *Debt) ValidateForCalculation() error {
	if err := ValidateAmount("current_balance", d.CurrentBalance); err != nil {
		return err
	}
	if err := ValidateRate("interest_rate", d.InterestRate); err != nil {
		return err
	}
	return ValidateAmount("minimum_payment", d.MinimumPayment)
}

// ValidateRate checks that an annual percentage rate lies within [0, 100]
func ValidateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return NewValidationError(field, "interest rate must be between 0 and 100")
	}
	return nil
}

// ValidateAmount checks that a monetary amount is not negative
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}

// FilterDebts returns the active debts, restricted to ids when ids is non-empty.
// The input order is preserved.
func FilterDebts(debts []Debt, ids []uuid.UUID) []Debt {
	var wanted map[uuid.UUID]bool
	if len(ids) > 0 {
		wanted = make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	filtered := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if !d.IsActive {
			continue
		}
		if wanted != nil && !wanted[d.ID] {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// OutstandingDebts returns the debts that still carry a positive balance, in input order
func OutstandingDebts(debts []Debt) []Debt {
	outstanding := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if d.CurrentBalance.IsPositive() {
			outstanding = append(outstanding, d)
		}
	}
	return outstanding
}
