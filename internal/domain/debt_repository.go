package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtRepository defines the read side the calculators depend on, plus the
// credit limit update. Debt CRUD lives with the collaborator that owns the table.
type DebtRepository interface {
	// GetByID retrieves a debt by its ID.
	// Returns a *NotFoundError when the debt does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Debt, error)

	// ListActive retrieves all active debts ordered by creation time (oldest first)
	ListActive(ctx context.Context) ([]Debt, error)

	// ListByIDs retrieves the debts with the given IDs, oldest first. Inactive
	// debts are included; callers decide whether they count.
	// Returns a *NotFoundError naming the first missing ID.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]Debt, error)

	// Create stores a new debt
	Create(ctx context.Context, debt *Debt) error

	// UpdateCreditLimit sets the explicit credit limit of a debt.
	// Returns a *NotFoundError when the debt does not exist.
	UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error
}

// EnsureAllFound returns a *NotFoundError for the first id with no matching debt
func EnsureAllFound(ids []uuid.UUID, debts []Debt) error {
	found := make(map[uuid.UUID]bool, len(debts))
	for _, d := range debts {
		found[d.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return &NotFoundError{Entity: "debt", ID: id.String()}
		}
	}
	return nil
}

// PrepareForInsert validates a new debt and fills in a missing ID and creation time
func PrepareForInsert(debt *Debt, now time.Time) error {
	if err := debt.Validate(); err != nil {
		return err
	}
	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}
	if debt.CreatedAt.IsZero() {
		debt.CreatedAt = now
	}
	if debt.StartDate.IsZero() {
		debt.StartDate = debt.CreatedAt
	}
	return nil
}
