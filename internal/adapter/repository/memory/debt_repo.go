// Package memory keeps debts in process memory. It backs the CLI, tests, and
// servers started without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// DebtRepository implements domain.DebtRepository over a map
type DebtRepository struct {
	mu    sync.RWMutex
	debts map[uuid.UUID]domain.Debt
	now   func() time.Time
}

// NewDebtRepository creates an empty repository
func NewDebtRepository() *DebtRepository {
	return &DebtRepository{
		debts: make(map[uuid.UUID]domain.Debt),
		now:   time.Now,
	}
}

// GetByID retrieves a copy of the debt
func (r *DebtRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	debt, ok := r.debts[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "debt", ID: id.String()}
	}
	return &debt, nil
}

// ListActive retrieves all active debts, oldest first
func (r *DebtRepository) ListActive(_ context.Context) ([]domain.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	debts := make([]domain.Debt, 0, len(r.debts))
	for _, debt := range r.debts {
		if debt.IsActive {
			debts = append(debts, debt)
		}
	}
	sortOldestFirst(debts)
	return debts, nil
}

// ListByIDs retrieves the debts with the given IDs, oldest first
func (r *DebtRepository) ListByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[uuid.UUID]bool, len(ids))
	debts := make([]domain.Debt, 0, len(ids))
	for _, id := range ids {
		debt, ok := r.debts[id]
		if !ok {
			return nil, &domain.NotFoundError{Entity: "debt", ID: id.String()}
		}
		if !seen[id] {
			seen[id] = true
			debts = append(debts, debt)
		}
	}
	sortOldestFirst(debts)
	return debts, nil
}

// Create validates and stores a copy of debt, assigning an ID and creation time when missing
func (r *DebtRepository) Create(_ context.Context, debt *domain.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := domain.PrepareForInsert(debt, r.now()); err != nil {
		return err
	}
	r.debts[debt.ID] = *debt
	return nil
}

// UpdateCreditLimit sets the explicit credit limit of a debt
func (r *DebtRepository) UpdateCreditLimit(_ context.Context, id uuid.UUID, limit decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	debt, ok := r.debts[id]
	if !ok {
		return &domain.NotFoundError{Entity: "debt", ID: id.String()}
	}
	debt.CreditLimit = decimal.NewNullDecimal(limit)
	r.debts[id] = debt
	return nil
}

func sortOldestFirst(debts []domain.Debt) {
	sort.SliceStable(debts, func(i, j int) bool {
		if !debts[i].CreatedAt.Equal(debts[j].CreatedAt) {
			return debts[i].CreatedAt.Before(debts[j].CreatedAt)
		}
		return debts[i].ID.String() < debts[j].ID.String()
	})
}
