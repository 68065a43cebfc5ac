package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/debtflow-backend/internal/domain"
)

// DebtSeeder loads a fixed set of debts into storage at startup
type DebtSeeder struct {
	repo domain.DebtRepository
}

// NewDebtSeeder creates a new DebtSeeder instance
func NewDebtSeeder(repo domain.DebtRepository) *DebtSeeder {
	return &DebtSeeder{
		repo: repo,
	}
}

// Seed ensures every debt exists in the repository and returns how many were created.
// Debts already stored under the same ID are left untouched, so seeding is safe to
// repeat on every start. Each debt must carry a fixed ID for that to hold.
func (s *DebtSeeder) Seed(ctx context.Context, debts []domain.Debt) (int, error) {
	for i := range debts {
		if debts[i].ID == uuid.Nil {
			return 0, domain.NewValidationError("id", fmt.Sprintf("seeded debt %q needs a fixed id", debts[i].Name))
		}
	}

	created := 0
	for i := range debts {
		debt := debts[i]

		_, err := s.repo.GetByID(ctx, debt.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return created, fmt.Errorf("failed to look up debt %s: %w", debt.ID, err)
		}

		if err := s.repo.Create(ctx, &debt); err != nil {
			return created, fmt.Errorf("failed to seed debt %q: %w", debt.Name, err)
		}
		created++
	}

	return created, nil
}
