package strategy

import (
	"sort"

	"github.com/google/uuid"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// Comparable lists the strategies that can be ranked against each other.
// CUSTOM is excluded because its order comes from the caller.
var Comparable = []domain.PayoffStrategy{
	domain.PayoffStrategySnowball,
	domain.PayoffStrategyAvalanche,
	domain.PayoffStrategyHighestRate,
}

// Sort returns a copy of debts ordered for the given payoff strategy.
//
//   - SNOWBALL: ascending current balance
//   - AVALANCHE, HIGHEST_RATE: descending interest rate
//   - CUSTOM: the order of customOrder; debts it does not name follow in input order
//
// Ties keep their input order, so equal values always sort the same way.
func Sort(debts []domain.Debt, strategy domain.PayoffStrategy, customOrder []uuid.UUID) ([]domain.Debt, error) {
	if !strategy.Valid() {
		return nil, domain.NewValidationError("strategy", "unknown payoff strategy "+string(strategy))
	}

	// Work on a copy so callers' snapshots stay untouched
	sorted := make([]domain.Debt, len(debts))
	copy(sorted, debts)

	switch strategy {
	case domain.PayoffStrategySnowball:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CurrentBalance.LessThan(sorted[j].CurrentBalance)
		})
	case domain.PayoffStrategyAvalanche, domain.PayoffStrategyHighestRate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].InterestRate.GreaterThan(sorted[j].InterestRate)
		})
	case domain.PayoffStrategyCustom:
		rank := make(map[uuid.UUID]int, len(customOrder))
		for i, id := range customOrder {
			if _, seen := rank[id]; !seen {
				rank[id] = i
			}
		}
		position := func(d domain.Debt) int {
			if r, ok := rank[d.ID]; ok {
				return r
			}
			return len(customOrder)
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return position(sorted[i]) < position(sorted[j])
		})
	}

	return sorted, nil
}
