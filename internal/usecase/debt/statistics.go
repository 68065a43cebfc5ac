package debt

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// RatePlaces is the precision of the balance-weighted average rate
const RatePlaces = 2

// Statistics summarizes the active debts of a portfolio
type Statistics struct {
	TotalDebts          int
	TotalDebt           decimal.Decimal
	TotalMinimumPayment decimal.Decimal
	AverageInterestRate decimal.Decimal // weighted by current balance
	HighestInterestRate decimal.Decimal
	DebtByType          []domain.DebtTypeBreakdown // declaration order, present types only
}

// ComputeStatistics aggregates the active debts. The average rate is 0 when the
// portfolio carries no balance.
func ComputeStatistics(debts []domain.Debt) Statistics {
	stats := Statistics{
		TotalDebt:           decimal.Zero,
		TotalMinimumPayment: decimal.Zero,
		AverageInterestRate: decimal.Zero,
		HighestInterestRate: decimal.Zero,
	}

	byType := make(map[domain.DebtType]*domain.DebtTypeBreakdown, len(domain.DebtTypes))
	weighted := decimal.Zero

	for _, debt := range debts {
		if !debt.IsActive {
			continue
		}
		stats.TotalDebts++
		stats.TotalDebt = stats.TotalDebt.Add(debt.CurrentBalance)
		stats.TotalMinimumPayment = stats.TotalMinimumPayment.Add(debt.MinimumPayment)
		weighted = weighted.Add(debt.InterestRate.Mul(debt.CurrentBalance))
		stats.HighestInterestRate = decimal.Max(stats.HighestInterestRate, debt.InterestRate)

		group, ok := byType[debt.Type]
		if !ok {
			group = &domain.DebtTypeBreakdown{
				Type:                debt.Type,
				TotalBalance:        decimal.Zero,
				TotalMinimumPayment: decimal.Zero,
			}
			byType[debt.Type] = group
		}
		group.Count++
		group.TotalBalance = group.TotalBalance.Add(debt.CurrentBalance)
		group.TotalMinimumPayment = group.TotalMinimumPayment.Add(debt.MinimumPayment)
	}

	if stats.TotalDebt.IsPositive() {
		stats.AverageInterestRate = weighted.Div(stats.TotalDebt).Round(RatePlaces)
	}

	for _, t := range domain.DebtTypes {
		if group, ok := byType[t]; ok {
			stats.DebtByType = append(stats.DebtByType, *group)
		}
	}
	return stats
}
