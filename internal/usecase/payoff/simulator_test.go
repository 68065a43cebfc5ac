package payoff

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newDebt(name, balance, rate, minimum string) domain.Debt {
	return domain.Debt{
		ID:             uuid.New(),
		Name:           name,
		Type:           domain.DebtTypeCreditCard,
		OriginalAmount: d(balance),
		CurrentBalance: d(balance),
		InterestRate:   d(rate),
		MinimumPayment: d(minimum),
		PaymentDueDate: 15,
		IsActive:       true,
	}
}

// portfolio returns a high-rate large card and a low-rate small card
func portfolio() []domain.Debt {
	return []domain.Debt{
		newDebt("big", "500", "20", "25"),
		newDebt("small", "100", "5", "25"),
	}
}

func TestCalculatePayoffStrategy_AvalancheBeatsSnowball(t *testing.T) {
	debts := portfolio()
	extra := d("50")

	avalanche, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: extra})
	require.NoError(t, err)
	snowball, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: extra})
	require.NoError(t, err)

	assert.Equal(t, 7, avalanche.TotalMonths)
	assert.True(t, d("34.16").Equal(avalanche.TotalInterestPaid), "avalanche interest: %s", avalanche.TotalInterestPaid)
	assert.True(t, d("634.16").Equal(avalanche.TotalPaid))

	assert.Equal(t, 7, snowball.TotalMonths)
	assert.True(t, d("40.15").Equal(snowball.TotalInterestPaid), "snowball interest: %s", snowball.TotalInterestPaid)

	assert.True(t, avalanche.TotalInterestPaid.LessThanOrEqual(snowball.TotalInterestPaid))

	assert.Equal(t, "big", avalanche.PayoffSchedule[0].DebtName)
	assert.Equal(t, "small", snowball.PayoffSchedule[0].DebtName)
	assert.Equal(t, domain.PayoffStrategyAvalanche, avalanche.Summary.RecommendedStrategy)
	assert.Equal(t, domain.PayoffStrategyAvalanche, snowball.Summary.RecommendedStrategy)
}

func TestCalculatePayoffStrategy_MinimumsOnly(t *testing.T) {
	result, err := CalculatePayoffStrategy(portfolio(), Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: decimal.Zero})
	require.NoError(t, err)

	assert.Equal(t, 14, result.TotalMonths)
	assert.True(t, d("75.07").Equal(result.TotalInterestPaid), "interest: %s", result.TotalInterestPaid)
	assert.Equal(t, domain.PayoffStrategyAvalanche, result.Summary.RecommendedStrategy)
}

func TestCalculatePayoffStrategy_TieRecommendsFirstComparable(t *testing.T) {
	// The smallest balance also carries the highest rate, so every ordering matches
	debts := []domain.Debt{
		newDebt("big", "500", "5", "25"),
		newDebt("small", "100", "20", "25"),
	}

	result, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: decimal.Zero})
	require.NoError(t, err)

	assert.Equal(t, 13, result.TotalMonths)
	assert.True(t, d("20.96").Equal(result.TotalInterestPaid), "interest: %s", result.TotalInterestPaid)
	assert.Equal(t, domain.PayoffStrategySnowball, result.Summary.RecommendedStrategy)
}

func TestCalculatePayoffStrategy_HighestRateMatchesAvalanche(t *testing.T) {
	debts := []domain.Debt{
		newDebt("car", "8000", "6", "180"),
		newDebt("visa", "2400", "22.9", "70"),
		newDebt("store", "650", "26.5", "30"),
	}
	input := Input{ExtraMonthlyPayment: d("120")}

	input.Strategy = domain.PayoffStrategyAvalanche
	avalanche, err := CalculatePayoffStrategy(debts, input)
	require.NoError(t, err)

	input.Strategy = domain.PayoffStrategyHighestRate
	highest, err := CalculatePayoffStrategy(debts, input)
	require.NoError(t, err)

	assert.Equal(t, avalanche.TotalMonths, highest.TotalMonths)
	assert.True(t, avalanche.TotalInterestPaid.Equal(highest.TotalInterestPaid))
	for i := range avalanche.PayoffSchedule {
		assert.Equal(t, avalanche.PayoffSchedule[i].DebtID, highest.PayoffSchedule[i].DebtID)
	}
	assert.Equal(t, domain.PayoffStrategyHighestRate, highest.Strategy)
}

func TestCalculatePayoffStrategy_MoreExtraNeverCostsMore(t *testing.T) {
	debts := []domain.Debt{
		newDebt("car", "8000", "6", "180"),
		newDebt("visa", "2400", "22.9", "70"),
		newDebt("store", "650", "26.5", "30"),
	}

	var prev *Result
	for _, extra := range []string{"0", "50", "100", "250"} {
		result, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: d(extra)})
		require.NoError(t, err)

		if prev != nil {
			assert.True(t, result.TotalInterestPaid.LessThanOrEqual(prev.TotalInterestPaid), "extra %s", extra)
			assert.LessOrEqual(t, result.TotalMonths, prev.TotalMonths, "extra %s", extra)
		}
		prev = result
	}
}

func TestCalculatePayoffStrategy_BreakdownReconciles(t *testing.T) {
	debts := []domain.Debt{
		newDebt("car", "8000", "6", "180"),
		newDebt("visa", "2400", "22.9", "70"),
		newDebt("store", "650", "26.5", "30"),
		newDebt("paid off", "0", "10", "20"),
	}

	result, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("75")})
	require.NoError(t, err)
	require.Len(t, result.MonthlyBreakdown, result.TotalMonths)

	principal := decimal.Zero
	interest := decimal.Zero
	for i, month := range result.MonthlyBreakdown {
		assert.Equal(t, i+1, month.Month)
		assert.True(t, month.TotalPayment.Equal(month.PrincipalPaid.Add(month.InterestPaid)))
		assert.False(t, month.RemainingBalance.IsNegative())
		principal = principal.Add(month.PrincipalPaid)
		interest = interest.Add(month.InterestPaid)
	}
	last := result.MonthlyBreakdown[len(result.MonthlyBreakdown)-1]
	assert.True(t, last.RemainingBalance.IsZero())

	assert.True(t, d("11050").Equal(result.Summary.TotalStartingBalance))
	assert.True(t, result.Summary.TotalStartingBalance.Equal(principal), "principal: %s", principal)
	assert.True(t, result.TotalInterestPaid.Equal(interest))

	schedulePrincipal := decimal.Zero
	scheduleInterest := decimal.Zero
	for _, schedule := range result.PayoffSchedule {
		for _, p := range schedule.MonthlyPayments {
			schedulePrincipal = schedulePrincipal.Add(p.PrincipalPaid)
		}
		scheduleInterest = scheduleInterest.Add(schedule.TotalInterestPaid)
	}
	assert.True(t, principal.Equal(schedulePrincipal))
	assert.True(t, result.TotalInterestPaid.LessThanOrEqual(scheduleInterest))

	require.Len(t, result.PayoffSchedule, 3)
	assert.Equal(t, "store", result.PayoffSchedule[0].DebtName)
	assert.Equal(t, 35, result.TotalMonths)
	assert.True(t, d("1486.17").Equal(result.TotalInterestPaid), "interest: %s", result.TotalInterestPaid)
}

func TestCalculatePayoffStrategy_PaidOffDebtIsNeverTarget(t *testing.T) {
	owed := newDebt("owed", "1000", "24", "15")
	alone, err := CalculatePayoffStrategy([]domain.Debt{owed}, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("100")})
	require.NoError(t, err)
	assert.Equal(t, 10, alone.TotalMonths)
	assert.True(t, d("109.77").Equal(alone.TotalInterestPaid), "interest: %s", alone.TotalInterestPaid)

	t.Run("no minimum", func(t *testing.T) {
		paid := newDebt("paid", "0", "10", "0")

		result, err := CalculatePayoffStrategy([]domain.Debt{owed, paid}, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("100")})
		require.NoError(t, err)

		assert.Equal(t, alone.TotalMonths, result.TotalMonths)
		assert.True(t, alone.TotalInterestPaid.Equal(result.TotalInterestPaid))
		assert.Equal(t, 2, result.Summary.TotalDebts)
		require.Len(t, result.PayoffSchedule, 1)
		assert.Equal(t, owed.ID, result.PayoffSchedule[0].DebtID)
		assert.Equal(t, 1, result.PayoffSchedule[0].PayoffOrder)
		assert.Equal(t, 10, result.PayoffSchedule[0].MonthsToPayoff)
	})

	t.Run("freed minimum joins the budget", func(t *testing.T) {
		paid := newDebt("paid", "0", "10", "20")

		result, err := CalculatePayoffStrategy([]domain.Debt{owed, paid}, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("100")})
		require.NoError(t, err)

		assert.Equal(t, 9, result.TotalMonths)
		assert.True(t, d("93.21").Equal(result.TotalInterestPaid), "interest: %s", result.TotalInterestPaid)
		require.Len(t, result.PayoffSchedule, 1)
		assert.Equal(t, owed.ID, result.PayoffSchedule[0].DebtID)
		assert.Equal(t, 1, result.PayoffSchedule[0].PayoffOrder)
	})
}

func TestCalculatePayoffStrategy_LeftoverStaysWithTarget(t *testing.T) {
	a := newDebt("a", "100", "0", "10")
	b := newDebt("b", "1000", "0", "10")

	result, err := CalculatePayoffStrategy([]domain.Debt{a, b}, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("85")})
	require.NoError(t, err)

	assert.Equal(t, 12, result.TotalMonths)
	require.Len(t, result.MonthlyBreakdown, 12)

	// a is retired in month 2 with its last 5; b only gets its minimum that month
	second := result.MonthlyBreakdown[1]
	assert.True(t, d("15").Equal(second.TotalPayment), "month 2 paid: %s", second.TotalPayment)
	assert.True(t, d("980").Equal(second.RemainingBalance), "month 2 remaining: %s", second.RemainingBalance)

	third := result.MonthlyBreakdown[2]
	assert.True(t, d("105").Equal(third.TotalPayment), "month 3 paid: %s", third.TotalPayment)
}

func TestCalculatePayoffStrategy_SingleDebtMatchesSchedule(t *testing.T) {
	debts := []domain.Debt{newDebt("visa", "3000", "19.99", "90")}

	result, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: d("60")})
	require.NoError(t, err)
	require.Len(t, result.PayoffSchedule, 1)

	schedule := result.PayoffSchedule[0]
	assert.Equal(t, 1, schedule.PayoffOrder)
	assert.Equal(t, result.TotalMonths, schedule.MonthsToPayoff)
	assert.True(t, result.TotalInterestPaid.Equal(schedule.TotalInterestPaid))
	assert.Equal(t, len(result.MonthlyBreakdown), len(schedule.MonthlyPayments))
	for i := range schedule.MonthlyPayments {
		assert.True(t, result.MonthlyBreakdown[i].TotalPayment.Equal(schedule.MonthlyPayments[i].TotalPayment), "month %d", i+1)
	}
}

func TestCalculatePayoffStrategy_CustomOrder(t *testing.T) {
	debts := portfolio()
	big, small := debts[0], debts[1]

	result, err := CalculatePayoffStrategy(debts, Input{
		Strategy:            domain.PayoffStrategyCustom,
		ExtraMonthlyPayment: d("50"),
		DebtIDs:             []uuid.UUID{small.ID, big.ID},
	})
	require.NoError(t, err)

	require.Len(t, result.PayoffSchedule, 2)
	assert.Equal(t, small.ID, result.PayoffSchedule[0].DebtID)
	assert.Equal(t, 1, result.PayoffSchedule[0].PayoffOrder)
	assert.Equal(t, big.ID, result.PayoffSchedule[1].DebtID)
	assert.Equal(t, 2, result.PayoffSchedule[1].PayoffOrder)
	assert.True(t, d("40.15").Equal(result.TotalInterestPaid))
}

func TestCalculatePayoffStrategy_SelectsByID(t *testing.T) {
	debts := portfolio()

	result, err := CalculatePayoffStrategy(debts, Input{
		Strategy:            domain.PayoffStrategySnowball,
		ExtraMonthlyPayment: decimal.Zero,
		DebtIDs:             []uuid.UUID{debts[1].ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.TotalDebts)
	assert.True(t, d("100").Equal(result.Summary.TotalStartingBalance))
	assert.Equal(t, debts[1].ID, result.PayoffSchedule[0].DebtID)
}

func TestCalculatePayoffStrategy_BaselineSavings(t *testing.T) {
	result, err := CalculatePayoffStrategy(portfolio(), Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: d("50")})
	require.NoError(t, err)

	assert.True(t, result.Summary.BaselineAvailable)
	assert.True(t, result.Summary.TotalInterestSaved.IsPositive(), "saved: %s", result.Summary.TotalInterestSaved)
	assert.Positive(t, result.Summary.MonthsSaved)
}

func TestCalculatePayoffStrategy_DoesNotMutateInput(t *testing.T) {
	debts := portfolio()
	before := make([]domain.Debt, len(debts))
	copy(before, debts)

	_, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategySnowball, ExtraMonthlyPayment: d("50")})
	require.NoError(t, err)

	for i := range debts {
		assert.Equal(t, before[i].Name, debts[i].Name)
		assert.True(t, before[i].CurrentBalance.Equal(debts[i].CurrentBalance))
	}
}

func TestCalculatePayoffStrategy_ValidationErrors(t *testing.T) {
	inactive := newDebt("closed", "100", "5", "25")
	inactive.IsActive = false

	tests := []struct {
		name  string
		debts []domain.Debt
		input Input
	}{
		{
			name:  "no debts",
			debts: nil,
			input: Input{Strategy: domain.PayoffStrategyAvalanche},
		},
		{
			name:  "only inactive debts",
			debts: []domain.Debt{inactive},
			input: Input{Strategy: domain.PayoffStrategyAvalanche},
		},
		{
			name:  "unknown ids",
			debts: portfolio(),
			input: Input{Strategy: domain.PayoffStrategyAvalanche, DebtIDs: []uuid.UUID{uuid.New()}},
		},
		{
			name:  "unknown strategy",
			debts: portfolio(),
			input: Input{Strategy: domain.PayoffStrategy("LOTTERY")},
		},
		{
			name:  "custom without ids",
			debts: portfolio(),
			input: Input{Strategy: domain.PayoffStrategyCustom, ExtraMonthlyPayment: d("50")},
		},
		{
			name:  "negative extra",
			debts: portfolio(),
			input: Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: d("-1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePayoffStrategy(tt.debts, tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCalculatePayoffStrategy_InsufficientMinimum(t *testing.T) {
	debts := []domain.Debt{
		newDebt("fine", "100", "30", "50"),
		// 1000 at 24% accrues 20 a month
		newDebt("underwater", "1000", "24", "15"),
	}

	_, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestCalculatePayoffStrategy_TermExceeded(t *testing.T) {
	debts := []domain.Debt{newDebt("mortgage", "200000", "12", "2001")}

	_, err := CalculatePayoffStrategy(debts, Input{Strategy: domain.PayoffStrategyAvalanche, ExtraMonthlyPayment: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrTermExceeded)
}
