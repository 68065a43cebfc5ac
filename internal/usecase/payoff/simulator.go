// Package payoff simulates paying down several debts at once with a fixed
// monthly budget, using waterfall allocation in strategy order.
package payoff

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
	"github.com/simaogato/debtflow-backend/internal/usecase/strategy"
)

// Input configures a payoff calculation
type Input struct {
	Strategy            domain.PayoffStrategy
	ExtraMonthlyPayment decimal.Decimal
	DebtIDs             []uuid.UUID // Optional selection; also the order for CUSTOM
}

// DebtPayoffSchedule is one debt's independent schedule.
//
// It assumes the debt alone receives its minimum payment, plus the extra payment
// when it is first in payoff order. Debts with nothing left to pay get no schedule. It ignores minimums freed by debts retired
// earlier, so it does not reconcile with the aggregate MonthlyBreakdown: principal
// totals agree, while the summed interest here is an upper bound on the aggregate.
type DebtPayoffSchedule struct {
	DebtID            uuid.UUID
	DebtName          string
	OriginalBalance   decimal.Decimal
	InterestRate      decimal.Decimal
	MinimumPayment    decimal.Decimal
	TotalPaid         decimal.Decimal
	TotalInterestPaid decimal.Decimal
	MonthsToPayoff    int
	PayoffOrder       int // 1-based
	MonthlyPayments   []domain.MonthlyPayment
}

// Summary holds the portfolio-level figures of a payoff calculation
type Summary struct {
	TotalDebts           int
	TotalStartingBalance decimal.Decimal
	RecommendedStrategy  domain.PayoffStrategy

	// Savings against paying only each debt's minimum, independently.
	// Zero when BaselineAvailable is false.
	TotalInterestSaved decimal.Decimal
	MonthsSaved        int
	BaselineAvailable  bool
}

// Result is the outcome of CalculatePayoffStrategy.
// MonthlyBreakdown is the authoritative aggregate simulation; PayoffSchedule is
// the per-debt approximation described on DebtPayoffSchedule.
type Result struct {
	Strategy          domain.PayoffStrategy
	TotalMonths       int
	TotalInterestPaid decimal.Decimal
	TotalPaid         decimal.Decimal
	MonthlyBreakdown  []domain.MonthlyPayment
	PayoffSchedule    []DebtPayoffSchedule
	Summary           Summary
}

// aggregate is the outcome of one waterfall simulation
type aggregate struct {
	ordered       []domain.Debt
	months        int
	totalInterest decimal.Decimal
	breakdown     []domain.MonthlyPayment
}

// position tracks one debt's working balance inside the simulation
type position struct {
	debt        domain.Debt
	balance     decimal.Decimal
	monthlyRate decimal.Decimal
}

// CalculatePayoffStrategy simulates paying off the selected debts with their summed
// minimum payments plus input.ExtraMonthlyPayment each month.
//
// Logic:
//  1. Select the active debts (restricted to input.DebtIDs when given)
//  2. The budget is every selected minimum plus the extra payment
//  3. Order the debts that still owe money per strategy; the first is the target
//  4. Every other debt receives exactly its minimum payment
//  5. The rest of the budget goes to the target only; whatever retiring it
//     leaves over is not spent that month
//  6. Retired debts leave the list, freeing their minimum for the next target
//
// The inputs are never modified.
func CalculatePayoffStrategy(debts []domain.Debt, input Input) (*Result, error) {
	if input.ExtraMonthlyPayment.IsNegative() {
		return nil, domain.NewValidationError("extra_monthly_payment", "must not be negative")
	}
	if !input.Strategy.Valid() {
		return nil, domain.NewValidationError("strategy", "unknown payoff strategy "+string(input.Strategy))
	}
	if input.Strategy == domain.PayoffStrategyCustom && len(input.DebtIDs) == 0 {
		return nil, domain.NewValidationError("debt_ids", "CUSTOM strategy requires the debt ids in payoff order")
	}

	selected, err := selectDebts(debts, input.DebtIDs)
	if err != nil {
		return nil, err
	}

	run, err := runStrategy(selected, input.Strategy, input.DebtIDs, input.ExtraMonthlyPayment)
	if err != nil {
		return nil, err
	}

	schedules, err := individualSchedules(run.ordered, input.ExtraMonthlyPayment)
	if err != nil {
		return nil, err
	}

	startingBalance := totalBalance(selected)
	summary := Summary{
		TotalDebts:           len(selected),
		TotalStartingBalance: startingBalance,
		RecommendedStrategy:  recommendStrategy(selected, input.ExtraMonthlyPayment),
		TotalInterestSaved:   decimal.Zero,
	}
	if baselineMonths, baselineInterest, ok := minimumOnlyBaseline(selected); ok {
		summary.BaselineAvailable = true
		summary.TotalInterestSaved = baselineInterest.Sub(run.totalInterest)
		summary.MonthsSaved = baselineMonths - run.months
	}

	return &Result{
		Strategy:          input.Strategy,
		TotalMonths:       run.months,
		TotalInterestPaid: run.totalInterest,
		TotalPaid:         startingBalance.Add(run.totalInterest),
		MonthlyBreakdown:  run.breakdown,
		PayoffSchedule:    schedules,
		Summary:           summary,
	}, nil
}

func selectDebts(debts []domain.Debt, ids []uuid.UUID) ([]domain.Debt, error) {
	selected := domain.FilterDebts(debts, ids)
	if len(selected) == 0 {
		return nil, domain.NewValidationError("debt_ids", "no active debts found")
	}
	for i := range selected {
		if err := selected[i].ValidateForCalculation(); err != nil {
			return nil, err
		}
	}
	return selected, nil
}

// runStrategy orders the debts that still owe money, rejects payments that cannot
// amortize, then runs the waterfall simulation. Paid-off debts keep their minimum
// in the budget but never become the target.
func runStrategy(selected []domain.Debt, s domain.PayoffStrategy, customOrder []uuid.UUID, extra decimal.Decimal) (*aggregate, error) {
	ordered, err := strategy.Sort(domain.OutstandingDebts(selected), s, customOrder)
	if err != nil {
		return nil, err
	}

	// Every debt must amortize on the payment its individual schedule assumes
	for i, debt := range ordered {
		if err := amortization.CheckPayment(debt.CurrentBalance, debt.InterestRate, scheduledPayment(debt, i, extra)); err != nil {
			return nil, err
		}
	}

	return simulate(ordered, totalMinimum(selected).Add(extra))
}

func simulate(ordered []domain.Debt, budget decimal.Decimal) (*aggregate, error) {
	remaining := make([]position, 0, len(ordered))
	for _, debt := range ordered {
		remaining = append(remaining, position{
			debt:        debt,
			balance:     debt.CurrentBalance,
			monthlyRate: amortization.MonthlyRate(debt.InterestRate),
		})
	}

	run := &aggregate{ordered: ordered, totalInterest: decimal.Zero}

	for len(remaining) > 0 {
		if run.months >= domain.MaxTermMonths {
			return nil, &domain.TermExceededError{
				MaxMonths:        domain.MaxTermMonths,
				RemainingBalance: positionsBalance(remaining),
			}
		}
		run.months++

		available := budget
		monthInterest := decimal.Zero
		monthPrincipal := decimal.Zero

		// Minimums on everything but the target
		for i := 1; i < len(remaining); i++ {
			p := &remaining[i]
			interest := amortization.MonthlyInterest(p.balance, p.monthlyRate)
			payment := decimal.Min(p.debt.MinimumPayment, p.balance.Add(interest))
			principal := payment.Sub(interest)

			p.balance = p.balance.Sub(principal)
			available = available.Sub(payment)
			monthInterest = monthInterest.Add(interest)
			monthPrincipal = monthPrincipal.Add(principal)
		}

		// The target takes what is left, capped at what it owes
		target := &remaining[0]
		interest := amortization.MonthlyInterest(target.balance, target.monthlyRate)
		payment := decimal.Min(available, target.balance.Add(interest))
		principal := payment.Sub(interest)

		target.balance = target.balance.Sub(principal)
		monthInterest = monthInterest.Add(interest)
		monthPrincipal = monthPrincipal.Add(principal)

		run.totalInterest = run.totalInterest.Add(monthInterest)

		remaining = retainOutstanding(remaining)
		run.breakdown = append(run.breakdown, domain.MonthlyPayment{
			Month:            run.months,
			TotalPayment:     monthPrincipal.Add(monthInterest),
			PrincipalPaid:    monthPrincipal,
			InterestPaid:     monthInterest,
			RemainingBalance: positionsBalance(remaining),
		})
	}

	return run, nil
}

// retainOutstanding drops retired debts, keeping the order of the rest
func retainOutstanding(positions []position) []position {
	kept := positions[:0]
	for _, p := range positions {
		if p.balance.IsPositive() {
			kept = append(kept, p)
		}
	}
	return kept
}

func positionsBalance(positions []position) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range positions {
		sum = sum.Add(decimal.Max(p.balance, decimal.Zero))
	}
	return sum
}

func totalMinimum(debts []domain.Debt) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range debts {
		sum = sum.Add(d.MinimumPayment)
	}
	return sum
}

func totalBalance(debts []domain.Debt) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range debts {
		sum = sum.Add(d.CurrentBalance)
	}
	return sum
}

// scheduledPayment is the payment a debt's individual schedule assumes:
// its minimum, plus the extra payment for the first debt in payoff order
func scheduledPayment(debt domain.Debt, order int, extra decimal.Decimal) decimal.Decimal {
	if order == 0 {
		return debt.MinimumPayment.Add(extra)
	}
	return debt.MinimumPayment
}

func individualSchedules(ordered []domain.Debt, extra decimal.Decimal) ([]DebtPayoffSchedule, error) {
	schedules := make([]DebtPayoffSchedule, 0, len(ordered))
	for i, debt := range ordered {
		schedule, err := amortization.CalculateSchedule(debt.CurrentBalance, debt.InterestRate, scheduledPayment(debt, i, extra), 0)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, DebtPayoffSchedule{
			DebtID:            debt.ID,
			DebtName:          debt.Name,
			OriginalBalance:   debt.CurrentBalance,
			InterestRate:      debt.InterestRate,
			MinimumPayment:    debt.MinimumPayment,
			TotalPaid:         schedule.Details.TotalPaid,
			TotalInterestPaid: schedule.Details.TotalInterestPaid,
			MonthsToPayoff:    schedule.Details.TermMonths,
			PayoffOrder:       i + 1,
			MonthlyPayments:   schedule.Payments,
		})
	}
	return schedules, nil
}

// recommendStrategy ranks the fixed set of comparable strategies by total interest.
// Each candidate runs the bare simulation once; nothing recurses. Ties go to the
// earlier strategy in strategy.Comparable.
func recommendStrategy(selected []domain.Debt, extra decimal.Decimal) domain.PayoffStrategy {
	best := domain.PayoffStrategyAvalanche
	var lowest *decimal.Decimal

	for _, candidate := range strategy.Comparable {
		run, err := runStrategy(selected, candidate, nil, extra)
		if err != nil {
			continue
		}
		if lowest == nil || run.totalInterest.LessThan(*lowest) {
			interest := run.totalInterest
			lowest = &interest
			best = candidate
		}
	}
	return best
}

// minimumOnlyBaseline pays each debt independently at its minimum.
// Returns false when any debt could not be retired that way.
func minimumOnlyBaseline(selected []domain.Debt) (int, decimal.Decimal, bool) {
	months := 0
	interest := decimal.Zero
	for _, debt := range selected {
		details, err := amortization.CalculateLoanDetails(debt.CurrentBalance, debt.InterestRate, debt.MinimumPayment, 0)
		if err != nil {
			return 0, decimal.Zero, false
		}
		if details.TermMonths > months {
			months = details.TermMonths
		}
		interest = interest.Add(details.TotalInterestPaid)
	}
	return months, interest, true
}
