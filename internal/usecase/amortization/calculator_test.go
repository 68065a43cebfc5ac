package amortization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateSchedule_FirstMonthSplit(t *testing.T) {
	// balance=1000, 12% APR => monthly rate 0.01
	schedule, err := CalculateSchedule(d("1000"), d("12"), d("100"), 0)
	require.NoError(t, err)
	require.NotEmpty(t, schedule.Payments)

	first := schedule.Payments[0]
	assert.Equal(t, 1, first.Month)
	assert.True(t, d("10").Equal(first.InterestPaid), "interest: %s", first.InterestPaid)
	assert.True(t, d("90").Equal(first.PrincipalPaid), "principal: %s", first.PrincipalPaid)
	assert.True(t, d("910").Equal(first.RemainingBalance), "remaining: %s", first.RemainingBalance)

	assert.Equal(t, 11, schedule.Details.TermMonths)
	assert.True(t, d("58.98").Equal(schedule.Details.TotalInterestPaid))
	assert.True(t, d("1058.98").Equal(schedule.Details.TotalPaid))

	last := schedule.Payments[len(schedule.Payments)-1]
	assert.True(t, last.RemainingBalance.IsZero())
	assert.True(t, d("58.98").Equal(last.TotalPayment))
}

func TestCalculateSchedule_PaymentsSumToTotalPaid(t *testing.T) {
	schedule, err := CalculateSchedule(d("5432.10"), d("18.99"), d("150"), 0)
	require.NoError(t, err)

	paid := decimal.Zero
	principal := decimal.Zero
	for _, p := range schedule.Payments {
		assert.False(t, p.RemainingBalance.IsNegative())
		paid = paid.Add(p.TotalPayment)
		principal = principal.Add(p.PrincipalPaid)
	}
	assert.True(t, schedule.Details.TotalPaid.Equal(paid))
	assert.True(t, d("5432.10").Equal(principal))
	assert.Len(t, schedule.Payments, schedule.Details.TermMonths)
}

func TestCalculateLoanDetails_ZeroBalance(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		payment string
	}{
		{"zero rate zero payment", "0", "0"},
		{"high rate small payment", "29.99", "1"},
		{"max rate large payment", "100", "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := CalculateLoanDetails(decimal.Zero, d(tt.rate), d(tt.payment), 0)
			require.NoError(t, err)
			assert.Equal(t, 0, details.TermMonths)
			assert.True(t, details.TotalInterestPaid.IsZero())
		})
	}
}

func TestCalculateLoanDetails_InsufficientPayment(t *testing.T) {
	tests := []struct {
		name    string
		payment string
	}{
		{"payment below interest", "15"},
		{"payment equal to interest", "20"},
		{"zero payment", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 1000 * 0.02 = 20 interest in month one
			_, err := CalculateLoanDetails(d("1000"), d("24"), d(tt.payment), 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

			var insufficient *domain.InsufficientPaymentError
			require.ErrorAs(t, err, &insufficient)
			assert.True(t, d("20").Equal(insufficient.Interest))
		})
	}
}

func TestCalculateLoanDetails_ZeroRate(t *testing.T) {
	details, err := CalculateLoanDetails(d("1000"), decimal.Zero, d("100"), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, details.TermMonths)
	assert.True(t, details.TotalInterestPaid.IsZero())
	assert.True(t, d("1000").Equal(details.TotalPaid))
}

func TestCalculateLoanDetails_TermExceeded(t *testing.T) {
	// 1001 against 1000 of monthly interest barely moves the balance
	_, err := CalculateLoanDetails(d("100000"), d("12"), d("1001"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTermExceeded)

	var exceeded *domain.TermExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, domain.MaxTermMonths, exceeded.MaxMonths)
	assert.True(t, exceeded.RemainingBalance.IsPositive())
}

func TestCalculateLoanDetails_FixedTermSettlesResidual(t *testing.T) {
	payment, err := CalculateMonthlyPayment(d("10000"), d("10"), 50)
	require.NoError(t, err)
	assert.True(t, d("245.37").Equal(payment), "payment: %s", payment)

	details, err := CalculateLoanDetails(d("10000"), d("10"), payment, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, details.TermMonths)
	assert.True(t, d("2268.60").Equal(details.TotalInterestPaid), "interest: %s", details.TotalInterestPaid)
}

func TestCalculateLoanDetails_FixedTermTooShort(t *testing.T) {
	_, err := CalculateLoanDetails(d("10000"), d("10"), d("200"), 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTermExceeded)
}

func TestCalculateLoanDetails_Validation(t *testing.T) {
	_, err := CalculateLoanDetails(d("-1"), d("10"), d("100"), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = CalculateLoanDetails(d("100"), d("101"), d("100"), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = CalculateLoanDetails(d("100"), d("10"), d("100"), 601)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculateLoanDetails_Idempotent(t *testing.T) {
	first, err := CalculateLoanDetails(d("7500"), d("6.5"), d("220"), 0)
	require.NoError(t, err)
	second, err := CalculateLoanDetails(d("7500"), d("6.5"), d("220"), 0)
	require.NoError(t, err)

	assert.Equal(t, first.TermMonths, second.TermMonths)
	assert.True(t, first.TotalInterestPaid.Equal(second.TotalInterestPaid))
	assert.True(t, first.TotalPaid.Equal(second.TotalPaid))
}

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		months    int
		want      string
	}{
		{"standard annuity", "10000", "12", 12, "888.49"},
		{"zero rate divides evenly", "1000", "0", 4, "250"},
		{"zero rate rounds to the cent", "1000", "0", 3, "333.33"},
		{"zero principal", "0", "5", 12, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateMonthlyPayment(d(tt.principal), d(tt.rate), tt.months)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCalculateMonthlyPayment_InvalidTerm(t *testing.T) {
	_, err := CalculateMonthlyPayment(d("1000"), d("5"), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = CalculateMonthlyPayment(d("1000"), d("5"), 601)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculateRemainingTerm(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		payment string
		rate    string
		want    int
	}{
		{"zero rate exact", "1000", "100", "0", 10},
		{"zero rate rounds up", "1000", "300", "0", 4},
		{"with interest", "1000", "100", "12", 11},
		{"zero balance", "0", "100", "12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateRemainingTerm(d(tt.balance), d(tt.payment), d(tt.rate))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRemainingTerm_RejectsNonAmortizingPayment(t *testing.T) {
	_, err := CalculateRemainingTerm(d("1000"), d("20"), d("24"))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

	_, err = CalculateRemainingTerm(d("1000"), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}
