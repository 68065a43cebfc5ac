package utilization

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

func card(name, balance, limit string) domain.Debt {
	debt := domain.Debt{
		ID:             uuid.New(),
		Name:           name,
		Type:           domain.DebtTypeCreditCard,
		CurrentBalance: d(balance),
		InterestRate:   d("22.99"),
		MinimumPayment: d("35"),
		PaymentDueDate: 5,
		IsActive:       true,
	}
	if limit != "" {
		debt.CreditLimit = decimal.NewNullDecimal(d(limit))
	}
	return debt
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percent string
		want    Band
	}{
		{"0", BandExcellent},
		{"9.99", BandExcellent},
		{"10", BandExcellent},
		{"10.01", BandModerate},
		{"30", BandModerate},
		{"30.01", BandHigh},
		{"150", BandHigh},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(d(tt.percent)))
		})
	}
}

func TestCalculateCreditUtilization(t *testing.T) {
	loan := domain.Debt{
		ID:             uuid.New(),
		Name:           "Car",
		Type:           domain.DebtTypeLoan,
		CurrentBalance: d("9000"),
		InterestRate:   d("6"),
		MinimumPayment: d("250"),
		IsActive:       true,
	}
	closed := card("Old Card", "900", "1000")
	closed.IsActive = false

	debts := []domain.Debt{
		card("Visa", "2500", "5000"),
		card("Amex", "200", "4000"),
		card("Store", "300", "1000"),
		card("No Limit", "700", ""),
		card("Zero Limit", "100", "0"),
		loan,
		closed,
	}

	result, err := CalculateCreditUtilization(debts)
	require.NoError(t, err)

	require.Len(t, result.UtilizationByCard, 3)
	visa, amex, store := result.UtilizationByCard[0], result.UtilizationByCard[1], result.UtilizationByCard[2]

	assert.True(t, d("50").Equal(visa.Utilization))
	assert.Equal(t, BandHigh, visa.Band)
	assert.Equal(t, "High utilization (50.0%). Pay down to below 30% to improve credit score.", visa.Recommendation)

	assert.True(t, d("5").Equal(amex.Utilization))
	assert.Equal(t, BandExcellent, amex.Band)
	assert.Equal(t, "Excellent utilization (5.0%)!", amex.Recommendation)

	assert.True(t, d("30").Equal(store.Utilization))
	assert.Equal(t, BandModerate, store.Band)

	require.Len(t, result.CardsMissingLimit, 2)
	assert.Equal(t, "No Limit", result.CardsMissingLimit[0].CardName)
	assert.Equal(t, "Zero Limit", result.CardsMissingLimit[1].CardName)

	// 3000 of 10000
	assert.True(t, d("10000").Equal(result.TotalCreditLimit))
	assert.True(t, d("3000").Equal(result.TotalUsedCredit))
	assert.True(t, d("30").Equal(result.UtilizationPercentage))
	assert.Equal(t, BandModerate, result.Band)
	assert.Equal(t, "Your overall credit utilization is 30.0%, which is moderate. For optimal credit score, try to keep it below 10%.", result.Recommendation)
	assert.Equal(t, "Moderate impact - some effect on credit score", result.ImpactOnCreditScore)
}

func TestCalculateCreditUtilization_RoundsPercent(t *testing.T) {
	result, err := CalculateCreditUtilization([]domain.Debt{card("Visa", "1000", "3000")})
	require.NoError(t, err)

	assert.True(t, d("33.33").Equal(result.UtilizationPercentage))
	assert.Equal(t, BandHigh, result.Band)
	assert.Equal(t, "Negative impact - likely reducing your credit score", result.ImpactOnCreditScore)
}

func TestCalculateCreditUtilization_Errors(t *testing.T) {
	loan := card("Loan", "100", "")
	loan.Type = domain.DebtTypeLoan

	tests := []struct {
		name  string
		debts []domain.Debt
	}{
		{"empty portfolio", nil},
		{"no credit cards", []domain.Debt{loan}},
		{"no card has a limit", []domain.Debt{card("Visa", "100", ""), card("Store", "50", "0")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateCreditUtilization(tt.debts)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
