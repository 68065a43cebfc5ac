// Package utilization reports how much of their credit limits a portfolio's cards use.
package utilization

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// Band classifies a utilization percentage
type Band string

const (
	BandHigh      Band = "HIGH"      // above 30%
	BandModerate  Band = "MODERATE"  // above 10%, up to 30%
	BandExcellent Band = "EXCELLENT" // 10% or less
)

// PercentPlaces is the precision utilization percentages are reported at
const PercentPlaces = 2

var (
	hundred       = decimal.NewFromInt(100)
	highThreshold = decimal.NewFromInt(30)
	moderateFloor = decimal.NewFromInt(10)
)

// CardUtilization is the utilization of a single card
type CardUtilization struct {
	DebtID         uuid.UUID
	CardName       string
	CreditLimit    decimal.Decimal
	CurrentBalance decimal.Decimal
	Utilization    decimal.Decimal // percent
	Band           Band
	Recommendation string
}

// MissingLimit names a card that was left out for lack of a usable credit limit
type MissingLimit struct {
	DebtID   uuid.UUID
	CardName string
}

// Result is the outcome of CalculateCreditUtilization
type Result struct {
	TotalCreditLimit      decimal.Decimal
	TotalUsedCredit       decimal.Decimal
	UtilizationPercentage decimal.Decimal
	Band                  Band
	UtilizationByCard     []CardUtilization
	CardsMissingLimit     []MissingLimit
	Recommendation        string
	ImpactOnCreditScore   string
}

// Classify maps a utilization percentage to its band
func Classify(percent decimal.Decimal) Band {
	switch {
	case percent.GreaterThan(highThreshold):
		return BandHigh
	case percent.GreaterThan(moderateFloor):
		return BandModerate
	default:
		return BandExcellent
	}
}

// CalculateCreditUtilization aggregates balance against credit limit across the
// active credit cards in debts. Only cards with a positive explicit limit count;
// the others are listed in CardsMissingLimit.
func CalculateCreditUtilization(debts []domain.Debt) (*Result, error) {
	result := &Result{
		TotalCreditLimit: decimal.Zero,
		TotalUsedCredit:  decimal.Zero,
	}

	cards := 0
	for _, debt := range debts {
		if !debt.IsActive || debt.Type != domain.DebtTypeCreditCard {
			continue
		}
		cards++

		if !debt.CreditLimit.Valid || !debt.CreditLimit.Decimal.IsPositive() {
			result.CardsMissingLimit = append(result.CardsMissingLimit, MissingLimit{DebtID: debt.ID, CardName: debt.Name})
			continue
		}
		if err := domain.ValidateAmount("current_balance", debt.CurrentBalance); err != nil {
			return nil, err
		}

		limit := debt.CreditLimit.Decimal
		percent := percentOf(debt.CurrentBalance, limit)
		band := Classify(percent)

		result.UtilizationByCard = append(result.UtilizationByCard, CardUtilization{
			DebtID:         debt.ID,
			CardName:       debt.Name,
			CreditLimit:    limit,
			CurrentBalance: debt.CurrentBalance,
			Utilization:    percent,
			Band:           band,
			Recommendation: cardRecommendation(band, percent),
		})
		result.TotalCreditLimit = result.TotalCreditLimit.Add(limit)
		result.TotalUsedCredit = result.TotalUsedCredit.Add(debt.CurrentBalance)
	}

	if cards == 0 {
		return nil, domain.NewValidationError("", "no credit cards found")
	}
	if len(result.UtilizationByCard) == 0 {
		return nil, domain.NewValidationError("credit_limit", "no credit card has a credit limit set")
	}

	result.UtilizationPercentage = percentOf(result.TotalUsedCredit, result.TotalCreditLimit)
	result.Band = Classify(result.UtilizationPercentage)
	result.Recommendation, result.ImpactOnCreditScore = overallRecommendation(result.Band, result.UtilizationPercentage)
	return result, nil
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(hundred).Round(PercentPlaces)
}

func cardRecommendation(band Band, percent decimal.Decimal) string {
	p := percent.StringFixed(1)
	switch band {
	case BandHigh:
		return fmt.Sprintf("High utilization (%s%%). Pay down to below 30%% to improve credit score.", p)
	case BandModerate:
		return fmt.Sprintf("Moderate utilization (%s%%). Consider paying down for optimal credit score.", p)
	default:
		return fmt.Sprintf("Excellent utilization (%s%%)!", p)
	}
}

func overallRecommendation(band Band, percent decimal.Decimal) (recommendation, impact string) {
	p := percent.StringFixed(1)
	switch band {
	case BandHigh:
		return fmt.Sprintf("Your overall credit utilization is %s%%, which is considered high. Aim to keep it below 30%% to improve your credit score.", p),
			"Negative impact - likely reducing your credit score"
	case BandModerate:
		return fmt.Sprintf("Your overall credit utilization is %s%%, which is moderate. For optimal credit score, try to keep it below 10%%.", p),
			"Moderate impact - some effect on credit score"
	default:
		return fmt.Sprintf("Excellent! Your credit utilization is %s%%, which is optimal for your credit score.", p),
			"Positive impact - helping your credit score"
	}
}
