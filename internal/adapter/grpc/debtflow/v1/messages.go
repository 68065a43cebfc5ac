package debtflowv1

// Monetary amounts and rates are decimal strings. Amounts carry two decimal
// places; rates are annual percentages ("18.99" is 18.99% APR). Dates use
// YYYY-MM-DD.

// MonthlyPayment is one simulated month
type MonthlyPayment struct {
	Month            int32  `json:"month"`
	TotalPayment     string `json:"total_payment"`
	PrincipalPaid    string `json:"principal_paid"`
	InterestPaid     string `json:"interest_paid"`
	RemainingBalance string `json:"remaining_balance"`
}

// LoanDetails summarizes a single-loan amortization
type LoanDetails struct {
	Balance           string `json:"balance"`
	InterestRate      string `json:"interest_rate"`
	MonthlyPayment    string `json:"monthly_payment"`
	TermMonths        int32  `json:"term_months"`
	TotalInterestPaid string `json:"total_interest_paid"`
	TotalPaid         string `json:"total_paid"`
}

type CalculatePayoffRequest struct {
	Strategy            string   `json:"strategy"`
	ExtraMonthlyPayment string   `json:"extra_monthly_payment,omitempty"`
	DebtIDs             []string `json:"debt_ids,omitempty"`
}

type DebtPayoffSchedule struct {
	DebtID            string            `json:"debt_id"`
	DebtName          string            `json:"debt_name"`
	OriginalBalance   string            `json:"original_balance"`
	InterestRate      string            `json:"interest_rate"`
	MinimumPayment    string            `json:"minimum_payment"`
	TotalPaid         string            `json:"total_paid"`
	TotalInterestPaid string            `json:"total_interest_paid"`
	MonthsToPayoff    int32             `json:"months_to_payoff"`
	PayoffOrder       int32             `json:"payoff_order"`
	MonthlyPayments   []*MonthlyPayment `json:"monthly_payments"`
}

type PayoffSummary struct {
	TotalDebts           int32  `json:"total_debts"`
	TotalStartingBalance string `json:"total_starting_balance"`
	RecommendedStrategy  string `json:"recommended_strategy"`
	TotalInterestSaved   string `json:"total_interest_saved"`
	MonthsSaved          int32  `json:"months_saved"`
	BaselineAvailable    bool   `json:"baseline_available"`
}

type CalculatePayoffResponse struct {
	Strategy          string                `json:"strategy"`
	TotalMonths       int32                 `json:"total_months"`
	TotalInterestPaid string                `json:"total_interest_paid"`
	TotalPaid         string                `json:"total_paid"`
	MonthlyBreakdown  []*MonthlyPayment     `json:"monthly_breakdown"`
	PayoffSchedule    []*DebtPayoffSchedule `json:"payoff_schedule"`
	Summary           *PayoffSummary        `json:"summary"`
}

type CompareRefinancingRequest struct {
	DebtID          string `json:"debt_id"`
	NewInterestRate string `json:"new_interest_rate"`
	RefinancingFees string `json:"refinancing_fees,omitempty"`
	NewTermMonths   *int32 `json:"new_term_months,omitempty"`
}

type RefinanceComparison struct {
	MonthlyPaymentDifference string `json:"monthly_payment_difference"`
	TotalInterestSavings     string `json:"total_interest_savings"`
	TotalSavings             string `json:"total_savings"`
	IsWorthIt                bool   `json:"is_worth_it"`
}

type CompareRefinancingResponse struct {
	CurrentLoan    *LoanDetails         `json:"current_loan"`
	RefinancedLoan *LoanDetails         `json:"refinanced_loan"`
	Fees           string               `json:"fees"`
	Comparison     *RefinanceComparison `json:"comparison"`
	BreakEvenMonth *int32               `json:"break_even_month"`
	Recommendation string               `json:"recommendation"`
}

type PlanConsolidationRequest struct {
	DebtIDs                  []string `json:"debt_ids"`
	ConsolidatedInterestRate string   `json:"consolidated_interest_rate"`
	ConsolidatedTermMonths   int32    `json:"consolidated_term_months"`
	ConsolidationFees        string   `json:"consolidation_fees,omitempty"`
}

type ConsolidationDebt struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Balance        string `json:"balance"`
	InterestRate   string `json:"interest_rate"`
	MonthlyPayment string `json:"monthly_payment"`
}

type ConsolidatedLoan struct {
	TotalBalance      string `json:"total_balance"`
	InterestRate      string `json:"interest_rate"`
	MonthlyPayment    string `json:"monthly_payment"`
	TermMonths        int32  `json:"term_months"`
	TotalInterestPaid string `json:"total_interest_paid"`
	TotalPaid         string `json:"total_paid"`
	Fees              string `json:"fees"`
}

type ConsolidationComparison struct {
	CurrentTotalMonthlyPayment string `json:"current_total_monthly_payment"`
	ConsolidatedMonthlyPayment string `json:"consolidated_monthly_payment"`
	MonthlyPaymentDifference   string `json:"monthly_payment_difference"`
	CurrentTotalInterest       string `json:"current_total_interest"`
	ConsolidatedTotalInterest  string `json:"consolidated_total_interest"`
	TotalInterestSavings       string `json:"total_interest_savings"`
	IsWorthIt                  bool   `json:"is_worth_it"`
}

type PlanConsolidationResponse struct {
	CurrentDebts     []*ConsolidationDebt     `json:"current_debts"`
	ConsolidatedLoan *ConsolidatedLoan        `json:"consolidated_loan"`
	Comparison       *ConsolidationComparison `json:"comparison"`
	Outcome          string                   `json:"outcome"`
	Recommendation   string                   `json:"recommendation"`
}

type GetCreditUtilizationRequest struct{}

type CardUtilization struct {
	DebtID         string `json:"debt_id"`
	CardName       string `json:"card_name"`
	CreditLimit    string `json:"credit_limit"`
	CurrentBalance string `json:"current_balance"`
	Utilization    string `json:"utilization"`
	Band           string `json:"band"`
	Recommendation string `json:"recommendation"`
}

type MissingCreditLimit struct {
	DebtID   string `json:"debt_id"`
	CardName string `json:"card_name"`
}

type GetCreditUtilizationResponse struct {
	TotalCreditLimit      string                `json:"total_credit_limit"`
	TotalUsedCredit       string                `json:"total_used_credit"`
	UtilizationPercentage string                `json:"utilization_percentage"`
	Band                  string                `json:"band"`
	UtilizationByCard     []*CardUtilization    `json:"utilization_by_card"`
	CardsMissingLimit     []*MissingCreditLimit `json:"cards_missing_limit"`
	Recommendation        string                `json:"recommendation"`
	ImpactOnCreditScore   string                `json:"impact_on_credit_score"`
}

type AnalyzeExtraPaymentRequest struct {
	DebtID             string `json:"debt_id"`
	ExtraPaymentAmount string `json:"extra_payment_amount"`
	NumberOfPayments   *int32 `json:"number_of_payments,omitempty"`
	AsOf               string `json:"as_of,omitempty"`
}

type PaymentScenario struct {
	MonthlyPayment    string `json:"monthly_payment"`
	MonthsToPayoff    int32  `json:"months_to_payoff"`
	TotalInterestPaid string `json:"total_interest_paid"`
	TotalPaid         string `json:"total_paid"`
	PayoffDate        string `json:"payoff_date"`
}

type ExtraPaymentImpact struct {
	MonthsSaved      int32  `json:"months_saved"`
	InterestSaved    string `json:"interest_saved"`
	TotalSaved       string `json:"total_saved"`
	PercentageFaster string `json:"percentage_faster"`
	NewPayoffDate    string `json:"new_payoff_date"`
}

type AnalyzeExtraPaymentResponse struct {
	DebtID              string              `json:"debt_id"`
	DebtName            string              `json:"debt_name"`
	CurrentBalance      string              `json:"current_balance"`
	InterestRate        string              `json:"interest_rate"`
	Mode                string              `json:"mode"`
	ExtraPaymentAmount  string              `json:"extra_payment_amount"`
	WithoutExtraPayment *PaymentScenario    `json:"without_extra_payment"`
	WithExtraPayment    *PaymentScenario    `json:"with_extra_payment"`
	Impact              *ExtraPaymentImpact `json:"impact"`
	Recommendation      string              `json:"recommendation"`
}

type AnalyzeBulkExtraPaymentRequest struct {
	ExtraPaymentAmount string   `json:"extra_payment_amount"`
	DebtIDs            []string `json:"debt_ids,omitempty"`
	AsOf               string   `json:"as_of,omitempty"`
}

type AnalyzeBulkExtraPaymentResponse struct {
	TotalExtraPayment  string                         `json:"total_extra_payment"`
	TargetDebtID       string                         `json:"target_debt_id"`
	DebtsImpacted      int32                          `json:"debts_impacted"`
	DebtImpacts        []*AnalyzeExtraPaymentResponse `json:"debt_impacts"`
	TotalMonthsSaved   int32                          `json:"total_months_saved"`
	TotalInterestSaved string                         `json:"total_interest_saved"`
	Recommendation     string                         `json:"recommendation"`
}

type CalculateLoanDetailsRequest struct {
	Balance        string `json:"balance"`
	InterestRate   string `json:"interest_rate"`
	MonthlyPayment string `json:"monthly_payment"`
	TermMonths     int32  `json:"term_months,omitempty"`
}

type CalculateLoanDetailsResponse struct {
	Details  *LoanDetails      `json:"details"`
	Payments []*MonthlyPayment `json:"payments"`
}

type GetDebtStatisticsRequest struct{}

type DebtTypeBreakdown struct {
	Type                string `json:"type"`
	Count               int32  `json:"count"`
	TotalBalance        string `json:"total_balance"`
	TotalMinimumPayment string `json:"total_minimum_payment"`
}

type GetDebtStatisticsResponse struct {
	TotalDebts          int32                `json:"total_debts"`
	TotalDebt           string               `json:"total_debt"`
	TotalMinimumPayment string               `json:"total_minimum_payment"`
	AverageInterestRate string               `json:"average_interest_rate"`
	HighestInterestRate string               `json:"highest_interest_rate"`
	DebtByType          []*DebtTypeBreakdown `json:"debt_by_type"`
}

type UpdateCreditLimitRequest struct {
	DebtID      string `json:"debt_id"`
	CreditLimit string `json:"credit_limit"`
}

// Debt is a stored debt record. CreditLimit is empty when no limit is set.
type Debt struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	OriginalAmount string `json:"original_amount"`
	CurrentBalance string `json:"current_balance"`
	InterestRate   string `json:"interest_rate"`
	MinimumPayment string `json:"minimum_payment"`
	PaymentDueDate int32  `json:"payment_due_date"`
	CreditLimit    string `json:"credit_limit,omitempty"`
	CreditorName   string `json:"creditor_name,omitempty"`
	IsActive       bool   `json:"is_active"`
	StartDate      string `json:"start_date"`
}

type UpdateCreditLimitResponse struct {
	Debt *Debt `json:"debt"`
}
