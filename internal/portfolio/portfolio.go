// Package portfolio decodes debt portfolios written as TOML.
//
//	[[debt]]
//	id = "6f1c2c1e-1f5e-4e55-9a59-0a5b1e0f6d21"
//	name = "Visa"
//	type = "CREDIT_CARD"
//	balance = "2500.00"
//	interest_rate = "18.99"
//	minimum_payment = "75"
//	credit_limit = "5000"
//
// Amounts are best written as strings to keep them exact.
package portfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/debtflow-backend/internal/domain"
)

// File is the TOML layout of a portfolio
type File struct {
	Debts []Entry `toml:"debt"`
}

// Entry is one [[debt]] table
type Entry struct {
	ID             string           `toml:"id"`
	Name           string           `toml:"name"`
	Type           string           `toml:"type"`
	Balance        decimal.Decimal  `toml:"balance"`
	OriginalAmount *decimal.Decimal `toml:"original_amount"`
	InterestRate   decimal.Decimal  `toml:"interest_rate"`
	MinimumPayment decimal.Decimal  `toml:"minimum_payment"`
	PaymentDueDate int              `toml:"payment_due_date"`
	CreditLimit    *decimal.Decimal `toml:"credit_limit"`
	Creditor       string           `toml:"creditor"`
	Active         *bool            `toml:"active"`
	StartDate      time.Time        `toml:"start_date"`
}

// DecodeFile reads the debts of the portfolio at path
func DecodeFile(path string) ([]domain.Debt, error) {
	var file File
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio %s: %w", path, err)
	}
	return file.debts(md)
}

// Decode reads the debts of a portfolio held in a string
func Decode(data string) ([]domain.Debt, error) {
	var file File
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	return file.debts(md)
}

// debts converts the entries in file order. Names must be unique ignoring case.
func (f File) debts(md toml.MetaData) ([]domain.Debt, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown portfolio key %q", undecoded[0].String())
	}

	seen := make(map[string]bool, len(f.Debts))
	debts := make([]domain.Debt, 0, len(f.Debts))
	for i, entry := range f.Debts {
		debt, err := entry.Debt()
		if err != nil {
			return nil, fmt.Errorf("debt #%d: %w", i+1, err)
		}

		key := strings.ToLower(debt.Name)
		if seen[key] {
			return nil, fmt.Errorf("debt #%d: duplicate name %q", i+1, debt.Name)
		}
		seen[key] = true
		debts = append(debts, debt)
	}
	return debts, nil
}

// Debt converts the entry, filling defaults: type OTHER, due on the 1st,
// active, and an original amount equal to the balance
func (e Entry) Debt() (domain.Debt, error) {
	debt := domain.Debt{
		Name:           e.Name,
		Type:           domain.DebtType(strings.ToUpper(e.Type)),
		OriginalAmount: e.Balance,
		CurrentBalance: e.Balance,
		InterestRate:   e.InterestRate,
		MinimumPayment: e.MinimumPayment,
		PaymentDueDate: e.PaymentDueDate,
		CreditorName:   e.Creditor,
		IsActive:       true,
		StartDate:      e.StartDate,
	}

	if e.ID != "" {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return domain.Debt{}, fmt.Errorf("invalid id: %w", err)
		}
		debt.ID = id
	}
	if e.Type == "" {
		debt.Type = domain.DebtTypeOther
	}
	if e.OriginalAmount != nil {
		debt.OriginalAmount = *e.OriginalAmount
	}
	if e.PaymentDueDate == 0 {
		debt.PaymentDueDate = 1
	}
	if e.CreditLimit != nil {
		debt.CreditLimit = decimal.NewNullDecimal(*e.CreditLimit)
	}
	if e.Active != nil {
		debt.IsActive = *e.Active
	}
	return debt, nil
}
