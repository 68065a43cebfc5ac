package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

const debtColumns = `id, name, debt_type, original_amount, current_balance, interest_rate,
	minimum_payment, payment_due_date, credit_limit, creditor_name, is_active, start_date, created_at`

// debtRepository implements domain.DebtRepository
type debtRepository struct {
	db *DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *DB) domain.DebtRepository {
	return &debtRepository{db: db}
}

// GetByID retrieves a debt by its ID
func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE id = $1
	`

	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "debt", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get debt by ID: %w", err)
	}
	return debt, nil
}

// ListActive retrieves all active debts, oldest first
func (r *debtRepository) ListActive(ctx context.Context) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE is_active = TRUE
		ORDER BY created_at, id
	`
	return r.list(ctx, query)
}

// ListByIDs retrieves the debts with the given IDs, oldest first
func (r *debtRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Debt, error) {
	if len(ids) == 0 {
		return []domain.Debt{}, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE id = ANY($1::uuid[])
		ORDER BY created_at, id
	`
	debts, err := r.list(ctx, query, pq.Array(idStrings))
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureAllFound(ids, debts); err != nil {
		return nil, err
	}
	return debts, nil
}

func (r *debtRepository) list(ctx context.Context, query string, args ...any) ([]domain.Debt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	debts := []domain.Debt{}
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, *debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}

// Create validates and stores a new debt, assigning an ID and creation time when missing
func (r *debtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if err := domain.PrepareForInsert(debt, time.Now()); err != nil {
		return err
	}

	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	var creditLimit interface{}
	if debt.CreditLimit.Valid {
		creditLimit = debt.CreditLimit.Decimal.String()
	}

	_, err := r.db.ExecContext(ctx, query,
		debt.ID,
		debt.Name,
		string(debt.Type),
		debt.OriginalAmount.String(),
		debt.CurrentBalance.String(),
		debt.InterestRate.String(),
		debt.MinimumPayment.String(),
		debt.PaymentDueDate,
		creditLimit,
		debt.CreditorName,
		debt.IsActive,
		debt.StartDate,
		debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}

	return nil
}

// UpdateCreditLimit sets the explicit credit limit of a debt
func (r *debtRepository) UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error {
	query := `
		UPDATE debts
		SET credit_limit = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, limit.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update credit limit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "debt", ID: id.String()}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDebt(row rowScanner) (*domain.Debt, error) {
	var debt domain.Debt
	var debtType string
	var originalStr, balanceStr, rateStr, minimumStr string
	var creditLimit sql.NullString

	err := row.Scan(
		&debt.ID,
		&debt.Name,
		&debtType,
		&originalStr,
		&balanceStr,
		&rateStr,
		&minimumStr,
		&debt.PaymentDueDate,
		&creditLimit,
		&debt.CreditorName,
		&debt.IsActive,
		&debt.StartDate,
		&debt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	debt.Type = domain.DebtType(debtType)

	// Parse NUMERIC columns
	if debt.OriginalAmount, err = decimal.NewFromString(originalStr); err != nil {
		return nil, fmt.Errorf("failed to parse original_amount: %w", err)
	}
	if debt.CurrentBalance, err = decimal.NewFromString(balanceStr); err != nil {
		return nil, fmt.Errorf("failed to parse current_balance: %w", err)
	}
	if debt.InterestRate, err = decimal.NewFromString(rateStr); err != nil {
		return nil, fmt.Errorf("failed to parse interest_rate: %w", err)
	}
	if debt.MinimumPayment, err = decimal.NewFromString(minimumStr); err != nil {
		return nil, fmt.Errorf("failed to parse minimum_payment: %w", err)
	}

	// Parse credit_limit (nullable)
	if creditLimit.Valid {
		limit, err := decimal.NewFromString(creditLimit.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credit_limit: %w", err)
		}
		debt.CreditLimit = decimal.NewNullDecimal(limit)
	}

	return &debt, nil
}
