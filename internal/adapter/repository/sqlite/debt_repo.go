package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// timestampLayout keeps created_at sortable as text
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

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
	query := `SELECT ` + debtColumns + ` FROM debts WHERE id = ?`

	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id.String()))
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
	query := `SELECT ` + debtColumns + ` FROM debts WHERE is_active = 1 ORDER BY created_at, id`
	return r.list(ctx, query)
}

// ListByIDs retrieves the debts with the given IDs, oldest first
func (r *debtRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Debt, error) {
	if len(ids) == 0 {
		return []domain.Debt{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id.String()
	}
	query := `SELECT ` + debtColumns + ` FROM debts WHERE id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY created_at, id`

	debts, err := r.list(ctx, query, args...)
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

	query := `INSERT INTO debts (` + debtColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var creditLimit any
	if debt.CreditLimit.Valid {
		creditLimit = debt.CreditLimit.Decimal.String()
	}

	_, err := r.db.ExecContext(ctx, query,
		debt.ID.String(),
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
		debt.StartDate.Format(time.DateOnly),
		debt.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// UpdateCreditLimit sets the explicit credit limit of a debt
func (r *debtRepository) UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error {
	result, err := r.db.ExecContext(ctx, `UPDATE debts SET credit_limit = ? WHERE id = ?`, limit.String(), id.String())
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
	Scan(dest ...any) error
}

func scanDebt(row rowScanner) (*domain.Debt, error) {
	var debt domain.Debt
	var id, debtType, startDate, createdAt string
	var original, balance, rate, minimum string
	var creditLimit sql.NullString

	err := row.Scan(
		&id,
		&debt.Name,
		&debtType,
		&original,
		&balance,
		&rate,
		&minimum,
		&debt.PaymentDueDate,
		&creditLimit,
		&debt.CreditorName,
		&debt.IsActive,
		&startDate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if debt.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("failed to parse id: %w", err)
	}
	debt.Type = domain.DebtType(debtType)

	amounts := []struct {
		column string
		raw    string
		dst    *decimal.Decimal
	}{
		{"original_amount", original, &debt.OriginalAmount},
		{"current_balance", balance, &debt.CurrentBalance},
		{"interest_rate", rate, &debt.InterestRate},
		{"minimum_payment", minimum, &debt.MinimumPayment},
	}
	for _, a := range amounts {
		value, err := decimal.NewFromString(a.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", a.column, err)
		}
		*a.dst = value
	}

	// Parse credit_limit (nullable)
	if creditLimit.Valid {
		limit, err := decimal.NewFromString(creditLimit.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credit_limit: %w", err)
		}
		debt.CreditLimit = decimal.NewNullDecimal(limit)
	}

	if debt.StartDate, err = time.Parse(time.DateOnly, startDate); err != nil {
		return nil, fmt.Errorf("failed to parse start_date: %w", err)
	}
	if debt.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &debt, nil
}
