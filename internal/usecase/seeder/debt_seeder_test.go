package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/debtflow-backend/internal/domain"
)

// MockDebtRepository is a mock implementation of DebtRepository
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListActive(ctx context.Context) ([]domain.Debt, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Debt, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error {
	args := m.Called(ctx, id, limit)
	return args.Error(0)
}

func seedDebt(name string) domain.Debt {
	return domain.Debt{
		ID:             uuid.New(),
		Name:           name,
		Type:           domain.DebtTypeCreditCard,
		CurrentBalance: decimal.NewFromInt(800),
		InterestRate:   decimal.NewFromInt(19),
		MinimumPayment: decimal.NewFromInt(30),
		PaymentDueDate: 5,
		IsActive:       true,
	}
}

func notFound(id uuid.UUID) error {
	return &domain.NotFoundError{Entity: "debt", ID: id.String()}
}

func TestDebtSeeder_Seed_CreatesMissingDebts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDebtRepository)
	seeder := NewDebtSeeder(mockRepo)

	existing := seedDebt("Visa")
	missing := seedDebt("Store Card")

	mockRepo.On("GetByID", ctx, existing.ID).Return(&existing, nil)
	mockRepo.On("GetByID", ctx, missing.ID).Return(nil, notFound(missing.ID))
	mockRepo.On("Create", ctx, mock.MatchedBy(func(debt *domain.Debt) bool {
		return debt.ID == missing.ID && debt.Name == "Store Card"
	})).Return(nil).Once()

	created, err := seeder.Seed(ctx, []domain.Debt{existing, missing})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	mockRepo.AssertExpectations(t)
}

func TestDebtSeeder_Seed_AllPresent(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDebtRepository)
	seeder := NewDebtSeeder(mockRepo)

	debt := seedDebt("Visa")
	mockRepo.On("GetByID", ctx, debt.ID).Return(&debt, nil)

	created, err := seeder.Seed(ctx, []domain.Debt{debt})
	require.NoError(t, err)
	assert.Zero(t, created)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDebtSeeder_Seed_RequiresIDs(t *testing.T) {
	mockRepo := new(MockDebtRepository)
	seeder := NewDebtSeeder(mockRepo)

	anonymous := seedDebt("Anonymous")
	anonymous.ID = uuid.Nil

	_, err := seeder.Seed(context.Background(), []domain.Debt{seedDebt("Visa"), anonymous})
	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDebtSeeder_Seed_LookupFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDebtRepository)
	seeder := NewDebtSeeder(mockRepo)

	debt := seedDebt("Visa")
	mockRepo.On("GetByID", ctx, debt.ID).Return(nil, errors.New("connection reset"))

	_, err := seeder.Seed(ctx, []domain.Debt{debt})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDebtSeeder_Seed_CreateFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockDebtRepository)
	seeder := NewDebtSeeder(mockRepo)

	first, second := seedDebt("Visa"), seedDebt("Amex")
	mockRepo.On("GetByID", ctx, first.ID).Return(nil, notFound(first.ID))
	mockRepo.On("Create", ctx, mock.Anything).Return(domain.NewValidationError("name", "boom")).Once()

	created, err := seeder.Seed(ctx, []domain.Debt{first, second})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, created)
	mockRepo.AssertNotCalled(t, "GetByID", ctx, second.ID)
}
