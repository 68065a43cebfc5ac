package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAllFound(t *testing.T) {
	a := validDebt()
	b := validDebt()
	missing := uuid.New()

	assert.NoError(t, EnsureAllFound([]uuid.UUID{a.ID, b.ID}, []Debt{b, a}))
	assert.NoError(t, EnsureAllFound(nil, nil))

	err := EnsureAllFound([]uuid.UUID{a.ID, missing, uuid.New()}, []Debt{a})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "debt "+missing.String()+" not found", err.Error())
}

func TestPrepareForInsert(t *testing.T) {
	now := time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC)

	t.Run("fills missing fields", func(t *testing.T) {
		debt := validDebt()
		debt.ID = uuid.Nil

		require.NoError(t, PrepareForInsert(&debt, now))
		assert.NotEqual(t, uuid.Nil, debt.ID)
		assert.Equal(t, now, debt.CreatedAt)
		assert.Equal(t, now, debt.StartDate)
	})

	t.Run("keeps provided fields", func(t *testing.T) {
		debt := validDebt()
		id := debt.ID
		created := now.Add(-time.Hour)
		start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		debt.CreatedAt = created
		debt.StartDate = start

		require.NoError(t, PrepareForInsert(&debt, now))
		assert.Equal(t, id, debt.ID)
		assert.Equal(t, created, debt.CreatedAt)
		assert.Equal(t, start, debt.StartDate)
	})

	t.Run("rejects invalid debts untouched", func(t *testing.T) {
		debt := validDebt()
		debt.ID = uuid.Nil
		debt.Name = ""

		assert.ErrorIs(t, PrepareForInsert(&debt, now), ErrValidation)
		assert.Equal(t, uuid.Nil, debt.ID)
	})
}
