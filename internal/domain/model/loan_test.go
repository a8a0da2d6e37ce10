package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

func newTestLoan(t *testing.T, tenure int, start time.Time) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(1,
		decimal.NewFromInt(100000), decimal.NewFromFloat(12.0),
		tenure, decimal.NewFromFloat(8884.88), start)
	require.NoError(t, err)
	return loan
}

func TestNewLoan(t *testing.T) {
	t.Run("ends exactly tenure months after the start", func(t *testing.T) {
		start := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
		loan := newTestLoan(t, 12, start)

		assert.Equal(t, time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC), loan.EndDate())
		assert.Equal(t, 0, loan.EMIsPaidOnTime())
		assert.Zero(t, loan.ID())
	})

	t.Run("validates terms", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := model.NewLoan(0, decimal.NewFromInt(1000), decimal.NewFromFloat(12.0), 12, decimal.NewFromInt(90), now)
		assert.Error(t, err, "missing customer")

		_, err = model.NewLoan(1, decimal.Zero, decimal.NewFromFloat(12.0), 12, decimal.NewFromInt(90), now)
		assert.Error(t, err, "zero amount")

		_, err = model.NewLoan(1, decimal.NewFromInt(1000), decimal.NewFromFloat(-1), 12, decimal.NewFromInt(90), now)
		assert.Error(t, err, "negative rate")

		_, err = model.NewLoan(1, decimal.NewFromInt(1000), decimal.NewFromFloat(12.0), 0, decimal.NewFromInt(90), now)
		assert.Error(t, err, "tenure below minimum")

		_, err = model.NewLoan(1, decimal.NewFromInt(1000), decimal.NewFromFloat(12.0), 361, decimal.NewFromInt(90), now)
		assert.Error(t, err, "tenure above maximum")
	})
}

func TestLoan_IsActive(t *testing.T) {
	start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	loan := newTestLoan(t, 12, start) // ends 2026-01-10

	assert.True(t, loan.IsActive(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	// A loan ending today still counts as active.
	assert.True(t, loan.IsActive(time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)))
	assert.False(t, loan.IsActive(time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)))
}

func TestLoan_RepaymentsLeft(t *testing.T) {
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	loan := newTestLoan(t, 12, start)

	assert.Equal(t, 12, loan.RepaymentsLeft(time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, loan.RepaymentsLeft(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	// Never negative, however long ago the loan ended.
	assert.Equal(t, 0, loan.RepaymentsLeft(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLoan_RecordEMIPayment(t *testing.T) {
	loan := newTestLoan(t, 2, time.Now().UTC())

	loan, err := loan.RecordEMIPayment()
	require.NoError(t, err)
	assert.Equal(t, 1, loan.EMIsPaidOnTime())

	loan, err = loan.RecordEMIPayment()
	require.NoError(t, err)
	assert.Equal(t, 2, loan.EMIsPaidOnTime())

	_, err = loan.RecordEMIPayment()
	assert.Error(t, err, "counter capped at the tenure")
}
