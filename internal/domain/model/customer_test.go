package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates a customer with a derived approved limit", func(t *testing.T) {
		c, err := model.NewCustomer("Aarav", "Sharma", 30, "9876543210", decimal.NewFromInt(50000))

		require.NoError(t, err)
		assert.Equal(t, "Aarav Sharma", c.FullName())
		assert.True(t, c.ApprovedLimit().Equal(decimal.NewFromInt(1800000)),
			"approved limit = %s", c.ApprovedLimit())
		assert.True(t, c.CurrentDebt().IsZero())
	})

	t.Run("validates fields", func(t *testing.T) {
		cases := []struct {
			name      string
			firstName string
			lastName  string
			age       int
			phone     string
			salary    decimal.Decimal
		}{
			{"empty first name", "", "Sharma", 30, "9876543210", decimal.NewFromInt(50000)},
			{"empty last name", "Aarav", "", 30, "9876543210", decimal.NewFromInt(50000)},
			{"underage", "Aarav", "Sharma", 17, "9876543210", decimal.NewFromInt(50000)},
			{"over the age cap", "Aarav", "Sharma", 101, "9876543210", decimal.NewFromInt(50000)},
			{"empty phone", "Aarav", "Sharma", 30, "", decimal.NewFromInt(50000)},
			{"zero salary", "Aarav", "Sharma", 30, "9876543210", decimal.Zero},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewCustomer(tc.firstName, tc.lastName, tc.age, tc.phone, tc.salary)
				assert.Error(t, err)
			})
		}
	})
}

func TestDeriveApprovedLimit(t *testing.T) {
	cases := []struct {
		salary int64
		limit  int64
	}{
		{50000, 1800000}, // 18.0 lakh exactly
		{51000, 1800000}, // 18.36 rounds down
		{53000, 1900000}, // 19.08 rounds down to 19
		{12500, 400000},  // 4.5 rounds to the even 4
		{37500, 1400000}, // 13.5 rounds to the even 14
		{1000, 0},        // 0.36 rounds to zero
	}
	for _, tc := range cases {
		got := model.DeriveApprovedLimit(decimal.NewFromInt(tc.salary))
		assert.True(t, got.Equal(decimal.NewFromInt(tc.limit)),
			"salary %d: limit = %s, want %d", tc.salary, got, tc.limit)
	}
}

func TestCustomer_WithDebtAdded(t *testing.T) {
	c, err := model.NewCustomer("Aarav", "Sharma", 30, "9876543210", decimal.NewFromInt(50000))
	require.NoError(t, err)

	t.Run("adds to current debt without mutating the receiver", func(t *testing.T) {
		next, err := c.WithDebtAdded(decimal.NewFromInt(100000))

		require.NoError(t, err)
		assert.True(t, next.CurrentDebt().Equal(decimal.NewFromInt(100000)))
		assert.True(t, c.CurrentDebt().IsZero())
	})

	t.Run("rejects non-positive increments", func(t *testing.T) {
		_, err := c.WithDebtAdded(decimal.Zero)
		assert.Error(t, err)
	})
}
