package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/service"
)

func TestRateFloorForScore(t *testing.T) {
	cases := []struct {
		score    int
		floor    float64
		hasFloor bool
	}{
		{100, 0, false},
		{51, 0, false},
		{50, 12.0, true},
		{31, 12.0, true},
		{30, 16.0, true},
		{11, 16.0, true},
		{10, 0, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		floor, ok := service.RateFloorForScore(tc.score)
		assert.Equal(t, tc.hasFloor, ok, "score %d", tc.score)
		if tc.hasFloor {
			assert.True(t, floor.Equal(decimal.NewFromFloat(tc.floor)),
				"score %d: floor = %s", tc.score, floor)
		}
	}
}

func TestEffectiveRate(t *testing.T) {
	t.Run("raises a low requested rate to the tier floor", func(t *testing.T) {
		got := service.EffectiveRate(decimal.NewFromFloat(10.5), 40)
		assert.True(t, got.Equal(decimal.NewFromFloat(12.0)), "rate = %s", got)

		got = service.EffectiveRate(decimal.NewFromFloat(10.5), 20)
		assert.True(t, got.Equal(decimal.NewFromFloat(16.0)), "rate = %s", got)
	})

	t.Run("keeps a requested rate already above the floor", func(t *testing.T) {
		got := service.EffectiveRate(decimal.NewFromFloat(18.0), 20)
		assert.True(t, got.Equal(decimal.NewFromFloat(18.0)), "rate = %s", got)
	})

	t.Run("keeps the requested rate for high scores", func(t *testing.T) {
		got := service.EffectiveRate(decimal.NewFromFloat(8.5), 80)
		assert.True(t, got.Equal(decimal.NewFromFloat(8.5)), "rate = %s", got)
	})
}
