package service

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Interest rate correction policy
// ---------------------------------------------------------------------------

// Score tier boundaries. Above the top tier the requested rate stands; at or
// below the reject threshold no rate makes the loan approvable.
const (
	noCorrectionAboveScore = 50
	midTierAboveScore      = 30
	RejectAtOrBelowScore   = 10
)

var (
	midTierFloor = decimal.NewFromFloat(12.0)
	lowTierFloor = decimal.NewFromFloat(16.0)
)

// RateFloorForScore returns the minimum annual interest rate for the given
// credit score and whether a floor applies. Scores above 50 need no
// correction; scores at or below 10 have no usable floor because the loan is
// rejected outright.
func RateFloorForScore(score int) (decimal.Decimal, bool) {
	switch {
	case score > noCorrectionAboveScore:
		return decimal.Zero, false
	case score > midTierAboveScore:
		return midTierFloor, true
	case score > RejectAtOrBelowScore:
		return lowTierFloor, true
	default:
		return decimal.Zero, false
	}
}

// EffectiveRate applies the score tier's floor to the requested rate:
// max(requested, floor) when a floor applies, the requested rate otherwise.
func EffectiveRate(requested decimal.Decimal, score int) decimal.Decimal {
	floor, ok := RateFloorForScore(score)
	if !ok || requested.GreaterThanOrEqual(floor) {
		return requested
	}
	return floor
}
