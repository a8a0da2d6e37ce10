package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var monthsPerYearTimes100 = decimal.NewFromInt(1200)

// CalculateMonthlyInstallment computes the equated monthly installment for a
// principal borrowed at the given annual percentage rate over the given
// number of months.
//
// The calculation uses:
//
//	monthlyRate = annualRate / 1200
//	emi         = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to a straight-line split P / n. The result is
// rounded to 2 decimal places, half away from zero.
func CalculateMonthlyInstallment(principal, annualRate decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	if tenureMonths < 1 {
		return decimal.Zero, fmt.Errorf("%w: tenure must be at least one month", ErrInvalidInput)
	}

	monthlyRate := annualRate.Div(monthsPerYearTimes100)
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).Round(2), nil
	}

	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(tenureMonths)))
	emi := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
	return emi.Round(2), nil
}
