package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// ScoreCalculator – credit score from loan repayment history
// ---------------------------------------------------------------------------

const neutralScore = 50

// Sub-score weights. On-time repayment dominates; loan count, current-year
// activity and approved volume share the rest equally.
const (
	weightOnTime      = 0.4
	weightLoanCount   = 0.2
	weightCurrentYear = 0.2
	weightVolume      = 0.2
)

// ScoreCalculator computes a 0-100 credit score over a customer's full loan
// history. It is a pure query: callers load the customer and loans first, so
// a missing customer never reaches the scorer.
type ScoreCalculator struct{}

// NewScoreCalculator returns a new calculator instance.
func NewScoreCalculator() *ScoreCalculator {
	return &ScoreCalculator{}
}

// Score returns the customer's credit score in [0, 100].
//
// A customer with no loan history scores the neutral 50. Otherwise four
// weighted sub-scores are combined and the sum truncated to an integer.
// When the monthly repayments of currently-active loans exceed the approved
// limit the score is forced to 0 regardless of the weighted components.
func (s *ScoreCalculator) Score(customer model.Customer, loans []model.Loan, now time.Time) int {
	if len(loans) == 0 {
		return neutralScore
	}

	weighted := weightOnTime*onTimeScore(loans) +
		weightLoanCount*loanCountScore(loans) +
		weightCurrentYear*currentYearScore(loans, now.Year()) +
		weightVolume*volumeScore(loans, customer.ApprovedLimit())

	if SumActiveRepayments(loans, now).GreaterThan(customer.ApprovedLimit()) {
		return 0
	}

	score := int(weighted)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// SumActiveRepayments totals the monthly repayments of loans still running
// as of the given date.
func SumActiveRepayments(loans []model.Loan, asOf time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, loan := range loans {
		if loan.IsActive(asOf) {
			sum = sum.Add(loan.MonthlyRepayment())
		}
	}
	return sum
}

// onTimeScore is the ratio of installments paid on time to the total
// installments across all loans. Remaining unpaid installments count against
// the ratio; the denominator is the sum of tenures.
func onTimeScore(loans []model.Loan) float64 {
	var onTime, total int
	for _, loan := range loans {
		onTime += loan.EMIsPaidOnTime()
		total += loan.TenureMonths()
	}
	if total == 0 {
		return neutralScore
	}
	return float64(onTime) / float64(total) * 100
}

func loanCountScore(loans []model.Loan) float64 {
	switch n := len(loans); {
	case n <= 2:
		return 100
	case n <= 5:
		return 75
	case n <= 10:
		return 50
	default:
		return 25
	}
}

func currentYearScore(loans []model.Loan, year int) float64 {
	var n int
	for _, loan := range loans {
		if loan.StartedIn(year) {
			n++
		}
	}
	switch {
	case n == 0:
		return 100
	case n <= 2:
		return 75
	case n <= 4:
		return 50
	default:
		return 25
	}
}

func volumeScore(loans []model.Loan, approvedLimit decimal.Decimal) float64 {
	total := decimal.Zero
	for _, loan := range loans {
		total = total.Add(loan.Amount())
	}
	switch {
	case total.LessThanOrEqual(approvedLimit.Mul(decimal.NewFromFloat(0.5))):
		return 100
	case total.LessThanOrEqual(approvedLimit):
		return 75
	case total.LessThanOrEqual(approvedLimit.Mul(decimal.NewFromFloat(1.5))):
		return 50
	default:
		return 25
	}
}
