package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinTenureMonths and MaxTenureMonths bound loan duration (1 to 30 years).
	MinTenureMonths = 1
	MaxTenureMonths = 360
)

// Loan is an immutable record of one origination event. After creation the
// only field that changes is the on-time EMI counter.
type Loan struct {
	id               int64
	customerID       int64
	amount           decimal.Decimal
	interestRate     decimal.Decimal
	tenureMonths     int
	monthlyRepayment decimal.Decimal
	emisPaidOnTime   int
	startDate        time.Time
	endDate          time.Time
}

// NewLoan creates a loan starting today. The end date is exactly tenure
// months after the start date. The ID is zero until the repository
// allocates one inside the origination transaction.
func NewLoan(
	customerID int64,
	amount, interestRate decimal.Decimal,
	tenureMonths int,
	monthlyRepayment decimal.Decimal,
	startDate time.Time,
) (Loan, error) {
	if customerID <= 0 {
		return Loan{}, fmt.Errorf("%w: customer ID is required", ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Loan{}, fmt.Errorf("%w: loan amount must be positive", ErrInvalidInput)
	}
	if interestRate.IsNegative() {
		return Loan{}, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidInput)
	}
	if tenureMonths < MinTenureMonths || tenureMonths > MaxTenureMonths {
		return Loan{}, fmt.Errorf("%w: tenure must be between %d and %d months", ErrInvalidInput, MinTenureMonths, MaxTenureMonths)
	}
	if monthlyRepayment.LessThanOrEqual(decimal.Zero) {
		return Loan{}, fmt.Errorf("%w: monthly repayment must be positive", ErrInvalidInput)
	}

	start := startDate.Truncate(24 * time.Hour)
	return Loan{
		customerID:       customerID,
		amount:           amount,
		interestRate:     interestRate,
		tenureMonths:     tenureMonths,
		monthlyRepayment: monthlyRepayment,
		emisPaidOnTime:   0,
		startDate:        start,
		endDate:          start.AddDate(0, tenureMonths, 0),
	}, nil
}

// ReconstructLoan rebuilds a Loan from persistence.
func ReconstructLoan(
	id, customerID int64,
	amount, interestRate decimal.Decimal,
	tenureMonths int,
	monthlyRepayment decimal.Decimal,
	emisPaidOnTime int,
	startDate, endDate time.Time,
) Loan {
	return Loan{
		id:               id,
		customerID:       customerID,
		amount:           amount,
		interestRate:     interestRate,
		tenureMonths:     tenureMonths,
		monthlyRepayment: monthlyRepayment,
		emisPaidOnTime:   emisPaidOnTime,
		startDate:        startDate,
		endDate:          endDate,
	}
}

// WithID returns a copy carrying the repository-allocated identifier.
func (l Loan) WithID(id int64) Loan {
	next := l
	next.id = id
	return next
}

// RecordEMIPayment increments the on-time EMI counter. The counter never
// exceeds the tenure.
func (l Loan) RecordEMIPayment() (Loan, error) {
	if l.emisPaidOnTime >= l.tenureMonths {
		return l, errors.New("all installments already recorded for this loan")
	}
	next := l
	next.emisPaidOnTime = l.emisPaidOnTime + 1
	return next, nil
}

// IsActive reports whether the loan is still running as of the given date:
// end date on or after that date.
func (l Loan) IsActive(asOf time.Time) bool {
	return !l.endDate.Before(asOf.Truncate(24 * time.Hour))
}

// RepaymentsLeft counts remaining installments as of the given date by
// year/month delta only; the day of month is ignored.
func (l Loan) RepaymentsLeft(asOf time.Time) int {
	elapsed := (asOf.Year()-l.startDate.Year())*12 + int(asOf.Month()) - int(l.startDate.Month())
	left := l.tenureMonths - elapsed
	if left < 0 {
		return 0
	}
	return left
}

// StartedIn reports whether the loan's start date falls in the given year.
func (l Loan) StartedIn(year int) bool {
	return l.startDate.Year() == year
}

func (l Loan) ID() int64                         { return l.id }
func (l Loan) CustomerID() int64                 { return l.customerID }
func (l Loan) Amount() decimal.Decimal           { return l.amount }
func (l Loan) InterestRate() decimal.Decimal     { return l.interestRate }
func (l Loan) TenureMonths() int                 { return l.tenureMonths }
func (l Loan) MonthlyRepayment() decimal.Decimal { return l.monthlyRepayment }
func (l Loan) EMIsPaidOnTime() int               { return l.emisPaidOnTime }
func (l Loan) StartDate() time.Time              { return l.startDate }
func (l Loan) EndDate() time.Time                { return l.endDate }
