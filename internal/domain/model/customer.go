package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerNotFound is returned when a customer ID has no record.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrLoanNotFound is returned when a loan ID has no record.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrInvalidInput marks validation failures on caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")
)

const (
	minCustomerAge = 18
	maxCustomerAge = 100
)

// approvedLimitUnit is the rounding unit for the registration-time borrowing
// limit: 36x monthly salary rounded to the nearest lakh (100,000).
var approvedLimitUnit = decimal.NewFromInt(100_000)

// Customer is an immutable aggregate. The only mutation the engine performs
// on a customer is the debt increment inside loan origination, which returns
// a new copy.
type Customer struct {
	id            int64
	firstName     string
	lastName      string
	age           int
	phoneNumber   string
	monthlySalary decimal.Decimal
	approvedLimit decimal.Decimal
	currentDebt   decimal.Decimal
}

// NewCustomer creates a customer for registration. The approved limit is
// derived from the monthly salary; current debt starts at zero. The ID is
// zero until the repository allocates one.
func NewCustomer(firstName, lastName string, age int, phoneNumber string, monthlySalary decimal.Decimal) (Customer, error) {
	if firstName == "" {
		return Customer{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if lastName == "" {
		return Customer{}, fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if age < minCustomerAge || age > maxCustomerAge {
		return Customer{}, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, minCustomerAge, maxCustomerAge)
	}
	if phoneNumber == "" {
		return Customer{}, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return Customer{}, fmt.Errorf("%w: monthly salary must be positive", ErrInvalidInput)
	}

	return Customer{
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlySalary: monthlySalary,
		approvedLimit: DeriveApprovedLimit(monthlySalary),
		currentDebt:   decimal.Zero,
	}, nil
}

// DeriveApprovedLimit computes round(36 x salary / 100,000) x 100,000.
// Rounding at the half point is banker's rounding.
func DeriveApprovedLimit(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.
		Mul(decimal.NewFromInt(36)).
		Div(approvedLimitUnit).
		RoundBank(0).
		Mul(approvedLimitUnit)
}

// ReconstructCustomer rebuilds a Customer aggregate from persistence.
func ReconstructCustomer(
	id int64,
	firstName, lastName string,
	age int,
	phoneNumber string,
	monthlySalary, approvedLimit, currentDebt decimal.Decimal,
) Customer {
	return Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlySalary: monthlySalary,
		approvedLimit: approvedLimit,
		currentDebt:   currentDebt,
	}
}

// WithID returns a copy carrying the repository-allocated identifier.
func (c Customer) WithID(id int64) Customer {
	next := c
	next.id = id
	return next
}

// WithDebtAdded returns a copy with the loan principal added to current debt.
// Callers must invoke this only inside the origination transaction boundary.
func (c Customer) WithDebtAdded(amount decimal.Decimal) (Customer, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return c, errors.New("debt increment must be positive")
	}
	next := c
	next.currentDebt = c.currentDebt.Add(amount)
	return next, nil
}

func (c Customer) ID() int64                      { return c.id }
func (c Customer) FirstName() string              { return c.firstName }
func (c Customer) LastName() string               { return c.lastName }
func (c Customer) FullName() string               { return c.firstName + " " + c.lastName }
func (c Customer) Age() int                       { return c.age }
func (c Customer) PhoneNumber() string            { return c.phoneNumber }
func (c Customer) MonthlySalary() decimal.Decimal { return c.monthlySalary }
func (c Customer) ApprovedLimit() decimal.Decimal { return c.approvedLimit }
func (c Customer) CurrentDebt() decimal.Decimal   { return c.currentDebt }
