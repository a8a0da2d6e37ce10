package event

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/pkg/events"
)

// Event types published on the credit-events topic.
const (
	TypeCustomerRegistered = "credit.customer.registered"
	TypeLoanOriginated     = "credit.loan.originated"
	TypeLoanDenied         = "credit.loan.denied"
	TypeEMIRecorded        = "credit.loan.emi_recorded"
)

// CustomerRegistered is emitted after a customer record is persisted.
type CustomerRegistered struct {
	events.BaseEvent
	CustomerID    int64           `json:"customer_id"`
	FullName      string          `json:"full_name"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
}

func NewCustomerRegistered(customerID int64, fullName string, salary, approvedLimit decimal.Decimal) CustomerRegistered {
	return CustomerRegistered{
		BaseEvent:     events.NewBaseEvent(TypeCustomerRegistered, strconv.FormatInt(customerID, 10), "customer"),
		CustomerID:    customerID,
		FullName:      fullName,
		MonthlySalary: salary,
		ApprovedLimit: approvedLimit,
	}
}

// LoanOriginated is emitted after an approved loan is committed.
type LoanOriginated struct {
	events.BaseEvent
	LoanID             int64           `json:"loan_id"`
	CustomerID         int64           `json:"customer_id"`
	Amount             decimal.Decimal `json:"amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TenureMonths       int             `json:"tenure_months"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

func NewLoanOriginated(loanID, customerID int64, amount, rate decimal.Decimal, tenureMonths int, installment decimal.Decimal) LoanOriginated {
	return LoanOriginated{
		BaseEvent:          events.NewBaseEvent(TypeLoanOriginated, strconv.FormatInt(loanID, 10), "loan"),
		LoanID:             loanID,
		CustomerID:         customerID,
		Amount:             amount,
		InterestRate:       rate,
		TenureMonths:       tenureMonths,
		MonthlyInstallment: installment,
	}
}

// LoanDenied is emitted when an origination request is rejected. The
// aggregate is the customer since no loan record exists.
type LoanDenied struct {
	events.BaseEvent
	CustomerID  int64           `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	CreditScore int             `json:"credit_score"`
	Reason      string          `json:"reason"`
}

func NewLoanDenied(customerID int64, amount decimal.Decimal, creditScore int, reason string) LoanDenied {
	return LoanDenied{
		BaseEvent:   events.NewBaseEvent(TypeLoanDenied, strconv.FormatInt(customerID, 10), "customer"),
		CustomerID:  customerID,
		Amount:      amount,
		CreditScore: creditScore,
		Reason:      reason,
	}
}

// EMIRecorded is emitted when an on-time installment payment is recorded
// against a loan.
type EMIRecorded struct {
	events.BaseEvent
	LoanID         int64 `json:"loan_id"`
	CustomerID     int64 `json:"customer_id"`
	EMIsPaidOnTime int   `json:"emis_paid_on_time"`
}

func NewEMIRecorded(loanID, customerID int64, emisPaidOnTime int) EMIRecorded {
	return EMIRecorded{
		BaseEvent:      events.NewBaseEvent(TypeEMIRecorded, strconv.FormatInt(loanID, 10), "loan"),
		LoanID:         loanID,
		CustomerID:     customerID,
		EMIsPaidOnTime: emisPaidOnTime,
	}
}
