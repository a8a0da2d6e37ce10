package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

// RegisterCustomerRequest carries the fields needed to create a customer.
// The approved limit is derived from the monthly income, never supplied.
type RegisterCustomerRequest struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	PhoneNumber   string          `json:"phone_number"`
}

type CustomerResponse struct {
	CustomerID    int64           `json:"customer_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
	PhoneNumber   string          `json:"phone_number"`
}

func ToCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.ID(),
		Name:          c.FullName(),
		Age:           c.Age(),
		MonthlyIncome: c.MonthlySalary(),
		ApprovedLimit: c.ApprovedLimit(),
		PhoneNumber:   c.PhoneNumber(),
	}
}

// CheckEligibilityRequest asks whether a customer qualifies for a loan at
// the requested terms without creating anything.
type CheckEligibilityRequest struct {
	CustomerID   int64           `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Tenure       int             `json:"tenure"`
}

type EligibilityResponse struct {
	CustomerID            int64           `json:"customer_id"`
	Approval              bool            `json:"approval"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	CorrectedInterestRate decimal.Decimal `json:"corrected_interest_rate"`
	Tenure                int             `json:"tenure"`
	MonthlyInstallment    decimal.Decimal `json:"monthly_installment"`
	Message               string          `json:"message,omitempty"`
}

type CreateLoanRequest struct {
	CustomerID   int64           `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Tenure       int             `json:"tenure"`
}

// CreateLoanResponse reports the origination outcome. LoanID is nil when
// the loan was denied.
type CreateLoanResponse struct {
	LoanID             *int64          `json:"loan_id"`
	CustomerID         int64           `json:"customer_id"`
	LoanApproved       bool            `json:"loan_approved"`
	Message            string          `json:"message"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

// LoanCustomer is the customer identity block embedded in a loan view.
type LoanCustomer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type LoanDetailResponse struct {
	LoanID             int64           `json:"loan_id"`
	Customer           LoanCustomer    `json:"customer"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

func ToLoanDetailResponse(l model.Loan, c model.Customer) LoanDetailResponse {
	return LoanDetailResponse{
		LoanID: l.ID(),
		Customer: LoanCustomer{
			ID:          c.ID(),
			FirstName:   c.FirstName(),
			LastName:    c.LastName(),
			PhoneNumber: c.PhoneNumber(),
			Age:         c.Age(),
		},
		LoanAmount:         l.Amount(),
		InterestRate:       l.InterestRate(),
		MonthlyInstallment: l.MonthlyRepayment(),
		Tenure:             l.TenureMonths(),
	}
}

// CustomerLoanItem is one entry of a customer's loan listing.
type CustomerLoanItem struct {
	LoanID             int64           `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}

type RecordEMIPaymentRequest struct {
	LoanID int64 `json:"loan_id"`
}

type RecordEMIPaymentResponse struct {
	LoanID         int64 `json:"loan_id"`
	EMIsPaidOnTime int   `json:"emis_paid_on_time"`
	RepaymentsLeft int   `json:"repayments_left"`
}
