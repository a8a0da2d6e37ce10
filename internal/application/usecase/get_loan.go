package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/port"
)

// GetLoanUseCase returns a single loan with its customer identity block.
type GetLoanUseCase struct {
	customerRepo port.CustomerRepository
	loanRepo     port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(customerRepo port.CustomerRepository, loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{customerRepo: customerRepo, loanRepo: loanRepo}
}

// Execute retrieves a loan by id.
func (uc *GetLoanUseCase) Execute(ctx context.Context, loanID int64) (dto.LoanDetailResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find loan: %w", err)
	}
	customer, err := uc.customerRepo.FindByID(ctx, loan.CustomerID())
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find customer: %w", err)
	}
	return dto.ToLoanDetailResponse(loan, customer), nil
}

// ListCustomerLoansUseCase lists every loan a customer holds, with the
// number of repayments left computed as of today.
type ListCustomerLoansUseCase struct {
	customerRepo port.CustomerRepository
	loanRepo     port.LoanRepository
}

// NewListCustomerLoansUseCase wires dependencies.
func NewListCustomerLoansUseCase(customerRepo port.CustomerRepository, loanRepo port.LoanRepository) *ListCustomerLoansUseCase {
	return &ListCustomerLoansUseCase{customerRepo: customerRepo, loanRepo: loanRepo}
}

// Execute lists a customer's loans. The customer is looked up first so a
// missing customer surfaces as not-found rather than an empty list.
func (uc *ListCustomerLoansUseCase) Execute(ctx context.Context, customerID int64) ([]dto.CustomerLoanItem, error) {
	if _, err := uc.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	loans, err := uc.loanRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find loans: %w", err)
	}

	now := time.Now().UTC()
	items := make([]dto.CustomerLoanItem, len(loans))
	for i, loan := range loans {
		items[i] = dto.CustomerLoanItem{
			LoanID:             loan.ID(),
			LoanAmount:         loan.Amount(),
			InterestRate:       loan.InterestRate(),
			MonthlyInstallment: loan.MonthlyRepayment(),
			RepaymentsLeft:     loan.RepaymentsLeft(now),
		}
	}
	return items, nil
}
