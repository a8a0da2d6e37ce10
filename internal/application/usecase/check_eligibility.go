package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/port"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/service"
)

// CheckEligibilityUseCase answers whether a customer qualifies for a loan
// at the requested terms. It never writes state.
type CheckEligibilityUseCase struct {
	customerRepo port.CustomerRepository
	loanRepo     port.LoanRepository
	engine       *service.DecisionEngine
}

// NewCheckEligibilityUseCase wires dependencies.
func NewCheckEligibilityUseCase(
	customerRepo port.CustomerRepository,
	loanRepo port.LoanRepository,
	engine *service.DecisionEngine,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		engine:       engine,
	}
}

// Execute evaluates eligibility against the customer's full loan history.
func (uc *CheckEligibilityUseCase) Execute(
	ctx context.Context,
	req dto.CheckEligibilityRequest,
) (dto.EligibilityResponse, error) {
	now := time.Now().UTC()

	// 1. Load the customer and every loan they have ever held.
	customer, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("find customer: %w", err)
	}
	loans, err := uc.loanRepo.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("find loans: %w", err)
	}

	// 2. Run the decision engine.
	terms := service.LoanTerms{
		Amount:       req.LoanAmount,
		InterestRate: req.InterestRate,
		TenureMonths: req.Tenure,
	}
	result, err := uc.engine.CheckEligibility(customer, loans, terms, now)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("check eligibility: %w", err)
	}

	return dto.EligibilityResponse{
		CustomerID:            customer.ID(),
		Approval:              result.Approved,
		InterestRate:          result.InterestRate,
		CorrectedInterestRate: result.CorrectedInterestRate,
		Tenure:                result.TenureMonths,
		MonthlyInstallment:    result.MonthlyInstallment,
		Message:               result.Message,
	}, nil
}
