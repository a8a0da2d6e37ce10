package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/event"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/port"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/service"
)

// CreateLoanUseCase evaluates an origination request and, when approved,
// books the loan and raises the customer's current debt atomically.
type CreateLoanUseCase struct {
	customerRepo port.CustomerRepository
	loanRepo     port.LoanRepository
	engine       *service.DecisionEngine
	publisher    port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	customerRepo port.CustomerRepository,
	loanRepo port.LoanRepository,
	engine *service.DecisionEngine,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		engine:       engine,
		publisher:    publisher,
	}
}

// Execute originates a loan. Denials are a normal outcome, not an error:
// the response carries a nil loan id and the denial message.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.CreateLoanResponse, error) {
	now := time.Now().UTC()

	// 1. Load the customer and their full loan history.
	customer, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("find customer: %w", err)
	}
	loans, err := uc.loanRepo.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("find loans: %w", err)
	}

	// 2. Run the origination decision.
	terms := service.LoanTerms{
		Amount:       req.LoanAmount,
		InterestRate: req.InterestRate,
		TenureMonths: req.Tenure,
	}
	decision, err := uc.engine.EvaluateOrigination(customer, loans, terms, now)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("evaluate origination: %w", err)
	}

	if !decision.Approved {
		evt := event.NewLoanDenied(customer.ID(), req.LoanAmount, decision.CreditScore, decision.Message)
		if err := uc.publisher.Publish(ctx, evt); err != nil {
			return dto.CreateLoanResponse{}, fmt.Errorf("publish events: %w", err)
		}
		return dto.CreateLoanResponse{
			LoanID:             nil,
			CustomerID:         customer.ID(),
			LoanApproved:       false,
			Message:            decision.Message,
			MonthlyInstallment: decimal.Zero,
		}, nil
	}

	// 3. Book the loan. The repository allocates the id, inserts the row
	//    and bumps the customer debt in one transaction.
	loan, err := model.NewLoan(customer.ID(), req.LoanAmount, req.InterestRate, req.Tenure, decision.MonthlyInstallment, now)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("new loan: %w", err)
	}
	loan, err = uc.loanRepo.Originate(ctx, loan)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("originate loan: %w", err)
	}

	// 4. Publish the origination event.
	evt := event.NewLoanOriginated(
		loan.ID(), loan.CustomerID(),
		loan.Amount(), loan.InterestRate(), loan.TenureMonths(), loan.MonthlyRepayment(),
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	loanID := loan.ID()
	return dto.CreateLoanResponse{
		LoanID:             &loanID,
		CustomerID:         customer.ID(),
		LoanApproved:       true,
		Message:            decision.Message,
		MonthlyInstallment: loan.MonthlyRepayment(),
	}, nil
}
