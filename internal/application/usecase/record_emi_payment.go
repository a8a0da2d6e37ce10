package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/event"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/port"
)

// RecordEMIPaymentUseCase increments a loan's on-time installment counter.
// The counter feeds the payment-history component of the credit score.
type RecordEMIPaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewRecordEMIPaymentUseCase wires dependencies.
func NewRecordEMIPaymentUseCase(loanRepo port.LoanRepository, publisher port.EventPublisher) *RecordEMIPaymentUseCase {
	return &RecordEMIPaymentUseCase{loanRepo: loanRepo, publisher: publisher}
}

// Execute records one on-time EMI payment against the loan.
func (uc *RecordEMIPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordEMIPaymentRequest,
) (dto.RecordEMIPaymentResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.RecordEMIPaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.RecordEMIPayment()
	if err != nil {
		return dto.RecordEMIPaymentResponse{}, fmt.Errorf("record payment: %w", err)
	}
	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return dto.RecordEMIPaymentResponse{}, fmt.Errorf("update loan: %w", err)
	}

	evt := event.NewEMIRecorded(loan.ID(), loan.CustomerID(), loan.EMIsPaidOnTime())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.RecordEMIPaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RecordEMIPaymentResponse{
		LoanID:         loan.ID(),
		EMIsPaidOnTime: loan.EMIsPaidOnTime(),
		RepaymentsLeft: loan.RepaymentsLeft(time.Now().UTC()),
	}, nil
}
