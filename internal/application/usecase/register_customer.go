package usecase

import (
	"context"
	"fmt"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/event"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/port"
)

// RegisterCustomerUseCase creates a customer with a derived approved limit
// and publishes the registration event.
type RegisterCustomerUseCase struct {
	customerRepo port.CustomerRepository
	publisher    port.EventPublisher
}

// NewRegisterCustomerUseCase wires dependencies.
func NewRegisterCustomerUseCase(
	customerRepo port.CustomerRepository,
	publisher port.EventPublisher,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

// Execute registers a new customer.
func (uc *RegisterCustomerUseCase) Execute(
	ctx context.Context,
	req dto.RegisterCustomerRequest,
) (dto.CustomerResponse, error) {
	// 1. Build the aggregate. The approved limit is derived inside the
	//    constructor from the monthly income.
	customer, err := model.NewCustomer(req.FirstName, req.LastName, req.Age, req.PhoneNumber, req.MonthlyIncome)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("new customer: %w", err)
	}

	// 2. Persist; the repository assigns the customer id.
	customer, err = uc.customerRepo.Create(ctx, customer)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("create customer: %w", err)
	}

	// 3. Publish the registration event.
	evt := event.NewCustomerRegistered(customer.ID(), customer.FullName(), customer.MonthlySalary(), customer.ApprovedLimit())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.ToCustomerResponse(customer), nil
}
