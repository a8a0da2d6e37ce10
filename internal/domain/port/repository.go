package port

import (
	"context"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	"github.com/bhaveshhptl/credit-approval-system/pkg/events"
)

// CustomerRepository persists customer aggregates.
type CustomerRepository interface {
	// Create inserts the customer and returns it with its assigned id.
	Create(ctx context.Context, customer model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
}

// LoanRepository persists loan aggregates.
type LoanRepository interface {
	FindByID(ctx context.Context, id int64) (model.Loan, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error)

	// Originate atomically assigns the next loan id, inserts the loan and
	// increases the customer's current debt by the loan amount. It returns
	// the loan with its assigned id.
	Originate(ctx context.Context, loan model.Loan) (model.Loan, error)

	// Update persists mutable loan state, currently the on-time EMI counter.
	Update(ctx context.Context, loan model.Loan) error
}

// EventPublisher publishes domain events after state changes commit.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
