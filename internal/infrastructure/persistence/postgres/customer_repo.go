package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

// CustomerRepo implements port.CustomerRepository.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a new PostgreSQL-backed customer repository.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create inserts a customer and returns the aggregate carrying the
// database-assigned id.
func (r *CustomerRepo) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query := `
		INSERT INTO customers (first_name, last_name, age, phone_number, monthly_salary, approved_limit, current_debt)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING customer_id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		customer.FirstName(), customer.LastName(), customer.Age(), customer.PhoneNumber(),
		customer.MonthlySalary(), customer.ApprovedLimit(), customer.CurrentDebt(),
	).Scan(&id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	return customer.WithID(id), nil
}

// FindByID retrieves a customer by id.
func (r *CustomerRepo) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, age, phone_number,
		       monthly_salary, approved_limit, current_debt
		FROM customers
		WHERE customer_id = $1
	`
	return scanCustomer(r.pool.QueryRow(ctx, query, id))
}

func scanCustomer(row pgx.Row) (model.Customer, error) {
	var (
		id                                int64
		firstName, lastName, phoneNumber  string
		age                               int
		monthlySalary, limit, currentDebt decimal.Decimal
	)
	err := row.Scan(&id, &firstName, &lastName, &age, &phoneNumber, &monthlySalary, &limit, &currentDebt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, model.ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}
	return model.ReconstructCustomer(id, firstName, lastName, age, phoneNumber, monthlySalary, limit, currentDebt), nil
}
