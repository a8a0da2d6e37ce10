package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	pgutil "github.com/bhaveshhptl/credit-approval-system/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

const loanColumns = `loan_id, customer_id, loan_amount, interest_rate, tenure,
       monthly_repayment, emis_paid_on_time, start_date, end_date`

// Originate books a loan inside a single transaction: the next loan id is
// allocated from the current maximum, the row inserted, and the customer's
// current debt raised by the loan amount.
func (r *LoanRepo) Originate(ctx context.Context, loan model.Loan) (model.Loan, error) {
	var id int64
	err := pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO loans (loan_id, customer_id, loan_amount, interest_rate, tenure,
			                   monthly_repayment, emis_paid_on_time, start_date, end_date)
			VALUES (
				(SELECT COALESCE(MAX(loan_id), 0) + 1 FROM loans),
				$1, $2, $3, $4, $5, $6, $7, $8
			)
			RETURNING loan_id
		`
		err := tx.QueryRow(ctx, insert,
			loan.CustomerID(), loan.Amount(), loan.InterestRate(), loan.TenureMonths(),
			loan.MonthlyRepayment(), loan.EMIsPaidOnTime(), loan.StartDate(), loan.EndDate(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}

		tag, err := tx.Exec(ctx,
			`UPDATE customers SET current_debt = current_debt + $1 WHERE customer_id = $2`,
			loan.Amount(), loan.CustomerID(),
		)
		if err != nil {
			return fmt.Errorf("raise customer debt: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrCustomerNotFound
		}
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan.WithID(id), nil
}

// Update persists the on-time EMI counter.
func (r *LoanRepo) Update(ctx context.Context, loan model.Loan) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE loans SET emis_paid_on_time = $1 WHERE loan_id = $2`,
		loan.EMIsPaidOnTime(), loan.ID(),
	)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLoanNotFound
	}
	return nil
}

// FindByID retrieves a loan by id.
func (r *LoanRepo) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1`
	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, model.ErrLoanNotFound
	}
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// FindByCustomerID retrieves every loan the customer has ever held, oldest
// first.
func (r *LoanRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY loan_id`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return loans, nil
}

func scanLoan(row pgx.Row) (model.Loan, error) {
	var (
		id, customerID                       int64
		amount, interestRate, monthlyPayment decimal.Decimal
		tenureMonths, emisPaidOnTime         int
		startDate, endDate                   time.Time
	)
	err := row.Scan(&id, &customerID, &amount, &interestRate, &tenureMonths,
		&monthlyPayment, &emisPaidOnTime, &startDate, &endDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, err
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}
	return model.ReconstructLoan(id, customerID, amount, interestRate,
		tenureMonths, monthlyPayment, emisPaidOnTime, startDate, endDate), nil
}
