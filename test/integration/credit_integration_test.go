//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	pgRepo "github.com/bhaveshhptl/credit-approval-system/internal/infrastructure/persistence/postgres"
	"github.com/bhaveshhptl/credit-approval-system/pkg/testutil"
)

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..",
		"internal", "infrastructure", "persistence", "postgres", "migrations")
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pg.Cleanup(t) })

	pg.RunMigrations(t, migrationsDir())

	return pg.Pool
}

func registerTestCustomer(t *testing.T, repo *pgRepo.CustomerRepo, salary int64) model.Customer {
	t.Helper()

	customer, err := model.NewCustomer("Aarav", "Sharma", 30, "9876543210", decimal.NewFromInt(salary))
	require.NoError(t, err)

	customer, err = repo.Create(context.Background(), customer)
	require.NoError(t, err)
	return customer
}

func TestCustomerRepo_CreateAndFind(t *testing.T) {
	pool := setupTestDB(t)
	repo := pgRepo.NewCustomerRepo(pool)
	ctx := context.Background()

	customer := registerTestCustomer(t, repo, 50000)
	assert.Positive(t, customer.ID())

	found, err := repo.FindByID(ctx, customer.ID())
	require.NoError(t, err)
	assert.Equal(t, "Aarav Sharma", found.FullName())
	assert.True(t, found.MonthlySalary().Equal(decimal.NewFromInt(50000)))
	assert.True(t, found.ApprovedLimit().Equal(decimal.NewFromInt(1800000)),
		"approved limit = %s", found.ApprovedLimit())
	assert.True(t, found.CurrentDebt().IsZero())

	_, err = repo.FindByID(ctx, customer.ID()+1000)
	assert.ErrorIs(t, err, model.ErrCustomerNotFound)
}

func TestLoanRepo_OriginateAllocatesSequentialIDs(t *testing.T) {
	pool := setupTestDB(t)
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	ctx := context.Background()

	customer := registerTestCustomer(t, customerRepo, 50000)

	now := time.Now().UTC()
	first, err := model.NewLoan(customer.ID(),
		decimal.NewFromInt(100000), decimal.NewFromFloat(12.0), 12,
		decimal.NewFromFloat(8884.88), now)
	require.NoError(t, err)
	second, err := model.NewLoan(customer.ID(),
		decimal.NewFromInt(50000), decimal.NewFromFloat(14.0), 24,
		decimal.NewFromFloat(2400.90), now)
	require.NoError(t, err)

	first, err = loanRepo.Originate(ctx, first)
	require.NoError(t, err)
	second, err = loanRepo.Originate(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first.ID()+1, second.ID())

	// Origination raises the customer's current debt by each loan amount.
	found, err := customerRepo.FindByID(ctx, customer.ID())
	require.NoError(t, err)
	assert.True(t, found.CurrentDebt().Equal(decimal.NewFromInt(150000)),
		"current debt = %s", found.CurrentDebt())
}

func TestLoanRepo_FindByCustomerID(t *testing.T) {
	pool := setupTestDB(t)
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	ctx := context.Background()

	customer := registerTestCustomer(t, customerRepo, 50000)

	now := time.Now().UTC()
	loan, err := model.NewLoan(customer.ID(),
		decimal.NewFromInt(100000), decimal.NewFromFloat(12.0), 12,
		decimal.NewFromFloat(8884.88), now)
	require.NoError(t, err)
	loan, err = loanRepo.Originate(ctx, loan)
	require.NoError(t, err)

	loans, err := loanRepo.FindByCustomerID(ctx, customer.ID())
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, loan.ID(), loans[0].ID())
	assert.True(t, loans[0].MonthlyRepayment().Equal(decimal.NewFromFloat(8884.88)))
	assert.True(t, loans[0].IsActive(now))

	loans, err = loanRepo.FindByCustomerID(ctx, customer.ID()+1000)
	require.NoError(t, err)
	assert.Empty(t, loans)
}

func TestLoanRepo_UpdateEMICounter(t *testing.T) {
	pool := setupTestDB(t)
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	ctx := context.Background()

	customer := registerTestCustomer(t, customerRepo, 50000)

	loan, err := model.NewLoan(customer.ID(),
		decimal.NewFromInt(100000), decimal.NewFromFloat(12.0), 12,
		decimal.NewFromFloat(8884.88), time.Now().UTC())
	require.NoError(t, err)
	loan, err = loanRepo.Originate(ctx, loan)
	require.NoError(t, err)

	loan, err = loan.RecordEMIPayment()
	require.NoError(t, err)
	require.NoError(t, loanRepo.Update(ctx, loan))

	found, err := loanRepo.FindByID(ctx, loan.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, found.EMIsPaidOnTime())

	err = loanRepo.Update(ctx, loan.WithID(loan.ID()+1000))
	assert.ErrorIs(t, err, model.ErrLoanNotFound)
}
