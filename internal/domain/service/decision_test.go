package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/service"
)

func standardTerms(amount int64) service.LoanTerms {
	return service.LoanTerms{
		Amount:       decimal.NewFromInt(amount),
		InterestRate: decimal.NewFromFloat(12.0),
		TenureMonths: 12,
	}
}

func TestDecisionEngine_CheckEligibility(t *testing.T) {
	engine := service.NewDecisionEngine()

	t.Run("approves a no-history customer at the corrected rate", func(t *testing.T) {
		result, err := engine.CheckEligibility(scoreCustomer(50000), nil, standardTerms(100000), scoreNow)

		require.NoError(t, err)
		assert.True(t, result.Approved)
		assert.Equal(t, 50, result.CreditScore)
		assert.True(t, result.CorrectedInterestRate.Equal(decimal.NewFromFloat(12.0)))
		assert.True(t, result.MonthlyInstallment.Equal(decimal.NewFromFloat(8884.88)),
			"installment = %s", result.MonthlyInstallment)
	})

	t.Run("denies on existing burden before scoring tiers", func(t *testing.T) {
		// One running loan at 30000 a month against a 50000 salary.
		running := model.ReconstructLoan(1, 1,
			decimal.NewFromInt(360000), decimal.NewFromFloat(12.0), 12,
			decimal.NewFromInt(30000), 0,
			scoreNow.AddDate(0, -1, 0), scoreNow.AddDate(0, 11, 0))

		result, err := engine.CheckEligibility(scoreCustomer(50000), []model.Loan{running}, standardTerms(100000), scoreNow)

		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.Equal(t, service.MsgBurdenExceeded, result.Message)
		assert.True(t, result.MonthlyInstallment.IsZero())
	})

	t.Run("allows a burden of exactly half the salary", func(t *testing.T) {
		// 25000 a month against a 50000 salary is not over the cap.
		running := model.ReconstructLoan(1, 1,
			decimal.NewFromInt(300000), decimal.NewFromFloat(12.0), 12,
			decimal.NewFromInt(25000), 0,
			scoreNow.AddDate(0, -1, 0), scoreNow.AddDate(0, 11, 0))

		result, err := engine.CheckEligibility(scoreCustomer(50000), []model.Loan{running}, standardTerms(100000), scoreNow)

		require.NoError(t, err)
		assert.True(t, result.Approved)
		assert.Empty(t, result.Message)
	})

	t.Run("rejects a zeroed score without a message", func(t *testing.T) {
		running := historyLoan(1, 1200, 12, 6, scoreNow.AddDate(0, -3, 0))

		result, err := engine.CheckEligibility(scoreCustomer(1000), []model.Loan{running}, standardTerms(1000), scoreNow)

		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.Equal(t, 0, result.CreditScore)
		assert.Empty(t, result.Message)
		assert.True(t, result.CorrectedInterestRate.Equal(result.InterestRate))
	})
}

func TestDecisionEngine_EvaluateOrigination(t *testing.T) {
	engine := service.NewDecisionEngine()

	t.Run("approves with the installment at the requested rate", func(t *testing.T) {
		decision, err := engine.EvaluateOrigination(scoreCustomer(50000), nil, standardTerms(100000), scoreNow)

		require.NoError(t, err)
		assert.True(t, decision.Approved)
		assert.Equal(t, service.MsgLoanApproved, decision.Message)
		assert.True(t, decision.MonthlyInstallment.Equal(decimal.NewFromFloat(8884.88)),
			"installment = %s", decision.MonthlyInstallment)
	})

	t.Run("counts the trial installment toward the burden cap", func(t *testing.T) {
		// 150000 over 12 months at 12 percent costs 13327.33 a month,
		// over half of a 20000 salary even with no other loans.
		decision, err := engine.EvaluateOrigination(scoreCustomer(20000), nil, standardTerms(150000), scoreNow)

		require.NoError(t, err)
		assert.False(t, decision.Approved)
		assert.Equal(t, service.MsgOriginationBurdenExceeded, decision.Message)
	})

	t.Run("eligibility and origination diverge on the trial installment", func(t *testing.T) {
		// The eligibility check only weighs existing loans, so the same
		// request that origination denies above passes here.
		customer := scoreCustomer(20000)
		terms := standardTerms(150000)

		eligibility, err := engine.CheckEligibility(customer, nil, terms, scoreNow)
		require.NoError(t, err)
		origination, err := engine.EvaluateOrigination(customer, nil, terms, scoreNow)
		require.NoError(t, err)

		assert.True(t, eligibility.Approved)
		assert.False(t, origination.Approved)
	})

	t.Run("denies a low score after the burden gate", func(t *testing.T) {
		running := historyLoan(1, 1200, 12, 6, scoreNow.AddDate(0, -3, 0))

		decision, err := engine.EvaluateOrigination(scoreCustomer(1000), []model.Loan{running}, service.LoanTerms{
			Amount:       decimal.NewFromInt(1000),
			InterestRate: decimal.NewFromFloat(12.0),
			TenureMonths: 12,
		}, scoreNow)

		require.NoError(t, err)
		assert.False(t, decision.Approved)
		assert.Equal(t, service.MsgScoreTooLow, decision.Message)
	})
}
