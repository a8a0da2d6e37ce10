package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// DecisionEngine – approval decisions for eligibility checks and origination
// ---------------------------------------------------------------------------

// Decision messages surface unchanged through the API.
const (
	MsgBurdenExceeded            = "Current EMI burden exceeds 50% of monthly salary"
	MsgOriginationBurdenExceeded = "Loan denied: EMI burden exceeds 50% of monthly salary."
	MsgScoreTooLow               = "Loan denied: Credit score too low."
	MsgLoanApproved              = "Loan approved."
)

var halfShare = decimal.NewFromFloat(0.5)

// LoanTerms carries the requested terms of a prospective loan.
type LoanTerms struct {
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	TenureMonths int
}

// EligibilityResult is the outcome of a read-only eligibility inquiry.
type EligibilityResult struct {
	Approved              bool
	CreditScore           int
	InterestRate          decimal.Decimal
	CorrectedInterestRate decimal.Decimal
	TenureMonths          int
	MonthlyInstallment    decimal.Decimal
	Message               string
}

// OriginationDecision is the outcome of evaluating a loan for creation.
type OriginationDecision struct {
	Approved           bool
	CreditScore        int
	MonthlyInstallment decimal.Decimal
	Message            string
}

// DecisionEngine composes the score calculator, the rate correction policy
// and the installment calculator with the affordability check. It performs
// no I/O: callers load the customer and full loan history first.
type DecisionEngine struct {
	scorer *ScoreCalculator
}

// NewDecisionEngine returns an engine with a fresh score calculator.
func NewDecisionEngine() *DecisionEngine {
	return &DecisionEngine{scorer: NewScoreCalculator()}
}

// CheckEligibility decides whether the requested loan could be approved and
// at what corrected rate.
//
// The burden gate uses the existing active repayments only: a customer whose
// active installments already exceed half their salary is denied regardless
// of score. Approved tiers compute the installment at the corrected rate.
func (e *DecisionEngine) CheckEligibility(
	customer model.Customer,
	loans []model.Loan,
	terms LoanTerms,
	now time.Time,
) (EligibilityResult, error) {
	score := e.scorer.Score(customer, loans, now)

	result := EligibilityResult{
		CreditScore:           score,
		InterestRate:          terms.InterestRate,
		CorrectedInterestRate: terms.InterestRate,
		TenureMonths:          terms.TenureMonths,
		MonthlyInstallment:    decimal.Zero,
	}

	activeEMISum := SumActiveRepayments(loans, now)
	if activeEMISum.GreaterThan(customer.MonthlySalary().Mul(halfShare)) {
		result.Message = MsgBurdenExceeded
		return result, nil
	}

	if score <= RejectAtOrBelowScore {
		return result, nil
	}

	result.Approved = true
	result.CorrectedInterestRate = EffectiveRate(terms.InterestRate, score)

	installment, err := model.CalculateMonthlyInstallment(terms.Amount, result.CorrectedInterestRate, terms.TenureMonths)
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("compute installment: %w", err)
	}
	result.MonthlyInstallment = installment
	return result, nil
}

// EvaluateOrigination decides whether a new loan may be created.
//
// Unlike CheckEligibility, the trial installment is computed at the
// requested rate with no correction floor, and the burden gate includes
// that trial installment on top of the existing active repayments. The two
// paths can disagree on the same inputs; both behaviors are intentional.
func (e *DecisionEngine) EvaluateOrigination(
	customer model.Customer,
	loans []model.Loan,
	terms LoanTerms,
	now time.Time,
) (OriginationDecision, error) {
	score := e.scorer.Score(customer, loans, now)

	trial, err := model.CalculateMonthlyInstallment(terms.Amount, terms.InterestRate, terms.TenureMonths)
	if err != nil {
		return OriginationDecision{}, fmt.Errorf("compute trial installment: %w", err)
	}

	decision := OriginationDecision{
		CreditScore:        score,
		MonthlyInstallment: trial,
	}

	activeEMISum := SumActiveRepayments(loans, now)
	maxEMI := customer.MonthlySalary().Mul(halfShare)

	switch {
	case activeEMISum.Add(trial).GreaterThan(maxEMI):
		decision.Message = MsgOriginationBurdenExceeded
	case score <= RejectAtOrBelowScore:
		decision.Message = MsgScoreTooLow
	default:
		decision.Approved = true
		decision.Message = MsgLoanApproved
	}

	return decision, nil
}
