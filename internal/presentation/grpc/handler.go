package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/dto"
	"github.com/bhaveshhptl/credit-approval-system/internal/application/usecase"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/model"
)

// CreditHandler exposes credit approval operations over gRPC.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	registerCustomer  *usecase.RegisterCustomerUseCase
	checkEligibility  *usecase.CheckEligibilityUseCase
	createLoan        *usecase.CreateLoanUseCase
	getLoan           *usecase.GetLoanUseCase
	listCustomerLoans *usecase.ListCustomerLoansUseCase
	recordEMIPayment  *usecase.RecordEMIPaymentUseCase
	logger            *slog.Logger
}

// NewCreditHandler creates a new handler with all use-case dependencies.
func NewCreditHandler(
	registerCustomer *usecase.RegisterCustomerUseCase,
	checkEligibility *usecase.CheckEligibilityUseCase,
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listCustomerLoans *usecase.ListCustomerLoansUseCase,
	recordEMIPayment *usecase.RecordEMIPaymentUseCase,
	logger *slog.Logger,
) *CreditHandler {
	return &CreditHandler{
		registerCustomer:  registerCustomer,
		checkEligibility:  checkEligibility,
		createLoan:        createLoan,
		getLoan:           getLoan,
		listCustomerLoans: listCustomerLoans,
		recordEMIPayment:  recordEMIPayment,
		logger:            logger,
	}
}

// RegisterCustomer creates a customer with a derived approved limit.
func (h *CreditHandler) RegisterCustomer(ctx context.Context, req *RegisterCustomerRequest) (*RegisterCustomerResponse, error) {
	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly income: %v", err)
	}

	resp, err := h.registerCustomer.Execute(ctx, dto.RegisterCustomerRequest{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		MonthlyIncome: income,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "RegisterCustomer", err)
	}

	return &RegisterCustomerResponse{
		CustomerID:    resp.CustomerID,
		Name:          resp.Name,
		Age:           resp.Age,
		MonthlyIncome: resp.MonthlyIncome.String(),
		ApprovedLimit: resp.ApprovedLimit.String(),
		PhoneNumber:   resp.PhoneNumber,
	}, nil
}

// CheckEligibility evaluates a prospective loan without creating anything.
func (h *CreditHandler) CheckEligibility(ctx context.Context, req *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	amount, rate, err := parseTerms(req.LoanAmount, req.InterestRate)
	if err != nil {
		return nil, err
	}

	resp, err := h.checkEligibility.Execute(ctx, dto.CheckEligibilityRequest{
		CustomerID:   req.CustomerID,
		LoanAmount:   amount,
		InterestRate: rate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CheckEligibility", err)
	}

	return &CheckEligibilityResponse{
		CustomerID:            resp.CustomerID,
		Approval:              resp.Approval,
		InterestRate:          resp.InterestRate.String(),
		CorrectedInterestRate: resp.CorrectedInterestRate.String(),
		Tenure:                resp.Tenure,
		MonthlyInstallment:    resp.MonthlyInstallment.String(),
		Message:               resp.Message,
	}, nil
}

// CreateLoan originates a loan when the decision engine approves it.
func (h *CreditHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*CreateLoanResponse, error) {
	amount, rate, err := parseTerms(req.LoanAmount, req.InterestRate)
	if err != nil {
		return nil, err
	}

	resp, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		CustomerID:   req.CustomerID,
		LoanAmount:   amount,
		InterestRate: rate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateLoan", err)
	}

	return &CreateLoanResponse{
		LoanID:             resp.LoanID,
		CustomerID:         resp.CustomerID,
		LoanApproved:       resp.LoanApproved,
		Message:            resp.Message,
		MonthlyInstallment: resp.MonthlyInstallment.String(),
	}, nil
}

// GetLoan retrieves a loan by id.
func (h *CreditHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, req.LoanID)
	if err != nil {
		return nil, h.toStatus(ctx, "GetLoan", err)
	}

	return &GetLoanResponse{
		LoanID: resp.LoanID,
		Customer: LoanCustomer{
			ID:          resp.Customer.ID,
			FirstName:   resp.Customer.FirstName,
			LastName:    resp.Customer.LastName,
			PhoneNumber: resp.Customer.PhoneNumber,
			Age:         resp.Customer.Age,
		},
		LoanAmount:         resp.LoanAmount.String(),
		InterestRate:       resp.InterestRate.String(),
		MonthlyInstallment: resp.MonthlyInstallment.String(),
		Tenure:             resp.Tenure,
	}, nil
}

// ListCustomerLoans lists every loan a customer holds.
func (h *CreditHandler) ListCustomerLoans(ctx context.Context, req *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error) {
	items, err := h.listCustomerLoans.Execute(ctx, req.CustomerID)
	if err != nil {
		return nil, h.toStatus(ctx, "ListCustomerLoans", err)
	}

	loans := make([]CustomerLoanItem, len(items))
	for i, item := range items {
		loans[i] = CustomerLoanItem{
			LoanID:             item.LoanID,
			LoanAmount:         item.LoanAmount.String(),
			InterestRate:       item.InterestRate.String(),
			MonthlyInstallment: item.MonthlyInstallment.String(),
			RepaymentsLeft:     item.RepaymentsLeft,
		}
	}
	return &ListCustomerLoansResponse{Loans: loans}, nil
}

// RecordEMIPayment records one on-time installment payment.
func (h *CreditHandler) RecordEMIPayment(ctx context.Context, req *RecordEMIPaymentRequest) (*RecordEMIPaymentResponse, error) {
	resp, err := h.recordEMIPayment.Execute(ctx, dto.RecordEMIPaymentRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatus(ctx, "RecordEMIPayment", err)
	}

	return &RecordEMIPaymentResponse{
		LoanID:         resp.LoanID,
		EMIsPaidOnTime: resp.EMIsPaidOnTime,
		RepaymentsLeft: resp.RepaymentsLeft,
	}, nil
}

func parseTerms(amount, rate string) (decimal.Decimal, decimal.Decimal, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid loan amount: %v", err)
	}
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return decimal.Zero, decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid interest rate: %v", err)
	}
	return amt, r, nil
}

// toStatus maps domain errors onto gRPC status codes.
func (h *CreditHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, model.ErrCustomerNotFound):
		return status.Error(codes.NotFound, "Customer not found")
	case errors.Is(err, model.ErrLoanNotFound):
		return status.Error(codes.NotFound, "Loan not found")
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}
