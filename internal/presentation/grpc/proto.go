package grpc

// proto.go defines the gRPC server interface derived from credit/v1/credit.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is
// run, replace this file with the generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Amounts and rates travel as decimal strings on the wire.

type RegisterCustomerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Age           int    `json:"age"`
	MonthlyIncome string `json:"monthly_income"`
	PhoneNumber   string `json:"phone_number"`
}

type RegisterCustomerResponse struct {
	CustomerID    int64  `json:"customer_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	MonthlyIncome string `json:"monthly_income"`
	ApprovedLimit string `json:"approved_limit"`
	PhoneNumber   string `json:"phone_number"`
}

type CheckEligibilityRequest struct {
	CustomerID   int64  `json:"customer_id"`
	LoanAmount   string `json:"loan_amount"`
	InterestRate string `json:"interest_rate"`
	Tenure       int    `json:"tenure"`
}

type CheckEligibilityResponse struct {
	CustomerID            int64  `json:"customer_id"`
	Approval              bool   `json:"approval"`
	InterestRate          string `json:"interest_rate"`
	CorrectedInterestRate string `json:"corrected_interest_rate"`
	Tenure                int    `json:"tenure"`
	MonthlyInstallment    string `json:"monthly_installment"`
	Message               string `json:"message,omitempty"`
}

type CreateLoanRequest struct {
	CustomerID   int64  `json:"customer_id"`
	LoanAmount   string `json:"loan_amount"`
	InterestRate string `json:"interest_rate"`
	Tenure       int    `json:"tenure"`
}

type CreateLoanResponse struct {
	LoanID             *int64 `json:"loan_id"`
	CustomerID         int64  `json:"customer_id"`
	LoanApproved       bool   `json:"loan_approved"`
	Message            string `json:"message"`
	MonthlyInstallment string `json:"monthly_installment"`
}

type GetLoanRequest struct {
	LoanID int64 `json:"loan_id"`
}

type LoanCustomer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type GetLoanResponse struct {
	LoanID             int64        `json:"loan_id"`
	Customer           LoanCustomer `json:"customer"`
	LoanAmount         string       `json:"loan_amount"`
	InterestRate       string       `json:"interest_rate"`
	MonthlyInstallment string       `json:"monthly_installment"`
	Tenure             int          `json:"tenure"`
}

type ListCustomerLoansRequest struct {
	CustomerID int64 `json:"customer_id"`
}

type CustomerLoanItem struct {
	LoanID             int64  `json:"loan_id"`
	LoanAmount         string `json:"loan_amount"`
	InterestRate       string `json:"interest_rate"`
	MonthlyInstallment string `json:"monthly_installment"`
	RepaymentsLeft     int    `json:"repayments_left"`
}

type ListCustomerLoansResponse struct {
	Loans []CustomerLoanItem `json:"loans"`
}

type RecordEMIPaymentRequest struct {
	LoanID int64 `json:"loan_id"`
}

type RecordEMIPaymentResponse struct {
	LoanID         int64 `json:"loan_id"`
	EMIsPaidOnTime int   `json:"emis_paid_on_time"`
	RepaymentsLeft int   `json:"repayments_left"`
}

// CreditServiceServer is the server API for CreditService.
// It mirrors the proto-generated interface from credit.v1.CreditService.
type CreditServiceServer interface {
	RegisterCustomer(context.Context, *RegisterCustomerRequest) (*RegisterCustomerResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	ListCustomerLoans(context.Context, *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error)
	RecordEMIPayment(context.Context, *RecordEMIPaymentRequest) (*RecordEMIPaymentResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) RegisterCustomer(context.Context, *RegisterCustomerRequest) (*RegisterCustomerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterCustomer not implemented")
}
func (UnimplementedCreditServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}
func (UnimplementedCreditServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedCreditServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedCreditServiceServer) ListCustomerLoans(context.Context, *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCustomerLoans not implemented")
}
func (UnimplementedCreditServiceServer) RecordEMIPayment(context.Context, *RecordEMIPaymentRequest) (*RecordEMIPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordEMIPayment not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterCustomer", Handler: _CreditService_RegisterCustomer_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CheckEligibility", Handler: _CreditService_CheckEligibility_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CreateLoan", Handler: _CreditService_CreateLoan_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _CreditService_GetLoan_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "ListCustomerLoans", Handler: _CreditService_ListCustomerLoans_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "RecordEMIPayment", Handler: _CreditService_RecordEMIPayment_Handler},   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RegisterCustomer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterCustomerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RegisterCustomer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/RegisterCustomer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RegisterCustomer(ctx, req.(*RegisterCustomerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_CheckEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).CheckEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/CheckEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).CheckEligibility(ctx, req.(*CheckEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ListCustomerLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCustomerLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ListCustomerLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/ListCustomerLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ListCustomerLoans(ctx, req.(*ListCustomerLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RecordEMIPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordEMIPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RecordEMIPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/RecordEMIPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RecordEMIPayment(ctx, req.(*RecordEMIPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
