package gateway

import (
	"context"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
)

// MockGateway is a mock implementation of ReviewGateway for testing.
type MockGateway struct {
	// Functions that can be set by tests to control behavior
	FetchBundleFn func(ctx context.Context, refID string) (*BundleResponse, error)
	GenerateOTPFn func(ctx context.Context, refID, empID string, action model.Action, remarks string) (*OTPResponse, error)
	ResendOTPFn   func(ctx context.Context, refID, empID string) (*OTPResponse, error)
	ValidateOTPFn func(ctx context.Context, refID, empID, otp string) (*OTPResponse, error)

	// Call tracking
	FetchBundleCalls []string
	GenerateOTPCalls []GenerateOTPCall
	ResendOTPCalls   []ResendOTPCall
	ValidateOTPCalls []ValidateOTPCall
}

// GenerateOTPCall records the parameters of a GenerateOTP call.
type GenerateOTPCall struct {
	RefID   string
	EmpID   string
	Action  model.Action
	Remarks string
}

// ResendOTPCall records the parameters of a ResendOTP call.
type ResendOTPCall struct {
	RefID string
	EmpID string
}

// ValidateOTPCall records the parameters of a ValidateOTP call.
type ValidateOTPCall struct {
	RefID string
	EmpID string
	OTP   string
}

// NewMockGateway creates a new mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// FetchBundle implements ReviewGateway.FetchBundle.
func (m *MockGateway) FetchBundle(ctx context.Context, refID string) (*BundleResponse, error) {
	m.FetchBundleCalls = append(m.FetchBundleCalls, refID)

	if m.FetchBundleFn != nil {
		return m.FetchBundleFn(ctx, refID)
	}
	return &BundleResponse{Status: "200"}, nil
}

// GenerateOTP implements ReviewGateway.GenerateOTP.
func (m *MockGateway) GenerateOTP(ctx context.Context, refID, empID string, action model.Action, remarks string) (*OTPResponse, error) {
	m.GenerateOTPCalls = append(m.GenerateOTPCalls, GenerateOTPCall{
		RefID:   refID,
		EmpID:   empID,
		Action:  action,
		Remarks: remarks,
	})

	if m.GenerateOTPFn != nil {
		return m.GenerateOTPFn(ctx, refID, empID, action, remarks)
	}
	return &OTPResponse{Status: "200", Message: "OTP sent"}, nil
}

// ResendOTP implements ReviewGateway.ResendOTP.
func (m *MockGateway) ResendOTP(ctx context.Context, refID, empID string) (*OTPResponse, error) {
	m.ResendOTPCalls = append(m.ResendOTPCalls, ResendOTPCall{RefID: refID, EmpID: empID})

	if m.ResendOTPFn != nil {
		return m.ResendOTPFn(ctx, refID, empID)
	}
	return &OTPResponse{Status: "200", Message: "OTP resent"}, nil
}

// ValidateOTP implements ReviewGateway.ValidateOTP.
func (m *MockGateway) ValidateOTP(ctx context.Context, refID, empID, otp string) (*OTPResponse, error) {
	m.ValidateOTPCalls = append(m.ValidateOTPCalls, ValidateOTPCall{RefID: refID, EmpID: empID, OTP: otp})

	if m.ValidateOTPFn != nil {
		return m.ValidateOTPFn(ctx, refID, empID, otp)
	}
	return &OTPResponse{Status: "200", Message: "OTP verified"}, nil
}

// Reset clears all call tracking.
func (m *MockGateway) Reset() {
	m.FetchBundleCalls = nil
	m.GenerateOTPCalls = nil
	m.ResendOTPCalls = nil
	m.ValidateOTPCalls = nil
}

// Ensure MockGateway implements the gateway contract.
var _ ReviewGateway = (*MockGateway)(nil)
