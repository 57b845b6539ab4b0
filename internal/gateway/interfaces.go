package gateway

import (
	"context"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
)

// ReviewGateway defines the contract for the four backend operations behind
// the review page. This interface allows for easy mocking in tests.
type ReviewGateway interface {
	// FetchBundle loads the full application bundle for one reference.
	FetchBundle(ctx context.Context, refID string) (*BundleResponse, error)
	// GenerateOTP asks the backend to issue an OTP for the chosen action.
	GenerateOTP(ctx context.Context, refID, empID string, action model.Action, remarks string) (*OTPResponse, error)
	// ResendOTP asks the backend to re-issue the pending OTP.
	ResendOTP(ctx context.Context, refID, empID string) (*OTPResponse, error)
	// ValidateOTP checks the 6-digit code and, on success, records the decision
	// server-side.
	ValidateOTP(ctx context.Context, refID, empID, otp string) (*OTPResponse, error)
}
