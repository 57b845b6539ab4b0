package components

import "github.com/jahidblackrose/mtb-loan-approver/internal/gateway"

// OtpGeneratedMsg carries the result of an OTP generation request.
type OtpGeneratedMsg struct {
	Resp *gateway.OTPResponse
	Err  error
	Seq  int
}

// OtpResentMsg carries the result of an OTP resend request.
type OtpResentMsg struct {
	Resp *gateway.OTPResponse
	Err  error
	Seq  int
}

// OtpValidatedMsg carries the result of an OTP validation request.
type OtpValidatedMsg struct {
	Resp *gateway.OTPResponse
	Err  error
	Seq  int
}

// OtpCountdownTickMsg advances the resend countdown by one second.
type OtpCountdownTickMsg struct {
	Seq int
}
