package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/components"
)

const gatewayTimeout = 30 * time.Second

// loadBundle fetches the application bundle for the page's reference.
func (m Model) loadBundle() tea.Cmd {
	gw, refID := m.gateway, m.refID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()

		resp, err := gw.FetchBundle(ctx, refID)
		if err != nil {
			return bundleLoadedMsg{err: err}
		}
		if !resp.OK() {
			message := resp.Message
			if message == "" {
				message = "The loan service reported a failure."
			}
			return bundleLoadedMsg{err: common.NewUserError(message, common.ErrGatewayStatus)}
		}
		bundle, err := gateway.ToBundle(refID, resp)
		if err != nil {
			return bundleLoadedMsg{err: err}
		}
		return bundleLoadedMsg{bundle: &bundle}
	}
}

// gatewayCmds wires the decision form's OTP round trips to the gateway.
// The reviewer identity comes from the fetched bundle, so this is built
// once the bundle has loaded.
func (m Model) gatewayCmds(empID string) components.GatewayCmds {
	gw, refID := m.gateway, m.refID
	return components.GatewayCmds{
		Generate: func(seq int, action model.Action, remarks string) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
				defer cancel()
				resp, err := gw.GenerateOTP(ctx, refID, empID, action, remarks)
				return components.OtpGeneratedMsg{Resp: resp, Err: err, Seq: seq}
			}
		},
		Validate: func(seq int, otp string) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
				defer cancel()
				resp, err := gw.ValidateOTP(ctx, refID, empID, otp)
				return components.OtpValidatedMsg{Resp: resp, Err: err, Seq: seq}
			}
		},
		Resend: func(seq int) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
				defer cancel()
				resp, err := gw.ResendOTP(ctx, refID, empID)
				return components.OtpResentMsg{Resp: resp, Err: err, Seq: seq}
			}
		},
	}
}
