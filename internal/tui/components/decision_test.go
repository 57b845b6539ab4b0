package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

type gatewayCallLog struct {
	generates []model.Action
	validates []string
	resends   int
}

func newTestForm(t *testing.T) (DecisionFormModel, *gatewayCallLog) {
	t.Helper()
	log := &gatewayCallLog{}
	cmds := GatewayCmds{
		Generate: func(seq int, action model.Action, _ string) tea.Cmd {
			log.generates = append(log.generates, action)
			return func() tea.Msg {
				return OtpGeneratedMsg{Seq: seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent"}}
			}
		},
		Validate: func(seq int, otp string) tea.Cmd {
			log.validates = append(log.validates, otp)
			return func() tea.Msg {
				return OtpValidatedMsg{Seq: seq, Resp: &gateway.OTPResponse{Status: "200"}}
			}
		},
		Resend: func(seq int) tea.Cmd {
			log.resends++
			return func() tea.Msg {
				return OtpResentMsg{Seq: seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent again"}}
			}
		},
	}
	return NewDecisionForm(themes.Default, cmds), log
}

func typeRemarks(m DecisionFormModel, text string) DecisionFormModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func toActions(m DecisionFormModel) DecisionFormModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return m
}

func TestDecisionFormRequiresRemarks(t *testing.T) {
	m, log := newTestForm(t)

	m = toActions(m)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Nil(t, cmd)
	assert.Equal(t, "Remarks are mandatory before making a decision", m.errText)
	assert.Empty(t, log.generates)
}

func TestDecisionFormGeneratesOtp(t *testing.T) {
	m, log := newTestForm(t)
	m = typeRemarks(m, "Verified all documents")
	m = toActions(m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)
	assert.True(t, m.IsBusy())
	assert.Equal(t, []model.Action{model.ActionApprove}, log.generates)
}

func TestDecisionFormOpensModalOnGeneration(t *testing.T) {
	m, _ := newTestForm(t)
	m = typeRemarks(m, "ok to proceed")
	m = toActions(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	m, cmd := m.Update(OtpGeneratedMsg{Seq: m.seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent"}})
	require.NotNil(t, cmd)
	assert.True(t, m.IsModalOpen())
	assert.False(t, m.IsBusy())
}

func TestDecisionFormGenerationFailure(t *testing.T) {
	tests := []struct {
		name    string
		msg     OtpGeneratedMsg
		wantErr string
	}{
		{
			name:    "transport failure",
			msg:     OtpGeneratedMsg{Err: assert.AnError},
			wantErr: "Failed to generate OTP. Please try again.",
		},
		{
			name:    "backend rejection",
			msg:     OtpGeneratedMsg{Resp: &gateway.OTPResponse{Status: "500", Message: "OTP service unavailable"}},
			wantErr: "OTP service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestForm(t)
			m = typeRemarks(m, "checked")
			m = toActions(m)
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

			tt.msg.Seq = m.seq
			m, _ = m.Update(tt.msg)
			assert.False(t, m.IsModalOpen())
			assert.False(t, m.IsBusy())
			assert.Equal(t, tt.wantErr, m.errText)
		})
	}
}

func TestDecisionFormCommitsAfterVerification(t *testing.T) {
	m, log := newTestForm(t)
	m = typeRemarks(m, "All documents verified")
	m = toActions(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = m.Update(OtpGeneratedMsg{Seq: m.seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent"}})
	require.True(t, m.IsModalOpen())

	for _, r := range "123456" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, []string{"123456"}, log.validates)

	m, _ = m.Update(OtpValidatedMsg{Seq: m.seq, Resp: &gateway.OTPResponse{Status: "200"}})
	action, remarks, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, model.ActionApprove, action)
	assert.Equal(t, "All documents verified", remarks)
	assert.False(t, m.IsModalOpen())
}

func TestDecisionFormCancelPreservesRemarks(t *testing.T) {
	m, _ := newTestForm(t)
	m = typeRemarks(m, "still reviewing")
	m = toActions(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = m.Update(OtpGeneratedMsg{Seq: m.seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent"}})
	require.True(t, m.IsModalOpen())
	staleSeq := m.seq

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.IsModalOpen())
	assert.Equal(t, "still reviewing", m.remarks.Value())

	// A response addressed to the dismissed modal changes nothing.
	m, _ = m.Update(OtpValidatedMsg{Seq: staleSeq, Resp: &gateway.OTPResponse{Status: "200"}})
	_, _, ok := m.Result()
	assert.False(t, ok)
}

func TestDecisionFormReadOnlyOnceDecided(t *testing.T) {
	m, log := newTestForm(t)
	decision := model.NewDecision()
	require.NoError(t, decision.Decide(model.ActionApprove, "Mr. Shahid Mahmud", "fine", time.Now()))
	m = m.WithDecision(decision)

	m = toActions(m)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)
	assert.Empty(t, log.generates)
	assert.Contains(t, m.View(), "Approved")
}

func TestDecisionFormBlurIgnoresKeys(t *testing.T) {
	m, _ := newTestForm(t)
	m.Blur()

	m = typeRemarks(m, "should not register")
	assert.Equal(t, "", m.remarks.Value())
}
