package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

func newTestModal(t *testing.T) (OtpModalModel, *[]string, *int) {
	t.Helper()
	var validated []string
	var resends int
	validate := func(seq int, otp string) tea.Cmd {
		validated = append(validated, otp)
		return func() tea.Msg {
			return OtpValidatedMsg{Seq: seq, Resp: &gateway.OTPResponse{Status: "200"}}
		}
	}
	resend := func(seq int) tea.Cmd {
		resends++
		return func() tea.Msg {
			return OtpResentMsg{Seq: seq, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent again"}}
		}
	}
	return NewOtpModal(themes.Default, model.ActionApprove, "OTP sent to your mobile", 1, validate, resend), &validated, &resends
}

func typeDigits(m OtpModalModel, digits string) (OtpModalModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range digits {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m, cmd
}

func TestOtpModalDigitEntry(t *testing.T) {
	m, _, _ := newTestModal(t)

	m, _ = typeDigits(m, "123")
	assert.Equal(t, "123", m.Code())
	assert.Equal(t, 3, m.focus)
}

func TestOtpModalRejectsNonDigits(t *testing.T) {
	m, _, _ := newTestModal(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, "", m.Code())
	assert.Equal(t, 0, m.focus)
}

func TestOtpModalAutoSubmitsWhenFull(t *testing.T) {
	m, validated, _ := newTestModal(t)

	m, cmd := typeDigits(m, "123456")
	require.NotNil(t, cmd)
	assert.True(t, m.verifying)
	assert.Equal(t, []string{"123456"}, *validated)
}

func TestOtpModalPasteDistributesDigits(t *testing.T) {
	m, validated, _ := newTestModal(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12a34b56")})
	require.NotNil(t, cmd)
	assert.Equal(t, "123456", m.Code())
	assert.Equal(t, []string{"123456"}, *validated)
}

func TestOtpModalPasteClampsAtLastSlot(t *testing.T) {
	m, validated, _ := newTestModal(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("123456789")})
	assert.Equal(t, "123459", m.Code())
	assert.Equal(t, []string{"123459"}, *validated)
}

func TestOtpModalBackspace(t *testing.T) {
	m, _, _ := newTestModal(t)
	m, _ = typeDigits(m, "12")
	require.Equal(t, 2, m.focus)

	// Focused slot is empty: focus moves back.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 1, m.focus)
	assert.Equal(t, "12", m.Code())

	// Focused slot holds a digit: the digit is erased.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 1, m.focus)
	assert.Equal(t, "1", m.Code())
}

func TestOtpModalIncompleteSubmit(t *testing.T) {
	m, validated, _ := newTestModal(t)
	m, _ = typeDigits(m, "123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Please enter the 6-digit OTP", m.errText)
	assert.Empty(t, *validated)
}

func TestOtpModalVerifySuccess(t *testing.T) {
	m, _, _ := newTestModal(t)
	m, _ = typeDigits(m, "123456")

	m, _ = m.Update(OtpValidatedMsg{Seq: 1, Resp: &gateway.OTPResponse{Status: "200"}})
	assert.True(t, m.IsVerified())
	assert.False(t, m.verifying)
}

func TestOtpModalVerifyRejected(t *testing.T) {
	m, _, _ := newTestModal(t)
	m, _ = typeDigits(m, "123456")

	m, _ = m.Update(OtpValidatedMsg{Seq: 1, Resp: &gateway.OTPResponse{Status: "400", Message: "Invalid OTP"}})
	assert.False(t, m.IsVerified())
	assert.Equal(t, "Invalid OTP", m.errText)
	assert.Equal(t, "", m.Code())
	assert.Equal(t, 0, m.focus)
}

func TestOtpModalVerifyTransportFailure(t *testing.T) {
	m, _, _ := newTestModal(t)
	m, _ = typeDigits(m, "123456")

	m, _ = m.Update(OtpValidatedMsg{Seq: 1, Err: assert.AnError})
	assert.False(t, m.IsVerified())
	assert.Equal(t, "Failed to verify OTP. Please try again.", m.errText)
	// Entered digits survive a transport failure.
	assert.Equal(t, "123456", m.Code())
}

func TestOtpModalIgnoresStaleMessages(t *testing.T) {
	m, _, _ := newTestModal(t)
	m, _ = typeDigits(m, "123456")

	m, _ = m.Update(OtpValidatedMsg{Seq: 99, Resp: &gateway.OTPResponse{Status: "200"}})
	assert.False(t, m.IsVerified())
	assert.True(t, m.verifying)

	before := m.remaining
	m, _ = m.Update(OtpCountdownTickMsg{Seq: 99})
	assert.Equal(t, before, m.remaining)
}

func TestOtpModalCountdown(t *testing.T) {
	m, _, resends := newTestModal(t)
	require.Equal(t, ResendWaitSeconds, m.remaining)

	m, cmd := m.Update(OtpCountdownTickMsg{Seq: 1})
	assert.Equal(t, ResendWaitSeconds-1, m.remaining)
	assert.NotNil(t, cmd)

	// Resend is gated while the countdown runs.
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)
	assert.Zero(t, *resends)

	m.remaining = 1
	m, cmd = m.Update(OtpCountdownTickMsg{Seq: 1})
	assert.Equal(t, 0, m.remaining)
	assert.Nil(t, cmd)
}

func TestOtpModalResendAfterCountdown(t *testing.T) {
	m, _, resends := newTestModal(t)
	m.remaining = 0
	m, _ = typeDigits(m, "123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.True(t, m.resending)
	assert.Equal(t, 1, *resends)

	m, cmd = m.Update(OtpResentMsg{Seq: 1, Resp: &gateway.OTPResponse{Status: "200", Message: "OTP sent again"}})
	require.NotNil(t, cmd)
	assert.False(t, m.resending)
	assert.Equal(t, "OTP sent again", m.message)
	assert.Equal(t, ResendWaitSeconds, m.remaining)
	assert.Equal(t, "", m.Code())
}

func TestOtpModalResendFailureKeepsCountdownAtZero(t *testing.T) {
	m, _, _ := newTestModal(t)
	m.remaining = 0
	m.resending = true

	m, cmd := m.Update(OtpResentMsg{Seq: 1, Resp: &gateway.OTPResponse{Status: "500", Message: "Too many attempts"}})
	assert.Nil(t, cmd)
	assert.Equal(t, "Too many attempts", m.errText)
	assert.Equal(t, 0, m.remaining)
}

func TestOtpModalCancel(t *testing.T) {
	m, _, _ := newTestModal(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.True(t, m.IsCancelled())
}
