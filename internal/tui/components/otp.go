package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

const (
	// OtpLength is the number of digits in a one-time passcode.
	OtpLength = 6
	// ResendWaitSeconds is how long the reviewer waits before resending.
	ResendWaitSeconds = 120
)

const (
	otpIncompleteText   = "Please enter the 6-digit OTP"
	otpVerifyFailedText = "Failed to verify OTP. Please try again."
	otpResendFailedText = "Failed to resend OTP. Please try again."
)

// OtpModalModel is the passcode confirmation dialog shown after an OTP
// has been generated for a pending decision. It is constructed fresh on
// every open, so all entry and countdown state starts clean.
type OtpModalModel struct {
	theme     themes.Theme
	action    model.Action
	message   string
	errText   string
	slots     [OtpLength]rune
	focus     int
	remaining int
	seq       int
	spinner   spinner.Model
	validate  func(seq int, otp string) tea.Cmd
	resend    func(seq int) tea.Cmd
	verifying bool
	resending bool
	verified  bool
	cancelled bool
	width     int
}

// NewOtpModal creates a modal for confirming the given action. The message
// is the guidance text returned by the generation call, and seq tags every
// asynchronous message so responses from a previously closed modal are
// ignored.
func NewOtpModal(theme themes.Theme, action model.Action, message string, seq int,
	validate func(seq int, otp string) tea.Cmd,
	resend func(seq int) tea.Cmd,
) OtpModalModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return OtpModalModel{
		theme:     theme,
		action:    action,
		message:   message,
		remaining: ResendWaitSeconds,
		seq:       seq,
		spinner:   s,
		validate:  validate,
		resend:    resend,
		width:     60,
	}
}

// Init starts the one-second resend countdown.
func (m OtpModalModel) Init() tea.Cmd {
	return m.tick()
}

func (m OtpModalModel) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return OtpCountdownTickMsg{Seq: seq}
	})
}

// Update handles key entry, countdown ticks and verification results.
func (m OtpModalModel) Update(msg tea.Msg) (OtpModalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case OtpCountdownTickMsg:
		if msg.Seq != m.seq || m.remaining <= 0 {
			return m, nil
		}
		m.remaining--
		if m.remaining > 0 {
			return m, m.tick()
		}
		return m, nil

	case OtpValidatedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.verifying = false
		switch {
		case msg.Err != nil:
			m.errText = otpVerifyFailedText
		case msg.Resp.OK():
			m.verified = true
		default:
			m.errText = msg.Resp.Message
			m.clearSlots()
		}
		return m, nil

	case OtpResentMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.resending = false
		if msg.Err != nil {
			m.errText = otpResendFailedText
			return m, nil
		}
		m.message = msg.Resp.Message
		if msg.Resp.OK() {
			m.errText = ""
			m.clearSlots()
			m.remaining = ResendWaitSeconds
			return m, m.tick()
		}
		m.errText = msg.Resp.Message
		return m, nil

	case spinner.TickMsg:
		if !m.verifying && !m.resending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m OtpModalModel) handleKey(msg tea.KeyMsg) (OtpModalModel, tea.Cmd) {
	if m.verifying {
		if msg.String() == "esc" {
			m.cancelled = true
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.cancelled = true
		return m, nil

	case "enter":
		return m.submit()

	case "backspace":
		if m.slots[m.focus] != 0 {
			m.slots[m.focus] = 0
		} else if m.focus > 0 {
			m.focus--
		}
		return m, nil

	case "left":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil

	case "right":
		if m.focus < OtpLength-1 {
			m.focus++
		}
		return m, nil

	case "r":
		if m.remaining == 0 && !m.resending {
			m.resending = true
			m.errText = ""
			return m, tea.Batch(m.resend(m.seq), m.spinner.Tick)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		return m.enterRunes(msg.Runes)
	}
	return m, nil
}

// enterRunes fills slots from the focused position. A single keystroke and
// a multi-character paste take the same path: non-digits are dropped, and
// entry stops at the last slot.
func (m OtpModalModel) enterRunes(runes []rune) (OtpModalModel, tea.Cmd) {
	entered := false
	for _, r := range runes {
		if r < '0' || r > '9' {
			continue
		}
		m.slots[m.focus] = r
		entered = true
		if m.focus < OtpLength-1 {
			m.focus++
		}
	}
	if !entered {
		return m, nil
	}
	m.errText = ""
	if m.filled() == OtpLength {
		return m.submit()
	}
	return m, nil
}

func (m OtpModalModel) submit() (OtpModalModel, tea.Cmd) {
	if m.verifying {
		return m, nil
	}
	if m.filled() < OtpLength {
		m.errText = otpIncompleteText
		return m, nil
	}
	m.verifying = true
	m.errText = ""
	return m, tea.Batch(m.validate(m.seq, m.Code()), m.spinner.Tick)
}

func (m OtpModalModel) filled() int {
	n := 0
	for _, r := range m.slots {
		if r != 0 {
			n++
		}
	}
	return n
}

func (m *OtpModalModel) clearSlots() {
	m.slots = [OtpLength]rune{}
	m.focus = 0
}

// Code returns the digits entered so far.
func (m OtpModalModel) Code() string {
	var b strings.Builder
	for _, r := range m.slots {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsVerified reports whether the passcode was accepted.
func (m OtpModalModel) IsVerified() bool {
	return m.verified
}

// IsCancelled reports whether the reviewer dismissed the modal.
func (m OtpModalModel) IsCancelled() bool {
	return m.cancelled
}

// Seq returns the generation counter this modal was opened with.
func (m OtpModalModel) Seq() int {
	return m.seq
}

// Resize updates the modal width.
func (m *OtpModalModel) Resize(width, _ int) {
	if width > 20 {
		m.width = width
	}
}

// View renders the modal.
func (m OtpModalModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)

	subtleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Muted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm OTP"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Confirming decision: %s", m.action.Label())))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Foreground).
			Width(m.width - 6).
			Render(m.message))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderSlots())
	b.WriteString("\n\n")

	switch {
	case m.verifying:
		b.WriteString(fmt.Sprintf("%s Verifying...", m.spinner.View()))
	case m.resending:
		b.WriteString(fmt.Sprintf("%s Resending...", m.spinner.View()))
	case m.errText != "":
		b.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Error).
			Render(m.errText))
	default:
		b.WriteString(m.renderCountdown())
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(m.helpLine()))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width)

	return border.Render(b.String())
}

func (m OtpModalModel) renderSlots() string {
	filledStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Primary).
		Padding(0, 1).
		Bold(true)
	emptyStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	focusStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(m.theme.Secondary).
		Padding(0, 1).
		Bold(true)

	cells := make([]string, 0, OtpLength)
	for i, r := range m.slots {
		ch := " "
		if r != 0 {
			ch = string(r)
		}
		style := emptyStyle
		switch {
		case i == m.focus && !m.verifying:
			style = focusStyle
		case r != 0:
			style = filledStyle
		}
		cells = append(cells, style.Render(ch))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m OtpModalModel) renderCountdown() string {
	if m.remaining > 0 {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render(fmt.Sprintf("Resend available in %d:%02d", m.remaining/60, m.remaining%60))
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.Secondary).
		Render("Press r to resend the OTP")
}

func (m OtpModalModel) helpLine() string {
	if m.remaining == 0 {
		return "0-9: enter • backspace: erase • enter: verify • r: resend • esc: cancel"
	}
	return "0-9: enter • backspace: erase • enter: verify • esc: cancel"
}
