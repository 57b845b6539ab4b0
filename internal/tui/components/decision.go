package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

const remarksRequiredText = "Remarks are mandatory before making a decision"

const otpGenerateFailedText = "Failed to generate OTP. Please try again."

// GatewayCmds builds the asynchronous commands the decision form needs.
// The page wires these to the review gateway so the form never talks to
// the network directly.
type GatewayCmds struct {
	Generate func(seq int, action model.Action, remarks string) tea.Cmd
	Validate func(seq int, otp string) tea.Cmd
	Resend   func(seq int) tea.Cmd
}

type decisionFocus int

const (
	focusRemarks decisionFocus = iota
	focusActions
)

// DecisionFormModel collects mandatory remarks, lets the reviewer pick
// approve or reject, and drives the OTP confirmation modal. The committed
// result is surfaced to the page, which owns the decision record.
type DecisionFormModel struct {
	theme   themes.Theme
	cmds    GatewayCmds
	remarks textarea.Model
	spinner spinner.Model
	modal   OtpModalModel

	errText       string
	focus         decisionFocus
	cursor        int
	seq           int
	pendingAction model.Action
	resultAction  model.Action
	resultRemarks string
	decision      model.Decision

	focused    bool
	generating bool
	modalOpen  bool
	committed  bool
	width      int
}

// NewDecisionForm creates the form in its idle state.
func NewDecisionForm(theme themes.Theme, cmds GatewayCmds) DecisionFormModel {
	ta := textarea.New()
	ta.Placeholder = "Write your remarks here..."
	ta.CharLimit = 500
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return DecisionFormModel{
		theme:    theme,
		cmds:     cmds,
		remarks:  ta,
		spinner:  s,
		decision: model.NewDecision(),
		focused:  true,
		width:    60,
	}
}

// Update handles form input and the OTP round trips.
func (m DecisionFormModel) Update(msg tea.Msg) (DecisionFormModel, tea.Cmd) {
	if m.decision.Decided() {
		return m, nil
	}

	if m.modalOpen {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case OtpGeneratedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.generating = false
		switch {
		case msg.Err != nil:
			m.errText = otpGenerateFailedText
			m.pendingAction = ""
		case msg.Resp.OK():
			m.modal = NewOtpModal(m.theme, m.pendingAction, msg.Resp.Message, m.seq,
				m.cmds.Validate, m.cmds.Resend)
			m.modal.Resize(m.width, 0)
			m.modalOpen = true
			return m, m.modal.Init()
		default:
			m.errText = msg.Resp.Message
			m.pendingAction = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m DecisionFormModel) updateModal(msg tea.Msg) (DecisionFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)

	if m.modal.IsVerified() {
		m.committed = true
		m.resultAction = m.pendingAction
		m.resultRemarks = strings.TrimSpace(m.remarks.Value())
		m.modalOpen = false
		return m, cmd
	}
	if m.modal.IsCancelled() {
		// Bump the counter so responses addressed to the closed modal
		// are dropped. Remarks survive the cancellation.
		m.seq++
		m.modalOpen = false
		m.pendingAction = ""
		m.focus = focusRemarks
		m.remarks.Focus()
	}
	return m, cmd
}

func (m DecisionFormModel) handleKey(msg tea.KeyMsg) (DecisionFormModel, tea.Cmd) {
	if !m.focused || m.generating {
		return m, nil
	}

	switch msg.String() {
	case "tab":
		if m.focus == focusRemarks {
			m.focus = focusActions
			m.remarks.Blur()
		} else {
			m.focus = focusRemarks
			m.remarks.Focus()
		}
		return m, nil
	}

	if m.focus == focusActions {
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < 1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == 0 {
				return m.choose(model.ActionApprove)
			}
			return m.choose(model.ActionReject)
		case "a":
			return m.choose(model.ActionApprove)
		case "r":
			return m.choose(model.ActionReject)
		}
		return m, nil
	}

	if msg.String() == "esc" {
		m.focus = focusActions
		m.remarks.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.remarks, cmd = m.remarks.Update(msg)
	if strings.TrimSpace(m.remarks.Value()) != "" && m.errText == remarksRequiredText {
		m.errText = ""
	}
	return m, cmd
}

func (m DecisionFormModel) choose(action model.Action) (DecisionFormModel, tea.Cmd) {
	if strings.TrimSpace(m.remarks.Value()) == "" {
		m.errText = remarksRequiredText
		m.focus = focusRemarks
		m.remarks.Focus()
		return m, nil
	}
	m.errText = ""
	m.generating = true
	m.pendingAction = action
	m.seq++
	return m, tea.Batch(
		m.cmds.Generate(m.seq, action, strings.TrimSpace(m.remarks.Value())),
		m.spinner.Tick,
	)
}

// Result returns the confirmed action and remarks once the OTP has been
// verified. The page records the decision and hands it back through
// WithDecision, which clears the pending result.
func (m DecisionFormModel) Result() (model.Action, string, bool) {
	return m.resultAction, m.resultRemarks, m.committed
}

// WithDecision returns a copy of the form rendering the given decision.
func (m DecisionFormModel) WithDecision(d model.Decision) DecisionFormModel {
	m.decision = d
	m.committed = false
	return m
}

// IsModalOpen reports whether the OTP dialog is showing.
func (m DecisionFormModel) IsModalOpen() bool {
	return m.modalOpen
}

// IsBusy reports whether a gateway call is in flight.
func (m DecisionFormModel) IsBusy() bool {
	return m.generating
}

// Focus directs key input to the form.
func (m *DecisionFormModel) Focus() {
	m.focused = true
	if m.focus == focusRemarks {
		m.remarks.Focus()
	}
}

// Blur stops the form from handling key input.
func (m *DecisionFormModel) Blur() {
	m.focused = false
	m.remarks.Blur()
}

// Focused reports whether the form is receiving key input.
func (m DecisionFormModel) Focused() bool {
	return m.focused
}

// Resize updates the form and modal width.
func (m *DecisionFormModel) Resize(width, height int) {
	if width > 20 {
		m.width = width
		m.remarks.SetWidth(width - 8)
	}
	m.modal.Resize(width, height)
}

// View renders the decision section: the decided card once a decision is
// recorded, the OTP modal while confirming, and the remarks form otherwise.
func (m DecisionFormModel) View() string {
	if m.decision.Decided() {
		return m.renderDecided()
	}
	if m.modalOpen {
		return m.modal.View()
	}
	return m.renderForm()
}

func (m DecisionFormModel) renderForm() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Decision"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Remarks (mandatory)"))
	b.WriteString("\n")
	b.WriteString(m.remarks.View())
	b.WriteString("\n\n")

	if m.errText != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(m.theme.Error).
			Render(m.errText))
		b.WriteString("\n\n")
	}

	if m.generating {
		b.WriteString(fmt.Sprintf("%s Generating OTP...", m.spinner.View()))
	} else {
		b.WriteString(m.renderButtons())
	}

	box := m.theme.BorderedBox.Width(m.width)
	if m.focused {
		box = box.BorderForeground(m.theme.Primary)
	}
	return box.Render(b.String())
}

func (m DecisionFormModel) renderButtons() string {
	approve := lipgloss.NewStyle().
		Foreground(m.theme.Foreground).
		Background(m.theme.Success).
		Padding(0, 2).
		Bold(true)
	reject := lipgloss.NewStyle().
		Foreground(m.theme.Foreground).
		Background(m.theme.Error).
		Padding(0, 2).
		Bold(true)
	dim := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Padding(0, 2)

	approveBtn := dim.Render("Approve")
	rejectBtn := dim.Render("Reject")
	if m.focus == focusActions {
		if m.cursor == 0 {
			approveBtn = approve.Render("Approve")
		} else {
			rejectBtn = reject.Render("Reject")
		}
	}

	hint := "tab: switch focus"
	if m.focus == focusActions {
		hint = "a: approve • r: reject • enter: select • tab: edit remarks"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, approveBtn, "  ", rejectBtn) +
		"\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(hint)
}

func (m DecisionFormModel) renderDecided() string {
	icon := themes.GetStatusIcon(string(m.decision.Status))
	color := m.theme.Success
	verdict := "Approved"
	if m.decision.Status == model.DecisionRejected {
		color = m.theme.Error
		verdict = "Rejected"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(fmt.Sprintf("%s Application %s", icon, verdict)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Normal.Render(fmt.Sprintf("By %s on %s",
		m.decision.DecidedBy, m.decision.DecidedAt)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Remarks: %s", m.decision.Remarks)))

	return m.theme.BorderedBox.Width(m.width).BorderForeground(color).Render(b.String())
}
