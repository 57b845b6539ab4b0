package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the page for the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateNoReference:
		return m.renderNoReference()
	case StateLoading:
		return m.renderLoading()
	case StateLoadError:
		return m.renderLoadError()
	default:
		return m.renderReady()
	}
}

func (m Model) renderNoReference() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Error).
		Render("Access Denied")
	body := m.theme.Normal.Render("No application reference was provided.")
	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("Open the review link you received, or pass the reference on the command line.\n\nq: quit")

	card := m.theme.BorderedBox.
		BorderForeground(m.theme.Error).
		Render(title + "\n\n" + body + "\n" + hint)
	return m.center(card)
}

func (m Model) renderLoading() string {
	return m.center(fmt.Sprintf("%s Loading application %s...", m.spinner.View(), m.refID))
}

func (m Model) renderLoadError() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Error).
		Render("Could Not Load Application")
	body := m.theme.Normal.Render(m.loadErr)
	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("r: retry • q: quit")

	card := m.theme.BorderedBox.
		BorderForeground(m.theme.Error).
		Render(title + "\n\n" + body + "\n\n" + hint)
	return m.center(card)
}

func (m Model) renderReady() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	left := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		Render("MTB Loan Review")
	ref := m.theme.Badge.Render("Ref: " + m.refID)

	right := ""
	if m.bundle != nil {
		access := m.bundle.Access()
		if access.Name != "" {
			right = lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				Render("Reviewer: " + access.Name)
		}
	}

	line := left + "  " + ref
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(right) - 1
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(m.theme.Border).
		Width(m.width - 1).
		Render(line)
}

func (m Model) renderFooter() string {
	if m.form.IsModalOpen() {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render("Enter the OTP sent to the reviewer's mobile")
	}

	section := "decision"
	if m.zone == zoneReviews {
		section = "reviews"
	}
	status := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(fmt.Sprintf("[%s] shift+tab: switch section • ", section))
	return status + m.help.View(m.keymap)
}

// renderBody is the scrollable page content.
func (m Model) renderBody() string {
	sections := []string{
		m.profile.View(),
		m.loan.View(),
		m.reviews.View(),
		m.form.View(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
