package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

// LoanModel renders the requested facility card: the amount hero, the
// terms grid and the purpose badges.
type LoanModel struct {
	theme themes.Theme
	loan  model.Loan
	width int
}

// NewLoan creates a facility card for the requested loan.
func NewLoan(theme themes.Theme, loan model.Loan) LoanModel {
	return LoanModel{
		theme: theme,
		loan:  loan,
		width: 60,
	}
}

// Resize updates the card width.
func (m *LoanModel) Resize(width, _ int) {
	if width > 20 {
		m.width = width
	}
}

// View renders the card.
func (m LoanModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Loan Details"))
	b.WriteString("\n")

	hero := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)
	b.WriteString(hero.Render("BDT " + model.FormatAmountBDT(m.loan.Amount)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Requested Amount"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Tenor", m.loan.TenorMonths + " months"},
		{"Monthly EMI", "BDT " + model.FormatEMI(m.loan.MonthlyEMI)},
		{"Interest Rate", m.loan.InterestRate + "%"},
		{"DBR", m.loan.DBR + "%"},
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(18)
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(m.theme.Normal.Render(row.value))
		b.WriteString("\n")
	}

	if purposes := m.loan.Purposes(); len(purposes) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Purpose"))
		b.WriteString("\n")
		badges := make([]string, 0, len(purposes))
		for _, p := range purposes {
			badges = append(badges, m.theme.Badge.Render(p.Label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(badges, " ")))
	}

	return m.theme.BorderedBox.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}
