package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

// ProfileModel renders the applicant profile card.
type ProfileModel struct {
	theme    themes.Theme
	employee model.Employee
	width    int
}

// NewProfile creates a profile card for the given applicant.
func NewProfile(theme themes.Theme, employee model.Employee) ProfileModel {
	return ProfileModel{
		theme:    theme,
		employee: employee,
		width:    60,
	}
}

// Resize updates the card width.
func (m *ProfileModel) Resize(width, _ int) {
	if width > 20 {
		m.width = width
	}
}

// View renders the card.
func (m ProfileModel) View() string {
	e := m.employee

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(e.FullName))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(e.Designation + " • " + e.Department))
	b.WriteString("\n")
	b.WriteString(m.theme.Badge.Render("App ID: " + e.ApplicationID))
	b.WriteString("  ")
	b.WriteString(m.theme.Badge.Render("Emp ID: " + e.EmployeeID))
	if e.EmployeeType != "" {
		b.WriteString("  ")
		b.WriteString(m.theme.Badge.Render(e.EmployeeType))
	}
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Date of Birth", model.FormatDate(e.DateOfBirth)},
		{"NID", e.NID},
		{"Qualification", e.Qualification},
		{"Marital Status", e.MaritalStatus},
		{"Division Head", e.DivisionHead},
		{"Joining Date", model.FormatDate(e.JoiningDate)},
		{"Application Date", model.FormatDate(e.ApplicationDate)},
		{"Organization", e.OrgName},
		{"Mobile", e.MobileNumber},
		{"Email", e.Email},
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(18)
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(m.theme.Normal.Render(row.value))
		b.WriteString("\n")
	}

	return m.theme.BorderedBox.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}
