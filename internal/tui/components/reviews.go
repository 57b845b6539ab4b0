package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

// ReviewsModel renders the operational review trail. The reviewer can move
// a cursor through the entries and expand one to see remarks, attachments
// and the CIB result.
type ReviewsModel struct {
	theme    themes.Theme
	reviews  []model.Review
	expanded map[int]bool
	cursor   int
	focused  bool
	width    int
}

// NewReviews creates the review trail component.
func NewReviews(theme themes.Theme, reviews []model.Review) ReviewsModel {
	return ReviewsModel{
		theme:    theme,
		reviews:  reviews,
		expanded: make(map[int]bool),
		width:    60,
	}
}

// Update moves the cursor and toggles expansion.
func (m ReviewsModel) Update(msg tea.Msg) (ReviewsModel, tea.Cmd) {
	if !m.focused || len(m.reviews) == 0 {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "j", "down":
			if m.cursor < len(m.reviews)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ":
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	}
	return m, nil
}

// Focus directs key input to the trail.
func (m *ReviewsModel) Focus() {
	m.focused = true
}

// Blur stops the trail from handling key input.
func (m *ReviewsModel) Blur() {
	m.focused = false
}

// Focused reports whether the trail is receiving key input.
func (m ReviewsModel) Focused() bool {
	return m.focused
}

// Cursor returns the highlighted entry index.
func (m ReviewsModel) Cursor() int {
	return m.cursor
}

// IsExpanded reports whether the entry at i is expanded.
func (m ReviewsModel) IsExpanded(i int) bool {
	return m.expanded[i]
}

// Resize updates the trail width.
func (m *ReviewsModel) Resize(width, _ int) {
	if width > 20 {
		m.width = width
	}
}

// View renders the trail.
func (m ReviewsModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Review Trail (%d)", len(m.reviews))))
	b.WriteString("\n")

	if len(m.reviews) == 0 {
		b.WriteString(m.theme.Subtitle.Render("No reviews recorded yet."))
		return m.theme.BorderedBox.Width(m.width).Render(b.String())
	}

	for i, review := range m.reviews {
		b.WriteString(m.renderEntry(i, review))
		if i < len(m.reviews)-1 {
			b.WriteString("\n")
		}
	}

	box := m.theme.BorderedBox.Width(m.width)
	if m.focused {
		box = box.BorderForeground(m.theme.Primary)
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func (m ReviewsModel) renderEntry(i int, review model.Review) string {
	icon := themes.GetStatusIcon(string(review.Status))
	statusStyle := m.statusStyle(review.Status)

	marker := "  "
	if m.focused && i == m.cursor {
		marker = m.theme.Selected.Render("›") + " "
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(m.theme.Bold.Render(review.Title))
	if review.Subtitle != "" {
		b.WriteString(" ")
		b.WriteString(m.theme.Subtitle.Render(review.Subtitle))
	}
	b.WriteString("\n  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s %s", icon, review.Status.Label())))
	if review.Reviewer != "" {
		b.WriteString(m.theme.Normal.Render(" by " + review.Reviewer))
	}
	if review.Date != "" {
		b.WriteString(m.theme.Subtitle.Render(" on " + model.FormatDate(review.Date)))
	}
	b.WriteString("\n")

	if m.expanded[i] {
		b.WriteString(m.renderDetails(review))
	}
	return b.String()
}

func (m ReviewsModel) renderDetails(review model.Review) string {
	detail := lipgloss.NewStyle().
		Foreground(m.theme.Foreground).
		PaddingLeft(4).
		Width(m.width - 8)

	var b strings.Builder
	if review.Remarks != "" {
		b.WriteString(detail.Render("Remarks: " + review.Remarks))
		b.WriteString("\n")
	}
	if review.CIBStatus != "" {
		line := "CIB: " + review.CIBStatus
		if review.CIBDate != "" {
			line += " (" + model.FormatDate(review.CIBDate) + ")"
		}
		b.WriteString(detail.Render(line))
		b.WriteString("\n")
	}
	for _, att := range review.Attachment {
		b.WriteString(detail.Render("Attachment: " + att.Name))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ReviewsModel) statusStyle(status model.ReviewStatus) lipgloss.Style {
	switch status {
	case model.ReviewApproved:
		return m.theme.StatusSuccess
	case model.ReviewRejected:
		return m.theme.StatusError
	default:
		return m.theme.StatusWarning
	}
}
