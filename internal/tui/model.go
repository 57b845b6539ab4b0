package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/components"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

// State represents the page lifecycle.
type State int

const (
	// StateNoReference means the page was opened without an application
	// reference. Nothing loads and no decision is possible.
	StateNoReference State = iota
	// StateLoading means the bundle fetch is in flight.
	StateLoading
	// StateLoadError means the bundle fetch failed; the reviewer may retry.
	StateLoadError
	// StateReady means the page is showing the application.
	StateReady
)

// focusZone is the page section currently receiving key input.
type focusZone int

const (
	zoneReviews focusZone = iota
	zoneForm
)

// Model holds the review page state.
type Model struct {
	theme    themes.Theme
	gateway  gateway.ReviewGateway
	bundle   *model.Bundle
	loadErr  string
	refID    string
	config   Config
	keymap   KeyMap
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	profile  components.ProfileModel
	loan     components.LoanModel
	reviews  components.ReviewsModel
	form     components.DecisionFormModel
	decision model.Decision
	zone     focusZone
	width    int
	height   int
	state    State
	showHelp bool
	quitting bool
	ready    bool
}

// newModel creates a new page model with the given configuration.
func newModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	state := StateLoading
	if cfg.RefID == "" {
		state = StateNoReference
	}

	return Model{
		theme:    cfg.Theme,
		gateway:  cfg.Gateway,
		refID:    cfg.RefID,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		spinner:  s,
		viewport: viewport.New(cfg.Width, cfg.Height-4),
		help:     help.New(),
		decision: model.NewDecision(),
		zone:     zoneForm,
		width:    cfg.Width,
		height:   cfg.Height,
		state:    state,
	}
}

// Init starts the bundle fetch unless the page has no reference to load.
func (m Model) Init() tea.Cmd {
	if m.state == StateNoReference {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadBundle())
}

// Update handles messages and updates the page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case bundleLoadedMsg:
		return m.handleBundleLoaded(msg)

	case reloadRequestMsg:
		if m.state == StateLoadError || m.state == StateReady {
			m.state = StateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadBundle())
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m.delegate(msg)
	}

	return m.delegate(msg)
}

// handleBundleLoaded wires up the page components once the fetch finishes.
func (m Model) handleBundleLoaded(msg bundleLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = StateLoadError
		m.loadErr = common.UserMessage(msg.err, "Failed to load the application. Please try again.")
		return m, nil
	}

	m.bundle = msg.bundle
	m.state = StateReady
	m.profile = components.NewProfile(m.theme, m.bundle.Employee)
	m.loan = components.NewLoan(m.theme, m.bundle.Loan)
	m.reviews = components.NewReviews(m.theme, m.bundle.Reviews)
	m.form = components.NewDecisionForm(m.theme, m.gatewayCmds(m.bundle.Access().UserID))
	if m.decision.Decided() {
		// A reload after the decision keeps the page read-only.
		m.form = m.form.WithDecision(m.decision)
	}
	m.zone = zoneForm
	m.handleResize()
	m.refreshViewport()
	return m, nil
}

// handleKey routes keys: global shortcuts first, then the focused section.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateNoReference:
		if msg.String() == "q" || msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case StateLoading:
		return m, nil

	case StateLoadError:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r", "r":
			return m.Update(reloadRequestMsg{})
		}
		return m, nil
	}

	// Ready state. The OTP modal owns the keyboard while open.
	if m.form.IsModalOpen() {
		return m.delegateToForm(msg)
	}

	switch msg.String() {
	case "shift+tab":
		m.toggleZone()
		m.refreshViewport()
		return m, nil
	case "ctrl+r":
		if !m.decision.Decided() && !m.form.IsBusy() {
			return m.Update(reloadRequestMsg{})
		}
		return m, nil
	case "pgup", "ctrl+b":
		m.viewport.HalfViewUp()
		return m, nil
	case "pgdown", "ctrl+f":
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.zone == zoneReviews {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.reviews, cmd = m.reviews.Update(msg)
		m.refreshViewport()
		return m, cmd
	}

	return m.delegateToForm(msg)
}

// delegate forwards non-key messages to the components that own them.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != StateReady {
		return m, nil
	}
	return m.delegateToForm(msg)
}

func (m Model) delegateToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if action, remarks, ok := m.form.Result(); ok && !m.decision.Decided() {
		if err := m.decision.Decide(action, m.bundle.Access().Name, remarks, time.Now()); err == nil {
			m.form = m.form.WithDecision(m.decision)
		}
	}

	m.refreshViewport()
	return m, cmd
}

// toggleZone moves focus between the review trail and the decision form.
func (m *Model) toggleZone() {
	if m.zone == zoneForm {
		m.zone = zoneReviews
		m.form.Blur()
		m.reviews.Focus()
		return
	}
	m.zone = zoneForm
	m.reviews.Blur()
	m.form.Focus()
}

// handleResize adjusts component sizes to the terminal.
func (m *Model) handleResize() {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 4
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
	m.profile.Resize(contentWidth, m.height)
	m.loan.Resize(contentWidth, m.height)
	m.reviews.Resize(contentWidth, m.height)
	m.form.Resize(contentWidth, m.height)
}

// refreshViewport rebuilds the scrollable page body.
func (m *Model) refreshViewport() {
	if m.state != StateReady {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

// Decision returns the reviewer's verdict for this session.
func (m Model) Decision() model.Decision {
	return m.decision
}
