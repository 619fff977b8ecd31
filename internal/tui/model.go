package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenCustomer
	ScreenItems
	ScreenPreview
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenOverview:
		return "Overview"
	case ScreenCustomer:
		return "Customer"
	case ScreenItems:
		return "Items"
	case ScreenPreview:
		return "Preview"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	overview tea.Model
	customer tea.Model
	items    tea.Model
	preview  tea.Model
	settings tea.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	overview := NewOverviewModel(a)
	return Model{
		app:           a,
		currentScreen: ScreenOverview,
		overview:      overview,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.overview != nil {
		return m.overview.Init()
	}
	return nil
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens re-read the session.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenOverview:
		if m.overview == nil {
			m.overview = NewOverviewModel(m.app)
			return m.overview.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenCustomer:
		if m.customer == nil {
			m.customer = NewCustomerModel(m.app)
			return m.customer.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenItems:
		if m.items == nil {
			m.items = NewItemsModel(m.app)
			return m.items.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenPreview:
		if m.preview == nil {
			m.preview = NewPreviewModel(m.app)
			return m.preview.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenSettings:
		if m.settings == nil {
			m.settings = NewSettingsModel(m.app)
			return m.settings.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (O, C, I, P, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	var screen tea.Model
	switch m.currentScreen {
	case ScreenOverview:
		screen = m.overview
	case ScreenCustomer:
		screen = m.customer
	case ScreenItems:
		screen = m.items
	case ScreenPreview:
		screen = m.preview
	case ScreenSettings:
		screen = m.settings
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Overview):
				m.currentScreen = ScreenOverview
				cmd := m.initScreen(ScreenOverview)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Customer):
				m.currentScreen = ScreenCustomer
				cmd := m.initScreen(ScreenCustomer)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Items):
				m.currentScreen = ScreenItems
				cmd := m.initScreen(ScreenItems)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Preview):
				m.currentScreen = ScreenPreview
				cmd := m.initScreen(ScreenPreview)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Settings):
				m.currentScreen = ScreenSettings
				cmd := m.initScreen(ScreenSettings)
				return m, cmd
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		cmd := m.initScreen(msg.Screen)
		return m, cmd

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenOverview:
		if m.overview != nil {
			m.overview, cmd = m.overview.Update(msg)
		}
	case ScreenCustomer:
		if m.customer != nil {
			m.customer, cmd = m.customer.Update(msg)
		}
	case ScreenItems:
		if m.items != nil {
			m.items, cmd = m.items.Update(msg)
		}
	case ScreenPreview:
		if m.preview != nil {
			m.preview, cmd = m.preview.Update(msg)
		}
	case ScreenSettings:
		if m.settings != nil {
			m.settings, cmd = m.settings.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Header
	header := headerStyle.Render(fmt.Sprintf("dairybill - %s - %s", m.app.Session.Invoice().Number, m.currentScreen.String()))

	// Footer with navigation keys
	footer := footerStyle.Render("[O]verview  [C]ustomer  [I]tems  [P]review  [,] Settings  [Q]uit")

	// Current screen content
	var content string
	switch m.currentScreen {
	case ScreenOverview:
		if m.overview != nil {
			content = m.overview.View()
		} else {
			content = "Loading..."
		}
	case ScreenCustomer:
		if m.customer != nil {
			content = m.customer.View()
		} else {
			content = "Loading..."
		}
	case ScreenItems:
		if m.items != nil {
			content = m.items.View()
		} else {
			content = "Loading..."
		}
	case ScreenPreview:
		if m.preview != nil {
			content = m.preview.View()
		} else {
			content = "Loading..."
		}
	case ScreenSettings:
		if m.settings != nil {
			content = m.settings.View()
		} else {
			content = "Loading..."
		}
	}

	// Error display
	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
