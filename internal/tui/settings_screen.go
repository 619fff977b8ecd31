package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldCompanyName = iota
	settingsFieldAddress
	settingsFieldTagline
	settingsFieldGSTIN
	settingsFieldLogoPath
	settingsFieldPrefix
	settingsFieldOutputDir
	settingsFieldCount
)

type settingsSavedMsg struct {
	err error
}

// SettingsModel manages the settings screen
type SettingsModel struct {
	app        *app.App
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:  a,
		mode: settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	company := m.app.Config.Company
	invoice := m.app.Config.Invoice

	m.fields[settingsFieldCompanyName] = textinput.New()
	m.fields[settingsFieldCompanyName].Placeholder = "Company name"
	m.fields[settingsFieldCompanyName].CharLimit = 100
	m.fields[settingsFieldCompanyName].Width = 40
	m.fields[settingsFieldCompanyName].SetValue(company.Name)

	m.fields[settingsFieldAddress] = textinput.New()
	m.fields[settingsFieldAddress].Placeholder = "Street, city"
	m.fields[settingsFieldAddress].CharLimit = 200
	m.fields[settingsFieldAddress].Width = 60
	m.fields[settingsFieldAddress].SetValue(company.Address)

	m.fields[settingsFieldTagline] = textinput.New()
	m.fields[settingsFieldTagline].Placeholder = "Tagline"
	m.fields[settingsFieldTagline].CharLimit = 100
	m.fields[settingsFieldTagline].Width = 40
	m.fields[settingsFieldTagline].SetValue(company.Tagline)

	m.fields[settingsFieldGSTIN] = textinput.New()
	m.fields[settingsFieldGSTIN].Placeholder = "Optional GSTIN"
	m.fields[settingsFieldGSTIN].CharLimit = 15
	m.fields[settingsFieldGSTIN].Width = 20
	m.fields[settingsFieldGSTIN].SetValue(company.GSTIN)

	m.fields[settingsFieldLogoPath] = textinput.New()
	m.fields[settingsFieldLogoPath].Placeholder = "/path/to/logo.png"
	m.fields[settingsFieldLogoPath].CharLimit = 256
	m.fields[settingsFieldLogoPath].Width = 60
	m.fields[settingsFieldLogoPath].SetValue(company.LogoPath)

	m.fields[settingsFieldPrefix] = textinput.New()
	m.fields[settingsFieldPrefix].Placeholder = "HMO"
	m.fields[settingsFieldPrefix].CharLimit = 20
	m.fields[settingsFieldPrefix].Width = 20
	m.fields[settingsFieldPrefix].SetValue(invoice.NumberPrefix)

	m.fields[settingsFieldOutputDir] = textinput.New()
	m.fields[settingsFieldOutputDir].Placeholder = "/path/to/invoices"
	m.fields[settingsFieldOutputDir].CharLimit = 256
	m.fields[settingsFieldOutputDir].Width = 60
	m.fields[settingsFieldOutputDir].SetValue(invoice.OutputDir)

	m.fieldFocus = settingsFieldCompanyName
	m.fields[settingsFieldCompanyName].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	return func() tea.Msg {
		name := m.fields[settingsFieldCompanyName].Value()
		prefix := m.fields[settingsFieldPrefix].Value()
		outputDir := m.fields[settingsFieldOutputDir].Value()

		if name == "" {
			return settingsSavedMsg{err: fmt.Errorf("company name is required")}
		}
		if prefix == "" {
			return settingsSavedMsg{err: fmt.Errorf("invoice prefix is required")}
		}
		if outputDir == "" {
			return settingsSavedMsg{err: fmt.Errorf("output directory is required")}
		}

		m.app.Config.Company.Name = name
		m.app.Config.Company.Address = m.fields[settingsFieldAddress].Value()
		m.app.Config.Company.Tagline = m.fields[settingsFieldTagline].Value()
		m.app.Config.Company.GSTIN = m.fields[settingsFieldGSTIN].Value()
		m.app.Config.Company.LogoPath = m.fields[settingsFieldLogoPath].Value()
		m.app.Config.Invoice.NumberPrefix = prefix
		m.app.Config.Invoice.OutputDir = outputDir

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}

		// The open invoice picks up the new company details immediately.
		m.app.ApplySettings()

		return settingsSavedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		switch {
		case msg.String() == "enter":
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = settingsModeView
		m.statusMsg = "Settings saved"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	company := m.app.Config.Company
	invoice := m.app.Config.Invoice

	labelStyle := lipgloss.NewStyle().Bold(true).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += subtitleStyle.Render("  Company") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Name:"), valueStyle.Render(company.Name))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Address:"), valueStyle.Render(company.Address))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Tagline:"), valueStyle.Render(company.Tagline))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("GSTIN:"), valueStyle.Render(company.GSTIN))
	s += fmt.Sprintf("  %s %s\n\n", labelStyle.Render("Logo Path:"), valueStyle.Render(company.LogoPath))

	s += subtitleStyle.Render("  Invoice") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Number Prefix:"), valueStyle.Render(invoice.NumberPrefix))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Output Directory:"), valueStyle.Render(invoice.OutputDir))

	s += "\n" + helpStyle.Render("  enter: edit settings")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Settings") + "\n\n"

	labels := []string{"Company Name:", "Address:", "Tagline:", "GSTIN:", "Logo Path:", "Number Prefix:", "Output Directory:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
