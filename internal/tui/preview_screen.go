package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
	"github.com/hmorganics/dairybill/internal/share"
)

// PreviewModel shows the chat rendering of the invoice and hosts the
// share actions. Every action runs the same validation gate; an invalid
// invoice shows the reason instead of the preview.
type PreviewModel struct {
	app       *app.App
	statusMsg string
	err       error
}

// NewPreviewModel creates the preview screen model
func NewPreviewModel(a *app.App) tea.Model {
	return &PreviewModel{app: a}
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

func (m *PreviewModel) shareWhatsApp() tea.Cmd {
	return func() tea.Msg {
		link, err := m.app.Session.WhatsAppURL()
		if err != nil {
			return exportDoneMsg{what: "WhatsApp", err: err}
		}
		return exportDoneMsg{what: "WhatsApp", err: share.Open(link)}
	}
}

func (m *PreviewModel) shareEmail() tea.Cmd {
	return func() tea.Msg {
		link, err := m.app.Session.MailtoURL()
		if err != nil {
			return exportDoneMsg{what: "Email", err: err}
		}
		return exportDoneMsg{what: "Email", err: share.Open(link)}
	}
}

func (m *PreviewModel) exportPrint() tea.Cmd {
	return func() tea.Msg {
		path, err := m.app.Session.ExportPrintFile()
		if err != nil {
			return exportDoneMsg{what: "Print", err: err}
		}
		return exportDoneMsg{what: "Print", path: path, err: share.Open(path)}
	}
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.statusMsg = ""
		m.err = nil
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		switch msg.what {
		case "Print":
			m.statusMsg = fmt.Sprintf("Saved %s and opened it for printing", msg.path)
		default:
			m.statusMsg = fmt.Sprintf("%s handed to your %s app", m.app.Session.Invoice().Number, strings.ToLower(msg.what))
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.err = nil

		switch msg.String() {
		case "w":
			return m, m.shareWhatsApp()
		case "m":
			return m, m.shareEmail()
		case "x":
			return m, m.exportPrint()
		}
	}

	return m, nil
}

func (m *PreviewModel) View() string {
	var s string
	s += titleStyle.Render("Preview & Share") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}
	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  %v", m.err)) + "\n\n"
	}

	if err := m.app.Session.Validate(); err != nil {
		s += lipgloss.NewStyle().Foreground(warningColor).
			Render(fmt.Sprintf("  Cannot share yet: %v", err)) + "\n\n"
		s += subtitleStyle.Render("  Fill in the customer (c) and add items (i) first.") + "\n"
		return s
	}

	msg, err := m.app.Session.ChatMessage()
	if err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  %v", err)) + "\n"
		return s
	}

	for _, line := range strings.Split(msg, "\n") {
		s += "  " + line + "\n"
	}

	s += "\n" + helpStyle.Render("  w: WhatsApp  m: email  x: save & print")

	return s
}
