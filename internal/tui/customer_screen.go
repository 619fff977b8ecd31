package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
	"github.com/hmorganics/dairybill/internal/domain"
)

type customerMode int

const (
	customerModeView customerMode = iota
	customerModeEdit
)

// customer form field indices
const (
	custFieldName = iota
	custFieldPhone
	custFieldAddress
	custFieldGSTIN
	custFieldEmail
	custFieldCount
)

// CustomerModel shows and edits the bill-to details
type CustomerModel struct {
	app        *app.App
	mode       customerMode
	fields     []textinput.Model
	fieldFocus int
	statusMsg  string
}

// NewCustomerModel creates the customer screen model
func NewCustomerModel(a *app.App) tea.Model {
	return &CustomerModel{app: a}
}

// IsCapturingInput returns true when the form is active
func (m *CustomerModel) IsCapturingInput() bool {
	return m.mode == customerModeEdit
}

func (m *CustomerModel) Init() tea.Cmd {
	return nil
}

func (m *CustomerModel) initForm() {
	m.fields = make([]textinput.Model, custFieldCount)
	c := m.app.Session.Invoice().Customer

	m.fields[custFieldName] = textinput.New()
	m.fields[custFieldName].Placeholder = "Customer name"
	m.fields[custFieldName].CharLimit = 100
	m.fields[custFieldName].Width = 40
	m.fields[custFieldName].SetValue(c.Name)

	m.fields[custFieldPhone] = textinput.New()
	m.fields[custFieldPhone].Placeholder = "9876543210"
	m.fields[custFieldPhone].CharLimit = 15
	m.fields[custFieldPhone].Width = 20
	m.fields[custFieldPhone].SetValue(c.Phone)

	m.fields[custFieldAddress] = textinput.New()
	m.fields[custFieldAddress].Placeholder = "Street, city"
	m.fields[custFieldAddress].CharLimit = 200
	m.fields[custFieldAddress].Width = 50
	m.fields[custFieldAddress].SetValue(c.Address)

	m.fields[custFieldGSTIN] = textinput.New()
	m.fields[custFieldGSTIN].Placeholder = "Optional GSTIN"
	m.fields[custFieldGSTIN].CharLimit = 15
	m.fields[custFieldGSTIN].Width = 20
	m.fields[custFieldGSTIN].SetValue(c.GSTIN)

	m.fields[custFieldEmail] = textinput.New()
	m.fields[custFieldEmail].Placeholder = "email@example.com"
	m.fields[custFieldEmail].CharLimit = 100
	m.fields[custFieldEmail].Width = 40
	m.fields[custFieldEmail].SetValue(c.Email)

	m.fieldFocus = custFieldName
	m.fields[custFieldName].Focus()
}

func (m *CustomerModel) saveCustomer() {
	m.app.Session.SetCustomer(domain.CustomerInfo{
		Name:    m.fields[custFieldName].Value(),
		Phone:   m.fields[custFieldPhone].Value(),
		Address: m.fields[custFieldAddress].Value(),
		GSTIN:   m.fields[custFieldGSTIN].Value(),
		Email:   m.fields[custFieldEmail].Value(),
	})
	m.mode = customerModeView
	m.statusMsg = "Customer saved"
}

func (m *CustomerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == customerModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			m.mode = customerModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *CustomerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = customerModeView
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % custFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + custFieldCount) % custFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == custFieldCount-1 {
				m.saveCustomer()
				return m, nil
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			m.saveCustomer()
			return m, nil
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *CustomerModel) View() string {
	if m.mode == customerModeEdit {
		return m.viewForm()
	}
	return m.viewCustomer()
}

func (m *CustomerModel) viewCustomer() string {
	c := m.app.Session.Invoice().Customer

	var s string
	s += titleStyle.Render("Bill To") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if !c.HasName() {
		s += subtitleStyle.Render("  No customer yet. Press enter to add one.") + "\n"
		s += subtitleStyle.Render("  A customer name is required before sharing the invoice.") + "\n"
		return s
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Name:"), valueStyle.Render(c.Name))
	if c.Phone != "" {
		s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Phone:"), valueStyle.Render(c.Phone))
	}
	if c.Address != "" {
		s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Address:"), valueStyle.Render(c.Address))
	}
	if c.GSTIN != "" {
		s += fmt.Sprintf("  %s %s\n", labelStyle.Render("GSTIN:"), valueStyle.Render(c.GSTIN))
	}
	if c.Email != "" {
		s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Email:"), valueStyle.Render(c.Email))
	}

	s += "\n" + helpStyle.Render("  enter: edit customer")

	return s
}

func (m *CustomerModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Customer") + "\n\n"

	labels := []string{"Name:", "Phone:", "Address:", "GSTIN:", "Email:"}
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

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
