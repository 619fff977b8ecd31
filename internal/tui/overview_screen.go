package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
)

type overviewMode int

const (
	overviewModeView overviewMode = iota
	overviewModeEditDate
	overviewModeEditPaid
)

// OverviewModel shows the invoice at a glance: customer, totals and the
// tax and due toggles.
type OverviewModel struct {
	app       *app.App
	mode      overviewMode
	input     textinput.Model
	statusMsg string
}

// NewOverviewModel creates the overview screen model
func NewOverviewModel(a *app.App) tea.Model {
	return &OverviewModel{app: a}
}

// IsCapturingInput returns true while a field is being edited
func (m *OverviewModel) IsCapturingInput() bool {
	return m.mode != overviewModeView
}

func (m *OverviewModel) Init() tea.Cmd {
	return nil
}

func (m *OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode != overviewModeView {
		return m.updateEdit(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		s := m.app.Session

		switch msg.String() {
		case "g":
			s.SetGSTEnabled(!s.Invoice().GSTEnabled)
		case "u":
			s.SetDueTracking(!s.Invoice().DueEnabled)
		case "e":
			m.mode = overviewModeEditDate
			m.input = textinput.New()
			m.input.Placeholder = "2026-08-30"
			m.input.CharLimit = 10
			m.input.Width = 15
			m.input.SetValue(s.Invoice().Date.Format("2006-01-02"))
			return m, m.input.Focus()
		case "a":
			if !s.Invoice().DueEnabled {
				m.statusMsg = "Enable due tracking first (press u)"
				return m, nil
			}
			m.mode = overviewModeEditPaid
			m.input = textinput.New()
			m.input.Placeholder = "0.00"
			m.input.CharLimit = 12
			m.input.Width = 15
			m.input.SetValue(formatQty(s.Invoice().AmountPaid))
			return m, m.input.Focus()
		}
	}

	return m, nil
}

func (m *OverviewModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = overviewModeView
			return m, nil

		case "enter":
			value := m.input.Value()
			switch m.mode {
			case overviewModeEditDate:
				m.app.Session.SetDate(value)
			case overviewModeEditPaid:
				m.app.Session.SetAmountPaid(value)
			}
			m.mode = overviewModeView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *OverviewModel) View() string {
	if m.mode != overviewModeView {
		return m.viewEdit()
	}

	s := m.app.Session
	inv := s.Invoice()
	tot := s.Totals()

	var out string
	out += titleStyle.Render(inv.Company.Name) + "  " + subtitleStyle.Render(inv.Company.Tagline) + "\n\n"

	if m.statusMsg != "" {
		out += lipgloss.NewStyle().Foreground(warningColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(14)

	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Invoice #:"), inv.Number)
	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Date:"), inv.Date.Format("02/01/2006"))

	customer := inv.Customer.Name
	if customer == "" {
		customer = subtitleStyle.Render("not set (press c)")
	}
	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Customer:"), customer)
	out += fmt.Sprintf("  %s %d\n\n", labelStyle.Render("Products:"), len(inv.SelectedItems()))

	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("GST:"), toggleLabel(inv.GSTEnabled))
	out += fmt.Sprintf("  %s %s\n\n", labelStyle.Render("Due tracking:"), toggleLabel(inv.DueEnabled))

	out += subtitleStyle.Render("  Totals") + "\n\n"
	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Subtotal:"), amountStyle.Render(formatMoney(tot.Subtotal)))
	if inv.GSTEnabled {
		out += fmt.Sprintf("  %s %s\n", labelStyle.Render("CGST:"), amountStyle.Render(formatMoney(tot.CGSTAmount)))
		out += fmt.Sprintf("  %s %s\n", labelStyle.Render("SGST:"), amountStyle.Render(formatMoney(tot.SGSTAmount)))
		if tot.IGSTAmount > 0 {
			out += fmt.Sprintf("  %s %s\n", labelStyle.Render("IGST:"), amountStyle.Render(formatMoney(tot.IGSTAmount)))
		}
	}
	out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Total:"), totalStyle.Render(formatMoney(tot.Total)))

	if tot.AmountPaid != nil && tot.DueAmount != nil {
		out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Paid:"), amountStyle.Render(formatMoney(*tot.AmountPaid)))
		out += fmt.Sprintf("  %s %s\n", labelStyle.Render("Due:"), dueStyle.Render(formatMoney(*tot.DueAmount)))
	}

	out += "\n" + helpStyle.Render("  g: toggle GST  u: toggle due  a: amount paid  e: edit date")

	return out
}

func (m *OverviewModel) viewEdit() string {
	var out string
	switch m.mode {
	case overviewModeEditDate:
		out += titleStyle.Render("Invoice Date") + "\n\n"
		out += subtitleStyle.Render("  Format: YYYY-MM-DD") + "\n\n"
	case overviewModeEditPaid:
		out += titleStyle.Render("Amount Paid") + "\n\n"
	}
	out += "  " + m.input.View() + "\n\n"
	out += helpStyle.Render("  enter: save  esc: cancel")
	return out
}

func toggleLabel(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(successColor).Render("on")
	}
	return subtitleStyle.Render("off")
}
