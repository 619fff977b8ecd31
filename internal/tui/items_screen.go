package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmorganics/dairybill/internal/app"
	"github.com/hmorganics/dairybill/internal/catalog"
)

type itemsMode int

const (
	itemsModeList itemsMode = iota
	itemsModePick
	itemsModeEdit
)

// item edit field indices. Quantity and rate are text inputs; unit and
// tax rate cycle through their allowed values.
const (
	itemFieldQty = iota
	itemFieldRate
	itemFieldUnit
	itemFieldGSTRate
	itemFieldCount
)

// ItemsModel manages the invoice line items: a navigable list, a product
// picker backed by the catalog, and a per-item edit form.
type ItemsModel struct {
	app       *app.App
	cursor    int
	statusMsg string

	mode       itemsMode
	pickCursor int
	editKey    string // key of the item being edited
	newItem    bool   // editing an item that was just added; esc discards it

	qtyInput   textinput.Model
	rateInput  textinput.Model
	unitIdx    int
	gstIdx     int
	fieldFocus int
}

// NewItemsModel creates the items screen model
func NewItemsModel(a *app.App) tea.Model {
	return &ItemsModel{app: a}
}

// IsCapturingInput returns true while the picker or the edit form is open
func (m *ItemsModel) IsCapturingInput() bool {
	return m.mode != itemsModeList
}

func (m *ItemsModel) Init() tea.Cmd {
	return nil
}

func (m *ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case itemsModePick:
		return m.updatePicker(msg)
	case itemsModeEdit:
		return m.updateEdit(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		items := m.app.Session.Invoice().Items
		if m.cursor >= len(items) {
			m.cursor = max(0, len(items)-1)
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		items := m.app.Session.Invoice().Items

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(items)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			li := m.app.Session.AddLineItem()
			m.editKey = li.Key
			m.newItem = true
			m.pickCursor = 0
			m.mode = itemsModePick
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(items) > 0 && m.cursor < len(items) {
				m.editKey = items[m.cursor].Key
				m.newItem = false
				m.openEditForm()
				return m, m.qtyInput.Focus()
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(items) > 0 && m.cursor < len(items) {
				m.app.Session.RemoveLineItem(items[m.cursor].Key)
				if m.cursor >= len(m.app.Session.Invoice().Items) {
					m.cursor = max(0, len(m.app.Session.Invoice().Items)-1)
				}
				m.statusMsg = "Item removed"
			}
		}
	}

	return m, nil
}

func (m *ItemsModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.newItem {
				m.app.Session.RemoveLineItem(m.editKey)
			}
			m.mode = itemsModeList
			return m, nil

		case "up", "k":
			if m.pickCursor > 0 {
				m.pickCursor--
			}
		case "down", "j":
			if m.pickCursor < len(catalog.Products)-1 {
				m.pickCursor++
			}
		case "enter":
			m.app.Session.SetItemProduct(m.editKey, catalog.Products[m.pickCursor])
			m.openEditForm()
			return m, m.qtyInput.Focus()
		}
	}
	return m, nil
}

func (m *ItemsModel) openEditForm() {
	li := m.app.Session.Invoice().Item(m.editKey)
	if li == nil {
		m.mode = itemsModeList
		return
	}

	m.qtyInput = textinput.New()
	m.qtyInput.Placeholder = "1"
	m.qtyInput.CharLimit = 10
	m.qtyInput.Width = 12
	if li.Quantity > 0 {
		m.qtyInput.SetValue(formatQty(li.Quantity))
	}

	m.rateInput = textinput.New()
	m.rateInput.Placeholder = "0.00"
	m.rateInput.CharLimit = 12
	m.rateInput.Width = 12
	if li.Rate > 0 {
		m.rateInput.SetValue(formatQty(li.Rate))
	}

	m.unitIdx = indexOf(catalog.Units, li.Unit)
	m.gstIdx = indexOf(catalog.GSTRates, li.GSTRate)

	m.fieldFocus = itemFieldQty
	m.mode = itemsModeEdit
}

func (m *ItemsModel) saveItem() {
	s := m.app.Session
	s.SetItemQuantity(m.editKey, m.qtyInput.Value())
	s.SetItemRate(m.editKey, m.rateInput.Value())
	s.SetItemUnit(m.editKey, catalog.Units[m.unitIdx])
	s.SetItemGSTRate(m.editKey, catalog.GSTRates[m.gstIdx])
	m.mode = itemsModeList
	m.statusMsg = "Item saved"
}

func (m *ItemsModel) focusField(field int) tea.Cmd {
	m.qtyInput.Blur()
	m.rateInput.Blur()
	m.fieldFocus = field
	switch field {
	case itemFieldQty:
		return m.qtyInput.Focus()
	case itemFieldRate:
		return m.rateInput.Focus()
	}
	return nil
}

func (m *ItemsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.newItem {
				m.app.Session.RemoveLineItem(m.editKey)
			}
			m.mode = itemsModeList
			return m, nil

		case "tab", "down":
			return m, m.focusField((m.fieldFocus + 1) % itemFieldCount)

		case "shift+tab", "up":
			return m, m.focusField((m.fieldFocus - 1 + itemFieldCount) % itemFieldCount)

		case "enter":
			if m.fieldFocus == itemFieldCount-1 {
				m.saveItem()
				return m, nil
			}
			return m, m.focusField(m.fieldFocus + 1)

		case "ctrl+s":
			m.saveItem()
			return m, nil

		case "left", "right":
			switch m.fieldFocus {
			case itemFieldUnit:
				m.unitIdx = cycle(m.unitIdx, len(catalog.Units), msg.String() == "right")
				return m, nil
			case itemFieldGSTRate:
				m.gstIdx = cycle(m.gstIdx, len(catalog.GSTRates), msg.String() == "right")
				return m, nil
			}
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	switch m.fieldFocus {
	case itemFieldQty:
		m.qtyInput, cmd = m.qtyInput.Update(msg)
	case itemFieldRate:
		m.rateInput, cmd = m.rateInput.Update(msg)
	}
	return m, cmd
}

func (m *ItemsModel) View() string {
	switch m.mode {
	case itemsModePick:
		return m.viewPicker()
	case itemsModeEdit:
		return m.viewEdit()
	}
	return m.viewList()
}

func (m *ItemsModel) viewList() string {
	items := m.app.Session.Invoice().Items

	var s string
	s += titleStyle.Render("Invoice Items") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(items) == 0 {
		s += subtitleStyle.Render("  No items yet. Press 'n' to add one.") + "\n"
		return s
	}

	for i, li := range items {
		selected := i == m.cursor
		indicator := "  "
		if selected {
			indicator = "> "
		}

		name := li.Name
		if name == "" {
			name = "(no product)"
		}

		nameStyle := lipgloss.NewStyle()
		detailStyle := subtitleStyle
		if li.Name == "" {
			nameStyle = nameStyle.Foreground(mutedColor)
		}
		if selected {
			nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
		}

		line1 := fmt.Sprintf("%s%s", indicator, truncateStr(name, 30))
		line2 := fmt.Sprintf("    %s %s x %s  =  %s  |  HSN %s  GST %s",
			formatQty(li.Quantity), li.Unit, formatMoney(li.Rate),
			formatMoney(li.Amount), li.HSNCode, li.GSTRate)

		s += nameStyle.Render(line1) + "\n" + detailStyle.Render(line2) + "\n"
	}

	tot := m.app.Session.Totals()
	s += "\n" + fmt.Sprintf("  Subtotal: %s   Total: %s",
		amountStyle.Render(formatMoney(tot.Subtotal)), totalStyle.Render(formatMoney(tot.Total))) + "\n"

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  d: remove")

	return s
}

func (m *ItemsModel) viewPicker() string {
	var s string
	s += titleStyle.Render("Pick a Product") + "\n\n"

	for i, p := range catalog.Products {
		indicator := "  "
		nameStyle := lipgloss.NewStyle()
		if i == m.pickCursor {
			indicator = "> "
			nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
		}
		line := fmt.Sprintf("%s%-22s %s  HSN %s  GST %s", indicator, p.Name, p.Unit, p.HSNCode, p.GSTRate)
		s += nameStyle.Render(line) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: select  esc: cancel")

	return s
}

func (m *ItemsModel) viewEdit() string {
	li := m.app.Session.Invoice().Item(m.editKey)
	if li == nil {
		return "Loading..."
	}

	var s string
	s += titleStyle.Render("Edit Item") + "  " + subtitleStyle.Render(li.Name) + "\n\n"

	focusLabel := func(i int, label string) string {
		indicator := "  "
		style := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			style = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		return indicator + style.Render(label)
	}

	s += focusLabel(itemFieldQty, "Quantity:") + "\n  " + m.qtyInput.View() + "\n\n"
	s += focusLabel(itemFieldRate, "Rate (₹):") + "\n  " + m.rateInput.View() + "\n\n"
	s += focusLabel(itemFieldUnit, "Unit:") + "\n  " + cycleView(catalog.Units, m.unitIdx) + "\n\n"
	s += focusLabel(itemFieldGSTRate, "GST Rate:") + "\n  " + cycleView(catalog.GSTRates, m.gstIdx) + "\n\n"

	s += helpStyle.Render("  tab: next field  ←/→: change unit/rate  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

func cycle(idx, length int, forward bool) int {
	if forward {
		return (idx + 1) % length
	}
	return (idx - 1 + length) % length
}

func cycleView(values []string, idx int) string {
	return fmt.Sprintf("◀ %s ▶", lipgloss.NewStyle().Foreground(accentColor).Render(values[idx]))
}
