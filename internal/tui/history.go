// Package tui is the interactive history browser.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/worthit/internal/app"
	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/timevalue"
	"github.com/Makepad-fr/worthit/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
	cur  timevalue.Formatter
}

func (i listItem) line() string {
	return fmt.Sprintf("%s %s • %s",
		statusSymbol(i.item.Status),
		i.cur.Currency(i.item.Price),
		timevalue.HumanizeHours(i.item.HoursRequired),
	)
}

// Implement list.Item interface.
func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Note + " " + i.cur.Currency(i.item.Price) }

func statusSymbol(s model.ItemStatus) string {
	switch s {
	case model.StatusBought:
		return "☑"
	case model.StatusPassed:
		return "⊘"
	default:
		return "☐"
	}
}

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	sym := ui.Muted.Render(statusSymbol(it.item.Status))
	text := it.cur.Currency(it.item.Price) + " • " + timevalue.HumanizeHours(it.item.HoursRequired)
	switch it.item.Status {
	case model.StatusBought:
		sym = ui.Bought.Render("☑")
		text = ui.Bought.Render(text)
	case model.StatusPassed:
		sym = ui.Passed.Render("⊘")
		text = ui.Passed.Render(text)
	}

	meta := ui.Muted.Render(it.item.CreatedAt.Local().Format("Jan 2 15:04"))
	line := fmt.Sprintf("%s %s  %s", sym, text, meta)
	if it.item.Note != "" {
		line += "  " + ui.Muted.Render(it.item.Note)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type historyModel struct {
	list    list.Model
	cur     timevalue.Formatter
	items   []model.Item // full, unfiltered, newest first
	filter  model.FilterStatus
	changed bool
	width   int
	height  int

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *model.Item
}

// Run shows the history browser over the manager's items and persists any
// status/delete changes when the user quits.
func Run(mgr *app.Manager, f timevalue.Formatter) error {
	m := newHistoryModel(mgr.Items(), f)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(historyModel)
	if !ok {
		return nil
	}
	if fm.changed {
		if err := mgr.ReplaceItems(fm.items); err != nil {
			return err
		}
		ui.Ok("saved")
	}
	return nil
}

func newHistoryModel(items []model.Item, f timevalue.Formatter) historyModel {
	m := historyModel{
		cur:    f,
		items:  items,
		filter: model.FilterAll,
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Title
	l.Styles.HelpStyle = ui.Help
	l.Styles.PaginationStyle = ui.Help
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings.
	binds := []key.Binding{
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bought")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "passed")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pending")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m.list = l
	m.refresh()
	return m
}

// Stats summarizes a history: how many items were evaluated, how many
// were passed on, and the money not spent on them.
func Stats(items []model.Item) (evaluated, passed int, saved float64) {
	evaluated = len(items)
	for _, it := range items {
		if it.Status == model.StatusPassed {
			passed++
			saved += it.Price
		}
	}
	return evaluated, passed, saved
}

func nextFilter(f model.FilterStatus) model.FilterStatus {
	switch f {
	case model.FilterAll:
		return model.FilterStatus(model.StatusPending)
	case model.FilterStatus(model.StatusPending):
		return model.FilterStatus(model.StatusBought)
	case model.FilterStatus(model.StatusBought):
		return model.FilterStatus(model.StatusPassed)
	default:
		return model.FilterAll
	}
}

// refresh rebuilds the visible list and the stats header from m.items.
func (m *historyModel) refresh() {
	visible := make([]list.Item, 0, len(m.items))
	for _, it := range m.items {
		if it.Matches(m.filter) {
			visible = append(visible, listItem{item: it, cur: m.cur})
		}
	}
	m.list.SetItems(visible)

	evaluated, passed, saved := Stats(m.items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %s   [%s]",
		ui.Title.Render("WorthIt"),
		ui.Accent.Render("Evaluated"), evaluated,
		ui.Pending.Render("Passed"), passed,
		ui.Success.Render("Saved"), m.cur.Currency(saved),
		m.filter,
	)
}

// selected returns the index into m.items of the highlighted row.
func (m *historyModel) selected() (int, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	for i := range m.items {
		if m.items[i].ID == li.item.ID {
			return i, true
		}
	}
	return 0, false
}

func (m *historyModel) setStatus(s model.ItemStatus) {
	if i, ok := m.selected(); ok && m.items[i].Status != s {
		m.items[i].Status = s
		m.changed = true
		m.refresh()
	}
}

func (m historyModel) Init() tea.Cmd { return nil }

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "f":
			m.filter = nextFilter(m.filter)
			m.refresh()
			return m, nil
		case "b":
			m.setStatus(model.StatusBought)
			return m, nil
		case "p":
			m.setStatus(model.StatusPassed)
			return m, nil
		case " ":
			m.setStatus(model.StatusPending)
			return m, nil
		case "d":
			if i, ok := m.selected(); ok {
				tmp := m.items[i]
				m.undoItem = &tmp
				m.undoIndex = i
				m.canUndo = true
				m.items = append(m.items[:i], m.items[i+1:]...)
				m.changed = true
				m.refresh()
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.items) {
					idx = len(m.items)
				}
				m.items = append(m.items[:idx], append([]model.Item{*m.undoItem}, m.items[idx:]...)...)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
				m.refresh()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	m.list.SetSize(w-2, h-4)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(m.list.View())
}
