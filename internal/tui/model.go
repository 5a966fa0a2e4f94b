// Package tui implements the interactive terminal client. It renders the
// pending and completed item lists, fires API calls as Bubble Tea commands,
// and refreshes its view from the server after every mutation.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/api"
)

// apiCallTimeout bounds each request issued from the UI.
const apiCallTimeout = 15 * time.Second

// languages the translate key cycles through.
var languages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Hindi",
	"Marathi",
	"Japanese",
	"Chinese (Simplified)",
	"Korean",
	"Portuguese",
}

// API is the surface of the server client the UI depends on.
type API interface {
	List(ctx context.Context, status string) ([]api.ItemResponse, error)
	Create(ctx context.Context, req api.CreateItemRequest) (*api.ItemResponse, error)
	Complete(ctx context.Context, id int64) (*api.ItemResponse, error)
	Delete(ctx context.Context, id int64) error
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// filters the f key cycles through, matching the list endpoint's statuses.
var filters = []string{"all", "pending", "completed"}

// listItem adapts an API item to bubbles/list.Item.
type listItem struct {
	item api.ItemResponse
}

func (i listItem) Title() string       { return i.item.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// composeTranslationText builds the text sent to the translate endpoint:
// the title annotated with the item's description, priority, and due date
// so the translation carries the whole entry, not just the headline.
func composeTranslationText(item api.ItemResponse) string {
	text := item.Title
	if item.Description != nil && *item.Description != "" {
		text += fmt.Sprintf(" (Description: %s)", *item.Description)
	}
	if item.Priority != "" {
		text += fmt.Sprintf(" (Priority: %s)", item.Priority)
	}
	if item.DueDate != nil && *item.DueDate != "" {
		text += fmt.Sprintf(" (Due Date: %s)", *item.DueDate)
	}
	return text
}

// translationKey identifies one cached translation.
type translationKey struct {
	itemID   int64
	language string
}

// Messages produced by API commands.
type (
	itemsLoadedMsg    struct{ items []api.ItemResponse }
	mutationDoneMsg   struct{}
	translationMsg    struct {
		key  translationKey
		text string
	}
	apiErrorMsg struct{ err error }
)

// Model is the Bubble Tea model for the taskdeck terminal client.
type Model struct {
	api  API
	list list.Model

	filterIndex int
	langIndex   int

	// translations cached per item and language for this session only
	translations map[translationKey]string

	adding bool
	ti     textinput.Model
	addErr string

	status    string
	statusErr bool
}

// NewModel builds the initial model against the given API client.
func NewModel(apiClient API) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Taskdeck")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	doneBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	transBind := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "translate"))
	langBind := key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language"))
	filterBind := key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	refreshBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	extra := []key.Binding{addBind, doneBind, delBind, transBind, langBind, filterBind, refreshBind}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item (e.g. buy milk !high @2026-09-15)"
	ti.CharLimit = 200

	return Model{
		api:          apiClient,
		list:         l,
		translations: make(map[translationKey]string),
		ti:           ti,
	}
}

// Init loads the item list on startup.
func (m Model) Init() tea.Cmd {
	return m.loadItems()
}

func (m Model) filter() string   { return filters[m.filterIndex] }
func (m Model) language() string { return languages[m.langIndex] }

// selected returns the item under the cursor, if any.
func (m Model) selected() (api.ItemResponse, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return api.ItemResponse{}, false
	}
	li, ok := m.list.Items()[i].(listItem)
	if !ok {
		return api.ItemResponse{}, false
	}
	return li.item, true
}

// -- commands --

func (m Model) loadItems() tea.Cmd {
	status := m.filter()
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiCallTimeout)
		defer cancel()

		items, err := apiClient.List(ctx, status)
		if err != nil {
			return apiErrorMsg{err}
		}
		return itemsLoadedMsg{items}
	}
}

func (m Model) createItem(req api.CreateItemRequest) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiCallTimeout)
		defer cancel()

		if _, err := apiClient.Create(ctx, req); err != nil {
			return apiErrorMsg{err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) completeItem(id int64) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiCallTimeout)
		defer cancel()

		if _, err := apiClient.Complete(ctx, id); err != nil {
			return apiErrorMsg{err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) deleteItem(id int64) tea.Cmd {
	apiClient := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiCallTimeout)
		defer cancel()

		if err := apiClient.Delete(ctx, id); err != nil {
			return apiErrorMsg{err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) translateItem(item api.ItemResponse) tea.Cmd {
	k := translationKey{itemID: item.ID, language: m.language()}
	apiClient := m.api
	text := composeTranslationText(item)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiCallTimeout)
		defer cancel()

		translated, err := apiClient.Translate(ctx, text, k.language)
		if err != nil {
			return apiErrorMsg{err}
		}
		return translationMsg{key: k, text: translated}
	}
}

// -- update --

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		li := make([]list.Item, 0, len(msg.items))
		for _, it := range msg.items {
			li = append(li, listItem{item: it})
		}
		cmd := m.list.SetItems(li)
		m.status = ""
		m.statusErr = false
		return m, cmd

	case mutationDoneMsg:
		return m, m.loadItems()

	case translationMsg:
		m.translations[msg.key] = msg.text
		m.status = ""
		m.statusErr = false
		return m, nil

	case apiErrorMsg:
		m.status = msg.err.Error()
		m.statusErr = true
		return m, nil

	case tea.WindowSizeMsg:
		height := msg.Height - 4
		if m.adding {
			height -= 3
		}
		m.list.SetSize(msg.Width-2, height)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	return m.updateBrowsing(msg)
}

// updateAdding handles input while the inline add bar is focused.
func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			req, err := parseAddInput(m.ti.Value())
			if err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, m.createItem(req)
		case "esc":
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateBrowsing handles input while the list has focus.
func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.ti.Focus()
			return m, textinput.Blink
		case " ":
			if item, ok := m.selected(); ok && !item.Completed {
				return m, m.completeItem(item.ID)
			}
			return m, nil
		case "d":
			if item, ok := m.selected(); ok {
				return m, m.deleteItem(item.ID)
			}
			return m, nil
		case "t":
			if item, ok := m.selected(); ok {
				k := translationKey{itemID: item.ID, language: m.language()}
				if _, cached := m.translations[k]; cached {
					return m, nil
				}
				m.status = fmt.Sprintf("translating into %s...", m.language())
				m.statusErr = false
				return m, m.translateItem(item)
			}
			return m, nil
		case "l":
			m.langIndex = (m.langIndex + 1) % len(languages)
			return m, nil
		case "f":
			m.filterIndex = (m.filterIndex + 1) % len(filters)
			return m, m.loadItems()
		case "r":
			return m, m.loadItems()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// -- view --

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.list.View())

	if item, ok := m.selected(); ok {
		k := translationKey{itemID: item.ID, language: m.language()}
		if translated, cached := m.translations[k]; cached {
			b.WriteString("\n")
			b.WriteString(accentStyle.Render(m.language()+": ") + translated)
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render("✖ " + m.status))
		} else {
			b.WriteString(mutedStyle.Render(m.status))
		}
	}

	if m.adding {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += "  " + errorStyle.Render(m.addErr)
		}
		b.WriteString("\n")
		b.WriteString(bar.Render(title + "\n" + m.ti.View()))
	}
	return b.String()
}

// headerView shows the live counts, active filter and translation language.
func (m Model) headerView() string {
	var done, pending int
	for _, it := range m.list.Items() {
		li, ok := it.(listItem)
		if !ok {
			continue
		}
		if li.item.Completed {
			done++
		} else {
			pending++
		}
	}
	return fmt.Sprintf("%s %d  %s %d   %s %s   %s %s",
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		mutedStyle.Render("filter:"), m.filter(),
		mutedStyle.Render("lang:"), m.language(),
	)
}

// itemDelegate renders one item per line with a priority badge and due date.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}
	it := li.item

	box := mutedStyle.Render(boxUnchecked)
	text := it.Title
	if it.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", box, priorityBadge(it.Priority), text)
	if it.DueDate != nil {
		line += "  " + mutedStyle.Render("due "+*it.DueDate)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}
