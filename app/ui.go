package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lai323/vocabcard/category"
	"github.com/lai323/vocabcard/flashcard"
	"github.com/lai323/vocabcard/speech"
	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/ui"
	"github.com/lai323/vocabcard/utils"
	"github.com/lai323/vocabcard/vocab"
	"github.com/lai323/vocabcard/wordlist"
)

type item struct {
	c       category.Category
	count   int
	counted bool
}

func (i item) Title() string       { return category.Title(i.c.ID) }
func (i item) FilterValue() string { return i.c.Name + " " + i.c.Level }

func (i item) Description() string {
	if !i.counted {
		return i.c.Description
	}
	return fmt.Sprintf("%s • %d words", i.c.Description, i.count)
}

type countsMsg struct {
	counts map[string]int
}

type Options struct {
	// Questions is the default quiz length.
	Questions int
	Shuffle   bool
	// Rand seeds the flashcard views. A time seed is used when nil.
	Rand rand.Source
}

// Model is the category selector. Study and list views are stacked on top of
// it and removed again on ui.BackMsg.
type Model struct {
	loader  *wordlist.Loader
	speaker speech.Speaker
	opts    Options

	list   list.Model
	counts map[string]int
	views  []tea.Model
	// quitOnBack quits once the last stacked view is closed.
	quitOnBack bool

	width  int
	height int
}

func NewModel(loader *wordlist.Loader, speaker speech.Speaker, opts Options) *Model {
	m := &Model{
		loader:  loader,
		speaker: speaker,
		opts:    opts,
		counts:  map[string]int{},
	}
	m.list = list.New(m.items(), list.NewDefaultDelegate(), 0, 0)
	m.list.Title = "Choose a vocabulary level"
	m.list.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "flashcards")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "word list")),
		}
	}
	return m
}

// NewListModel opens straight into the word list of categoryID and quits
// when that list is closed.
func NewListModel(categoryID string, query study.Query, loader *wordlist.Loader, speaker speech.Speaker, opts Options) *Model {
	m := NewModel(loader, speaker, opts)
	m.quitOnBack = true
	m.views = append(m.views, m.newList(categoryID, query))
	return m
}

func (m *Model) Counts() map[string]int { return m.counts }

// Top is the view being shown, nil for the selector itself.
func (m *Model) Top() tea.Model {
	if len(m.views) == 0 {
		return nil
	}
	return m.views[len(m.views)-1]
}

func (m *Model) items() []list.Item {
	var items []list.Item
	for _, c := range category.All() {
		n, ok := m.counts[c.ID]
		items = append(items, item{c: c, count: n, counted: ok})
	}
	return items
}

// countCmd fetches every category once to count its entries. A category that
// cannot be fetched counts 0.
func (m *Model) countCmd() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		counts := map[string]int{}
		for _, id := range category.IDs() {
			n, err := loader.Count(context.Background(), id)
			if err != nil {
				utils.LogError("count %s: %s", id, err.Error())
			}
			counts[id] = n
		}
		return countsMsg{counts: counts}
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.countCmd()}
	if top := m.Top(); top != nil {
		cmds = append(cmds, top.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) newStudy(categoryID string) tea.Model {
	return flashcard.NewModel(categoryID, m.loader, m.speaker, m.opts.Rand, flashcard.Options{
		Questions: m.opts.Questions,
		Shuffle:   m.opts.Shuffle,
	})
}

func (m *Model) newList(categoryID string, query study.Query) tea.Model {
	return vocab.NewModel(categoryID, m.loader, m.speaker, vocab.Options{Query: query})
}

// push shows view on top and hands it the current window size.
func (m *Model) push(view tea.Model) tea.Cmd {
	m.views = append(m.views, view)
	if m.width > 0 {
		view.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return view.Init()
}

func (m *Model) pop() tea.Cmd {
	if len(m.views) > 0 {
		m.views = m.views[:len(m.views)-1]
	}
	if len(m.views) == 0 && m.quitOnBack {
		return tea.Quit
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := ui.DocStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		for _, view := range m.views {
			view.Update(msg)
		}
		return m, nil
	case countsMsg:
		m.counts = msg.counts
		return m, m.list.SetItems(m.items())
	case ui.BackMsg:
		return m, m.pop()
	case vocab.StudyMsg:
		return m, m.push(m.newStudy(msg.Category))
	}

	if top := m.Top(); top != nil {
		view, cmd := top.Update(msg)
		m.views[len(m.views)-1] = view
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", "l":
			selected, ok := m.list.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			if msg.String() == "l" {
				return m, m.push(m.newList(selected.c.ID, study.Query{}))
			}
			return m, m.push(m.newStudy(selected.c.ID))
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if top := m.Top(); top != nil {
		return top.View()
	}
	return ui.DocStyle.Render(m.list.View())
}

// Start runs the category selector.
func Start(loader *wordlist.Loader, speaker speech.Speaker, opts Options) error {
	return run(NewModel(loader, speaker, opts))
}

// StartList runs the word list of one category.
func StartList(categoryID string, query study.Query, loader *wordlist.Loader, speaker speech.Speaker, opts Options) error {
	return run(NewListModel(categoryID, query, loader, speaker, opts))
}

func run(m *Model) error {
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("could not start program: %w", err)
	}
	return nil
}
