package vocab

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lai323/vocabcard/category"
	"github.com/lai323/vocabcard/speech"
	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/ui"
	"github.com/lai323/vocabcard/utils"
	"github.com/lai323/vocabcard/wordlist"
	"github.com/muesli/reflow/wordwrap"
)

const focusedPrompt = "/ "

// loads numbers every load started in this package. Views are replaced while
// their loads are in flight, so a result must match the view that asked for it.
var loads atomic.Int64

type loadedMsg struct {
	seq   int64
	words []wordlist.Word
	err   error
}

type spokeMsg struct {
	err error
}

// StudyMsg asks the enclosing program to open flashcards for Category.
type StudyMsg struct {
	Category string
}

type Options struct {
	Query study.Query
}

type Model struct {
	category string
	loader   *wordlist.Loader
	speaker  speech.Speaker

	loading bool
	loadSeq int64
	err     error

	words  []wordlist.Word
	shown  []wordlist.Word
	parts  []string
	query  study.Query
	marks  *study.Marks
	cursor int

	textInput textinput.Model
	viewport  viewport.Model
	helpmode  ui.HelpModel
	width     int
	ready     bool
}

func NewModel(categoryID string, loader *wordlist.Loader, speaker speech.Speaker, opts Options) *Model {
	m := &Model{
		category: categoryID,
		loader:   loader,
		speaker:  speaker,
		query:    opts.Query,
		marks:    study.NewMarks(),
	}
	m.textInput = textinput.New()
	m.textInput.Placeholder = "search words or meanings"
	m.textInput.Prompt = focusedPrompt
	m.textInput.TextStyle = ui.InputStyle
	m.textInput.CharLimit = 100
	m.textInput.Width = 40
	m.textInput.SetValue(opts.Query.Search)
	m.helpmode = ui.HelpModel{
		Keyhelp: [][]string{
			{"?", "back"},
			{"/", "search"},
			{"p", "part of speech"},
			{"o", "sort"},
			{"c", "clear filters"},
			{"↑/↓", "move"},
			{"f", "favorite"},
			{"x", "known"},
			{"v", "speak"},
			{"enter", "study flashcards"},
			{"esc", "back"},
		},
	}
	return m
}

func (m *Model) Query() study.Query     { return m.query }
func (m *Model) Shown() []wordlist.Word { return m.shown }
func (m *Model) Cursor() int            { return m.cursor }
func (m *Model) Marks() *study.Marks    { return m.marks }
func (m *Model) Err() error             { return m.err }
func (m *Model) Searching() bool        { return m.textInput.Focused() }

func (m *Model) Init() tea.Cmd {
	return m.load()
}

// load starts fetching the category. Only the result of the latest load of
// this view is applied.
func (m *Model) load() tea.Cmd {
	m.loading = true
	m.err = nil
	seq := loads.Add(1)
	m.loadSeq = seq
	loader := m.loader
	id := m.category
	return func() tea.Msg {
		words, err := loader.Load(context.Background(), id)
		return loadedMsg{seq: seq, words: words, err: err}
	}
}

func (m *Model) speak(text string) tea.Cmd {
	speaker := m.speaker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokeMsg{err: speaker.Speak(ctx, text)}
	}
}

func (m *Model) back() tea.Cmd {
	return func() tea.Msg {
		return ui.BackMsg{}
	}
}

func (m *Model) helpCmd() tea.Cmd {
	return func() tea.Msg {
		return ui.HelpMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// header, search line, stats, detail and footer
		height := max(msg.Height-8, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil
	case loadedMsg:
		m.loaded(msg)
		return m, nil
	case spokeMsg:
		if msg.err != nil {
			utils.LogError("speak: %s", msg.err.Error())
		}
		return m, nil
	case ui.HelpMsg:
		m.helpmode.Active = !m.helpmode.Active
		return m, nil
	case tea.KeyMsg:
		if m.textInput.Focused() {
			return m, m.searchKey(msg)
		}
		return m, m.key(msg.String())
	}
	if m.textInput.Focused() {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) loaded(msg loadedMsg) {
	if msg.seq != m.loadSeq {
		utils.LogDebug("drop stale load %d of %s", msg.seq, m.category)
		return
	}
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		utils.LogError("load %s: %s", m.category, msg.err.Error())
		return
	}
	utils.LogInfo("loaded %d words for %s", len(msg.words), m.category)
	m.words = msg.words
	m.parts = study.PartsOfSpeech(msg.words)
	m.filter()
}

func (m *Model) searchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		m.textInput.Blur()
		return nil
	case "esc":
		m.textInput.Blur()
		m.textInput.SetValue("")
		m.query.Search = ""
		m.filter()
		return nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.query.Search {
		m.query.Search = m.textInput.Value()
		m.filter()
	}
	return cmd
}

func (m *Model) key(k string) tea.Cmd {
	switch k {
	case "ctrl+c":
		return tea.Quit
	case "?":
		return m.helpCmd()
	}
	if m.helpmode.Active {
		return nil
	}
	switch k {
	case "esc", "b":
		return m.back()
	}
	if m.loading {
		return nil
	}
	if m.err != nil {
		if k == "r" {
			return m.load()
		}
		return nil
	}

	switch k {
	case "/":
		m.textInput.Focus()
		return textinput.Blink
	case "p":
		m.query.PartOfSpeech = study.NextPartOfSpeech(m.query.PartOfSpeech, m.parts)
		m.filter()
	case "o":
		m.query.Sort = m.query.Sort.Next()
		m.filter()
	case "c":
		m.query = study.Query{Sort: m.query.Sort}
		m.textInput.SetValue("")
		m.filter()
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup":
		m.move(-m.viewport.Height)
	case "pgdown":
		m.move(m.viewport.Height)
	case "home", "g":
		m.move(-len(m.shown))
	case "end", "G":
		m.move(len(m.shown))
	case "f", "x", "v":
		word, ok := m.current()
		if !ok {
			return nil
		}
		switch k {
		case "f":
			m.marks.Favorites.Toggle(word.Term)
		case "x":
			m.marks.Known.Toggle(word.Term)
		case "v":
			return m.speak(word.Term)
		}
		m.refresh()
	case "enter":
		id := m.category
		return func() tea.Msg {
			return StudyMsg{Category: id}
		}
	}
	return nil
}

func (m *Model) current() (wordlist.Word, bool) {
	if m.cursor < 0 || m.cursor >= len(m.shown) {
		return wordlist.Word{}, false
	}
	return m.shown[m.cursor], true
}

func (m *Model) move(n int) {
	m.cursor += n
	if m.cursor >= len(m.shown) {
		m.cursor = len(m.shown) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refresh()
}

// filter reapplies the query and keeps the cursor inside the result.
func (m *Model) filter() {
	m.shown = m.query.Apply(m.words)
	if m.cursor >= len(m.shown) {
		m.cursor = max(len(m.shown)-1, 0)
	}
	m.viewport.GotoTop()
	m.refresh()
}

// refresh rebuilds the rows and scrolls the cursor row into view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	rows := make([]string, 0, len(m.shown))
	for i, w := range m.shown {
		rows = append(rows, m.row(i, w))
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) row(i int, w wordlist.Word) string {
	cursor := "  "
	term := ui.StyleTerm(w.Term)
	if i == m.cursor {
		cursor = ui.StyleCursor("> ")
		term = ui.StyleOptionSelect(w.Term)
	}
	var marks string
	if m.marks.Favorites.Has(w.Term) {
		marks += ui.StyleMarkFavorite("♥")
	} else {
		marks += " "
	}
	if m.marks.Known.Has(w.Term) {
		marks += ui.StyleMarkKnown("✓")
	}
	return ui.Line(
		m.viewport.Width,
		ui.Cell{Width: 2, Text: cursor},
		ui.Cell{Width: 3, Text: marks},
		ui.Cell{Width: 18, Text: term},
		ui.Cell{Width: 16, Text: ui.StylePronounce(w.Pronunciation)},
		ui.Cell{Width: 12, Text: ui.StylePart(w.PartOfSpeech)},
		ui.Cell{Text: ui.StyleMean(w.Meaning)},
	)
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initalizing..."
	}
	if m.helpmode.Active {
		return m.helpmode.View()
	}

	var body string
	switch {
	case m.loading:
		body = "\n  Loading words..."
	case m.err != nil:
		body = strings.Join([]string{
			"\n  ", ui.StyleError("Something went wrong"),
			"\n\n  ", wordwrap.String(m.err.Error(), max(m.width-4, 20)),
			"\n\n  ", ui.StyleHelp("r: retry • esc: back to categories"),
		}, "")
	case len(m.words) == 0:
		body = strings.Join([]string{
			"\n  ", ui.StyleTitle("No words found"),
			"\n\n  ", "There are no words in this category.",
		}, "")
	default:
		body = strings.Join([]string{
			m.searchLine(), "\n",
			m.listView(), "\n",
			m.detail(), "\n",
			m.stats(),
		}, "")
	}

	return strings.Join(
		[]string{
			m.header(), "\n",
			body, "\n",
			ui.Footer(m.width, "ctrl+c:exit | ?:more help | enter:study"),
		},
		"",
	)
}

func (m *Model) header() string {
	title := category.Title(m.category)
	if c, ok := category.Lookup(m.category); ok {
		title = ui.ColorStyle(c.Color)(title)
	} else {
		title = ui.StyleTitle(title)
	}
	return ui.Line(
		m.width,
		ui.Cell{Width: 6, Text: ui.StyleHelp("← esc")},
		ui.Cell{Text: title},
		ui.Cell{Width: 16, Text: ui.StyleHelp("Vocabulary list"), Align: ui.RightAlign},
	)
}

func (m *Model) searchLine() string {
	pos := m.query.PartOfSpeech
	if pos == "" {
		pos = study.AllPartsOfSpeech
	}
	return ui.Line(
		m.width,
		ui.Cell{Text: m.textInput.View()},
		ui.Cell{Width: 22, Text: ui.StyleKeyHelp("p: " + pos)},
		ui.Cell{Width: 18, Text: ui.StyleKeyHelp("o: " + m.query.Sort.String()), Align: ui.RightAlign},
	)
}

func (m *Model) listView() string {
	if len(m.shown) == 0 {
		return "\n  " + ui.StyleSubtle("No words match your search.") +
			strings.Repeat("\n", max(m.viewport.Height-2, 0))
	}
	return m.viewport.View()
}

func (m *Model) detail() string {
	word, ok := m.current()
	if !ok || !word.HasExample() {
		return ""
	}
	return "  " + ui.Truncate(ui.StyleExample(`"`+word.Example+`"`), max(m.width-2, 0))
}

func (m *Model) stats() string {
	return ui.Line(
		m.width,
		ui.Counter("favorites", m.marks.Favorites.Len()),
		ui.Counter("known", m.marks.Known.Len()),
		ui.Counter("shown", len(m.shown)),
		ui.Cell{
			Text:  ui.StyleHelp(fmt.Sprintf("of %d words", len(m.words))),
			Align: ui.RightAlign,
		},
	)
}
