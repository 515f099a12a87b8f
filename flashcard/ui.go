package flashcard

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lai323/vocabcard/category"
	"github.com/lai323/vocabcard/quiz"
	"github.com/lai323/vocabcard/speech"
	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/ui"
	"github.com/lai323/vocabcard/utils"
	"github.com/lai323/vocabcard/wordlist"
	"github.com/muesli/reflow/wordwrap"
)

type mode int

const (
	modeCards mode = iota
	modeQuiz
)

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

type Options struct {
	Quiz      bool
	Questions int
	Shuffle   bool
	// Standalone quits the program on back instead of sending ui.BackMsg.
	Standalone bool
}

type Model struct {
	category string
	loader   *wordlist.Loader
	speaker  speech.Speaker
	rand     *rand.Rand
	opts     Options

	loading bool
	loadSeq int64
	err     error

	deck    *study.Deck
	marks   *study.Marks
	streak  int
	mode    mode
	session *quiz.Session
	target  int
	cursor  int

	width    int
	ready    bool
	helpmode ui.HelpModel
	bar      ui.ProgressBar
}

func NewModel(categoryID string, loader *wordlist.Loader, speaker speech.Speaker, src rand.Source, opts Options) *Model {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if opts.Questions <= 0 {
		opts.Questions = quiz.DefaultTarget
	}
	r := rand.New(src)
	m := &Model{
		category: categoryID,
		loader:   loader,
		speaker:  speaker,
		rand:     r,
		opts:     opts,
		deck:     study.NewDeck(nil),
		marks:    study.NewMarks(),
		target:   opts.Questions,
		bar:      ui.NewProgressBar(40),
	}
	m.session = quiz.NewSession(quiz.NewGenerator(rand.NewSource(r.Int63())), nil, m.target)
	if opts.Quiz {
		m.mode = modeQuiz
	}
	m.helpmode = ui.HelpModel{
		Keyhelp: [][]string{
			{"?", "back"},
			{"space", "flip card"},
			{"←/→", "previous / next card"},
			{"s", "shuffle"},
			{"o", "original order"},
			{"f", "favorite"},
			{"k", "known"},
			{"v", "speak"},
			{"m", "flashcards / quiz"},
			{"1-4", "answer"},
			{"r", "retry / restart quiz"},
			{"esc", "back"},
		},
	}
	return m
}

func (m *Model) Session() *quiz.Session { return m.session }
func (m *Model) Deck() *study.Deck      { return m.deck }
func (m *Model) Marks() *study.Marks    { return m.marks }
func (m *Model) Streak() int            { return m.streak }
func (m *Model) Err() error             { return m.err }
func (m *Model) Loading() bool          { return m.loading }
func (m *Model) QuizMode() bool         { return m.mode == modeQuiz }

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

func (m *Model) back() tea.Cmd {
	if m.opts.Standalone {
		return tea.Quit
	}
	return func() tea.Msg {
		return ui.BackMsg{}
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

func (m *Model) helpCmd() tea.Cmd {
	return func() tea.Msg {
		return ui.HelpMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ready = true
		m.bar.SetWidth(min(msg.Width-4, 60))
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
		return m, m.key(msg.String())
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
	m.deck = study.NewDeck(msg.words)
	if m.opts.Shuffle {
		m.deck.Shuffle(m.rand)
	}
	m.session.SetPool(msg.words)
	m.cursor = 0
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

	switch {
	case m.loading:
		if k == "esc" || k == "b" {
			return m.back()
		}
		return nil
	case m.err != nil:
		switch k {
		case "r":
			return m.load()
		case "esc", "b":
			return m.back()
		}
		return nil
	}

	switch k {
	case "esc", "b":
		return m.back()
	case "m":
		m.toggleMode()
		return nil
	}
	if m.mode == modeQuiz {
		return m.quizKey(k)
	}
	return m.cardKey(k)
}

func (m *Model) toggleMode() {
	if m.mode == modeQuiz {
		m.mode = modeCards
		return
	}
	m.mode = modeQuiz
	m.target = m.opts.Questions
	if err := m.session.SetTarget(m.target); err != nil {
		utils.LogError("quiz target: %s", err.Error())
	}
	m.cursor = 0
}

func (m *Model) cardKey(k string) tea.Cmd {
	word, ok := m.deck.Current()
	if !ok {
		return nil
	}
	switch k {
	case " ", "space", "enter":
		m.deck.Flip()
	case "right", "l", "n":
		m.deck.Next()
	case "left", "h", "p":
		m.deck.Prev()
	case "s":
		m.deck.Shuffle(m.rand)
	case "o":
		m.deck.Reset()
	case "f":
		m.marks.Favorites.Toggle(word.Term)
	case "k":
		if m.marks.Known.Toggle(word.Term) {
			m.streak++
		}
	case "v":
		return m.speak(word.Term)
	}
	return nil
}

func (m *Model) quizKey(k string) tea.Cmd {
	s := m.session
	switch s.State() {
	case quiz.Setup:
		switch k {
		case "left", "h":
			m.choosePreset(m.presetIndex() - 1)
		case "right", "l":
			m.choosePreset(m.presetIndex() + 1)
		case "1", "2", "3":
			i, _ := strconv.Atoi(k)
			m.choosePreset(i - 1)
		case "enter", " ", "space":
			if !s.CanStart() {
				return nil
			}
			if err := s.Start(); err != nil {
				utils.LogError("start quiz: %s", err.Error())
			}
			m.cursor = 0
		}
	case quiz.Asking:
		switch k {
		case "up", "k":
			m.cursor = (m.cursor + quiz.OptionCount - 1) % quiz.OptionCount
		case "down", "j":
			m.cursor = (m.cursor + 1) % quiz.OptionCount
		case "1", "2", "3", "4":
			i, _ := strconv.Atoi(k)
			m.cursor = i - 1
			m.answer(i - 1)
		case "enter", " ", "space":
			m.answer(m.cursor)
		case "v":
			q, _ := s.Current()
			return m.speak(q.Prompt.Term)
		}
	case quiz.Answered:
		switch k {
		case "enter", " ", "space", "n", "right":
			if err := s.Next(); err != nil {
				utils.LogError("next question: %s", err.Error())
			}
			m.cursor = 0
		case "v":
			q, _ := s.Current()
			return m.speak(q.Prompt.Term)
		}
	case quiz.Completed:
		switch k {
		case "r", "enter":
			s.Restart()
			m.cursor = 0
		}
	}
	return nil
}

func (m *Model) answer(choice int) {
	ok, err := m.session.Submit(choice)
	if err != nil {
		utils.LogDebug("submit: %s", err.Error())
		return
	}
	if !ok {
		q, _ := m.session.Current()
		utils.LogDebug("wrong answer for %s", q.Prompt.Term)
	}
}

func (m *Model) presetIndex() int {
	for i, p := range quiz.Presets {
		if p == m.target {
			return i
		}
	}
	return 0
}

func (m *Model) choosePreset(i int) {
	n := len(quiz.Presets)
	i = (i%n + n) % n
	m.target = quiz.Presets[i]
	if err := m.session.SetTarget(m.target); err != nil {
		utils.LogError("quiz target: %s", err.Error())
	}
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
	case m.deck.Len() == 0:
		body = strings.Join([]string{
			"\n  ", ui.StyleTitle("No words found"),
			"\n\n  ", "There are no words in this category.",
			"\n\n  ", ui.StyleHelp("esc: back to categories"),
		}, "")
	case m.mode == modeQuiz:
		body = m.quizView()
	default:
		body = m.cardView()
	}

	return strings.Join(
		[]string{
			m.header(), "\n",
			body, "\n\n",
			ui.Footer(m.width, "ctrl+c:exit | ?:more help | m:mode"),
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
	modetext := "Flashcards"
	if m.mode == modeQuiz {
		modetext = "Quiz"
	}
	return ui.Line(
		m.width,
		ui.Cell{Width: 6, Text: ui.StyleHelp("← esc")},
		ui.Cell{Text: title},
		ui.Cell{Width: 12, Text: ui.StyleHelp(modetext), Align: ui.RightAlign},
	)
}

func (m *Model) cardView() string {
	word, _ := m.deck.Current()
	card := ui.CardModel{
		Word:     word,
		Flipped:  m.deck.Flipped(),
		Favorite: m.marks.Favorites.Has(word.Term),
		Known:    m.marks.Known.Has(word.Term),
		Width:    min(m.width-4, 60),
	}
	position := fmt.Sprintf("%d / %d", m.deck.Index()+1, m.deck.Len())
	return strings.Join(
		[]string{
			"\n  ", m.bar.View(m.deck.Progress()), "  ", ui.StyleWordCount(position),
			"\n\n", card.View(),
			"\n\n", m.infobar(),
		},
		"",
	)
}

func (m *Model) infobar() string {
	return ui.Line(
		m.width,
		ui.Counter("favorites", m.marks.Favorites.Len()),
		ui.Counter("known", m.marks.Known.Len()),
		ui.Counter("streak", m.streak),
		ui.Cell{
			Text:  ui.StyleHelp("space:flip  ←/→:move  s:shuffle  f:favorite  k:known  v:speak"),
			Align: ui.RightAlign,
		},
	)
}

func (m *Model) quizView() string {
	s := m.session
	if !s.CanStart() {
		return strings.Join([]string{
			"\n  ", ui.StyleTitle("Not enough words for a quiz"),
			"\n\n  ", fmt.Sprintf("A quiz needs at least %d words, this category has %d.", quiz.OptionCount, len(s.Pool())),
		}, "")
	}
	switch s.State() {
	case quiz.Setup:
		return m.setupView()
	case quiz.Completed:
		return m.completedView()
	}
	return m.questionView()
}

func (m *Model) setupView() string {
	var presets []string
	for _, p := range quiz.Presets {
		text := fmt.Sprintf(" %d ", p)
		if p == m.target {
			presets = append(presets, ui.StyleOptionSelect("["+text+"]"))
			continue
		}
		presets = append(presets, ui.StyleOption(" "+text+" "))
	}
	return strings.Join([]string{
		"\n  ", ui.StyleTitle("How many questions?"),
		"\n\n  ", strings.Join(presets, "  "),
		"\n\n  ", ui.StyleHelp("←/→ or 1-3: choose • enter: start"),
	}, "")
}

func (m *Model) questionView() string {
	s := m.session
	q, _ := s.Current()
	answered := s.State() == quiz.Answered

	var options []string
	for i, o := range q.Options {
		text := fmt.Sprintf("%d. %s", i+1, o.Text)
		switch {
		case answered && o.IsCorrect:
			text = ui.StyleSuccess(text + "  √")
		case answered && i == s.Selected():
			text = ui.Stylefail(text + "  X")
		case !answered && i == m.cursor:
			text = ui.StyleCursor("> ") + ui.StyleOptionSelect(text)
		default:
			text = "  " + ui.StyleOption(text)
		}
		options = append(options, "  "+text)
	}

	number := s.Answered() + 1
	if answered {
		number = s.Answered()
	}
	lines := []string{
		"\n  ", m.bar.View(float64(s.Answered()) / float64(s.Target()) * 100),
		"  ", ui.StyleWordCount(fmt.Sprintf("question %d / %d", number, s.Target())),
		"\n\n  ", ui.StyleSubtle("What does this word mean?"),
		"\n\n  ", ui.StyleTerm(q.Prompt.Term), "  ", ui.StylePronounce(q.Prompt.Pronunciation),
		"  ", ui.StylePart(q.Prompt.PartOfSpeech),
		"\n\n", strings.Join(options, "\n"),
	}
	if answered {
		result := ui.StyleSuccess("Correct!")
		if s.Selected() != q.Correct() {
			result = ui.Stylefail("Not quite.")
		}
		lines = append(lines, "\n\n  ", result)
		if q.Prompt.HasExample() {
			lines = append(lines, "\n\n  ", ui.StyleExample(`"`+q.Prompt.Example+`"`))
		}
		next := "enter: next question"
		if s.Done() {
			next = "enter: see results"
		}
		lines = append(lines, "\n\n  ", ui.StyleHelp(next))
	}
	lines = append(lines, "\n\n", m.quizInfobar())
	return strings.Join(lines, "")
}

func (m *Model) quizInfobar() string {
	s := m.session
	return ui.Line(
		m.width,
		ui.Counter("score", s.Score()),
		ui.Counter("answered", s.Answered()),
		ui.Counter("streak", s.Streak()),
		ui.Cell{
			Text:  ui.StyleHelp("1-4:answer  ↑/↓:move  v:speak"),
			Align: ui.RightAlign,
		},
	)
}

func (m *Model) completedView() string {
	s := m.session
	lines := []string{
		"\n  ", ui.StyleTitle("Quiz complete"),
		"\n\n  ", ui.StyleSuccess(fmt.Sprintf("%d / %d correct", s.Score(), s.Answered())),
		"  ", ui.StyleWordCount(fmt.Sprintf("%d%%", s.Accuracy())),
		"  ", ui.StyleWordCount(fmt.Sprintf("best streak %d", s.BestStreak())),
	}
	wrong := s.WrongAnswers()
	if len(wrong) == 0 {
		lines = append(lines, "\n\n  ", ui.StyleSuccess("No mistakes!"))
	} else {
		lines = append(lines, "\n\n  ", ui.StyleTitle("Review"))
		for _, w := range wrong {
			lines = append(lines,
				"\n  ", ui.StyleSubtle(fmt.Sprintf("#%d ", w.QuestionNumber)), ui.StyleTerm(w.Word),
				"\n     ", ui.StyleSuccess("✓ "+w.CorrectAnswer),
				"\n     ", ui.Stylefail("✗ "+w.UserAnswer),
			)
		}
	}
	lines = append(lines, "\n\n  ", ui.StyleHelp("r: new quiz • m: flashcards • esc: back"))
	return strings.Join(lines, "")
}

// Start runs the study view as its own program.
func Start(categoryID string, loader *wordlist.Loader, speaker speech.Speaker, opts Options) error {
	opts.Standalone = true
	m := NewModel(categoryID, loader, speaker, nil, opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("could not start program: %w", err)
	}
	return nil
}
