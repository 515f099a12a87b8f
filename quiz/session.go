package quiz

import (
	"errors"
	"fmt"

	"github.com/lai323/vocabcard/wordlist"
)

type State int

const (
	Setup State = iota
	Asking
	Answered
	Completed
)

func (s State) String() string {
	return [...]string{"Setup", "Asking", "Answered", "Completed"}[s]
}

var (
	// Presets are the question counts a learner can pick.
	Presets       = []int{10, 20, 50}
	DefaultTarget = Presets[0]

	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNoQuestion      = errors.New("no question to answer")
)

type WrongAnswer struct {
	Word           string
	CorrectAnswer  string
	UserAnswer     string
	QuestionNumber int
}

// Session is the running state of one quiz. It is owned by a single view and
// is not safe for concurrent use.
type Session struct {
	gen    *Generator
	pool   []wordlist.Word
	target int

	state      State
	score      int
	answered   int
	streak     int
	bestStreak int
	wrong      []WrongAnswer
	current    Question
	selected   int
}

func NewSession(gen *Generator, pool []wordlist.Word, target int) *Session {
	if target <= 0 {
		target = DefaultTarget
	}
	s := &Session{gen: gen, pool: pool, target: target}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.state = Setup
	s.score = 0
	s.answered = 0
	s.streak = 0
	s.bestStreak = 0
	s.wrong = nil
	s.current = Question{}
	s.selected = -1
}

func (s *Session) State() State          { return s.state }
func (s *Session) Target() int           { return s.target }
func (s *Session) Score() int            { return s.score }
func (s *Session) Answered() int         { return s.answered }
func (s *Session) Streak() int           { return s.streak }
func (s *Session) BestStreak() int       { return s.bestStreak }
func (s *Session) Pool() []wordlist.Word { return s.pool }
func (s *Session) CanStart() bool        { return len(s.pool) >= OptionCount }
func (s *Session) Done() bool            { return s.answered >= s.target }

// Selected is the chosen option of the current question, or -1.
func (s *Session) Selected() int {
	return s.selected
}

// Current returns the question being asked or just answered.
func (s *Session) Current() (Question, bool) {
	if s.state != Asking && s.state != Answered {
		return Question{}, false
	}
	return s.current, true
}

// WrongAnswers returns the wrong answers in the order they were given.
func (s *Session) WrongAnswers() []WrongAnswer {
	wrong := make([]WrongAnswer, len(s.wrong))
	copy(wrong, s.wrong)
	return wrong
}

// Accuracy is the percentage of answered questions that were correct.
func (s *Session) Accuracy() int {
	if s.answered == 0 {
		return 0
	}
	return s.score * 100 / s.answered
}

// SetTarget changes the question count and restarts the session.
func (s *Session) SetTarget(n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid question count %d", n)
	}
	s.target = n
	s.reset()
	return nil
}

// SetPool replaces the words questions are drawn from and restarts the
// session.
func (s *Session) SetPool(pool []wordlist.Word) {
	s.pool = pool
	s.reset()
}

// Start asks the first question.
func (s *Session) Start() error {
	if s.state != Setup {
		return fmt.Errorf("cannot start quiz in state %s", s.state)
	}
	return s.ask()
}

func (s *Session) ask() error {
	q, err := s.gen.Generate(s.pool)
	if err != nil {
		return err
	}
	s.current = q
	s.selected = -1
	s.state = Asking
	return nil
}

// Submit records the answer to the current question. Only the first answer
// to a question counts; later calls return ErrAlreadyAnswered and change
// nothing. It reports whether the choice was correct.
func (s *Session) Submit(choice int) (bool, error) {
	switch s.state {
	case Answered, Completed:
		return false, ErrAlreadyAnswered
	case Setup:
		return false, ErrNoQuestion
	}
	if choice < 0 || choice >= OptionCount {
		return false, ErrInvalidOption
	}

	s.selected = choice
	s.state = Answered
	s.answered++
	opt := s.current.Options[choice]
	if opt.IsCorrect {
		s.score++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
		return true, nil
	}

	s.streak = 0
	s.wrong = append(s.wrong, WrongAnswer{
		Word:           s.current.Prompt.Term,
		CorrectAnswer:  s.current.Prompt.Meaning,
		UserAnswer:     opt.Text,
		QuestionNumber: s.answered,
	})
	return false, nil
}

// Next moves on from an answered question: to Completed once the target is
// reached, otherwise to a fresh question.
func (s *Session) Next() error {
	if s.state != Answered {
		return fmt.Errorf("cannot advance quiz in state %s", s.state)
	}
	if s.Done() {
		s.state = Completed
		return nil
	}
	return s.ask()
}

// Restart returns to Setup with the same target.
func (s *Session) Restart() {
	s.reset()
}
