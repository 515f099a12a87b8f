package quiz

import (
	"errors"
	"math/rand"
	"testing"
)

func wrongChoice(q Question) int {
	return (q.Correct() + 1) % OptionCount
}

func newSession(target int) *Session {
	return NewSession(NewGenerator(rand.NewSource(11)), testPool(), target)
}

// askApple restarts s until the prompt is apple.
func askApple(t *testing.T, s *Session) Question {
	t.Helper()
	for i := 0; i < 1000; i++ {
		s.Restart()
		if err := s.Start(); err != nil {
			t.Fatal(err)
		}
		q, _ := s.Current()
		if q.Prompt.Term == "apple" {
			return q
		}
	}
	t.Fatal("apple never asked")
	return Question{}
}

func TestSubmitWrongAnswer(t *testing.T) {
	s := newSession(10)
	q := askApple(t, s)

	found := 0
	for _, o := range q.Options {
		if o.Text == "a fruit" {
			found++
		}
	}
	if found != 1 {
		t.Fatalf("\"a fruit\" appears %d times", found)
	}

	choice := wrongChoice(q)
	ok, err := s.Submit(choice)
	if err != nil || ok {
		t.Fatalf("Submit = %v, %v", ok, err)
	}
	if s.Answered() != 1 || s.Score() != 0 || s.Streak() != 0 {
		t.Fatalf("answered=%d score=%d streak=%d", s.Answered(), s.Score(), s.Streak())
	}
	wrong := s.WrongAnswers()
	want := WrongAnswer{Word: "apple", CorrectAnswer: "a fruit", UserAnswer: q.Options[choice].Text, QuestionNumber: 1}
	if len(wrong) != 1 || wrong[0] != want {
		t.Fatalf("WrongAnswers = %#v", wrong)
	}
	if s.State() != Answered || s.Selected() != choice {
		t.Fatalf("state=%s selected=%d", s.State(), s.Selected())
	}
}

func TestSubmitOnce(t *testing.T) {
	s := newSession(10)
	s.Start()
	q, _ := s.Current()
	if _, err := s.Submit(wrongChoice(q)); err != nil {
		t.Fatal(err)
	}
	_, err := s.Submit(q.Correct())
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("second Submit err = %v", err)
	}
	if s.Score() != 0 || s.Answered() != 1 || len(s.WrongAnswers()) != 1 {
		t.Fatalf("second Submit changed the session: score=%d answered=%d wrong=%d",
			s.Score(), s.Answered(), len(s.WrongAnswers()))
	}
}

func TestSubmitErrors(t *testing.T) {
	s := newSession(10)
	if _, err := s.Submit(0); !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("Submit in Setup err = %v", err)
	}
	s.Start()
	if _, err := s.Submit(OptionCount); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("out of range err = %v", err)
	}
	if s.State() != Asking || s.Answered() != 0 {
		t.Fatalf("invalid option changed state %s answered %d", s.State(), s.Answered())
	}
}

func TestStreak(t *testing.T) {
	s := newSession(10)
	s.Start()
	for i := 0; i < 3; i++ {
		q, _ := s.Current()
		if ok, _ := s.Submit(q.Correct()); !ok {
			t.Fatal("correct option scored wrong")
		}
		s.Next()
	}
	if s.Streak() != 3 || s.Score() != 3 {
		t.Fatalf("streak=%d score=%d", s.Streak(), s.Score())
	}
	q, _ := s.Current()
	s.Submit(wrongChoice(q))
	if s.Streak() != 0 || s.BestStreak() != 3 {
		t.Fatalf("streak=%d best=%d", s.Streak(), s.BestStreak())
	}
	if w := s.WrongAnswers(); len(w) != 1 || w[0].QuestionNumber != 4 {
		t.Fatalf("WrongAnswers = %#v", w)
	}
}

func TestSessionCompletes(t *testing.T) {
	s := newSession(10)
	if s.State() != Setup {
		t.Fatalf("new session in %s", s.State())
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	wrong := 0
	for i := 0; i < 10; i++ {
		if s.State() != Asking {
			t.Fatalf("question %d in state %s", i+1, s.State())
		}
		q, _ := s.Current()
		choice := q.Correct()
		if i%3 == 0 {
			choice = wrongChoice(q)
			wrong++
		}
		s.Submit(choice)
		if err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if s.State() != Completed || !s.Done() {
		t.Fatalf("state = %s", s.State())
	}
	if s.Answered() != 10 || s.Score() != 10-wrong || len(s.WrongAnswers()) != wrong {
		t.Fatalf("answered=%d score=%d wrong=%d", s.Answered(), s.Score(), len(s.WrongAnswers()))
	}
	if s.Accuracy() != (10-wrong)*10 {
		t.Fatalf("Accuracy = %d", s.Accuracy())
	}
	for i, w := range s.WrongAnswers() {
		if w.QuestionNumber != i*3+1 {
			t.Errorf("wrong answer %d has number %d", i, w.QuestionNumber)
		}
	}
	if _, ok := s.Current(); ok {
		t.Error("completed session still has a question")
	}
	if err := s.Next(); err == nil {
		t.Error("Next after Completed succeeded")
	}

	s.Restart()
	if s.State() != Setup || s.Answered() != 0 || s.Score() != 0 || len(s.WrongAnswers()) != 0 || s.Target() != 10 {
		t.Fatalf("Restart left state=%s answered=%d target=%d", s.State(), s.Answered(), s.Target())
	}
}

func TestSetTargetResets(t *testing.T) {
	s := newSession(0)
	if s.Target() != DefaultTarget {
		t.Fatalf("Target = %d", s.Target())
	}
	s.Start()
	q, _ := s.Current()
	s.Submit(q.Correct())
	if err := s.SetTarget(20); err != nil {
		t.Fatal(err)
	}
	if s.State() != Setup || s.Answered() != 0 || s.Score() != 0 || s.Target() != 20 {
		t.Fatalf("SetTarget left state=%s answered=%d score=%d", s.State(), s.Answered(), s.Score())
	}
	if err := s.SetTarget(0); err == nil {
		t.Error("SetTarget(0) succeeded")
	}
}

func TestSmallPool(t *testing.T) {
	s := NewSession(NewGenerator(nil), testPool()[:2], 10)
	if s.CanStart() {
		t.Fatal("CanStart with 2 words")
	}
	if err := s.Start(); !errors.Is(err, ErrPoolTooSmall) {
		t.Fatalf("Start err = %v", err)
	}
	if s.State() != Setup {
		t.Fatalf("state = %s", s.State())
	}
	s.SetPool(testPool())
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
}
