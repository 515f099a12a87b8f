package quiz

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/lai323/vocabcard/wordlist"
)

func testPool() []wordlist.Word {
	return []wordlist.Word{
		{Term: "apple", Meaning: "a fruit", Example: "I ate an apple."},
		{Term: "book", Meaning: "a thing to read"},
		{Term: "cat", Meaning: "an animal"},
		{Term: "dog", Meaning: "an animal"},
		{Term: "eat", Meaning: "to have food"},
	}
}

func TestGenerateOptions(t *testing.T) {
	pool := testPool()
	gen := NewGenerator(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		q, err := gen.Generate(pool)
		if err != nil {
			t.Fatal(err)
		}
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
				if o.Text != q.Prompt.Meaning {
					t.Fatalf("correct option %q is not the prompt meaning %q", o.Text, q.Prompt.Meaning)
				}
			}
		}
		if correct != 1 {
			t.Fatalf("question %d has %d correct options", i, correct)
		}
		if q.Options[q.Correct()].Text != q.Prompt.Meaning {
			t.Fatalf("Correct() points at %q", q.Options[q.Correct()].Text)
		}
	}
}

func TestGenerateDistinctDistractors(t *testing.T) {
	// Unique meanings so each option text identifies one pool word.
	pool := []wordlist.Word{}
	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		pool = append(pool, wordlist.Word{Term: term, Meaning: "meaning of " + term})
	}
	gen := NewGenerator(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		q, err := gen.Generate(pool)
		if err != nil {
			t.Fatal(err)
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if seen[o.Text] {
				t.Fatalf("duplicate option %q", o.Text)
			}
			seen[o.Text] = true
			if !o.IsCorrect && o.Text == q.Prompt.Meaning {
				t.Fatalf("prompt used as distractor")
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	pool := testPool()
	q1, _ := NewGenerator(rand.NewSource(42)).Generate(pool)
	q2, _ := NewGenerator(rand.NewSource(42)).Generate(pool)
	if !reflect.DeepEqual(q1, q2) {
		t.Fatalf("same seed gave %#v and %#v", q1, q2)
	}
}

func TestGenerateEveryPosition(t *testing.T) {
	gen := NewGenerator(rand.NewSource(3))
	positions := map[int]bool{}
	for i := 0; i < 400; i++ {
		q, _ := gen.Generate(testPool())
		positions[q.Correct()] = true
	}
	if len(positions) != OptionCount {
		t.Fatalf("correct answer only seen at %v", positions)
	}
}

func TestGeneratePoolTooSmall(t *testing.T) {
	_, err := NewGenerator(nil).Generate(testPool()[:3])
	if !errors.Is(err, ErrPoolTooSmall) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewGenerator(nil).Generate(testPool()[:4]); err != nil {
		t.Fatalf("pool of 4: %v", err)
	}
}
