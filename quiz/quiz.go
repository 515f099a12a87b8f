// Package quiz builds multiple-choice meaning questions from a word pool and
// keeps the score of a quiz run.
package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/lai323/vocabcard/wordlist"
)

const (
	// OptionCount is the number of choices per question.
	OptionCount = 4
	distractors = OptionCount - 1
)

var ErrPoolTooSmall = errors.New("quiz needs at least 4 words")

type Option struct {
	Text      string
	IsCorrect bool
}

type Question struct {
	Prompt  wordlist.Word
	Options [OptionCount]Option
}

// Correct returns the index of the correct option.
func (q Question) Correct() int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}

type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a generator drawing from src. A nil src is seeded from
// the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rand: rand.New(src)}
}

// Generate picks a prompt word uniformly from pool and three distinct other
// words as distractors. Distractor meanings are not deduplicated against the
// answer or each other.
func (g *Generator) Generate(pool []wordlist.Word) (Question, error) {
	var q Question
	if len(pool) < OptionCount {
		return q, ErrPoolTooSmall
	}

	prompt := g.rand.Intn(len(pool))
	rest := make([]wordlist.Word, 0, len(pool)-1)
	rest = append(rest, pool[:prompt]...)
	rest = append(rest, pool[prompt+1:]...)
	g.rand.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	q.Prompt = pool[prompt]
	for i, w := range rest[:distractors] {
		q.Options[i] = Option{Text: w.Meaning}
	}
	q.Options[distractors] = Option{Text: q.Prompt.Meaning, IsCorrect: true}
	g.rand.Shuffle(OptionCount, func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
	return q, nil
}
