package study

import (
	"math/rand"

	"github.com/lai323/vocabcard/wordlist"
)

// Deck walks through flashcards one at a time.
type Deck struct {
	loaded  []wordlist.Word
	words   []wordlist.Word
	index   int
	flipped bool
}

func NewDeck(words []wordlist.Word) *Deck {
	d := &Deck{loaded: words}
	d.Reset()
	return d
}

func (d *Deck) Current() (wordlist.Word, bool) {
	if len(d.words) == 0 {
		return wordlist.Word{}, false
	}
	return d.words[d.index], true
}

func (d *Deck) Words() []wordlist.Word { return d.words }
func (d *Deck) Index() int             { return d.index }
func (d *Deck) Len() int               { return len(d.words) }
func (d *Deck) Flipped() bool          { return d.flipped }

func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

// Next moves forward, stopping at the last card.
func (d *Deck) Next() bool {
	if d.index >= len(d.words)-1 {
		return false
	}
	d.index++
	d.flipped = false
	return true
}

// Prev moves back, stopping at the first card.
func (d *Deck) Prev() bool {
	if d.index == 0 {
		return false
	}
	d.index--
	d.flipped = false
	return true
}

// Shuffle reorders the cards and goes back to the first one.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.words), func(i, j int) {
		d.words[i], d.words[j] = d.words[j], d.words[i]
	})
	d.index = 0
	d.flipped = false
}

// Reset restores the order the words were loaded in.
func (d *Deck) Reset() {
	d.words = make([]wordlist.Word, len(d.loaded))
	copy(d.words, d.loaded)
	d.index = 0
	d.flipped = false
}

// Progress is the position of the current card as a percentage.
func (d *Deck) Progress() float64 {
	if len(d.words) == 0 {
		return 0
	}
	return float64(d.index+1) / float64(len(d.words)) * 100
}
