package study

import "sort"

// TermSet is a set of word terms, used for favorites and known words.
type TermSet map[string]struct{}

// Toggle adds term when missing and removes it otherwise. It reports whether
// term was added.
func (s TermSet) Toggle(term string) bool {
	if _, ok := s[term]; ok {
		delete(s, term)
		return false
	}
	s[term] = struct{}{}
	return true
}

func (s TermSet) Has(term string) bool {
	_, ok := s[term]
	return ok
}

func (s TermSet) Len() int {
	return len(s)
}

func (s TermSet) Terms() []string {
	terms := make([]string, 0, len(s))
	for t := range s {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Marks holds what the learner flagged while a view is open.
type Marks struct {
	Favorites TermSet
	Known     TermSet
}

func NewMarks() *Marks {
	return &Marks{Favorites: TermSet{}, Known: TermSet{}}
}
