package study

import (
	"errors"
	"sort"
	"strings"

	"github.com/lai323/vocabcard/wordlist"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Sort int

const (
	SortAlphabetical Sort = iota
	SortPartOfSpeech
	SortNone
)

// AllPartsOfSpeech disables the part of speech filter.
const AllPartsOfSpeech = "all"

var ErrUnknownSort = errors.New("unknown sort")

var sortNames = [...]string{"alphabetical", "partOfSpeech", "none"}

func (s Sort) String() string {
	return sortNames[s]
}

// Next cycles through the sort modes.
func (s Sort) Next() Sort {
	return (s + 1) % Sort(len(sortNames))
}

func ParseSort(name string) (Sort, error) {
	for i, n := range sortNames {
		if strings.EqualFold(n, name) {
			return Sort(i), nil
		}
	}
	return SortAlphabetical, ErrUnknownSort
}

// Query filters and orders a word list.
type Query struct {
	Search       string
	PartOfSpeech string
	Sort         Sort
}

func (q Query) matches(w wordlist.Word) bool {
	if q.PartOfSpeech != "" && q.PartOfSpeech != AllPartsOfSpeech && w.PartOfSpeech != q.PartOfSpeech {
		return false
	}
	search := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(w.Term), search) ||
		strings.Contains(strings.ToLower(w.Meaning), search)
}

// Apply returns the matching words in query order. words is not modified.
func (q Query) Apply(words []wordlist.Word) []wordlist.Word {
	found := []wordlist.Word{}
	for _, w := range words {
		if q.matches(w) {
			found = append(found, w)
		}
	}

	col := collate.New(language.English)
	switch q.Sort {
	case SortAlphabetical:
		sort.SliceStable(found, func(i, j int) bool {
			return col.CompareString(found[i].Term, found[j].Term) < 0
		})
	case SortPartOfSpeech:
		sort.SliceStable(found, func(i, j int) bool {
			return col.CompareString(found[i].PartOfSpeech, found[j].PartOfSpeech) < 0
		})
	}
	return found
}

// PartsOfSpeech lists the distinct non-empty parts of speech in words.
func PartsOfSpeech(words []wordlist.Word) []string {
	seen := map[string]bool{}
	parts := []string{}
	for _, w := range words {
		if w.PartOfSpeech == "" || seen[w.PartOfSpeech] {
			continue
		}
		seen[w.PartOfSpeech] = true
		parts = append(parts, w.PartOfSpeech)
	}
	sort.Strings(parts)
	return parts
}

// NextPartOfSpeech cycles "all" -> parts[0] -> ... -> "all".
func NextPartOfSpeech(current string, parts []string) string {
	if current == "" || current == AllPartsOfSpeech {
		if len(parts) == 0 {
			return AllPartsOfSpeech
		}
		return parts[0]
	}
	for i, p := range parts {
		if p == current && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return AllPartsOfSpeech
}
