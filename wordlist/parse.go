package wordlist

import (
	"strings"
)

const (
	fieldSep = ','
	quote    = '"'
)

// Parse converts a resource into words. The first non-blank line is the
// header and is never turned into a word. Rows without a term are dropped.
func Parse(text string) []Word {
	words := []Word{}
	header := true
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		w := wordFromFields(SplitFields(line))
		if w.Term == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// SplitFields splits one line on commas outside double quotes. A quote only
// toggles quoted mode and is never kept, so "" does not collapse to ".
// Unbalanced quotes stay open until the end of the line.
func SplitFields(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for _, c := range line {
		switch {
		case c == quote:
			inQuotes = !inQuotes
		case c == fieldSep && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(c)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}

func wordFromFields(fields []string) Word {
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}
	return Word{
		Term:          get(0),
		Pronunciation: get(1),
		Meaning:       get(2),
		PartOfSpeech:  get(3),
		Example:       get(4),
	}
}

// CountEntries counts non-blank lines after the header.
func CountEntries(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return n - 1
}
