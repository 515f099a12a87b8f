package ui

import (
	"strings"
	"testing"

	"github.com/lai323/vocabcard/wordlist"
	"github.com/muesli/reflow/ansi"
)

func TestLine(t *testing.T) {
	line := Line(
		20,
		Cell{
			Align: LeftAlign,
			Text:  StyleOption("|一二三四五六七八九十"),
		},
		Cell{
			Align: RightAlign,
			Text:  StyleOption("|abcdefghij"),
		},
	)
	if w := ansi.PrintableRuneWidth(line); w != 20 {
		t.Fatalf("line width %d: %q", w, line)
	}

	line = Line(10, Cell{Width: 4, Text: "ab"}, Cell{Text: "cd", Align: RightAlign})
	if line != "ab      cd" {
		t.Fatalf("Line = %q", line)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 3, "abc"},
		{"abc", 5, "abc"},
		{"一二三", 5, "一二"},
		{"abc", 0, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestCardModel(t *testing.T) {
	w := wordlist.Word{Term: "apple", Pronunciation: "/ˈæp.əl/", Meaning: "a fruit", PartOfSpeech: "noun", Example: "I ate an apple."}
	front := CardModel{Word: w}.View()
	if !strings.Contains(front, "apple") || strings.Contains(front, "a fruit") {
		t.Fatalf("front = %q", front)
	}
	back := CardModel{Word: w, Flipped: true, Favorite: true}.View()
	if !strings.Contains(back, "a fruit") || !strings.Contains(back, "I ate an apple.") || !strings.Contains(back, "favorite") {
		t.Fatalf("back = %q", back)
	}
}

func TestHelpModel(t *testing.T) {
	v := HelpModel{Keyhelp: [][]string{{"?", "back"}, {"space", "flip"}}}.View()
	if !strings.Contains(v, "flip") || !strings.Contains(v, "space") {
		t.Fatalf("help = %q", v)
	}
}
