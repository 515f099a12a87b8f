package wordlist

import (
	"reflect"
	"testing"
)

const header = "word,pronunciation,meaning,partOfSpeech,example\n"

func TestParsePlainLine(t *testing.T) {
	words := Parse(header + "apple , /ˈæp.əl/, a fruit ,noun, I ate an apple.")
	want := []Word{{
		Term:          "apple",
		Pronunciation: "/ˈæp.əl/",
		Meaning:       "a fruit",
		PartOfSpeech:  "noun",
		Example:       "I ate an apple.",
	}}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Parse = %#v, want %#v", words, want)
	}
}

func TestParseQuotedFields(t *testing.T) {
	words := Parse(header + `"Hello, world",/hə'ləʊ/,greeting,phrase,"She said, ""hi"""`)
	if len(words) != 1 {
		t.Fatalf("got %d words", len(words))
	}
	w := words[0]
	if w.Term != "Hello, world" {
		t.Errorf("Term = %q", w.Term)
	}
	if w.Meaning != "greeting" || w.PartOfSpeech != "phrase" {
		t.Errorf("fields shifted: %#v", w)
	}
	if w.Example != "She said, hi" {
		t.Errorf("Example = %q", w.Example)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	text := "\n  \n" + header + "\n" +
		"cat,/kæt/,an animal,noun,\n" +
		"   \n\n" +
		"run,/rʌn/,to move fast,verb,He runs.\r\n"
	words := Parse(text)
	if len(words) != 2 {
		t.Fatalf("got %d words: %#v", len(words), words)
	}
	if words[1].Term != "run" || words[1].Meaning != "to move fast" || words[1].Example != "He runs." {
		t.Errorf("second word misaligned: %#v", words[1])
	}
	if words[0].HasExample() {
		t.Errorf("cat has no example: %#v", words[0])
	}
}

func TestParseHeaderNeverAWord(t *testing.T) {
	words := Parse("apple,/x/,a fruit,noun,ex\npear,/y/,another fruit,noun,ex")
	if len(words) != 1 || words[0].Term != "pear" {
		t.Fatalf("Parse = %#v", words)
	}
	if got := Parse(header); len(got) != 0 {
		t.Fatalf("header only gave %#v", got)
	}
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("empty input gave %#v", got)
	}
}

func TestParseDropsEmptyTerm(t *testing.T) {
	words := Parse(header + ",/x/,nothing,noun\n   ,/y/,blank,noun\nok,,,,")
	if len(words) != 1 || words[0].Term != "ok" {
		t.Fatalf("Parse = %#v", words)
	}
}

func TestParseMissingFields(t *testing.T) {
	words := Parse(header + "solo\nduo,/d/")
	want := []Word{{Term: "solo"}, {Term: "duo", Pronunciation: "/d/"}}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Parse = %#v, want %#v", words, want)
	}
}

func TestSplitFields(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`a,"b,c`, []string{"a", "b,c"}},
		{`x""y,z`, []string{"xy", "z"}},
		{"", []string{""}},
		{"a,,", []string{"a", "", ""}},
	}
	for _, c := range cases {
		if got := SplitFields(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitFields(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestCountEntries(t *testing.T) {
	cases := map[string]int{
		"":                        0,
		header:                    0,
		header + "a\nb\n\n":       2,
		"\n" + header + "\n,x\n":  1,
	}
	for text, want := range cases {
		if got := CountEntries(text); got != want {
			t.Errorf("CountEntries(%q) = %d, want %d", text, got, want)
		}
	}
}
