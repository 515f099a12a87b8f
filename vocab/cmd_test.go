package vocab

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lai323/vocabcard/config"
	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/wordlist"
	"github.com/spf13/cobra"
)

func TestPrintList(t *testing.T) {
	words := wordlist.Parse(deck)
	var buf bytes.Buffer
	err := PrintList(&buf, words, study.Query{PartOfSpeech: "verb"})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "eat ") || !strings.HasSuffix(lines[0], "to have food") {
		t.Errorf("first row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "run ") {
		t.Errorf("second row = %q", lines[1])
	}
	if lines[3] != "2 of 5 words" {
		t.Errorf("summary = %q", lines[3])
	}
}

func TestValidateCli(t *testing.T) {
	cases := []struct {
		options CliOptions
		args    []string
		ok      bool
	}{
		{CliOptions{}, []string{"oxford_a1"}, true},
		{CliOptions{Sort: "partOfSpeech"}, []string{"toeic"}, true},
		{CliOptions{Sort: "size"}, []string{"toeic"}, false},
		{CliOptions{}, nil, false},
		{CliOptions{}, []string{"a", "b"}, false},
	}
	for i, c := range cases {
		options := c.options
		err := ValidateCli(&options)(&cobra.Command{}, c.args)
		if (err == nil) != c.ok {
			t.Errorf("case %d: err = %v", i, err)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "oxford_a1.csv"), []byte(deck), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig
	cfg.Source = dir

	var started string
	var query study.Query
	starter := func(id string, q study.Query) error {
		started, query = id, q
		return nil
	}

	options := CliOptions{Search: "o", Sort: "none"}
	var buf bytes.Buffer
	if err := Run(&cfg, &options, &buf, starter)(&cobra.Command{}, []string{"oxford_a1"}); err != nil {
		t.Fatal(err)
	}
	if started != "oxford_a1" || query.Search != "o" || query.Sort != study.SortNone || buf.Len() != 0 {
		t.Fatalf("started=%q query=%+v out=%q", started, query, buf.String())
	}

	started = ""
	options.Plain = true
	if err := Run(&cfg, &options, &buf, starter)(&cobra.Command{}, []string{"oxford_a1"}); err != nil {
		t.Fatal(err)
	}
	if started != "" || !strings.Contains(buf.String(), "3 of 5 words") {
		t.Fatalf("started=%q out=%q", started, buf.String())
	}

	if err := Run(&cfg, &options, &buf, starter)(&cobra.Command{}, []string{"toeic"}); err == nil {
		t.Fatal("missing category listed")
	}
}
