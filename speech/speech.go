// Package speech reads words aloud through an external text-to-speech command.
package speech

import (
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

const (
	DefaultPath   = "espeak"
	DefaultLocale = "en-us"
	DefaultRate   = 0.8
	// baseWPM is the words per minute a rate of 1 maps to.
	baseWPM = 175
)

var DefaultArgs = []string{"-v", "{locale}", "-s", "{wpm}", "{text}"}

type Speaker struct {
	Path   string
	Args   []string
	Locale string
	Rate   float64
}

// Available reports whether the speech command can be run.
func (s Speaker) Available() bool {
	if s.Path == "" {
		return false
	}
	_, err := exec.LookPath(s.Path)
	return err == nil
}

// Speak blocks until text has been spoken. Without a usable command it does
// nothing.
func (s Speaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || !s.Available() {
		return nil
	}
	return exec.CommandContext(ctx, s.Path, s.expandArgs(text)...).Run()
}

func (s Speaker) expandArgs(text string) []string {
	rate := s.Rate
	if rate <= 0 {
		rate = DefaultRate
	}
	locale := s.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	r := strings.NewReplacer(
		"{text}", text,
		"{locale}", locale,
		"{rate}", strconv.FormatFloat(rate, 'f', -1, 64),
		"{wpm}", strconv.Itoa(int(math.Round(rate*baseWPM))),
	)

	args := make([]string, 0, len(s.Args)+1)
	hasText := false
	for _, a := range s.Args {
		if strings.Contains(a, "{text}") {
			hasText = true
		}
		args = append(args, r.Replace(a))
	}
	if !hasText {
		args = append(args, text)
	}
	return args
}
