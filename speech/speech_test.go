package speech

import (
	"context"
	"reflect"
	"testing"
)

func TestExpandArgs(t *testing.T) {
	cases := []struct {
		s    Speaker
		want []string
	}{
		{
			Speaker{Args: DefaultArgs, Locale: "en-gb", Rate: 0.8},
			[]string{"-v", "en-gb", "-s", "140", "hello"},
		},
		{
			Speaker{Args: []string{"--rate={rate}"}},
			[]string{"--rate=0.8", "hello"},
		},
		{
			Speaker{Args: []string{"-l", "{locale}", "say: {text}"}, Rate: 1},
			[]string{"-l", "en-us", "say: hello"},
		},
	}
	for _, c := range cases {
		if got := c.s.expandArgs("hello"); !reflect.DeepEqual(got, c.want) {
			t.Errorf("expandArgs(%+v) = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestSpeakWithoutCommand(t *testing.T) {
	for _, s := range []Speaker{
		{},
		{Path: "vocabcard-no-such-speech-command"},
	} {
		if s.Available() {
			t.Errorf("%q should not be available", s.Path)
		}
		if err := s.Speak(context.Background(), "hello"); err != nil {
			t.Errorf("Speak with %q: %v", s.Path, err)
		}
	}
}
