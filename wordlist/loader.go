package wordlist

import (
	"context"
)

// Loader fetches category resources and parses them. Nothing is parsed when
// the fetch fails.
type Loader struct {
	Source Source
}

func NewLoader(src Source) *Loader {
	return &Loader{Source: src}
}

func (l *Loader) Load(ctx context.Context, id string) ([]Word, error) {
	text, err := l.Source.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Count is the number of entries the category screen shows for id.
func (l *Loader) Count(ctx context.Context, id string) (int, error) {
	text, err := l.Source.Fetch(ctx, id)
	if err != nil {
		return 0, err
	}
	return CountEntries(text), nil
}

func (l *Loader) Discover(ctx context.Context) ([]string, error) {
	return l.Source.List(ctx)
}
