package vocab

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/wordlist"
)

// PrintList writes the words matching query as aligned plain text columns.
func PrintList(w io.Writer, words []wordlist.Word, query study.Query) error {
	shown := query.Apply(words)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, word := range shown {
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", word.Term, word.Pronunciation, word.PartOfSpeech, word.Meaning)
		if err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d words\n", len(shown), len(words))
	return err
}
