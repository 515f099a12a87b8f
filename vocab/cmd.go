package vocab

import (
	"context"
	"fmt"
	"io"

	"github.com/lai323/vocabcard/config"
	"github.com/lai323/vocabcard/study"
	"github.com/spf13/cobra"
)

type CliOptions struct {
	Search string
	Pos    string
	Sort   string
	Plain  bool
}

// Run lists a category, printing it when Plain is set and handing the query
// to uistarter otherwise.
func Run(cfg *config.Config, options *CliOptions, out io.Writer, uistarter func(categoryID string, query study.Query) error) func(*cobra.Command, []string) error {

	return func(cmd *cobra.Command, args []string) error {
		query, err := buildQuery(*options)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if !options.Plain {
			err = uistarter(args[0], query)
			if err != nil {
				return fmt.Errorf("Unable to start UI: %w", err)
			}
			return nil
		}

		words, err := cfg.Loader().Load(context.Background(), args[0])
		if err != nil {
			return err
		}
		return PrintList(out, words, query)
	}
}

func ValidateCli(options *CliOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := buildQuery(*options); err != nil {
			return err
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
}

func buildQuery(options CliOptions) (study.Query, error) {
	query := study.Query{
		Search:       options.Search,
		PartOfSpeech: options.Pos,
	}
	if options.Sort != "" {
		sort, err := study.ParseSort(options.Sort)
		if err != nil {
			return query, fmt.Errorf("--sort %q: %w", options.Sort, err)
		}
		query.Sort = sort
	}
	return query, nil
}
