package flashcard

import (
	"errors"
	"fmt"

	"github.com/lai323/vocabcard/config"
	"github.com/lai323/vocabcard/quiz"
	"github.com/spf13/cobra"
)

type CliOptions struct {
	Quiz      bool
	Questions int
	Shuffle   bool
}

func Run(cfg *config.Config, options *CliOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Only one category can be studied at a time")
		}
		*cfg = mergeConfig(*cfg, *options)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return Start(args[0], cfg.Loader(), cfg.Speaker(), Options{
			Quiz:      options.Quiz,
			Questions: cfg.QuizQuestions,
			Shuffle:   options.Shuffle,
		})
	}
}

func ValidateCli(options *CliOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if options.Questions != 0 && !config.IsQuizPreset(options.Questions) {
			return fmt.Errorf("--questions must be one of %v", quiz.Presets)
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
}

func mergeConfig(cfg config.Config, options CliOptions) config.Config {
	cfg.QuizQuestions = config.GetIntOption(options.Questions, cfg.QuizQuestions)
	return cfg
}
