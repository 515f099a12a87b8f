package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lai323/vocabcard/app"
	vocabconfig "github.com/lai323/vocabcard/config"
	"github.com/lai323/vocabcard/flashcard"
	"github.com/lai323/vocabcard/study"
	"github.com/lai323/vocabcard/vocab"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	sourceOption string
	logOption    string
	discover     bool
	studyOpt     flashcard.CliOptions
	listOpt      vocab.CliOptions

	config  vocabconfig.Config
	rootCmd = &cobra.Command{
		Use:   "vocabcard",
		Short: "study vocabulary with flashcards and quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return app.Start(config.Loader(), config.Speaker(), app.Options{
				Questions: config.QuizQuestions,
			})
		},
	}
	studyCmd = &cobra.Command{
		Use:   "study <category>",
		Short: "study one category with flashcards or a quiz",
		Args:  flashcard.ValidateCli(&studyOpt),
		RunE:  flashcard.Run(&config, &studyOpt),
	}
	listCmd = &cobra.Command{
		Use:   "list <category>",
		Short: "browse the words of one category",
		Args:  vocab.ValidateCli(&listOpt),
		RunE:  vocab.Run(&config, &listOpt, os.Stdout, startList),
	}
	categoriesCmd = &cobra.Command{
		Use:   "categories",
		Short: "list categories and their word counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return printCategories(cmd.OutOrStdout(), config.Loader(), discover)
		},
	}
	pathsCmd = &cobra.Command{
		Use:   "paths",
		Short: "show the config, data and log locations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printPaths(cmd.OutOrStdout(), config, configPath)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default is %s)", vocabconfig.DefaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&sourceOption, "source", "", "word list base URL or directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&logOption, "log", "", fmt.Sprintf("log file (default is %s)", vocabconfig.DefaultLogFile))

	studyCmd.Flags().BoolVar(&studyOpt.Quiz, "quiz", false, "start in quiz mode")
	studyCmd.Flags().IntVar(&studyOpt.Questions, "questions", 0, "quiz length, one of 10, 20, 50")
	studyCmd.Flags().BoolVar(&studyOpt.Shuffle, "shuffle", false, "shuffle the cards")

	listCmd.Flags().StringVar(&listOpt.Search, "search", "", "only words or meanings containing this text")
	listCmd.Flags().StringVar(&listOpt.Pos, "pos", "", "only this part of speech")
	listCmd.Flags().StringVar(&listOpt.Sort, "sort", "", "alphabetical, partOfSpeech or none")
	listCmd.Flags().BoolVar(&listOpt.Plain, "plain", false, "print the list instead of opening it")

	categoriesCmd.Flags().BoolVar(&discover, "discover", false, "list the categories found at the source")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(pathsCmd)
}

func initConfig() {
	var err error
	config, err = vocabconfig.InitConfig(afero.NewOsFs(), configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.Source = vocabconfig.GetStringOption(sourceOption, config.Source)
	config.LogFile = vocabconfig.GetStringOption(logOption, config.LogFile)

	// the terminal belongs to the TUI, so logs go to a file
	if config.LogFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
		log.Fatal(err)
	}
	if _, err := tea.LogToFile(config.LogFile, "vocabcard"); err != nil {
		log.Fatal(err)
	}
}

func startList(categoryID string, query study.Query) error {
	return app.StartList(categoryID, query, config.Loader(), config.Speaker(), app.Options{
		Questions: config.QuizQuestions,
	})
}
