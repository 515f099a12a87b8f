package config

import (
	"fmt"
	"log"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/lai323/vocabcard/quiz"
	"github.com/lai323/vocabcard/speech"
	"github.com/lai323/vocabcard/wordlist"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const appName = "vocabcard"

type Config struct {
	// Source is a base URL or a directory holding {category}.csv files.
	Source        string        `yaml:"Source"`
	Timeout       time.Duration `yaml:"Timeout"`
	QuizQuestions int           `yaml:"QuizQuestions"`
	SpeechPath    string        `yaml:"SpeechPath"`
	SpeechArgs    []string      `yaml:"SpeechArgs"`
	SpeechLocale  string        `yaml:"SpeechLocale"`
	SpeechRate    float64       `yaml:"SpeechRate"`
	LogFile       string        `yaml:"LogFile"`
}

var (
	DefaultConfig     Config
	DefaultConfigDir  string
	DefaultConfigPath string
	DefaultDataDir    string
	DefaultLogFile    string
)

func init() {
	DefaultConfigDir = path.Join(xdg.ConfigHome, appName)
	DefaultConfigPath = path.Join(DefaultConfigDir, appName+".yaml")
	DefaultDataDir = path.Join(xdg.DataHome, appName)
	DefaultLogFile = path.Join(xdg.StateHome, appName, appName+".log")
	DefaultConfig = Config{
		Source:        DefaultDataDir,
		Timeout:       10 * time.Second,
		QuizQuestions: quiz.DefaultTarget,
		SpeechPath:    speech.DefaultPath,
		SpeechArgs:    speech.DefaultArgs,
		SpeechLocale:  speech.DefaultLocale,
		SpeechRate:    speech.DefaultRate,
		LogFile:       DefaultLogFile,
	}
}

type initConfigErr struct {
	s string
}

func (e *initConfigErr) Error() string {
	return e.s
}

func newInitConfigErr(err error) error {
	return &initConfigErr{
		s: fmt.Sprintf("Init config error: %s", err.Error()),
	}
}

func createDefaultFile(fs afero.Fs) error {
	err := fs.MkdirAll(DefaultConfigDir, 0755)
	if err != nil {
		return err
	}
	err = fs.MkdirAll(DefaultDataDir, 0755)
	if err != nil {
		return err
	}

	exist, err := afero.Exists(fs, DefaultConfigPath)
	if err != nil {
		return err
	}

	if !exist {
		handle, err := fs.Create(DefaultConfigPath)
		if err != nil {
			return err
		}
		defer handle.Close()
		err = yaml.NewEncoder(handle).Encode(&DefaultConfig)
		if err != nil {
			return err
		}
		log.Printf("[INFO] wrote default config %s", DefaultConfigPath)
	}
	return nil
}

// InitConfig reads the config file at configPathOption, or the default file
// which is created on first use. Fields missing from the file keep their
// default values.
func InitConfig(fs afero.Fs, configPathOption string) (Config, error) {
	config := DefaultConfig
	var configfile string

	if configPathOption == "" {
		err := createDefaultFile(fs)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		configfile = DefaultConfigPath
	} else {
		exist, err := afero.Exists(fs, configPathOption)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		if !exist {
			return config, &initConfigErr{
				s: fmt.Sprintf("Init config error: %s not exist", configPathOption),
			}
		}
		configfile = configPathOption
	}

	handle, err := fs.Open(configfile)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	defer handle.Close()
	err = yaml.NewDecoder(handle).Decode(&config)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	return config, nil
}

// Validate checks the values the commands depend on.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("Source empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid Timeout %s", c.Timeout)
	}
	if !IsQuizPreset(c.QuizQuestions) {
		return fmt.Errorf("invalid QuizQuestions %d, choose one of %v", c.QuizQuestions, quiz.Presets)
	}
	if c.SpeechRate <= 0 {
		return fmt.Errorf("invalid SpeechRate %v", c.SpeechRate)
	}
	return nil
}

func (c Config) Speaker() speech.Speaker {
	return speech.Speaker{
		Path:   c.SpeechPath,
		Args:   c.SpeechArgs,
		Locale: c.SpeechLocale,
		Rate:   c.SpeechRate,
	}
}

// Loader reads category resources from Source.
func (c Config) Loader() *wordlist.Loader {
	return wordlist.NewLoader(wordlist.NewSource(c.Source, c.Timeout))
}

func IsQuizPreset(n int) bool {
	for _, p := range quiz.Presets {
		if p == n {
			return true
		}
	}
	return false
}

// GetStringOption prefers a flag value over the config file value.
func GetStringOption(option, configValue string) string {
	if option != "" {
		return option
	}
	return configValue
}

func GetIntOption(option, configValue int) int {
	if option != 0 {
		return option
	}
	return configValue
}
