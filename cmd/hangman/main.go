// hangman is the ASCII-Hangman game for kids, played in the terminal.
//
// Usage:
//
//	hangman [play] [FILE...]   - Play with secrets from FILEs
//	hangman check FILE...      - Validate configuration files
//	hangman init [FILE]        - Write a sample configuration
//	hangman gallery [N]        - List or show built-in images
//
// Global flags:
//
//	--lives <n>        - Wrong guesses allowed per round (default: 7)
//	--seed <value>     - Set RNG seed for reproducible games
//	--log-level <lvl>  - debug, info, warn or error (default: warn)
//	--log-file <path>  - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagLives    int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman [FILE...]",
	Short: "ASCII-Hangman for Kids",
	Long: `ASCII-Hangman for Kids is a hangman game for the terminal. Every
correctly guessed letter discloses a bit more of an ASCII-art picture.

Secrets are read from the configuration files given as arguments. Several
files are concatenated. Without arguments ./` + config.DefaultWordsFile + ` is
read, then ~/.hangman/` + config.DefaultWordsFile + `. If neither exists a
sample file is written and a demo game starts.

Available commands:
  play     - Play (default)
  check    - Validate configuration files
  init     - Write a sample configuration file
  gallery  - List or show the built-in images

Examples:
  hangman
  hangman words.txt animals.txt
  hangman check words.txt
  hangman gallery 3`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: setup,
	RunE:              runPlay,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Defaults shown in --help. setup replaces them with environment values
	// unless the flag was given.
	rootCmd.PersistentFlags().IntVar(&flagLives, "lives", config.DefaultLives, "Wrong guesses allowed per round")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + "\nEnvironment:\n" + config.SettingsUsage())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(galleryCmd)
}

// setup merges environment settings into the flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("lives") {
		flagLives = settings.Lives
	}
	if !flags.Changed("seed") {
		flagSeed = settings.Seed
	}
	if !flags.Changed("log-level") {
		flagLogLevel = settings.LogLevel
	}
	if !flags.Changed("log-file") {
		flagLogFile = settings.LogFile
	}

	if flagLives <= 0 || flagLives > 255 {
		return fmt.Errorf("--lives must be between 1 and 255, got %d", flagLives)
	}

	logger, logSink, err = newLogger(flagLogLevel, flagLogFile)
	return err
}

// newLogger builds the logger. The returned closer is nil when logging to
// stderr.
func newLogger(level, path string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           lvl,
	})
	return l, closer, nil
}
