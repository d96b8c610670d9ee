package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/plain"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [FILE...]",
	Short: "Play a game",
	Long: `Start a game with the secrets of the given configuration files.

Controls:
  a-z        - Guess a letter
  Enter      - Next secret (after a round)
  Esc/Ctrl+C - Quit

When stdin is not a terminal, every input line is one guess.

Examples:
  hangman play
  hangman play words.txt
  hangman play --lives 10 --seed 42 words.txt`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	src, err := config.Load(args)
	if err != nil {
		return err
	}
	if src.Demo {
		printDemoNotice(src)
	}
	logger.Debug("configuration loaded", "files", src.Paths, "demo", src.Demo)

	b, err := backend.New(src.Text,
		backend.WithLogger(logger),
		backend.WithLives(flagLives),
		backend.WithSeed(flagSeed),
	)
	if err != nil {
		return fmt.Errorf("error in %s:\n%w", describePaths(src.Paths), err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Debug("no terminal, using line mode")
		return plain.Run(b, os.Stdin, os.Stdout)
	}

	// Get terminal size, the model follows later resizes
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return tui.Run(b, cfg)
}

func printDemoNotice(src config.Source) {
	if src.TemplateErr != nil {
		logger.Warn("could not write configuration template", "error", src.TemplateErr)
		fmt.Fprintln(os.Stderr, "No configuration file found. Starting a demo game.")
		return
	}
	fmt.Fprintf(os.Stderr, "No configuration file found. A sample was written to %s.\n", src.Template)
	fmt.Fprintln(os.Stderr, "Add your own secrets there and start again. Starting a demo game.")
}

func describePaths(paths []string) string {
	if len(paths) == 0 {
		return "configuration"
	}
	return strings.Join(paths, ", ")
}
