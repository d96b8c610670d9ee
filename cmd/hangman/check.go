package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/image"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate configuration files",
	Long: `Parse every file on its own and report the number of secrets and the
image it defines, or the error that stops it from being played.

Examples:
  hangman check words.txt
  hangman check *.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rng := rand.New(rand.NewSource(1))

	failed := 0
	for _, path := range args {
		summary, err := checkFile(path, rng)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: FAIL\n%v\n\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: OK, %s\n", path, summary)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}

// checkFile parses one file and describes what would be played.
func checkFile(path string, rng *rand.Rand) (string, error) {
	src, err := config.Load([]string{path})
	if err != nil {
		return "", err
	}
	parsed, err := config.Parse(src.Text)
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf("%d secrets", len(parsed.Secrets))
	if parsed.Image == nil {
		return summary + ", built-in image", nil
	}

	im, err := image.Build(*parsed.Image, rng)
	if err != nil {
		logger.Warn("custom image ignored", "file", path, "error", err)
		return fmt.Sprintf("%s, built-in image (%s)", summary, parsed.Scheme()), nil
	}
	w, h := im.Dimension()
	return fmt.Sprintf("%s, custom image %dx%d (%s)", summary, w, h, parsed.Scheme()), nil
}
