package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/image"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery [N]",
	Short: "List or show the built-in images",
	Long: `Without arguments, list the built-in images with their size and artist
credit. With N, print image number N.

Examples:
  hangman gallery
  hangman gallery 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGallery,
}

var galleryFrame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("245")).
	Padding(0, 1)

func runGallery(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	arts := image.Gallery()
	rng := rand.New(rand.NewSource(1))

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n >= len(arts) {
			return fmt.Errorf("image number must be between 0 and %d, got %q", len(arts)-1, args[0])
		}
		im, err := image.FromArt(arts[n], config.DefaultRewardingScheme, rng)
		if err != nil {
			return err
		}
		im.Disclose(0, 1)
		fmt.Fprintln(out, galleryFrame.Render(strings.TrimSuffix(im.String(), "\n")))
		return nil
	}

	for i, art := range arts {
		im, err := image.FromArt(art, config.DefaultRewardingScheme, rng)
		if err != nil {
			return err
		}
		w, h := im.Dimension()
		credit := strings.Join(image.Credits(art), ", ")
		if credit == "" {
			credit = "-"
		}
		fmt.Fprintf(out, "%3d  %3dx%-3d %4d pixels  %s\n", i, w, h, im.Len(), credit)
	}
	return nil
}
