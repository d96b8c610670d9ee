// Package plain is a line based front-end for input that does not come from
// a terminal, e.g. a pipe or a script. Every input line is one keystroke.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Run plays until the last secret is guessed or the input ends.
func Run(b *backend.Backend, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := draw(out, b); err != nil {
			return err
		}
		if b.State() == hangman.VictoryFinal {
			return nil
		}

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			line = "\n"
		}
		b.ProcessInput(line)
	}
}

func draw(w io.Writer, b *backend.Backend) error {
	instructions := b.RenderInstructions()
	if b.State() != hangman.VictoryFinal {
		instructions += " [Enter]"
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n\n%s\n",
		b.RenderImage(), b.RenderSecret(), b.RenderStatus(), instructions)
	return err
}
