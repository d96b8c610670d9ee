package plain

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func newBackend(t *testing.T, cfg string) *backend.Backend {
	t.Helper()
	b, err := backend.New(cfg, backend.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return b
}

func TestRunUntilVictory(t *testing.T) {
	b := newBackend(t, "secrets:\n- ab\nimage: |1\n xy\n")
	var out bytes.Buffer

	err := Run(b, strings.NewReader("a\n\nb\nignored\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, hangman.VictoryFinal, b.State())
	assert.Contains(t, out.String(), " _ _\n")
	assert.Contains(t, out.String(), " a _\n")
	assert.True(t, strings.HasSuffix(out.String(), "Congratulations! You won! All secrets are guessed.\n"))
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	b := newBackend(t, "secrets:\n- abc\n")
	var out bytes.Buffer

	err := Run(b, strings.NewReader("x\r\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, hangman.Ongoing, b.State())
	assert.Contains(t, out.String(), "Lives: 6\tLast guess: x")
	assert.Contains(t, out.String(), "Type a letter: [Enter]")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunReportsWriteErrors(t *testing.T) {
	b := newBackend(t, "secrets:\n- abc\n")

	err := Run(b, strings.NewReader("a\n"), failingWriter{})
	assert.EqualError(t, err, "closed")
}
