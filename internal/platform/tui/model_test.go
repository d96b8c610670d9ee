package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/backend"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// smallConfig keeps the whole view on a default sized screen.
const smallConfig = "secrets:\n- ab\nimage: |1\n xy\n"

func newTestModel(t *testing.T, cfg string) Model {
	t.Helper()
	b, err := backend.New(cfg, backend.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return NewModel(b, core.DefaultConfig())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyInput(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{runes("a"), "a"},
		{tea.KeyMsg{Type: tea.KeySpace}, " "},
		{tea.KeyMsg{Type: tea.KeyEnter}, "\n"},
		{tea.KeyMsg{Type: tea.KeyUp}, "\n"},
	}

	for _, tt := range tests {
		if got := keyInput(tt.msg); got != tt.want {
			t.Errorf("keyInput(%v) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestModelGuessesAndQuitsAfterLastSecret(t *testing.T) {
	m := newTestModel(t, smallConfig)

	next, cmd := m.Update(runes("a"))
	assert.Nil(t, cmd)
	next, cmd = next.Update(runes("b"))
	assert.Nil(t, cmd)

	m = next.(Model)
	assert.Equal(t, hangman.VictoryFinal, m.backend.State())
	assert.Contains(t, m.View(), "Congratulations!")

	next, cmd = m.Update(runes("x"))
	assert.NotNil(t, cmd, "any key ends a finished session")
	assert.Equal(t, "", next.View())
}

func TestModelEnterContinuesAfterRound(t *testing.T) {
	m := newTestModel(t, "secrets:\n- ab\n- cd\nimage: |1\n xy\n")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, hangman.Ongoing, m.backend.State())
	assert.Contains(t, m.backend.RenderStatus(), "Lives: 7", "enter is not a guess")

	for _, c := range "abcd" {
		if m.backend.State() != hangman.Ongoing {
			break
		}
		next, _ = m.Update(runes(string(c)))
		m = next.(Model)
	}
	require.Equal(t, hangman.Victory, m.backend.State())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, hangman.Ongoing, m.backend.State())
	assert.Equal(t, " _ _\n", m.backend.RenderSecret())
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, smallConfig)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, smallConfig)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
}

func TestDrawGame(t *testing.T) {
	b, err := backend.New(smallConfig, backend.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	s := core.NewScreen(40, 16)
	drawGame(s, b)
	out := s.String()

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "┌──┐")
	assert.Contains(t, out, " _ _")
	assert.Contains(t, out, "Lives: 7")
	assert.Contains(t, out, "Type a letter:")
	assert.False(t, strings.Contains(out, "\t"))
}
