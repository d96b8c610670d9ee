package hangman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretGuessing(t *testing.T) {
	s := NewSecret("_ab _cd")

	assert.Equal(t, "_ab _cd", s.Raw())
	assert.Equal(t, " a b   _ _\n", s.String())
	assert.Equal(t, 2, s.HiddenChars())
	assert.False(t, s.IsFullyDisclosed())

	assert.False(t, s.Guess('x'))
	assert.Equal(t, " a b   _ _\n", s.String())
	assert.Equal(t, 2, s.HiddenChars())

	assert.True(t, s.Guess('d'))
	assert.Equal(t, " a b   _ d\n", s.String())
	assert.Equal(t, 1, s.HiddenChars())
	assert.False(t, s.IsFullyDisclosed())

	s.DiscloseAll()
	assert.Equal(t, "_ab _cd", s.Raw())
	assert.Equal(t, " a b   c d\n", s.String())
	assert.Equal(t, 0, s.HiddenChars())
	assert.True(t, s.IsFullyDisclosed())
	assert.Equal(t, 2, s.CharsToGuess())
}

func TestSecretRender(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "ab", " _ _\n"},
		{"visible word", "_ab_", " a b\n"},
		{"break markers", "_abc|def _hij|klm", " a b c\n d e f   _ _ _\n _ _ _\n"},
		{"whitespace after break marker", "_abc|  def _hij| \n  klm", " a b c\n d e f   _ _ _\n _ _ _\n"},
		{
			"soft wrap at space",
			"_123456789012345 789012345 789012_",
			" 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5   7 8 9 0 1 2 3 4 5\n 7 8 9 0 1 2\n",
		},
		{"hidden space at wrap keeps placeholder", "aaaaaaaaaaaaaaaaaaaa b", strings.Repeat(" _", 20) + " _\n _\n"},
		{"empty", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSecret(tt.raw).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSecretBreakMarkerDisclosed(t *testing.T) {
	s := NewSecret("_abc|def _hij|klm")
	assert.Equal(t, 6, s.HiddenChars())

	s.DiscloseAll()
	assert.Equal(t, " a b c\n d e f   h i j\n k l m\n", s.String())
	assert.Equal(t, "_abc|def _hij|klm", s.Raw())
}

func TestSecretClassification(t *testing.T) {
	chars := NewSecret("a_b_|  c").Chars()
	want := []CharType{Hidden, Formatter, Visible, Formatter, Formatter, Ignored, Ignored, Hidden}

	if len(chars) != len(want) {
		t.Fatalf("len(Chars()) = %d, want %d", len(chars), len(want))
	}
	for i, c := range chars {
		if c.Type != want[i] {
			t.Errorf("Chars()[%d] (%q) type = %v, want %v", i, c.Rune, c.Type, want[i])
		}
	}
}

func TestSecretGuessIgnoresCase(t *testing.T) {
	s := NewSecret("Guess Me")

	assert.True(t, s.Guess('g'))
	assert.True(t, s.Guess('M'))
	assert.True(t, s.Guess('E'))
	assert.Equal(t, " G _ e _ _ _ M e\n", s.String())
	assert.Equal(t, 4, s.HiddenChars())
}

func TestSecretRepeatedGuess(t *testing.T) {
	s := NewSecret("abca")

	assert.True(t, s.Guess('a'))
	assert.False(t, s.Guess('a'), "a disclosed character must not match again")
	assert.Equal(t, 2, s.HiddenChars())
}

func TestSecretPlaceholderCount(t *testing.T) {
	raws := []string{
		"guess me",
		"_good l_uck",
		"_der Hund_| the dog",
		"_3*_7_=21_",
		"aaaaaaaaaaaaaaaaaaaa bbbbbbbbbbbbbbbbbbbbbbb cc",
		"Äpfel und Birnen",
	}

	for _, raw := range raws {
		t.Run(raw, func(t *testing.T) {
			s := NewSecret(raw)
			assert.Equal(t, raw, s.Raw())
			assert.Equal(t, s.CharsToGuess(), strings.Count(s.String(), "_"))

			s.DiscloseAll()
			assert.Zero(t, strings.Count(s.String(), "_"))
		})
	}
}
