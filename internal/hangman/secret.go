// Package hangman implements the secret codec and the state machine of one round.
// It has no dependencies on any front-end.
package hangman

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// LineWidth is the soft line-wrap position when a secret is rendered.
const LineWidth = 20

// CharType classifies one character of a secret.
type CharType int

const (
	Hidden    CharType = iota // to be guessed, rendered as '_'
	Visible                   // rendered in clear
	Formatter                 // markup, never rendered
	Ignored                   // whitespace after a line break marker
)

// Char is one character of a secret.
type Char struct {
	Rune rune
	Type CharType
}

// Secret is the phrase to guess together with the visibility of its characters.
type Secret struct {
	chars        []Char
	charsToGuess int
}

// secretScan is the state carried while a raw secret is classified.
type secretScan struct {
	visible    bool // toggled by config.SecretVisible
	suppressed bool // after config.SecretLinebreak until non-whitespace
}

func (s secretScan) classify(r rune) (secretScan, CharType) {
	if s.suppressed && !unicode.IsSpace(r) {
		s.suppressed = false
	}
	switch r {
	case config.SecretVisible:
		s.visible = !s.visible
		return s, Formatter
	case config.SecretLinebreak:
		s.suppressed = true
		return s, Formatter
	}
	switch {
	case s.suppressed:
		return s, Ignored
	case s.visible:
		return s, Visible
	default:
		return s, Hidden
	}
}

// NewSecret parses the markup of a raw secret string.
func NewSecret(raw string) *Secret {
	var scan secretScan
	chars := make([]Char, 0, len(raw))
	hidden := 0
	for _, r := range raw {
		var t CharType
		scan, t = scan.classify(r)
		if t == Hidden {
			hidden++
		}
		chars = append(chars, Char{Rune: r, Type: t})
	}
	return &Secret{chars: chars, charsToGuess: hidden}
}

// Guess discloses every hidden character matching c, ignoring case.
// It reports whether at least one character matched.
func (s *Secret) Guess(c rune) bool {
	found := false
	for i := range s.chars {
		if s.chars[i].Type == Hidden && sameLetter(s.chars[i].Rune, c) {
			s.chars[i].Type = Visible
			found = true
		}
	}
	return found
}

func sameLetter(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}

// DiscloseAll makes every hidden character visible.
func (s *Secret) DiscloseAll() {
	for i := range s.chars {
		if s.chars[i].Type == Hidden {
			s.chars[i].Type = Visible
		}
	}
}

// IsFullyDisclosed reports whether no hidden character is left.
func (s *Secret) IsFullyDisclosed() bool {
	return s.HiddenChars() == 0
}

// HiddenChars returns the number of characters still to guess.
func (s *Secret) HiddenChars() int {
	n := 0
	for _, c := range s.chars {
		if c.Type == Hidden {
			n++
		}
	}
	return n
}

// CharsToGuess returns the number of hidden characters the secret started with.
func (s *Secret) CharsToGuess() int {
	return s.charsToGuess
}

// Chars returns a copy of the classified characters.
func (s *Secret) Chars() []Char {
	out := make([]Char, len(s.chars))
	copy(out, s.chars)
	return out
}

// Raw reconstructs the string the secret was built from, markup included.
func (s *Secret) Raw() string {
	var sb strings.Builder
	for _, c := range s.chars {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String renders the secret: every character as a space followed by its glyph
// or '_'. Lines are broken at a space once LineWidth glyphs are written, and
// at every line break marker. Words are never split.
func (s *Secret) String() string {
	var sb strings.Builder
	pending := false
	n := 1
	for _, c := range s.chars {
		if n >= LineWidth {
			pending = true
		}
		isBreakMarker := c.Type == Formatter && c.Rune == config.SecretLinebreak
		if isBreakMarker {
			pending = true
		}

		if pending && (isBreakMarker || (c.Type != Formatter && c.Rune == ' ')) {
			// A hidden space still needs its placeholder.
			if c.Type == Hidden {
				sb.WriteString(" _")
			}
			sb.WriteByte('\n')
			pending = false
			n = 0
			continue
		}

		switch c.Type {
		case Visible:
			sb.WriteByte(' ')
			sb.WriteRune(c.Rune)
			n++
		case Hidden:
			sb.WriteString(" _")
			n++
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
