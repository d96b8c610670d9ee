package hangman

import "unicode"

// State is the outcome of a round so far.
type State int

const (
	// Ongoing means the round accepts guesses.
	Ongoing State = iota
	// Victory means the secret was guessed and more secrets are left.
	Victory
	// VictoryFinal means the secret was guessed and it was the last one.
	VictoryFinal
	// Defeat means all lives are lost and more secrets are left.
	Defeat
	// DefeatFinal means all lives are lost in the last round.
	DefeatFinal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Victory:
		return "Victory"
	case VictoryFinal:
		return "VictoryFinal"
	case Defeat:
		return "Defeat"
	case DefeatFinal:
		return "DefeatFinal"
	default:
		return "Unknown"
	}
}

// IsDefeat reports whether the round was lost.
func (s State) IsDefeat() bool {
	return s == Defeat || s == DefeatFinal
}

// Game is one round: a secret, the remaining lives and the last guess.
type Game struct {
	secret     *Secret
	lives      int
	maxLives   int
	lastGuess  rune
	state      State
	finalRound bool
}

// NewGame starts a round for a raw secret. finalRound marks the round started
// with an empty secret pool; finishing it ends the session.
func NewGame(raw string, lives int, finalRound bool) *Game {
	return &Game{
		secret:     NewSecret(raw),
		lives:      lives,
		maxLives:   lives,
		lastGuess:  ' ',
		state:      Ongoing,
		finalRound: finalRound,
	}
}

// Guess processes one keystroke. Line feeds and control characters are
// ignored, as is any guess once the round is over.
func (g *Game) Guess(c rune) {
	if g.state != Ongoing || c == '\n' || unicode.IsControl(c) {
		return
	}
	g.lastGuess = c

	if !g.secret.Guess(c) {
		g.lives--
	}

	switch {
	case g.lives == 0:
		g.secret.DiscloseAll()
		g.state = g.pick(DefeatFinal, Defeat)
	case g.secret.IsFullyDisclosed():
		g.state = g.pick(VictoryFinal, Victory)
	default:
		g.state = Ongoing
	}
}

func (g *Game) pick(final, other State) State {
	if g.finalRound {
		return final
	}
	return other
}

// State returns the state of the round.
func (g *Game) State() State { return g.state }

// Secret returns the secret of the round.
func (g *Game) Secret() *Secret { return g.secret }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// MaxLives returns the lives the round started with.
func (g *Game) MaxLives() int { return g.maxLives }

// LastGuess returns the last processed guess, ' ' before the first one.
func (g *Game) LastGuess() rune { return g.lastGuess }

// FinalRound reports whether finishing this round ends the session.
func (g *Game) FinalRound() bool { return g.finalRound }

// HiddenChars forwards Secret.HiddenChars.
func (g *Game) HiddenChars() int { return g.secret.HiddenChars() }

// CharsToGuess forwards Secret.CharsToGuess.
func (g *Game) CharsToGuess() int { return g.secret.CharsToGuess() }
