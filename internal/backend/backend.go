// Package backend drives a hangman session: it draws secrets from the
// configured pool, plays rounds and keeps the image in step with them.
// Front-ends only feed keystrokes in and render the strings coming out.
package backend

import (
	"fmt"
	"io"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/image"
)

// Backend is the state of a session.
type Backend struct {
	dict   *Dict
	game   *hangman.Game
	image  *image.Image
	lives  int
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithLives sets the wrong guesses allowed per round.
func WithLives(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.lives = n
		}
	}
}

// WithRand sets the random source used to draw secrets, pick built-in
// images and shuffle big images.
func WithRand(rng *rand.Rand) Option {
	return func(b *Backend) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// WithSeed seeds the random source. 0 means seed from the current time.
func WithSeed(seed int64) Option {
	return func(b *Backend) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// New parses a configuration and starts the first round.
// Configuration errors are returned as they are for the user to read.
func New(configText string, opts ...Option) (*Backend, error) {
	b := &Backend{
		lives:  config.DefaultLives,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	parsed, err := config.Parse(configText)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("configuration parsed", "secrets", len(parsed.Secrets), "custom_image", parsed.Image != nil)

	b.dict = NewDict(parsed.Secrets, b.rng)
	b.image = b.buildImage(parsed)
	b.startRound()
	return b, nil
}

// buildImage builds the configured image or falls back to a built-in one.
func (b *Backend) buildImage(parsed config.Parsed) *image.Image {
	if parsed.Image != nil {
		im, err := image.Build(*parsed.Image, b.rng)
		if err == nil {
			return im
		}
		b.logger.Debug("custom image unusable, using a built-in one", "error", err)
	}
	return image.Random(b.rng, parsed.Scheme())
}

// startRound draws the next secret. The pool is never empty here: rounds are
// only started after a non-final victory or after a lost secret was put back.
func (b *Backend) startRound() {
	secret, ok := b.dict.Draw()
	if !ok {
		panic("backend: round started with an empty secret pool")
	}
	b.game = hangman.NewGame(secret, b.lives, b.dict.IsEmpty())
	b.image.Update(b.game)
	b.logger.Debug("round started", "left", b.dict.Len(), "final", b.game.FinalRound())
}

// ProcessInput handles one keystroke. While a round is played, the first
// character is taken as a guess. Once a round is over, any input starts the
// next round. A lost secret is put back so it will be asked again.
func (b *Backend) ProcessInput(input string) {
	switch b.game.State() {
	case hangman.Ongoing:
		c, _ := utf8.DecodeRuneInString(input)
		if input == "" {
			c = ' '
		}
		b.game.Guess(c)
		// Update leaves a success-rewarded image alone once the round is lost.
		b.image.Update(b.game)
		if b.game.State() != hangman.Ongoing {
			b.logger.Debug("round over", "state", b.game.State(), "lives", b.game.Lives())
		}
	case hangman.Victory:
		b.startRound()
	case hangman.VictoryFinal:
		// Session over.
	default:
		// Defeat and DefeatFinal.
		b.dict.Add(b.game.Secret().Raw())
		b.logger.Debug("lost secret put back", "left", b.dict.Len())
		b.startRound()
	}
}

// RenderImage renders the image as far as it is disclosed.
func (b *Backend) RenderImage() string {
	return b.image.String()
}

// RenderSecret renders the secret with placeholders for hidden characters.
func (b *Backend) RenderSecret() string {
	return b.game.Secret().String()
}

// RenderStatus renders the remaining lives and the last guess.
func (b *Backend) RenderStatus() string {
	return fmt.Sprintf("Lives: %d\tLast guess: %c", b.game.Lives(), b.game.LastGuess())
}

// RenderInstructions tells the player what to do next.
func (b *Backend) RenderInstructions() string {
	st := b.game.State()
	if st.IsDefeat() {
		return "You lost. Press any key to continue."
	}
	switch st {
	case hangman.Victory:
		return "Congratulations! You won! Press any key to continue."
	case hangman.VictoryFinal:
		return "Congratulations! You won! All secrets are guessed."
	default:
		return "Type a letter:"
	}
}

// State returns the state of the current round.
func (b *Backend) State() hangman.State {
	return b.game.State()
}

// ImageDimension returns width and height of the image.
func (b *Backend) ImageDimension() (int, int) {
	return b.image.Dimension()
}

// SecretsLeft returns the number of secrets not played yet.
func (b *Backend) SecretsLeft() int {
	return b.dict.Len()
}
