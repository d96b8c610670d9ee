// Package core provides the screen buffer and runtime settings shared by the
// hangman front-ends.
package core

// RuntimeConfig contains what a front-end needs to know at start.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
