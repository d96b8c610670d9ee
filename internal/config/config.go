// Package config parses hangman configuration documents into a pool of secrets
// and an optional custom ASCII-art image, and loads runtime settings.
//
// Two grammars are supported. The YAML grammar is canonical:
//
//	secrets:
//	- guess me
//	- "guess me: with colon"
//	traditional: false
//	image: |1
//	   :
//	  |_|>
//
// The older line grammar is tried when a document has no `secrets:` line.
package config

// Markup characters shared by both grammars and by the secret codec.
const (
	// LineComment tags comment lines.
	LineComment = '#'
	// LineSecret optionally tags secret lines in the line grammar.
	LineSecret = '-'
	// LineImage tags image lines in the line grammar.
	LineImage = '|'
	// LineControl tags game-mode directives in the line grammar.
	LineControl = ':'

	// SecretVisible toggles pre-revealed parts of a secret: "guess_-me_"
	// is displayed as "_ _ _ _ _ - m e".
	SecretVisible = '_'
	// SecretLinebreak forces a line break when the secret is displayed.
	SecretLinebreak = '|'
)

// Directive keywords of the line grammar.
const (
	directiveTraditional = "traditional-rewarding"
	directiveSuccess     = "success-rewarding"
)

// byteOrderMark is stripped from the start of every document.
const byteOrderMark = "\ufeff"

// RewardingScheme selects how the image is disclosed in the course of a round.
type RewardingScheme int

const (
	// UnhideWhenGuessedChar discloses more of the image with every right guess.
	// This is the default.
	UnhideWhenGuessedChar RewardingScheme = iota
	// UnhideWhenLostLife discloses more of the image with every lost life.
	// Meant for a traditional gallows image.
	UnhideWhenLostLife
)

// DefaultRewardingScheme is used when a document does not choose one.
const DefaultRewardingScheme = UnhideWhenGuessedChar

// String returns the directive name of the scheme.
func (r RewardingScheme) String() string {
	switch r {
	case UnhideWhenLostLife:
		return directiveTraditional
	default:
		return directiveSuccess
	}
}

// ImageSpec is the unparsed custom image of a document.
// Art may be empty when a document only selects a rewarding scheme.
type ImageSpec struct {
	Art    string
	Scheme RewardingScheme
}

// Parsed is the result of parsing a configuration document.
type Parsed struct {
	// Secrets is never empty. Order carries no meaning.
	Secrets []string
	// Image is nil when the document neither defines art nor a scheme.
	Image *ImageSpec
}

// Scheme returns the rewarding scheme chosen by the document.
func (p Parsed) Scheme() RewardingScheme {
	if p.Image == nil {
		return DefaultRewardingScheme
	}
	return p.Image.Scheme
}
