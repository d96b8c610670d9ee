package config

import (
	"errors"
	"fmt"
)

// Sentinel configuration errors. Match them with errors.Is.
var (
	// ErrNoSecretString is returned when a document defines no secret.
	ErrNoSecretString = errors.New("A config file must have a least one secret string, which is\n" +
		"a non-empty line starting with a letter, digit, '_' or '-'.")

	// ErrYamlSecretsLineMissing is returned by the YAML grammar when the first
	// significant line is not `secrets:`.
	ErrYamlSecretsLineMissing = errors.New("First line must be: `secrets:` (no spaces allowed before).")

	// ErrNotInProprietaryFormat is returned by the line grammar for documents
	// that are meant to be YAML.
	ErrNotInProprietaryFormat = errors.New("Could not parse the proprietary format, because this is\n" +
		"meant to be in (erroneous) YAML format.")

	// ErrNoImageData is returned when an image yields no pixels.
	ErrNoImageData = errors.New("No image data found.")
)

// LineIdentifierError reports a line grammar line with an unknown first character.
type LineIdentifierError struct {
	Line int // 1-based
	Text string
}

func (e *LineIdentifierError) Error() string {
	return fmt.Sprintf("Syntax error in line %d: `%s`\n\n"+
		"The first character of every non-empty line has to be one of the following:\n"+
		"    any letter or digit (secret string),\n"+
		"    '#' (comment line),\n"+
		"    '-' (secret string),\n"+
		"    '|' (ASCII-Art image) or\n"+
		"    ':' (game modifier).\n\n"+
		"Edit config file and start again.\n", e.Line, e.Text)
}

// GameModifierError reports a malformed `:` directive.
type GameModifierError struct {
	Line int // 1-based
	Text string
}

func (e *GameModifierError) Error() string {
	return fmt.Sprintf("Syntax error in line %d: `%s`\n\n"+
		"The game modifier must be one of the following:\n"+
		"    :%s\n"+
		"    :%s\n\n"+
		"Edit config file and start again.\n", e.Line, e.Text, directiveTraditional, directiveSuccess)
}

// NotInYamlFormatError wraps the YAML decoder diagnostic for a document that
// has a `secrets:` line but cannot be decoded.
type NotInYamlFormatError struct {
	Err error
}

func (e *NotInYamlFormatError) Error() string {
	return "Syntax error: Please follow the example below.\n" +
		"(The custom image is optional, it's lines start with a space.):\n" +
		"\t------------------------------\n" +
		"\tsecrets:\n" +
		"\t- guess me\n" +
		"\t- \"guess me: with colon\"\n" +
		"\t- line| break\n" +
		"\t- _disclose _partly\n" +
		"\n" +
		"\timage: |1\n" +
		"\t   :\n" +
		"\t  |_|>\n" +
		"\t------------------------------\n" +
		e.Err.Error()
}

func (e *NotInYamlFormatError) Unwrap() error {
	return e.Err
}
