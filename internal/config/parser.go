package config

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// grammar is one way of reading a configuration document.
type grammar struct {
	name  string
	parse func(text string) (Parsed, error)
}

// grammars are tried in order, the first success wins.
var grammars = []grammar{
	{name: "yaml", parse: ParseYAML},
	{name: "legacy", parse: ParseLegacy},
}

// Parse reads a configuration document in the YAML grammar and falls back to
// the line grammar. When both fail, the error of the grammar the document was
// written for is returned: a document containing YAML keys reports the YAML
// error, any other document reports the line grammar error. A document that is
// not YAML at all therefore gets the line numbered diagnostic instead of the
// `secrets:` hint.
func Parse(text string) (Parsed, error) {
	errs := make([]error, 0, len(grammars))
	for _, g := range grammars {
		parsed, err := g.parse(text)
		if err == nil {
			return parsed, nil
		}
		errs = append(errs, err)
	}

	yamlErr, legacyErr := errs[0], errs[1]
	if errors.Is(legacyErr, ErrNotInProprietaryFormat) {
		return Parsed{}, yamlErr
	}
	return Parsed{}, legacyErr
}

// yamlDocument mirrors the YAML grammar.
type yamlDocument struct {
	Secrets     []string `yaml:"secrets"`
	Image       *string  `yaml:"image"`
	Traditional *bool    `yaml:"traditional"`
}

// ParseYAML reads a document in the YAML grammar.
// The first line that is neither blank nor a comment must be `secrets:`.
func ParseYAML(text string) (Parsed, error) {
	text = strings.TrimPrefix(text, byteOrderMark)

	if !startsWithSecretsLine(text) {
		return Parsed{}, ErrYamlSecretsLineMissing
	}

	var doc yamlDocument
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return Parsed{}, &NotInYamlFormatError{Err: err}
	}

	secrets := make([]string, 0, len(doc.Secrets))
	for _, s := range doc.Secrets {
		if strings.TrimSpace(s) != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) == 0 {
		return Parsed{}, ErrNoSecretString
	}

	parsed := Parsed{Secrets: secrets}
	if doc.Image != nil || doc.Traditional != nil {
		spec := &ImageSpec{Scheme: DefaultRewardingScheme}
		if doc.Image != nil {
			spec.Art = *doc.Image
		}
		if doc.Traditional != nil && *doc.Traditional {
			spec.Scheme = UnhideWhenLostLife
		}
		parsed.Image = spec
	}
	return parsed, nil
}

func startsWithSecretsLine(text string) bool {
	for _, l := range splitLines(text) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeftFunc(l, unicode.IsSpace), string(LineComment)) {
			continue
		}
		return strings.TrimRightFunc(l, unicode.IsSpace) == "secrets:"
	}
	return false
}

// ParseLegacy reads a document in the line grammar. The first character of
// every non-blank line selects its meaning. Comments, directives and image
// lines must not be indented, secret lines may be.
func ParseLegacy(text string) (Parsed, error) {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := splitLines(text)

	for _, l := range lines {
		t := strings.TrimSpace(l)
		if strings.HasPrefix(t, "secrets:") || strings.HasPrefix(t, "image:") {
			return Parsed{}, ErrNotInProprietaryFormat
		}
	}

	acc := legacyScan{scheme: DefaultRewardingScheme}
	for i, l := range lines {
		acc = acc.step(i+1, l)
	}
	if acc.err != nil {
		return Parsed{}, acc.err
	}
	if len(acc.secrets) == 0 {
		return Parsed{}, ErrNoSecretString
	}

	parsed := Parsed{Secrets: acc.secrets}
	if len(acc.image) > 0 || acc.schemeSet {
		parsed.Image = &ImageSpec{
			Art:    strings.Join(acc.image, "\n"),
			Scheme: acc.scheme,
		}
	}
	return parsed, nil
}

// legacyScan accumulates the line grammar state while lines are folded in.
type legacyScan struct {
	secrets   []string
	image     []string
	scheme    RewardingScheme
	schemeSet bool
	err       error // first syntax error only
}

func (a legacyScan) step(n int, l string) legacyScan {
	if a.err != nil || strings.TrimSpace(l) == "" {
		return a
	}

	switch l[0] {
	case LineComment:
		return a
	case LineControl:
		switch strings.TrimSpace(l[1:]) {
		case directiveTraditional:
			a.scheme, a.schemeSet = UnhideWhenLostLife, true
		case directiveSuccess:
			a.scheme, a.schemeSet = UnhideWhenGuessedChar, true
		default:
			a.err = &GameModifierError{Line: n, Text: l}
		}
		return a
	case LineImage:
		a.image = append(a.image, l[1:])
		return a
	case LineSecret:
		if s := strings.TrimSpace(l[1:]); s != "" {
			a.secrets = append(a.secrets, s)
		}
		return a
	}

	t := strings.TrimSpace(l)
	r, _ := utf8.DecodeRuneInString(t)
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == SecretVisible {
		a.secrets = append(a.secrets, t)
		return a
	}
	a.err = &LineIdentifierError{Line: n, Text: l}
	return a
}

// splitLines splits text at line feeds and drops a trailing carriage return
// from every line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
