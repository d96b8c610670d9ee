package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultWordsFile is read when no config file is named.
const DefaultWordsFile = "ascii-hangman-words.txt"

// Source is a configuration document assembled from files.
type Source struct {
	Text  string
	Paths []string // files read, in order

	// Demo is set when the default file did not exist. Text then holds the
	// demo configuration and Template names the file the template was
	// written to, unless TemplateErr says why it could not be written.
	Demo        bool
	Template    string
	TemplateErr error
}

// Load reads and concatenates the given config files.
// Search order without paths: ./ascii-hangman-words.txt -> ~/.hangman/ascii-hangman-words.txt.
// If neither exists, the template is written to ./ascii-hangman-words.txt and
// the demo configuration is returned.
func Load(paths []string) (Source, error) {
	if len(paths) == 0 {
		return loadDefault()
	}

	var src Source
	var sb strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return Source{}, fmt.Errorf("failed to read config %s: %w", p, err)
		}
		appendDocument(&sb, string(data))
		src.Paths = append(src.Paths, p)
	}
	src.Text = sb.String()
	return src, nil
}

func loadDefault() (Source, error) {
	candidates := []string{DefaultWordsFile}
	if userPath := userConfigPath(DefaultWordsFile); userPath != "" {
		candidates = append(candidates, userPath)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return Source{Text: strings.TrimPrefix(string(data), byteOrderMark), Paths: []string{p}}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("failed to read config %s: %w", p, err)
		}
	}

	src := Source{Text: Demo(), Demo: true, Template: DefaultWordsFile}
	if err := WriteTemplate(DefaultWordsFile); err != nil {
		src.TemplateErr = err
	}
	return src, nil
}

// appendDocument adds one file to a concatenated document. Every file starts
// on a fresh line and loses its byte order mark.
func appendDocument(sb *strings.Builder, doc string) {
	doc = strings.TrimPrefix(doc, byteOrderMark)
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(doc)
}

// WriteTemplate writes the sample configuration to path.
// An existing file is never overwritten.
func WriteTemplate(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write template %s: %w", path, err)
	}
	if _, err := f.WriteString(Template()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write template %s: %w", path, err)
	}
	return f.Close()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}
