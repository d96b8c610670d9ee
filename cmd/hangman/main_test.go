package main

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLogger(t *testing.T) {
	l, closer, err := newLogger("debug", "")
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	_, _, err = newLogger("loud", "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "hangman.log")
	l, closer, err = newLogger("info", path)
	require.NoError(t, err)
	require.NotNil(t, closer)
	l.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestCheckFile(t *testing.T) {
	logger = log.New(io.Discard)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{"yaml", "secrets:\n- guess me\n- again\n", "2 secrets, built-in image", nil},
		{"custom image", "secrets:\n- a\ntraditional: true\nimage: |1\n abc\n de\n", "1 secrets, custom image 3x2 (traditional-rewarding)", nil},
		{"legacy directive only", "abc\n:traditional-rewarding\n", "1 secrets, built-in image (traditional-rewarding)", nil},
		{"no secrets", "# just a comment\n", "", config.ErrNoSecretString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkFile(writeFile(t, "words.txt", tt.content), rng)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunCheckReportsFailures(t *testing.T) {
	logger = log.New(io.Discard)
	good := writeFile(t, "good.txt", "secrets:\n- ok\n")
	bad := writeFile(t, "bad.txt", "one\n\n :traditional-rewarding")

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	err := runCheck(checkCmd, []string{good, bad})

	assert.EqualError(t, err, "1 of 2 files invalid")
	assert.Contains(t, out.String(), good+": OK, 1 secrets")
	assert.Contains(t, out.String(), bad+": FAIL")
	assert.Contains(t, out.String(), " :traditional-rewarding")
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	var out bytes.Buffer
	initCmd.SetOut(&out)

	require.NoError(t, runInit(initCmd, []string{path}))
	assert.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template(), string(data))

	assert.Error(t, runInit(initCmd, []string{path}), "existing files are kept")
}

func TestRunGallery(t *testing.T) {
	var out bytes.Buffer
	galleryCmd.SetOut(&out)

	require.NoError(t, runGallery(galleryCmd, nil))
	assert.Contains(t, out.String(), "jgs")

	out.Reset()
	require.NoError(t, runGallery(galleryCmd, []string{"0"}))
	assert.Contains(t, out.String(), "╭")

	assert.Error(t, runGallery(galleryCmd, []string{"1000"}))
}
