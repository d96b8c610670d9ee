package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer the hangman view is composed on.
// The platform layer turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a single line starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws a single line centered horizontally.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.width-TextWidth(text))/2, y, text, c)
}

// DrawBlock draws multi-line text with its top-left corner at (x, y).
// Spaces are written too, so the block covers what was below it.
func (s *Screen) DrawBlock(x, y int, text string, c Color) {
	for i, line := range BlockLines(text) {
		s.DrawText(x, y+i, line, c)
	}
}

// DrawBox draws a frame around the w x h area whose top-left inner corner
// is (x, y).
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	left, top, right, bottom := x-1, y-1, x+w, y+h

	s.Set(left, top, '┌', c)
	s.Set(right, top, '┐', c)
	s.Set(left, bottom, '└', c)
	s.Set(right, bottom, '┘', c)
	for i := x; i < right; i++ {
		s.Set(i, top, '─', c)
		s.Set(i, bottom, '─', c)
	}
	for j := y; j < bottom; j++ {
		s.Set(left, j, '│', c)
		s.Set(right, j, '│', c)
	}
}

// String converts the screen buffer to an unstyled string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// BlockLines splits multi-line text into lines. A final line feed does not
// start another line.
func BlockLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// TextWidth returns the number of runes in a line.
func TextWidth(line string) int {
	return len([]rune(line))
}

// BlockSize returns the width of the widest line and the number of lines.
func BlockSize(text string) (int, int) {
	lines := BlockLines(text)
	w := 0
	for _, l := range lines {
		w = max(w, TextWidth(l))
	}
	return w, len(lines)
}
