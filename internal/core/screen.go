package core

import "strings"

// Cell is one character on the screen with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer. The runner view draws into it and the
// platform layer turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a cleared screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize reallocates the buffer. Content is discarded; the view redraws
// every frame anyway.
func (s *Screen) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	s.width = width
	s.height = height
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
}

// Clear fills the screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an uncolored rune. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color. Out-of-bounds writes are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	n := len([]rune(text))
	s.DrawTextColored((s.width-n)/2, y, text, c)
}

// FillRect fills r with the given rune.
func (s *Screen) FillRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// String returns the plain (uncolored) screen content, rows joined by
// newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
