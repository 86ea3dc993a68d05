package termrow

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one glyph together with its display width and style. This is the
// exchange format between the escape sequence interpreter and the row engine:
// the producer is responsible for segmenting text into glyphs, the row only
// performs width-aware column placement.
type Cell struct {
	Text  string // One glyph: a single grapheme cluster
	Width int    // Display columns occupied, 1 or 2
	Attr  Attr
}

// CellSource is a lazily-iterated sequence of styled glyph cells, consumed
// by Row.WriteCells.
type CellSource interface {
	// NextCell returns the next cell and true, or a zero Cell and false
	// when the source is exhausted.
	NextCell() (Cell, bool)
	// UnreadCell pushes back the most recently returned cell so the next
	// NextCell call yields it again. Row.WriteCells unreads a wide cell
	// that does not fit before its limit, leaving it for the caller to
	// write onto the next row.
	UnreadCell(cell Cell)
}

// StringSource adapts a plain string to a CellSource, segmenting it into
// grapheme clusters and measuring each cluster's display width. Every cell
// carries the same attribute.
type StringSource struct {
	rest      string
	attr      Attr
	state     int
	unread    Cell
	hasUnread bool
}

// NewStringSource creates a CellSource yielding the glyphs of s, all styled
// with attr.
func NewStringSource(s string, attr Attr) *StringSource {
	return &StringSource{rest: s, attr: attr, state: -1}
}

// NextCell returns the next glyph of the source string
func (s *StringSource) NextCell() (Cell, bool) {
	if s.hasUnread {
		s.hasUnread = false
		return s.unread, true
	}
	if len(s.rest) == 0 {
		return Cell{}, false
	}
	var cluster string
	cluster, s.rest, _, s.state = uniseg.StepString(s.rest, s.state)
	return Cell{Text: cluster, Width: clampGlyphWidth(runewidth.StringWidth(cluster)), Attr: s.attr}, true
}

// UnreadCell pushes back one cell onto the source
func (s *StringSource) UnreadCell(cell Cell) {
	s.unread = cell
	s.hasUnread = true
}

// clampGlyphWidth normalizes a measured glyph width to the 1..2 column range
// a terminal cell grid can represent. Zero-width input (a stray combining
// mark) still occupies one column; anything wider than two columns is
// treated as two.
func clampGlyphWidth(width int) int {
	if width < 1 {
		return 1
	}
	if width > 2 {
		return 2
	}
	return width
}

// LineRendition defines the display mode for a row (VT100 DECDHL/DECDWL)
type LineRendition uint8

const (
	LineRenditionSingleWidth        LineRendition = iota // Normal single-width, single-height
	LineRenditionDoubleWidth                             // DECDWL: Double-width line (ESC#6)
	LineRenditionDoubleHeightTop                         // DECDHL: Double-height top half (ESC#3)
	LineRenditionDoubleHeightBottom                      // DECDHL: Double-height bottom half (ESC#4)
)
