package termrow

import (
	"strings"
	"unicode/utf16"
)

// DelimiterClass classifies a column's glyph for word-selection logic
type DelimiterClass int

const (
	ControlChar   DelimiterClass = iota // Control character or blank
	DelimiterChar                       // Member of the caller's delimiter set
	RegularChar                         // Everything else
)

// glyphEnd returns the column just past the glyph starting at col
func (r *Row) glyphEnd(col int) int {
	col++
	for col < r.columnCount && r.uncheckedIsTrailer(col) {
		col++
	}
	return col
}

// NavigateToPrevious steps one glyph backwards from the given column and
// returns the start column of that glyph. Stepping from inside a wide glyph
// lands on the glyph's own start.
func (r *Row) NavigateToPrevious(column int) int {
	return r.adjustBackward(r.clampedColumn(column - 1))
}

// NavigateToNext steps one glyph forwards from the given column and returns
// the next glyph boundary, clamped into the row. Stepping from a final
// narrow glyph stays on it; only from the leading half of a final wide
// glyph does the step land past its trailer, at the row width.
func (r *Row) NavigateToNext(column int) int {
	return r.adjustForward(r.clampedColumn(column + 1))
}

// isBlankGlyph reports whether the glyph spanning [col, next) is a single
// space carrying the row's fill attribute
func (r *Row) isBlankGlyph(col, next int) bool {
	begin := r.uncheckedCharOffset(col)
	return next == col+1 &&
		r.uncheckedCharOffset(next)-begin == 1 &&
		r.chars[begin] == ' ' &&
		r.attrs.At(col) == r.defaultAttr
}

// MeasureLeft returns the column of the first glyph that is not a default
// blank, scanning from the left edge. Returns the row width for an entirely
// blank row.
func (r *Row) MeasureLeft() int {
	col := 0
	for col < r.columnCount {
		next := r.glyphEnd(col)
		if !r.isBlankGlyph(col, next) {
			break
		}
		col = next
	}
	return col
}

// MeasureRight returns 1 past the last glyph that is not a default blank,
// scanning from the right edge, giving the tight content bound used to skip
// trailing blank cells. Returns 0 for an entirely blank row.
func (r *Row) MeasureRight() int {
	col := r.columnCount
	for col > 0 {
		begin := r.adjustBackward(col - 1)
		if !r.isBlankGlyph(begin, col) {
			break
		}
		col = begin
	}
	return col
}

// ContainsText returns true if any column holds something other than a
// space
func (r *Row) ContainsText() bool {
	used := r.uncheckedCharOffset(r.columnCount)
	for _, u := range r.chars[:used] {
		if u != ' ' {
			return true
		}
	}
	return false
}

// DelimiterClassAt classifies the glyph at the given column using the
// caller-supplied delimiter set
func (r *Row) DelimiterClassAt(column int, delimiters string) DelimiterClass {
	col := r.adjustBackward(r.clampedColumn(column))
	begin := r.uncheckedCharOffset(col)
	end := r.uncheckedCharOffset(r.glyphEnd(col))
	if begin >= end {
		return ControlChar
	}
	ru := rune(r.chars[begin])
	if utf16.IsSurrogate(ru) && end-begin >= 2 {
		ru = utf16.DecodeRune(ru, rune(r.chars[begin+1]))
	}
	switch {
	case ru <= ' ':
		return ControlChar
	case strings.ContainsRune(delimiters, ru):
		return DelimiterChar
	default:
		return RegularChar
	}
}

// GlyphAt returns the full text of the glyph covering the given column.
// Asking for either column of a wide glyph returns the same text.
func (r *Row) GlyphAt(column int) string {
	col := r.adjustBackward(r.clampedColumn(column))
	begin := r.uncheckedCharOffset(col)
	end := r.uncheckedCharOffset(r.glyphEnd(col))
	return string(utf16.Decode(r.chars[begin:end]))
}

// IsTrailerAt returns true if the column is the trailing half of a wide
// glyph
func (r *Row) IsTrailerAt(column int) bool {
	return r.uncheckedIsTrailer(r.clampedColumn(column))
}

// GetText returns the row's entire text
func (r *Row) GetText() string {
	return string(utf16.Decode(r.chars[:r.uncheckedCharOffset(r.columnCount)]))
}
