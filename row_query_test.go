package termrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateToPrevious(t *testing.T) {
	r := newTestRow(4)
	write(t, r, "猫ab", 0, 4) // wide glyph on columns 0-1

	assert.Equal(t, 0, r.NavigateToPrevious(1), "stepping back from inside a wide glyph lands on its start")
	assert.Equal(t, 0, r.NavigateToPrevious(2))
	assert.Equal(t, 2, r.NavigateToPrevious(3))
	assert.Equal(t, 0, r.NavigateToPrevious(0), "clamped at the left edge")
	assert.Equal(t, 3, r.NavigateToPrevious(99), "clamped at the right edge")
}

func TestNavigateToNext(t *testing.T) {
	r := newTestRow(4)
	write(t, r, "猫ab", 0, 4)

	assert.Equal(t, 2, r.NavigateToNext(0), "the trailer column is skipped")
	assert.Equal(t, 3, r.NavigateToNext(2))
	assert.Equal(t, 3, r.NavigateToNext(3), "a final narrow glyph stays put")
	assert.Equal(t, 3, r.NavigateToNext(99), "clamped at the right edge")
}

func TestNavigateToNextFinalWideGlyph(t *testing.T) {
	r := newTestRow(4)
	write(t, r, "ab猫", 0, 4) // wide glyph on columns 2-3

	assert.Equal(t, 2, r.NavigateToNext(1))
	assert.Equal(t, 4, r.NavigateToNext(2), "stepping past the final wide glyph reaches the row width")
}

func TestMeasure(t *testing.T) {
	testCases := []struct {
		text      string
		wantLeft  int
		wantRight int
	}{
		{"    ", 4, 0},
		{"abcd", 0, 4},
		{" ab ", 1, 3},
		{"   d", 3, 4},
		{"猫  ", 0, 2},
		{" 猫 ", 1, 3},
	}
	for i, tc := range testCases {
		r := newTestRow(4)
		write(t, r, tc.text, 0, 4)
		assert.Equal(t, tc.wantLeft, r.MeasureLeft(), "testCase #%d (%+v)", i, tc)
		assert.Equal(t, tc.wantRight, r.MeasureRight(), "testCase #%d (%+v)", i, tc)
	}
}

func TestMeasureCountsRecoloredBlanks(t *testing.T) {
	red := DefaultAttr()
	red.Bg = StandardColor(1)

	// A blank cell that no longer carries the fill attribute is content.
	r := newTestRow(4)
	r.ReplaceAttributes(1, 3, red)
	assert.Equal(t, 1, r.MeasureLeft())
	assert.Equal(t, 3, r.MeasureRight())
}

func TestContainsText(t *testing.T) {
	r := newTestRow(4)
	assert.False(t, r.ContainsText())

	write(t, r, "  x", 0, 4)
	assert.True(t, r.ContainsText())

	r.ClearCell(2)
	assert.False(t, r.ContainsText())
}

func TestDelimiterClassAt(t *testing.T) {
	r := newTestRow(8)
	write(t, r, "a/b 猫", 0, 8)

	const delimiters = "/()\"'-"
	assert.Equal(t, RegularChar, r.DelimiterClassAt(0, delimiters))
	assert.Equal(t, DelimiterChar, r.DelimiterClassAt(1, delimiters))
	assert.Equal(t, RegularChar, r.DelimiterClassAt(2, delimiters))
	assert.Equal(t, ControlChar, r.DelimiterClassAt(3, delimiters))
	assert.Equal(t, RegularChar, r.DelimiterClassAt(4, delimiters))
	assert.Equal(t, RegularChar, r.DelimiterClassAt(5, delimiters), "trailing half classifies as its glyph")
}

func TestGlyphAt(t *testing.T) {
	r := newTestRow(6)
	write(t, r, "a猫😀", 0, 6)

	assert.Equal(t, "a", r.GlyphAt(0))
	assert.Equal(t, "猫", r.GlyphAt(1))
	assert.Equal(t, "猫", r.GlyphAt(2))
	assert.Equal(t, "😀", r.GlyphAt(3))
	assert.Equal(t, "😀", r.GlyphAt(4))
	assert.Equal(t, " ", r.GlyphAt(5))
}

func TestGetTextRoundTrip(t *testing.T) {
	testCases := []string{
		"abcd",
		"a猫d",
		"😀猫",
		"ébcd",
	}
	for i, text := range testCases {
		r := newTestRow(4)
		write(t, r, text, 0, 4)
		assert.Equal(t, text, r.GetText(), "testCase #%d (%q)", i, text)

		// Walking the row glyph by glyph reproduces the same text.
		var glyphs string
		for col := 0; col < r.Columns(); col = r.glyphEnd(col) {
			glyphs += r.GlyphAt(col)
		}
		assert.Equal(t, text, glyphs, "testCase #%d (%q)", i, text)
	}
}
