package termrow

// The offset table maps each column to the offset in chars at which that
// column's text starts, storing one more entry than the row is wide so the
// final entry is the used text length. The most significant bit marks the
// column as the trailing half of a wide glyph, which keeps trailer columns
// distinguishable from genuine zero-width text while leaving 15 bits of
// offset.
//
// For a 4 column row containing "abcd" the table is [0 1 2 3 4]. For
// "a猫d" (the CJK glyph is 2 columns, 1 unit) it is [0 1 1* 2 3] with *
// marking the trailer bit. For "a😀d" (2 columns, 2 units) it is
// [0 1 1* 3 4]: two equal offsets say the glyph spans two columns, and the
// next offset says it is 3-1 = 2 units long.
const (
	charOffsetTrailer = uint16(0x8000)
	charOffsetMask    = uint16(0x7fff)
)

// uncheckedCharOffset returns the text offset of a column without the
// trailer bit. col must be in [0, columnCount].
func (r *Row) uncheckedCharOffset(col int) int {
	return int(r.charOffsets[col] & charOffsetMask)
}

// uncheckedIsTrailer returns true if the column is the trailing half of a
// wide glyph. col must be in [0, columnCount]; the final entry never carries
// the trailer bit.
func (r *Row) uncheckedIsTrailer(col int) bool {
	return r.charOffsets[col]&charOffsetTrailer != 0
}

// clampedColumn normalizes an arbitrary caller column into [0, columns-1].
// Out-of-range columns are clamped, never rejected: the row is reused across
// many display widths and must tolerate stale indices.
func (r *Row) clampedColumn(col int) int {
	if col < 0 {
		return 0
	}
	if col >= r.columnCount {
		return r.columnCount - 1
	}
	return col
}

// clampedColumnInclusive normalizes an arbitrary caller column into
// [0, columns], allowing the past-the-end column used by exclusive range
// limits
func (r *Row) clampedColumnInclusive(col int) int {
	if col < 0 {
		return 0
	}
	if col > r.columnCount {
		return r.columnCount
	}
	return col
}

// adjustBackward moves a column left onto the nearest glyph boundary. A
// column that is not a trailer is already a boundary.
func (r *Row) adjustBackward(col int) int {
	for col > 0 && r.uncheckedIsTrailer(col) {
		col--
	}
	return col
}

// adjustForward moves a column right past any trailers onto the next glyph
// boundary. May return columnCount when the final glyph's trailer is given.
func (r *Row) adjustForward(col int) int {
	for col < r.columnCount && r.uncheckedIsTrailer(col) {
		col++
	}
	return col
}
