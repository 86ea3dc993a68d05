package termrow

// maxColumns is the widest row the offset table can describe: offsets are
// stored as 15-bit values with the high bit reserved for the trailer marker.
const maxColumns = 0x7fff

// Row stores one fixed-width row of a terminal screen buffer: the text
// backing every column, an offset table mapping columns to that text, and a
// run-length-encoded attribute list. Text is held as UTF-16 code units so a
// glyph may occupy one or two columns and be backed by one or more units.
//
// The character and offset buffers are supplied by the caller (normally
// carved out of an Arena) and remain caller-owned; the Row only manages
// their contents. A Row must therefore not be copied: two copies would
// alias the same buffers. Use pointers, or CopyRangeFrom to duplicate
// content.
//
// A Row is owned by exactly one screen buffer and is not safe for
// concurrent use.
type Row struct {
	// Inline storage provided by the caller; fits one unit per column,
	// which covers the common case.
	charsBuffer []uint16
	// Heap storage allocated when combining sequences or surrogate pairs
	// push the text past the inline capacity. Stays in use until Reset
	// or Resize.
	charsHeap []uint16
	// The active storage, either charsBuffer or charsHeap. Its length is
	// the capacity; the used length is charOffsets[columnCount].
	chars []uint16
	// Caller-owned offset table with columnCount+1 entries. See offsets.go
	// for the encoding.
	charOffsets []uint16
	// Per-column attributes; decompressed length always equals columnCount.
	attrs AttrRunList
	// The fill attribute from construction/reset. Blank columns carrying
	// this attribute are skipped by MeasureLeft/MeasureRight.
	defaultAttr Attr

	columnCount      int
	lineRendition    LineRendition
	wrapForced       bool
	doubleBytePadded bool
}

// NewRow creates a row over the given caller-owned buffers. chars must hold
// at least columns units and offsets at least columns+1 entries; columns
// must be in [1, 32767]. Buffer misuse is a programming error and panics.
// All columns start as spaces carrying fill.
func NewRow(chars, offsets []uint16, columns int, fill Attr) *Row {
	r := &Row{}
	r.adopt(chars, offsets, columns)
	r.init(fill)
	return r
}

// adopt validates and takes over a (chars, offsets) buffer pair
func (r *Row) adopt(chars, offsets []uint16, columns int) {
	if columns < 1 || columns > maxColumns {
		panic("termrow: column count out of range")
	}
	if len(chars) < columns || len(offsets) < columns+1 {
		panic("termrow: row buffers too small for column count")
	}
	r.charsBuffer = chars[:columns]
	r.charsHeap = nil
	r.chars = r.charsBuffer
	r.charOffsets = offsets[:columns+1]
	r.columnCount = columns
}

// init fills the row with single-column spaces and an identity offset table
func (r *Row) init(fill Attr) {
	for i := 0; i < r.columnCount; i++ {
		r.chars[i] = ' '
		r.charOffsets[i] = uint16(i)
	}
	r.charOffsets[r.columnCount] = uint16(r.columnCount)
	r.attrs = NewAttrRunList(fill, r.columnCount)
	r.defaultAttr = fill
	r.lineRendition = LineRenditionSingleWidth
	r.wrapForced = false
	r.doubleBytePadded = false
}

// Reset clears the row back to spaces filled with attr, dropping any heap
// storage and returning to the inline buffer
func (r *Row) Reset(attr Attr) {
	r.charsHeap = nil
	r.chars = r.charsBuffer
	r.init(attr)
}

// Resize moves the row onto new caller-owned buffers of a new width. Text
// that fits within the new width is preserved; a wide glyph straddling the
// new right edge is dropped and its columns blanked. Attributes are
// transferred proportionally so recolored regions keep their relative
// extent.
func (r *Row) Resize(chars, offsets []uint16, newWidth int, fill Attr) {
	// Last glyph boundary at or before the new width.
	cut := newWidth
	if cut > r.columnCount {
		cut = r.columnCount
	}
	cut = r.adjustBackward(cut)
	keepUnits := r.uncheckedCharOffset(cut)
	totalUnits := keepUnits + (newWidth - cut)

	oldChars := r.chars
	oldOffsets := r.charOffsets
	r.adopt(chars, offsets, newWidth)
	if totalUnits > len(r.chars) {
		r.charsHeap = make([]uint16, totalUnits)
		r.chars = r.charsHeap
	}

	copy(r.chars[:keepUnits], oldChars[:keepUnits])
	for i := keepUnits; i < totalUnits; i++ {
		r.chars[i] = ' '
	}
	copy(r.charOffsets, oldOffsets[:cut])
	for col := cut; col <= newWidth; col++ {
		r.charOffsets[col] = uint16(keepUnits + (col - cut))
	}

	r.attrs = transferRuns(r.attrs.runs, r.attrs.total, newWidth)
	r.defaultAttr = fill
}

// Columns returns the width of the row in display columns
func (r *Row) Columns() int {
	return r.columnCount
}

// --- Row Flags ---

// SetWrapForced marks that the row's content continues onto the next row
// because it ran out of columns
func (r *Row) SetWrapForced(wrap bool) {
	r.wrapForced = wrap
}

// WasWrapForced returns true if the row wraps onto the next row
func (r *Row) WasWrapForced() bool {
	return r.wrapForced
}

// SetDoubleBytePadded marks that the last column was padded because a wide
// glyph did not fit and was pushed to the next row
func (r *Row) SetDoubleBytePadded(padded bool) {
	r.doubleBytePadded = padded
}

// WasDoubleBytePadded returns true if the row ends in wide-glyph padding
func (r *Row) WasDoubleBytePadded() bool {
	return r.doubleBytePadded
}

// SetLineRendition sets the row's DECDWL/DECDHL display mode
func (r *Row) SetLineRendition(rendition LineRendition) {
	r.lineRendition = rendition
}

// GetLineRendition returns the row's DECDWL/DECDHL display mode
func (r *Row) GetLineRendition() LineRendition {
	return r.lineRendition
}

// LineRenditionColumns returns the number of addressable columns under the
// current line rendition: double-width and double-height rows expose half
// the columns
func (r *Row) LineRenditionColumns() int {
	if r.lineRendition != LineRenditionSingleWidth {
		return r.columnCount / 2
	}
	return r.columnCount
}

// --- Attributes ---

// Attrs returns the row's attribute run list
func (r *Row) Attrs() *AttrRunList {
	return &r.attrs
}

// GetAttrByColumn returns the attribute of the given column, clamped into
// the row
func (r *Row) GetAttrByColumn(column int) Attr {
	return r.attrs.At(r.clampedColumn(column))
}

// ReplaceAttributes sets attr across the column range [begin, end), clamped
// to the row's width
func (r *Row) ReplaceAttributes(begin, end int, attr Attr) {
	r.attrs.Replace(begin, end, attr)
}

// SetAttrToEnd sets attr from the given column through the end of the row
// and reports whether anything changed. This is the clear-to-end-of-line
// path.
func (r *Row) SetAttrToEnd(begin int, attr Attr) bool {
	return r.attrs.Replace(begin, r.columnCount, attr)
}

// TransferAttributes replaces the row's attributes with a proportionally
// rescaled copy of attrs. newWidth must equal the row's column count; it is
// passed explicitly because the source list usually comes from a row of a
// different width.
func (r *Row) TransferAttributes(attrs *AttrRunList, newWidth int) {
	if newWidth != r.columnCount {
		panic("termrow: TransferAttributes width does not match row")
	}
	r.attrs = transferRuns(attrs.runs, attrs.total, newWidth)
}

// GetHyperlinks returns the distinct hyperlink identifiers present in the
// row, in first-seen order
func (r *Row) GetHyperlinks() []uint16 {
	return r.attrs.Hyperlinks()
}
