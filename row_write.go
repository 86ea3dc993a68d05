package termrow

import (
	"slices"
	"unicode/utf16"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RowWriteState is the resumable-write contract for ReplaceText. A caller
// writing a wrapped line keeps one state across rows: each call consumes as
// much of Text as fits and reports the columns it touched.
type RowWriteState struct {
	// Text is the text to write. When ReplaceText returns it has been
	// advanced past everything successfully written, so the caller can
	// re-invoke the operation on the next row to continue the line.
	Text string // IN/OUT
	// ColumnBegin is the column at which to start writing.
	ColumnBegin int // IN
	// ColumnLimit is the first column which must not be written anymore.
	ColumnLimit int // IN

	// ColumnEnd is 1 past the last glyph successfully written. It is the
	// end parameter for a following ReplaceAttributes call, and the next
	// ColumnBegin when continuing on the same row.
	ColumnEnd int // OUT
	// ColumnBeginDirty is the first column whose text was modified. It is
	// left of ColumnBegin when the write overwrote the trailing half of a
	// wide glyph and its leading half had to be blanked.
	ColumnBeginDirty int // OUT
	// ColumnEndDirty is 1 past the last modified column. It is past
	// ColumnEnd when the leading half of a wide glyph was overwritten and
	// the trailing half blanked, or when a rejected wide glyph forced
	// space padding before the limit.
	ColumnEndDirty int // OUT

	// Scratch for the consumed text's UTF-16 units, reused across calls.
	buf []uint16
}

// writeHelper carries the bookkeeping shared by all write operations: the
// clamped target range, the dirty range as it expands, and the split of the
// dirty text into leading pad, consumed source and trailing pad.
type writeHelper struct {
	row *Row

	// Requested range, clamped to the row.
	colBeg   int
	colLimit int

	// 1 past the last written glyph; starts at colBeg and advances as
	// glyphs are placed.
	colEnd int
	// True dirty range; colBegDirty may be left of colBeg, colEndDirty is
	// finalized by finish.
	colBegDirty int
	colEndDirty int

	// Text offset of colBegDirty (unchanged by the write) and of colBeg
	// in the new layout.
	chBegDirty int
	chBeg      int

	// colBeg - colBegDirty: blanks written before the source text.
	leadingSpaces int

	// The source units to place at chBeg, and how many of them are used.
	src           []uint16
	charsConsumed int

	// Set when a glyph was rejected at colLimit; the remaining gap is
	// space-filled so the row never ends mid-glyph at the limit.
	fillToLimit bool
}

func newWriteHelper(r *Row, columnBegin, columnLimit int) writeHelper {
	h := writeHelper{row: r}
	h.colBeg = r.clampedColumnInclusive(columnBegin)
	h.colLimit = r.clampedColumnInclusive(columnLimit)
	if h.colLimit < h.colBeg {
		h.colLimit = h.colBeg
	}
	h.colEnd = h.colBeg
	h.colBegDirty = r.adjustBackward(h.colBeg)
	h.leadingSpaces = h.colBeg - h.colBegDirty
	h.chBegDirty = r.uncheckedCharOffset(h.colBegDirty)
	h.chBeg = h.chBegDirty + h.leadingSpaces
	return h
}

func (h *writeHelper) valid() bool {
	return h.colBeg < h.colLimit
}

// placeGlyph records the offset table entries for one glyph at colEnd. The
// caller has verified it fits before colLimit. The glyph's units are the
// next unitLen entries of src.
func (h *writeHelper) placeGlyph(unitLen, width int) {
	off := uint16(h.chBeg + h.charsConsumed)
	h.row.charOffsets[h.colEnd] = off
	for i := 1; i < width; i++ {
		h.row.charOffsets[h.colEnd+i] = off | charOffsetTrailer
	}
	h.colEnd += width
	h.charsConsumed += unitLen
}

// finish commits the write: it computes the final dirty range, moves the
// preserved tail text, and fills in the leading pad, source units and
// trailing pad together with their offsets. Offsets for columns inside
// [colBeg, colEnd) were already written by placeGlyph; everything here only
// reads old offsets at or past colEnd, so the table and the text are never
// observed inconsistent.
func (h *writeHelper) finish() {
	r := h.row

	trailing := 0
	if h.fillToLimit {
		trailing = h.colLimit - h.colEnd
	}
	h.colEndDirty = h.colEnd + trailing
	// If the write ends on the leading half of an existing wide glyph,
	// its trailing half must be blanked as well.
	extended := r.adjustForward(h.colEndDirty)
	trailing += extended - h.colEndDirty
	h.colEndDirty = extended

	if h.charsConsumed == 0 && trailing == 0 {
		// Nothing was written; report an empty dirty range.
		h.colBegDirty = h.colBeg
		h.colEndDirty = h.colEnd
		return
	}

	chEndDirtyOld := r.uncheckedCharOffset(h.colEndDirty)
	chEndDirty := h.chBeg + h.charsConsumed + trailing
	oldTotal := r.uncheckedCharOffset(r.columnCount)
	newTotal := chEndDirty + (oldTotal - chEndDirtyOld)
	r.resizeChars(h.chBegDirty, chEndDirtyOld, chEndDirty, newTotal, oldTotal)

	ch := h.chBegDirty
	for i := 0; i < h.leadingSpaces; i++ {
		r.chars[ch] = ' '
		r.charOffsets[h.colBegDirty+i] = uint16(ch)
		ch++
	}
	copy(r.chars[ch:], h.src[:h.charsConsumed])
	ch += h.charsConsumed
	for col := h.colEnd; col < h.colEndDirty; col++ {
		r.chars[ch] = ' '
		r.charOffsets[col] = uint16(ch)
		ch++
	}

	if delta := chEndDirty - chEndDirtyOld; delta != 0 {
		for col := h.colEndDirty; col <= r.columnCount; col++ {
			off := r.charOffsets[col]
			r.charOffsets[col] = uint16(int(off&charOffsetMask)+delta) | (off & charOffsetTrailer)
		}
	}
}

// resizeChars makes room for a write whose dirty text ends at chEndDirty,
// moving the preserved tail [chEndDirtyOld, oldTotal) to its new position.
// Growth reallocates onto the heap with modest over-allocation; the inline
// buffer is not used again until Reset or Resize.
func (r *Row) resizeChars(chBegDirty, chEndDirtyOld, chEndDirty, newTotal, oldTotal int) {
	if newTotal <= len(r.chars) {
		copy(r.chars[chEndDirty:newTotal], r.chars[chEndDirtyOld:oldTotal])
		return
	}
	capacity := len(r.chars) + len(r.chars)/2
	if capacity < newTotal {
		capacity = newTotal
	}
	heap := make([]uint16, capacity)
	copy(heap[:chBegDirty], r.chars[:chBegDirty])
	copy(heap[chEndDirty:newTotal], r.chars[chEndDirtyOld:oldTotal])
	r.charsHeap = heap
	r.chars = heap
}

// ReplaceText writes state.Text into the row between state.ColumnBegin and
// state.ColumnLimit, glyph by glyph. Text is segmented into grapheme
// clusters and each cluster placed at its display width (1 or 2 columns).
// A wide glyph that would straddle ColumnLimit is not written; the gap
// before the limit is padded with spaces instead and the glyph stays in
// state.Text for the caller to write onto the next row.
func (r *Row) ReplaceText(state *RowWriteState) {
	h := newWriteHelper(r, state.ColumnBegin, state.ColumnLimit)
	if !h.valid() || len(state.Text) == 0 {
		state.ColumnEnd = h.colBeg
		state.ColumnBeginDirty = h.colBeg
		state.ColumnEndDirty = h.colBeg
		return
	}

	state.buf = state.buf[:0]
	text := state.Text
	consumedBytes := 0
	gstate := -1
	for len(text) > 0 {
		cluster, rest, _, nextState := uniseg.StepString(text, gstate)
		width := clampGlyphWidth(runewidth.StringWidth(cluster))
		if h.colEnd+width > h.colLimit {
			h.fillToLimit = true
			break
		}
		before := len(state.buf)
		for _, ru := range cluster {
			state.buf = utf16.AppendRune(state.buf, ru)
		}
		h.placeGlyph(len(state.buf)-before, width)
		consumedBytes += len(cluster)
		text, gstate = rest, nextState
	}
	h.src = state.buf
	h.finish()

	state.Text = state.Text[consumedBytes:]
	state.ColumnEnd = h.colEnd
	state.ColumnBeginDirty = h.colBegDirty
	state.ColumnEndDirty = h.colEndDirty
}

// ReplaceCharacters writes text as a single glyph occupying width columns
// starting at columnBegin. The caller has already segmented and measured
// the glyph; this is the raw write path used for caller-controlled
// placement. A glyph extending past the end of the row is not written and
// the remaining columns are blanked instead.
func (r *Row) ReplaceCharacters(columnBegin, width int, text string) {
	if width < 1 || len(text) == 0 {
		return
	}
	h := newWriteHelper(r, columnBegin, columnBegin+width)
	if !h.valid() {
		return
	}
	if h.colEnd+width > h.colLimit {
		h.fillToLimit = true
	} else {
		h.src = utf16.Encode([]rune(text))
		h.placeGlyph(len(h.src), width)
	}
	h.finish()
}

// ClearCell overwrites the given column with a blank space, splitting and
// blanking any wide glyph the column belonged to
func (r *Row) ClearCell(column int) {
	r.ReplaceCharacters(column, 1, " ")
}

// CopyRangeFrom copies whole glyphs from other's range [otherBegin,
// otherLimit) into this row's range [columnBegin, columnLimit), sourcing
// text and widths from other's offset table instead of raw text. It returns
// 1 past the last column written here and 1 past the last source column
// consumed, enabling resumable row-to-row shifting during reflow.
// Attributes are not copied; use the returned range with ReplaceAttributes.
func (r *Row) CopyRangeFrom(columnBegin, columnLimit int, other *Row, otherBegin, otherLimit int) (colEnd, otherEnd int) {
	h := newWriteHelper(r, columnBegin, columnLimit)

	srcOffsets := other.charOffsets
	srcChars := other.chars
	if other == r {
		// Self-copy: snapshot the source so reads don't observe our own
		// partially-updated state.
		srcOffsets = slices.Clone(other.charOffsets)
		srcChars = slices.Clone(other.chars)
	}
	off := func(col int) int { return int(srcOffsets[col] & charOffsetMask) }
	isTrailer := func(col int) bool { return srcOffsets[col]&charOffsetTrailer != 0 }

	ob := other.clampedColumnInclusive(otherBegin)
	ol := other.clampedColumnInclusive(otherLimit)
	// Never copy half a glyph: skip forward past a leading trailer.
	for ob < ol && isTrailer(ob) {
		ob++
	}
	if !h.valid() || ob >= ol {
		return h.colBeg, ob
	}

	chStart := off(ob)
	col := ob
	for col < ol {
		next := col + 1
		for next < other.columnCount && isTrailer(next) {
			next++
		}
		if next > ol {
			// Glyph straddles the source limit; leave it.
			break
		}
		width := next - col
		if h.colEnd+width > h.colLimit {
			h.fillToLimit = true
			break
		}
		h.placeGlyph(off(next)-off(col), width)
		col = next
	}
	h.src = srcChars[chStart : chStart+h.charsConsumed]
	h.finish()
	return h.colEnd, col
}

// WriteCells consumes styled glyph cells from src, writing text and
// attributes together starting at columnBegin and stopping before
// columnLimit. It returns the next writable column. A wide cell that cannot
// fit before the limit is unread back onto src and the remaining columns are
// blanked with its attribute, so a following WriteCells on the next row
// picks the cell up again; at the end of the row this also sets the
// double-byte padded flag.
func (r *Row) WriteCells(src CellSource, columnBegin, columnLimit int) int {
	col := r.clampedColumnInclusive(columnBegin)
	limit := r.clampedColumnInclusive(columnLimit)
	for col < limit {
		cell, ok := src.NextCell()
		if !ok {
			break
		}
		width := clampGlyphWidth(cell.Width)
		if col+width > limit {
			src.UnreadCell(cell)
			for c := col; c < limit; c++ {
				r.ClearCell(c)
			}
			r.attrs.Replace(col, limit, cell.Attr)
			if limit == r.columnCount {
				r.doubleBytePadded = true
			}
			col = limit
			break
		}
		r.ReplaceCharacters(col, width, cell.Text)
		r.attrs.Replace(col, col+width, cell.Attr)
		col += width
	}
	return col
}
