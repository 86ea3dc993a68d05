package termrow

import "slices"

// AttrRun is one run of adjacent columns sharing the same attribute
type AttrRun struct {
	Attr   Attr
	Length int
}

// AttrRunList is a run-length-encoded sequence of per-column attributes.
// Its decompressed length always equals the column count of the row it
// belongs to, and adjacent runs with equal attributes are always merged.
type AttrRunList struct {
	runs  []AttrRun
	total int
}

// NewAttrRunList creates a run list of the given length filled with a single
// attribute
func NewAttrRunList(attr Attr, length int) AttrRunList {
	if length <= 0 {
		return AttrRunList{}
	}
	return AttrRunList{
		runs:  []AttrRun{{Attr: attr, Length: length}},
		total: length,
	}
}

// TotalLength returns the decompressed length of the list
func (l *AttrRunList) TotalLength() int {
	return l.total
}

// Runs returns the underlying runs. The returned slice is shared with the
// list and must not be modified.
func (l *AttrRunList) Runs() []AttrRun {
	return l.runs
}

// At returns the attribute of the given column. Columns past the end report
// the last run's attribute.
func (l *AttrRunList) At(column int) Attr {
	pos := 0
	for _, run := range l.runs {
		pos += run.Length
		if column < pos {
			return run.Attr
		}
	}
	if n := len(l.runs); n > 0 {
		return l.runs[n-1].Attr
	}
	return DefaultAttr()
}

// Replace sets attr across the column range [begin, end), clamped to the
// list's length, splitting and merging runs as needed. It reports whether
// any column's attribute actually changed.
func (l *AttrRunList) Replace(begin, end int, attr Attr) bool {
	if begin < 0 {
		begin = 0
	}
	if end > l.total {
		end = l.total
	}
	if begin >= end {
		return false
	}
	if l.rangeIs(begin, end, attr) {
		return false
	}

	out := make([]AttrRun, 0, len(l.runs)+2)
	pos := 0
	inserted := false
	for _, run := range l.runs {
		runEnd := pos + run.Length
		if keep := min(runEnd, begin) - pos; keep > 0 {
			out = appendRun(out, run.Attr, keep)
		}
		if !inserted && runEnd > begin {
			out = appendRun(out, attr, end-begin)
			inserted = true
		}
		if tail := runEnd - max(pos, end); tail > 0 {
			out = appendRun(out, run.Attr, tail)
		}
		pos = runEnd
	}
	l.runs = out
	return true
}

// rangeIs reports whether every column in [begin, end) already carries attr
func (l *AttrRunList) rangeIs(begin, end int, attr Attr) bool {
	pos := 0
	for _, run := range l.runs {
		runEnd := pos + run.Length
		if runEnd > begin && pos < end && run.Attr != attr {
			return false
		}
		pos = runEnd
		if pos >= end {
			break
		}
	}
	return true
}

// Hyperlinks returns the distinct nonzero hyperlink identifiers present in
// the list, deduplicated, in first-seen order
func (l *AttrRunList) Hyperlinks() []uint16 {
	var ids []uint16
	for _, run := range l.runs {
		id := run.Attr.Hyperlink
		if id == 0 || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// appendRun appends a run to runs, merging it into the previous run when the
// attributes are equal
func appendRun(runs []AttrRun, attr Attr, length int) []AttrRun {
	if n := len(runs); n > 0 && runs[n-1].Attr == attr {
		runs[n-1].Length += length
		return runs
	}
	return append(runs, AttrRun{Attr: attr, Length: length})
}

// transferRuns rescales a run list from oldTotal columns to newTotal columns.
// Run boundaries are scaled proportionally (cumulative, with rounding) so
// that a recolored region keeps its relative extent across a resize instead
// of being truncated away. The transform is lossy: runs that round to zero
// width disappear, and a round trip W1 -> W2 -> W1 may shift boundaries by
// rounding drift.
func transferRuns(runs []AttrRun, oldTotal, newTotal int) AttrRunList {
	if newTotal <= 0 {
		return AttrRunList{}
	}
	if oldTotal <= 0 || len(runs) == 0 {
		return NewAttrRunList(DefaultAttr(), newTotal)
	}
	out := make([]AttrRun, 0, len(runs))
	cum := 0
	prev := 0
	for _, run := range runs {
		cum += run.Length
		boundary := (cum*newTotal + oldTotal/2) / oldTotal
		if boundary > prev {
			out = appendRun(out, run.Attr, boundary-prev)
			prev = boundary
		}
	}
	if prev < newTotal {
		// The decompressed length must come out to exactly newTotal.
		out = appendRun(out, runs[len(runs)-1].Attr, newTotal-prev)
	}
	return AttrRunList{runs: out, total: newTotal}
}
