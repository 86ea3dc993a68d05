package termrow

// Arena owns one contiguous allocation backing the character and offset
// buffers of many rows of the same width. This is the ownership model the
// Row constructor expects: the screen buffer allocates an Arena for its
// whole grid and hands each Row its slice pair, which stays valid across
// Reset calls until the buffer resizes and builds a new Arena.
type Arena struct {
	columns int
	rows    int
	chars   []uint16
	offsets []uint16
}

// NewArena allocates storage for the given grid
func NewArena(columns, rows int) *Arena {
	if columns < 1 || columns > maxColumns || rows < 1 {
		panic("termrow: arena dimensions out of range")
	}
	return &Arena{
		columns: columns,
		rows:    rows,
		chars:   make([]uint16, columns*rows),
		offsets: make([]uint16, (columns+1)*rows),
	}
}

// Columns returns the width every row buffer accommodates
func (a *Arena) Columns() int {
	return a.columns
}

// Rows returns the number of row buffer pairs available
func (a *Arena) Rows() int {
	return a.rows
}

// Buffers returns the (chars, offsets) pair for the given row index. The
// slices are capacity-capped so a row can never grow into its neighbor's
// storage.
func (a *Arena) Buffers(row int) (chars, offsets []uint16) {
	if row < 0 || row >= a.rows {
		panic("termrow: arena row out of range")
	}
	c := row * a.columns
	o := row * (a.columns + 1)
	return a.chars[c : c+a.columns : c+a.columns], a.offsets[o : o+a.columns+1 : o+a.columns+1]
}

// NewRow constructs a Row over the arena's buffers for the given row index
func (a *Arena) NewRow(row int, fill Attr) *Row {
	chars, offsets := a.Buffers(row)
	return NewRow(chars, offsets, a.columns, fill)
}
