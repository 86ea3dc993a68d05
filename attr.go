package termrow

// UnderlineStyle represents different underline rendering styles
type UnderlineStyle uint8

const (
	UnderlineNone   UnderlineStyle = iota // No underline
	UnderlineSingle                       // Single straight underline (default)
	UnderlineDouble                       // Double underline
	UnderlineCurly                        // Curly/wavy underline
	UnderlineDotted                       // Dotted underline
	UnderlineDashed                       // Dashed underline
)

// AttrFlags is a bitset of boolean text rendering attributes
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// Attr is the style token stored per column in a row's attribute run list.
// The row engine treats it as an opaque, copyable, comparable value: it is
// never interpreted except for equality and the hyperlink scan.
//
// Hyperlink is an identifier into a hyperlink table owned by the screen
// buffer; zero means "no hyperlink".
type Attr struct {
	Fg             Color
	Bg             Color
	Flags          AttrFlags
	UnderlineStyle UnderlineStyle
	Hyperlink      uint16
}

// DefaultAttr returns the attribute used for blank cells: default colors,
// no flags, no hyperlink.
func DefaultAttr() Attr {
	return Attr{Fg: DefaultForeground, Bg: DefaultBackground}
}

// Has returns true if all the given flags are set
func (a Attr) Has(flags AttrFlags) bool {
	return a.Flags&flags == flags
}

// WithHyperlink returns a copy of the attribute pointing at the given
// hyperlink identifier
func (a Attr) WithHyperlink(id uint16) Attr {
	a.Hyperlink = id
	return a
}
