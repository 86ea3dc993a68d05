// Package termrow implements the per-row storage and mutation engine of a
// terminal screen buffer: a fixed-width sequence of display columns backed by
// a variable-length UTF-16 text encoding and a run-length-encoded per-column
// style attribute list.
//
// This package contains:
//   - Color and attribute token types
//   - The Row type with its column-to-text offset table
//   - Write operations (ReplaceText, ReplaceCharacters, CopyRangeFrom, ...)
//   - Queries and glyph-boundary navigation
//   - An Arena providing the caller-owned row buffers
//
// The screen buffer that owns the rows, the escape sequence parser that
// decides what to write, and all rendering live outside this package.
package termrow

// ColorType indicates how a color was specified
type ColorType uint8

const (
	ColorTypeDefault   ColorType = iota // Use terminal default fg/bg (SGR 39/49)
	ColorTypeStandard                   // Standard 16 ANSI colors (0-15)
	ColorTypePalette                    // 256-color palette (0-255)
	ColorTypeTrueColor                  // 24-bit RGB
)

// Color represents a terminal color with its original specification preserved.
// How an indexed color resolves to RGB is the renderer's concern; this package
// only stores and compares colors.
type Color struct {
	Type    ColorType // How the color was specified
	Index   uint8     // For Standard (0-15) or Palette (0-255)
	R, G, B uint8     // For TrueColor
}

// Predefined colors
var (
	DefaultForeground = Color{Type: ColorTypeDefault}
	DefaultBackground = Color{Type: ColorTypeDefault}
)

// StandardColor creates a standard 16-color ANSI color (index 0-15)
func StandardColor(index int) Color {
	if index < 0 || index > 15 {
		index = 7 // Default to white
	}
	return Color{Type: ColorTypeStandard, Index: uint8(index)}
}

// PaletteColor creates a 256-color palette color (index 0-255)
func PaletteColor(index int) Color {
	if index < 0 || index > 255 {
		index = 7 // Default to white
	}
	return Color{Type: ColorTypePalette, Index: uint8(index)}
}

// TrueColor creates a 24-bit true color
func TrueColor(r, g, b uint8) Color {
	return Color{Type: ColorTypeTrueColor, R: r, G: g, B: b}
}
