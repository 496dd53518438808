package font

import "errors"

// Sentinel errors for the font package. These never escape the Resolver;
// they drive fallback decisions and show up in diagnostic logs only.
var (
	// ErrEmptyFontData is returned when a font file is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoFontInCollection is returned when a font collection file
	// contains no usable font.
	ErrNoFontInCollection = errors.New("font: collection contains no fonts")
)
