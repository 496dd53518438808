package logotype

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit RGB triple. It is always produced from a
// 6-hex-digit representation; each channel is in [0, 255].
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ColorFormatError is returned when a color string is not exactly six
// hexadecimal digits (optionally prefixed with '#').
type ColorFormatError struct {
	// Input is the rejected string, as received.
	Input string
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("logotype: invalid color format %q (want 6 hex digits)", e.Input)
}

// ParseHex parses a 6-hex-digit color string such as "#1A2B3C" or "1a2b3c".
// The leading '#' is optional. Any other form returns *ColorFormatError.
//
// ParseHex is pure and deterministic; it is the only render-path operation
// that can fail outward.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, &ColorFormatError{Input: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &ColorFormatError{Input: s}
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Use it only for compile-time constant colors.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical "#RRGGBB" representation.
// For any valid input, ParseHex followed by Hex is a round trip.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Scale multiplies each channel by f, truncating to integer.
// Results are clamped to [0, 255]. The extrusion effect uses Scale to
// darken depth layers.
func (c Color) Scale(f float64) Color {
	return Color{
		R: scaleChannel(c.R, f),
		G: scaleChannel(c.G, f),
		B: scaleChannel(c.B, f),
	}
}

// NRGBA converts the color to a standard straight-alpha color with the
// given alpha value.
func (c Color) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func scaleChannel(v uint8, f float64) uint8 {
	scaled := int(float64(v) * f)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
