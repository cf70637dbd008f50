package sigil

import (
	"image/color"

	"github.com/sigilgen/sigil/pkg/errors"
)

// Row count limits. The upper bound exists because the grid source is 15
// bytes (120 bits): rows=15 needs cols*rows = 8*15 = 120 bits, exactly at
// the limit. Larger values would read past the source.
const (
	MinRows = 1
	MaxRows = 15
)

// Theme configures the way a sigil looks. A Theme is immutable once
// constructed and may be shared across concurrent generation calls.
type Theme struct {
	// Rows is the grid dimension. Supported values: 1-15 inclusive.
	Rows int

	// Foreground holds the candidate foreground colours. Each sigil uses
	// one, selected by the first digest byte. Must be non-empty; order is
	// significant and duplicates are permitted.
	Foreground []color.RGBA

	// Background is the single background colour.
	Background color.RGBA
}

// Default colours from https://github.com/tent/sigil, BSD 3-Clause.
var defaultForeground = []color.RGBA{
	{R: 45, G: 79, B: 255, A: 255},
	{R: 254, G: 180, B: 44, A: 255},
	{R: 226, G: 121, B: 234, A: 255},
	{R: 30, G: 179, B: 253, A: 255},
	{R: 232, G: 77, B: 65, A: 255},
	{R: 49, G: 203, B: 115, A: 255},
	{R: 141, G: 69, B: 170, A: 255},
}

// DefaultTheme returns the Cupcake Sigil default theme: a 5x5 grid, the
// seven-colour reference palette, and a light gray background.
func DefaultTheme() *Theme {
	return &Theme{
		Rows:       5,
		Foreground: append([]color.RGBA(nil), defaultForeground...),
		Background: color.RGBA{R: 224, G: 224, B: 224, A: 255},
	}
}

// Validate checks the theme's configuration invariants. It reports a
// configuration error if Rows is outside [1, 15] or the foreground
// palette is empty. Validation happens before any hashing or rendering
// work; invalid themes are rejected, never clamped.
func (t *Theme) Validate() error {
	if t.Rows < MinRows || t.Rows > MaxRows {
		return errors.New(errors.ErrCodeInvalidTheme, "rows must be between %d and %d, got %d", MinRows, MaxRows, t.Rows)
	}
	if len(t.Foreground) == 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "foreground palette must not be empty")
	}
	return nil
}

// pickForeground selects a foreground colour by modular index.
// The caller guarantees a non-empty palette via Validate.
func (t *Theme) pickForeground(v byte) color.RGBA {
	return t.Foreground[int(v)%len(t.Foreground)]
}
