package sigil

import (
	"image"
	"image/color"

	"github.com/sigilgen/sigil/pkg/errors"
)

// Sigil is a generated identicon that can be rendered to an image.
// It binds one foreground colour, one background colour, the grid
// dimension, and the mirrored cell grid. A Sigil is immutable; Invert
// returns a new value.
type Sigil struct {
	foreground color.RGBA
	background color.RGBA
	rows       int
	cells      cellSet
}

// FromHash creates a sigil from a precomputed 16-byte digest.
//
// Digest byte 0 selects the foreground colour from the theme's palette;
// bytes 1-15 drive the cell grid. FromHash lets a caller that has already
// hashed its input (e.g. to use as an HTTP ETag) skip rehashing.
//
// Returns a configuration error if the theme is invalid.
func FromHash(theme *Theme, digest [16]byte) (*Sigil, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	return &Sigil{
		foreground: theme.pickForeground(digest[0]),
		background: theme.Background,
		rows:       theme.Rows,
		cells:      buildCells(theme.Rows, digest[1:]),
	}, nil
}

// Generate creates a sigil by hashing an input. Any byte sequence,
// including empty, is a valid input.
//
// Returns a configuration error if the theme is invalid.
func Generate(theme *Theme, input []byte) (*Sigil, error) {
	// Reject bad configuration before doing any hashing work.
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return FromHash(theme, Hash(input))
}

// Foreground returns the selected foreground colour.
func (s *Sigil) Foreground() color.RGBA { return s.foreground }

// Background returns the background colour.
func (s *Sigil) Background() color.RGBA { return s.background }

// Rows returns the grid dimension.
func (s *Sigil) Rows() int { return s.rows }

// Invert returns a copy with foreground and background colours swapped.
// The cell grid and row count are unchanged; the receiver is not modified.
func (s *Sigil) Invert() *Sigil {
	inv := *s
	inv.foreground, inv.background = s.background, s.foreground
	return &inv
}

// String renders the cell grid as rows of 'X' and '-'. Colours are not
// represented.
func (s *Sigil) String() string {
	return s.cells.gridString(s.rows)
}

// ToImage rasterizes the sigil to a size x size RGBA image.
//
// size must be a multiple of (rows+1)*2; otherwise a geometry error is
// returned and nothing is rendered. The grid is drawn at
// cellSize = size/(rows+1) pixels per cell with padding = cellSize/2
// pixels of background on each edge. The integer division means an odd
// cell size leaves a one-pixel-asymmetric border; this matches the
// reference renderer and is kept for compatibility.
//
// ToImage is pure and may be called repeatedly with different sizes.
func (s *Sigil) ToImage(size int) (*image.RGBA, error) {
	div := (s.rows + 1) * 2
	if size < 0 || size%div != 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size %d must be a non-negative multiple of %d", size, div)
	}

	cellSize := size / (s.rows + 1)
	padding := cellSize / 2

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			img.SetRGBA(px, py, s.pixelAt(px, py, size, cellSize, padding))
		}
	}
	return img, nil
}

func (s *Sigil) pixelAt(px, py, size, cellSize, padding int) color.RGBA {
	if px < padding || px >= size-padding || py < padding || py >= size-padding {
		return s.background
	}

	cx := (px - padding) / cellSize
	cy := (py - padding) / cellSize
	if s.cells.get(cy*s.rows + cx) {
		return s.foreground
	}
	return s.background
}
