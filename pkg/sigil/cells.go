package sigil

import "strings"

// gridBytes is the number of digest bytes that drive the cell grid.
// 15 bytes give 120 bits, exactly enough for the widest supported grid
// (rows=15, cols=8, 8*15=120).
const gridBytes = 15

// cellSet is a fixed bit set of up to 256 cells, indexed row-major.
// The capacity covers every supported grid size (15*15 = 225 <= 256).
type cellSet struct {
	bits [32]byte
}

func (c *cellSet) get(index int) bool {
	return c.bits[index/8]&(1<<(index%8)) != 0
}

func (c *cellSet) set(index int) {
	c.bits[index/8] |= 1 << (index % 8)
}

// sourceBit extracts bit i from the grid source, most-significant-bit
// first within each byte. This ordering comes from the Cupcake Sigil cell
// algorithm and must not change.
func sourceBit(source []byte, i int) bool {
	return (source[i/8]>>(7-i%8))&1 == 1
}

// buildCells derives the mirrored cell grid from 15 source bytes.
//
// Only the left half of the grid (plus the middle column for odd row
// counts) is bit-driven; iteration walks that half column-major, and each
// set bit fills both the cell and its horizontal mirror. The caller
// guarantees 1 <= rows <= 15 so that at most 120 bits are read.
func buildCells(rows int, source []byte) cellSet {
	cols := rows/2 + rows%2

	var cells cellSet
	for i := 0; i < cols*rows; i++ {
		if !sourceBit(source, i) {
			continue
		}
		x := i / rows
		y := i % rows

		cells.set(y*rows + x)
		cells.set(y*rows + rows - 1 - x)
	}

	return cells
}

// gridString renders the grid as rows of 'X' (filled) and '-' (empty),
// one line per row. Used for debugging and golden tests.
func (c *cellSet) gridString(rows int) string {
	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < rows; x++ {
			if c.get(y*rows + x) {
				b.WriteByte('X')
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
