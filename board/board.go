/*
Package board provides the mutable rectangular letter grid a word-search
engine walks and marks in place.

A Board holds a dense, row-major buffer of W*H lowercase letters. During
a search, the engine overwrites the cell currently on the search stack
with the Sentinel byte (0) so it cannot be revisited by the same path,
then restores the original letter on the way back out — an O(1)
per-step alternative to carrying a separate W*H visited-bitset on every
starting cell's descent.

Use Cases:
  - Boggle-style word search engines that need cheap, allocation-free
    "currently on the path" marking during a depth-first board walk.

Example usage:

	b, err := board.New([]byte("catdogbay"), 3, 3)
	letter := b.At(0, 0)      // 'c'
	b.Set(0, 0, board.Sentinel)
	b.Set(0, 0, letter)       // restore

Implementation Details:
  - Cells are addressed y*width+x, matching the row-major layout spec.md
    describes for the flat board_bytes buffer.
  - New copies the input slice so the caller's buffer and the Board's
    internal buffer are never aliased; each worker in a parallel search
    is handed its own private Board built from the same source bytes.

Time Complexity:
  - At / Set: O(1)
  - New: O(width*height)
*/
package board

import "errors"

// Sentinel marks a cell as "currently on the active search path; do not
// revisit". It is never a valid letter, since letters are restricted to
// 'a'..'z'.
const Sentinel byte = 0

// ErrInvalidDimensions is returned by New when width or height is zero,
// the data length does not match width*height, or width*height would
// overflow 32-bit indexing arithmetic. spec.md §7 treats this as a
// programmer error (a fixed build/sizing bug), not a recoverable
// condition — but idiomatic Go returns it rather than aborting, leaving
// the decision of what to do about a programmer error to the caller.
var ErrInvalidDimensions = errors.New("board: invalid dimensions")

// Board is a mutable W*H grid of lowercase letters, addressed row-major.
type Board struct {
	cells  []byte
	width  uint32
	height uint32
}

// New copies data into a new Board of the given width and height. data
// must have exactly width*height bytes.
//
// Time Complexity: O(width*height)
func New(data []byte, width, height uint32) (*Board, error) {
	if width == 0 || height == 0 {
		return nil, ErrInvalidDimensions
	}
	// Overflow check: width*height must fit in a uint32 index space.
	if height > (^uint32(0))/width {
		return nil, ErrInvalidDimensions
	}
	if uint64(width)*uint64(height) != uint64(len(data)) {
		return nil, ErrInvalidDimensions
	}

	cells := make([]byte, len(data))
	copy(cells, data)
	return &Board{cells: cells, width: width, height: height}, nil
}

// Width returns the board's column count.
func (b *Board) Width() uint32 { return b.width }

// Height returns the board's row count.
func (b *Board) Height() uint32 { return b.height }

// At returns the letter currently at (x, y). It returns Sentinel if that
// cell is currently marked as "on the active search path".
//
// Time Complexity: O(1)
func (b *Board) At(x, y uint32) byte {
	return b.cells[y*b.width+x]
}

// Set overwrites the letter at (x, y), used both to mark a cell with
// Sentinel while it is on the search stack and to restore its original
// letter on the way back out.
//
// Time Complexity: O(1)
func (b *Board) Set(x, y uint32, letter byte) {
	b.cells[y*b.width+x] = letter
}

// Snapshot returns a copy of the board's current cell buffer, primarily
// useful for asserting board preservation (spec.md §8, invariant 7)
// after a search completes.
//
// Time Complexity: O(width*height)
func (b *Board) Snapshot() []byte {
	out := make([]byte, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns an independent copy of the board, letters and
// dimensions intact and no Sentinel marks applied. The parallel
// coordinator gives every worker its own Clone of the shared board
// bytes, since the sentinel-mark trick requires each worker to have
// exclusive write access to its own copy (spec.md §5).
//
// Time Complexity: O(width*height)
func (b *Board) Clone() *Board {
	cells := make([]byte, len(b.cells))
	copy(cells, b.cells)
	return &Board{cells: cells, width: b.width, height: b.height}
}
