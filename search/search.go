/*
Package search implements the depth-first board walk that drives a
trie.Trie to completion: for every starting cell, in reading order, it
descends through the board and the trie in lock-step, latching newly
discovered words and pruning whole subtrees once every word beneath them
has already been found.

Use Cases:
  - The single-worker search step of a Boggle-style word-search engine;
    see package worker for the parallel coordinator that runs one Engine
    per shard of the dictionary.

Example usage:

	tr, _ := trie.New(1 << 16)
	_ = tr.AddWord("cat")
	b, _ := board.New([]byte("catdogbay"), 3, 3)
	engine := search.New(tr)
	engine.FindWords(b)
	// tr now has Found(node) == true for every reachable word.

Implementation Details:
  - Neighbor order is fixed at eight offsets in a canonical order so that
    traversal is reproducible for testing, even though the result is a
    set and the order is not otherwise observable.
  - Board bounds checking relies on unsigned wraparound: x + (-1) as a
    uint32 wraps to a very large value, which already exceeds width, so
    a single ">=" comparison covers both the underflow and overflow
    cases without a separate sign check.
  - Recursion depth never exceeds trie.MaxWordLength, since the trie has
    no path longer than that and the board's sentinel mark guarantees no
    cell is visited twice on the same path.

Time Complexity:
  - FindWords: proportional to the number of board paths that match a
    live trie prefix, not to the full W*H*8^depth search space, thanks
    to the pending-counter pruning in trie.Trie.
*/
package search

import (
	"github.com/Zubayear/boggle/arena"
	"github.com/Zubayear/boggle/board"
	"github.com/Zubayear/boggle/trie"
)

// neighborOffsets lists the eight board-adjacent directions in the
// canonical order spec.md fixes for deterministic traversal: west,
// northwest, north, northeast, east, southeast, south, southwest.
var neighborOffsets = [8][2]int32{
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
}

// Engine runs a board walk against a single trie.Trie. One Engine (and
// the Trie it wraps) is meant to be owned by exactly one worker; see
// package worker for how multiple Engines are fanned out across a
// sharded dictionary.
type Engine struct {
	trie *trie.Trie
}

// New returns an Engine that will search against t.
func New(t *trie.Trie) *Engine {
	return &Engine{trie: t}
}

// FindWords walks every cell of b in reading order as a potential path
// start, latching every dictionary word reachable from it. It mutates b
// in place while descending and restores every cell before returning
// (spec.md §8, invariant 7: board preservation).
//
// Time Complexity: proportional to the number of matching paths, not to
// the full search space.
func (e *Engine) FindWords(b *board.Board) {
	w, h := b.Width(), b.Height()
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			e.descend(b, x, y, e.trie.Root())
		}
	}
}

func (e *Engine) descend(b *board.Board, x, y uint32, nodeIdx arena.Index) {
	letter := b.At(x, y)
	if letter == board.Sentinel {
		return
	}

	letterIdx, ok := trie.LetterIndex(letter)
	if !ok {
		return
	}

	childIdx := e.trie.Child(nodeIdx, letterIdx)
	if childIdx == arena.Null {
		return
	}

	e.trie.MarkFoundIfNeeded(nodeIdx, childIdx)

	if e.trie.Pending(childIdx) == 0 {
		return
	}

	b.Set(x, y, board.Sentinel)

	w, h := b.Width(), b.Height()
	for _, offset := range neighborOffsets {
		nx := x + uint32(offset[0])
		ny := y + uint32(offset[1])
		if nx >= w || ny >= h {
			continue
		}
		e.descend(b, nx, ny, childIdx)
	}

	b.Set(x, y, letter)
}
