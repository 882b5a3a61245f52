/*
Package trie provides an arena-backed prefix tree shaped for simultaneous
traversal with a board search: a word-search engine walks the board and
the trie in lock-step, one trie descent per board step.

Unlike a conventional prefix tree, nodes do not hold child pointers or a
simple "is this a word" flag. Each node instead carries:

  - children: an arena.Index per letter (0 means "no child"), so the
    whole tree lives inside one arena.Arena and can be released in bulk.
  - loaded / pending: a word's insertion increments the pending (and
    loaded) counter of every node *before* advancing past it — never the
    terminal node that word ends on, whose own terminal-ness is instead
    counted in its parent's pending. So loaded/pending at a node counts
    words that continue past it into some child, frozen at insertion
    time for loaded; pending starts equal to loaded and is decremented
    exactly once per child terminal word the first time a search
    reaches it. Once pending reaches zero, every word reachable through
    that node's children has already been found, so a search can stop
    descending into it.
  - found: latched true the first time a terminal node is reached by a
    search, so a word already discovered via one path is never reported
    twice even if another path also spells it.
  - word: the original dictionary spelling (including "qu"), stored only
    at terminal nodes. The tree is descended using a "path key" in which
    every "qu" has been collapsed to a single "q" node, matching the
    conventional reading of a Boggle Q cell as "Qu" — but the word
    reported back to the caller is the canonical, uncollapsed spelling.

Use Cases:
  - Boggle-style word search engines where the dictionary must be walked
    in lock-step with a board traversal and whole matched subtrees need
    to be pruned once exhausted.

Example usage:

	t, err := trie.New(1 << 16)
	_ = t.AddWord("quran")
	child := t.Child(t.Root(), 16) // 'q', the collapsed "qu" step; walk letter by letter

Implementation Details:
  - Built on arena.Arena[node]; children are arena indices, not pointers.
  - AddWord is append-only: after loading, the only mutations a search
    performs are found := true and a single pending-- on the parent of a
    newly found terminal.
  - ResetSearchState restores found/pending to their post-load values, so
    the same trie can be searched more than once without reloading.

Time Complexity:
  - AddWord: O(len(word))
  - Child / Pending / Word / Found: O(1)
  - Walk / Validate / ResetSearchState: O(number of nodes)

Space Complexity:
  - O(total nodes across all inserted words), bounded by the arena's
    configured capacity.
*/
package trie

import (
	"errors"

	"github.com/Zubayear/boggle/arena"
	"github.com/Zubayear/boggle/stack"
)

// ChildrenCount is the size of the alphabet a node branches on: the 26
// lowercase letters 'a'..'z'.
const ChildrenCount = 26

// MinWordLength and MaxWordLength bound admissible dictionary words
// (canonical, q-expanded length). AddWord rejects anything outside
// this range.
const (
	MinWordLength = 3
	MaxWordLength = 15
)

// ErrInvalidWord is returned by AddWord when the word is empty, contains
// a byte outside 'a'..'z', or falls outside [MinWordLength, MaxWordLength].
var ErrInvalidWord = errors.New("trie: invalid word")

// node is the value type stored in the backing arena. The trailing
// padding field rounds sizeof(node) up to a multiple of 16 bytes, the
// slot-alignment spec.md's arena design calls for (see DESIGN.md for why
// true 64-byte cache-line alignment of the slice base is out of scope
// without unsafe).
type node struct {
	children [ChildrenCount]arena.Index
	parent   arena.Index
	loaded   int32
	pending  int32
	found    bool
	word     string
	_        [7]byte
}

// Trie is an arena-backed prefix tree. The zero value is not usable;
// construct one with New.
type Trie struct {
	pool *arena.Arena[node]
	root arena.Index
}

// New reserves an arena able to hold capacity nodes and returns an empty
// Trie rooted in it.
//
// Time Complexity: O(capacity)
func New(capacity uint32) (*Trie, error) {
	pool := arena.New[node](capacity)
	rootIdx, err := pool.Allocate()
	if err != nil {
		return nil, err
	}
	*pool.Get(rootIdx) = node{parent: arena.Null}
	return &Trie{pool: pool, root: rootIdx}, nil
}

// Root returns the arena index of the trie's root node; every search
// starts its descent here.
func (t *Trie) Root() arena.Index {
	return t.root
}

// LetterIndex maps a board/dictionary byte to its 0-based alphabet
// index. ok is false for anything outside 'a'..'z', which both the
// search engine and the dictionary normalizer treat as "no matching
// child".
func LetterIndex(b byte) (idx int, ok bool) {
	if b < 'a' || b > 'z' {
		return 0, false
	}
	return int(b - 'a'), true
}

// AddWord inserts the canonical spelling of word into the trie. Any
// "qu" pair collapses to a single 'q' descent step (the path key), while
// the original spelling (with "qu" intact) is stored at the terminal
// node and is what Collect later reports.
//
// Time Complexity: O(len(word))
func (t *Trie) AddWord(word string) error {
	if len(word) < MinWordLength || len(word) > MaxWordLength {
		return ErrInvalidWord
	}

	current := t.root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		idx, ok := LetterIndex(letter)
		if !ok {
			return ErrInvalidWord
		}
		if letter == 'q' && i+1 < len(word) && word[i+1] == 'u' {
			i++
		}

		parent := t.pool.Get(current)
		parent.loaded++
		parent.pending++

		childIdx := parent.children[idx]
		if childIdx == arena.Null {
			newIdx, err := t.pool.Allocate()
			if err != nil {
				return err
			}
			*t.pool.Get(newIdx) = node{parent: current}
			// parent may have moved conceptually but not physically:
			// the arena never reallocates its backing slice, so this
			// second Get(current) is the same memory Get returned above.
			t.pool.Get(current).children[idx] = newIdx
			childIdx = newIdx
		}
		current = childIdx
	}

	t.pool.Get(current).word = word
	return nil
}

// Child returns the arena index of the child reached from nodeIdx via
// the given letter index, or arena.Null if there is no such child.
//
// Time Complexity: O(1)
func (t *Trie) Child(nodeIdx arena.Index, letterIdx int) arena.Index {
	return t.pool.Get(nodeIdx).children[letterIdx]
}

// Pending returns the number of words that continue past nodeIdx into
// one of its children (nodeIdx's own terminal-ness, if any, is counted
// in nodeIdx's parent's Pending, not here), less those whose terminal is
// a direct child of nodeIdx and has already been found. Words found
// deeper down are not subtracted here, so this is an upper bound on the
// not-yet-found words below nodeIdx. A value of zero means every word
// below nodeIdx has already been found.
//
// Time Complexity: O(1)
func (t *Trie) Pending(nodeIdx arena.Index) int32 {
	return t.pool.Get(nodeIdx).pending
}

// Word returns the canonical spelling stored at nodeIdx, or "" if
// nodeIdx is not a terminal node.
//
// Time Complexity: O(1)
func (t *Trie) Word(nodeIdx arena.Index) string {
	return t.pool.Get(nodeIdx).word
}

// Found reports whether nodeIdx is a terminal node that a search has
// already latched as found.
//
// Time Complexity: O(1)
func (t *Trie) Found(nodeIdx arena.Index) bool {
	return t.pool.Get(nodeIdx).found
}

// MarkFoundIfNeeded implements the search engine's pending-counter
// pruning subtlety (spec §4.2): if childIdx is a terminal node reached
// for the first time, it is latched found and parentIdx's pending count
// is decremented by exactly one. Calling it again for an already-found
// child, or for a non-terminal child, is a no-op.
//
// Time Complexity: O(1)
func (t *Trie) MarkFoundIfNeeded(parentIdx, childIdx arena.Index) {
	child := t.pool.Get(childIdx)
	if child.word != "" && !child.found {
		child.found = true
		t.pool.Get(parentIdx).pending--
	}
}

// ResetSearchState clears every found flag and restores every pending
// counter to its post-load (loaded) value, making the trie safe to
// search again without reloading the dictionary. See DESIGN.md, Open
// Question 1.
//
// Time Complexity: O(number of nodes)
func (t *Trie) ResetSearchState() {
	for idx := arena.Index(1); idx < t.pool.Len(); idx++ {
		n := t.pool.Get(idx)
		n.found = false
		n.pending = n.loaded
	}
}

// Walk visits every node in the trie in child-index (0..25) depth-first
// order, starting at the root, calling visit once per node.
//
// Time Complexity: O(number of nodes)
func (t *Trie) Walk(visit func(idx arena.Index)) {
	var recurse func(idx arena.Index)
	recurse = func(idx arena.Index) {
		visit(idx)
		n := t.pool.Get(idx)
		for letter := 0; letter < ChildrenCount; letter++ {
			child := n.children[letter]
			if child != arena.Null {
				recurse(child)
			}
		}
	}
	recurse(t.root)
}

// Validate performs an iterative, explicit-stack consistency check of
// the core trie invariant: pending(node) must equal the count of
// not-yet-found terminal descendants of node (inclusive). It returns the
// first violation found, or nil if the trie is consistent. Intended for
// tests and offline diagnostics, not the search hot path — which is why
// it is iterative (via the stack package) rather than recursive: a
// standalone checker has no reason to share the search's bounded-depth
// recursion.
//
// A node's own terminal-ness is never counted against its own pending
// field — AddWord only ever increments pending on the node *before*
// advancing to a child, and MarkFoundIfNeeded only ever decrements
// pending on a found terminal's *parent*. So the per-node check sums
// each child's pending plus one for each child that is itself an
// unfound terminal, never looking at the node's own word/found fields.
//
// Time Complexity: O(number of nodes)
func (t *Trie) Validate() error {
	type frame struct {
		idx arena.Index
	}
	s := stack.NewStack[frame]()
	_, _ = s.Push(frame{idx: t.root})

	for !s.IsEmpty() {
		f, err := s.Pop()
		if err != nil {
			return err
		}
		n := t.pool.Get(f.idx)

		want := int32(0)
		for letter := 0; letter < ChildrenCount; letter++ {
			child := n.children[letter]
			if child == arena.Null {
				continue
			}
			childNode := t.pool.Get(child)
			want += childNode.pending
			if childNode.word != "" && !childNode.found {
				want++
			}
			if _, pushErr := s.Push(frame{idx: child}); pushErr != nil {
				return pushErr
			}
		}
		if n.pending != want {
			return errInconsistentPending(f.idx, n.pending, want)
		}
	}
	return nil
}

func errInconsistentPending(idx arena.Index, got, want int32) error {
	return &inconsistentPendingError{idx: idx, got: got, want: want}
}

// inconsistentPendingError reports a node whose pending counter does not
// match the number of not-yet-found terminal descendants beneath it.
type inconsistentPendingError struct {
	idx      arena.Index
	got, want int32
}

func (e *inconsistentPendingError) Error() string {
	return "trie: node " + itoa(uint32(e.idx)) + " has pending=" + itoa(uint32(e.got)) +
		"; want " + itoa(uint32(e.want))
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
