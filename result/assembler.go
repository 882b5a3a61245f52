/*
Package result turns a searched trie.Trie into the words and score a
caller actually wants back.

Use Cases:
  - The final step of both a single-worker search and the parallel
    coordinator's per-worker harvest: once trie.Found flags are latched,
    Collect walks the trie once to produce the word list and the score
    in the same pass.

Example usage:

	engine := search.New(tr)
	engine.FindWords(b)
	words, score := result.Collect(tr)

Implementation Details:
  - CollectSize and Collect both walk in trie child-index (0..25)
    depth-first order, so a single worker's own output is always in that
    deterministic order; the coordinator concatenates per-worker slices
    in worker-index order on top of that.
  - scoreTable is a direct array literal translation of spec.md
    §4.6's score table, indexed by canonical (q-expanded) word length.

Time Complexity:
  - CollectSize / Collect: O(number of nodes in the trie)
  - TopScoring: O(n log n) for n words (every word enters the heap)
  - LengthHistogram: O(n log n) for n words
*/
package result

import (
	"github.com/Zubayear/boggle/arena"
	"github.com/Zubayear/boggle/priorityqueue"
	"github.com/Zubayear/boggle/treemap"
	"github.com/Zubayear/boggle/trie"
)

// scoreTable implements spec.md §4.6's score_for_length, indexed by
// canonical word length 0..15. Lengths below trie.MinWordLength never
// occur in a populated trie but are included so the table is total over
// the index range AddWord's bound check allows.
var scoreTable = [trie.MaxWordLength + 1]uint32{
	0, 0, 0, 1, 1, 2, 3, 5, 11, 11, 11, 11, 11, 11, 11, 11,
}

// ScoreForLength returns the point value of a word of the given
// canonical (q-expanded) length, or 0 if length is out of
// [trie.MinWordLength, trie.MaxWordLength].
//
// Time Complexity: O(1)
func ScoreForLength(length int) uint32 {
	if length < 0 || length >= len(scoreTable) {
		return 0
	}
	return scoreTable[length]
}

// CollectSize returns the number of terminal nodes in t that a search
// has already latched as found — the exact output size Collect will
// produce, used to pre-size the coordinator's output array.
//
// Time Complexity: O(number of nodes)
func CollectSize(t *trie.Trie) int {
	count := 0
	t.Walk(func(idx arena.Index) {
		if t.Found(idx) {
			count++
		}
	})
	return count
}

// Collect walks t in child-index depth-first order and returns every
// found word alongside the summed score (spec.md §8, invariant 4: score
// law).
//
// Time Complexity: O(number of nodes)
func Collect(t *trie.Trie) (words []string, score uint32) {
	words = make([]string, 0, CollectSize(t))
	t.Walk(func(idx arena.Index) {
		if !t.Found(idx) {
			return
		}
		word := t.Word(idx)
		words = append(words, word)
		score += ScoreForLength(len(word))
	})
	return words, score
}

// scoredWord pairs a word with its score so TopScoring's heap can order
// by score without recomputing ScoreForLength on every comparison.
type scoredWord struct {
	word  string
	score uint32
}

// TopScoring returns up to k of words' highest-scoring entries, highest
// score first, ties broken lexicographically for a deterministic order.
// It is an addition beyond spec.md's core contract, useful for a
// leaderboard-style presentation of a search result. Every word is added
// to the heap and the first k are polled; the heap is not size-capped.
//
// Time Complexity: O(n log n) for n words
func TopScoring(words []string, k int) []string {
	if k <= 0 || len(words) == 0 {
		return nil
	}

	heap := priorityqueue.NewBinaryHeapWithComparator(func(a, b scoredWord) bool {
		if a.score != b.score {
			return a.score > b.score
		}
		return a.word < b.word
	})
	for _, w := range words {
		heap.Add(scoredWord{word: w, score: ScoreForLength(len(w))})
	}

	if k > len(words) {
		k = len(words)
	}
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		sw, err := heap.Poll()
		if err != nil {
			break
		}
		out = append(out, sw.word)
	}
	return out
}

// LengthHistogram buckets words by canonical length and returns the
// ordered set of lengths that occurred, shortest first, alongside a map
// from length to count. It is an addition beyond spec.md's core
// contract, useful for summarizing a search result's shape (e.g. a
// harness reporting "3 seven-letter words found").
//
// Time Complexity: O(n log n) for n words
func LengthHistogram(words []string) (lengths []int, counts map[int]int) {
	tm := treemap.NewTreeMap[int, int]()
	for _, w := range words {
		n := len(w)
		current, _ := tm.Get(n)
		tm.Put(n, current+1)
	}

	counts = make(map[int]int)
	for _, n := range tm.Keys() {
		v, _ := tm.Get(n)
		counts[n] = v
		lengths = append(lengths, n)
	}
	return lengths, counts
}
