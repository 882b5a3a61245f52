/*
Package worker shards a dictionary across a fixed number of workers and
runs a board search against each worker's private trie and board copy
with no inter-worker synchronization.

Use Cases:
  - The parallel half of a Boggle-style word-search engine: one Worker
    per hardware thread, each with a disjoint shard of the dictionary,
    searched independently and joined at the end.

Example usage:

	c, _ := worker.NewCoordinator(4, 1<<16)
	_ = c.LoadDictionary([]string{"cat", "dog", "bay"})
	words, score, _ := c.FindWords([]byte("catdogbay"), 3, 3)

Implementation Details:
  - Sharding key is the first letter of a word's canonical spelling mod
    the worker count; "qu" collapse never changes a word's first letter,
    so sharding on the canonical spelling and sharding on the path key
    agree.
  - Each worker owns a queue.Queue[string] as its load-time inbox: words
    are routed into it during the dictionary scan and drained into the
    worker's own trie only once every word has been assigned, a literal
    reading of "workers do not communicate during loading" — the inbox
    is never touched by any other worker.
  - FindWords gives every worker its own board.Board via Clone, since the
    sentinel-marking search needs exclusive write access to the cells it
    mutates.

Time Complexity:
  - LoadDictionary: O(total dictionary bytes)
  - FindWords: O(sum of each worker's search cost), wall-clock bounded by
    the slowest single worker thanks to the errgroup fan-out
*/
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Zubayear/boggle/board"
	"github.com/Zubayear/boggle/queue"
	"github.com/Zubayear/boggle/result"
	"github.com/Zubayear/boggle/search"
	"github.com/Zubayear/boggle/trie"
)

// Worker owns one Arena-backed Trie root and one load-time inbox. Its
// Trie and inbox are private: no other worker ever reads or writes them.
type Worker struct {
	trie  *trie.Trie
	inbox *queue.Queue[string]
}

// newWorker allocates a Worker with its own trie of the given arena
// capacity and an empty inbox.
func newWorker(arenaCapacity uint32) (*Worker, error) {
	t, err := trie.New(arenaCapacity)
	if err != nil {
		return nil, err
	}
	return &Worker{trie: t, inbox: queue.NewQueue[string]()}, nil
}

// drain empties w's inbox into w's trie, returning the first AddWord
// error encountered, if any.
func (w *Worker) drain() error {
	for !w.inbox.IsEmpty() {
		word, err := w.inbox.Dequeue()
		if err != nil {
			return err
		}
		if err := w.trie.AddWord(word); err != nil {
			return err
		}
	}
	return nil
}

// search runs a single board search against w's trie and private board
// copy, resetting w's trie search state first so repeated FindWords
// calls on the same loaded dictionary behave idempotently (spec.md §8,
// invariant 5).
func (w *Worker) search(b *board.Board) (words []string, score uint32) {
	w.trie.ResetSearchState()
	search.New(w.trie).FindWords(b)
	return result.Collect(w.trie)
}

// Coordinator shards a dictionary across a fixed set of Workers and
// drives a parallel board search with no synchronization between them
// during either loading or searching.
type Coordinator struct {
	workers []*Worker
}

// DefaultArenaCapacity is the per-worker arena node budget used when the
// caller does not specify one, sized for dictionaries on the order of
// a few hundred thousand words sharded across a handful of workers.
const DefaultArenaCapacity uint32 = 600_000

// WorkerCount returns runtime.GOMAXPROCS(0), clamped to a minimum of 1 —
// spec.md §4.5's "available hardware parallelism, minimum 1".
func WorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// NewCoordinator constructs a Coordinator with workerCount Workers, each
// owning a trie.Trie backed by an arena of arenaCapacity nodes.
// workerCount is clamped to a minimum of 1.
func NewCoordinator(workerCount int, arenaCapacity uint32) (*Coordinator, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	workers := make([]*Worker, workerCount)
	for i := range workers {
		w, err := newWorker(arenaCapacity)
		if err != nil {
			return nil, err
		}
		workers[i] = w
	}
	return &Coordinator{workers: workers}, nil
}

// LoadDictionary routes every word to exactly one worker based on
// (first-letter index) mod workerCount, then drains each worker's inbox
// into its trie. Words whose first letter is somehow outside 'a'..'z'
// are skipped — dictionary.Normalize is expected to have already
// guaranteed this, but LoadDictionary does not trust its caller blindly.
//
// Time Complexity: O(total length of words)
func (c *Coordinator) LoadDictionary(words []string) error {
	w := len(c.workers)
	for _, word := range words {
		if len(word) == 0 {
			continue
		}
		idx, ok := trie.LetterIndex(word[0])
		if !ok {
			continue
		}
		c.workers[idx%w].inbox.Enqueue(word)
	}
	for _, worker := range c.workers {
		if err := worker.drain(); err != nil {
			return err
		}
	}
	return nil
}

// FindWords runs a board search against every worker's trie in
// parallel: worker 0 runs on the calling goroutine, workers 1..N-1 each
// run on a spawned goroutine, and FindWords blocks until every worker
// has joined. Each worker searches its own private copy of the board.
// Results are concatenated worker 0 || worker 1 || ... and scores
// summed, matching spec.md §5's ordering guarantee.
//
// Time Complexity: O(sum of each worker's search cost) of work, but
// wall-clock bounded by the slowest single worker.
func (c *Coordinator) FindWords(data []byte, width, height uint32) ([]string, uint32, error) {
	master, err := board.New(data, width, height)
	if err != nil {
		return nil, 0, err
	}

	perWorkerWords := make([][]string, len(c.workers))
	perWorkerScore := make([]uint32, len(c.workers))

	group, _ := errgroup.WithContext(context.Background())
	for i := 1; i < len(c.workers); i++ {
		i := i
		group.Go(func() error {
			words, score := c.workers[i].search(master.Clone())
			perWorkerWords[i] = words
			perWorkerScore[i] = score
			return nil
		})
	}

	// Worker 0 runs inline on the calling goroutine, per spec.md §4.5.
	words0, score0 := c.workers[0].search(master.Clone())
	perWorkerWords[0] = words0
	perWorkerScore[0] = score0

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, words := range perWorkerWords {
		total += len(words)
	}
	out := make([]string, 0, total)
	var score uint32
	for i := range c.workers {
		out = append(out, perWorkerWords[i]...)
		score += perWorkerScore[i]
	}
	return out, score, nil
}
