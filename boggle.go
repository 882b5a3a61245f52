/*
Package boggle ties together the arena-backed trie, the in-place board
search, the dictionary normalizer, and the parallel coordinator into the
two library entry points a caller actually needs: load a dictionary, and
search a board.

Use Cases:
  - Embedding a large-scale Boggle-style word-search engine in another
    Go program without that program needing to know about tries, arenas,
    or worker sharding.

Example usage:

	game := boggle.New(boggle.WorkerCount(4))
	if err := game.LoadDictionary("dictionary.txt"); err != nil {
	    log.Fatal(err)
	}
	result, err := game.FindWords([]byte("catdogbay"), 3, 3)
	fmt.Println(result.Words, result.Score)

Implementation Details:
  - Game is a thin façade over worker.Coordinator: LoadDictionary reads
    and normalizes the file via the dictionary package, then hands the
    admissible words to the coordinator for sharding and insertion.
  - Functional options configure worker count and per-worker arena
    capacity at construction time; there are no environment variables
    and no config file, per spec.md §6.

Time Complexity:
  - LoadDictionary: O(dictionary file size)
  - FindWords: O(board size + matching trie descents), wall-clock
    bounded by the slowest worker
*/
package boggle

import (
	"github.com/Zubayear/boggle/dictionary"
	"github.com/Zubayear/boggle/worker"
)

// Result is the outcome of one FindWords call: every distinct dictionary
// word spellable on the board, and the summed score (spec.md §4.6).
type Result struct {
	Words []string
	Score uint32
}

// Game is the top-level handle on a loaded dictionary and its parallel
// coordinator. The zero value is not usable; construct one with New.
type Game struct {
	workerCount   int
	arenaCapacity uint32
	coordinator   *worker.Coordinator
}

// Option configures a Game at construction time.
type Option func(*Game)

// WorkerCount overrides the default worker count (runtime.GOMAXPROCS(0),
// clamped to a minimum of 1).
func WorkerCount(n int) Option {
	return func(g *Game) {
		if n < 1 {
			n = 1
		}
		g.workerCount = n
	}
}

// ArenaCapacity overrides the default per-worker arena node capacity.
func ArenaCapacity(n uint32) Option {
	return func(g *Game) {
		g.arenaCapacity = n
	}
}

// New constructs a Game, applying any given options over the defaults:
// worker.WorkerCount() workers, each with a worker.DefaultArenaCapacity
// arena.
func New(opts ...Option) *Game {
	g := &Game{
		workerCount:   worker.WorkerCount(),
		arenaCapacity: worker.DefaultArenaCapacity,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoadDictionary reads path, normalizes every line (dictionary.Normalize
// rules), and shards the admissible words across the Game's workers. A
// dictionary file that cannot be opened is not a fatal error: per
// spec.md §7, dictionary.LoadFile already logs one diagnostic line to
// stderr and returns an empty word list, leaving every worker's trie
// empty.
func (g *Game) LoadDictionary(path string) error {
	words, err := dictionary.LoadFile(path)
	if err != nil {
		return err
	}

	c, err := worker.NewCoordinator(g.workerCount, g.arenaCapacity)
	if err != nil {
		return err
	}
	if err := c.LoadDictionary(words); err != nil {
		return err
	}
	g.coordinator = c
	return nil
}

// FindWords searches a width*height board of lowercase letters against
// the currently loaded dictionary and returns every distinct spellable
// word and the summed score. Calling FindWords before LoadDictionary
// succeeds returns an empty Result, not an error — there is simply
// nothing loaded to search against.
func (g *Game) FindWords(data []byte, width, height uint32) (Result, error) {
	if g.coordinator == nil {
		return Result{}, nil
	}
	words, score, err := g.coordinator.FindWords(data, width, height)
	if err != nil {
		return Result{}, err
	}
	return Result{Words: words, Score: score}, nil
}
