package trie

import (
	"testing"

	"github.com/Zubayear/boggle/arena"
)

func TestAddWordAndChild(t *testing.T) {
	tr, err := New(64)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := tr.AddWord("cat"); err != nil {
		t.Fatalf("AddWord(cat) error = %v", err)
	}

	node := tr.Root()
	for _, letter := range []byte("cat") {
		idx, _ := LetterIndex(letter)
		child := tr.Child(node, idx)
		if child == arena.Null {
			t.Fatalf("Child for letter %q not found", letter)
		}
		node = child
	}
	if got := tr.Word(node); got != "cat" {
		t.Errorf("Word(terminal) = %q; want %q", got, "cat")
	}
}

func TestAddWordRejectsOutOfBoundsLength(t *testing.T) {
	tr, _ := New(64)
	if err := tr.AddWord("ab"); err == nil {
		t.Errorf("AddWord(\"ab\") error = nil; want ErrInvalidWord (too short)")
	}
	if err := tr.AddWord("elephantelephant"); err == nil {
		t.Errorf("AddWord(16 letters) error = nil; want ErrInvalidWord (too long)")
	}
}

func TestAddWordRejectsNonLowercase(t *testing.T) {
	tr, _ := New(64)
	if err := tr.AddWord("Cat"); err == nil {
		t.Errorf("AddWord(\"Cat\") error = nil; want ErrInvalidWord")
	}
}

// TestQuCollapse verifies the spec's §9 two-view rule: "qu" collapses to
// a single path step but the canonical spelling (with "qu" intact) is
// what gets stored and later reported.
func TestQuCollapse(t *testing.T) {
	tr, err := New(64)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.AddWord("quay"); err != nil {
		t.Fatalf("AddWord(quay) error = %v", err)
	}

	node := tr.Root()
	qIdx, _ := LetterIndex('q')
	node = tr.Child(node, qIdx)
	if node == arena.Null {
		t.Fatalf("no child for 'q' (qu path step)")
	}
	aIdx, _ := LetterIndex('a')
	node = tr.Child(node, aIdx)
	if node == arena.Null {
		t.Fatalf("expected the 'u' in \"qu\" to be collapsed; next step should be 'a'")
	}
	yIdx, _ := LetterIndex('y')
	node = tr.Child(node, yIdx)
	if node == arena.Null {
		t.Fatalf("no child for 'y'")
	}
	if got := tr.Word(node); got != "quay" {
		t.Errorf("Word(terminal) = %q; want canonical spelling %q", got, "quay")
	}
}

func TestPendingDecrementsOnParentOnly(t *testing.T) {
	tr, _ := New(64)
	_ = tr.AddWord("cat")
	_ = tr.AddWord("cats")

	root := tr.Root()
	cIdx, _ := LetterIndex('c')
	c := tr.Child(root, cIdx)
	aIdx, _ := LetterIndex('a')
	a := tr.Child(c, aIdx)
	tIdx, _ := LetterIndex('t')
	catNode := tr.Child(a, tIdx)
	sIdx, _ := LetterIndex('s')
	catsNode := tr.Child(catNode, sIdx)

	// catNode's own pending only ever counts words inserted *past* it:
	// "cat" increments root/c/a once each on the way down but never
	// increments catNode itself (catNode is the terminal for "cat", and
	// a node's own terminal-ness is tracked by its parent, not itself).
	// "cats" additionally passes through catNode on its way to catsNode,
	// incrementing catNode exactly once.
	if tr.Pending(catNode) != 1 {
		t.Fatalf("Pending(catNode) = %d; want 1 (only \"cats\" passes through catNode)", tr.Pending(catNode))
	}
	if tr.Pending(a) != 2 {
		t.Fatalf("Pending(a) = %d; want 2 (both \"cat\" and \"cats\" pass through a)", tr.Pending(a))
	}

	// Discover "cat": found latches on catNode, pending decrements on
	// its parent (`a`), not on catNode itself.
	tr.MarkFoundIfNeeded(a, catNode)
	if !tr.Found(catNode) {
		t.Errorf("Found(catNode) = false after MarkFoundIfNeeded; want true")
	}
	if tr.Pending(catNode) != 1 {
		t.Errorf("Pending(catNode) = %d after marking itself found; want unchanged 1 (decrement happens on parent)", tr.Pending(catNode))
	}
	if tr.Pending(a) != 1 {
		t.Errorf("Pending(parent a) = %d; want 1 after one of its two descendant words was found", tr.Pending(a))
	}

	// Marking again must be a no-op (uniqueness).
	tr.MarkFoundIfNeeded(a, catNode)
	if tr.Pending(a) != 1 {
		t.Errorf("Pending(parent a) = %d after re-marking; want unchanged 1", tr.Pending(a))
	}

	// Discover "cats": found latches on catsNode, pending decrements on
	// its parent (catNode), not on `a`.
	tr.MarkFoundIfNeeded(catNode, catsNode)
	if tr.Pending(catNode) != 0 {
		t.Errorf("Pending(catNode) = %d after catsNode found; want 0 (decrement happens on catNode, catsNode's parent)", tr.Pending(catNode))
	}
	if tr.Pending(a) != 1 {
		t.Errorf("Pending(a) = %d after catsNode found; want unchanged 1 (that decrement lands on catNode, not a)", tr.Pending(a))
	}
}

func TestResetSearchState(t *testing.T) {
	tr, _ := New(64)
	_ = tr.AddWord("cat")

	root := tr.Root()
	cIdx, _ := LetterIndex('c')
	c := tr.Child(root, cIdx)
	aIdx, _ := LetterIndex('a')
	a := tr.Child(c, aIdx)
	tIdx, _ := LetterIndex('t')
	catNode := tr.Child(a, tIdx)

	tr.MarkFoundIfNeeded(a, catNode)
	if tr.Pending(a) != 0 {
		t.Fatalf("Pending(a) = %d before reset; want 0", tr.Pending(a))
	}

	tr.ResetSearchState()

	if tr.Found(catNode) {
		t.Errorf("Found(catNode) = true after ResetSearchState; want false")
	}
	if tr.Pending(a) != 1 {
		t.Errorf("Pending(a) = %d after ResetSearchState; want restored to 1", tr.Pending(a))
	}
}

func TestWalkVisitsAllTerminals(t *testing.T) {
	tr, _ := New(64)
	words := []string{"cat", "car", "dog"}
	for _, w := range words {
		_ = tr.AddWord(w)
	}

	seen := make(map[string]bool)
	tr.Walk(func(idx arena.Index) {
		if w := tr.Word(idx); w != "" {
			seen[w] = true
		}
	})

	for _, w := range words {
		if !seen[w] {
			t.Errorf("Walk did not visit terminal for %q", w)
		}
	}
	if len(seen) != len(words) {
		t.Errorf("Walk visited %d terminals; want %d", len(seen), len(words))
	}
}

func TestValidateOnFreshTrieIsConsistent(t *testing.T) {
	tr, _ := New(64)
	for _, w := range []string{"cat", "cats", "car", "dog", "dogs"} {
		if err := tr.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error = %v", w, err)
		}
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() on a freshly loaded trie = %v; want nil", err)
	}
}

func TestValidateAfterPartialSearchIsConsistent(t *testing.T) {
	tr, _ := New(64)
	_ = tr.AddWord("cat")
	_ = tr.AddWord("cats")

	root := tr.Root()
	cIdx, _ := LetterIndex('c')
	c := tr.Child(root, cIdx)
	aIdx, _ := LetterIndex('a')
	a := tr.Child(c, aIdx)
	tIdx, _ := LetterIndex('t')
	catNode := tr.Child(a, tIdx)

	tr.MarkFoundIfNeeded(a, catNode)

	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() after a partial search = %v; want nil", err)
	}
}

func TestCapacityExceeded(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.AddWord("elephant"); err == nil {
		t.Errorf("AddWord into a too-small arena returned nil error; want a capacity error")
	}
}
