package dictionary

import (
	"strings"
	"testing"
)

func TestNormalizeStripsTrailingNonLetter(t *testing.T) {
	tests := []struct {
		line     string
		wantWord string
		wantOK   bool
	}{
		{"cat\r", "cat", true},
		{"cat,", "cat", true},
		{"cat", "cat", true},
	}
	for _, tt := range tests {
		word, ok := Normalize(tt.line)
		if ok != tt.wantOK || word != tt.wantWord {
			t.Errorf("Normalize(%q) = (%q, %v); want (%q, %v)", tt.line, word, ok, tt.wantWord, tt.wantOK)
		}
	}
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	if _, ok := Normalize(""); ok {
		t.Errorf("Normalize(\"\") ok = true; want false")
	}
	if _, ok := Normalize("\r"); ok {
		t.Errorf("Normalize(\"\\r\") ok = true; want false (nothing left after stripping)")
	}
}

func TestNormalizeRejectsNonLowercase(t *testing.T) {
	tests := []string{"Cat", "CAT", "c4t", "c-t", "do2g"}
	for _, line := range tests {
		if _, ok := Normalize(line); ok {
			t.Errorf("Normalize(%q) ok = true; want false", line)
		}
	}
}

// TestNormalizeLengthBounds is spec.md scenario S5.
func TestNormalizeLengthBounds(t *testing.T) {
	tests := []struct {
		line   string
		wantOK bool
	}{
		{"ab", false},           // length 2, below MinWordLength
		{"abc", true},           // length 3, at the boundary
		{strings.Repeat("a", 15), true},  // length 15, at the boundary
		{strings.Repeat("a", 16), false}, // length 16, above MaxWordLength
	}
	for _, tt := range tests {
		_, ok := Normalize(tt.line)
		if ok != tt.wantOK {
			t.Errorf("Normalize(%q) ok = %v; want %v", tt.line, ok, tt.wantOK)
		}
	}
}

func TestLoadSkipsBlankAndInvalidLines(t *testing.T) {
	input := "cat\n\ndog\nCAT\nbay\nx\n"
	words, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"cat", "dog", "bay"}
	if len(words) != len(want) {
		t.Fatalf("Load() = %v; want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Load()[%d] = %q; want %q", i, words[i], want[i])
		}
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	input := "zebra\napple\nmango\n"
	words, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Load()[%d] = %q; want %q", i, words[i], want[i])
		}
	}
}

func TestLoadFileMissingReturnsEmptyNotError(t *testing.T) {
	words, err := LoadFile("/nonexistent/path/to/dictionary.txt")
	if err != nil {
		t.Errorf("LoadFile() error = %v; want nil (diagnostic-only failure)", err)
	}
	if len(words) != 0 {
		t.Errorf("LoadFile() words = %v; want empty", words)
	}
}
