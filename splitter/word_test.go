package splitter

import (
	"reflect"
	"testing"

	splitz "github.com/splitz-go/splitz"
)

func TestWordSplitter(t *testing.T) {
	s, err := NewWordSplitter(WithChunkSize(5), WithChunkOverlap(2))
	if err != nil {
		t.Fatalf("NewWordSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "The quick brown fox jumps over the lazy dog"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{
		"The quick brown fox jumps",
		"fox jumps over the lazy",
		"the lazy dog",
	}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestWordSplitterCollapsesWhitespace(t *testing.T) {
	s, err := NewWordSplitter(WithChunkSize(10))
	if err != nil {
		t.Fatalf("NewWordSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "  one \t two\n\nthree  "})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) != 1 || out.Chunks[0] != "one two three" {
		t.Fatalf("chunks = %q", out.Chunks)
	}
}

func TestWordSplitterInvalidOverlap(t *testing.T) {
	if _, err := NewWordSplitter(WithChunkSize(5), WithChunkOverlap(5)); err == nil {
		t.Fatal("expected error for overlap == chunk size")
	}
}
