package splitter

import (
	"reflect"
	"testing"

	splitz "github.com/splitz-go/splitz"
)

func TestParagraphSplitter(t *testing.T) {
	s, err := NewParagraphSplitter(WithChunkSize(2))
	if err != nil {
		t.Fatalf("NewParagraphSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "first\n\nsecond\nthird"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{"first\nsecond", "third"}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestParagraphSplitterCustomLineBreak(t *testing.T) {
	s, err := NewParagraphSplitter(WithChunkSize(1), WithLineBreak("||"))
	if err != nil {
		t.Fatalf("NewParagraphSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "a||b||||c"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}
