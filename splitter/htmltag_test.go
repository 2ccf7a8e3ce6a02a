package splitter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	splitz "github.com/splitz-go/splitz"
)

func TestTagSplitterGroupsDivs(t *testing.T) {
	src := "<html><body><div>one</div><div>two</div><div>three</div></body></html>"
	s, err := NewTagSplitter(WithChunkSize(30))
	if err != nil {
		t.Fatalf("NewTagSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: src})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{
		"<html><body>\n<div>one</div>",
		"<div>two</div>",
		"<div>three</div></body></html>",
	}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestTagSplitterTableRows(t *testing.T) {
	src := "<table><tr><td>1</td></tr><tr><td>2</td></tr><tr><td>3</td></tr></table>"
	s, err := NewTagSplitter(WithHTMLTag("tr"), WithChunkSize(45))
	if err != nil {
		t.Fatalf("NewTagSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: src})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %q", out.Chunks)
	}
	joined := strings.Join(out.Chunks, "\n")
	for _, cell := range []string{"<td>1</td>", "<td>2</td>", "<td>3</td>"} {
		if !strings.Contains(joined, cell) {
			t.Errorf("cell %s lost: %q", cell, out.Chunks)
		}
	}
	if out.SplitParams["tag"] != "tr" {
		t.Fatalf("tag not recorded: %v", out.SplitParams)
	}
}

func TestTagSplitterOversizedElementStaysWhole(t *testing.T) {
	big := "<div>" + strings.Repeat("x", 100) + "</div>"
	s, err := NewTagSplitter(WithChunkSize(20))
	if err != nil {
		t.Fatalf("NewTagSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: big})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) != 1 || out.Chunks[0] != big {
		t.Fatalf("oversized element must not be cut: %q", out.Chunks)
	}
}

func TestTagSplitterNoMatchingTag(t *testing.T) {
	s, err := NewTagSplitter(WithHTMLTag("article"), WithChunkSize(100))
	if err != nil {
		t.Fatalf("NewTagSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "<p>plain paragraph</p>"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) != 1 || out.Chunks[0] != "<p>plain paragraph</p>" {
		t.Fatalf("chunks = %q", out.Chunks)
	}
}

func TestTagSplitterEmptyInput(t *testing.T) {
	s, err := NewTagSplitter()
	if err != nil {
		t.Fatalf("NewTagSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: "  "})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) != 0 {
		t.Fatalf("want no chunks, got %q", out.Chunks)
	}
}

func TestTagSplitterValidatesTag(t *testing.T) {
	var cfgErr *splitz.ErrConfig
	if _, err := NewTagSplitter(WithHTMLTag("not a tag")); !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ErrConfig, got %v", err)
	}
	if _, err := NewTagSplitter(WithHTMLTag("")); !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ErrConfig for empty tag, got %v", err)
	}
}
