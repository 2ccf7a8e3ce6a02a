package splitter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	splitz "github.com/splitz-go/splitz"
)

func TestRecursiveJSONSplitterArrayElements(t *testing.T) {
	// Four objects of 60 serialized characters each: any two together
	// exceed the 100-character ceiling, so each lands in its own chunk.
	els := make([]any, 4)
	for i := range els {
		els[i] = map[string]any{
			"body": strings.Repeat("x", 42),
			"id":   i,
		}
	}
	text, err := sonic.ConfigStd.MarshalToString(els)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(100), WithMinChunkSize(20))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: text, ConversionMethod: "json"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(out.Chunks) != 4 {
		t.Fatalf("got %d chunks, want 4: %q", len(out.Chunks), out.Chunks)
	}
	for i, c := range out.Chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d is %d chars, exceeds ceiling", i, len(c))
		}
		var v []any
		if err := sonic.ConfigStd.UnmarshalFromString(c, &v); err != nil {
			t.Fatalf("chunk %d is not valid JSON: %v", i, err)
		}
		if len(v) != 1 {
			t.Fatalf("chunk %d holds %d elements, want 1", i, len(v))
		}
		el, ok := v[0].(map[string]any)
		if !ok || el["id"] != float64(i) {
			t.Fatalf("chunk %d out of order: %v", i, v[0])
		}
	}
}

func TestRecursiveJSONSplitterSingleKeyDescends(t *testing.T) {
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(15), WithMinChunkSize(4))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: `{"root":["aaaa","bbbb","cccc","dddd"]}`})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{`["aaaa","bbbb"]`, `["cccc","dddd"]`}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestRecursiveJSONSplitterMappingSplit(t *testing.T) {
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(20), WithMinChunkSize(0))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: `{"a":"xx","b":"yy","c":"zz"}`})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{`{"a":"xx"}`, `{"b":"yy"}`, `{"c":"zz"}`}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestRecursiveJSONSplitterCoalescesSmallChunks(t *testing.T) {
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(20), WithMinChunkSize(15))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: `{"a":"xx","b":"yy","c":"zz"}`})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{`{"a":"xx","b":"yy"}`, `{"c":"zz"}`}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestRecursiveJSONSplitterOversizedScalar(t *testing.T) {
	long := strings.Repeat("y", 50)
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(20), WithMinChunkSize(0))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: fmt.Sprintf(`{"a":%q,"b":1}`, long)})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{fmt.Sprintf(`{"a":%q}`, long), `{"b":1}`}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestRecursiveJSONSplitterSmallDocument(t *testing.T) {
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(1000), WithMinChunkSize(0))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: `{"k":[1,2,3]}`})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{`{"k":[1,2,3]}`}
	if !reflect.DeepEqual(out.Chunks, want) {
		t.Fatalf("chunks = %q, want %q", out.Chunks, want)
	}
}

func TestRecursiveJSONSplitterEmptyInput(t *testing.T) {
	s, err := NewRecursiveJSONSplitter()
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	out, err := s.Split(splitz.ReaderOutput{Text: ""})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if out.Chunks == nil || len(out.Chunks) != 0 {
		t.Fatalf("want empty non-nil Chunks, got %#v", out.Chunks)
	}
}

func TestRecursiveJSONSplitterInvalidJSON(t *testing.T) {
	s, err := NewRecursiveJSONSplitter()
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	if _, err := s.Split(splitz.ReaderOutput{Text: `{"unterminated`}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRecursiveJSONSplitterConfigValidation(t *testing.T) {
	var cfgErr *splitz.ErrConfig

	_, err := NewRecursiveJSONSplitter(WithMinChunkSize(50), WithMaxChunkSize(10))
	if !errors.As(err, &cfgErr) {
		t.Fatalf("min > max: expected *ErrConfig, got %v", err)
	}
	_, err = NewRecursiveJSONSplitter(WithMaxChunkSize(0))
	if !errors.As(err, &cfgErr) {
		t.Fatalf("max < 1: expected *ErrConfig, got %v", err)
	}
	_, err = NewRecursiveJSONSplitter(WithMinChunkSize(-1), WithMaxChunkSize(10))
	if !errors.As(err, &cfgErr) {
		t.Fatalf("negative min: expected *ErrConfig, got %v", err)
	}
}

func TestSplitStructureDeterministic(t *testing.T) {
	s, err := NewRecursiveJSONSplitter(WithMaxChunkSize(30), WithMinChunkSize(0))
	if err != nil {
		t.Fatalf("NewRecursiveJSONSplitter: %v", err)
	}
	data := map[string]any{
		"alpha": strings.Repeat("a", 20),
		"beta":  strings.Repeat("b", 20),
	}
	first, err := s.SplitStructure(data)
	if err != nil {
		t.Fatalf("SplitStructure: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := s.SplitStructure(data)
		if err != nil {
			t.Fatalf("SplitStructure: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("iteration %d: results differ: %v vs %v", i, first, again)
		}
	}
}
