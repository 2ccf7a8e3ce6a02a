package splitter

import (
	"reflect"
	"strings"
	"testing"

	splitz "github.com/splitz-go/splitz"
)

func TestNames(t *testing.T) {
	want := []string{
		"character_splitter",
		"code_splitter",
		"header_splitter",
		"html_tag_splitter",
		"paragraph_splitter",
		"recursive_character_splitter",
		"recursive_json_splitter",
		"row_column_splitter",
		"sentence_splitter",
		"token_splitter",
		"word_splitter",
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestNewByName(t *testing.T) {
	s, err := New("word_splitter", WithChunkSize(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Name() != "word_splitter" {
		t.Fatalf("Name() = %q", s.Name())
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("no_such_splitter")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "word_splitter") {
		t.Fatalf("error should list known strategies: %v", err)
	}
}

func TestNewPropagatesConfigErrors(t *testing.T) {
	if _, err := New("character_splitter", WithChunkSize(0)); err == nil {
		t.Fatal("expected error for chunk_size 0")
	}
}

func TestAllStrategiesHandleEmptyInput(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		out, err := s.Split(splitz.ReaderOutput{Text: ""})
		if err != nil {
			t.Fatalf("%s: Split(empty): %v", name, err)
		}
		if out.Chunks == nil || len(out.Chunks) != 0 {
			t.Errorf("%s: want empty non-nil Chunks, got %#v", name, out.Chunks)
		}
		if len(out.ChunkID) != 0 {
			t.Errorf("%s: want no chunk ids, got %v", name, out.ChunkID)
		}
		if out.SplitMethod != name {
			t.Errorf("%s: SplitMethod = %q", name, out.SplitMethod)
		}
	}
}
