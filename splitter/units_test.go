package splitter

import (
	"reflect"
	"testing"
)

func TestDecomposeWords(t *testing.T) {
	got := decomposeWords(" one  two\tthree\n")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecomposeSentences(t *testing.T) {
	terms := []rune{'.', '!', '?'}
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminator stays with sentence",
			text: "Hi there. Bye now.",
			want: []string{"Hi there.", "Bye now."},
		},
		{
			name: "terminator run attaches to earlier unit",
			text: "Really?! Yes.",
			want: []string{"Really?!", "Yes."},
		},
		{
			name: "unterminated tail kept",
			text: "Done. trailing words",
			want: []string{"Done.", "trailing words"},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decomposeSentences(tt.text, terms)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecomposeParagraphs(t *testing.T) {
	got := decomposeParagraphs("a\n\n\nb\n c \n", "\n")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
