// Package splitter implements the chunking engine: a family of splitting
// strategies that partition a document's text or structure into bounded,
// optionally overlapping chunks.
//
// Strategies implement the [Splitter] contract and are constructed either
// directly (NewCharacterSplitter, NewRecursiveCharacterSplitter, ...) or by
// canonical name through [New]. All strategies share the same overlap
// arithmetic, chunk id generation, and output assembly.
package splitter

import (
	"fmt"
	"sort"

	splitz "github.com/splitz-go/splitz"
)

// Splitter is the contract all splitting strategies implement.
// Split is a pure, synchronous computation: it never retains references to
// the input, holds no state between calls, and is safe for concurrent use.
type Splitter interface {
	// Name returns the canonical strategy name (e.g. "word_splitter").
	Name() string

	// Split partitions the document into chunks. Empty input yields an
	// output with empty Chunks/ChunkID and a nil error.
	Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error)
}

// Factory constructs a strategy from options.
type Factory func(opts ...Option) (Splitter, error)

// registry maps canonical strategy names to factories. It is populated by
// init functions in this package and never mutated afterwards.
var registry = map[string]Factory{}

func register(name string, f Factory) {
	if _, dup := registry[name]; dup {
		panic("splitter: duplicate registration of " + name)
	}
	registry[name] = f
}

// New constructs a splitter by canonical strategy name.
func New(name string, opts ...Option) (Splitter, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown split strategy %q (known: %v)", name, Names())
	}
	return f(opts...)
}

// Names returns the canonical names of all registered strategies, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
