package splitter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*RecursiveJSONSplitter)(nil)

func init() {
	register("recursive_json_splitter", func(opts ...Option) (Splitter, error) {
		return NewRecursiveJSONSplitter(opts...)
	})
}

// RecursiveJSONSplitter decomposes a nested JSON document into the minimal
// number of sub-structures whose serialized size falls within
// [minChunkSize, maxChunkSize]. Containers split before their schema does:
// every chunk is an independently valid serialization of a slice of the
// original document. Scalars are never split; an oversized scalar is
// emitted oversized.
//
// Mapping keys are visited in sorted order (Go maps carry no insertion
// order) and chunks are rendered with encoding/json-compatible sorted-key
// output, so results are deterministic. Undersized chunks coalesce with
// their next sibling when the merge stays within maxChunkSize; the final
// chunk may coalesce backwards into its predecessor.
type RecursiveJSONSplitter struct {
	minChunkSize int
	maxChunkSize int
	metadata     map[string]any
}

// NewRecursiveJSONSplitter creates a recursive JSON splitter.
func NewRecursiveJSONSplitter(opts ...Option) (*RecursiveJSONSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.maxChunkSize < 1 {
		return nil, &splitz.ErrConfig{Param: "max_chunk_size", Reason: "must be an integer >= 1"}
	}
	if cfg.minChunkSize < 0 {
		return nil, &splitz.ErrConfig{Param: "min_chunk_size", Reason: "must be >= 0"}
	}
	if cfg.minChunkSize > cfg.maxChunkSize {
		return nil, &splitz.ErrConfig{
			Param:  "min_chunk_size",
			Reason: fmt.Sprintf("must not exceed max_chunk_size (%d > %d)", cfg.minChunkSize, cfg.maxChunkSize),
		}
	}
	return &RecursiveJSONSplitter{
		minChunkSize: cfg.minChunkSize,
		maxChunkSize: cfg.maxChunkSize,
		metadata:     cfg.metadata,
	}, nil
}

func (s *RecursiveJSONSplitter) Name() string { return "recursive_json_splitter" }

// Split parses doc.Text as JSON and splits the resulting structure. Each
// output chunk is a serialized sub-document.
func (s *RecursiveJSONSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	text := strings.TrimSpace(doc.Text)
	if text == "" {
		return s.output(doc, nil), nil
	}
	var data any
	if err := sonic.ConfigStd.UnmarshalFromString(text, &data); err != nil {
		return splitz.SplitterOutput{}, fmt.Errorf("parse json: %w", err)
	}
	parts, err := s.SplitStructure(data)
	if err != nil {
		return splitz.SplitterOutput{}, err
	}
	chunks := make([]string, len(parts))
	for i, part := range parts {
		rendered, err := sonic.ConfigStd.MarshalToString(part)
		if err != nil {
			return splitz.SplitterOutput{}, &splitz.ErrStructure{Reason: fmt.Sprintf("cannot serialize chunk %d: %v", i, err)}
		}
		chunks[i] = rendered
	}
	return s.output(doc, chunks), nil
}

func (s *RecursiveJSONSplitter) output(doc splitz.ReaderOutput, chunks []string) splitz.SplitterOutput {
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"max_chunk_size": s.maxChunkSize,
		"min_chunk_size": s.minChunkSize,
	}, s.metadata)
}

// SplitStructure splits an already-parsed structure (maps, slices, scalars)
// into sub-structures. The input must be an acyclic tree.
func (s *RecursiveJSONSplitter) SplitStructure(v any) ([]any, error) {
	return s.splitValue(v, "", map[uintptr]bool{})
}

func (s *RecursiveJSONSplitter) splitValue(v any, path string, seen map[uintptr]bool) ([]any, error) {
	size, err := s.sizeAt(v, path)
	if err != nil {
		return nil, err
	}
	if size <= s.maxChunkSize {
		return []any{v}, nil
	}

	switch val := v.(type) {
	case map[string]any:
		return s.splitMapping(val, path, seen)
	case []any:
		return s.splitSequence(val, path, seen)
	default:
		// Oversized scalar: emitted as-is rather than truncated.
		return []any{v}, nil
	}
}

func (s *RecursiveJSONSplitter) splitMapping(val map[string]any, path string, seen map[uintptr]bool) ([]any, error) {
	ptr := reflect.ValueOf(val).Pointer()
	if seen[ptr] {
		return nil, &splitz.ErrStructure{Path: path, Reason: "cyclic reference"}
	}
	seen[ptr] = true
	defer delete(seen, ptr)

	keys := make([]string, 0, len(val))
	for k := range val {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// A single-key wrapper descends into its value without re-emitting the
	// key until a splittable multi-element container is found.
	if len(keys) == 1 {
		k := keys[0]
		if isContainer(val[k]) {
			return s.splitValue(val[k], joinPath(path, k), seen)
		}
		return []any{val}, nil
	}

	var chunks []any
	for _, k := range keys {
		wrapped := map[string]any{k: val[k]}
		wsize, err := s.sizeAt(wrapped, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		if wsize <= s.maxChunkSize {
			chunks = append(chunks, wrapped)
			continue
		}
		subs, err := s.splitValue(val[k], joinPath(path, k), seen)
		if err != nil {
			return nil, err
		}
		// Each sub-structure stays addressable under its original key.
		for _, sub := range subs {
			chunks = append(chunks, map[string]any{k: sub})
		}
	}
	return s.coalesce(chunks), nil
}

func (s *RecursiveJSONSplitter) splitSequence(val []any, path string, seen map[uintptr]bool) ([]any, error) {
	ptr := reflect.ValueOf(val).Pointer()
	if seen[ptr] {
		return nil, &splitz.ErrStructure{Path: path, Reason: "cyclic reference"}
	}
	seen[ptr] = true
	defer delete(seen, ptr)

	var chunks []any
	var group []any
	groupSize := 2 // brackets
	flush := func() {
		if len(group) > 0 {
			chunks = append(chunks, group)
			group = nil
			groupSize = 2
		}
	}

	for i, el := range val {
		elPath := fmt.Sprintf("%s[%d]", path, i)
		elSize, err := s.sizeAt(el, elPath)
		if err != nil {
			return nil, err
		}
		if elSize+2 > s.maxChunkSize {
			// Element exceeds the ceiling even alone in a group: recurse.
			flush()
			subs, err := s.splitValue(el, elPath, seen)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, subs...)
			continue
		}
		cost := elSize
		if len(group) > 0 {
			cost++ // comma
		}
		if len(group) > 0 && groupSize+cost > s.maxChunkSize {
			flush()
			cost = elSize
		}
		group = append(group, el)
		groupSize += cost
	}
	flush()
	return s.coalesce(chunks), nil
}

// coalesce merges chunks below minChunkSize with their next sibling where
// the merge keeps the result within maxChunkSize; the last chunk merges
// backwards. Incompatible shapes (map next to slice, key collisions) stay
// as-is — the min bound is advisory.
func (s *RecursiveJSONSplitter) coalesce(chunks []any) []any {
	if len(chunks) < 2 || s.minChunkSize == 0 {
		return chunks
	}
	var out []any
	for i := 0; i < len(chunks); i++ {
		cur := chunks[i]
		curSize, err := s.sizeAt(cur, "")
		if err != nil {
			out = append(out, cur)
			continue
		}
		for curSize < s.minChunkSize && i+1 < len(chunks) {
			merged, ok := mergeChunks(cur, chunks[i+1])
			if !ok {
				break
			}
			msize, err := s.sizeAt(merged, "")
			if err != nil || msize > s.maxChunkSize {
				break
			}
			cur, curSize = merged, msize
			i++
		}
		out = append(out, cur)
	}
	if len(out) >= 2 {
		last := len(out) - 1
		lastSize, err := s.sizeAt(out[last], "")
		if err == nil && lastSize < s.minChunkSize {
			if merged, ok := mergeChunks(out[last-1], out[last]); ok {
				if msize, err := s.sizeAt(merged, ""); err == nil && msize <= s.maxChunkSize {
					out = append(out[:last-1], merged)
				}
			}
		}
	}
	return out
}

func mergeChunks(a, b any) (any, bool) {
	if am, ok := a.(map[string]any); ok {
		bm, ok := b.(map[string]any)
		if !ok {
			return nil, false
		}
		merged := make(map[string]any, len(am)+len(bm))
		for k, v := range am {
			merged[k] = v
		}
		for k, v := range bm {
			if _, dup := merged[k]; dup {
				return nil, false
			}
			merged[k] = v
		}
		return merged, true
	}
	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok {
			return nil, false
		}
		merged := make([]any, 0, len(as)+len(bs))
		merged = append(merged, as...)
		merged = append(merged, bs...)
		return merged, true
	}
	return nil, false
}

func (s *RecursiveJSONSplitter) sizeAt(v any, path string) (int, error) {
	b, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return 0, &splitz.ErrStructure{Path: path, Reason: fmt.Sprintf("cannot serialize: %v", err)}
	}
	return len(b), nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
