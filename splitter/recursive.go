package splitter

import (
	"strings"
	"unicode"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*RecursiveCharacterSplitter)(nil)

func init() {
	register("recursive_character_splitter", func(opts ...Option) (Splitter, error) {
		return NewRecursiveCharacterSplitter(opts...)
	})
}

// RecursiveCharacterSplitter partitions text into chunks of at most
// chunkSize characters, cutting at the most significant separator available
// and falling back through the separator hierarchy only where a fragment is
// still too large. Adjacent chunks overlap by exactly the resolved number
// of trailing characters whenever that overlap fits the size budget.
type RecursiveCharacterSplitter struct {
	chunkSize  int
	overlap    int
	separators []string
	metadata   map[string]any

	// keepHead attaches each separator to the piece that follows it instead
	// of the piece before it. Used for code, where separators are leading
	// keywords ("\nfunc ") rather than trailing whitespace.
	keepHead bool
}

// NewRecursiveCharacterSplitter creates a recursive character splitter.
// The default separator hierarchy is ["\n\n", "\n", " ", ""].
func NewRecursiveCharacterSplitter(opts ...Option) (*RecursiveCharacterSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	if len(cfg.separators) == 0 {
		return nil, &splitz.ErrConfig{Param: "separators", Reason: "must not be empty"}
	}
	return &RecursiveCharacterSplitter{
		chunkSize:  cfg.chunkSize,
		overlap:    overlap,
		separators: cfg.separators,
		metadata:   cfg.metadata,
	}, nil
}

func (s *RecursiveCharacterSplitter) Name() string { return "recursive_character_splitter" }

func (s *RecursiveCharacterSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	chunks := s.chunkText(doc.Text)
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
		"separators":    s.separators,
	}, s.metadata), nil
}

func (s *RecursiveCharacterSplitter) chunkText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len([]rune(text)) <= s.chunkSize {
		return []string{text}
	}
	return s.merge(s.fragments(text))
}

// frame is one unit of pending work: a fragment and the index of the next
// separator to try on it.
type frame struct {
	text string
	sep  int
}

// fragments reduces the text to an ordered list of pieces, each at most
// chunkSize runes, by splitting at the current separator and pushing
// oversized pieces back with the next separator. The explicit stack bounds
// recursion depth to the separator list length regardless of input size.
func (s *RecursiveCharacterSplitter) fragments(text string) []string {
	var out []string
	stack := []frame{{text: text, sep: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len([]rune(f.text)) <= s.chunkSize {
			if strings.TrimSpace(f.text) != "" {
				out = append(out, f.text)
			}
			continue
		}
		if f.sep >= len(s.separators) || s.separators[f.sep] == "" {
			out = append(out, hardCut(f.text, s.chunkSize)...)
			continue
		}

		parts := strings.Split(f.text, s.separators[f.sep])
		// Push in reverse so pieces pop in document order. The separator is
		// retained on one side of the cut so merged chunks preserve the
		// source text between pieces.
		for i := len(parts) - 1; i >= 0; i-- {
			part := parts[i]
			if s.keepHead {
				if i > 0 {
					part = s.separators[f.sep] + part
				}
			} else if i < len(parts)-1 {
				part += s.separators[f.sep]
			}
			if strings.TrimSpace(part) == "" {
				continue
			}
			stack = append(stack, frame{text: part, sep: f.sep + 1})
		}
	}
	return out
}

// hardCut slices text at chunkSize rune boundaries. Used when the
// separator hierarchy is exhausted.
func hardCut(text string, chunkSize int) []string {
	runes := []rune(text)
	var pieces []string
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, string(runes[start:end]))
	}
	return pieces
}

// merge greedily accumulates fragments into chunks of at most chunkSize
// runes. When a chunk is emitted, the next buffer is seeded with exactly
// the overlap's trailing runes of the emitted chunk, provided the seed plus
// the next fragment still fits the size budget. A seeded chunk keeps its
// leading runes untouched, even when the seed starts with whitespace: they
// must equal the previous chunk's tail verbatim.
func (s *RecursiveCharacterSplitter) merge(pieces []string) []string {
	var chunks []string
	var cur []rune
	seeded := false
	emit := func() string {
		if seeded {
			return strings.TrimRightFunc(string(cur), unicode.IsSpace)
		}
		return strings.TrimSpace(string(cur))
	}
	for _, p := range pieces {
		pr := []rune(p)
		if len(cur) == 0 {
			cur = append(cur, pr...)
			continue
		}
		if len(cur)+len(pr) <= s.chunkSize {
			cur = append(cur, pr...)
			continue
		}

		emitted := emit()
		chunks = append(chunks, emitted)
		cur = cur[:0]
		seeded = false
		if s.overlap > 0 && s.overlap+len(pr) <= s.chunkSize {
			tail := []rune(emitted)
			if len(tail) > s.overlap {
				tail = tail[len(tail)-s.overlap:]
			}
			cur = append(cur, tail...)
			seeded = true
		}
		cur = append(cur, pr...)
	}
	if final := emit(); strings.TrimSpace(final) != "" {
		chunks = append(chunks, final)
	}
	return chunks
}
