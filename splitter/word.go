package splitter

import (
	"strings"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*WordSplitter)(nil)

func init() {
	register("word_splitter", func(opts ...Option) (Splitter, error) {
		return NewWordSplitter(opts...)
	})
}

// WordSplitter chunks text by word count: at most chunkSize words per
// chunk, overlapping by the resolved number of words.
type WordSplitter struct {
	chunkSize int
	overlap   int
	metadata  map[string]any
}

// NewWordSplitter creates a word splitter.
func NewWordSplitter(opts ...Option) (*WordSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	return &WordSplitter{chunkSize: cfg.chunkSize, overlap: overlap, metadata: cfg.metadata}, nil
}

func (s *WordSplitter) Name() string { return "word_splitter" }

func (s *WordSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	words := decomposeWords(doc.Text)
	chunks := windowJoin(words, s.chunkSize, s.overlap, " ")
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
	}, s.metadata), nil
}

// windowJoin emits windows of chunkSize units joined by sep, advancing by
// chunkSize-overlap units per window.
func windowJoin(units []string, chunkSize, overlap int, sep string) []string {
	var chunks []string
	step := stride(chunkSize, overlap)
	for start := 0; start < len(units); start += step {
		end := start + chunkSize
		if end > len(units) {
			end = len(units)
		}
		chunks = append(chunks, strings.Join(units[start:end], sep))
	}
	return chunks
}
