package splitter

import splitz "github.com/splitz-go/splitz"

var _ Splitter = (*SentenceSplitter)(nil)

func init() {
	register("sentence_splitter", func(opts ...Option) (Splitter, error) {
		return NewSentenceSplitter(opts...)
	})
}

// SentenceSplitter chunks text by sentence count. Sentences end at any of
// the configured terminator characters; the terminator stays with its
// sentence.
type SentenceSplitter struct {
	chunkSize   int
	overlap     int
	terminators []rune
	metadata    map[string]any
}

// NewSentenceSplitter creates a sentence splitter.
func NewSentenceSplitter(opts ...Option) (*SentenceSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	if len(cfg.terminators) == 0 {
		return nil, &splitz.ErrConfig{Param: "sentence_terminators", Reason: "must not be empty"}
	}
	return &SentenceSplitter{
		chunkSize:   cfg.chunkSize,
		overlap:     overlap,
		terminators: cfg.terminators,
		metadata:    cfg.metadata,
	}, nil
}

func (s *SentenceSplitter) Name() string { return "sentence_splitter" }

func (s *SentenceSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	sentences := decomposeSentences(doc.Text, s.terminators)
	chunks := windowJoin(sentences, s.chunkSize, s.overlap, " ")
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":          s.chunkSize,
		"chunk_overlap":       s.overlap,
		"sentence_separators": string(s.terminators),
	}, s.metadata), nil
}
