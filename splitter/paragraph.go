package splitter

import splitz "github.com/splitz-go/splitz"

var _ Splitter = (*ParagraphSplitter)(nil)

func init() {
	register("paragraph_splitter", func(opts ...Option) (Splitter, error) {
		return NewParagraphSplitter(opts...)
	})
}

// ParagraphSplitter chunks text by paragraph count. Paragraphs are
// delimited by the configured line break; consecutive breaks collapse.
type ParagraphSplitter struct {
	chunkSize int
	overlap   int
	lineBreak string
	metadata  map[string]any
}

// NewParagraphSplitter creates a paragraph splitter.
func NewParagraphSplitter(opts ...Option) (*ParagraphSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	return &ParagraphSplitter{
		chunkSize: cfg.chunkSize,
		overlap:   overlap,
		lineBreak: cfg.lineBreak,
		metadata:  cfg.metadata,
	}, nil
}

func (s *ParagraphSplitter) Name() string { return "paragraph_splitter" }

func (s *ParagraphSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	paragraphs := decomposeParagraphs(doc.Text, s.lineBreak)
	chunks := windowJoin(paragraphs, s.chunkSize, s.overlap, s.lineBreak)
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
		"line_break":    s.lineBreak,
	}, s.metadata), nil
}
