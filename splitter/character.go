package splitter

import splitz "github.com/splitz-go/splitz"

var _ Splitter = (*CharacterSplitter)(nil)

func init() {
	register("character_splitter", func(opts ...Option) (Splitter, error) {
		return NewCharacterSplitter(opts...)
	})
}

// CharacterSplitter divides text into fixed-size character chunks with
// optional overlap. Sizes are counted in runes, not bytes.
type CharacterSplitter struct {
	chunkSize int
	overlap   int
	metadata  map[string]any
}

// NewCharacterSplitter creates a character splitter, resolving and
// validating the overlap up front.
func NewCharacterSplitter(opts ...Option) (*CharacterSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	return &CharacterSplitter{
		chunkSize: cfg.chunkSize,
		overlap:   overlap,
		metadata:  cfg.metadata,
	}, nil
}

func (s *CharacterSplitter) Name() string { return "character_splitter" }

// Split windows over the text: each chunk is chunkSize runes, each window
// advances by chunkSize-overlap.
func (s *CharacterSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	runes := []rune(doc.Text)
	var chunks []string
	step := stride(s.chunkSize, s.overlap)
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
	}, s.metadata), nil
}
