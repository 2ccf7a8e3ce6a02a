package splitter

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*TokenSplitter)(nil)

func init() {
	register("token_splitter", func(opts ...Option) (Splitter, error) {
		return NewTokenSplitter(opts...)
	})
}

// TokenSplitter chunks text by LLM token count: the text is encoded once,
// windowed into chunkSize-token slices with the shared stride arithmetic,
// and each window decoded back to text.
type TokenSplitter struct {
	chunkSize int
	overlap   int
	encoding  string
	codec     tokenizer.Codec
	metadata  map[string]any
}

// NewTokenSplitter creates a token splitter. Supported encodings are
// "cl100k_base" (default) and "o200k_base".
func NewTokenSplitter(opts ...Option) (*TokenSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	overlap, err := resolveOverlap(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}
	var enc tokenizer.Encoding
	switch cfg.encoding {
	case "cl100k_base":
		enc = tokenizer.Cl100kBase
	case "o200k_base":
		enc = tokenizer.O200kBase
	default:
		return nil, &splitz.ErrConfig{Param: "encoding", Reason: fmt.Sprintf("unsupported tokenizer encoding %q", cfg.encoding)}
	}
	codec, err := tokenizer.Get(enc)
	if err != nil {
		return nil, fmt.Errorf("initialize tokenizer: %w", err)
	}
	return &TokenSplitter{
		chunkSize: cfg.chunkSize,
		overlap:   overlap,
		encoding:  cfg.encoding,
		codec:     codec,
		metadata:  cfg.metadata,
	}, nil
}

func (s *TokenSplitter) Name() string { return "token_splitter" }

func (s *TokenSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	var chunks []string
	if doc.Text != "" {
		ids, _, err := s.codec.Encode(doc.Text)
		if err != nil {
			return splitz.SplitterOutput{}, fmt.Errorf("encode text: %w", err)
		}
		step := stride(s.chunkSize, s.overlap)
		for start := 0; start < len(ids); start += step {
			end := start + s.chunkSize
			if end > len(ids) {
				end = len(ids)
			}
			chunk, err := s.codec.Decode(ids[start:end])
			if err != nil {
				return splitz.SplitterOutput{}, fmt.Errorf("decode tokens %d..%d: %w", start, end, err)
			}
			chunks = append(chunks, chunk)
		}
	}
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
		"encoding":      s.encoding,
	}, s.metadata), nil
}
