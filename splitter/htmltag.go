package splitter

import (
	"regexp"
	"strconv"
	"strings"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*TagSplitter)(nil)

func init() {
	register("html_tag_splitter", func(opts ...Option) (Splitter, error) {
		return NewTagSplitter(opts...)
	})
}

var htmlTagNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// TagSplitter splits HTML at every opening tag of the configured element
// (default "div"), grouping consecutive elements up to chunkSize characters.
// Elements are atomic: one larger than chunkSize is emitted whole, never cut
// mid-markup. Anything before the first tag stays with the first chunk.
type TagSplitter struct {
	chunkSize int
	tag       string
	tagRe     *regexp.Regexp
	metadata  map[string]any
}

// NewTagSplitter creates an HTML tag splitter.
func NewTagSplitter(opts ...Option) (*TagSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.chunkSize < 1 {
		return nil, &splitz.ErrConfig{Param: "chunk_size", Reason: "must be an integer >= 1"}
	}
	tag := strings.ToLower(cfg.htmlTag)
	if !htmlTagNameRe.MatchString(tag) {
		return nil, &splitz.ErrConfig{Param: "tag", Reason: "must be an HTML element name, got " + strconv.Quote(cfg.htmlTag)}
	}
	return &TagSplitter{
		chunkSize: cfg.chunkSize,
		tag:       tag,
		tagRe:     regexp.MustCompile(`(?i)<` + tag + `[\s/>]`),
		metadata:  cfg.metadata,
	}, nil
}

func (s *TagSplitter) Name() string { return "html_tag_splitter" }

func (s *TagSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	src := strings.TrimSpace(doc.Text)
	var chunks []string
	if src != "" {
		var cuts []int
		for _, m := range s.tagRe.FindAllStringIndex(src, -1) {
			cuts = append(cuts, m[0])
		}
		chunks = s.groupSections(cutSections(src, cuts))
	}
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size": s.chunkSize,
		"tag":        s.tag,
	}, s.metadata), nil
}

// groupSections packs consecutive sections into chunks of at most chunkSize
// runes, joined with a newline. An oversized section becomes its own chunk.
func (s *TagSplitter) groupSections(sections []string) []string {
	var chunks []string
	var current strings.Builder
	curLen := 0
	for _, section := range sections {
		secLen := len([]rune(section))
		if curLen > 0 && curLen+1+secLen > s.chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
			curLen = 0
		}
		if curLen > 0 {
			current.WriteString("\n")
			curLen++
		}
		current.WriteString(section)
		curLen += secLen
	}
	if curLen > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
