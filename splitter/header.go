package splitter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*HeaderSplitter)(nil)

func init() {
	register("header_splitter", func(opts ...Option) (Splitter, error) {
		return NewHeaderSplitter(opts...)
	})
}

var htmlHeadingRe = regexp.MustCompile(`(?i)<h([1-6])[\s>]`)
var htmlDocRe = regexp.MustCompile(`(?i)<(html|body|div|head)[\s>]`)

// HeaderSplitter splits markdown or HTML at heading boundaries of the
// configured levels, keeping each heading with its section. Sections larger
// than chunkSize fall back to the recursive character splitter; smaller
// adjacent sections merge up to chunkSize.
type HeaderSplitter struct {
	chunkSize    int
	headerLevels []int
	fallback     *RecursiveCharacterSplitter
	metadata     map[string]any
}

// NewHeaderSplitter creates a header splitter. Default levels are 1-3.
func NewHeaderSplitter(opts ...Option) (*HeaderSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if len(cfg.headerLevels) == 0 {
		return nil, &splitz.ErrConfig{Param: "header_levels", Reason: "must not be empty"}
	}
	for _, lvl := range cfg.headerLevels {
		if lvl < 1 || lvl > 6 {
			return nil, &splitz.ErrConfig{Param: "header_levels", Reason: "levels must be in 1..6, got " + strconv.Itoa(lvl)}
		}
	}
	fallback, err := NewRecursiveCharacterSplitter(opts...)
	if err != nil {
		return nil, err
	}
	return &HeaderSplitter{
		chunkSize:    cfg.chunkSize,
		headerLevels: cfg.headerLevels,
		fallback:     fallback,
		metadata:     cfg.metadata,
	}, nil
}

func (s *HeaderSplitter) Name() string { return "header_splitter" }

func (s *HeaderSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	src := strings.TrimSpace(doc.Text)
	var chunks []string
	if src != "" {
		var sections []string
		if s.looksLikeHTML(src) {
			sections = s.htmlSections(src)
		} else {
			sections = s.markdownSections(src)
		}
		chunks = s.mergeSections(sections)
	}
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":          s.chunkSize,
		"headers_to_split_on": s.headerLevels,
	}, s.metadata), nil
}

func (s *HeaderSplitter) looksLikeHTML(src string) bool {
	return htmlDocRe.MatchString(src) || htmlHeadingRe.MatchString(src)
}

func (s *HeaderSplitter) levelEnabled(level int) bool {
	for _, lvl := range s.headerLevels {
		if lvl == level {
			return true
		}
	}
	return false
}

// markdownSections cuts the source at each heading of an enabled level,
// using goldmark's AST to locate headings rather than scanning for '#'
// ourselves (avoids false positives inside code fences).
func (s *HeaderSplitter) markdownSections(src string) []string {
	source := []byte(src)
	root := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	var cuts []int
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || !s.levelEnabled(heading.Level) || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		start := heading.Lines().At(0).Start
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		cuts = append(cuts, start)
		return ast.WalkContinue, nil
	})

	return cutSections(src, cuts)
}

// htmlSections cuts the source before each <hN> open tag of an enabled
// level.
func (s *HeaderSplitter) htmlSections(src string) []string {
	var cuts []int
	for _, m := range htmlHeadingRe.FindAllStringSubmatchIndex(src, -1) {
		level, _ := strconv.Atoi(src[m[2]:m[3]])
		if s.levelEnabled(level) {
			cuts = append(cuts, m[0])
		}
	}
	return cutSections(src, cuts)
}

func cutSections(src string, cuts []int) []string {
	if len(cuts) == 0 {
		return []string{src}
	}
	var sections []string
	if cuts[0] > 0 {
		if pre := strings.TrimSpace(src[:cuts[0]]); pre != "" {
			sections = append(sections, pre)
		}
	}
	for i, start := range cuts {
		end := len(src)
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		if section := strings.TrimSpace(src[start:end]); section != "" {
			sections = append(sections, section)
		}
	}
	return sections
}

// mergeSections merges small sections together and splits large ones with
// the recursive fallback.
func (s *HeaderSplitter) mergeSections(sections []string) []string {
	var chunks []string
	var current strings.Builder

	for _, section := range sections {
		if len([]rune(section)) > s.chunkSize {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, s.fallback.chunkText(section)...)
			continue
		}

		needed := len([]rune(section))
		if current.Len() > 0 {
			needed += len([]rune(current.String())) + 2 // "\n\n" separator
		}
		if needed <= s.chunkSize {
			if current.Len() > 0 {
				current.WriteString("\n\n")
			}
			current.WriteString(section)
		} else {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			current.WriteString(section)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
