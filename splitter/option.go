package splitter

// Option configures a splitting strategy. Each strategy reads the options
// it recognizes and validates them at construction time.
type Option func(*config)

type config struct {
	chunkSize    int
	chunkOverlap float64
	separators   []string
	minChunkSize int
	maxChunkSize int
	terminators  []rune
	lineBreak    string
	headerLevels []int
	numRows      int
	numColumns   int
	encoding     string
	language     string
	htmlTag      string
	metadata     map[string]any
}

func defaultConfig() config {
	return config{
		chunkSize:    1000,
		chunkOverlap: 0,
		separators:   []string{"\n\n", "\n", " ", ""},
		minChunkSize: 200,
		maxChunkSize: 1000,
		terminators:  []rune{'.', '!', '?'},
		lineBreak:    "\n",
		headerLevels: []int{1, 2, 3},
		encoding:     "cl100k_base",
		language:     "python",
		htmlTag:      "div",
	}
}

// WithChunkSize sets the maximum chunk size. The unit depends on the
// strategy: characters, words, sentences, paragraphs, or tokens.
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

// WithChunkOverlap sets the overlap between consecutive chunks. Values >= 1
// with no fractional part are absolute unit counts; values in [0, 1) are a
// fraction of the chunk size.
func WithChunkOverlap(v float64) Option {
	return func(c *config) { c.chunkOverlap = v }
}

// WithSeparators sets the separator hierarchy for the recursive character
// splitter, most general first. An empty string means "split anywhere".
func WithSeparators(seps []string) Option {
	return func(c *config) { c.separators = seps }
}

// WithMinChunkSize sets the advisory lower bound, in serialized characters,
// for the recursive JSON splitter.
func WithMinChunkSize(n int) Option {
	return func(c *config) { c.minChunkSize = n }
}

// WithMaxChunkSize sets the hard upper bound, in serialized characters, for
// the recursive JSON splitter.
func WithMaxChunkSize(n int) Option {
	return func(c *config) { c.maxChunkSize = n }
}

// WithSentenceTerminators sets the characters that end a sentence for the
// sentence splitter.
func WithSentenceTerminators(runes []rune) Option {
	return func(c *config) { c.terminators = runes }
}

// WithLineBreak sets the paragraph delimiter for the paragraph splitter.
// Consecutive delimiters are collapsed.
func WithLineBreak(s string) Option {
	return func(c *config) { c.lineBreak = s }
}

// WithHeaderLevels sets which heading levels start a new chunk in the
// header splitter (1 = H1/"#").
func WithHeaderLevels(levels []int) Option {
	return func(c *config) { c.headerLevels = levels }
}

// WithNumRows makes the row/column splitter emit fixed groups of n data
// rows per chunk instead of sizing chunks by characters.
func WithNumRows(n int) Option {
	return func(c *config) { c.numRows = n }
}

// WithNumColumns makes the row/column splitter split column-wise, n columns
// per chunk.
func WithNumColumns(n int) Option {
	return func(c *config) { c.numColumns = n }
}

// WithEncoding sets the tokenizer encoding for the token splitter
// ("cl100k_base" or "o200k_base").
func WithEncoding(name string) Option {
	return func(c *config) { c.encoding = name }
}

// WithLanguage sets the programming language for the code splitter
// (case-insensitive, e.g. "go", "python").
func WithLanguage(name string) Option {
	return func(c *config) { c.language = name }
}

// WithHTMLTag sets the element tag the HTML tag splitter cuts at
// (e.g. "div", "tr").
func WithHTMLTag(tag string) Option {
	return func(c *config) { c.htmlTag = tag }
}

// WithMetadata attaches a free-form metadata map to every output produced
// by the strategy. It is copied forward unchanged.
func WithMetadata(m map[string]any) Option {
	return func(c *config) { c.metadata = m }
}
