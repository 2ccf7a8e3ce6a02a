package splitter

import (
	"sort"
	"strings"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*CodeSplitter)(nil)

func init() {
	register("code_splitter", func(opts ...Option) (Splitter, error) {
		return NewCodeSplitter(opts...)
	})
}

// codeSeparators maps a language to its declaration-boundary ladder, most
// significant first. The ladder always ends in the generic whitespace
// fallbacks so oversized bodies still split.
var codeSeparators = map[string][]string{
	"python": {
		"\nclass ", "\ndef ", "\n\tdef ",
		"\n\n", "\n", " ", "",
	},
	"go": {
		"\nfunc ", "\nvar ", "\nconst ", "\ntype ",
		"\nif ", "\nfor ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	"java": {
		"\nclass ", "\npublic ", "\nprotected ", "\nprivate ", "\nstatic ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	"javascript": {
		"\nfunction ", "\nconst ", "\nlet ", "\nvar ", "\nclass ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ", "\ndefault ",
		"\n\n", "\n", " ", "",
	},
	"typescript": {
		"\nenum ", "\ninterface ", "\nnamespace ", "\ntype ", "\nclass ",
		"\nfunction ", "\nconst ", "\nlet ", "\nvar ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ", "\ndefault ",
		"\n\n", "\n", " ", "",
	},
	"rust": {
		"\nfn ", "\nconst ", "\nlet ", "\nimpl ", "\nstruct ", "\nenum ",
		"\nif ", "\nwhile ", "\nfor ", "\nloop ", "\nmatch ",
		"\n\n", "\n", " ", "",
	},
	"c": {
		"\nvoid ", "\nint ", "\nfloat ", "\ndouble ", "\nstruct ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	"cpp": {
		"\nclass ", "\nvoid ", "\nint ", "\nfloat ", "\ndouble ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	"ruby": {
		"\nclass ", "\ndef ", "\nmodule ",
		"\nif ", "\nunless ", "\nwhile ", "\nfor ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
}

func supportedLanguages() []string {
	names := make([]string, 0, len(codeSeparators))
	for name := range codeSeparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CodeSplitter splits source code at declaration boundaries (functions,
// classes, types) of the configured language, falling back through the
// generic whitespace ladder for oversized bodies. Separators are leading
// keywords, so each chunk after the first starts at a declaration.
type CodeSplitter struct {
	chunkSize int
	overlap   int
	language  string
	inner     *RecursiveCharacterSplitter
	metadata  map[string]any
}

// NewCodeSplitter creates a code splitter. The default language is
// "python"; see WithLanguage for the supported set.
func NewCodeSplitter(opts ...Option) (*CodeSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	lang := strings.ToLower(cfg.language)
	ladder, ok := codeSeparators[lang]
	if !ok {
		return nil, &splitz.ErrConfig{
			Param:  "language",
			Reason: "unsupported language " + cfg.language + " (supported: " + strings.Join(supportedLanguages(), ", ") + ")",
		}
	}
	inner, err := NewRecursiveCharacterSplitter(append(opts, WithSeparators(ladder))...)
	if err != nil {
		return nil, err
	}
	inner.keepHead = true
	return &CodeSplitter{
		chunkSize: cfg.chunkSize,
		overlap:   inner.overlap,
		language:  lang,
		inner:     inner,
		metadata:  cfg.metadata,
	}, nil
}

func (s *CodeSplitter) Name() string { return "code_splitter" }

func (s *CodeSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	chunks := s.inner.chunkText(doc.Text)
	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":    s.chunkSize,
		"chunk_overlap": s.overlap,
		"language":      s.language,
	}, s.metadata), nil
}
