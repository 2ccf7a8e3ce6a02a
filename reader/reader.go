// Package reader converts raw documents into splitz.ReaderOutput records
// ready for splitting.
//
// The built-in VanillaReader handles plain text, markdown, CSV, JSON, and
// HTML. Binary formats plug in through the Converter interface; the
// reader/pdf subpackage provides one for PDF so the dependency is only
// pulled in by users who need it.
package reader

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/text/unicode/norm"

	splitz "github.com/splitz-go/splitz"
)

// Converter turns raw bytes of one format into plain text.
type Converter interface {
	Convert(content []byte) (string, error)
}

// Option configures a VanillaReader.
type Option func(*VanillaReader)

// WithConverter registers a Converter for a file extension (without dot).
func WithConverter(ext string, c Converter) Option {
	return func(r *VanillaReader) { r.converters[strings.ToLower(ext)] = c }
}

// VanillaReader reads local documents and produces ReaderOutput records
// with provenance filled in. All text is NFC-normalized.
type VanillaReader struct {
	converters map[string]Converter
}

// New creates a VanillaReader.
func New(opts ...Option) *VanillaReader {
	r := &VanillaReader{converters: map[string]Converter{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// ReadFile reads and converts the document at path.
func (r *VanillaReader) ReadFile(path string) (splitz.ReaderOutput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return splitz.ReaderOutput{}, fmt.Errorf("read %s: %w", path, err)
	}
	return r.read(content, path)
}

// Read converts in-memory content; name supplies the extension and
// provenance.
func (r *VanillaReader) Read(content []byte, name string) (splitz.ReaderOutput, error) {
	return r.read(content, name)
}

// binaryExtensions cannot be decoded as text and require a registered
// Converter.
var binaryExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"xlsx": true,
	"pptx": true,
}

func (r *VanillaReader) read(content []byte, path string) (splitz.ReaderOutput, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	method := conversionMethod(ext)

	var text string
	if conv, ok := r.converters[ext]; ok {
		converted, err := conv.Convert(content)
		if err != nil {
			return splitz.ReaderOutput{}, fmt.Errorf("convert %s: %w", path, err)
		}
		text = converted
	} else if binaryExtensions[ext] {
		return splitz.ReaderOutput{}, fmt.Errorf("no converter registered for .%s files", ext)
	} else {
		switch method {
		case "html":
			text = htmlText(content)
		case "json":
			text = string(content)
			var v any
			if err := sonic.ConfigStd.Unmarshal(content, &v); err != nil {
				// Not parseable as JSON: keep the text, downgrade the method
				// so the structural splitter is not fed garbage.
				method = "txt"
			}
		default:
			text = string(content)
		}
	}

	return splitz.ReaderOutput{
		Text:             norm.NFC.String(text),
		DocumentName:     filepath.Base(path),
		DocumentPath:     path,
		DocumentID:       splitz.NewID(),
		ConversionMethod: method,
		ReaderMethod:     "vanilla",
	}, nil
}

func conversionMethod(ext string) string {
	switch ext {
	case "md", "markdown":
		return "markdown"
	case "html", "htm":
		return "html"
	case "csv", "tsv":
		return "csv"
	case "json":
		return "json"
	case "pdf":
		return "pdf"
	case "docx":
		return "docx"
	default:
		return "txt"
	}
}

// htmlText reduces an HTML page to its readable article text, falling back
// to the raw markup when extraction finds nothing.
func htmlText(content []byte) string {
	base, _ := url.Parse("https://localhost/")
	article, err := readability.FromReader(bytes.NewReader(content), base)
	if err != nil {
		return string(content)
	}
	if text := strings.TrimSpace(article.TextContent); text != "" {
		return text
	}
	return string(content)
}
