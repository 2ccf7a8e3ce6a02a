// Package pdf provides a PDF text converter for the reader.
//
// It uses ledongthuc/pdf (BSD-3, pure Go, no CGO). This is a separate
// subpackage so the dependency is only pulled in by users who need PDF
// support:
//
//	r := reader.New(reader.WithConverter("pdf", pdf.New()))
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Converter implements reader.Converter for PDF documents.
type Converter struct{}

// New creates a PDF converter.
func New() *Converter {
	return &Converter{}
}

// Convert extracts plain text page by page, joining pages with a blank
// line. Unreadable pages are skipped.
func (c *Converter) Convert(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}
	return strings.TrimSpace(text.String()), nil
}
