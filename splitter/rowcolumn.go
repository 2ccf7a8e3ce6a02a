package splitter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	splitz "github.com/splitz-go/splitz"
)

var _ Splitter = (*RowColumnSplitter)(nil)

func init() {
	register("row_column_splitter", func(opts ...Option) (Splitter, error) {
		return NewRowColumnSplitter(opts...)
	})
}

// RowColumnSplitter chunks tabular (CSV) input. The header row is
// replicated into every chunk so each chunk is an independently readable
// table. Three modes:
//
//   - numRows > 0: fixed groups of data rows per chunk
//   - numColumns > 0: column-wise groups, one chunk per column slice
//   - otherwise: greedy row accumulation under chunkSize characters
type RowColumnSplitter struct {
	chunkSize  int
	numRows    int
	numColumns int
	metadata   map[string]any
}

// NewRowColumnSplitter creates a row/column splitter. numRows and
// numColumns are mutually exclusive.
func NewRowColumnSplitter(opts ...Option) (*RowColumnSplitter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.chunkSize < 1 {
		return nil, &splitz.ErrConfig{Param: "chunk_size", Reason: "must be an integer >= 1"}
	}
	if cfg.numRows < 0 || cfg.numColumns < 0 {
		return nil, &splitz.ErrConfig{Param: "num_rows/num_columns", Reason: "must be >= 0"}
	}
	if cfg.numRows > 0 && cfg.numColumns > 0 {
		return nil, &splitz.ErrConfig{Param: "num_rows", Reason: "num_rows and num_columns are mutually exclusive"}
	}
	return &RowColumnSplitter{
		chunkSize:  cfg.chunkSize,
		numRows:    cfg.numRows,
		numColumns: cfg.numColumns,
		metadata:   cfg.metadata,
	}, nil
}

func (s *RowColumnSplitter) Name() string { return "row_column_splitter" }

func (s *RowColumnSplitter) Split(doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	header, rows, err := parseTable(doc.Text)
	if err != nil {
		return splitz.SplitterOutput{}, err
	}

	var chunks []string
	switch {
	case header == nil:
		// empty table, no chunks
	case s.numColumns > 0:
		chunks, err = columnChunks(header, rows, s.numColumns)
	case s.numRows > 0:
		chunks, err = rowChunks(header, rows, func(group [][]string, next []string) bool {
			return len(group) >= s.numRows
		})
	default:
		chunks, err = rowChunks(header, rows, sizeCloser(header, s.chunkSize))
	}
	if err != nil {
		return splitz.SplitterOutput{}, err
	}

	return buildOutput(doc, chunks, s.Name(), map[string]any{
		"chunk_size":  s.chunkSize,
		"num_rows":    s.numRows,
		"num_columns": s.numColumns,
	}, s.metadata), nil
}

func parseTable(text string) (header []string, rows [][]string, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, nil
	}
	content := bytes.TrimPrefix([]byte(text), []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(content))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read headers: %w", err)
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

// sizeCloser closes a group when rendering the next row would push the
// chunk past chunkSize characters (header included).
func sizeCloser(header []string, chunkSize int) func([][]string, []string) bool {
	headerLen := len(renderCSV([][]string{header}))
	return func(group [][]string, next []string) bool {
		size := headerLen
		for _, row := range group {
			size += len(renderCSV([][]string{row}))
		}
		return len(group) > 0 && size+len(renderCSV([][]string{next})) > chunkSize
	}
}

func rowChunks(header []string, rows [][]string, closeGroup func(group [][]string, next []string) bool) ([]string, error) {
	if len(rows) == 0 {
		return []string{renderCSV([][]string{header})}, nil
	}
	var chunks []string
	var group [][]string
	for _, row := range rows {
		if len(group) > 0 && closeGroup(group, row) {
			chunks = append(chunks, renderCSV(append([][]string{header}, group...)))
			group = nil
		}
		group = append(group, row)
	}
	if len(group) > 0 {
		chunks = append(chunks, renderCSV(append([][]string{header}, group...)))
	}
	return chunks, nil
}

func columnChunks(header []string, rows [][]string, numColumns int) ([]string, error) {
	var chunks []string
	for start := 0; start < len(header); start += numColumns {
		end := start + numColumns
		if end > len(header) {
			end = len(header)
		}
		records := [][]string{header[start:end]}
		for _, row := range rows {
			if start >= len(row) {
				continue
			}
			stop := end
			if stop > len(row) {
				stop = len(row)
			}
			records = append(records, row[start:stop])
		}
		chunks = append(chunks, renderCSV(records))
	}
	return chunks, nil
}

func renderCSV(records [][]string) string {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.WriteAll(records)
	w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
