package splitz

// --- Document records ---

// ReaderOutput is the record every reader produces and every splitter
// consumes. Text holds the converted document; for the structural splitter
// it holds serialized JSON. The engine treats the record as read-only.
type ReaderOutput struct {
	Text             string         `json:"text"`
	DocumentName     string         `json:"document_name,omitempty"`
	DocumentPath     string         `json:"document_path"`
	DocumentID       string         `json:"document_id,omitempty"`
	ConversionMethod string         `json:"conversion_method,omitempty"`
	ReaderMethod     string         `json:"reader_method,omitempty"`
	OCRMethod        string         `json:"ocr_method,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// SplitterOutput is the record every splitting strategy returns.
// Chunks and ChunkID are aligned by index. SplitParams records the resolved
// configuration (absolute overlap, not the raw fraction) so consumers can
// audit exactly what was applied.
type SplitterOutput struct {
	Chunks           []string       `json:"chunks"`
	ChunkID          []string       `json:"chunk_id"`
	DocumentName     string         `json:"document_name,omitempty"`
	DocumentPath     string         `json:"document_path"`
	DocumentID       string         `json:"document_id,omitempty"`
	ConversionMethod string         `json:"conversion_method,omitempty"`
	ReaderMethod     string         `json:"reader_method,omitempty"`
	OCRMethod        string         `json:"ocr_method,omitempty"`
	SplitMethod      string         `json:"split_method"`
	SplitParams      map[string]any `json:"split_params"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}
