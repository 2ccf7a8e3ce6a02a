package splitter

import splitz "github.com/splitz-go/splitz"

// buildOutput assembles the output record shared by every strategy: one
// fresh id per chunk (index-aligned), provenance copied forward verbatim,
// the canonical strategy name, and the resolved split parameters.
func buildOutput(doc splitz.ReaderOutput, chunks []string, method string, params, metadata map[string]any) splitz.SplitterOutput {
	if chunks == nil {
		chunks = []string{}
	}
	ids := make([]string, len(chunks))
	for i := range chunks {
		ids[i] = splitz.NewID()
	}
	if metadata == nil {
		metadata = doc.Metadata
	}
	return splitz.SplitterOutput{
		Chunks:           chunks,
		ChunkID:          ids,
		DocumentName:     doc.DocumentName,
		DocumentPath:     doc.DocumentPath,
		DocumentID:       doc.DocumentID,
		ConversionMethod: doc.ConversionMethod,
		ReaderMethod:     doc.ReaderMethod,
		OCRMethod:        doc.OCRMethod,
		SplitMethod:      method,
		SplitParams:      params,
		Metadata:         metadata,
	}
}
