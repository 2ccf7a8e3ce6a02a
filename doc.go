// Package splitz is a document chunking toolkit for Go.
//
// It turns documents of arbitrary formats into bounded, ordered chunks
// suitable for retrieval indexing or context-window packing. Readers convert
// raw files into a [ReaderOutput]; splitting strategies partition its text
// (or structure) into chunks and return a [SplitterOutput] carrying the
// chunk ids, provenance, and the resolved split parameters.
//
// # Quick Start
//
//	r := reader.New()
//	doc, err := r.ReadFile("report.md")
//	if err != nil { ... }
//
//	sp, err := splitter.New("recursive_character_splitter",
//		splitter.WithChunkSize(512),
//		splitter.WithChunkOverlap(64),
//	)
//	if err != nil { ... }
//
//	out, err := sp.Split(doc)
//	for i, chunk := range out.Chunks {
//		fmt.Println(out.ChunkID[i], chunk)
//	}
//
// # Layout
//
// The root package defines the shared records and errors:
//
//   - [ReaderOutput] — a converted document plus provenance metadata
//   - [SplitterOutput] — ordered chunks, index-aligned chunk ids, and the
//     resolved configuration of the strategy that produced them
//   - [ErrConfig], [ErrStructure] — construction-time and traversal errors
//
// Strategies live in the splitter subpackage and are selected by canonical
// name through its registry. Format conversion lives in reader (with PDF
// support isolated in reader/pdf). OTel instrumentation for split calls
// lives in observer.
//
// Every Split call is a pure, synchronous computation over in-memory input:
// no I/O, no shared state between calls, safe for concurrent use.
package splitz
