package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for split observability spans and metrics.
var (
	AttrSplitMethod = attribute.Key("split.method")
	AttrChunkCount  = attribute.Key("split.chunk_count")
	AttrTextLength  = attribute.Key("split.text_length")
	AttrDocumentID  = attribute.Key("document.id")
)
