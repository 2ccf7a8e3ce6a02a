package observer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	splitz "github.com/splitz-go/splitz"
	"github.com/splitz-go/splitz/splitter"
)

// ObservedSplitter wraps a splitter.Splitter with OTEL instrumentation.
// The context carries the caller's trace and deadline; the wrapped Split
// itself stays synchronous and context-free.
type ObservedSplitter struct {
	inner splitter.Splitter
	inst  *Instruments
}

// WrapSplitter returns an instrumented splitter.
func WrapSplitter(inner splitter.Splitter, inst *Instruments) *ObservedSplitter {
	return &ObservedSplitter{inner: inner, inst: inst}
}

func (o *ObservedSplitter) Name() string { return o.inner.Name() }

func (o *ObservedSplitter) Split(ctx context.Context, doc splitz.ReaderOutput) (splitz.SplitterOutput, error) {
	ctx, span := o.inst.Tracer.Start(ctx, "split."+o.inner.Name(), trace.WithAttributes(
		AttrSplitMethod.String(o.inner.Name()),
		AttrTextLength.Int(len(doc.Text)),
		AttrDocumentID.String(doc.DocumentID),
	))
	defer span.End()
	start := time.Now()

	out, err := o.inner.Split(doc)

	durationMs := float64(time.Since(start).Milliseconds())
	attrs := metric.WithAttributes(
		AttrSplitMethod.String(o.inner.Name()),
	)
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(AttrChunkCount.Int(len(out.Chunks)))
		// Only produced chunks count; a failed split produced none.
		o.inst.ChunksProduced.Add(ctx, int64(len(out.Chunks)), attrs)
	}

	o.inst.SplitRequests.Add(ctx, 1, metric.WithAttributes(
		AttrSplitMethod.String(o.inner.Name()),
		attribute.String("status", status),
	))
	o.inst.SplitDuration.Record(ctx, durationMs, attrs)

	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("split completed"))
	rec.AddAttributes(
		otellog.String("split.method", o.inner.Name()),
		otellog.Int("split.chunk_count", len(out.Chunks)),
		otellog.Float64("split.duration_ms", durationMs),
		otellog.String("status", status),
	)
	o.inst.Logger.Emit(ctx, rec)

	return out, err
}
