package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/supplier-catalog/pkg/correlationid"
)

var _ slog.Handler = (*enrichedHandler)(nil)

// contextAttrs returns the attributes found in ctx.
type contextAttrs func(ctx context.Context) []slog.Attr

var defaultEnrichers = []contextAttrs{
	correlationAttrs,
	traceAttrs,
}

// enrichedHandler adds request scoped attributes from the context to every record.
type enrichedHandler struct {
	h         slog.Handler
	enrichers []contextAttrs
}

func newEnrichedHandler(h slog.Handler, enrichers ...contextAttrs) enrichedHandler {
	if len(enrichers) == 0 {
		enrichers = defaultEnrichers
	}
	return enrichedHandler{h: h, enrichers: enrichers}
}

func (eh enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.h.Enabled(ctx, level)
}

func (eh enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, enrich := range eh.enrichers {
		r.AddAttrs(enrich(ctx)...)
	}
	return eh.h.Handle(ctx, r)
}

func (eh enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newEnrichedHandler(eh.h.WithAttrs(attrs), eh.enrichers...)
}

func (eh enrichedHandler) WithGroup(name string) slog.Handler {
	return newEnrichedHandler(eh.h.WithGroup(name), eh.enrichers...)
}

func correlationAttrs(ctx context.Context) []slog.Attr {
	id, ok := correlationid.FromContext(ctx)
	if !ok {
		return nil
	}
	return []slog.Attr{slog.String("correlation_id", id)}
}

func traceAttrs(ctx context.Context) []slog.Attr {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []slog.Attr{
		slog.String("trace_id", spanCtx.TraceID().String()),
		slog.String("span_id", spanCtx.SpanID().String()),
	}
}
