package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxFieldsKey struct{}

// ContextWith returns a context whose Context-variant log calls carry the
// given key/value pairs, such as the request id.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev, _ := ctx.Value(ctxFieldsKey{}).([]zap.Field)
	merged := make([]zap.Field, 0, len(prev)+len(args)/2+1)
	merged = append(merged, prev...)
	merged = append(merged, fields(args)...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func contextFields(ctx context.Context) []zap.Field {
	attached, _ := ctx.Value(ctxFieldsKey{}).([]zap.Field)

	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return attached
	}
	out := make([]zap.Field, 0, len(attached)+2)
	out = append(out, attached...)
	return append(out,
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}
