package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, sonic.UnmarshalString(line, &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_KeyValueFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo).With("service", "eplpal-api")

	logger.Debug("dropped", "k", 1)
	logger.Warn("odds lookup failed", "match_id", 100, "error", errors.New("timeout"), "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	require.Equal(t, "WARN", entry["level"])
	require.Equal(t, "odds lookup failed", entry["msg"])
	require.Equal(t, "eplpal-api", entry["service"])
	require.EqualValues(t, 100, entry["match_id"])
	require.Equal(t, "timeout", entry["error"])
	require.Contains(t, entry, "dangling")
	require.True(t, strings.HasPrefix(entry["caller"].(string), "logging/logger_test.go"), "caller %v", entry["caller"])
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	ctx := ContextWith(context.Background(), "request_id", "req-1")
	ctx = ContextWith(ctx, "bettor_id", 7)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.DebugContext(ctx, "join miss")
	logger.Info("no context")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "req-1", lines[0]["request_id"])
	require.EqualValues(t, 7, lines[0]["bettor_id"])
	require.Equal(t, traceID.String(), lines[0]["trace_id"])
	require.Equal(t, spanID.String(), lines[0]["span_id"])
	require.NotContains(t, lines[1], "request_id")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": LevelInfo, "DEBUG": LevelDebug, "warning": LevelWarn, " error ": LevelError}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("trace")
	require.Error(t, err)
}

func TestDefault_NilLoggerFallsBack(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(&buf, LevelInfo))
	t.Cleanup(func() { SetDefault(prev) })

	var logger *Logger
	logger.Info("via default")
	require.Contains(t, buf.String(), "via default")
}
