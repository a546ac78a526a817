package observe

import (
	"context"
	"io"
	"testing"
)

// BenchmarkLogger_Info measures structured logging throughput.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "cache hit", Field{Key: "cache.key", Value: "abc.exec"})
	}
}

// BenchmarkLogger_Filtered measures the cost of a suppressed log call.
func BenchmarkLogger_Filtered(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "cache hit", Field{Key: "cache.key", Value: "abc.exec"})
	}
}

// BenchmarkNopLogger measures the no-op logging baseline.
func BenchmarkNopLogger(b *testing.B) {
	logger := NewNopLogger()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "ignored")
	}
}

// BenchmarkQueryMeta_SpanName measures span name construction.
func BenchmarkQueryMeta_SpanName(b *testing.B) {
	meta := QueryMeta{Command: "arrow", Key: "abc.arrow"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meta.SpanName()
	}
}
