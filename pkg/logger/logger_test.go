package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_WritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(Config{Level: "info", LogDir: dir, ServiceName: "docs-feedback"})
	require.NoError(t, err)

	log.Info("feedback received", zap.String("page", "home"))
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"feedback received"`)
	assert.Contains(t, string(data), `"service_name":"docs-feedback"`)
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestTraceFields(t *testing.T) {
	assert.Nil(t, TraceFields(context.Background()))

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	fields := TraceFields(ctx)
	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, span.SpanContext().TraceID().String(), fields[0].String)
	assert.Equal(t, "span_id", fields[1].Key)
}

func TestWith_AddsFieldsAndHonoursLevel(t *testing.T) {
	dir := t.TempDir()
	log, err := New(Config{Level: "info", LogDir: dir})
	require.NoError(t, err)

	previous := Log
	Log = log
	t.Cleanup(func() { Log = previous })

	child := With(zap.String("feedback_type", "positive"))
	child.Info("feedback notification sent")
	Debug("sending feedback notification")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"feedback_type":"positive"`)
	assert.Contains(t, string(data), `"caller":"logger/logger_test.go`)
	assert.NotContains(t, string(data), "sending feedback notification")
}
