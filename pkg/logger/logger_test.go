package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, ServiceName: "api", Output: buf}), buf
}

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.Zerolog())
}

func TestLogger_Formatting(t *testing.T) {
	logger, buf := newBufferLogger("info")

	logger.Info("User %s logged in with ID %d", "john", 123)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "User john logged in with ID 123", line["message"])
	assert.Equal(t, "api", line[FieldService])
}

func TestLogger_LevelFilter(t *testing.T) {
	logger, buf := newBufferLogger("warn")

	logger.Info("dropped")
	logger.Debug("dropped too")
	assert.Zero(t, buf.Len())

	logger.Warn("Warning: %s count is %d", "items", 5)
	logger.Error("Failed to process request %d: %s", 404, "not found")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestLogger_With(t *testing.T) {
	logger, buf := newBufferLogger("info")

	logger.With(FieldRequestID, "req-1").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line[FieldRequestID])
}

func TestFromContext(t *testing.T) {
	logger, _ := newBufferLogger("info")

	ctx := WithContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
