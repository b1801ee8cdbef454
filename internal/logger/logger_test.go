package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	defer Setup("info", os.Stdout)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithSource(ctx, "seed")

	WithContext(ctx).WithField("group", "Anonymous").Info("group created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "seed", entry["source"])
	assert.Equal(t, "Anonymous", entry["group"])
	assert.Equal(t, "group created", entry["msg"])
}

func TestWithContextEmpty(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", os.Stdout)

	WithContext(context.Background()).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "source")
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	defer Setup("info", os.Stdout)

	Setup("warn", &buf)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	Setup(" DEBUG ", &buf)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("bogus", &buf)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
