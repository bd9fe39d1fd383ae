package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogrusLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Debug: true, JSON: true})

	l.Infof("web", "listening on %s", ":5000")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "web", entry["component"])
	require.Equal(t, "listening on :5000", entry["msg"])
	require.Equal(t, "info", entry["level"])
}

func TestLogrusLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{})

	l.Infof("generate", "hidden")
	require.Empty(t, buf.String())

	l.Errorf("generate", "boom: %v", "disk full")
	require.Contains(t, buf.String(), "boom: disk full")
	require.Contains(t, buf.String(), "component=generate")

	buf.Reset()
	l.SetLevel(logrus.InfoLevel)
	l.Infof("web", "GET /")
	require.True(t, strings.Contains(buf.String(), "GET /"))
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("x", "%d", 1)
	l.Errorf("x", "%d", 2)
}
