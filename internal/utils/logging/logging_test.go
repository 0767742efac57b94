package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "text", false).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, "text", true).Debug("shown", "file", "a.txt")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "file=a.txt")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "json", false).Warn("careful")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "careful", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
}
