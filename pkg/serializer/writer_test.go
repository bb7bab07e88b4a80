package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Arch     string   `json:"arch" yaml:"arch"`
	Commands []string `json:"commands" yaml:"commands"`
	hidden   string
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Arch: "arm64", Commands: []string{"a"}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "arm64", got["arch"])
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Arch: "armhf", Commands: []string{"x", "y"}}))

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "armhf", got.Arch)
	assert.Equal(t, []string{"x", "y"}, got.Commands)
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), &sample{Arch: "armel", Commands: []string{"first", "second"}, hidden: "no"}))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "FIELD"))
	assert.Contains(t, lines[2], "Arch")
	assert.Contains(t, lines[2], "armel")
	assert.Contains(t, lines[3], "Commands.[0]")
	assert.Contains(t, lines[4], "Commands.[1]")
	assert.NotContains(t, out, "hidden")
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), "plain"))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "plain")
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestNewWriter_UnknownFormatDefaultsToYAML(t *testing.T) {
	w := NewWriter(Format("xml"), nil)
	assert.Equal(t, FormatYAML, w.format)
}
