package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claude/ftracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `
# reference batch
SWM;720;1;80;25;40
RUN;15000;1;75

WLK; 9000 ; 1,5 ; 75 ; 180
XYZ
`

const sampleYAML = `
- type: SWM
  values: [720, 1, 80, 25, 40]
- type: RUN
  values: [15000, 1, 75]
- type: WLK
  values: [9000, 1, 75, 180]
`

// TestParseText covers comments, blank lines, padded fields, decimal commas and a
// code-only line.
func TestParseText(t *testing.T) {
	packages, err := ParseText(strings.NewReader(sampleText))
	require.NoError(t, err)
	require.Len(t, packages, 4)

	assert.Equal(t, models.Package{Type: "SWM", Values: []float64{720, 1, 80, 25, 40}}, packages[0])
	assert.Equal(t, models.Package{Type: "RUN", Values: []float64{15000, 1, 75}}, packages[1])
	assert.Equal(t, models.Package{Type: "WLK", Values: []float64{9000, 1.5, 75, 180}}, packages[2])
	assert.Equal(t, "XYZ", packages[3].Type)
	assert.Empty(t, packages[3].Values)
}

// TestParseTextInvalidValue verifies a non-numeric reading fails with the line number.
func TestParseTextInvalidValue(t *testing.T) {
	_, err := ParseText(strings.NewReader("RUN;15000;1;75\nRUN;abc;1;75\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "abc")
}

// TestParseTextMalformedLine verifies a line without a separator after the code is rejected.
func TestParseTextMalformedLine(t *testing.T) {
	_, err := ParseText(strings.NewReader("RUN 15000 1 75\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

// TestParseYAML verifies the YAML batch keeps package order.
func TestParseYAML(t *testing.T) {
	packages, err := ParseYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, DefaultPackages(), packages)
}

// TestParseYAMLEmpty verifies an empty document is an empty batch.
func TestParseYAMLEmpty(t *testing.T) {
	packages, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, packages)
}

// TestParseYAMLInvalid verifies malformed YAML is reported.
func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("type: RUN\nvalues: [1, 2"))
	assert.Error(t, err)
}

// TestParseUnknownFormat verifies an unsupported format name is rejected.
func TestParseUnknownFormat(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "csv")
	assert.Error(t, err)
}

// TestDetectFormat verifies extension-based detection.
func TestDetectFormat(t *testing.T) {
	assert.Equal(t, InputYAML, DetectFormat("batch.yaml"))
	assert.Equal(t, InputYAML, DetectFormat("/tmp/BATCH.YML"))
	assert.Equal(t, InputText, DetectFormat("batch.txt"))
	assert.Equal(t, InputText, DetectFormat("batch"))
}

// TestParseFile reads both formats from disk.
func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))
	packages, err := ParseFile(yamlPath, "")
	require.NoError(t, err)
	assert.Len(t, packages, 3)

	textPath := filepath.Join(dir, "batch.txt")
	require.NoError(t, os.WriteFile(textPath, []byte(sampleText), 0o644))
	packages, err = ParseFile(textPath, "")
	require.NoError(t, err)
	assert.Len(t, packages, 4)

	_, err = ParseFile(filepath.Join(dir, "missing.txt"), "")
	assert.Error(t, err)
}
