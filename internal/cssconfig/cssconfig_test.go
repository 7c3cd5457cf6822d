package cssconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
presets:
  - name: minified
    allow_nesting: true
    pretty: false
  - name: pretty-debug
    allow_nesting: true
    pretty: true
    indent: "    "
`

func TestLoadAndFind(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, doc.Presets, 2)

	minified, ok := doc.Find("minified")
	require.True(t, ok)
	assert.False(t, minified.PrinterOptions().Pretty)
	assert.True(t, minified.ParserOptions().AllowNesting)

	pretty, ok := doc.Find("pretty-debug")
	require.True(t, ok)
	assert.True(t, pretty.PrinterOptions().Pretty)
	assert.Equal(t, "    ", pretty.PrinterOptions().Indent)

	_, ok = doc.Find("nonexistent")
	assert.False(t, ok)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("presets: [not, a, map"))
	assert.Error(t, err)
}
