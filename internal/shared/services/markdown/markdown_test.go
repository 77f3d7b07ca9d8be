package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	r := NewRenderer()

	// goldmark escapes the raw HTML, so the script text survives inertly.
	// What must not survive is an executable script element.
	out, err := r.Render("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "</script")
	assert.Contains(t, out, "hello")
}

func TestRenderStripsEventHandlers(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(`<img src="x" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, out, "onerror")
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRenderKeepsSafeLinks(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("[demo](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.com"`)

	out, err = r.Render(`[click](javascript:alert(1))`)
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}
