package markdown_test

import (
	"testing"

	"github.com/modelmart/core/internal/pkg/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	html, err := markdown.RenderHTML("# Title\n\nsome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestPlainText(t *testing.T) {
	got := markdown.PlainText("# Heading\n\nplain *styled* [link](https://example.com)")
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "plain")
	assert.Contains(t, got, "styled")
	assert.Contains(t, got, "link")
	assert.NotContains(t, got, "https://example.com")
	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "*")
}

func TestPlainTextEmpty(t *testing.T) {
	assert.Empty(t, markdown.PlainText(""))
}
