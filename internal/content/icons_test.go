package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconURL(t *testing.T) {
	assert.True(t, strings.HasSuffix(IconURL("Go"), "go-original-wordmark.svg"))
	assert.Equal(t, IconURL("go"), IconURL(" GO "))
	assert.Equal(t, DefaultIcon, IconURL("cobol"))
	assert.Equal(t, DefaultIcon, IconURL(""))
	assert.Equal(t, "https://example.com/x.png", IconURL("https://example.com/x.png"))
	assert.Equal(t, "/static/img/me.svg", IconURL("/static/img/me.svg"))
}

func TestPlatformLabel(t *testing.T) {
	assert.Equal(t, "GitHub", PlatformLabel("github"))
	assert.Equal(t, "Mastodon", PlatformLabel("Mastodon"))
}

func TestMarkdown(t *testing.T) {
	got := string(Markdown("training **Muay Thai**"))
	assert.Contains(t, got, "<strong>Muay Thai</strong>")

	got = string(Markdown("<script>alert(1)</script>"))
	assert.NotContains(t, got, "<script>")
}
