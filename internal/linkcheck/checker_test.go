package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestExtractLinks(t *testing.T) {
	body := []byte(`# Page

[inline](Overview-Roadmap) and ![img](images/flow.png) and <https://example.com>

[ref link][def]

[def]: Guides-Setup
`)

	links, err := ExtractLinks(body)
	require.NoError(t, err)

	byKind := map[LinkKind][]string{}
	for _, l := range links {
		byKind[l.Kind] = append(byKind[l.Kind], l.Destination)
	}

	assert.Contains(t, byKind[LinkKindInline], "Overview-Roadmap")
	assert.Contains(t, byKind[LinkKindImage], "images/flow.png")
	assert.Contains(t, byKind[LinkKindAuto], "https://example.com")
	assert.Contains(t, byKind[LinkKindReferenceDefinition], "Guides-Setup")
}

func TestCheckWikiCleanWiki(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "Home.md", "[Roadmap](Overview-Roadmap) ![d](images/flow.png)")
	writePage(t, dir, "Overview-Roadmap.md", "[back](Home#top) and [ext](https://example.com)")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "flow.png"), []byte("png"), 0o600))

	issues, err := CheckWiki(dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckWikiFindsBrokenLinks(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "Home.md",
		"[missing](Nope) ![gone](images/gone.png) [escaped](./docs/raw.md)")

	issues, err := CheckWiki(dir)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	reasons := map[string]string{}
	for _, issue := range issues {
		assert.Equal(t, "Home.md", issue.Page)
		reasons[issue.Destination] = issue.Reason
	}
	assert.Equal(t, "target page not found", reasons["Nope"])
	assert.Equal(t, "image file not found", reasons["images/gone.png"])
	assert.Equal(t, "destination is not a flat wiki page name", reasons["./docs/raw.md"])
}

func TestCheckWikiIgnoresAnchorsAndExternal(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "Home.md",
		"[sec](#section) [mail](mailto:a@b.c) [cdn](//cdn.example.com/x.png)")

	issues, err := CheckWiki(dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
