package pages

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path (and parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func sampleRepo(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "README.md"),
		"# Project\n\nSee [the roadmap](./docs/overview/roadmap.md).\n")
	writeFile(t, filepath.Join(src, "CHANGELOG.md"), "# Changelog\n")
	writeFile(t, filepath.Join(src, "docs", "overview", "roadmap.md"),
		"Back to [home](../../README.md) and ![diagram](../images/flow.png)\n")
	writeFile(t, filepath.Join(src, "docs", "guides", "getting-started.md"),
		"```\n[untouched](./docs/a.md)\n```\n")
	writeFile(t, filepath.Join(src, "docs", "images", "flow.png"), "png-bytes")
	writeFile(t, filepath.Join(src, "docs", "images", "flow.png.meta"), "unity meta")
	writeFile(t, filepath.Join(src, "docs", "images", "sub", "icon.png"), "icon-bytes")
	return src
}

func TestPreparerRun(t *testing.T) {
	src := sampleRepo(t)
	dest := t.TempDir()

	stats, err := NewPreparer(src, dest).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Pages)  // Home, CHANGELOG, two docs pages
	assert.Equal(t, 2, stats.Images) // .meta sidecar skipped

	home, err := os.ReadFile(filepath.Join(dest, "Home.md"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "[the roadmap](Overview-Roadmap)")

	roadmap, err := os.ReadFile(filepath.Join(dest, "Overview-Roadmap.md"))
	require.NoError(t, err)
	assert.Contains(t, string(roadmap), "[home](Home)")
	assert.Contains(t, string(roadmap), "![diagram](images/flow.png)")

	fenced, err := os.ReadFile(filepath.Join(dest, "Guides-Getting-Started.md"))
	require.NoError(t, err)
	assert.Equal(t, "```\n[untouched](./docs/a.md)\n```\n", string(fenced))

	assert.FileExists(t, filepath.Join(dest, "images", "flow.png"))
	assert.FileExists(t, filepath.Join(dest, "images", "sub", "icon.png"))
	assert.NoFileExists(t, filepath.Join(dest, "images", "flow.png.meta"))
}

func TestPreparerCleanPreservesGit(t *testing.T) {
	src := sampleRepo(t)
	dest := t.TempDir()
	writeFile(t, filepath.Join(dest, ".git", "HEAD"), "ref: refs/heads/master")
	writeFile(t, filepath.Join(dest, "Stale-Page.md"), "old content")

	_, err := NewPreparer(src, dest).WithClean(true).Run(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, ".git", "HEAD"))
	assert.NoFileExists(t, filepath.Join(dest, "Stale-Page.md"))
	assert.FileExists(t, filepath.Join(dest, "Home.md"))
}

func TestPreparerMissingSource(t *testing.T) {
	_, err := NewPreparer(filepath.Join(t.TempDir(), "missing"), t.TempDir()).Run(context.Background())
	require.Error(t, err)
}

func TestPreparerCanceledContext(t *testing.T) {
	src := sampleRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPreparer(src, t.TempDir()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverPagesOrdering(t *testing.T) {
	src := sampleRepo(t)
	found, err := DiscoverPages(src)
	require.NoError(t, err)

	require.Len(t, found, 4)
	assert.Equal(t, "Home.md", found[0].WikiName)
	assert.Equal(t, "CHANGELOG.md", found[1].WikiName)
	// docs pages follow in path order
	assert.Equal(t, "Guides-Getting-Started.md", found[2].WikiName)
	assert.Equal(t, "Overview-Roadmap.md", found[3].WikiName)
}

func TestDiscoverImagesSkipsMeta(t *testing.T) {
	src := sampleRepo(t)
	images, err := DiscoverImages(src)
	require.NoError(t, err)

	require.Len(t, images, 2)
	assert.Equal(t, "flow.png", images[0].RelativePath)
	assert.Equal(t, filepath.Join("sub", "icon.png"), images[1].RelativePath)
}
