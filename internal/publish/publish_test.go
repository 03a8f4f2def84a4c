package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initWikiRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestCommitAll(t *testing.T) {
	dir := initWikiRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Home.md"), []byte("# Home\n"), 0o600))

	changed, err := HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	hash, err := CommitAll(dir, Options{Message: "Publish wiki"})
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed)

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "Publish wiki", commit.Message)
	assert.Equal(t, "wikibuilder", commit.Author.Name)
}

func TestCommitAllNothingToCommit(t *testing.T) {
	dir := initWikiRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Home.md"), []byte("# Home\n"), 0o600))

	_, err := CommitAll(dir, Options{})
	require.NoError(t, err)

	hash, err := CommitAll(dir, Options{})
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestHasChangesNotARepo(t *testing.T) {
	_, err := HasChanges(t.TempDir())
	require.Error(t, err)
}
