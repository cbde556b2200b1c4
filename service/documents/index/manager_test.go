package docindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

func TestBuildAndSearch(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "alpha.txt", "the quick brown fox jumps over the lazy dog")
	writeDoc(t, source, "beta.md", "bleve is a text indexing library for go")
	writeDoc(t, source, "skip.bin", "binary-ish content that is not indexable")

	manager := newTestManager(t)

	result, err := manager.Build(context.Background(), "docs", source)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Documents)
	assert.Equal(t, 1, result.SkippedFiles)
	assert.NotEmpty(t, result.BuildID)

	search, err := manager.Search(context.Background(), "docs", "indexing library", 0, 10)
	require.NoError(t, err)
	require.NotZero(t, search.TotalHits)
	assert.Contains(t, search.Hits[0].Path, "beta.md")
}

func TestSearchWithFuzziness(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "doc.txt", "kubernetes deployment rollout")

	manager := newTestManager(t)
	_, err := manager.Build(context.Background(), "infra", source)
	require.NoError(t, err)

	// One-character typo should still match with fuzziness 1.
	search, err := manager.Search(context.Background(), "infra", "deploymant", 1, 10)
	require.NoError(t, err)
	assert.NotZero(t, search.TotalHits)
}

func TestLoadUnloadList(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "doc.txt", "content for residency testing")

	manager := newTestManager(t)
	_, err := manager.Build(context.Background(), "resident", source)
	require.NoError(t, err)

	// Build leaves the index loaded.
	infos, err := manager.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "resident", infos[0].Name)
	assert.True(t, infos[0].Loaded)
	require.NotNil(t, infos[0].DocCount)
	assert.Equal(t, uint64(1), *infos[0].DocCount)

	// Unloading drops residency, and the document count is unknown
	// until the index is opened again.
	require.NoError(t, manager.Unload("resident"))
	infos, err = manager.List()
	require.NoError(t, err)
	assert.False(t, infos[0].Loaded)
	assert.Nil(t, infos[0].DocCount)

	// Unloading twice is an error.
	assert.Error(t, manager.Unload("resident"))

	info, err := manager.Load("resident")
	require.NoError(t, err)
	assert.True(t, info.Loaded)
}

func TestSearchLoadsOnDemand(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "doc.txt", "on demand loading works")

	manager := newTestManager(t)
	_, err := manager.Build(context.Background(), "lazy", source)
	require.NoError(t, err)
	require.NoError(t, manager.Unload("lazy"))

	search, err := manager.Search(context.Background(), "lazy", "demand", 0, 10)
	require.NoError(t, err)
	assert.NotZero(t, search.TotalHits)
}

func TestDeleteIndex(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "doc.txt", "transient data")

	manager := newTestManager(t)
	_, err := manager.Build(context.Background(), "transient", source)
	require.NoError(t, err)

	require.NoError(t, manager.Delete("transient"))

	infos, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, infos)

	assert.Error(t, manager.Delete("transient"))
	_, err = manager.Search(context.Background(), "transient", "data", 0, 10)
	assert.Error(t, err)
}

func TestIndexDocument(t *testing.T) {
	source := t.TempDir()
	writeDoc(t, source, "doc.txt", "initial corpus")

	manager := newTestManager(t)
	_, err := manager.Build(context.Background(), "growing", source)
	require.NoError(t, err)

	err = manager.IndexDocument("growing", Document{
		Path: "manual/added.txt",
		Name: "added.txt",
		Body: "a manually added document about pelicans",
	})
	require.NoError(t, err)

	search, err := manager.Search(context.Background(), "growing", "pelicans", 0, 10)
	require.NoError(t, err)
	require.NotZero(t, search.TotalHits)
	assert.Equal(t, "manual/added.txt", search.Hits[0].Path)
}

func TestBuildValidation(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.Build(context.Background(), "bad name!", t.TempDir())
	assert.Error(t, err)

	_, err = manager.Build(context.Background(), "ok", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRebuildReplacesIndex(t *testing.T) {
	first := t.TempDir()
	writeDoc(t, first, "a.txt", "first generation content")
	second := t.TempDir()
	writeDoc(t, second, "b.txt", "second generation content")
	writeDoc(t, second, "c.txt", "more second generation content")

	manager := newTestManager(t)

	_, err := manager.Build(context.Background(), "gen", first)
	require.NoError(t, err)

	result, err := manager.Build(context.Background(), "gen", second)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Documents)

	search, err := manager.Search(context.Background(), "gen", "first", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, search.TotalHits)
}
