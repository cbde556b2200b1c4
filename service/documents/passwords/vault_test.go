package docpasswords

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	vault, err := Open(path, "correct horse")
	require.NoError(t, err)

	require.NoError(t, vault.Set("reports/q3.pdf", "s3cret", "quarterly report"))

	// Reopen from disk to prove persistence.
	reopened, err := Open(path, "correct horse")
	require.NoError(t, err)

	entry, err := reopened.Get("reports/q3.pdf")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", entry.Password)
	assert.Equal(t, "quarterly report", entry.Notes)
	assert.False(t, entry.Updated.IsZero())
}

func TestVaultConcurrentSetsKeepAllEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	vault, err := Open(path, "shared key")
	require.NoError(t, err)

	// A single vault serializes writers; none of their entries may be
	// lost to a stale read-modify-write of the vault file.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, vault.Set(fmt.Sprintf("doc-%d.pdf", i), fmt.Sprintf("pw-%d", i), ""))
		}(i)
	}
	wg.Wait()

	reopened, err := Open(path, "shared key")
	require.NoError(t, err)
	summaries, err := reopened.List()
	require.NoError(t, err)
	assert.Len(t, summaries, 8)
}

func TestVaultWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")

	vault, err := Open(path, "right")
	require.NoError(t, err)
	require.NoError(t, vault.Set("doc.pdf", "pw", ""))

	_, err = Open(path, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt")
}

func TestVaultMissingFileIsEmpty(t *testing.T) {
	vault, err := Open(filepath.Join(t.TempDir(), "does-not-exist.enc"), "key")
	require.NoError(t, err)

	summaries, err := vault.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestVaultEmptyPassphraseRejected(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "vault.enc"), "")
	assert.Error(t, err)
}

func TestVaultListNeverExposesPasswords(t *testing.T) {
	vault, err := Open(filepath.Join(t.TempDir(), "vault.enc"), "key")
	require.NoError(t, err)

	require.NoError(t, vault.Set("b.pdf", "pw-b", "has notes"))
	require.NoError(t, vault.Set("a.pdf", "pw-a", ""))

	summaries, err := vault.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Sorted by document path.
	assert.Equal(t, "a.pdf", summaries[0].Document)
	assert.Equal(t, "b.pdf", summaries[1].Document)
	assert.False(t, summaries[0].HasNotes)
	assert.True(t, summaries[1].HasNotes)
}

func TestVaultDelete(t *testing.T) {
	vault, err := Open(filepath.Join(t.TempDir(), "vault.enc"), "key")
	require.NoError(t, err)

	require.NoError(t, vault.Set("doc.pdf", "pw", ""))
	require.NoError(t, vault.Delete("doc.pdf"))

	_, err = vault.Get("doc.pdf")
	assert.Error(t, err)

	// Deleting again reports the absence.
	assert.Error(t, vault.Delete("doc.pdf"))
}

func TestVaultSetValidation(t *testing.T) {
	vault, err := Open(filepath.Join(t.TempDir(), "vault.enc"), "key")
	require.NoError(t, err)

	assert.Error(t, vault.Set("", "pw", ""))
	assert.Error(t, vault.Set("doc.pdf", "", ""))
}

func TestVaultOverwrite(t *testing.T) {
	vault, err := Open(filepath.Join(t.TempDir(), "vault.enc"), "key")
	require.NoError(t, err)

	require.NoError(t, vault.Set("doc.pdf", "old", ""))
	require.NoError(t, vault.Set("doc.pdf", "new", ""))

	entry, err := vault.Get("doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "new", entry.Password)
}
