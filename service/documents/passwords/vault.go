// Package docpasswords stores per-document passwords in a single
// encrypted file. The vault key is derived from a passphrase with
// argon2id and the entry table is sealed with nacl/secretbox, so the
// file at rest reveals nothing but its own length.
package docpasswords

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

// argon2id parameters: 64 MiB, 1 pass, 4 lanes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

type vaultFile struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Box   []byte `json:"box"`
}

// Vault is the decrypted entry table plus the material needed to
// re-seal it.
type Vault struct {
	path       string
	passphrase string

	mu      sync.Mutex
	salt    []byte
	entries map[string]Entry
}

// Open reads and decrypts the vault file. A missing file yields an
// empty vault that is created on first Set.
func Open(path, passphrase string) (*Vault, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("vault passphrase must not be empty")
	}

	v := &Vault{
		path:       path,
		passphrase: passphrase,
		entries:    make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return v, nil
	}
	if err != nil {
		return nil, err
	}

	var file vaultFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("vault file is corrupt: %w", err)
	}
	if len(file.Salt) != saltSize || len(file.Nonce) != nonceSize {
		return nil, fmt.Errorf("vault file is corrupt: bad salt or nonce length")
	}

	key := deriveKey(passphrase, file.Salt)
	var nonce [nonceSize]byte
	copy(nonce[:], file.Nonce)

	plaintext, ok := secretbox.Open(nil, file.Box, &nonce, &key)
	if !ok {
		return nil, fmt.Errorf("failed to decrypt vault: wrong passphrase or corrupt file")
	}
	if err := json.Unmarshal(plaintext, &v.entries); err != nil {
		return nil, fmt.Errorf("vault contents are corrupt: %w", err)
	}
	v.salt = file.Salt

	return v, nil
}

// Set stores or replaces the credential for a document path.
func (v *Vault) Set(document, password, notes string) error {
	if document == "" {
		return fmt.Errorf("document path must not be empty")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries[document] = Entry{
		Password: password,
		Notes:    notes,
		Updated:  time.Now().UTC(),
	}
	return v.saveLocked()
}

// Get returns the credential for a document path.
func (v *Vault) Get(document string) (*Entry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.entries[document]
	if !ok {
		return nil, fmt.Errorf("no password stored for %q", document)
	}
	return &entry, nil
}

// List returns summaries sorted by document path. Passwords are never
// included.
func (v *Vault) List() ([]Summary, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	summaries := make([]Summary, 0, len(v.entries))
	for document, entry := range v.entries {
		summaries = append(summaries, Summary{
			Document: document,
			HasNotes: entry.Notes != "",
			Updated:  entry.Updated,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Document < summaries[j].Document
	})

	return summaries, nil
}

// Delete removes the credential for a document path.
func (v *Vault) Delete(document string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.entries[document]; !ok {
		return fmt.Errorf("no password stored for %q", document)
	}
	delete(v.entries, document)
	return v.saveLocked()
}

func (v *Vault) saveLocked() error {
	if v.salt == nil {
		v.salt = make([]byte, saltSize)
		if _, err := rand.Read(v.salt); err != nil {
			return err
		}
	}

	plaintext, err := json.Marshal(v.entries)
	if err != nil {
		return err
	}

	// Fresh nonce on every save.
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return err
	}

	key := deriveKey(v.passphrase, v.salt)
	file := vaultFile{
		Salt:  v.salt,
		Nonce: nonce[:],
		Box:   secretbox.Seal(nil, plaintext, &nonce, &key),
	}

	data, err := json.Marshal(file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(v.path), 0o700); err != nil {
		return err
	}

	// Write-then-rename so a crash never leaves a torn vault.
	tmp := v.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, v.path)
}

func deriveKey(passphrase string, salt []byte) [keySize]byte {
	var key [keySize]byte
	copy(key[:], argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, keySize))
	return key
}
