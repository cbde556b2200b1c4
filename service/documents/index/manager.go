// Package docindex provides full-text indexing and search over
// document directories. Indexes are bleve indexes on disk under a
// single root; the Manager tracks which are currently open so callers
// can control memory residency explicitly.
package docindex

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
)

const indexExt = ".bleve"

// maxFileBytes caps how much of a single file gets indexed.
const maxFileBytes = 4 << 20

// indexableExts are the file types treated as text-bearing documents.
var indexableExts = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true,
	".html": true, ".htm": true, ".xml": true, ".json": true,
	".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".csv": true, ".tsv": true, ".log": true,
	".go": true, ".py": true, ".js": true, ".ts": true, ".cs": true,
	".java": true, ".rb": true, ".sh": true, ".sql": true,
}

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Manager owns the index root directory and the set of open indexes.
type Manager struct {
	root string

	mu   sync.Mutex
	open map[string]bleve.Index
}

// NewManager creates the root directory if needed.
func NewManager(root string) (*Manager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create index root: %w", err)
	}

	return &Manager{
		root: root,
		open: make(map[string]bleve.Index),
	}, nil
}

// Build creates (or rebuilds) the named index from every indexable
// file under sourceDir. The finished index is left loaded.
func (m *Manager) Build(ctx context.Context, name, sourceDir string) (*BuildResult, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("invalid index name %q: use letters, digits, '-' and '_'", name)
	}
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory", sourceDir)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Rebuild replaces any previous index of the same name.
	if idx, ok := m.open[name]; ok {
		idx.Close()
		delete(m.open, name)
	}
	path := m.indexPath(name)
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("failed to remove previous index: %w", err)
	}

	idx, err := bleve.New(path, bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	start := time.Now()
	result := &BuildResult{
		BuildID:   uuid.NewString(),
		Index:     name,
		SourceDir: sourceDir,
	}

	batch := idx.NewBatch()
	walkErr := filepath.WalkDir(sourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if !indexableExts[strings.ToLower(filepath.Ext(p))] {
			result.SkippedFiles++
			return nil
		}

		doc, err := readDocument(sourceDir, p, d)
		if err != nil {
			result.SkippedFiles++
			return nil
		}
		if err := batch.Index(doc.Path, doc); err != nil {
			return err
		}
		result.Documents++

		// Flush periodically to bound batch memory.
		if batch.Size() >= 256 {
			if err := idx.Batch(batch); err != nil {
				return err
			}
			batch.Reset()
		}
		return nil
	})
	if walkErr != nil {
		idx.Close()
		os.RemoveAll(path)
		return nil, walkErr
	}
	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			idx.Close()
			os.RemoveAll(path)
			return nil, err
		}
	}

	m.open[name] = idx
	result.Elapsed = time.Since(start) / time.Millisecond
	return result, nil
}

// Load opens the named index into memory. Loading an already-loaded
// index is a no-op.
func (m *Manager) Load(name string) (*Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, err := m.loadLocked(name)
	if err != nil {
		return nil, err
	}

	return m.infoLocked(name, idx)
}

// Unload closes the named index, releasing its memory. The on-disk
// files stay.
func (m *Manager) Unload(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.open[name]
	if !ok {
		return fmt.Errorf("index %q is not loaded", name)
	}
	delete(m.open, name)
	return idx.Close()
}

// List enumerates every index under the root.
func (m *Manager) List() ([]Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, e := range entries {
		if !e.IsDir() || !strings.HasSuffix(e.Name(), indexExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), indexExt)
		info := Info{
			Name:      name,
			Path:      m.indexPath(name),
			SizeBytes: dirSize(m.indexPath(name)),
		}
		if idx, ok := m.open[name]; ok {
			info.Loaded = true
			if count, err := idx.DocCount(); err == nil {
				info.DocCount = &count
			}
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Delete unloads and removes the named index.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx, ok := m.open[name]; ok {
		idx.Close()
		delete(m.open, name)
	}

	path := m.indexPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("index %q does not exist", name)
	}
	return os.RemoveAll(path)
}

// Search runs a match query against the named index, loading it first
// if necessary. fuzziness > 0 allows that edit distance per term.
func (m *Manager) Search(ctx context.Context, name, query string, fuzziness, limit int) (*SearchResult, error) {
	m.mu.Lock()
	idx, err := m.loadLocked(name)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	match := bleve.NewMatchQuery(query)
	if fuzziness > 0 {
		match.SetFuzziness(fuzziness)
	}

	req := bleve.NewSearchRequestOptions(match, limit, 0, false)
	req.Highlight = bleve.NewHighlight()

	start := time.Now()
	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Index:     name,
		Query:     query,
		TotalHits: res.Total,
		Took:      time.Since(start) / time.Millisecond,
	}
	for _, hit := range res.Hits {
		h := Hit{
			Path:  hit.ID,
			Score: hit.Score,
		}
		for _, fragments := range hit.Fragments {
			h.Snippets = append(h.Snippets, fragments...)
		}
		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// IndexDocument adds or replaces a single document in the named
// index, loading it first if necessary.
func (m *Manager) IndexDocument(name string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, err := m.loadLocked(name)
	if err != nil {
		return err
	}
	return idx.Index(doc.Path, doc)
}

// Close unloads every open index.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, idx := range m.open {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.open, name)
	}
	return firstErr
}

func (m *Manager) loadLocked(name string) (bleve.Index, error) {
	if idx, ok := m.open[name]; ok {
		return idx, nil
	}

	path := m.indexPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("index %q does not exist", name)
	}

	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index %q: %w", name, err)
	}
	m.open[name] = idx
	return idx, nil
}

func (m *Manager) infoLocked(name string, idx bleve.Index) (*Info, error) {
	count, err := idx.DocCount()
	if err != nil {
		return nil, err
	}
	return &Info{
		Name:      name,
		Path:      m.indexPath(name),
		DocCount:  &count,
		Loaded:    true,
		SizeBytes: dirSize(m.indexPath(name)),
	}, nil
}

func (m *Manager) indexPath(name string) string {
	return filepath.Join(m.root, name+indexExt)
}

func readDocument(sourceDir, path string, d fs.DirEntry) (*Document, error) {
	fileInfo, err := d.Info()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxFileBytes))
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		rel = path
	}

	return &Document{
		Path:     filepath.ToSlash(rel),
		Name:     d.Name(),
		Body:     string(body),
		Modified: fileInfo.ModTime(),
		Size:     fileInfo.Size(),
	}, nil
}

func dirSize(path string) int64 {
	var total int64
	filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
