package docindex

import (
	"context"
	"time"
)

// Document is one indexed file.
type Document struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Body     string    `json:"body"`
	Modified time.Time `json:"modified"`
	Size     int64     `json:"size_bytes"`
}

// BuildResult summarizes one index build.
type BuildResult struct {
	BuildID      string        `json:"build_id"`
	Index        string        `json:"index"`
	SourceDir    string        `json:"source_dir"`
	Documents    int           `json:"documents"`
	SkippedFiles int           `json:"skipped_files"`
	Elapsed      time.Duration `json:"elapsed_ms"`
}

// Info describes one index on disk and whether it is resident in
// memory. DocCount is only known while the index is loaded.
type Info struct {
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	DocCount  *uint64 `json:"doc_count,omitempty"`
	Loaded    bool    `json:"loaded"`
	SizeBytes int64   `json:"size_bytes"`
}

// Hit is one search match with highlighted snippets.
type Hit struct {
	Path     string   `json:"path"`
	Score    float64  `json:"score"`
	Snippets []string `json:"snippets,omitempty"`
}

// SearchResult is the outcome of one query.
type SearchResult struct {
	Index     string        `json:"index"`
	Query     string        `json:"query"`
	TotalHits uint64        `json:"total_hits"`
	Hits      []Hit         `json:"hits"`
	Took      time.Duration `json:"took_ms"`
}

// Manager owns index lifecycle and residency.
type ManagerService interface {
	Build(ctx context.Context, name, sourceDir string) (*BuildResult, error)
	Load(name string) (*Info, error)
	Unload(name string) error
	List() ([]Info, error)
	Delete(name string) error
	Search(ctx context.Context, name, query string, fuzziness, limit int) (*SearchResult, error)
	IndexDocument(name string, doc Document) error
	Close() error
}
