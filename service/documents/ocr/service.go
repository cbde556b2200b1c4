// Package dococr wraps Tesseract (via gosseract) for text extraction
// from images.
package dococr

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true,
	".tiff": true, ".bmp": true, ".gif": true, ".webp": true,
}

func NewService(defaultLanguage string) *service {
	if defaultLanguage == "" {
		defaultLanguage = "eng"
	}
	return &service{defaultLanguage: defaultLanguage}
}

func (s *service) ExtractText(ctx context.Context, req ExtractRequest) (*ExtractResult, error) {
	if _, err := os.Stat(req.ImagePath); err != nil {
		return nil, fmt.Errorf("image file: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	language := req.Language
	if language == "" {
		language = s.defaultLanguage
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language %q: %w", language, err)
	}
	if req.Whitelist != "" {
		if err := client.SetWhitelist(req.Whitelist); err != nil {
			return nil, fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := client.SetImage(req.ImagePath); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	text = strings.TrimSpace(text)

	return &ExtractResult{
		ImagePath: req.ImagePath,
		Language:  language,
		Text:      text,
		Chars:     len(text),
	}, nil
}

// ExtractDirectory runs OCR over every image file directly under dir.
// Per-file failures are reported, not fatal.
func (s *service) ExtractDirectory(ctx context.Context, dir, language string) (*BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{Dir: dir}
	for _, e := range entries {
		if e.IsDir() || !isImage(e) {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		path := filepath.Join(dir, e.Name())
		extracted, err := s.ExtractText(ctx, ExtractRequest{
			ImagePath: path,
			Language:  language,
		})
		if err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		result.Results = append(result.Results, *extracted)
	}

	return result, nil
}

func isImage(e fs.DirEntry) bool {
	return imageExts[strings.ToLower(filepath.Ext(e.Name()))]
}
