package dococr

import "context"

type service struct {
	defaultLanguage string
}

type OCRService interface {
	ExtractText(ctx context.Context, req ExtractRequest) (*ExtractResult, error)
	ExtractDirectory(ctx context.Context, dir, language string) (*BatchResult, error)
}

// ExtractRequest describes one OCR extraction.
type ExtractRequest struct {
	ImagePath string
	Language  string // Tesseract language code, e.g. "eng", "deu"
	Whitelist string // optional character whitelist
}

// ExtractResult is the recognized text of one image.
type ExtractResult struct {
	ImagePath string `json:"image_path"`
	Language  string `json:"language"`
	Text      string `json:"text"`
	Chars     int    `json:"chars"`
}

// BatchResult aggregates a directory extraction.
type BatchResult struct {
	Dir     string          `json:"dir"`
	Results []ExtractResult `json:"results"`
	Failed  []string        `json:"failed,omitempty"`
}
