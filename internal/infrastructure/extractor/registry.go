// Package extractor routes uploads to the extractor for their file type
// and enforces the extension allow-list before any parser runs.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kirillkom/doc-catalog/internal/core/ports"
)

type Registry struct {
	byExtension map[string]ports.TextExtractor
}

func NewRegistry() *Registry {
	return &Registry{byExtension: make(map[string]ports.TextExtractor)}
}

// Register binds an extractor to a lowercase extension without the dot,
// e.g. "pdf".
func (r *Registry) Register(extension string, extractor ports.TextExtractor) {
	r.byExtension[strings.ToLower(extension)] = extractor
}

// ForFilename returns the extractor for the filename's extension, or an
// error when the extension is missing or not allowed.
func (r *Registry) ForFilename(filename string) (ports.TextExtractor, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return nil, fmt.Errorf("filename %q has no extension", filename)
	}
	extractor, ok := r.byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("file type %q is not allowed", ext)
	}
	return extractor, nil
}
