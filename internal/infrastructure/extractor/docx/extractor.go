// Package docx extracts title and text from DOCX uploads.
package docx

import (
	"context"
	"fmt"
	"os"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract joins every paragraph's text with newlines. The title is the
// first non-empty paragraph, else the filename. A document with no
// extractable paragraphs degrades to empty content with a nil error.
func (e *Extractor) Extract(_ context.Context, localPath, filename string) (string, string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", "", domain.WrapError(domain.ErrExtraction, "open docx", fmt.Errorf("%s: %w", filename, err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", "", domain.WrapError(domain.ErrExtraction, "stat docx", fmt.Errorf("%s: %w", filename, err))
	}

	doc, err := godocx.Parse(f, info.Size())
	if err != nil {
		return "", "", domain.WrapError(domain.ErrExtraction, "parse docx", fmt.Errorf("%s: %w", filename, err))
	}

	paragraphs := make([]string, 0, 32)
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*godocx.Paragraph); ok {
			paragraphs = append(paragraphs, paragraph.String())
		}
	}

	title := filename
	for _, p := range paragraphs {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			title = trimmed
			break
		}
	}

	return title, strings.Join(paragraphs, "\n"), nil
}
