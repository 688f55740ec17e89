// Package pdf extracts title and text from PDF uploads.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract concatenates the plain text of every page; a page that yields no
// text contributes an empty string rather than failing the document. The
// title comes from the Info dictionary when present, else the filename.
func (e *Extractor) Extract(_ context.Context, localPath, filename string) (string, string, error) {
	f, reader, err := pdf.Open(localPath)
	if err != nil {
		return "", "", domain.WrapError(domain.ErrExtraction, "open pdf", fmt.Errorf("%s: %w", filename, err))
	}
	defer f.Close()

	title := strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text())
	if title == "" {
		title = filename
	}

	var content strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Page-level degrade: this page contributes nothing.
			continue
		}
		content.WriteString(text)
	}

	return title, content.String(), nil
}
