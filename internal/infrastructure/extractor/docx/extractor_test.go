package docx

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	godocx "github.com/fumiama/go-docx"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

func writeDocxFixture(t *testing.T, paragraphs ...string) string {
	t.Helper()

	doc := godocx.New().WithDefaultTheme()
	for _, text := range paragraphs {
		p := doc.AddParagraph()
		if text != "" {
			p.AddText(text)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExtractJoinsParagraphsWithNewlines(t *testing.T) {
	path := writeDocxFixture(t, "Quarterly Summary", "Revenue grew.", "Costs fell.")

	title, content, err := NewExtractor().Extract(context.Background(), path, "summary.docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if title != "Quarterly Summary" {
		t.Fatalf("expected first paragraph as title, got %q", title)
	}
	if !strings.Contains(content, "Quarterly Summary\nRevenue grew.\nCosts fell.") {
		t.Fatalf("expected newline-joined paragraphs, got %q", content)
	}
}

func TestExtractTitleSkipsLeadingEmptyParagraph(t *testing.T) {
	path := writeDocxFixture(t, "", "Actual Title", "Body text.")

	title, content, err := NewExtractor().Extract(context.Background(), path, "report.docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if title != "Actual Title" {
		t.Fatalf("expected first non-empty paragraph as title, got %q", title)
	}
	if !strings.Contains(content, "Actual Title\nBody text.") {
		t.Fatalf("expected paragraph content preserved, got %q", content)
	}
}

func TestExtractTitleFallsBackToFilename(t *testing.T) {
	path := writeDocxFixture(t)

	title, content, err := NewExtractor().Extract(context.Background(), path, "empty.docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if title != "empty.docx" {
		t.Fatalf("expected filename fallback title, got %q", title)
	}
	if strings.TrimSpace(content) != "" {
		t.Fatalf("expected no content for empty document, got %q", content)
	}
}

func TestExtractRejectsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, _, err := NewExtractor().Extract(context.Background(), path, "broken.docx")
	if err == nil {
		t.Fatalf("expected error for unparseable file")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected extraction kind, got %v", err)
	}
}

func TestExtractMissingFileFails(t *testing.T) {
	_, _, err := NewExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.docx"), "absent.docx")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected extraction kind, got %v", err)
	}
}
