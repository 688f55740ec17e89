package ports

import (
	"context"
	"io"
	"time"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

// DocumentUploader is the inbound contract for upload orchestration.
type DocumentUploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*domain.Document, error)
}

// CatalogQuerier is the inbound contract for the read operations over the
// catalog.
type CatalogQuerier interface {
	List(ctx context.Context) []domain.Document
	Sort(ctx context.Context, descending bool) ([]domain.Document, time.Duration)
	Search(ctx context.Context, keyword string) ([]domain.SearchMatch, time.Duration)
	Classify(ctx context.Context, retrain bool) ([]domain.ClassifiedDocument, bool, time.Duration)
	Categories(ctx context.Context) []string
}
