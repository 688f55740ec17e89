package usecase

import (
	"context"
	"time"

	"github.com/kirillkom/doc-catalog/internal/core/catalog"
	"github.com/kirillkom/doc-catalog/internal/core/classifier"
	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

// CatalogQueryUseCase exposes the read operations over the catalog: list,
// sort, search, and classification.
type CatalogQueryUseCase struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
}

func NewCatalogQueryUseCase(
	cat *catalog.Catalog,
	cls *classifier.Classifier,
) *CatalogQueryUseCase {
	return &CatalogQueryUseCase{catalog: cat, classifier: cls}
}

func (uc *CatalogQueryUseCase) List(_ context.Context) []domain.Document {
	return uc.catalog.Snapshot()
}

func (uc *CatalogQueryUseCase) Sort(_ context.Context, descending bool) ([]domain.Document, time.Duration) {
	return uc.catalog.Sort(descending)
}

func (uc *CatalogQueryUseCase) Search(_ context.Context, keyword string) ([]domain.SearchMatch, time.Duration) {
	return uc.catalog.Search(keyword)
}

// Categories returns the fixed closed category set predictions are drawn
// from.
func (uc *CatalogQueryUseCase) Categories(_ context.Context) []string {
	return uc.classifier.Categories()
}

// Classify labels every document currently in the catalog, in catalog
// order. With retrain set, the stale model is dropped first so training
// runs against the current snapshot. The flag in the result reports whether
// this call trained the model.
func (uc *CatalogQueryUseCase) Classify(_ context.Context, retrain bool) ([]domain.ClassifiedDocument, bool, time.Duration) {
	if retrain {
		uc.classifier.Invalidate()
	}
	start := time.Now()
	results, trained := uc.classifier.ClassifyAll(uc.catalog.Snapshot())
	return results, trained, time.Since(start)
}
