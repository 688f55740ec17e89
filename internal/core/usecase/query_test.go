package usecase

import (
	"context"
	"testing"

	"github.com/kirillkom/doc-catalog/internal/core/catalog"
	"github.com/kirillkom/doc-catalog/internal/core/classifier"
	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

func newQueryUC(docs ...domain.Document) *CatalogQueryUseCase {
	cat := catalog.New()
	for _, doc := range docs {
		cat.Append(doc)
	}
	cls := classifier.New([]string{"finance", "legal", "technical"})
	return NewCatalogQueryUseCase(cat, cls)
}

func TestClassifyEmptyCatalogIsNotAnError(t *testing.T) {
	uc := newQueryUC()

	results, trained, _ := uc.Classify(context.Background(), false)
	if len(results) != 0 {
		t.Fatalf("expected empty result for empty catalog, got %d", len(results))
	}
	if trained {
		t.Fatalf("empty catalog must not train the model")
	}
}

func TestClassifyReturnsOneCategoryPerDocument(t *testing.T) {
	uc := newQueryUC(
		domain.Document{Title: "a", Content: "alpha words only"},
		domain.Document{Title: "b", Content: "bravo words only"},
		domain.Document{Title: "c", Content: "charlie words only"},
		domain.Document{Title: "d", Content: "delta words only"},
	)

	results, trained, _ := uc.Classify(context.Background(), false)
	if !trained {
		t.Fatalf("expected training on first classify")
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
}

func TestClassifyRetrainDropsStaleModel(t *testing.T) {
	uc := newQueryUC(domain.Document{Title: "a", Content: "alpha"})

	if _, trained, _ := uc.Classify(context.Background(), false); !trained {
		t.Fatalf("expected initial training")
	}
	if _, trained, _ := uc.Classify(context.Background(), false); trained {
		t.Fatalf("expected stale model reuse without retrain flag")
	}
	if _, trained, _ := uc.Classify(context.Background(), true); !trained {
		t.Fatalf("expected retraining with retrain flag")
	}
}

func TestCategoriesPassThrough(t *testing.T) {
	uc := newQueryUC()

	cats := uc.Categories(context.Background())
	if len(cats) != 3 || cats[0] != "finance" {
		t.Fatalf("expected classifier category set, got %v", cats)
	}
}

func TestSortAndSearchPassThrough(t *testing.T) {
	uc := newQueryUC(
		domain.Document{Title: "b", Content: "two"},
		domain.Document{Title: "a", Content: "one"},
	)

	docs, _ := uc.Sort(context.Background(), false)
	if docs[0].Title != "a" {
		t.Fatalf("expected ascending sort, got %v", docs[0].Title)
	}

	matches, _ := uc.Search(context.Background(), "ONE")
	if len(matches) != 1 || matches[0].Document.Title != "a" {
		t.Fatalf("expected case-insensitive match on document a, got %v", matches)
	}

	if got := len(uc.List(context.Background())); got != 2 {
		t.Fatalf("expected 2 documents listed, got %d", got)
	}
}
