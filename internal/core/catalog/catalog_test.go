package catalog

import (
	"strings"
	"testing"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

func seedCatalog(titles ...string) *Catalog {
	c := New()
	for _, title := range titles {
		c.Append(domain.Document{Title: title, Content: "content of " + title})
	}
	return c
}

func titlesOf(docs []domain.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Title
	}
	return out
}

func equalTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAppendGrowsCatalogAndKeepsDuplicates(t *testing.T) {
	c := New()
	doc := domain.Document{Title: "report", Path: "/tmp/report.pdf", Size: 42}

	c.Append(doc)
	c.Append(doc)

	if c.Len() != 2 {
		t.Fatalf("expected 2 records after duplicate append, got %d", c.Len())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := seedCatalog("a", "b")

	snap := c.Snapshot()
	snap[0].Title = "mutated"

	if c.Snapshot()[0].Title != "a" {
		t.Fatalf("mutating a snapshot must not affect the catalog")
	}
}

func TestSortAscendingIsIdempotent(t *testing.T) {
	c := seedCatalog("cherry", "apple", "banana")

	first, _ := c.Sort(false)
	second, _ := c.Sort(false)

	if !equalTitles(titlesOf(first), []string{"apple", "banana", "cherry"}) {
		t.Fatalf("unexpected ascending order: %v", titlesOf(first))
	}
	if !equalTitles(titlesOf(first), titlesOf(second)) {
		t.Fatalf("sorting twice changed the order: %v vs %v", titlesOf(first), titlesOf(second))
	}
}

func TestSortDescendingReversesDistinctTitles(t *testing.T) {
	c := seedCatalog("beta", "alpha", "gamma")

	asc, _ := c.Sort(false)
	desc, _ := c.Sort(true)

	n := len(asc)
	for i := 0; i < n; i++ {
		if asc[i].Title != desc[n-1-i].Title {
			t.Fatalf("descending order is not the reverse of ascending: %v vs %v",
				titlesOf(asc), titlesOf(desc))
		}
	}
}

func TestSortIsStableForEqualTitles(t *testing.T) {
	c := New()
	c.Append(domain.Document{Title: "same", Content: "first"})
	c.Append(domain.Document{Title: "same", Content: "second"})

	docs, _ := c.Sort(false)
	if docs[0].Content != "first" || docs[1].Content != "second" {
		t.Fatalf("equal titles must keep insertion order, got %q then %q",
			docs[0].Content, docs[1].Content)
	}
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	c := New()
	c.Append(domain.Document{Title: "A", Content: "Hello World"})
	c.Append(domain.Document{Title: "B", Content: "goodbye"})

	matches, _ := c.Search("hello")
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(matches))
	}
	if matches[0].Document.Title != "A" {
		t.Fatalf("expected document A, got %s", matches[0].Document.Title)
	}
}

func TestSearchHighlightsEveryCasingOfTheKeyword(t *testing.T) {
	c := New()
	c.Append(domain.Document{Title: "A", Content: "Go is great. GO is fast. I like go."})

	matches, _ := c.Search("go")
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	highlighted := matches[0].Highlighted
	for _, want := range []string{"<mark>Go</mark>", "<mark>GO</mark>", "<mark>go</mark>"} {
		if !strings.Contains(highlighted, want) {
			t.Fatalf("expected %s in highlighted content, got %q", want, highlighted)
		}
	}
}

func TestSearchLeavesOriginalContentUntouched(t *testing.T) {
	c := New()
	c.Append(domain.Document{Title: "A", Content: "needle in a haystack"})

	matches, _ := c.Search("needle")
	if matches[0].Document.Content != "needle in a haystack" {
		t.Fatalf("base record content was mutated: %q", matches[0].Document.Content)
	}
	if !strings.Contains(matches[0].Highlighted, "<mark>needle</mark>") {
		t.Fatalf("expected highlight marker, got %q", matches[0].Highlighted)
	}
}

func TestSearchEmptyKeywordMatchesNothing(t *testing.T) {
	c := seedCatalog("a", "b")

	matches, _ := c.Search("")
	if len(matches) != 0 {
		t.Fatalf("expected no matches for empty keyword, got %d", len(matches))
	}
}

func TestSearchOnEmptyCatalog(t *testing.T) {
	c := New()

	matches, _ := c.Search("anything")
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}
