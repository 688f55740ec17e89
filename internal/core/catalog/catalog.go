// Package catalog holds the in-memory ordered document list and its sort
// and search operations. All state lives behind one mutex: mutation is
// serialized and no caller ever observes a partially sorted list.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

type Catalog struct {
	mu   sync.Mutex
	docs []domain.Document
}

func New() *Catalog {
	return &Catalog{}
}

// Append adds a record to the end of the list. Duplicate titles and paths
// are allowed; uploading the same file twice yields two records.
func (c *Catalog) Append(doc domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
}

func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

// Snapshot returns a copy of the current list in its current order.
func (c *Catalog) Snapshot() []domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

func (c *Catalog) copyLocked() []domain.Document {
	out := make([]domain.Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Sort reorders the list in place by title, lexicographically, keeping the
// relative order of equal titles. It returns the reordered snapshot and the
// measured wall-clock duration of the sort itself.
func (c *Catalog) Sort(descending bool) ([]domain.Document, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	sort.SliceStable(c.docs, func(i, j int) bool {
		if descending {
			return c.docs[i].Title > c.docs[j].Title
		}
		return c.docs[i].Title < c.docs[j].Title
	})
	elapsed := time.Since(start)

	return c.copyLocked(), elapsed
}

// Search scans every document's content for the keyword, case-insensitively.
// Each match carries a highlighted copy of the content in which every
// occurrence of the keyword, in any casing, is wrapped in <mark> markers.
// An empty keyword matches nothing.
func (c *Catalog) Search(keyword string) ([]domain.SearchMatch, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	matches := []domain.SearchMatch{}
	if keyword == "" {
		return matches, time.Since(start)
	}

	needle := strings.ToLower(keyword)
	for _, doc := range c.docs {
		if !strings.Contains(strings.ToLower(doc.Content), needle) {
			continue
		}
		matches = append(matches, domain.SearchMatch{
			Document:    doc,
			Highlighted: highlight(doc.Content, needle),
		})
	}
	return matches, time.Since(start)
}

// highlight wraps every case-insensitive occurrence of needle (already
// lowercased) in <mark> markers, preserving the original casing of the
// matched text.
func highlight(content, needle string) string {
	lower := strings.ToLower(content)
	if len(lower) != len(content) {
		// Lowercasing shifted byte offsets (non-ASCII case pair); fall back
		// to exact-case replacement rather than slice at wrong boundaries.
		return strings.ReplaceAll(content, needle, "<mark>"+needle+"</mark>")
	}
	var b strings.Builder
	b.Grow(len(content) + 16*len(needle))

	pos := 0
	for {
		idx := strings.Index(lower[pos:], needle)
		if idx < 0 {
			b.WriteString(content[pos:])
			return b.String()
		}
		hit := pos + idx
		end := hit + len(needle)
		b.WriteString(content[pos:hit])
		b.WriteString("<mark>")
		b.WriteString(content[hit:end])
		b.WriteString("</mark>")
		pos = end
	}
}
