// Package classifier assigns a best-effort category to every catalog
// document. The model is trained lazily on the catalog snapshot given to the
// first classification call, with labels assigned by cycling through the
// fixed category list in catalog order. Those labels are synthetic
// scaffolding, not ground truth: the predictions do not reflect real
// semantic categorization, and callers are expected to treat them as such.
package classifier

import (
	"math"
	"sync"

	"github.com/kirillkom/doc-catalog/internal/core/domain"
)

type Classifier struct {
	mu         sync.Mutex
	categories []string
	model      *bayesModel
}

// bayesModel is a multinomial naive Bayes fit over hashed term counts.
type bayesModel struct {
	classDocs  []float64
	termCounts []map[int]float64
	termTotals []float64
	totalDocs  float64
}

func New(categories []string) *Classifier {
	return &Classifier{categories: categories}
}

func (c *Classifier) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Classifier) Trained() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model != nil
}

// Invalidate drops the trained model. The next classification call retrains
// against whatever snapshot it receives.
func (c *Classifier) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = nil
}

// ClassifyAll predicts a category for every document in the snapshot, in
// snapshot order. An empty snapshot yields an empty result. Training, when
// it happens, and the predictions that follow run under one lock against
// the same snapshot. The returned flag reports whether this call trained
// the model; a model trained by an earlier call is reused as-is even if the
// snapshot has since grown.
func (c *Classifier) ClassifyAll(docs []domain.Document) ([]domain.ClassifiedDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := []domain.ClassifiedDocument{}
	if len(docs) == 0 {
		return results, false
	}

	trained := false
	if c.model == nil {
		c.model = c.fit(docs)
		trained = true
	}

	for _, doc := range docs {
		results = append(results, domain.ClassifiedDocument{
			Document: doc,
			Category: c.categories[c.model.predict(vectorize(documentText(doc)))],
		})
	}
	return results, trained
}

// fit builds the model from the snapshot, labelling document i with
// category i mod len(categories).
func (c *Classifier) fit(docs []domain.Document) *bayesModel {
	k := len(c.categories)
	m := &bayesModel{
		classDocs:  make([]float64, k),
		termCounts: make([]map[int]float64, k),
		termTotals: make([]float64, k),
		totalDocs:  float64(len(docs)),
	}
	for label := 0; label < k; label++ {
		m.termCounts[label] = make(map[int]float64)
	}
	for i, doc := range docs {
		label := i % k
		m.classDocs[label]++
		for term, count := range vectorize(documentText(doc)) {
			m.termCounts[label][term] += count
			m.termTotals[label] += count
		}
	}
	return m
}

// predict returns the label with the highest log posterior, with Laplace
// smoothing over the hashed vocabulary.
func (m *bayesModel) predict(features map[int]float64) int {
	best := 0
	bestScore := math.Inf(-1)
	for label := range m.classDocs {
		if m.classDocs[label] == 0 {
			continue
		}
		score := math.Log(m.classDocs[label] / m.totalDocs)
		denom := m.termTotals[label] + vectorDim
		for term, count := range features {
			score += count * math.Log((m.termCounts[label][term]+1)/denom)
		}
		if score > bestScore {
			bestScore = score
			best = label
		}
	}
	return best
}

func documentText(doc domain.Document) string {
	if doc.Content == "" {
		return doc.Title
	}
	return doc.Title + " " + doc.Content
}
