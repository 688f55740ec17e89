package classifier

import (
	"hash/fnv"
	"strings"
	"unicode"
)

// vectorDim is the size of the hashed feature space. Token hashes are
// folded into this range, trading a small collision rate for a fixed-size
// model.
const vectorDim = 1 << 12

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "that": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {}, "this": {}, "not": {}, "no": {},
}

// vectorize maps document text to hashed term counts over vectorDim buckets.
func vectorize(text string) map[int]float64 {
	counts := make(map[int]float64, 64)
	for _, token := range tokenize(text) {
		counts[hashToken(token)]++
	}
	return counts
}

func hashToken(token string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	return int(h.Sum32() % vectorDim)
}

// tokenize lower-cases the input, splits on non-alphanumeric boundaries,
// and drops single runes and stop-words.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, 32)
	var b strings.Builder
	flush := func() {
		if b.Len() < 2 {
			b.Reset()
			return
		}
		token := b.String()
		b.Reset()
		if _, stop := stopWords[token]; stop {
			return
		}
		out = append(out, token)
	}
	for _, r := range s {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return out
}
