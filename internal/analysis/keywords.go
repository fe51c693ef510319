package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 30

const minKeywordLen = 3

// stopwords is a closed list of common function words excluded from
// keyword extraction. Read-only, safe to share across requests.
var stopwords = map[string]struct{}{
	"and": {}, "the": {}, "a": {}, "an": {}, "to": {}, "of": {},
	"for": {}, "with": {}, "in": {}, "on": {}, "or": {}, "by": {},
	"is": {}, "are": {}, "as": {}, "be": {}, "at": {}, "from": {},
}

var (
	lineBreaksRe = regexp.MustCompile(`[\r\n]+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
)

// Normalize canonicalizes text for keyword comparison: line breaks and
// punctuation become spaces, everything is lowercased. Total and pure.
func Normalize(s string) string {
	s = lineBreaksRe.ReplaceAllString(s, " ")
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// ExtractKeywords returns up to 30 distinct keywords from text, ordered by
// descending frequency with ties broken by first occurrence. Tokens shorter
// than three characters and stopwords are dropped. Empty input yields an
// empty set.
func ExtractKeywords(text string) []string {
	words := strings.Fields(Normalize(text))

	freqs := make(map[string]int)
	order := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < minKeywordLen {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, seen := freqs[w]; !seen {
			order = append(order, w)
		}
		freqs[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freqs[order[i]] > freqs[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
