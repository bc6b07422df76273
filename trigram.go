package presskit

import (
	"math"
	"sort"
	"strings"
)

// MinSimilarity is the inclusive similarity cut-off (in percent) below
// which vocabulary matches are dropped. The threshold is a design
// constant of the matching algorithm, not a tunable default: callers that
// need a stronger signal apply their own higher threshold on top.
const MinSimilarity = 49

// Match reports how strongly a candidate string resembles one vocabulary
// token. Matches is the raw count of shared trigrams; Similarity is
// Matches over the token's total trigram count, in percent, rounded to
// the nearest integer.
type Match struct {
	Token      string
	Matches    int
	Similarity int
}

// Vocabulary is a fixed set of reference classification tokens with a
// precomputed trigram index. It is immutable after construction and safe
// to share across concurrent extraction calls.
type Vocabulary struct {
	tokens []string
	totals []int            // trigram count per token
	index  map[string][]int // trigram -> token indices containing it
}

// NewVocabulary builds a trigram index over the given tokens. Tokens are
// case-normalized and deduplicated; inserting a duplicate is a no-op.
// Empty or whitespace-only tokens are ignored.
func NewVocabulary(tokens []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string][]int)}
	seen := make(map[string]bool)

	for _, token := range tokens {
		normalized := strings.ToUpper(strings.Join(strings.Fields(token), " "))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		idx := len(v.tokens)
		grams := trigrams(normalized)
		v.tokens = append(v.tokens, normalized)
		v.totals = append(v.totals, len(grams))

		for _, gram := range grams {
			if !containsIndex(v.index[gram], idx) {
				v.index[gram] = append(v.index[gram], idx)
			}
		}
	}

	return v
}

// Tokens returns the normalized vocabulary tokens in insertion order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Score computes fuzzy containment between the candidate and every
// vocabulary token. Results with similarity below MinSimilarity are
// dropped; the rest are sorted descending by raw match count (ties keep
// vocabulary order). An empty or whitespace-only candidate yields nil,
// never an error.
func (v *Vocabulary) Score(candidate string) []Match {
	if strings.TrimSpace(candidate) == "" {
		return nil
	}

	counts := make([]int, len(v.tokens))
	for _, gram := range trigrams(strings.ToUpper(candidate)) {
		for _, idx := range v.index[gram] {
			counts[idx]++
		}
	}

	var matches []Match
	for i, count := range counts {
		if count == 0 || v.totals[i] == 0 {
			continue
		}
		similarity := int(math.Round(float64(count) / float64(v.totals[i]) * 100))
		if similarity < MinSimilarity {
			continue
		}
		matches = append(matches, Match{
			Token:      v.tokens[i],
			Matches:    count,
			Similarity: similarity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Matches > matches[j].Matches
	})

	return matches
}

// trigrams slides a 3-byte window over every word of s, with each word
// padded by two leading and two trailing spaces so word boundaries
// produce their own trigrams.
func trigrams(s string) []string {
	var grams []string
	for _, word := range strings.Fields(s) {
		padded := "  " + word + "  "
		for i := 0; i+3 <= len(padded); i++ {
			grams = append(grams, padded[i:i+3])
		}
	}
	return grams
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}
