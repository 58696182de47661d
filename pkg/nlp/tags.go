package nlp

import (
	"math/rand/v2"
	"slices"
)

// TagPool is the vocabulary uploaded resumes are tagged from.
var TagPool = []string{
	"JavaScript", "React", "Node", "Python", "Data", "SQL", "CSS", "HTML",
	"AWS", "Docker", "Testing", "CI", "UX", "ML", "NLP",
}

// DetectTags returns the pool tags mentioned in text, in pool order.
func DetectTags(text string, pool []string) []string {
	norm := NormalizeText(text)
	out := []string{}
	if norm == "" {
		return out
	}
	for _, tag := range pool {
		for _, v := range TagVariants(tag) {
			if ContainsPhrase(norm, v) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// PickTags returns exactly n distinct tags: detected ones first (trimmed to n),
// then random pool tags. If the pool is too small, fewer are returned.
func PickTags(detected, pool []string, n int, rng *rand.Rand) []string {
	out := make([]string, 0, n)
	for _, t := range detected {
		if len(out) == n {
			return out
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	rest := slices.DeleteFunc(slices.Clone(pool), func(t string) bool { return slices.Contains(out, t) })
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, t := range rest {
		if len(out) == n {
			break
		}
		out = append(out, t)
	}
	return out
}
