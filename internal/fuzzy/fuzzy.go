// Package fuzzy filters labeled candidates by fuzzy subsequence match.
package fuzzy

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Candidate is a label to match against plus the value it stands for.
type Candidate[T any] struct {
	Label   string
	Payload T
}

// Match is a candidate that survived filtering, with the byte offsets of
// the label runes that matched the query.
type Match[T any] struct {
	Candidate[T]
	Positions []int
	Score     int
}

// labels adapts a candidate slice to fuzzy.Source.
type labels[T any] []Candidate[T]

func (l labels[T]) String(i int) string { return l[i].Label }
func (l labels[T]) Len() int            { return len(l) }

// Filter returns the candidates whose label contains every rune of query,
// in order, ignoring case. Results are ordered by descending score with
// ties kept in input order. An empty query returns all candidates
// unchanged.
func Filter[T any](candidates []Candidate[T], query string) []Candidate[T] {
	matches := FilterMatches(candidates, query)
	out := make([]Candidate[T], len(matches))
	for i, m := range matches {
		out[i] = m.Candidate
	}
	return out
}

// FilterMatches is Filter with match positions, for highlighting.
func FilterMatches[T any](candidates []Candidate[T], query string) []Match[T] {
	if query == "" {
		out := make([]Match[T], len(candidates))
		for i, c := range candidates {
			out[i] = Match[T]{Candidate: c}
		}
		return out
	}

	// fuzzy.FindFrom reverses equal-score runs, so sort here.
	found := fuzzy.FindFromNoSort(query, labels[T](candidates))
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})

	out := make([]Match[T], len(found))
	for i, f := range found {
		out[i] = Match[T]{
			Candidate: candidates[f.Index],
			Positions: f.MatchedIndexes,
			Score:     f.Score,
		}
	}
	return out
}
