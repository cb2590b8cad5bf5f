package internal

import (
	"slices"
	"strings"
)

// NameLister is an optional interface a NameResolver can implement to
// support "did you mean?" suggestions.
type NameLister interface {
	// Names returns every name the resolver can resolve.
	Names() []string
}

// FindSimilarNames finds names from candidates that are similar to target.
// Returns up to maxSuggestions names, closest first; ties keep candidate order.
// Uses Levenshtein distance with a maximum distance of half the target length.
func FindSimilarNames(target string, candidates []string, maxSuggestions int) []string {
	if len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	maxDistance := max(len(target)/2, MinSuggestionDistance)

	type scored struct {
		name     string
		distance int
	}

	var similar []scored
	targetLower := strings.ToLower(target)
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		dist := levenshteinDistance(targetLower, strings.ToLower(candidate))
		if dist <= maxDistance {
			similar = append(similar, scored{name: candidate, distance: dist})
		}
	}

	slices.SortStableFunc(similar, func(a, b scored) int {
		return a.distance - b.distance
	})

	result := make([]string, 0, min(len(similar), maxSuggestions))
	for i := 0; i < len(similar) && i < maxSuggestions; i++ {
		result = append(result, similar[i].name)
	}
	return result
}

// levenshteinDistance calculates the minimum number of single-rune edits
// required to change a into b
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// two rows are enough
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
