package ranking

import (
	"sort"

	"github.com/tripcompass/tripcompass/internal/models"
)

// Top-N caps applied after sorting.
const (
	TopPlaces = 50
	TopHotels = 10
)

// Rank sorts scored candidates descending by score and truncates to topN.
// The sort is stable, so ties keep their original iteration order.
func Rank(candidates []models.ScoredCandidate, topN int) []models.ScoredCandidate {
	ranked := make([]models.ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
