package ranking

import "github.com/tripcompass/tripcompass/internal/models"

// Deduplicate collapses a flat candidate sequence into one entry per place
// identifier. When the same identifier recurs, the later occurrence in input
// order overwrites the earlier one, so the surviving category tag and rating
// snapshot belong to whichever fetch processed that place last. This is a
// deliberate simplification, not a merge.
//
// The returned slice keeps the position of each identifier's first
// occurrence, so downstream stable sorting breaks ties deterministically.
func Deduplicate(candidates []models.Candidate) []models.Candidate {
	index := make(map[string]int, len(candidates))
	unique := make([]models.Candidate, 0, len(candidates))

	for _, candidate := range candidates {
		if pos, seen := index[candidate.PlaceID]; seen {
			unique[pos] = candidate
			continue
		}
		index[candidate.PlaceID] = len(unique)
		unique = append(unique, candidate)
	}

	return unique
}
