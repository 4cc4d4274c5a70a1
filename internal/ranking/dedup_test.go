package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/ranking"
)

func TestDeduplicate(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		input := []models.Candidate{
			{PlaceID: "A", ReviewCount: 150, Rating: 4.2, CategoryTag: "museum"},
			{PlaceID: "B", ReviewCount: 50, Rating: 4.9},
			{PlaceID: "A", ReviewCount: 200, Rating: 4.0, CategoryTag: "art_gallery"},
		}

		unique := ranking.Deduplicate(input)

		require.Len(t, unique, 2)
		// A keeps its first position but carries the later snapshot.
		assert.Equal(t, "A", unique[0].PlaceID)
		assert.Equal(t, 200, unique[0].ReviewCount)
		assert.InEpsilon(t, 4.0, unique[0].Rating, 1e-9)
		assert.Equal(t, "art_gallery", unique[0].CategoryTag)
		assert.Equal(t, "B", unique[1].PlaceID)
	})

	t.Run("output never larger than input", func(t *testing.T) {
		input := []models.Candidate{
			{PlaceID: "A"}, {PlaceID: "A"}, {PlaceID: "A"},
		}

		assert.Len(t, ranking.Deduplicate(input), 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ranking.Deduplicate(nil))
	})
}
