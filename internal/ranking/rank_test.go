package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/ranking"
)

func scored(id string, score float64) models.ScoredCandidate {
	return models.ScoredCandidate{Candidate: models.Candidate{PlaceID: id}, Score: score}
}

func TestRank(t *testing.T) {
	t.Run("sorts descending by score", func(t *testing.T) {
		input := []models.ScoredCandidate{
			scored("low", 12.5), scored("high", 88.8), scored("mid", 40.0),
		}

		ranked := ranking.Rank(input, 50)

		require.Len(t, ranked, 3)
		assert.Equal(t, "high", ranked[0].PlaceID)
		assert.Equal(t, "mid", ranked[1].PlaceID)
		assert.Equal(t, "low", ranked[2].PlaceID)
	})

	t.Run("ties keep original order", func(t *testing.T) {
		input := []models.ScoredCandidate{
			scored("first", 50), scored("second", 50), scored("third", 50),
		}

		ranked := ranking.Rank(input, 50)

		assert.Equal(t, "first", ranked[0].PlaceID)
		assert.Equal(t, "second", ranked[1].PlaceID)
		assert.Equal(t, "third", ranked[2].PlaceID)
	})

	t.Run("truncates to top N", func(t *testing.T) {
		var input []models.ScoredCandidate
		for i := range 25 {
			input = append(input, scored(string(rune('a'+i)), float64(i)))
		}

		ranked := ranking.Rank(input, ranking.TopHotels)

		require.Len(t, ranked, ranking.TopHotels)
		assert.InEpsilon(t, 24.0, ranked[0].Score, 1e-9)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := []models.ScoredCandidate{scored("a", 1), scored("b", 2)}

		_ = ranking.Rank(input, 50)

		assert.Equal(t, "a", input[0].PlaceID)
	})
}
