package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripcompass/tripcompass/internal/service"
)

func TestThemes(t *testing.T) {
	themes := service.Themes()

	assert.Len(t, themes, 8)
	assert.Equal(t, "museum", themes[0])

	for _, theme := range themes {
		assert.NotEmpty(t, service.PlaceTypesFor([]string{theme}), "theme %q must expand", theme)
	}
}

func TestPlaceTypesFor(t *testing.T) {
	t.Run("flattens in theme order", func(t *testing.T) {
		types := service.PlaceTypesFor([]string{"museum", "art"})

		assert.Equal(t, []string{"museum", "art_gallery"}, types)
	})

	t.Run("unknown themes are ignored", func(t *testing.T) {
		types := service.PlaceTypesFor([]string{"astronomy", "museum"})

		assert.Equal(t, []string{"museum"}, types)
	})

	t.Run("no themes, no types", func(t *testing.T) {
		assert.Empty(t, service.PlaceTypesFor(nil))
	})
}
