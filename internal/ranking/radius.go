package ranking

import (
	"context"
	"log/slog"

	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/places"
)

// Radius tiers in meters, selected from the size of the enclosing locality.
const (
	// DefaultRadius is used whenever the locality size cannot be determined.
	DefaultRadius uint = 30000

	largeRadius uint = 50000
	smallRadius uint = 15000

	largeSizeThreshold  = 0.5
	mediumSizeThreshold = 0.2
)

// RadiusEstimator derives an adaptive search radius from the bounding box of
// the locality enclosing a coordinate.
type RadiusEstimator struct {
	geocoder places.Geocoder // geocoder resolves the enclosing locality
	log      *slog.Logger
}

// NewRadiusEstimator creates a radius estimator backed by the given geocoder.
func NewRadiusEstimator(geocoder places.Geocoder, log *slog.Logger) *RadiusEstimator {
	return &RadiusEstimator{geocoder: geocoder, log: log}
}

// Estimate returns a usable search radius for the given center. Lookup
// failures and coordinates outside any locality fall back to DefaultRadius;
// this never fails.
func (re *RadiusEstimator) Estimate(ctx context.Context, center models.Coordinate) uint {
	box, err := re.geocoder.ReverseGeocode(ctx, center)
	if err != nil {
		re.log.WarnContext(ctx, "Could not resolve locality, using default radius",
			"error", err, "radius", DefaultRadius)
		return DefaultRadius
	}

	size := box.Size()
	radius := radiusForSize(size)
	re.log.DebugContext(ctx, "Estimated search radius", "locality_size", size, "radius", radius)

	return radius
}

// radiusForSize maps a locality size to a radius tier. Boundary values round
// down to the next tier.
func radiusForSize(size float64) uint {
	switch {
	case size > largeSizeThreshold:
		return largeRadius
	case size > mediumSizeThreshold:
		return DefaultRadius
	default:
		return smallRadius
	}
}
