package models

import "math"

// earthRadiusMeters is the mean Earth radius used for haversine distances.
const earthRadiusMeters = 6371000.0

// Coordinate represents a geographical point defined by its latitude and longitude.
type Coordinate struct {
	Latitude  float64 `json:"lat"` // Latitude of the geographical point.
	Longitude float64 `json:"lng"` // Longitude of the geographical point.
}

// BoundingBox represents the rectangular extent of an area, such as the
// locality enclosing a coordinate. It is used transiently while deriving
// an adaptive search radius.
type BoundingBox struct {
	NorthEast Coordinate // NorthEast is the upper-right corner of the box.
	SouthWest Coordinate // SouthWest is the lower-left corner of the box.
}

// Size returns the diagonal extent of the box in degrees,
// computed as sqrt(dLat^2 + dLng^2) between its corners.
func (b BoundingBox) Size() float64 {
	dLat := b.NorthEast.Latitude - b.SouthWest.Latitude
	dLng := b.NorthEast.Longitude - b.SouthWest.Longitude

	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// DistanceTo returns the great-circle distance in meters between two
// coordinates using the haversine formula.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	const degToRad = math.Pi / 180

	lat1 := c.Latitude * degToRad
	lat2 := other.Latitude * degToRad
	dLat := (other.Latitude - c.Latitude) * degToRad
	dLng := (other.Longitude - c.Longitude) * degToRad

	haversine := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(haversine))
}
