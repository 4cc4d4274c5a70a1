package models

// Candidate is one raw search hit representing a place or a hotel before
// scoring. PlaceID is the provider-assigned unique identifier: two candidates
// with the same PlaceID are the same real-world entity and must collapse to
// one during deduplication.
type Candidate struct {
	PlaceID        string     `json:"place_id"`              // PlaceID is the provider-assigned unique identifier.
	Name           string     `json:"name"`                  // Name is the display name of the place.
	Location       Coordinate `json:"location"`              // Location is the geographical position of the place.
	Rating         float64    `json:"rating"`                // Rating in [0,5], zero when the provider omits it.
	ReviewCount    int        `json:"review_count"`          // ReviewCount is the total number of user ratings.
	CategoryTag    string     `json:"category_tag"`          // CategoryTag is the search type that produced this hit.
	PriceLevel     *int       `json:"price_level,omitempty"` // PriceLevel in [0,4], nil when the provider omits it.
	PhotoReference string     `json:"photo_reference,omitempty"`
	DistanceMeters float64    `json:"distance_meters,omitempty"` // DistanceMeters from the search center, hotels only.
}

// ScoredCandidate is a Candidate annotated with its composite relevance score.
// Disqualified candidates carry the sentinel score -1 and never appear in
// ranked output.
type ScoredCandidate struct {
	Candidate

	Score float64 `json:"score"` // Score is the composite relevance score.
}
