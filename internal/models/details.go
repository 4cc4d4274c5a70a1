package models

// Review is a single user review that survived the quality filter.
type Review struct {
	Text         string  `json:"text"`          // Text is the review body.
	Rating       float64 `json:"rating"`        // Rating given by the reviewer.
	RelativeTime string  `json:"relative_time"` // RelativeTime is the provider's human-readable age, e.g. "a month ago".
}

// DetailRecord holds the extended information for one selected candidate.
// It is fetched on demand and never cached across calls.
type DetailRecord struct {
	Name            string     `json:"name"`
	Address         string     `json:"address"`
	Location        Coordinate `json:"location"`
	OpeningHours    []string   `json:"opening_hours"` // OpeningHours is one line per weekday, provider order.
	Rating          float64    `json:"rating"`
	Reviews         []Review   `json:"reviews"` // Reviews filtered for quality, at most three.
	PriceLevel      *int       `json:"price_level,omitempty"`
	PhotoReferences []string   `json:"photo_references"` // PhotoReferences holds at most five opaque references.
	Website         string     `json:"website,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	MapsURL         string     `json:"maps_url,omitempty"`
}
