package models

// KeywordGroup names a set of search keywords tracked as one trend line.
type KeywordGroup struct {
	Name     string   `json:"groupName"` // Name is the label shown for the trend line.
	Keywords []string `json:"keywords"`  // Keywords aggregated into this line.
}

// TrendPoint is one sample of a keyword group's search-volume ratio.
type TrendPoint struct {
	Group  string  `json:"group"`  // Group is the keyword group label.
	Period string  `json:"period"` // Period is the sample date, YYYY-MM-DD.
	Ratio  float64 `json:"ratio"`  // Ratio is the relative search volume, 0-100.
}

// Listing is one normalized local-search hit used to enrich trend results.
type Listing struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	AreaCode string `json:"area_code,omitempty"` // AreaCode is the Tour API region code, empty when unmapped.
	Image    string `json:"image,omitempty"`
	Link     string `json:"link,omitempty"`
}

// TrendingLocation pairs a location keyword with its mean trend score and
// local-search details.
type TrendingLocation struct {
	Location string   `json:"location"`
	Score    float64  `json:"trend_score"`
	Details  *Listing `json:"details,omitempty"`
}

// TrendReport aggregates trending destinations over several segments.
type TrendReport struct {
	CurrentHot []TrendingLocation            `json:"current_hot"`
	ByAge      map[string][]TrendingLocation `json:"age_based"`
	Seasonal   map[string][]TrendingLocation `json:"seasonal"`
}
