package service

// placeTypesByTheme expands a named travel theme into the provider place
// types searched for it. Unknown themes are ignored.
var placeTypesByTheme = map[string][]string{
	"museum": {"museum"},
	"art":    {"art_gallery"},
	"culture-history": {
		"church", "hindu_temple", "mosque", "synagogue",
		"palace", "historic_site", "archaeological_site", "monument",
	},
	"attractions": {
		"tourist_attraction", "point_of_interest", "landmark",
		"city_hall", "courthouse", "embassy", "town_square",
	},
	"nature-outdoor": {
		"park", "natural_feature", "campground", "beach",
		"rv_park", "picnic_ground", "waterfall", "pier", "marina",
	},
	"food": {
		"restaurant", "cafe", "bar", "bakery",
		"meal_takeaway", "meal_delivery", "ice_cream_shop", "night_club",
	},
	"shopping": {
		"shopping_mall", "department_store", "market", "jewelry_store",
		"shoe_store", "clothing_store", "book_store", "electronics_store",
		"convenience_store", "supermarket",
	},
	"wellness": {
		"spa", "beauty_salon", "amusement_park", "zoo",
		"hot_spring", "hair_care", "massage", "gym",
	},
}

// Themes lists the known theme names in a fixed presentation order.
func Themes() []string {
	return []string{
		"museum", "art", "culture-history", "attractions",
		"nature-outdoor", "food", "shopping", "wellness",
	}
}

// PlaceTypesFor flattens the selected themes into the concatenated list of
// place types to search, preserving theme order.
func PlaceTypesFor(themes []string) []string {
	var types []string
	for _, theme := range themes {
		types = append(types, placeTypesByTheme[theme]...)
	}

	return types
}
