package feature

// Default returns the built-in sample dataset used when no dataset is
// configured. The returned slice is a fresh copy on every call.
func Default() []Feature {
	return []Feature{
		{
			ID:          1,
			Name:        "Mount Everest",
			Type:        "Mountain",
			Country:     "Nepal/China",
			Continent:   "Asia",
			Coordinates: Coordinates{Lat: 27.9881, Lng: 86.925},
			Measurement: Measurement{Kind: MeasurementElevation, Value: 8848},
			Description: "The world's highest mountain peak",
		},
		{
			ID:          2,
			Name:        "Amazon River",
			Type:        "River",
			Country:     "Brazil/Peru",
			Continent:   "South America",
			Coordinates: Coordinates{Lat: -3.4653, Lng: -62.2159},
			Measurement: Measurement{Kind: MeasurementLength, Value: 6400},
			Description: "The longest river in the world",
		},
		{
			ID:          3,
			Name:        "Sahara Desert",
			Type:        "Desert",
			Country:     "Multiple",
			Continent:   "Africa",
			Coordinates: Coordinates{Lat: 23.4162, Lng: 25.6628},
			Measurement: Measurement{Kind: MeasurementArea, Value: 9000000},
			Description: "The largest hot desert in the world",
		},
		{
			ID:          4,
			Name:        "Great Barrier Reef",
			Type:        "Coral Reef",
			Country:     "Australia",
			Continent:   "Oceania",
			Coordinates: Coordinates{Lat: -18.2871, Lng: 147.6992},
			Measurement: Measurement{Kind: MeasurementArea, Value: 344400},
			Description: "The world's largest coral reef system",
		},
		{
			ID:          5,
			Name:        "Lake Baikal",
			Type:        "Lake",
			Country:     "Russia",
			Continent:   "Asia",
			Coordinates: Coordinates{Lat: 53.5587, Lng: 108.165},
			Measurement: Measurement{Kind: MeasurementDepth, Value: 1642},
			Description: "The world's deepest and oldest freshwater lake",
		},
		{
			ID:          6,
			Name:        "Grand Canyon",
			Type:        "Canyon",
			Country:     "United States",
			Continent:   "North America",
			Coordinates: Coordinates{Lat: 36.1069, Lng: -112.1129},
			Measurement: Measurement{Kind: MeasurementDepth, Value: 1857},
			Description: "A steep-sided canyon carved by the Colorado River",
		},
		{
			ID:          7,
			Name:        "Victoria Falls",
			Type:        "Waterfall",
			Country:     "Zambia/Zimbabwe",
			Continent:   "Africa",
			Coordinates: Coordinates{Lat: -17.9243, Lng: 25.8572},
			Measurement: Measurement{Kind: MeasurementHeight, Value: 108},
			Description: "One of the largest waterfalls in the world",
		},
		{
			ID:          8,
			Name:        "Mariana Trench",
			Type:        "Ocean Trench",
			Country:     "International Waters",
			Continent:   "Pacific Ocean",
			Coordinates: Coordinates{Lat: 11.3733, Lng: 142.5917},
			Measurement: Measurement{Kind: MeasurementDepth, Value: 11034},
			Description: "The deepest part of the world's oceans",
		},
	}
}
