package catalog

import "geoatlas/internal/feature"

// Stats summarizes a feature list for the quick-stats panel.
type Stats struct {
	Total      int `json:"total"`
	Continents int `json:"continents"`
	Types      int `json:"types"`
}

// Summarize counts the features and their distinct continents and types.
func Summarize(features []feature.Feature) Stats {
	continents := make(map[string]bool)
	types := make(map[string]bool)

	for _, f := range features {
		continents[f.Continent] = true
		types[f.Type] = true
	}

	return Stats{
		Total:      len(features),
		Continents: len(continents),
		Types:      len(types),
	}
}
