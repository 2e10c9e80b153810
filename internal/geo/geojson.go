package geo

import "geoatlas/internal/feature"

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and
// properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature (Point, Polygon, etc.).
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// Collection converts a feature list into a GeoJSON FeatureCollection with
// Point geometries. The single measurement, when present, is exported as a
// property named after its kind.
func Collection(features []feature.Feature) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(features)),
	}

	for _, f := range features {
		props := map[string]interface{}{
			"id":          f.ID,
			"name":        f.Name,
			"type":        f.Type,
			"country":     f.Country,
			"continent":   f.Continent,
			"description": f.Description,
		}
		if !f.Measurement.None() {
			props[string(f.Measurement.Kind)] = f.Measurement.Value
		}

		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{f.Coordinates.Lng, f.Coordinates.Lat},
			},
			Properties: props,
		})
	}

	return fc
}
