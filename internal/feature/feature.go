// Package feature defines the geographical feature domain model and the
// built-in sample dataset.
package feature

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MeasurementKind identifies which single measurement a feature carries.
type MeasurementKind string

const (
	MeasurementNone      MeasurementKind = ""
	MeasurementElevation MeasurementKind = "elevation"
	MeasurementDepth     MeasurementKind = "depth"
	MeasurementLength    MeasurementKind = "length"
	MeasurementArea      MeasurementKind = "area"
	MeasurementHeight    MeasurementKind = "height"
)

// Measurement is the single optional numeric attribute of a feature.
// A feature has exactly one kind or none; absence means the measurement
// does not apply to the feature type, not that the value is unknown.
type Measurement struct {
	Kind  MeasurementKind
	Value float64
}

// None reports whether no measurement applies.
func (m Measurement) None() bool {
	return m.Kind == MeasurementNone
}

// Label returns the display label for the measurement kind.
func (m Measurement) Label() string {
	switch m.Kind {
	case MeasurementElevation:
		return "Elevation"
	case MeasurementDepth:
		return "Depth"
	case MeasurementLength:
		return "Length"
	case MeasurementArea:
		return "Area"
	case MeasurementHeight:
		return "Height"
	}
	return ""
}

// Unit returns the unit implied by the measurement kind.
func (m Measurement) Unit() string {
	switch m.Kind {
	case MeasurementElevation, MeasurementDepth, MeasurementHeight:
		return "m"
	case MeasurementLength:
		return "km"
	case MeasurementArea:
		return "km²"
	}
	return ""
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Feature is a single geographical feature record.
type Feature struct {
	ID          int
	Name        string
	Type        string
	Country     string
	Continent   string
	Coordinates Coordinates
	Measurement Measurement
	Description string
}

// Doc is the wire representation of a Feature, matching the dataset file
// layout: the measurement appears as one of five optional numeric keys.
type Doc struct {
	ID          int         `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Type        string      `json:"type" yaml:"type"`
	Country     string      `json:"country" yaml:"country"`
	Continent   string      `json:"continent" yaml:"continent"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Elevation   *float64    `json:"elevation,omitempty" yaml:"elevation,omitempty"`
	Depth       *float64    `json:"depth,omitempty" yaml:"depth,omitempty"`
	Length      *float64    `json:"length,omitempty" yaml:"length,omitempty"`
	Area        *float64    `json:"area,omitempty" yaml:"area,omitempty"`
	Height      *float64    `json:"height,omitempty" yaml:"height,omitempty"`
	Description string      `json:"description" yaml:"description"`
}

// Doc converts the feature to its wire representation.
func (f Feature) Doc() Doc {
	doc := Doc{
		ID:          f.ID,
		Name:        f.Name,
		Type:        f.Type,
		Country:     f.Country,
		Continent:   f.Continent,
		Coordinates: f.Coordinates,
		Description: f.Description,
	}

	v := f.Measurement.Value
	switch f.Measurement.Kind {
	case MeasurementElevation:
		doc.Elevation = &v
	case MeasurementDepth:
		doc.Depth = &v
	case MeasurementLength:
		doc.Length = &v
	case MeasurementArea:
		doc.Area = &v
	case MeasurementHeight:
		doc.Height = &v
	}

	return doc
}

// Feature converts the wire representation back to the domain model.
// It fails when more than one measurement key is present.
func (d Doc) Feature() (Feature, error) {
	f := Feature{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Country:     d.Country,
		Continent:   d.Continent,
		Coordinates: d.Coordinates,
		Description: d.Description,
	}

	set := 0
	assign := func(kind MeasurementKind, v *float64) {
		if v == nil {
			return
		}
		set++
		f.Measurement = Measurement{Kind: kind, Value: *v}
	}
	assign(MeasurementElevation, d.Elevation)
	assign(MeasurementDepth, d.Depth)
	assign(MeasurementLength, d.Length)
	assign(MeasurementArea, d.Area)
	assign(MeasurementHeight, d.Height)

	if set > 1 {
		return Feature{}, fmt.Errorf("feature %q: %d measurements present, at most one allowed", d.Name, set)
	}

	return f, nil
}

// MarshalJSON emits the wire representation.
func (f Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Doc())
}

// UnmarshalJSON reads the wire representation.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	parsed, err := doc.Feature()
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// MarshalYAML emits the wire representation.
func (f Feature) MarshalYAML() (interface{}, error) {
	return f.Doc(), nil
}

// UnmarshalYAML reads the wire representation.
func (f *Feature) UnmarshalYAML(value *yaml.Node) error {
	var doc Doc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	parsed, err := doc.Feature()
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// Validate checks the dataset invariants: unique IDs, non-empty names and
// coordinates within WGS84 bounds.
func Validate(features []Feature) error {
	seen := make(map[int]string, len(features))

	for _, f := range features {
		if f.Name == "" {
			return fmt.Errorf("feature %d: empty name", f.ID)
		}
		if prev, ok := seen[f.ID]; ok {
			return fmt.Errorf("duplicate feature id %d (%q and %q)", f.ID, prev, f.Name)
		}
		seen[f.ID] = f.Name

		if f.Coordinates.Lat < -90 || f.Coordinates.Lat > 90 {
			return fmt.Errorf("feature %q: latitude %v out of range [-90, 90]", f.Name, f.Coordinates.Lat)
		}
		if f.Coordinates.Lng < -180 || f.Coordinates.Lng > 180 {
			return fmt.Errorf("feature %q: longitude %v out of range [-180, 180]", f.Name, f.Coordinates.Lng)
		}
	}

	return nil
}
