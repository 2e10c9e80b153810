// Package export serializes feature lists into CSV text and printable HTML
// reports with a user-chosen subset of field groups.
package export

import "strings"

// FieldSet selects the field groups included in an export artifact.
type FieldSet struct {
	Name         bool
	Type         bool
	Country      bool
	Continent    bool
	Coordinates  bool
	Measurements bool
	Description  bool
}

// AllFields returns a FieldSet with every group included.
func AllFields() FieldSet {
	return FieldSet{
		Name:         true,
		Type:         true,
		Country:      true,
		Continent:    true,
		Coordinates:  true,
		Measurements: true,
		Description:  true,
	}
}

// ParseFields reads a comma-separated group list ("name,coordinates,...").
// A blank list means all groups; unknown names are ignored.
func ParseFields(s string) FieldSet {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllFields()
	}

	var fs FieldSet
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "name":
			fs.Name = true
		case "type":
			fs.Type = true
		case "country":
			fs.Country = true
		case "continent":
			fs.Continent = true
		case "coordinates":
			fs.Coordinates = true
		case "measurements":
			fs.Measurements = true
		case "description":
			fs.Description = true
		}
	}

	return fs
}
