package catalog

import (
	"sort"
	"strings"

	"geoatlas/internal/feature"
)

// SortField names a sortable table column. The zero value means no sorting.
type SortField string

const (
	SortNone      SortField = ""
	SortName      SortField = "name"
	SortType      SortField = "type"
	SortCountry   SortField = "country"
	SortContinent SortField = "continent"
)

// ParseSortField maps a column name to its SortField. Unknown names map to
// SortNone, which leaves the input order untouched.
func ParseSortField(s string) SortField {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortName, SortType, SortCountry, SortContinent:
		return f
	}
	return SortNone
}

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps a direction name to a Direction, defaulting to
// ascending.
func ParseDirection(s string) Direction {
	if Direction(strings.ToLower(strings.TrimSpace(s))) == Descending {
		return Descending
	}
	return Ascending
}

// Sort returns a reordered copy of features by the given field and
// direction. The comparison is case-insensitive and the sort is stable, so
// equal values keep their relative input order. SortNone returns a copy in
// the input order. The input slice is never modified.
func Sort(features []feature.Feature, field SortField, dir Direction) []feature.Feature {
	out := make([]feature.Feature, len(features))
	copy(out, features)

	if field == SortNone {
		return out
	}

	key := func(f feature.Feature) string {
		switch field {
		case SortName:
			return f.Name
		case SortType:
			return f.Type
		case SortCountry:
			return f.Country
		case SortContinent:
			return f.Continent
		}
		return ""
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(key(out[i]))
		b := strings.ToLower(key(out[j]))
		if dir == Descending {
			return a > b
		}
		return a < b
	})

	return out
}

// SortState tracks the active table sort between data changes.
type SortState struct {
	Field SortField
	Dir   Direction
}

// Toggle applies a header click: selecting the active field flips the
// direction, selecting a new field resets to ascending.
func (s *SortState) Toggle(field SortField) {
	if s.Field == field {
		if s.Dir == Ascending {
			s.Dir = Descending
		} else {
			s.Dir = Ascending
		}
		return
	}

	s.Field = field
	s.Dir = Ascending
}

// Apply sorts the given list with the current state.
func (s SortState) Apply(features []feature.Feature) []feature.Feature {
	return Sort(features, s.Field, s.Dir)
}
