// Package catalog holds the immutable feature dataset and the derived-view
// computations over it: text/type filtering, column sorting and summary
// statistics.
package catalog

import (
	"strings"

	"geoatlas/internal/feature"
)

// TypeAll is the type selector sentinel matching every feature.
const TypeAll = "all"

// Catalog is a validated, read-only feature dataset.
type Catalog struct {
	features []feature.Feature
}

// New validates the dataset and wraps it in a Catalog.
func New(features []feature.Feature) (*Catalog, error) {
	if err := feature.Validate(features); err != nil {
		return nil, err
	}

	return &Catalog{features: features}, nil
}

// Len returns the dataset size.
func (c *Catalog) Len() int {
	return len(c.features)
}

// All returns the full dataset in load order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []feature.Feature {
	return c.features
}

// ByID looks up a feature by its identifier.
func (c *Catalog) ByID(id int) (feature.Feature, bool) {
	for _, f := range c.features {
		if f.ID == id {
			return f, true
		}
	}

	return feature.Feature{}, false
}

// Types returns the distinct feature types in first-seen order.
func (c *Catalog) Types() []string {
	seen := make(map[string]bool, len(c.features))
	types := make([]string, 0, len(c.features))

	for _, f := range c.features {
		if !seen[f.Type] {
			seen[f.Type] = true
			types = append(types, f.Type)
		}
	}

	return types
}

// Filter applies the search query and type selector to the full dataset.
func (c *Catalog) Filter(query, typeSelector string) []feature.Feature {
	return Filter(c.features, query, typeSelector)
}

// Filter returns the subsequence of features matching both the free-text
// query and the type selector, preserving input order.
//
// The query matches case-insensitively as a substring of name, country or
// type; a blank query matches everything. The selector matches when it is
// TypeAll or equals the feature type case-insensitively.
func Filter(features []feature.Feature, query, typeSelector string) []feature.Feature {
	query = strings.ToLower(strings.TrimSpace(query))
	typeSelector = strings.ToLower(strings.TrimSpace(typeSelector))

	out := make([]feature.Feature, 0, len(features))
	for _, f := range features {
		if query != "" && !matchesQuery(f, query) {
			continue
		}
		if typeSelector != "" && typeSelector != TypeAll && strings.ToLower(f.Type) != typeSelector {
			continue
		}
		out = append(out, f)
	}

	return out
}

func matchesQuery(f feature.Feature, query string) bool {
	return strings.Contains(strings.ToLower(f.Name), query) ||
		strings.Contains(strings.ToLower(f.Country), query) ||
		strings.Contains(strings.ToLower(f.Type), query)
}
