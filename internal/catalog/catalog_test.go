package catalog

import (
	"testing"

	"geoatlas/internal/feature"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	cat, err := New(feature.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cat
}

func names(features []feature.Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = f.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	cat := testCatalog(t)

	cases := []struct {
		name  string
		query string
		typ   string
		want  []string
	}{
		{
			"blank query and all selector is identity",
			"", "all",
			names(cat.All()),
		},
		{
			"query mount matches only Everest",
			"mount", "all",
			[]string{"Mount Everest"},
		},
		{
			"type River matches only the Amazon",
			"", "River",
			[]string{"Amazon River"},
		},
		{
			"query matches country",
			"australia", "all",
			[]string{"Great Barrier Reef"},
		},
		{
			"query matches type text",
			"trench", "all",
			[]string{"Mariana Trench"},
		},
		{
			"query is case-insensitive",
			"SAHARA", "all",
			[]string{"Sahara Desert"},
		},
		{
			"type selector is case-insensitive",
			"", "coral reef",
			[]string{"Great Barrier Reef"},
		},
		{
			"query and type combine with AND",
			"canyon", "River",
			nil,
		},
		{
			"no match yields empty result",
			"atlantis", "all",
			nil,
		},
		{
			"source order preserved",
			"a", "all",
			// every feature whose name, country or type contains "a",
			// in dataset order
			[]string{
				"Mount Everest", "Amazon River", "Sahara Desert",
				"Great Barrier Reef", "Lake Baikal", "Grand Canyon",
				"Victoria Falls", "Mariana Trench",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(cat.Filter(tc.query, tc.typ))
			if !equalStrings(got, tc.want) {
				t.Fatalf("Filter(%q, %q) = %v; want %v", tc.query, tc.typ, got, tc.want)
			}
		})
	}
}

func TestFilterEmptySelectorActsAsAll(t *testing.T) {
	cat := testCatalog(t)

	if got := len(cat.Filter("", "")); got != cat.Len() {
		t.Fatalf("Filter with empty selector returned %d features; want %d", got, cat.Len())
	}
}

func TestByID(t *testing.T) {
	cat := testCatalog(t)

	f, ok := cat.ByID(3)
	if !ok || f.Name != "Sahara Desert" {
		t.Fatalf("ByID(3) = %q, %v; want Sahara Desert, true", f.Name, ok)
	}

	if _, ok := cat.ByID(99); ok {
		t.Fatal("ByID(99) found a feature; want miss")
	}
}

func TestTypesFirstSeenOrder(t *testing.T) {
	cat := testCatalog(t)

	want := []string{
		"Mountain", "River", "Desert", "Coral Reef",
		"Lake", "Canyon", "Waterfall", "Ocean Trench",
	}
	if got := cat.Types(); !equalStrings(got, want) {
		t.Fatalf("Types() = %v; want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	cat := testCatalog(t)

	cases := []struct {
		name     string
		features []feature.Feature
		want     Stats
	}{
		{"full dataset", cat.All(), Stats{Total: 8, Continents: 6, Types: 8}},
		{"single type", cat.Filter("", "River"), Stats{Total: 1, Continents: 1, Types: 1}},
		{"empty list", nil, Stats{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.features); got != tc.want {
				t.Fatalf("Summarize() = %+v; want %+v", got, tc.want)
			}
		})
	}
}

func TestNewRejectsInvalidDataset(t *testing.T) {
	_, err := New([]feature.Feature{{ID: 1}})
	if err == nil {
		t.Fatal("New accepted an invalid dataset; want error")
	}
}
