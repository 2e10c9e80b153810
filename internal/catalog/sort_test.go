package catalog

import (
	"testing"

	"geoatlas/internal/feature"
)

func TestSortByField(t *testing.T) {
	cat := testCatalog(t)

	cases := []struct {
		name  string
		field SortField
		dir   Direction
		first string
		last  string
	}{
		{"name ascending", SortName, Ascending, "Amazon River", "Victoria Falls"},
		{"name descending", SortName, Descending, "Victoria Falls", "Amazon River"},
		{"type ascending", SortType, Ascending, "Grand Canyon", "Victoria Falls"},
		{"country ascending", SortCountry, Ascending, "Great Barrier Reef", "Victoria Falls"},
		{"continent descending", SortContinent, Descending, "Amazon River", "Victoria Falls"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sort(cat.All(), tc.field, tc.dir)
			if got[0].Name != tc.first {
				t.Errorf("first = %q; want %q", got[0].Name, tc.first)
			}
			if got[len(got)-1].Name != tc.last {
				t.Errorf("last = %q; want %q", got[len(got)-1].Name, tc.last)
			}
		})
	}
}

func TestSortNoneIsIdentity(t *testing.T) {
	cat := testCatalog(t)

	got := Sort(cat.All(), SortNone, Descending)
	if !equalStrings(names(got), names(cat.All())) {
		t.Fatalf("Sort with SortNone reordered the input: %v", names(got))
	}
}

func TestSortDescendingReversesAscending(t *testing.T) {
	cat := testCatalog(t)

	// all names are distinct, so descending must be the exact reverse
	asc := Sort(cat.All(), SortName, Ascending)
	desc := Sort(cat.All(), SortName, Descending)

	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending is not the reverse of ascending at index %d", i)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	features := []feature.Feature{
		{ID: 1, Name: "B", Type: "Lake"},
		{ID: 2, Name: "A", Type: "Lake"},
		{ID: 3, Name: "C", Type: "Lake"},
	}

	got := Sort(features, SortType, Ascending)
	for i, f := range features {
		if got[i].ID != f.ID {
			t.Fatalf("equal keys reordered: got %v", names(got))
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	cat := testCatalog(t)
	before := names(cat.All())

	_ = Sort(cat.All(), SortName, Descending)

	if !equalStrings(names(cat.All()), before) {
		t.Fatal("Sort mutated its input slice")
	}
}

func TestSortIsCaseInsensitive(t *testing.T) {
	features := []feature.Feature{
		{ID: 1, Name: "banana"},
		{ID: 2, Name: "Apple"},
		{ID: 3, Name: "cherry"},
	}

	got := Sort(features, SortName, Ascending)
	want := []string{"Apple", "banana", "cherry"}
	if !equalStrings(names(got), want) {
		t.Fatalf("Sort() = %v; want %v", names(got), want)
	}
}

func TestSortStateToggle(t *testing.T) {
	var s SortState

	s.Toggle(SortName)
	if s.Field != SortName || s.Dir != Ascending {
		t.Fatalf("after first toggle: %+v; want name ascending", s)
	}

	s.Toggle(SortName)
	if s.Dir != Descending {
		t.Fatalf("toggling the active field kept direction %q; want desc", s.Dir)
	}

	s.Toggle(SortName)
	if s.Dir != Ascending {
		t.Fatalf("third toggle on the active field gave %q; want asc", s.Dir)
	}

	s.Toggle(SortCountry)
	if s.Field != SortCountry || s.Dir != Ascending {
		t.Fatalf("new field did not reset to ascending: %+v", s)
	}
}

func TestParseSortField(t *testing.T) {
	cases := []struct {
		in   string
		want SortField
	}{
		{"name", SortName},
		{"Type", SortType},
		{" continent ", SortContinent},
		{"elevation", SortNone},
		{"", SortNone},
	}

	for _, tc := range cases {
		if got := ParseSortField(tc.in); got != tc.want {
			t.Errorf("ParseSortField(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if got := ParseDirection("desc"); got != Descending {
		t.Errorf("ParseDirection(desc) = %q; want desc", got)
	}
	if got := ParseDirection("bogus"); got != Ascending {
		t.Errorf("ParseDirection(bogus) = %q; want asc fallback", got)
	}
}
