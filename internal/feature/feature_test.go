package feature

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	features := Default()

	if len(features) != 8 {
		t.Fatalf("Default() returned %d features; want 8", len(features))
	}
	if err := Validate(features); err != nil {
		t.Fatalf("Validate(Default()) = %v; want nil", err)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a[0].Name = "changed"

	if got := Default()[0].Name; got != "Mount Everest" {
		t.Fatalf("Default()[0].Name = %q after modifying a previous copy; want %q", got, "Mount Everest")
	}
}

func TestValidate(t *testing.T) {
	ok := Feature{ID: 1, Name: "Everest", Coordinates: Coordinates{Lat: 27.9, Lng: 86.9}}

	cases := []struct {
		name     string
		features []Feature
		wantErr  string
	}{
		{"valid", []Feature{ok}, ""},
		{"empty name", []Feature{{ID: 1}}, "empty name"},
		{
			"duplicate id",
			[]Feature{ok, {ID: 1, Name: "Other"}},
			"duplicate feature id",
		},
		{
			"latitude out of range",
			[]Feature{{ID: 1, Name: "Bad", Coordinates: Coordinates{Lat: 91}}},
			"latitude",
		},
		{
			"longitude out of range",
			[]Feature{{ID: 1, Name: "Bad", Coordinates: Coordinates{Lng: -181}}},
			"longitude",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.features)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v; want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v; want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestMeasurementLabelsAndUnits(t *testing.T) {
	cases := []struct {
		kind  MeasurementKind
		label string
		unit  string
	}{
		{MeasurementElevation, "Elevation", "m"},
		{MeasurementDepth, "Depth", "m"},
		{MeasurementLength, "Length", "km"},
		{MeasurementArea, "Area", "km²"},
		{MeasurementHeight, "Height", "m"},
		{MeasurementNone, "", ""},
	}

	for _, tc := range cases {
		m := Measurement{Kind: tc.kind}
		if got := m.Label(); got != tc.label {
			t.Errorf("Label() for %q = %q; want %q", tc.kind, got, tc.label)
		}
		if got := m.Unit(); got != tc.unit {
			t.Errorf("Unit() for %q = %q; want %q", tc.kind, got, tc.unit)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := Feature{
		ID:          1,
		Name:        "Mount Everest",
		Type:        "Mountain",
		Country:     "Nepal/China",
		Continent:   "Asia",
		Coordinates: Coordinates{Lat: 27.9881, Lng: 86.925},
		Measurement: Measurement{Kind: MeasurementElevation, Value: 8848},
		Description: "The world's highest mountain peak",
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !strings.Contains(string(data), `"elevation":8848`) {
		t.Fatalf("marshaled feature missing elevation key: %s", data)
	}
	if strings.Contains(string(data), `"depth"`) {
		t.Fatalf("marshaled feature has spurious depth key: %s", data)
	}

	var back Feature
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != orig {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, orig)
	}
}

func TestUnmarshalRejectsMultipleMeasurements(t *testing.T) {
	raw := `{"id":1,"name":"Bad","type":"X","coordinates":{"lat":0,"lng":0},"elevation":10,"depth":20}`

	var f Feature
	err := json.Unmarshal([]byte(raw), &f)
	if err == nil || !strings.Contains(err.Error(), "at most one") {
		t.Fatalf("Unmarshal = %v; want at-most-one measurement error", err)
	}
}

func TestUnmarshalWithoutMeasurement(t *testing.T) {
	raw := `{"id":9,"name":"Plain","type":"Plateau","coordinates":{"lat":1,"lng":2}}`

	var f Feature
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !f.Measurement.None() {
		t.Fatalf("Measurement = %+v; want none", f.Measurement)
	}
}
