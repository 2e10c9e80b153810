package export

import (
	"strconv"
	"strings"
	"time"

	"geoatlas/internal/feature"
)

// CSV serializes the feature list with the included field groups. The header
// carries only the labels of included groups; coordinates expand to two
// columns and measurements to five, with the empty string for any
// measurement absent on a feature.
//
// Only the description value is quote-wrapped (embedded quotes doubled,
// RFC 4180 style). Other fields are emitted verbatim, so a comma inside a
// country or type value would break the row. That asymmetry is a documented
// limitation carried over from the original exporter, kept so existing
// consumers see byte-identical output.
func CSV(features []feature.Feature, fields FieldSet) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader(fields), ","))

	for _, f := range features {
		b.WriteByte('\n')
		b.WriteString(strings.Join(csvRow(f, fields), ","))
	}

	return b.String()
}

func csvHeader(fields FieldSet) []string {
	var h []string
	if fields.Name {
		h = append(h, "Name")
	}
	if fields.Type {
		h = append(h, "Type")
	}
	if fields.Country {
		h = append(h, "Country")
	}
	if fields.Continent {
		h = append(h, "Continent")
	}
	if fields.Coordinates {
		h = append(h, "Latitude", "Longitude")
	}
	if fields.Measurements {
		h = append(h, "Elevation (m)", "Depth (m)", "Length (km)", "Area (km²)", "Height (m)")
	}
	if fields.Description {
		h = append(h, "Description")
	}
	return h
}

func csvRow(f feature.Feature, fields FieldSet) []string {
	var row []string
	if fields.Name {
		row = append(row, f.Name)
	}
	if fields.Type {
		row = append(row, f.Type)
	}
	if fields.Country {
		row = append(row, f.Country)
	}
	if fields.Continent {
		row = append(row, f.Continent)
	}
	if fields.Coordinates {
		row = append(row, formatNumber(f.Coordinates.Lat), formatNumber(f.Coordinates.Lng))
	}
	if fields.Measurements {
		for _, kind := range []feature.MeasurementKind{
			feature.MeasurementElevation,
			feature.MeasurementDepth,
			feature.MeasurementLength,
			feature.MeasurementArea,
			feature.MeasurementHeight,
		} {
			if f.Measurement.Kind == kind {
				row = append(row, formatNumber(f.Measurement.Value))
			} else {
				row = append(row, "")
			}
		}
	}
	if fields.Description {
		row = append(row, `"`+strings.ReplaceAll(f.Description, `"`, `""`)+`"`)
	}
	return row
}

// formatNumber renders a float the shortest way that round-trips, so whole
// measurements come out without a decimal point ("8848").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Filename builds the export artifact name, e.g.
// "geographical_features_2025-06-01.csv".
func Filename(ext string, now time.Time) string {
	return "geographical_features_" + now.Format("2006-01-02") + "." + ext
}
