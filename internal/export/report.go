package export

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"

	"geoatlas/internal/catalog"
	"geoatlas/internal/feature"
)

// Report is the structured content model of the printable document: a
// summary header plus one block per feature with the included fields as
// labeled values. How the rendered document reaches the print dialog is the
// host's concern.
type Report struct {
	Title      string
	Total      int
	Continents int
	Generated  time.Time
	Blocks     []Block
}

// Block is the per-feature section of a report.
type Block struct {
	Name        string // empty when the name group is excluded
	Type        string // empty when the type group is excluded
	Details     []Detail
	Description string
}

// Detail is a single labeled value inside a block.
type Detail struct {
	Label string
	Value string
}

// BuildReport assembles the report content for the given features and field
// selection. An empty feature list yields a report with zero blocks and zero
// counts.
func BuildReport(features []feature.Feature, fields FieldSet, now time.Time) Report {
	stats := catalog.Summarize(features)

	r := Report{
		Title:      "Geographical Features Report",
		Total:      stats.Total,
		Continents: stats.Continents,
		Generated:  now,
		Blocks:     make([]Block, 0, len(features)),
	}

	for _, f := range features {
		var b Block
		if fields.Name {
			b.Name = f.Name
		}
		if fields.Type {
			b.Type = f.Type
		}
		if fields.Country {
			b.Details = append(b.Details, Detail{Label: "Country", Value: f.Country})
		}
		if fields.Continent {
			b.Details = append(b.Details, Detail{Label: "Continent", Value: f.Continent})
		}
		if fields.Coordinates {
			b.Details = append(b.Details, Detail{
				Label: "Coordinates",
				Value: formatCoordinates(f.Coordinates),
			})
		}
		if fields.Measurements && !f.Measurement.None() {
			b.Details = append(b.Details, Detail{
				Label: f.Measurement.Label(),
				Value: groupDigits(f.Measurement.Value) + " " + f.Measurement.Unit(),
			})
		}
		if fields.Description {
			b.Description = f.Description
		}

		r.Blocks = append(r.Blocks, b)
	}

	return r
}

// formatCoordinates renders a point to four decimal places, "27.9881°, 86.9250°".
func formatCoordinates(c feature.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', 4, 64) + "°, " + strconv.FormatFloat(c.Lng, 'f', 4, 64) + "°"
}

// groupDigits renders a number with thousands separators ("9,000,000").
func groupDigits(v float64) string {
	s := formatNumber(v)

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
.stats { background: #f9fafb; padding: 15px; border-radius: 8px; margin-bottom: 20px; }
.feature { margin-bottom: 20px; padding: 15px; border: 1px solid #e5e7eb; border-radius: 8px; }
.feature-name { font-size: 18px; font-weight: bold; color: #1f2937; margin-bottom: 5px; }
.feature-type { background: #f3f4f6; padding: 4px 8px; border-radius: 4px; font-size: 12px; display: inline-block; margin-bottom: 10px; }
.feature-details { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; margin-bottom: 10px; }
.detail-item { font-size: 14px; }
.detail-label { font-weight: bold; color: #6b7280; }
.description { font-style: italic; color: #4b5563; margin-top: 10px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="stats">
<p><strong>Total Features:</strong> {{.Total}}</p>
<p><strong>Generated:</strong> {{.Generated.Format "2006-01-02"}}</p>
<p><strong>Continents Covered:</strong> {{.Continents}}</p>
</div>
{{range .Blocks}}<div class="feature">
{{if .Name}}<div class="feature-name">{{.Name}}</div>{{end}}
{{if .Type}}<div class="feature-type">{{.Type}}</div>{{end}}
<div class="feature-details">
{{range .Details}}<div class="detail-item"><span class="detail-label">{{.Label}}:</span> {{.Value}}</div>
{{end}}</div>
{{if .Description}}<div class="description">{{.Description}}</div>{{end}}
</div>
{{end}}</body>
</html>
`))

// RenderHTML renders the report to a self-contained, minified HTML document
// ready for the host's print pipeline.
func RenderHTML(r Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, r); err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)

	out, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, err
	}

	return out, nil
}
