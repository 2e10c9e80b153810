// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"geoatlas/internal/catalog"
	"geoatlas/internal/export"
	"geoatlas/internal/feature"
	"geoatlas/internal/geo"
)

// apiFeature is a feature in its wire shape plus its projected marker
// position on the map canvas.
type apiFeature struct {
	feature.Doc
	Marker geo.Point `json:"marker"`
}

func toAPIFeatures(features []feature.Feature) []apiFeature {
	out := make([]apiFeature, 0, len(features))
	for _, f := range features {
		out = append(out, apiFeature{
			Doc:    f.Doc(),
			Marker: geo.Project(f.Coordinates.Lat, f.Coordinates.Lng),
		})
	}
	return out
}

// query applies the request's search, type and sort parameters to the
// catalog.
func (s *ServerContext) query(r *http.Request) []feature.Feature {
	q := r.URL.Query()

	filtered := s.Catalog.Filter(q.Get("search"), q.Get("type"))

	field := catalog.ParseSortField(q.Get("sort"))
	if field == catalog.SortNone {
		return filtered
	}

	return catalog.Sort(filtered, field, catalog.ParseDirection(q.Get("dir")))
}

// HandleFeatures serves the filtered, optionally sorted feature list.
// Query parameters: search, type, sort, dir.
func (s *ServerContext) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAPIFeatures(s.query(r)))
}

// HandleFeatureByID serves a single feature, independent of any active
// filter.
func (s *ServerContext) HandleFeatureByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/features/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid feature id")
		return
	}

	f, ok := s.Catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "feature not found")
		return
	}

	writeJSON(w, http.StatusOK, apiFeature{
		Doc:    f.Doc(),
		Marker: geo.Project(f.Coordinates.Lat, f.Coordinates.Lng),
	})
}

// HandleTypes serves the distinct feature types for the filter dropdown.
func (s *ServerContext) HandleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog.Types())
}

// HandleStats serves the quick-stats counts over the current filter.
func (s *ServerContext) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Summarize(s.query(r)))
}

// HandleGeoJSON serves the filtered feature list as a GeoJSON
// FeatureCollection.
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/geo+json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(geo.Collection(s.query(r)))
}

// HandleExport serves the export artifact for the current filter.
// Query parameters: format (csv or pdf) and fields (comma-separated group
// list, blank for all).
func (s *ServerContext) HandleExport(w http.ResponseWriter, r *http.Request) {
	features := s.query(r)
	fields := export.ParseFields(r.URL.Query().Get("fields"))
	now := time.Now()

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.Filename("csv", now)))
		_, _ = w.Write([]byte(export.CSV(features, fields)))

	case "pdf":
		// The printable document: a self-contained HTML page the browser
		// hands to its print dialog, where the user may save it as PDF.
		doc, err := export.RenderHTML(export.BuildReport(features, fields, now))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "report rendering failed")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(doc)

	default:
		writeError(w, http.StatusBadRequest, "unknown export format "+format)
	}
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleMapImage serves the pre-rendered schematic world background when the
// mapgen command has produced one.
func (s *ServerContext) HandleMapImage(w http.ResponseWriter, r *http.Request) {
	if s.MapImagePath == "" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/webp")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, s.MapImagePath)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
