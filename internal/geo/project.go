// Package geo handles coordinate projection onto the schematic map canvas
// and GeoJSON output of the feature set.
package geo

// Virtual plotting surface of the schematic world map.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 400.0
)

// Point is a position on the map canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps WGS84 degrees onto the fixed canvas with an equirectangular
// projection:
//
//	x = ((lng + 180) / 360) * W
//	y = ((90 - lat) / 180) * H
//
// No clamping is performed; callers guarantee lat in [-90, 90] and lng in
// [-180, 180], otherwise the point lands outside the visible surface.
func Project(lat, lng float64) Point {
	return Point{
		X: ((lng + 180.0) / 360.0) * CanvasWidth,
		Y: ((90.0 - lat) / 180.0) * CanvasHeight,
	}
}
