package render

import (
	"image/color"
	"testing"
)

func TestOceanColorStops(t *testing.T) {
	cases := []struct {
		name string
		t    float64
		want color.NRGBA
	}{
		{"top", 0, color.NRGBA{R: 0xe1, G: 0xf5, B: 0xfe, A: 0xff}},
		{"middle", 0.5, color.NRGBA{R: 0xb3, G: 0xe5, B: 0xfc, A: 0xff}},
		{"bottom", 1, color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OceanColor(tc.t); got != tc.want {
				t.Fatalf("OceanColor(%v) = %+v; want %+v", tc.t, got, tc.want)
			}
		})
	}
}

func TestLandColorClamps(t *testing.T) {
	if got := LandColor(-1); got != LandColor(0) {
		t.Fatalf("LandColor(-1) = %+v; want clamped to top stop", got)
	}
	if got := LandColor(2); got != LandColor(1) {
		t.Fatalf("LandColor(2) = %+v; want clamped to bottom stop", got)
	}
}

func TestMapNativeSize(t *testing.T) {
	img := Map(800)

	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("bounds = %v; want 800x400", b)
	}
}

func TestMapKeepsAspect(t *testing.T) {
	img := Map(1600)

	b := img.Bounds()
	if b.Dx() != 1600 || b.Dy() != 800 {
		t.Fatalf("bounds = %v; want 1600x800", b)
	}
}

func TestMapPaintsLandAndOcean(t *testing.T) {
	img := Map(800)

	// deep inside Africa
	land := img.RGBAAt(540, 240)
	if land.G <= land.B {
		t.Fatalf("pixel inside Africa = %+v; want green-dominant land color", land)
	}

	// mid-Pacific
	ocean := img.RGBAAt(100, 350)
	if ocean.B <= ocean.G {
		t.Fatalf("ocean pixel = %+v; want blue-dominant color", ocean)
	}
}

func TestContinentsAreClosedPolygons(t *testing.T) {
	for i, poly := range Continents() {
		if len(poly) < 3 {
			t.Errorf("continent %d has %d vertices; want at least 3", i, len(poly))
		}
	}
}
