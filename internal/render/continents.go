package render

// Continents returns the simplified landmass polygons in canvas
// coordinates. The shapes mirror the vector outline drawn by the embedded
// page, so the raster and SVG backgrounds line up.
func Continents() [][]Point {
	return [][]Point{
		northAmerica, southAmerica, africa, europe, asia, australia,
	}
}

var northAmerica = []Point{
	{50, 80}, {120, 80}, {180, 85}, {250, 90}, {280, 100}, {320, 100},
	{340, 110}, {380, 110}, {400, 120}, {440, 120}, {460, 130}, {500, 130},
	{520, 140}, {500, 160}, {480, 170}, {460, 180}, {440, 190}, {420, 200},
	{400, 210}, {380, 200}, {360, 190}, {340, 180}, {320, 170}, {300, 160},
	{280, 150}, {260, 140}, {240, 130}, {220, 120}, {200, 110}, {180, 100},
	{160, 90}, {140, 85}, {120, 90}, {100, 95}, {80, 100}, {60, 95},
}

var southAmerica = []Point{
	{200, 200}, {240, 200}, {260, 210}, {300, 210}, {320, 220}, {360, 220},
	{380, 230}, {390, 250}, {400, 270}, {390, 290}, {380, 310}, {370, 330},
	{360, 350}, {350, 370}, {340, 360}, {330, 350}, {320, 340}, {310, 330},
	{300, 320}, {290, 310}, {280, 300}, {270, 290}, {260, 280}, {250, 270},
	{240, 260}, {230, 250}, {220, 240}, {210, 230}, {200, 220},
}

var africa = []Point{
	{420, 160}, {460, 160}, {480, 170}, {520, 170}, {540, 180}, {580, 180},
	{600, 190}, {610, 210}, {620, 230}, {630, 250}, {640, 270}, {630, 290},
	{620, 310}, {610, 330}, {600, 350}, {590, 340}, {580, 330}, {570, 320},
	{560, 310}, {550, 300}, {540, 290}, {530, 280}, {520, 270}, {510, 260},
	{500, 250}, {490, 240}, {480, 230}, {470, 220}, {460, 210}, {450, 200},
	{440, 190}, {430, 180}, {420, 170},
}

var europe = []Point{
	{420, 100}, {460, 100}, {480, 105}, {520, 105}, {540, 110}, {580, 110},
	{600, 115}, {610, 125}, {620, 135}, {610, 145}, {600, 155}, {590, 145},
	{580, 135}, {570, 125}, {560, 120}, {550, 125}, {540, 130}, {530, 125},
	{520, 120}, {510, 125}, {500, 130}, {490, 125}, {480, 120}, {470, 115},
	{460, 110}, {450, 105}, {440, 100}, {430, 105},
}

var asia = []Point{
	{520, 80}, {560, 80}, {580, 85}, {620, 85}, {640, 90}, {680, 90},
	{700, 95}, {740, 95}, {750, 105}, {740, 125}, {730, 145}, {720, 165},
	{710, 185}, {700, 175}, {690, 165}, {680, 155}, {670, 145}, {660, 135},
	{650, 125}, {640, 115}, {630, 105}, {620, 100}, {610, 105}, {600, 110},
	{590, 105}, {580, 100}, {570, 95}, {560, 90}, {550, 85}, {540, 80},
	{530, 85},
}

var australia = []Point{
	{620, 280}, {660, 280}, {680, 285}, {720, 285}, {740, 290}, {750, 300},
	{740, 310}, {730, 320}, {720, 310}, {710, 300}, {700, 295}, {690, 300},
	{680, 305}, {670, 300}, {660, 295}, {650, 290}, {640, 285}, {630, 280},
}
