// Package badge renders the tray icon with the active desktop number on it.
package badge

// Size is the edge length of the square canvas the badge is drawn on
const Size = 256

// Placement is the font size (pixels) and the top-left corner of the numeral
type Placement struct {
	FontSize float64
	X, Y     int
}

// Layout steps the numeral down as it gains digits so it stays centred.
// 1–9 use the largest size, 10–99 a medium size shifted left, 100+ the smallest.
func Layout(n int) Placement {
	switch {
	case n > 99:
		return Placement{FontSize: 80, X: 90, Y: 100}
	case n > 9:
		return Placement{FontSize: 125, X: 75, Y: 65}
	default:
		return Placement{FontSize: 140, X: 100, Y: 50}
	}
}
