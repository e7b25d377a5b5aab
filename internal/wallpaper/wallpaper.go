// Package wallpaper maps desktop indices onto the configured wallpaper list.
package wallpaper

// Pick returns the wallpaper for desktop index i. Indices past the end of
// the list wrap around, so fewer wallpapers than desktops is fine.
// ok is false when the list is empty or i is negative.
func Pick(wallpapers []string, i int) (path string, ok bool) {
	n := len(wallpapers)
	if n == 0 || i < 0 {
		return "", false
	}

	return wallpapers[i%n], true
}
