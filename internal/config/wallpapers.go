package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSelection is returned when a list operation names an item that does not exist
var ErrNoSelection = errors.New("no wallpaper selected")

// ImageExtensions lists the file types offered by default when adding wallpapers.
// Other files are accepted; Windows decides whether it can display them.
var ImageExtensions = []string{".bmp", ".jpg", ".jpeg", ".gif", ".png"}

// IsImage reports whether path has one of ImageExtensions
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}

	return false
}

// AddWallpapers appends files to the list. Every file must exist; on error the
// list is left unchanged. Paths are stored absolute.
func (s *Settings) AddWallpapers(paths ...string) error {
	resolved := make([]string, 0, len(paths))

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("error resolving wallpaper path %s: %w", p, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("wallpaper does not exist: %s: %w", abs, err)
		}

		if info.IsDir() {
			return fmt.Errorf("wallpaper is a directory: %s", abs)
		}

		resolved = append(resolved, abs)
	}

	s.Wallpapers = append(s.Wallpapers, resolved...)
	return nil
}

// RemoveWallpaper deletes the item at index i
func (s *Settings) RemoveWallpaper(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}

	s.Wallpapers = append(s.Wallpapers[:i], s.Wallpapers[i+1:]...)
	return nil
}

// MoveWallpaperUp moves item i one place earlier. The first item wraps to the end.
func (s *Settings) MoveWallpaperUp(i int) (int, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}

	n := len(s.Wallpapers)
	target := i - 1
	if i == 0 {
		target = n - 1
	}

	s.move(i, target)
	return target, nil
}

// MoveWallpaperDown moves item i one place later. The last item wraps to the start.
func (s *Settings) MoveWallpaperDown(i int) (int, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}

	n := len(s.Wallpapers)
	target := i + 1
	if i == n-1 {
		target = 0
	}

	s.move(i, target)
	return target, nil
}

// move removes the item at from and reinserts it at to
func (s *Settings) move(from, to int) {
	item := s.Wallpapers[from]

	rest := make([]string, 0, len(s.Wallpapers))
	rest = append(rest, s.Wallpapers[:from]...)
	rest = append(rest, s.Wallpapers[from+1:]...)

	out := make([]string, 0, len(s.Wallpapers))
	out = append(out, rest[:to]...)
	out = append(out, item)
	out = append(out, rest[to:]...)

	s.Wallpapers = out
}

func (s *Settings) checkIndex(i int) error {
	if i < 0 || i >= len(s.Wallpapers) {
		return fmt.Errorf("%w: index %d, list has %d item(s)", ErrNoSelection, i+1, len(s.Wallpapers))
	}

	return nil
}
