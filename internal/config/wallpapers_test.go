package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveWallpaperUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		want       []string
		wantTarget int
	}{
		{name: "middle moves earlier", index: 1, want: []string{"b", "a", "c"}, wantTarget: 0},
		{name: "last moves earlier", index: 2, want: []string{"a", "c", "b"}, wantTarget: 1},
		{name: "first wraps to end", index: 0, want: []string{"b", "c", "a"}, wantTarget: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Settings{Wallpapers: []string{"a", "b", "c"}}
			target, err := s.MoveWallpaperUp(tt.index)
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.Wallpapers)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestMoveWallpaperDown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		want       []string
		wantTarget int
	}{
		{name: "first moves later", index: 0, want: []string{"b", "a", "c"}, wantTarget: 1},
		{name: "middle moves later", index: 1, want: []string{"a", "c", "b"}, wantTarget: 2},
		{name: "last wraps to start", index: 2, want: []string{"c", "a", "b"}, wantTarget: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Settings{Wallpapers: []string{"a", "b", "c"}}
			target, err := s.MoveWallpaperDown(tt.index)
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.Wallpapers)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestMoveWallpaper_SingleItem(t *testing.T) {
	t.Parallel()

	s := Settings{Wallpapers: []string{"only"}}

	_, err := s.MoveWallpaperUp(0)
	require.NoError(t, err)
	_, err = s.MoveWallpaperDown(0)
	require.NoError(t, err)

	assert.Equal(t, []string{"only"}, s.Wallpapers)
}

func TestListOperations_InvalidIndexLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	ops := map[string]func(s *Settings) error{
		"remove": func(s *Settings) error { return s.RemoveWallpaper(3) },
		"up":     func(s *Settings) error { _, err := s.MoveWallpaperUp(-1); return err },
		"down":   func(s *Settings) error { _, err := s.MoveWallpaperDown(5); return err },
	}

	for name, op := range ops {
		op := op
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := Settings{Wallpapers: []string{"a", "b", "c"}}
			err := op(&s)

			assert.ErrorIs(t, err, ErrNoSelection)
			assert.Equal(t, []string{"a", "b", "c"}, s.Wallpapers)
		})
	}
}

func TestListOperations_EmptyList(t *testing.T) {
	t.Parallel()

	s := Default()

	assert.ErrorIs(t, s.RemoveWallpaper(0), ErrNoSelection)
	_, err := s.MoveWallpaperUp(0)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestRemoveWallpaper(t *testing.T) {
	t.Parallel()

	s := Settings{Wallpapers: []string{"a", "b", "c"}}
	require.NoError(t, s.RemoveWallpaper(1))

	assert.Equal(t, []string{"a", "c"}, s.Wallpapers)
}

func TestAddWallpapers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.bmp")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	s := Default()
	require.NoError(t, s.AddWallpapers(a, b))

	assert.Equal(t, []string{a, b}, s.Wallpapers)
}

func TestAddWallpapers_MissingFileAddsNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))

	s := Default()
	err := s.AddWallpapers(a, filepath.Join(dir, "missing.jpg"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallpaper does not exist")
	assert.Empty(t, s.Wallpapers, "No file should be added when any is missing")
}

func TestAddWallpapers_RejectsDirectory(t *testing.T) {
	t.Parallel()

	s := Default()
	err := s.AddWallpapers(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestIsImage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsImage("photo.JPG"))
	assert.True(t, IsImage(`C:\x\y.bmp`))
	assert.True(t, IsImage("anim.gif"))
	assert.False(t, IsImage("notes.txt"))
	assert.False(t, IsImage("noext"))
}
