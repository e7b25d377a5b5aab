package badge

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/deskcycle/internal/testutil"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	large := Placement{FontSize: 140, X: 100, Y: 50}
	medium := Placement{FontSize: 125, X: 75, Y: 65}
	small := Placement{FontSize: 80, X: 90, Y: 100}

	tests := []struct {
		n    int
		want Placement
	}{
		{1, large},
		{9, large},
		{10, medium},
		{42, medium},
		{99, medium},
		{100, small},
		{1000, small},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Layout(tt.n), "n=%d", tt.n)
	}
}

func TestLayout_ShrinksWithDigits(t *testing.T) {
	t.Parallel()

	one, two, three := Layout(5), Layout(50), Layout(500)

	assert.Greater(t, one.FontSize, two.FontSize)
	assert.Greater(t, two.FontSize, three.FontSize)
	assert.Less(t, two.X, one.X, "Two digits shift left")
}

func TestEncodeICO(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	img.SetRGBA(10, 10, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, EncodeICO(&buf, img))

	data := buf.Bytes()
	require.Greater(t, len(data), 22)

	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[0:2]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:4]), "type should be icon")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[4:6]), "one image")
	assert.Equal(t, byte(0), data[6], "width 256 is stored as 0")
	assert.Equal(t, byte(0), data[7], "height 256 is stored as 0")

	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])
	assert.Equal(t, uint32(22), offset)
	assert.Equal(t, len(data), int(offset+size))

	decoded, err := ico.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	r, _, _, a := decoded.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestEncodeICO_SmallImage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, EncodeICO(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32))))

	assert.Equal(t, byte(32), buf.Bytes()[6])
}

func TestEncodeICO_TooLarge(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := EncodeICO(&buf, image.NewRGBA(image.Rect(0, 0, 512, 512)))
	assert.Error(t, err)
}

func TestEncodeICO_WriteError(t *testing.T) {
	t.Parallel()

	err := EncodeICO(failingWriter{}, image.NewRGBA(image.Rect(0, 0, 16, 16)))
	assert.ErrorIs(t, err, testutil.ErrMock)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, testutil.ErrMock }

func TestRenderer_RefreshAssignsIcon(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	require.NoError(t, err)

	sink := testutil.NewMockIconSink()
	require.NoError(t, r.Refresh(sink, 3))

	require.Len(t, sink.Icons, 1)
	assert.Equal(t, []byte{0, 0, 1, 0, 1, 0}, sink.Icons[0][:6])
	assert.Zero(t, r.outstanding, "Surface, face and buffer must be released")
}

func TestRenderer_DrawsNumeral(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	require.NoError(t, err)

	for _, n := range []int{7, 42, 123} {
		data, err := r.Render(n)
		require.NoError(t, err)

		img, err := ico.Decode(bytes.NewReader(data))
		require.NoError(t, err)

		assert.True(t, hasWhitePixel(img), "n=%d should draw a white numeral", n)
	}
}

func TestRenderer_DifferentNumbersDiffer(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	require.NoError(t, err)

	a, err := r.Render(1)
	require.NoError(t, err)
	b, err := r.Render(2)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestRenderer_ReleasesWhenSinkPanics(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = r.Refresh(sinkFunc(func([]byte) { panic("tray gone") }), 1)
	})
	assert.Zero(t, r.outstanding)

	// The pooled surface comes back clean
	require.NoError(t, r.Refresh(testutil.NewMockIconSink(), 2))
	assert.Zero(t, r.outstanding)
}

func TestRenderer_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	require.NoError(t, err)

	sink := testutil.NewMockIconSink()
	assert.Error(t, r.Refresh(sink, 0))
	assert.Empty(t, sink.Icons)
	assert.Zero(t, r.outstanding)
}

func TestDrawBase_CornersTransparent(t *testing.T) {
	t.Parallel()

	base := drawBase()

	assert.Zero(t, base.RGBAAt(0, 0).A, "Rounded corner should be transparent")
	assert.Equal(t, backgroundColor, base.RGBAAt(Size/2, Size/2))
	assert.Equal(t, borderColor, base.RGBAAt(Size/2, 2))
}

func hasWhitePixel(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0xffff && r > 0xf000 && g > 0xf000 && bl > 0xf000 {
				return true
			}
		}
	}

	return false
}
