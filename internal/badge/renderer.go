package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Norgate-AV/deskcycle/internal/interfaces"
)

var (
	backgroundColor = color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}
	borderColor     = color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}
	numeralColor    = color.White
)

const (
	cornerRadius = 40
	borderWidth  = 12
)

// Renderer draws numbered tray icons. Every Refresh acquires a surface, a
// font face and an output buffer and gives all three back before returning,
// including when rendering or assignment fails. Not safe for concurrent use.
type Renderer struct {
	font *opentype.Font
	base *image.RGBA

	surfaces sync.Pool
	buffers  sync.Pool

	// outstanding counts acquired resources not yet released
	outstanding int
}

// NewRenderer parses the embedded font and prepares the base icon
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse badge font: %w", err)
	}

	r := &Renderer{font: f, base: drawBase()}
	r.surfaces.New = func() any { return image.NewRGBA(image.Rect(0, 0, Size, Size)) }
	r.buffers.New = func() any { return new(bytes.Buffer) }

	return r, nil
}

// Refresh renders desktop number n (1-based) and assigns it to sink.
// The sink must copy the bytes if it keeps them; the buffer is reused.
func (r *Renderer) Refresh(sink interfaces.IconSink, n int) error {
	if n < 1 {
		return fmt.Errorf("desktop number %d must be positive", n)
	}

	p := Layout(n)

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    p.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %w", err)
	}
	r.outstanding++
	defer func() {
		face.Close()
		r.outstanding--
	}()

	surface := r.acquireSurface()
	defer r.releaseSurface(surface)

	draw.Draw(surface, surface.Bounds(), r.base, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  surface,
		Src:  image.NewUniform(numeralColor),
		Face: face,
		// Placement is the top-left of the text box; the drawer wants the baseline
		Dot: fixed.Point26_6{X: fixed.I(p.X), Y: fixed.I(p.Y) + face.Metrics().Ascent},
	}
	d.DrawString(strconv.Itoa(n))

	buf := r.acquireBuffer()
	defer r.releaseBuffer(buf)

	if err := EncodeICO(buf, surface); err != nil {
		return err
	}

	sink.SetIcon(buf.Bytes())
	return nil
}

// Render returns the icon bytes for desktop number n
func (r *Renderer) Render(n int) ([]byte, error) {
	var out []byte
	err := r.Refresh(sinkFunc(func(ico []byte) {
		out = append([]byte(nil), ico...)
	}), n)

	return out, err
}

type sinkFunc func([]byte)

func (f sinkFunc) SetIcon(ico []byte) { f(ico) }

func (r *Renderer) acquireSurface() *image.RGBA {
	r.outstanding++
	return r.surfaces.Get().(*image.RGBA)
}

func (r *Renderer) releaseSurface(s *image.RGBA) {
	clear(s.Pix)
	r.surfaces.Put(s)
	r.outstanding--
}

func (r *Renderer) acquireBuffer() *bytes.Buffer {
	r.outstanding++
	return r.buffers.Get().(*bytes.Buffer)
}

func (r *Renderer) releaseBuffer(b *bytes.Buffer) {
	b.Reset()
	r.buffers.Put(b)
	r.outstanding--
}

// drawBase paints the plain icon: a rounded square with a border
func drawBase() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !insideRounded(x, y, 0, cornerRadius) {
				continue
			}

			if insideRounded(x, y, borderWidth, cornerRadius-borderWidth) {
				img.SetRGBA(x, y, backgroundColor)
			} else {
				img.SetRGBA(x, y, borderColor)
			}
		}
	}

	return img
}

// insideRounded reports whether (x, y) lies in the square inset by inset
// pixels on each side with corners of radius r
func insideRounded(x, y, inset, r int) bool {
	lo, hi := inset, Size-1-inset
	if x < lo || x > hi || y < lo || y > hi {
		return false
	}

	cx, cy := x, y
	switch {
	case x < lo+r:
		cx = lo + r
	case x > hi-r:
		cx = hi - r
	}

	switch {
	case y < lo+r:
		cy = lo + r
	case y > hi-r:
		cy = hi - r
	}

	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
