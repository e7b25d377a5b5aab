package badge

import (
	"fmt"
	"image"
	"io"

	"github.com/sergeymakinen/go-ico"
)

// EncodeICO writes img as a single-image ICO, the format the shell accepts
// for tray icons. A 256x256 image is stored as PNG, smaller ones as BMP.
func EncodeICO(w io.Writer, img image.Image) error {
	if err := ico.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode icon: %w", err)
	}

	return nil
}
