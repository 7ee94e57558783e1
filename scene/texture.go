package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"vgfx/core"
)

// Image holds CPU-side RGBA8 pixels, 4 bytes per pixel, row-major with the
// top row first.
type Image struct {
	Name   string
	Width  int
	Height int
	Pixels []byte
}

// LoadImage reads a PNG, JPEG, BMP, TIFF, WebP or binary PPM file from disk.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeImage(f, path)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes any registered format from r and converts it to RGBA8.
func DecodeImage(r io.Reader, name string) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	out := &Image{Name: name, Width: b.Dx(), Height: b.Dy(), Pixels: rgba.Pix}
	core.Logger().Debug("image decoded", "name", name, "format", format, "width", out.Width, "height", out.Height)
	return out, nil
}

// DecodeImageBytes is DecodeImage over an in-memory buffer.
func DecodeImageBytes(name string, data []byte) (*Image, error) {
	return DecodeImage(bytes.NewReader(data), name)
}

// NewSolidImage creates a 1x1 image of one color.
func NewSolidImage(name string, r, g, b, a uint8) *Image {
	return &Image{Name: name, Width: 1, Height: 1, Pixels: []byte{r, g, b, a}}
}

// FlipVertical reverses the row order in place. GL expects the bottom row
// first.
func (img *Image) FlipVertical() {
	stride := img.Width * 4
	row := make([]byte, stride)
	for top, bottom := 0, img.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pixels[top*stride : (top+1)*stride]
		b := img.Pixels[bottom*stride : (bottom+1)*stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
}
