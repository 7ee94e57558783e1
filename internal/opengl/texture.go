package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"vgfx/scene"
)

// CreateTexture uploads tightly packed RGBA pixels with nearest-neighbour
// filtering and repeat wrapping.
func (d *Device) CreateTexture(img *scene.Image) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture has no pixel data")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&img.Pixels[0]),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("upload texture " + img.Name); err != nil {
		gl.DeleteTextures(1, &id)
		return 0, err
	}
	return id, nil
}

func (d *Device) BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}
