package renderer

import (
	"fmt"

	"vgfx/arena"
	"vgfx/core"
	"vgfx/scene"
)

// LoadTexture decodes an image file (PNG, JPEG, BMP, TIFF, WebP or binary
// PPM) and uploads it with nearest-neighbour filtering.
func (c *Context) LoadTexture(path string) (TextureHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	img, err := scene.LoadImage(path)
	if err != nil {
		return 0, err
	}
	return c.LoadTextureImage(img)
}

// LoadTextureImage uploads decoded pixels. Rows are flipped so texture
// coordinate (0,0) samples the bottom-left pixel.
func (c *Context) LoadTextureImage(img *scene.Image) (TextureHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pixels) < img.Width*img.Height*4 {
		return 0, fmt.Errorf("texture: invalid image")
	}
	flipped := *img
	flipped.Pixels = append([]byte(nil), img.Pixels...)
	flipped.FlipVertical()

	id, err := c.createTexture(&flipped)
	if err != nil {
		return 0, fmt.Errorf("upload texture %q: %w", img.Name, err)
	}
	h, err := c.textures.Bump()
	if err != nil {
		c.dev.DeleteTexture(id)
		return 0, err
	}
	if err := c.textures.Set(h, texture{id: id, width: img.Width, height: img.Height}); err != nil {
		c.dev.DeleteTexture(id)
		return 0, err
	}
	core.Logger().Debug("renderer: texture loaded", "name", img.Name, "handle", h,
		"width", img.Width, "height", img.Height)
	return TextureHandle(h), nil
}

// SetDefaultTexture chooses the texture drawn for models created with
// texture 0. Passing 0 restores the built-in white texture.
func (c *Context) SetDefaultTexture(h TextureHandle) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if h != 0 && !c.textures.Valid(arena.Handle(h)) {
		return handleErr("texture", arena.Handle(h), arena.ErrInvalidHandle)
	}
	c.defaultTexture = h
	return nil
}

func (c *Context) DefaultTexture() TextureHandle { return c.defaultTexture }

// TextureSize returns the pixel dimensions of h.
func (c *Context) TextureSize(h TextureHandle) (width, height int, err error) {
	if err := c.checkOpen(); err != nil {
		return 0, 0, err
	}
	t, err := c.textures.Get(arena.Handle(h))
	if err != nil {
		return 0, 0, handleErr("texture", arena.Handle(h), err)
	}
	return t.width, t.height, nil
}

// textureID resolves a handle to a device texture; 0 is the white texture,
// created on first use.
func (c *Context) textureID(h TextureHandle) (uint32, error) {
	if h != 0 {
		t, err := c.textures.Get(arena.Handle(h))
		if err != nil {
			return 0, handleErr("texture", arena.Handle(h), err)
		}
		return t.id, nil
	}
	if c.whiteTexture == 0 {
		id, err := c.createTexture(scene.NewSolidImage("white", 0xff, 0xff, 0xff, 0xff))
		if err != nil {
			return 0, fmt.Errorf("create white texture: %w", err)
		}
		c.whiteTexture = id
	}
	return c.whiteTexture, nil
}

// createTexture uploads img. Uploading leaves unit 0 unbound, so the texture
// memo is dropped and the next UseTexture binds again.
func (c *Context) createTexture(img *scene.Image) (uint32, error) {
	id, err := c.dev.CreateTexture(img)
	c.bind.textureBound = false
	return id, err
}
