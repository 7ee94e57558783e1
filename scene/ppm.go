package scene

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

var errBadPPM = errors.New("ppm: invalid header")

func init() {
	image.RegisterFormat("ppm", "P6", decodePPM, decodePPMConfig)
}

type ppmHeader struct {
	width, height, maxval int
}

// readPPMHeader parses "P6 <width> <height> <maxval>" followed by a single
// whitespace byte. Comments run from '#' to end of line.
func readPPMHeader(r *bufio.Reader) (ppmHeader, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return ppmHeader{}, err
	}
	if magic != [2]byte{'P', '6'} {
		return ppmHeader{}, fmt.Errorf("ppm: unsupported magic %q", magic[:])
	}
	var vals [3]int
	for i := range vals {
		tok, err := ppmToken(r)
		if err != nil {
			return ppmHeader{}, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return ppmHeader{}, errBadPPM
		}
		vals[i] = n
	}
	h := ppmHeader{width: vals[0], height: vals[1], maxval: vals[2]}
	if h.maxval > 65535 {
		return ppmHeader{}, errBadPPM
	}
	return h, nil
}

func ppmToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return "", err
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func decodePPMConfig(r io.Reader) (image.Config, error) {
	h, err := readPPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: h.width, Height: h.height}, nil
}

func decodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readPPMHeader(br)
	if err != nil {
		return nil, err
	}
	sample := 1
	if h.maxval > 255 {
		sample = 2
	}
	raw := make([]byte, h.width*h.height*3*sample)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("ppm: pixel data: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	scale := func(v int) uint8 {
		if v > h.maxval {
			v = h.maxval
		}
		return uint8(v * 255 / h.maxval)
	}
	for i := 0; i < h.width*h.height; i++ {
		for c := 0; c < 3; c++ {
			var v int
			if sample == 2 {
				o := (i*3 + c) * 2
				v = int(raw[o])<<8 | int(raw[o+1])
			} else {
				v = int(raw[i*3+c])
			}
			img.Pix[i*4+c] = scale(v)
		}
		img.Pix[i*4+3] = 0xff
	}
	return img, nil
}
