package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	alpha := float32(1)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: bad alpha", s)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, nil
}

// ColorHSV builds an opaque color from hue in degrees and saturation and
// value in [0, 1].
func ColorHSV(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v).Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	rgb := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
	a := min(max(c.A, 0), 1)
	return fmt.Sprintf("%s%02x", rgb, uint8(a*255+0.5))
}

// UnmarshalYAML accepts a hex string or a mapping of r, g, b and optional a
// (default 1).
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		col, err := ParseHex(n.Value)
		if err != nil {
			return err
		}
		*c = col
		return nil
	}
	type plain Color
	p := plain{A: 1}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*c = Color(p)
	return nil
}
