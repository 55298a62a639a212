// Package palette holds the colour helpers used to paint league banners.
package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit per channel RGB value.
type Color struct {
	R, G, B uint8
}

// ParseHex accepts "#RRGGBB" (or the short "#RGB" form).
func ParseHex(raw string) (Color, error) {
	value := strings.TrimSpace(raw)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", raw, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is for static tables only.
func MustParseHex(raw string) Color {
	c, err := ParseHex(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// BuildGradient interpolates each channel linearly from start towards end over steps rows.
// Row i is start + (end-start)*i/steps truncated, so end itself is never reached.
func BuildGradient(start, end Color, steps int) []Color {
	if steps <= 0 {
		return []Color{}
	}

	rStep := (float64(end.R) - float64(start.R)) / float64(steps)
	gStep := (float64(end.G) - float64(start.G)) / float64(steps)
	bStep := (float64(end.B) - float64(start.B)) / float64(steps)

	out := make([]Color, steps)
	for i := range out {
		out[i] = Color{
			R: uint8(float64(start.R) + rStep*float64(i)),
			G: uint8(float64(start.G) + gStep*float64(i)),
			B: uint8(float64(start.B) + bStep*float64(i)),
		}
	}
	return out
}
