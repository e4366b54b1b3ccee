package chart

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]drawing.Color{
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"pink":    {R: 255, G: 192, B: 203, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
}

// ParseColor turns a palette entry into a color. Accepted forms are #RGB,
// #RRGGBB, #RRGGBBAA and a small set of CSS color names.
func ParseColor(code string) (drawing.Color, error) {
	raw := strings.TrimSpace(code)
	if c, ok := namedColors[strings.ToLower(raw)]; ok {
		return c, nil
	}

	if !strings.HasPrefix(raw, "#") {
		return drawing.Color{}, errors.Wrapf(ErrInvalidColor, "%q", code)
	}
	hex := raw[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return drawing.Color{}, errors.Wrapf(ErrInvalidColor, "%q", code)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return drawing.Color{}, errors.Wrapf(ErrInvalidColor, "%q", code)
	}

	return drawing.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParsePalette parses every entry of palette, failing on the first bad one.
func ParsePalette(palette []string) ([]drawing.Color, error) {
	colors := make([]drawing.Color, 0, len(palette))
	for _, code := range palette {
		c, err := ParseColor(code)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// colorAt picks the color for position i, cycling when the palette is short.
func colorAt(colors []drawing.Color, i int) drawing.Color {
	if len(colors) == 0 {
		return namedColors["black"]
	}
	return colors[i%len(colors)]
}
