// Package colors resolves the color identifiers stored in settings and used by
// the Paint palette. Identifiers are either named colors ("lightgray",
// "Light Gray") or hex triplets as produced by a color picker ("#c0c0c0").
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultBackground is used whenever a stored identifier cannot be rendered.
const DefaultBackground = "lightgray"

var ErrUnknownColor = errors.New("unknown color")

// Parse converts a color identifier into a concrete color.
func Parse(id string) (color.Color, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownColor)
	}

	if strings.HasPrefix(id, "#") {
		return parseHex(id)
	}

	name := strings.ToLower(strings.ReplaceAll(id, " ", ""))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, id)
}

// Resolve never fails: unparseable identifiers become DefaultBackground.
func Resolve(id string) color.Color {
	c, err := Parse(id)
	if err != nil {
		return colornames.Map[DefaultBackground]
	}
	return c
}

// Hex renders c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// parseHex accepts #rgb, #rrggbb and #rrrrggggbbbb (the Tk 16-bit form).
func parseHex(id string) (color.Color, error) {
	digits := id[1:]
	var width int
	switch len(digits) {
	case 3:
		width = 1
	case 6:
		width = 2
	case 12:
		width = 4
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, id)
	}

	var channels [3]uint8
	for i := range channels {
		part := digits[i*width : (i+1)*width]
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, id)
		}
		switch width {
		case 1:
			channels[i] = uint8(v * 0x11)
		case 2:
			channels[i] = uint8(v)
		case 4:
			channels[i] = uint8(v >> 8)
		}
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}
