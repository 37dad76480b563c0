package renderer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidColor = errors.New("renderer: color must be a string, [r,g,b] or [r,g,b,a]")

// Color is the rendered svg paint value: a named color, rgb(..), rgba(..) or none.
type Color string

const NoneColor Color = "none"

func NamedColor(name string) Color {
	return Color(name)
}

func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color(fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatFloat(opacity)))
}

func (c Color) String() string {
	if c == "" {
		return string(NoneColor)
	}
	return string(c)
}

func (c *Color) UnmarshalJSON(data []byte) error {
	parsed, err := ParseColor(data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor. "red" | [255,16,12] | [255,16,12,0.85]
func ParseColor(raw json.RawMessage) (Color, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", ErrInvalidColor
	}

	if raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		return NamedColor(name), nil
	}

	var parts []float64
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return "", ErrInvalidColor
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		if parts[i] < 0 || parts[i] > 255 {
			return "", fmt.Errorf("%w: channel %v out of range", ErrInvalidColor, parts[i])
		}
		rgb[i] = uint8(parts[i])
	}
	if len(parts) == 3 {
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	if parts[3] < 0 || parts[3] > 1 {
		return "", fmt.Errorf("%w: opacity %v out of range", ErrInvalidColor, parts[3])
	}
	return RGBA(rgb[0], rgb[1], rgb[2], parts[3]), nil
}
