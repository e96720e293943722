package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/valyala/fasttemplate"
)

const (
	colorTagColor = "color"
	colorTagText  = "text"
)

var colorTagTemplate = fasttemplate.New("<color={{color}}>{{text}}</color>", "{{", "}}")

// namedColors are the color names understood by the engine's rich text markup.
var namedColors = map[string]struct{}{
	"aqua": {}, "black": {}, "blue": {}, "brown": {}, "cyan": {}, "darkblue": {},
	"fuchsia": {}, "green": {}, "grey": {}, "lightblue": {}, "lime": {}, "magenta": {},
	"maroon": {}, "navy": {}, "olive": {}, "orange": {}, "purple": {}, "red": {},
	"silver": {}, "teal": {}, "white": {}, "yellow": {},
}

// Colorer is implemented by color values that can render their RGB channels as hex.
type Colorer interface {
	HexRGB() string
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Color32 is an RGBA color with channels in [0, 255].
type Color32 struct {
	R, G, B, A uint8
}

// HexRGB returns the RRGGBB representation of c, ignoring alpha.
// Channels are clamped to [0, 1] before conversion.
func (c Color) HexRGB() string {
	return c.To32().HexRGB()
}

// To32 converts c to 8-bit channels.
func (c Color) To32() Color32 {
	return Color32{
		R: channelTo8(c.R),
		G: channelTo8(c.G),
		B: channelTo8(c.B),
		A: channelTo8(c.A),
	}
}

// HexRGB returns the RRGGBB representation of c, ignoring alpha.
func (c Color32) HexRGB() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ToColor converts c to floating point channels.
func (c Color32) ToColor() Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func channelTo8(v float32) uint8 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// ColorTag wraps text in a color markup tag using colorValue verbatim.
func ColorTag(colorValue, text string) string {
	return colorTagTemplate.ExecuteString(map[string]interface{}{
		colorTagColor: colorValue,
		colorTagText:  text,
	})
}

// ColorizeText wraps text in a color tag of the form <color=#RRGGBB>text</color>.
func ColorizeText(text string, color Colorer) string {
	return ColorTag("#"+color.HexRGB(), text)
}

// ExpandHexShorthand expands a 3-character hex color ("abc" or "#abc") by
// doubling each character. Empty input, "red", and strings of any other
// character count are returned unchanged. Digits are not validated.
func ExpandHexShorthand(hex string) string {
	if hex == "" || hex == "red" {
		return hex
	}

	runes := []rune(hex)
	includesPound := runes[0] == '#'
	if (includesPound && len(runes) != 4) || (!includesPound && len(runes) != 3) {
		return hex
	}

	var sb strings.Builder
	start := 0
	if includesPound {
		sb.WriteByte('#')
		start = 1
	}
	for _, r := range runes[start:] {
		sb.WriteRune(r)
		sb.WriteRune(r)
	}
	return sb.String()
}

// IsNamedColor reports whether name is a markup color name such as "red".
func IsNamedColor(name string) bool {
	_, ok := namedColors[strings.ToLower(name)]
	return ok
}

// ParseHexColor parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB" into an opaque Color32.
func ParseHexColor(s string) (Color32, error) {
	expanded := strings.TrimPrefix(ExpandHexShorthand(s), "#")
	if len(expanded) != 6 {
		return Color32{}, errors.NewValidationError(fmt.Sprintf("invalid hex color %q", s), nil)
	}

	v, err := strconv.ParseUint(expanded, 16, 32)
	if err != nil {
		return Color32{}, errors.NewValidationError(fmt.Sprintf("invalid hex color %q", s), err)
	}

	return Color32{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// IsMarkupColor reports whether value can be used as a markup color: a known
// color name or a 3/6-digit hex code with an optional leading '#'.
func IsMarkupColor(value string) bool {
	if IsNamedColor(value) {
		return true
	}
	_, err := ParseHexColor(value)
	return err == nil
}
