package graphmesh

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	icolor "github.com/gogpu/graphmesh/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Opaque returns c with alpha set to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// Linear returns c converted from sRGB to linear space.
func (c RGBA) Linear() RGBA {
	l := icolor.ToLinear(icolor.F64{R: c.R, G: c.G, B: c.B, A: c.A})
	return RGBA{R: l.R, G: l.G, B: l.B, A: l.A}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clampUnit restricts a value to [0, 1]. NaN maps to 0.
func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// ColorType discriminates tagged color specifications.
type ColorType string

// Color type tags understood by ResolveColor.
const (
	// ColorTypeSolid resolves Value as a single color.
	ColorTypeSolid ColorType = "solid"
	// ColorTypeGradient describes a linear gradient. It has no single color.
	ColorTypeGradient ColorType = "gradient"
	// ColorTypeRadialGradient describes a radial gradient. It has no single color.
	ColorTypeRadialGradient ColorType = "radial-gradient"
)

// ColorSpec is a color specification as it arrives from a style: either a
// bare string (ColorType empty, Value set) or a tagged object.
//
// In YAML a ColorSpec may be written as a scalar ("#ff0000", "steelblue")
// or as a mapping with a colorType key.
type ColorSpec struct {
	ColorType ColorType `yaml:"colorType,omitempty"`
	Value     string    `yaml:"value,omitempty"`
	// Colors holds gradient stops. Only used by gradient tags.
	Colors []string `yaml:"colors,omitempty"`
	// Direction is the gradient angle in degrees. Only used by gradient tags.
	Direction float64 `yaml:"direction,omitempty"`
	// Opacity overrides any alpha carried by Value when set.
	Opacity *float64 `yaml:"opacity,omitempty"`
}

// HexColor returns a bare string color specification.
func HexColor(s string) *ColorSpec {
	return &ColorSpec{Value: s}
}

// SolidColor returns a tagged solid color specification.
func SolidColor(value string) *ColorSpec {
	return &ColorSpec{ColorType: ColorTypeSolid, Value: value}
}

// GradientColor returns a tagged linear gradient specification.
func GradientColor(direction float64, stops ...string) *ColorSpec {
	return &ColorSpec{ColorType: ColorTypeGradient, Colors: stops, Direction: direction}
}

// UnmarshalYAML accepts either a scalar string or a tagged mapping.
func (c *ColorSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = ColorSpec{Value: node.Value}
		return nil
	}
	type plain ColorSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = ColorSpec(p)
	return nil
}

// NormalizedColor is the result of resolving a ColorSpec: one opaque color
// plus the opacity the specification carried, if any.
type NormalizedColor struct {
	// Color is always opaque (A == 1).
	Color RGBA
	// Opacity is the explicit opacity in [0, 1]. Valid only if HasOpacity.
	Opacity float64
	// HasOpacity reports whether the specification carried an alpha
	// component or an opacity override.
	HasOpacity bool
}

// ResolveColor turns a color specification into a single displayable color.
//
// Bare strings and solid tags are parsed as hex ("#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa") or as a named color. A leading "##" is read as "#". Gradient
// tags, unknown tags, unparseable values and a nil spec all report false so
// the caller's default color stays in place. ResolveColor never fails.
func ResolveColor(spec *ColorSpec) (NormalizedColor, bool) {
	if spec == nil {
		return NormalizedColor{}, false
	}

	var (
		nc NormalizedColor
		ok bool
	)
	switch spec.ColorType {
	case "", ColorTypeSolid:
		nc, ok = parseColorString(spec.Value)
	default:
		return NormalizedColor{}, false
	}
	if !ok {
		return NormalizedColor{}, false
	}

	if spec.Opacity != nil && !math.IsNaN(*spec.Opacity) {
		nc.Opacity = clampUnit(*spec.Opacity)
		nc.HasOpacity = true
	}
	return nc, true
}

// parseColorString parses a hex or named color.
func parseColorString(s string) (NormalizedColor, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "##") {
		s = s[1:]
	}
	if hex, found := strings.CutPrefix(s, "#"); found {
		return parseHexColor(hex)
	}
	if s == "" {
		return NormalizedColor{}, false
	}
	if c, found := colornames.Map[cases.Fold().String(s)]; found {
		return NormalizedColor{Color: FromColor(c).Opaque()}, true
	}
	return NormalizedColor{}, false
}

// parseHexColor parses hex digits without the leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func parseHexColor(hex string) (NormalizedColor, bool) {
	var r, g, b, a uint32
	var hasAlpha bool

	switch len(hex) {
	case 3, 4: // RGB, RGBA
		digits := make([]uint32, len(hex))
		for i := range hex {
			v, ok := hexDigit(hex[i])
			if !ok {
				return NormalizedColor{}, false
			}
			digits[i] = v * 17
		}
		r, g, b = digits[0], digits[1], digits[2]
		if len(hex) == 4 {
			a, hasAlpha = digits[3], true
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		bytes := make([]uint32, len(hex)/2)
		for i := range bytes {
			hi, ok1 := hexDigit(hex[2*i])
			lo, ok2 := hexDigit(hex[2*i+1])
			if !ok1 || !ok2 {
				return NormalizedColor{}, false
			}
			bytes[i] = hi<<4 | lo
		}
		r, g, b = bytes[0], bytes[1], bytes[2]
		if len(hex) == 8 {
			a, hasAlpha = bytes[3], true
		}
	default:
		return NormalizedColor{}, false
	}

	nc := NormalizedColor{
		Color: RGB(float64(r)/255, float64(g)/255, float64(b)/255),
	}
	if hasAlpha {
		nc.Opacity = float64(a) / 255
		nc.HasOpacity = true
	}
	return nc, true
}

// hexDigit returns the value of a single hex digit.
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
