package css_parser

import (
	"strconv"
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// namedColors is a representative subset of CSS Color 4's named-color
// keyword table (Appendix A), enough to exercise the hex-folding path
// this library's typed Color model uses for every named/hex color (CSS
// Color 4 treats named colors as pure syntax sugar for an sRGB triple —
// there is no separate "named color" runtime representation). Names not
// in this table fall back to Value.Unparsed rather than failing the
// whole declaration.
var namedColors = map[string][3]uint8{
	"black": {0, 0, 0}, "white": {255, 255, 255}, "red": {255, 0, 0},
	"green": {0, 128, 0}, "blue": {0, 0, 255}, "yellow": {255, 255, 0},
	"orange": {255, 165, 0}, "purple": {128, 0, 128}, "gray": {128, 128, 128},
	"grey": {128, 128, 128}, "silver": {192, 192, 192}, "maroon": {128, 0, 0},
	"olive": {128, 128, 0}, "lime": {0, 255, 0}, "teal": {0, 128, 128},
	"navy": {0, 0, 128}, "fuchsia": {255, 0, 255}, "aqua": {0, 255, 255},
	"pink": {255, 192, 203}, "brown": {165, 42, 42}, "cyan": {0, 255, 255},
	"magenta": {255, 0, 255}, "gold": {255, 215, 0}, "indigo": {75, 0, 130},
	"violet": {238, 130, 238}, "coral": {255, 127, 80}, "salmon": {250, 128, 114},
	"khaki": {240, 230, 140}, "crimson": {220, 20, 60}, "chocolate": {210, 105, 30},
	"tan": {210, 180, 140}, "plum": {221, 160, 221}, "orchid": {218, 112, 214},
}

func parseColor(c *valueCursor) (css_ast.Color, bool) {
	if c.done() {
		return css_ast.Color{}, false
	}
	switch c.tok().Kind {
	case css_lexer.THash:
		return parseHexColor(c)
	case css_lexer.TIdent:
		name := strings.ToLower(c.text())
		if name == "transparent" {
			c.i++
			return css_ast.Color{Kind: css_ast.ColorRGB, RGB: &css_ast.RGBColor{Alpha: css_ast.Component{Value: 0}}}, true
		}
		if rgb, ok := namedColors[name]; ok {
			c.i++
			return css_ast.Color{Kind: css_ast.ColorRGB, RGB: &css_ast.RGBColor{
				R:     css_ast.Component{Value: float64(rgb[0])},
				G:     css_ast.Component{Value: float64(rgb[1])},
				B:     css_ast.Component{Value: float64(rgb[2])},
				Alpha: css_ast.Component{Value: 1, Omitted: true},
			}}, true
		}
		if name == "currentcolor" {
			c.i++
			return css_ast.Color{Kind: css_ast.ColorRGB, RGB: &css_ast.RGBColor{Alpha: css_ast.Component{Value: 1, Omitted: true}}}, true
		}
	case css_lexer.TFunction:
		name := strings.ToLower(c.text())
		switch name {
		case "rgb", "rgba":
			return parseRGBFunction(c)
		case "hsl", "hsla":
			return parseHSLFunction(c)
		case "hwb":
			return parseHWBFunction(c)
		case "lab":
			return parseLabFunction(c)
		case "lch":
			return parseLCHFunction(c)
		case "oklab":
			return parseOklabFunction(c)
		case "oklch":
			return parseOklchFunction(c)
		case "color":
			return parseColorFunction(c)
		case "color-mix":
			return parseColorMixFunction(c)
		}
	}
	return css_ast.Color{}, false
}

func parseHexColor(c *valueCursor) (css_ast.Color, bool) {
	hex := c.text()
	var r, g, b, a uint8 = 0, 0, 0, 255
	hasAlpha := false
	ok := true
	expand := func(s string) string {
		if len(s) == 1 {
			return s + s
		}
		return s
	}
	switch len(hex) {
	case 3, 4:
		parts := make([]string, len(hex))
		for i, ch := range hex {
			parts[i] = expand(string(ch))
		}
		r = hexByte(parts[0])
		g = hexByte(parts[1])
		b = hexByte(parts[2])
		if len(hex) == 4 {
			a = hexByte(parts[3])
			hasAlpha = true
		}
	case 6, 8:
		r = hexByte(hex[0:2])
		g = hexByte(hex[2:4])
		b = hexByte(hex[4:6])
		if len(hex) == 8 {
			a = hexByte(hex[6:8])
			hasAlpha = true
		}
	default:
		ok = false
	}
	if !ok {
		return css_ast.Color{}, false
	}
	c.i++
	return css_ast.Color{Kind: css_ast.ColorRGB, RGB: &css_ast.RGBColor{
		R: css_ast.Component{Value: float64(r)}, G: css_ast.Component{Value: float64(g)}, B: css_ast.Component{Value: float64(b)},
		Alpha: css_ast.Component{Value: float64(a) / 255, Omitted: !hasAlpha},
	}}, true
}

func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

// parseComponent parses one rgb()/hsl()/... argument: a <number> or
// <percentage>, or the "none" keyword (CSS Color 4's "missing
// component" syntax used by relative colors and interpolation).
func parseComponent(c *valueCursor) (css_ast.Component, bool) {
	c.skipWS()
	if c.done() {
		return css_ast.Component{}, false
	}
	switch c.tok().Kind {
	case css_lexer.TNumber:
		n := parseNumeric(c)
		c.i++
		return css_ast.Component{Value: n.Value}, true
	case css_lexer.TPercentage:
		pct := parsePercentageToken(c)
		c.i++
		return css_ast.Component{Value: pct.Numeric.Value * 100, Percent: true}, true
	case css_lexer.TIdent:
		if strings.EqualFold(c.text(), "none") {
			c.i++
			return css_ast.Component{IsNone: true}, true
		}
	}
	return css_ast.Component{}, false
}

// parseRelativeOrigin consumes the "from <color>" prelude that opens
// CSS Color 5's relative-color syntax (e.g. "rgb(from red r g b)"),
// reporting ok=false (without consuming anything) when no "from"
// keyword is present so the caller falls through to plain
// component parsing.
func parseRelativeOrigin(c *valueCursor) (css_ast.Color, bool) {
	c.skipWS()
	if c.done() || c.tok().Kind != css_lexer.TIdent || !strings.EqualFold(c.text(), "from") {
		return css_ast.Color{}, false
	}
	c.i++
	c.skipWS()
	origin, ok := parseColor(c)
	if !ok {
		return css_ast.Color{}, false
	}
	return origin, true
}

func eatCommaOrSpace(c *valueCursor) {
	c.skipWS()
	if !c.done() && c.tok().Kind == css_lexer.TComma {
		c.i++
		c.skipWS()
	}
}

// parseAlphaTail consumes an optional "/ <alpha>" (or legacy ", <alpha>")
// tail. When no such tail is present, the returned Component is marked
// Omitted so the printer can tell this default-opaque alpha apart from
// an alpha explicitly written as "0".
func parseAlphaTail(c *valueCursor) css_ast.Component {
	c.skipWS()
	if !c.done() && (c.tok().Kind == css_lexer.TDelim && c.text() == "/") {
		c.i++
		c.skipWS()
		if a, ok := parseComponent(c); ok {
			return a
		}
	} else if !c.done() && c.tok().Kind == css_lexer.TComma {
		c.i++
		c.skipWS()
		if a, ok := parseComponent(c); ok {
			return a
		}
	}
	return css_ast.Component{Value: 1, Omitted: true}
}

func closeFunctionArgs(c *valueCursor, argsEnd int) {
	c.i = argsEnd + 1
}

func parseRGBFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	r, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	g, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	b, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorRGB, RGB: &css_ast.RGBColor{R: r, G: g, B: b, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseHSLFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	inner.skipWS()
	if inner.done() || inner.tok().Kind != css_lexer.TNumber && inner.tok().Kind != css_lexer.TDimension {
		return css_ast.Color{}, false
	}
	h := parseNumeric(inner)
	if inner.tok().Kind == css_lexer.TDimension {
		// Keep the written angle unit so the hue prints back as written.
		h.Repr = inner.text()
	}
	inner.i++
	eatCommaOrSpace(inner)
	s, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	l, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorHSL, HSL: &css_ast.HSLColor{H: h, S: s, L: l, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseHWBFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	inner.skipWS()
	if inner.done() {
		return css_ast.Color{}, false
	}
	h := parseNumeric(inner)
	inner.i++
	eatCommaOrSpace(inner)
	w, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	bl, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorHWB, HWB: &css_ast.HWBColor{H: h, W: w, B: bl, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseThreeComponentAndAlpha(c *valueCursor) (a, b, d css_ast.Component, alpha css_ast.Component, origin css_ast.Color, isRelative bool, ok bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative = parseRelativeOrigin(inner)
	a, ok = parseComponent(inner)
	if !ok {
		return
	}
	eatCommaOrSpace(inner)
	b, ok = parseComponent(inner)
	if !ok {
		return
	}
	eatCommaOrSpace(inner)
	d, ok = parseComponent(inner)
	if !ok {
		return
	}
	alpha = parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	ok = true
	return
}

func parseLabFunction(c *valueCursor) (css_ast.Color, bool) {
	l, a, b, alpha, origin, isRelative, ok := parseThreeComponentAndAlpha(c)
	if !ok {
		return css_ast.Color{}, false
	}
	result := css_ast.Color{Kind: css_ast.ColorLab, Lab: &css_ast.LabColor{L: l, A: a, B: b, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseOklabFunction(c *valueCursor) (css_ast.Color, bool) {
	l, a, b, alpha, origin, isRelative, ok := parseThreeComponentAndAlpha(c)
	if !ok {
		return css_ast.Color{}, false
	}
	result := css_ast.Color{Kind: css_ast.ColorOklab, Oklab: &css_ast.OklabColor{L: l, A: a, B: b, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseLCHFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	l, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	ch, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	if inner.done() {
		return css_ast.Color{}, false
	}
	h := parseNumeric(inner)
	inner.i++
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorLCH, LCH: &css_ast.LCHColor{L: l, C: ch, H: h, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseOklchFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	l, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	ch, ok := parseComponent(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	eatCommaOrSpace(inner)
	if inner.done() {
		return css_ast.Color{}, false
	}
	h := parseNumeric(inner)
	inner.i++
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorOklch, Oklch: &css_ast.OklchColor{L: l, C: ch, H: h, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

func parseColorFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	origin, isRelative := parseRelativeOrigin(inner)
	inner.skipWS()
	if inner.done() || inner.tok().Kind != css_lexer.TIdent {
		return css_ast.Color{}, false
	}
	space := inner.text()
	inner.i++
	var components []css_ast.Component
	for {
		inner.skipWS()
		comp, ok := parseComponent(inner)
		if !ok {
			break
		}
		components = append(components, comp)
	}
	alpha := parseAlphaTail(inner)
	closeFunctionArgs(c, argsEnd)
	result := css_ast.Color{Kind: css_ast.ColorFuncKind, ColorFunc: &css_ast.ColorFunction{Space: space, Components: components, Alpha: alpha}}
	if isRelative {
		result.RelativeTo = &origin
	}
	return result, true
}

// parseColorMixFunction parses "color-mix(in <method>, <color> <pct>?, <color> <pct>?)".
// The interpolation method is kept as raw text (it is itself a small
// grammar — a color space name optionally followed by a hue
// interpolation keyword pair — with no further typed structure needed by
// this library's consumers).
func parseColorMixFunction(c *valueCursor) (css_ast.Color, bool) {
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return css_ast.Color{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	inner.skipWS()
	if inner.done() || inner.tok().Kind != css_lexer.TIdent || !strings.EqualFold(inner.text(), "in") {
		return css_ast.Color{}, false
	}
	inner.i++
	methodStart := inner.i
	for !inner.done() && inner.tok().Kind != css_lexer.TComma {
		inner.i++
	}
	method := strings.TrimSpace(inner.p.preludeText(methodStart, inner.i))
	if !inner.done() {
		inner.i++
	}
	inner.skipWS()
	col1, ok := parseColor(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	var pct1 *float64
	inner.skipWS()
	if !inner.done() && inner.tok().Kind == css_lexer.TPercentage {
		p := parsePercentageToken(inner).Numeric.Value * 100
		pct1 = &p
		inner.i++
	}
	inner.skipWS()
	if inner.done() || inner.tok().Kind != css_lexer.TComma {
		return css_ast.Color{}, false
	}
	inner.i++
	inner.skipWS()
	col2, ok := parseColor(inner)
	if !ok {
		return css_ast.Color{}, false
	}
	var pct2 *float64
	inner.skipWS()
	if !inner.done() && inner.tok().Kind == css_lexer.TPercentage {
		p := parsePercentageToken(inner).Numeric.Value * 100
		pct2 = &p
		inner.i++
	}
	closeFunctionArgs(c, argsEnd)
	return css_ast.Color{Kind: css_ast.ColorMixKind, Mix: &css_ast.ColorMix{
		InterpolationMethod: method, Color1: col1, Percent1: pct1, Color2: col2, Percent2: pct2,
	}}, true
}
