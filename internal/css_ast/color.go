package css_ast

// Color is a sum type over every color notation CSS Color 4 defines.
// Exactly one of the pointer fields is non-nil; Kind names which, so
// switch code (the printer, color-mix resolution) doesn't need a type
// assertion chain to dispatch. Named and hex colors are folded to RGB at
// parse time (CSS Color 4 treats them as pure syntax sugar with no
// separate runtime representation), so there is no ColorNamed leaf. A
// declaration value that is only a color keyword is not stored as a
// Color: the value parser keeps it as Value.Ident.
type Color struct {
	Kind ColorKind

	RGB       *RGBColor
	HSL       *HSLColor
	HWB       *HWBColor
	Lab       *LabColor
	LCH       *LCHColor
	Oklab     *OklabColor
	Oklch     *OklchColor
	ColorFunc *ColorFunction

	// RelativeTo is non-nil when this color was produced by the
	// relative-color syntax ("rgb(from <color> ...)"); the origin color
	// is kept so a lossless serializer can round-trip it and so a value
	// resolver can re-derive components if the origin changes (e.g. when
	// the origin itself is a CSS variable).
	RelativeTo *Color

	// Mix is non-nil for color-mix(); it is mutually exclusive with all
	// of the leaves above.
	Mix *ColorMix
}

type ColorKind uint8

const (
	ColorRGB ColorKind = iota
	ColorHSL
	ColorHWB
	ColorLab
	ColorLCH
	ColorOklab
	ColorOklch
	ColorFuncKind
	ColorMixKind
)

// Component is a single color channel: either a resolved number/percentage
// or the "none" keyword (CSS Color 4 allows "none" in any channel to mean
// "unspecified, carry no contribution" — used heavily by relative-color
// syntax and by color interpolation).
type Component struct {
	Value   float64
	IsNone  bool
	Percent bool // true if written as "X%" rather than a bare number

	// Omitted is true when this component (always an alpha channel in
	// practice) was never written by the author and Value/Percent carry
	// only the CSS-defined default (fully opaque). It exists so the
	// printer can tell "the source had no alpha tail" apart from "the
	// source wrote an explicit 0" — both would otherwise produce the
	// same zero Component and the printer would have no way to
	// distinguish a default opaque color from an explicit transparent
	// one.
	Omitted bool
}

type RGBColor struct {
	R, G, B Component // 0-255 for numbers; the written percentage (50 for "50%") when Percent is set
	Alpha   Component
}

type HSLColor struct {
	H     Numeric // number as written; with an angle unit, Repr holds the whole text (e.g. "120deg")
	S, L  Component
	Alpha Component
}

type HWBColor struct {
	H     Numeric
	W, B  Component
	Alpha Component
}

// LabColor covers both lab() and lch()'s rectangular sibling; L is 0-100.
type LabColor struct {
	L, A, B Component
	Alpha   Component
}

type LCHColor struct {
	L, C  Component
	H     Numeric
	Alpha Component
}

type OklabColor struct {
	L, A, B Component
	Alpha   Component
}

type OklchColor struct {
	L, C  Component
	H     Numeric
	Alpha Component
}

// ColorFunction represents the general color() function: a named
// predefined or custom color space plus an arbitrary component list, for
// spaces (srgb-linear, display-p3, a98-rgb, prophoto-rgb, rec2020, xyz,
// xyz-d50, xyz-d65, or an author-defined "--name") this library does not
// special-case with a typed leaf.
type ColorFunction struct {
	Space      string
	Components []Component
	Alpha      Component
}

// ColorMix represents color-mix(in <method>, <color> [<percentage>]?,
// <color> [<percentage>]?). Percentages are nil when omitted (CSS Color 5
// then splits the remainder evenly, a resolution step deferred to the
// cascade/value-resolution layer rather than the AST).
type ColorMix struct {
	InterpolationMethod string // e.g. "srgb", "oklab", "hsl longer hue"
	Color1              Color
	Percent1            *float64
	Color2              Color
	Percent2            *float64
}
