package css_ast

// PropertyID enumerates the subset of CSS properties this library gives
// a typed value representation to. Properties outside this table are
// never rejected — they are parsed as a Declaration whose Value.Unparsed
// holds the tokens,
// an unknown property always falls back to a stored token list rather
// than being dropped — so the table only needs to cover the properties
// a caller actually wants typed access to, not the whole CSS property
// registry. This mirrors esbuild's own css_decl_table.go, which
// enumerates a curated property set for the same reason (minifier/
// printer special cases) rather than the complete CSS property registry.
type PropertyID uint16

const (
	PUnknown PropertyID = iota

	PColor
	PBackgroundColor
	PBorderColor
	POutlineColor

	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight

	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft
	PMargin

	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft
	PPadding

	PFontSize
	PFontWeight
	PFontFamily
	PLineHeight

	PDisplay
	PPosition
	PTop
	PRight
	PBottom
	PLeft
	PZIndex

	POpacity
	PTransform
	PTransition
	PAnimation
	PAnimationDuration
	PAnimationName

	PBorderWidth
	PBorderStyle
	PBorderRadius

	PFlex
	PFlexGrow
	PFlexShrink
	PFlexBasis
	PGridTemplateColumns
	PGridTemplateRows

	PCustomProperty // "--foo": Name on the Declaration carries the actual custom name
)

var propertyNames = map[string]PropertyID{
	"color": PColor, "background-color": PBackgroundColor,
	"border-color": PBorderColor, "outline-color": POutlineColor,
	"width": PWidth, "height": PHeight,
	"min-width": PMinWidth, "min-height": PMinHeight,
	"max-width": PMaxWidth, "max-height": PMaxHeight,
	"margin-top": PMarginTop, "margin-right": PMarginRight,
	"margin-bottom": PMarginBottom, "margin-left": PMarginLeft, "margin": PMargin,
	"padding-top": PPaddingTop, "padding-right": PPaddingRight,
	"padding-bottom": PPaddingBottom, "padding-left": PPaddingLeft, "padding": PPadding,
	"font-size": PFontSize, "font-weight": PFontWeight,
	"font-family": PFontFamily, "line-height": PLineHeight,
	"display": PDisplay, "position": PPosition,
	"top": PTop, "right": PRight, "bottom": PBottom, "left": PLeft, "z-index": PZIndex,
	"opacity": POpacity, "transform": PTransform,
	"transition": PTransition, "animation": PAnimation,
	"animation-duration": PAnimationDuration, "animation-name": PAnimationName,
	"border-width": PBorderWidth, "border-style": PBorderStyle, "border-radius": PBorderRadius,
	"flex": PFlex, "flex-grow": PFlexGrow, "flex-shrink": PFlexShrink, "flex-basis": PFlexBasis,
	"grid-template-columns": PGridTemplateColumns, "grid-template-rows": PGridTemplateRows,
}

// LookupProperty maps a lowercased property name to its PropertyID, or
// PUnknown for anything not in the typed table (custom properties are
// detected separately by their "--" prefix before this lookup runs).
func LookupProperty(name string) PropertyID {
	if id, ok := propertyNames[name]; ok {
		return id
	}
	return PUnknown
}
