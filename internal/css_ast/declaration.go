package css_ast

import "github.com/6over3/CSSKit-sub004/internal/logger"

// Value is a parsed property value: exactly one of the typed leaves is
// set by the value parser that understood this property's grammar, or
// Unparsed holds the raw token list when the property was unknown, its
// value referenced a custom property (var()/env()), or its grammar
// failed to match — a declaration degrades to unparsed storage in
// every such case rather than being dropped.
type Value struct {
	Unparsed []Token

	Color      *Color
	Length     *CSSDimensionPercentage[CSSLength]
	Angle      *CSSDimensionPercentage[CSSAngle]
	Time       *CSSDimensionPercentage[CSSTime]
	Resolution *CSSResolution
	Number     *Numeric
	Percentage *CSSPercentage
	Ident      *string
	Str        *string

	// List holds a comma- or space-separated sequence of sub-values for
	// shorthand/multi-value properties (font-family, transition,
	// grid-template-columns track lists, ...); each entry reuses this
	// same Value shape.
	List []Value
}

func (v Value) IsUnparsed() bool { return v.Unparsed != nil }

// Declaration is a single "property: value[ !important];" pair, the
// leaf node of a declaration list (style rule body, @font-face body, a
// nested-declarations rule, ...).
type Declaration struct {
	Name      string // lowercased property name, or original-case "--custom-name"
	Property  PropertyID
	Value     Value
	Important bool
	Range     logger.Range

	// SourceOrder is a monotonically increasing index stamped by the
	// parser across the whole stylesheet, used by the cascade resolver
	// to break ties between declarations that are otherwise equal in
	// origin, layer, importance, and specificity (CSS Cascade 4 §4,
	// final tiebreak).
	SourceOrder int
}
