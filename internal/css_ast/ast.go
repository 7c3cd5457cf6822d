// Package css_ast is the typed data model produced by parsing: the
// Stylesheet/Rule tree, the Selector/Specificity model, and the typed
// value leaves (Numeric, CSSLength/Angle/Time/Resolution/Percentage,
// CSSCalc, Color). esbuild's own css_ast.go has no counterpart for most
// of this package — its rules are stored as raw tokens with no
// selector/specificity/typed-value model, since esbuild only needs to
// reprint and minify CSS, never evaluate cascade or resolve a
// declaration's value to a number. This package adds a typed layer on
// top of that, grounded primarily on the data model required to
// represent CSS Syntax/Values/Selectors, with the Selector/Specificity
// shapes additionally checked against chrisuehlinger-viberowser's css
// package (the one pack example with a real specificity/cascade
// implementation) — see rule.go, selector.go, numeric.go, calc.go,
// color.go for the individual types, and follows esbuild's general Go
// idioms: marker-interface sum types for closed variant sets,
// token-range raw storage as the fallback for anything not worth a
// dedicated type.
package css_ast

import "github.com/6over3/CSSKit-sub004/internal/logger"

// Stylesheet is the root of a parsed document.
type Stylesheet struct {
	Rules []R

	// SourceMappingURL and SourceURL carry the directive comments the
	// tokenizer extracts (css_lexer.TokenizeResult), surfaced here so a
	// caller working only with the parsed AST does not need to keep the
	// lexer's result around separately.
	SourceMappingURL string
	SourceURL        string

	Source logger.Source
}

// Origin identifies which cascade origin (CSS Cascade 4 §6) a
// declaration came from: user-agent, user, author, or transition. A
// Stylesheet carries no origin of its own; the caller that builds a
// cascade candidate (css_cascade.Candidate.Origin) supplies it.
type Origin uint8

const (
	OriginUserAgent Origin = iota
	OriginUser
	OriginAuthor

	// OriginTransition is the implicit origin CSS Transitions 1 assigns
	// to the declarations a running transition generates: it outranks
	// every other origin at every importance level (spec.md §4.7's
	// tier list places it above "(user-agent, important)", the highest
	// of the other six tiers), so Less short-circuits on it below
	// rather than folding it into the normal/important flip the other
	// three origins share.
	OriginTransition
)

// CascadeWeight is the total ordering key CSS Cascade 4 §4 assigns to a
// declaration: origin & importance, the index of the @layer it falls in
// (layers are ordered by first declaration, with an implicit unlayered
// bucket sorting last in the normal order and first in the important
// order), specificity, and source order. It is built for each matched
// declaration from its cascade candidate (Candidate.Weight in
// internal/css_cascade) and compared as an opaque key.
type CascadeWeight struct {
	Origin      Origin
	Important   bool
	LayerOrder  int // index among declared layers; ignored when HasLayer is false (unlayered)
	HasLayer    bool
	Specificity Specificity
	SourceOrder int
}

// Less implements the CSS Cascade 4 ordering: for normal declarations,
// origin precedence is UA < user < author, and among layers the
// first-declared layer loses to later ones except the implicit
// unlayered bucket, which wins over all named layers; for important
// declarations every one of those orderings inverts except source order
// and specificity, which always break ties the same way regardless of
// importance.
func (w CascadeWeight) Less(o CascadeWeight) bool {
	if w.Origin == OriginTransition || o.Origin == OriginTransition {
		if w.Origin != o.Origin {
			return w.Origin < o.Origin
		}
		return w.SourceOrder < o.SourceOrder
	}
	if w.Important != o.Important {
		// A normal declaration always loses to an important one,
		// regardless of origin — importance is compared first.
		return !w.Important
	}
	if w.Important {
		if w.Origin != o.Origin {
			// Important: user-agent beats user beats author (inverted).
			return w.Origin > o.Origin
		}
		if w.HasLayer != o.HasLayer {
			// Important: the unlayered bucket loses to any named layer.
			return !w.HasLayer
		}
		if w.HasLayer && w.LayerOrder != o.LayerOrder {
			return w.LayerOrder > o.LayerOrder
		}
	} else {
		if w.Origin != o.Origin {
			return w.Origin < o.Origin
		}
		if w.HasLayer != o.HasLayer {
			return w.HasLayer
		}
		if w.HasLayer && w.LayerOrder != o.LayerOrder {
			return w.LayerOrder < o.LayerOrder
		}
	}
	if cmp := w.Specificity.Compare(o.Specificity); cmp != 0 {
		return cmp < 0
	}
	return w.SourceOrder < o.SourceOrder
}
