// Package css_cascade resolves the CSS Cascade 4 winner among a set of
// candidate declarations for the same property: it computes each
// candidate's CascadeWeight (origin, importance, layer order,
// specificity, source order — see css_ast.CascadeWeight) and sorts by
// it. esbuild has no counterpart to this package — it never evaluates
// cascade, only reprints/minifies CSS; it is grounded instead on
// other_examples/chrisuehlinger-viberowser's css/cascade.go, which
// implements the same origin/specificity/source-order precedence this
// package does (CascadeOrigin, MatchedRule, StyleResolver,
// sortByPrecedence), generalized here to the abstract (declaration,
// weight) candidate-set contract: selector-to-element matching is a DOM
// concern outside this library's scope, so a Candidate's
// Specificity/Origin/Layer are supplied by the caller (who already knows
// which selectors matched), and this package's job starts at "which of
// these already-matched declarations wins".
package css_cascade

import (
	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/google/uuid"
)

// LayerRegistry assigns a stable order index to every named or
// anonymous @layer a stylesheet declares, in first-occurrence order —
// CSS Cascade 5 §6.1's "layers are ordered by the order in which they
// are first mentioned, and nested layers are ordered within their
// parent". Anonymous layer blocks ("@layer { ... }" with no name) are
// still distinct layers with their own position in the order; since
// they have no stable name to key a map on, each gets a generated
// unique handle (github.com/google/uuid) the first time it is seen, so
// a later statement referencing the same layer by name is impossible by
// construction (anonymous layers cannot be reopened, matching the
// specification) while named layers declared multiple times correctly
// collapse to the same order index.
type LayerRegistry struct {
	order map[string]int
	next  int
}

func NewLayerRegistry() *LayerRegistry {
	return &LayerRegistry{order: make(map[string]int)}
}

// Visit walks a rule tree (recursing into @media/@supports/@container/
// @scope/@layer nested rule lists) registering every layer it finds.
// prefix is the dotted parent-layer name to prepend to nested layer
// names ("" at the top level).
func (r *LayerRegistry) Visit(rules []css_ast.R, prefix string) {
	for _, rule := range rules {
		switch rr := rule.(type) {
		case *css_ast.LayerRule:
			if len(rr.Names) == 0 {
				// Anonymous block layer: mint a unique handle so it can
				// never collide with, or be reopened by, a later named
				// or anonymous layer.
				name := prefix + "~anon-" + uuid.NewString()
				r.register(name)
				if rr.Rules != nil {
					r.Visit(rr.Rules, name+".")
				}
				continue
			}
			for _, n := range rr.Names {
				full := prefix + n
				r.register(full)
				if rr.Rules != nil {
					r.Visit(rr.Rules, full+".")
				}
			}
		case *css_ast.MediaRule:
			r.Visit(rr.Rules, prefix)
		case *css_ast.SupportsRule:
			r.Visit(rr.Rules, prefix)
		case *css_ast.ContainerRule:
			r.Visit(rr.Rules, prefix)
		case *css_ast.ScopeRule:
			r.Visit(rr.Rules, prefix)
		case *css_ast.GenericAtRule:
			if rr.Rules != nil {
				r.Visit(rr.Rules, prefix)
			}
		case *css_ast.StyleRule:
			if rr.Rules != nil {
				r.Visit(rr.Rules, prefix)
			}
		}
	}
}

func (r *LayerRegistry) register(name string) int {
	if i, ok := r.order[name]; ok {
		return i
	}
	i := r.next
	r.order[name] = i
	r.next++
	return i
}

// OrderOf returns the registered order index for a (possibly dotted)
// layer name, or (-1, false) if it was never declared.
func (r *LayerRegistry) OrderOf(name string) (int, bool) {
	i, ok := r.order[name]
	if !ok {
		return -1, false
	}
	return i, true
}

// Count returns the number of distinct layers registered.
func (r *LayerRegistry) Count() int {
	return r.next
}
