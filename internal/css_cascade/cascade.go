package css_cascade

import (
	"go.uber.org/zap"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
)

// Candidate is one declaration that matched an element, annotated with
// everything css_ast.CascadeWeight needs to rank it against the other
// declarations competing for the same property. Building this list —
// walking a stylesheet's rules, matching each rule's selector against
// an element, and keeping the ones that matched — is a DOM concern
// outside this library's scope; callers that do have a DOM (or a tree
// of their own) construct Candidates directly and hand them to a
// Resolver.
type Candidate struct {
	Declaration css_ast.Declaration
	Specificity css_ast.Specificity
	Origin      css_ast.Origin
	Layer       LayerRef
}

// LayerRef names the cascade layer a candidate's declaration belongs
// to, as resolved by a LayerRegistry. HasLayer is false for
// declarations that aren't inside any @layer block, which the
// specification places in an implicit final layer ranked after every
// named/anonymous layer (CascadeWeight.Less handles this: unlayered
// beats layered when not important, and loses to layered when
// important).
type LayerRef struct {
	Name     string
	Order    int
	HasLayer bool
}

// Weight projects a Candidate into the ordering key CascadeWeight.Less
// compares.
func (c Candidate) Weight() css_ast.CascadeWeight {
	return css_ast.CascadeWeight{
		Origin:      c.Origin,
		Important:   c.Declaration.Important,
		LayerOrder:  c.Layer.Order,
		HasLayer:    c.Layer.HasLayer,
		Specificity: c.Specificity,
		SourceOrder: c.Declaration.SourceOrder,
	}
}

// Resolver picks cascade winners from candidate sets. Its only state is
// an optional debug tracer, so the zero value (silent) is ready to use.
type Resolver struct {
	// Tracer receives a debug event each time Winner displaces its
	// current best candidate, naming the property and the two
	// competing source positions. Nil (the default) is silent.
	Tracer *zap.Logger
}

func (r Resolver) tracer() *zap.Logger {
	if r.Tracer == nil {
		return zap.NewNop()
	}
	return r.Tracer
}

// Winner returns the candidate whose weight is greatest among
// candidates (CascadeWeight.Less induces the CSS Cascade 4 §4 total
// order: origin/importance, then layer, then specificity, then source
// order). ok is false when candidates is empty.
func (r Resolver) Winner(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	tracer := r.tracer()
	best := candidates[0]
	bestWeight := best.Weight()
	for _, c := range candidates[1:] {
		w := c.Weight()
		if bestWeight.Less(w) {
			tracer.Debug("cascade winner displaced",
				zap.String("property", c.Declaration.Name),
				zap.Int("displacedSourceOrder", best.Declaration.SourceOrder),
				zap.Int("newSourceOrder", c.Declaration.SourceOrder),
			)
			best = c
			bestWeight = w
		}
	}
	return best, true
}

// Sort returns candidates ordered from lowest to highest precedence,
// i.e. the cascade winner is the last element. Ties (equal weight)
// preserve their relative input order.
func (Resolver) Sort(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	weights := make([]css_ast.CascadeWeight, len(out))
	for i, c := range out {
		weights[i] = c.Weight()
	}
	// Insertion sort: candidate sets are small (the declarations for one
	// property on one element) and this keeps the tie-preserving
	// (stable) behavior explicit without reaching for sort.SliceStable
	// over a weight slice kept in lockstep with out.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && weights[j].Less(weights[j-1]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
			weights[j-1], weights[j] = weights[j], weights[j-1]
		}
	}
	return out
}

// ResolveByProperty groups candidates by declaration name (so
// "color" and "--accent" are resolved independently) and returns the
// winning declaration for each. Shorthand/longhand expansion is not
// performed here — candidates must already be expressed in terms of
// the properties they set, matching how the parser records
// declarations one name at a time.
func ResolveByProperty(candidates []Candidate) map[string]css_ast.Declaration {
	byName := make(map[string][]Candidate)
	for _, c := range candidates {
		byName[c.Declaration.Name] = append(byName[c.Declaration.Name], c)
	}
	var r Resolver
	winners := make(map[string]css_ast.Declaration, len(byName))
	for name, group := range byName {
		if w, ok := r.Winner(group); ok {
			winners[name] = w.Declaration
		}
	}
	return winners
}
