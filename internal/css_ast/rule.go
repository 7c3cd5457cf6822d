package css_ast

import "github.com/6over3/CSSKit-sub004/internal/logger"

// R is the marker interface implemented by every rule variant. It
// follows esbuild's own sum-type-via-unexported-method pattern
// (internal/css_ast.R): an interface with one unexported
// method so only types in this package can satisfy it, giving a closed
// set the parser and printer can type-switch over exhaustively without
// a runtime "unknown rule" default ever being reachable from outside
// this package.
type R interface {
	isRule()
	Loc() logger.Range
}

type ruleLoc struct {
	Range logger.Range
}

func (r ruleLoc) Loc() logger.Range { return r.Range }

// StyleRule is a qualified rule whose prelude parsed as a selector list:
// "<selector-list> { <declarations> <nested-rules> }".
type StyleRule struct {
	ruleLoc
	Selectors SelectorList
	Decls     []Declaration
	Rules     []R // nested rules, CSS Nesting
}

func (*StyleRule) isRule() {}

// ImportRule is "@import <url> [<layer>]? [<supports()>]? [<media-query-list>]?;"
type ImportRule struct {
	ruleLoc
	URL        string
	LayerName  string // empty means no layer(); "anonymous layer" handles are minted by the caller, not stored here
	HasLayer   bool
	Supports   string // raw supports() condition text, if present
	MediaQuery string // raw media query list text
}

func (*ImportRule) isRule() {}

// NamespaceRule is "@namespace [<prefix>]? <url-or-string>;"
type NamespaceRule struct {
	ruleLoc
	Prefix string
	URI    string
}

func (*NamespaceRule) isRule() {}

// MediaRule is "@media <media-query-list> { <rules> }"
type MediaRule struct {
	ruleLoc
	Query string
	Rules []R
}

func (*MediaRule) isRule() {}

// SupportsRule is "@supports <supports-condition> { <rules> }"
type SupportsRule struct {
	ruleLoc
	Condition string
	Rules     []R
}

func (*SupportsRule) isRule() {}

// KeyframesRule is "@keyframes <name> { <keyframe-blocks> }"
type KeyframesRule struct {
	ruleLoc
	Name   string
	Blocks []KeyframeBlock
}

func (*KeyframesRule) isRule() {}

// KeyframeBlock is one "<selector-list> { <declarations> }" entry inside
// @keyframes, where the selector list is a comma list of percentages or
// the keywords "from"/"to" (kept as raw text; CSS Animations keyframe
// selectors are not part of the CSS Selectors 4 grammar this library's
// Selector type models).
type KeyframeBlock struct {
	Selectors []string // e.g. ["0%", "50%"] or ["from"]
	Decls     []Declaration
}

// LayerRule covers both forms of @layer: the statement form
// ("@layer a, b;", Rules is nil) and the block form
// ("@layer [<name>]? { <rules> }"). Names is empty for an anonymous
// block layer.
type LayerRule struct {
	ruleLoc
	Names []string
	Rules []R // nil for the statement form
}

func (*LayerRule) isRule() {}

// ContainerRule is "@container [<name>]? <container-condition> { <rules> }"
type ContainerRule struct {
	ruleLoc
	Name      string
	Condition string
	Rules     []R
}

func (*ContainerRule) isRule() {}

// ScopeRule is "@scope [(<scope-start>)]? [to (<scope-end>)]? { <rules> }"
type ScopeRule struct {
	ruleLoc
	Start string
	End   string
	Rules []R
}

func (*ScopeRule) isRule() {}

// CustomMediaRule is "@custom-media --<name> <media-query-list>;"
type CustomMediaRule struct {
	ruleLoc
	Name  string
	Query string
}

func (*CustomMediaRule) isRule() {}

// NestDeclarationsRule wraps a run of plain declarations that appear
// after a nested rule inside a style rule body (CSS Nesting requires
// such trailing declarations to be hoisted into an implicit "&  { }"
// rule so cascade order is preserved); the printer and parser both treat
// it as a rule so ordering among a style rule's children is uniform.
type NestDeclarationsRule struct {
	ruleLoc
	Decls []Declaration
}

func (*NestDeclarationsRule) isRule() {}

// GenericAtRule covers every at-rule whose body is "just declarations"
// and which does not need a dedicated prelude type: @font-face,
// @font-feature-values, @font-palette-values, @counter-style, @page,
// @property, @viewport, @starting-style, @view-transition. Distinct
// preludes (e.g. @page's optional pseudo-class, @property's required
// "--name") are kept in Prelude as raw text — they are few enough call
// sites that a typed prelude per at-rule would be ceremony without
// payoff, and none of these preludes carry cascade/selector semantics
// that would require anything more than opaque text.
type GenericAtRule struct {
	ruleLoc
	Name    string // "font-face", "page", "property", ...
	Prelude string
	Decls   []Declaration
	Rules   []R // non-nil only for block-level generic at-rules that nest rules (e.g. @starting-style)
}

func (*GenericAtRule) isRule() {}

// UnknownAtRule preserves an at-rule this library does not recognize at
// all, verbatim, so a round-tripping serializer never silently drops
// content it does not understand (spec's "unknown at-rule" row).
type UnknownAtRule struct {
	ruleLoc
	Name    string
	Prelude []Token
	Block   []Token // nil if the at-rule ended in ";" rather than a block
}

func (*UnknownAtRule) isRule() {}
