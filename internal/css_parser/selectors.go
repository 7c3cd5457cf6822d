package css_parser

import (
	"strconv"
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

// pseudoElementNames and forwardingPseudoClasses ground the CSS
// Selectors 4 §17 specificity rules this library computes: pseudo-
// elements count as a type selector (Elements+1); :where() and its
// arguments contribute zero specificity; :is()/:has()/:not() contribute
// the specificity of their most specific argument (CSS Selectors 4
// §17.1's "the specificity of the most specific complex selector in its
// selector list argument").
var pseudoElementNames = map[string]bool{
	"before": true, "after": true, "first-line": true, "first-letter": true,
	"selection": true, "placeholder": true, "marker": true, "backdrop": true,
	"file-selector-button": true,
}

var forwardingPseudoClasses = map[string]bool{"is": true, "has": true, "not": true}

// parseSelectorListFromTokens parses a selector list prelude confined to
// the flat token range [start, end) — the span parseQualifiedOrStyleRule
// already isolated between the previous delimiter and the rule's "{".
func (p *parser) parseSelectorListFromTokens(start, end int) css_ast.SelectorList {
	c := &valueCursor{p: p, i: start, end: end}
	var list css_ast.SelectorList
	for {
		c.skipWS()
		if c.done() {
			break
		}
		sel, ok := p.parseComplexSelector(c)
		if !ok {
			t := p.tokens[c.i]
			p.log.Add(logger.Error, &p.tracker, t.Range, "Expected a selector")
			break
		}
		list.Selectors = append(list.Selectors, sel)
		c.skipWS()
		if !c.done() && c.tok().Kind == css_lexer.TComma {
			c.i++
			continue
		}
		break
	}
	return list
}

func (p *parser) parseComplexSelector(c *valueCursor) (css_ast.Selector, bool) {
	var sel css_ast.Selector
	compound, ok := p.parseCompoundSelector(c)
	if !ok {
		return sel, false
	}
	sel.Parts = append(sel.Parts, css_ast.ComplexSelectorPart{Combinator: css_ast.CombinatorDescendant, Compound: compound})
	sel.Specificity = sel.Specificity.Add(compoundSpecificity(compound))

	for {
		save := c.i
		c.skipWS()
		if c.done() || c.tok().Kind == css_lexer.TComma {
			c.i = save
			break
		}
		combinator, hasCombinator := matchCombinator(c)
		c.skipWS()
		if c.done() || c.tok().Kind == css_lexer.TComma {
			c.i = save
			break
		}
		next, ok := p.parseCompoundSelector(c)
		if !ok {
			c.i = save
			break
		}
		if !hasCombinator {
			combinator = css_ast.CombinatorDescendant
		}
		sel.Parts = append(sel.Parts, css_ast.ComplexSelectorPart{Combinator: combinator, Compound: next})
		sel.Specificity = sel.Specificity.Add(compoundSpecificity(next))
	}
	return sel, true
}

func matchCombinator(c *valueCursor) (css_ast.Combinator, bool) {
	if c.done() {
		return css_ast.CombinatorDescendant, false
	}
	if c.tok().Kind == css_lexer.TDelim {
		switch c.text() {
		case ">":
			c.i++
			return css_ast.CombinatorChild, true
		case "+":
			c.i++
			return css_ast.CombinatorNextSibling, true
		case "~":
			c.i++
			return css_ast.CombinatorSubsequentSibling, true
		}
	}
	if c.tok().Kind == css_lexer.TColumn {
		c.i++
		return css_ast.CombinatorColumn, true
	}
	return css_ast.CombinatorDescendant, false
}

func (p *parser) parseCompoundSelector(c *valueCursor) (css_ast.CompoundSelector, bool) {
	var compound css_ast.CompoundSelector
	for {
		comp, ok := p.parseSimpleSelector(c)
		if !ok {
			break
		}
		compound.Components = append(compound.Components, comp)
	}
	if len(compound.Components) == 0 {
		return compound, false
	}
	return compound, true
}

func (p *parser) parseSimpleSelector(c *valueCursor) (css_ast.SelectorComponent, bool) {
	if c.done() {
		return css_ast.SelectorComponent{}, false
	}
	switch c.tok().Kind {
	case css_lexer.TDelim:
		switch c.text() {
		case "*":
			c.i++
			return css_ast.SelectorComponent{Kind: css_ast.SelUniversal}, true
		case "&":
			c.i++
			return css_ast.SelectorComponent{Kind: css_ast.SelNesting}, true
		case ".":
			c.i++
			if c.done() || c.tok().Kind != css_lexer.TIdent {
				return css_ast.SelectorComponent{}, false
			}
			name := c.text()
			c.i++
			return css_ast.SelectorComponent{Kind: css_ast.SelClass, Name: name}, true
		}
	case css_lexer.THash:
		name := c.text()
		c.i++
		return css_ast.SelectorComponent{Kind: css_ast.SelID, Name: name}, true
	case css_lexer.TIdent:
		name := c.text()
		c.i++
		return css_ast.SelectorComponent{Kind: css_ast.SelType, Name: name}, true
	case css_lexer.TOpenBracket:
		return p.parseAttributeSelector(c)
	case css_lexer.TColon:
		return p.parsePseudo(c)
	}
	return css_ast.SelectorComponent{}, false
}

func (p *parser) parseAttributeSelector(c *valueCursor) (css_ast.SelectorComponent, bool) {
	closeAt := matchingCloseBracket(c.p, c.i)
	if closeAt < 0 {
		return css_ast.SelectorComponent{}, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: closeAt}
	inner.skipWS()
	if inner.done() || inner.tok().Kind != css_lexer.TIdent {
		return css_ast.SelectorComponent{}, false
	}
	attr := &css_ast.AttributeSelector{Name: inner.text()}
	inner.i++
	inner.skipWS()
	if inner.done() {
		c.i = closeAt + 1
		return css_ast.SelectorComponent{Kind: css_ast.SelAttribute, Attribute: attr}, true
	}
	switch inner.tok().Kind {
	case css_lexer.TDelim:
		switch inner.text() {
		case "=":
			attr.Match = css_ast.AttrEquals
		default:
			return css_ast.SelectorComponent{}, false
		}
		inner.i++
	case css_lexer.TIncludeMatch:
		attr.Match = css_ast.AttrIncludes
		inner.i++
	case css_lexer.TDashMatch:
		attr.Match = css_ast.AttrDashMatch
		inner.i++
	case css_lexer.TPrefixMatch:
		attr.Match = css_ast.AttrPrefix
		inner.i++
	case css_lexer.TSuffixMatch:
		attr.Match = css_ast.AttrSuffix
		inner.i++
	case css_lexer.TSubstringMatch:
		attr.Match = css_ast.AttrSubstring
		inner.i++
	default:
		return css_ast.SelectorComponent{}, false
	}
	inner.skipWS()
	if inner.done() || (inner.tok().Kind != css_lexer.TString && inner.tok().Kind != css_lexer.TIdent) {
		return css_ast.SelectorComponent{}, false
	}
	attr.Value = inner.text()
	inner.i++
	inner.skipWS()
	if !inner.done() && inner.tok().Kind == css_lexer.TIdent {
		flag := strings.ToLower(inner.text())
		sensitive := flag == "s"
		if flag == "i" || flag == "s" {
			attr.CaseSensitive = &sensitive
			inner.i++
		}
	}
	c.i = closeAt + 1
	return css_ast.SelectorComponent{Kind: css_ast.SelAttribute, Attribute: attr}, true
}

func matchingCloseBracket(p *parser, openIndex int) int {
	depth := 1
	for i := openIndex + 1; i < p.end; i++ {
		switch p.tokens[i].Kind {
		case css_lexer.TOpenBracket:
			depth++
		case css_lexer.TCloseBracket:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *parser) parsePseudo(c *valueCursor) (css_ast.SelectorComponent, bool) {
	c.i++ // consume ":"
	isElement := false
	if !c.done() && c.tok().Kind == css_lexer.TColon {
		isElement = true
		c.i++
	}
	if c.done() {
		return css_ast.SelectorComponent{}, false
	}
	switch c.tok().Kind {
	case css_lexer.TIdent:
		name := strings.ToLower(c.text())
		c.i++
		if isElement || pseudoElementNames[name] {
			return css_ast.SelectorComponent{Kind: css_ast.SelPseudoElement, Name: name}, true
		}
		return css_ast.SelectorComponent{Kind: css_ast.SelPseudoClass, Name: name}, true

	case css_lexer.TFunction:
		name := strings.ToLower(c.text())
		argsEnd := matchingCloseParen(c.p, c.i)
		if argsEnd < 0 {
			return css_ast.SelectorComponent{}, false
		}
		inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
		comp := css_ast.SelectorComponent{Kind: css_ast.SelPseudoClass, Name: name}
		if isElement {
			comp.Kind = css_ast.SelPseudoElement
		}

		switch name {
		case "is", "has", "not", "where":
			list := p.parseSelectorListFromTokens(inner.i, inner.end)
			comp.SelectorArg = &list
		case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type", "nth-col", "nth-last-col":
			anb, rest, ok := parseANPlusB(inner)
			if !ok {
				return css_ast.SelectorComponent{}, false
			}
			comp.NthArg = &anb
			rest.skipWS()
			if !rest.done() && rest.tok().Kind == css_lexer.TIdent && strings.EqualFold(rest.text(), "of") {
				rest.i++
				list := p.parseSelectorListFromTokens(rest.i, rest.end)
				comp.NthOfArg = &list
			}
		}
		c.i = argsEnd + 1
		return comp, true
	}
	return css_ast.SelectorComponent{}, false
}

// parseANPlusB parses the An+B microsyntax (CSS Syntax 3 Appendix:
// nth-child grammar): "odd", "even", "<integer>", or "<integer>n
// [+-] <integer>" in any of its several whitespace/sign permutations.
func parseANPlusB(c *valueCursor) (css_ast.ANPlusB, *valueCursor, bool) {
	c.skipWS()
	if c.done() {
		return css_ast.ANPlusB{}, c, false
	}
	if c.tok().Kind == css_lexer.TIdent {
		switch strings.ToLower(c.text()) {
		case "odd":
			c.i++
			return css_ast.ANPlusB{A: 2, B: 1, IsOdd: true}, c, true
		case "even":
			c.i++
			return css_ast.ANPlusB{A: 2, B: 0, IsEven: true}, c, true
		}
	}

	// Collect the raw text up to "of"/")" and parse it textually — the
	// An+B grammar tokenizes inconsistently depending on whitespace
	// (e.g. "2n+1" is one TDimension token with unit "n" sign-glued to
	// the following integer's sign in some lexers, three tokens in
	// others), so this library normalizes by re-reading the source text
	// of the matched span rather than pattern-matching token kinds.
	start := c.i
	for !c.done() {
		if c.tok().Kind == css_lexer.TIdent && strings.EqualFold(c.text(), "of") {
			break
		}
		c.i++
	}
	text := strings.ToLower(strings.ReplaceAll(c.p.preludeText(start, c.i), " ", ""))
	a, b, ok := parseANPlusBText(text)
	if !ok {
		return css_ast.ANPlusB{}, c, false
	}
	return css_ast.ANPlusB{A: a, B: b}, c, true
}

func parseANPlusBText(text string) (a, b int, ok bool) {
	if text == "" {
		return 0, 0, false
	}
	nIdx := strings.IndexByte(text, 'n')
	if nIdx < 0 {
		v, err := strconv.Atoi(text)
		if err != nil {
			return 0, 0, false
		}
		return 0, v, true
	}
	aPart := text[:nIdx]
	switch aPart {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		v, err := strconv.Atoi(aPart)
		if err != nil {
			return 0, 0, false
		}
		a = v
	}
	rest := strings.TrimSpace(text[nIdx+1:])
	if rest == "" {
		return a, 0, true
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return 0, 0, false
	}
	return a, v, true
}

// compoundSpecificity sums CSS Selectors 4 §17's per-component
// contribution, resolving :is()/:has()/:not()'s forwarded specificity
// and :where()'s always-zero specificity.
func compoundSpecificity(compound css_ast.CompoundSelector) css_ast.Specificity {
	var s css_ast.Specificity
	for _, comp := range compound.Components {
		switch comp.Kind {
		case css_ast.SelID:
			s.IDs++
		case css_ast.SelClass, css_ast.SelAttribute:
			s.Classes++
		case css_ast.SelType:
			s.Elements++
		case css_ast.SelPseudoElement:
			s.Elements++
		case css_ast.SelPseudoClass:
			if comp.Name == "where" {
				continue
			}
			if forwardingPseudoClasses[comp.Name] && comp.SelectorArg != nil {
				s = s.Add(comp.SelectorArg.MaxSpecificity())
				continue
			}
			s.Classes++
			// ":nth-child(An+B of S)" and its siblings add S's maximum
			// specificity on top of the pseudo-class's own one class
			// (CSS Selectors 4 §17.1).
			if comp.NthOfArg != nil {
				s = s.Add(comp.NthOfArg.MaxSpecificity())
			}
		}
	}
	return s
}
