package css_parser

import (
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

type ruleContext struct {
	isTopLevel bool
}

// parseListOfRules is the shared body of the "consume a list of rules"
// algorithm (CSS Syntax 3 §5.4.1), used both for the stylesheet's
// top-level rule list and for the nested-rule lists inside @media,
// @supports, @layer, @container, @scope, and style-rule bodies (CSS
// Nesting): CDO/CDC skipped only at the top level, whitespace skipped
// everywhere, an at-keyword dispatches to parseAtRule, anything else is
// a qualified (selector) rule. No minifier pass runs afterward, no
// CSS-modules nesting lowering, no legal-comment-to-rule promotion;
// @import/@namespace ordering validity is enforced directly as each
// such rule is seen rather than through a three-state atRuleContext
// machine, since this library only needs to warn, not rewrite, on a
// misplaced rule.
func (p *parser) parseListOfRules(context ruleContext) []css_ast.R {
	rules := []css_ast.R{}
	seenRuleOtherThanImportOrNamespace := false

loop:
	for {
		switch p.current().Kind {
		case css_lexer.TEndOfFile:
			break loop

		case css_lexer.TCloseBrace:
			if !context.isTopLevel {
				break loop
			}
			p.advance()
			continue

		case css_lexer.TWhitespace, css_lexer.TComment:
			p.advance()
			continue

		case css_lexer.TCDO, css_lexer.TCDC:
			if context.isTopLevel {
				p.advance()
				continue
			}

		case css_lexer.TAtKeyword:
			rule := p.parseAtRule()
			switch rule.(type) {
			case *css_ast.ImportRule, *css_ast.NamespaceRule:
				if seenRuleOtherThanImportOrNamespace {
					t := p.current()
					p.log.Add(logger.Warning, &p.tracker, t.Range, "@import/@namespace rules are only valid at the start of a stylesheet, before any other rule")
				}
			default:
				seenRuleOtherThanImportOrNamespace = true
			}
			rules = append(rules, rule)
			continue
		}

		seenRuleOtherThanImportOrNamespace = true
		rules = append(rules, p.parseQualifiedOrStyleRule())
	}

	return rules
}

// parseQualifiedOrStyleRule consumes one qualified rule: a prelude
// (anything up to the next "{") followed by a "{...}" block. At the
// style-rule level the prelude is a selector list, so this always
// produces a *css_ast.StyleRule — there is no other qualified-rule shape
// in this library's scope (esbuild's own parseQualifiedRuleFrom has the
// same split but additionally threads through CSS-modules
// :local()/:global() rewriting, which is out of scope here).
func (p *parser) parseQualifiedOrStyleRule() css_ast.R {
	start := p.index
	preludeStart := p.index
	for !p.peek(css_lexer.TOpenBrace) && !p.peek(css_lexer.TEndOfFile) && !p.peek(css_lexer.TCloseBrace) {
		p.advance()
	}
	preludeEnd := p.index
	loc := logger.Range{Loc: p.tokens[start].Range.Loc}

	selectors := p.parseSelectorListFromTokens(preludeStart, preludeEnd)

	rule := &css_ast.StyleRule{Selectors: selectors}
	rule.Range = loc

	if p.eat(css_lexer.TOpenBrace) {
		decls, nested := p.parseStyleBlockContents()
		rule.Decls = decls
		rule.Rules = nested
		p.expect(css_lexer.TCloseBrace)
	}
	return rule
}

// parseStyleBlockContents consumes the body of a style rule, which under
// CSS Nesting interleaves plain declarations with nested rules (another
// selector starting with a type/class/id/"&"/"@" token). Trailing
// declarations that follow a nested rule are hoisted into an implicit
// NestDeclarationsRule so their position in cascade/source order relative
// to the nested rule survives serialization.
func (p *parser) parseStyleBlockContents() ([]css_ast.Declaration, []css_ast.R) {
	var decls []css_ast.Declaration
	var nested []css_ast.R
	var trailingDecls []css_ast.Declaration

	flushTrailing := func() {
		if len(trailingDecls) > 0 {
			nested = append(nested, &css_ast.NestDeclarationsRule{Decls: trailingDecls})
			trailingDecls = nil
		}
	}

	for {
		switch p.current().Kind {
		case css_lexer.TWhitespace, css_lexer.TSemicolon, css_lexer.TComment:
			p.advance()
		case css_lexer.TEndOfFile, css_lexer.TCloseBrace:
			flushTrailing()
			return decls, nested
		case css_lexer.TAtKeyword:
			flushTrailing()
			nested = append(nested, p.parseAtRule())
		default:
			if p.options.AllowNesting && p.looksLikeNestedRule() {
				nested = append(nested, p.parseQualifiedOrStyleRule())
			} else if decl, ok := p.parseDeclaration(); ok {
				if len(nested) > 0 {
					trailingDecls = append(trailingDecls, decl)
				} else {
					decls = append(decls, decl)
				}
			}
		}
	}
}

// looksLikeNestedRule speculatively scans ahead to the next ";" or
// matching "{"/"}" at this nesting depth to tell a nested style rule
// ("a, &.b { ... }") apart from a plain declaration ("color: red;"),
// without building a full selector parse — a declaration's prelude never
// contains an unparenthesized "{", so seeing one before the terminating
// ";" is sufficient.
func (p *parser) looksLikeNestedRule() bool {
	if p.peek(css_lexer.TDelim) && p.raw() == "&" {
		return true
	}
	s := p.state()
	defer p.reset(s)
	depth := 0
	for {
		switch p.current().Kind {
		case css_lexer.TEndOfFile, css_lexer.TCloseBrace:
			return false
		case css_lexer.TSemicolon:
			if depth == 0 {
				return false
			}
		case css_lexer.TOpenBrace:
			if depth == 0 {
				return true
			}
			depth++
		case css_lexer.TOpenParen, css_lexer.TOpenBracket:
			depth++
		case css_lexer.TCloseParen, css_lexer.TCloseBracket:
			depth--
		}
		p.advance()
	}
}

// parseNestedRuleListBlock consumes "{ <rules> }" for at-rules that
// contain a nested rule list (@media, @supports, @layer block form,
// @container, @scope).
func (p *parser) parseNestedRuleListBlock() []css_ast.R {
	if !p.expect(css_lexer.TOpenBrace) {
		return nil
	}
	rules := p.parseListOfRules(ruleContext{isTopLevel: false})
	p.expect(css_lexer.TCloseBrace)
	return rules
}

// preludeText returns the raw source text of the token range
// [start, end), trimmed of leading/trailing whitespace — used for
// at-rule preludes this library keeps as opaque text (media queries,
// supports conditions, container conditions, @page pseudo-classes)
// rather than parsing into their own grammar, per this library's scope.
func (p *parser) preludeText(start, end int) string {
	if start >= end {
		return ""
	}
	lo := p.tokens[start].Range.Loc.Start
	hi := p.tokens[end-1].Range.End()
	return strings.TrimSpace(p.source.Contents[lo:hi])
}
