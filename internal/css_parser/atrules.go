package css_parser

import (
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

// genericAtRuleNames lists the at-rules whose body is just a declaration
// list and whose prelude carries no selector/condition grammar this
// library models with a dedicated type — see css_ast.GenericAtRule.
var genericAtRuleNames = map[string]bool{
	"font-face": true, "font-feature-values": true, "font-palette-values": true,
	"counter-style": true, "page": true, "property": true, "viewport": true,
	"view-transition": true,
}

// blockGenericAtRuleNames is the subset of generic at-rules that may also
// nest rules rather than (or in addition to) declarations — currently
// only @starting-style, whose body is a plain rule list.
var blockGenericAtRuleNames = map[string]bool{
	"starting-style": true,
}

// parseAtRule consumes one at-rule: "@<name> <prelude> ;" or
// "@<name> <prelude> { <block> }", via a name-keyed switch dispatching
// to per-rule prelude grammars, with esbuild's charset/import
// ordering-validity state machine, CSS-modules symbol scoping, and
// legal-comment bookkeeping left out — @import/@namespace ordering is
// instead checked once, by the caller (parseListOfRules), which is
// sufficient since this library only
// warns rather than reorders rules for a bundler.
func (p *parser) parseAtRule() css_ast.R {
	name := strings.ToLower(p.decoded())
	atRange := p.current().Range
	p.advance()
	p.skipWhitespace()
	preludeStart := p.index

	switch name {
	case "import":
		return p.parseAtImport(atRange, preludeStart)
	case "namespace":
		return p.parseAtNamespace(atRange)
	case "media":
		return p.parseAtMedia(atRange, preludeStart)
	case "supports":
		return p.parseAtSupports(atRange, preludeStart)
	case "keyframes", "-webkit-keyframes", "-moz-keyframes", "-ms-keyframes", "-o-keyframes":
		return p.parseAtKeyframes(atRange)
	case "layer":
		return p.parseAtLayer(atRange, preludeStart)
	case "container":
		return p.parseAtContainer(atRange, preludeStart)
	case "scope":
		return p.parseAtScope(atRange, preludeStart)
	case "custom-media":
		return p.parseAtCustomMedia(atRange)
	default:
		if genericAtRuleNames[name] || blockGenericAtRuleNames[name] {
			return p.parseGenericAtRule(atRange, name, preludeStart)
		}
		return p.parseUnknownAtRule(atRange, name, preludeStart)
	}
}

func (p *parser) parseAtImport(atRange logger.Range, preludeStart int) css_ast.R {
	rule := &css_ast.ImportRule{}
	rule.Range = atRange
	if p.peek(css_lexer.TString) || p.peek(css_lexer.TURL) {
		rule.URL = p.decoded()
		p.advance()
	} else {
		p.log.Add(logger.Error, &p.tracker, p.current().Range, "Expected a URL or string for @import")
	}
	p.skipWhitespace()

	if p.peek(css_lexer.TIdent) && strings.EqualFold(p.decoded(), "layer") {
		rule.HasLayer = true
		p.advance()
	} else if p.peek(css_lexer.TFunction) && strings.EqualFold(p.decoded(), "layer") {
		rule.HasLayer = true
		p.advance()
		depth := 1
		nameStart := p.index
		for depth > 0 && !p.peek(css_lexer.TEndOfFile) {
			switch p.current().Kind {
			case css_lexer.TOpenParen:
				depth++
			case css_lexer.TCloseParen:
				depth--
			}
			if depth > 0 {
				p.advance()
			}
		}
		rule.LayerName = p.preludeText(nameStart, p.index)
		p.eat(css_lexer.TCloseParen)
	}
	p.skipWhitespace()

	if p.peek(css_lexer.TFunction) && strings.EqualFold(p.decoded(), "supports") {
		p.advance()
		depth := 1
		condStart := p.index
		for depth > 0 && !p.peek(css_lexer.TEndOfFile) {
			switch p.current().Kind {
			case css_lexer.TOpenParen:
				depth++
			case css_lexer.TCloseParen:
				depth--
			}
			if depth > 0 {
				p.advance()
			}
		}
		rule.Supports = p.preludeText(condStart, p.index)
		p.eat(css_lexer.TCloseParen)
	}
	p.skipWhitespace()

	mediaStart := p.index
	for !p.peek(css_lexer.TSemicolon) && !p.peek(css_lexer.TEndOfFile) {
		p.advance()
	}
	rule.MediaQuery = p.preludeText(mediaStart, p.index)
	p.expect(css_lexer.TSemicolon)
	return rule
}

func (p *parser) parseAtNamespace(atRange logger.Range) css_ast.R {
	rule := &css_ast.NamespaceRule{}
	rule.Range = atRange
	if p.peek(css_lexer.TIdent) {
		rule.Prefix = p.decoded()
		p.advance()
		p.skipWhitespace()
	}
	if p.peek(css_lexer.TString) || p.peek(css_lexer.TURL) {
		rule.URI = p.decoded()
		p.advance()
	} else {
		p.log.Add(logger.Error, &p.tracker, p.current().Range, "Expected a URL or string for @namespace")
	}
	p.skipWhitespace()
	p.expect(css_lexer.TSemicolon)
	return rule
}

func (p *parser) consumePreludeUntilBrace(preludeStart int) string {
	for !p.peek(css_lexer.TOpenBrace) && !p.peek(css_lexer.TEndOfFile) && !p.peek(css_lexer.TSemicolon) {
		p.advance()
	}
	return p.preludeText(preludeStart, p.index)
}

func (p *parser) parseAtMedia(atRange logger.Range, preludeStart int) css_ast.R {
	query := p.consumePreludeUntilBrace(preludeStart)
	rule := &css_ast.MediaRule{Query: query}
	rule.Range = atRange
	rule.Rules = p.parseNestedRuleListBlock()
	return rule
}

func (p *parser) parseAtSupports(atRange logger.Range, preludeStart int) css_ast.R {
	cond := p.consumePreludeUntilBrace(preludeStart)
	rule := &css_ast.SupportsRule{Condition: cond}
	rule.Range = atRange
	rule.Rules = p.parseNestedRuleListBlock()
	return rule
}

func (p *parser) parseAtContainer(atRange logger.Range, preludeStart int) css_ast.R {
	text := p.consumePreludeUntilBrace(preludeStart)
	name, cond := splitLeadingIdent(text)
	rule := &css_ast.ContainerRule{Name: name, Condition: cond}
	rule.Range = atRange
	rule.Rules = p.parseNestedRuleListBlock()
	return rule
}

func (p *parser) parseAtScope(atRange logger.Range, preludeStart int) css_ast.R {
	text := p.consumePreludeUntilBrace(preludeStart)
	rule := &css_ast.ScopeRule{}
	rule.Range = atRange
	if idx := strings.Index(text, " to "); idx >= 0 {
		rule.Start = strings.TrimSpace(trimParens(text[:idx]))
		rule.End = strings.TrimSpace(trimParens(text[idx+4:]))
	} else {
		rule.Start = strings.TrimSpace(trimParens(text))
	}
	rule.Rules = p.parseNestedRuleListBlock()
	return rule
}

func (p *parser) parseAtCustomMedia(atRange logger.Range) css_ast.R {
	rule := &css_ast.CustomMediaRule{}
	rule.Range = atRange
	if p.peek(css_lexer.TIdent) {
		rule.Name = p.decoded()
		p.advance()
	}
	p.skipWhitespace()
	queryStart := p.index
	for !p.peek(css_lexer.TSemicolon) && !p.peek(css_lexer.TEndOfFile) {
		p.advance()
	}
	rule.Query = p.preludeText(queryStart, p.index)
	p.expect(css_lexer.TSemicolon)
	return rule
}

func (p *parser) parseAtLayer(atRange logger.Range, preludeStart int) css_ast.R {
	var names []string
	p.skipWhitespace()
	for p.peek(css_lexer.TIdent) {
		names = append(names, p.decoded())
		p.advance()
		p.skipWhitespace()
		if p.eat(css_lexer.TComma) {
			p.skipWhitespace()
			continue
		}
		break
	}
	rule := &css_ast.LayerRule{Names: names}
	rule.Range = atRange
	if p.peek(css_lexer.TOpenBrace) {
		rule.Rules = p.parseNestedRuleListBlock()
	} else {
		p.expect(css_lexer.TSemicolon)
	}
	_ = preludeStart
	return rule
}

func (p *parser) parseAtKeyframes(atRange logger.Range) css_ast.R {
	p.skipWhitespace()
	var name string
	if p.peek(css_lexer.TIdent) || p.peek(css_lexer.TString) {
		name = p.decoded()
		p.advance()
	} else {
		p.expect(css_lexer.TIdent)
	}
	p.skipWhitespace()
	rule := &css_ast.KeyframesRule{Name: name}
	rule.Range = atRange
	if !p.expect(css_lexer.TOpenBrace) {
		return rule
	}

	for {
		p.skipWhitespace()
		if p.peek(css_lexer.TEndOfFile) || p.peek(css_lexer.TCloseBrace) {
			break
		}
		var selectors []string
		for {
			p.skipWhitespace()
			if p.peek(css_lexer.TIdent) || p.peek(css_lexer.TPercentage) {
				selectors = append(selectors, p.decoded())
				p.advance()
			} else {
				break
			}
			p.skipWhitespace()
			if p.eat(css_lexer.TComma) {
				continue
			}
			break
		}
		p.skipWhitespace()
		var decls []css_ast.Declaration
		if p.expect(css_lexer.TOpenBrace) {
			decls, _ = p.parseStyleBlockContents()
			p.expect(css_lexer.TCloseBrace)
		}
		rule.Blocks = append(rule.Blocks, css_ast.KeyframeBlock{Selectors: selectors, Decls: decls})
	}
	p.expect(css_lexer.TCloseBrace)
	return rule
}

func (p *parser) parseGenericAtRule(atRange logger.Range, name string, preludeStart int) css_ast.R {
	prelude := p.consumePreludeUntilBrace(preludeStart)
	rule := &css_ast.GenericAtRule{Name: name, Prelude: prelude}
	rule.Range = atRange
	if p.eat(css_lexer.TOpenBrace) {
		if blockGenericAtRuleNames[name] {
			rule.Rules = p.parseListOfRules(ruleContext{isTopLevel: false})
		} else {
			decls, _ := p.parseStyleBlockContents()
			rule.Decls = decls
		}
		p.expect(css_lexer.TCloseBrace)
	} else {
		p.expect(css_lexer.TSemicolon)
	}
	return rule
}

func (p *parser) parseUnknownAtRule(atRange logger.Range, name string, preludeStart int) css_ast.R {
	for !p.peek(css_lexer.TOpenBrace) && !p.peek(css_lexer.TSemicolon) && !p.peek(css_lexer.TEndOfFile) {
		p.advance()
	}
	preludeTokens := p.convertRange(preludeStart, p.index)
	rule := &css_ast.UnknownAtRule{Name: name, Prelude: preludeTokens}
	rule.Range = atRange
	if p.eat(css_lexer.TOpenBrace) {
		blockStart := p.index
		depth := 1
		for depth > 0 && !p.peek(css_lexer.TEndOfFile) {
			switch p.current().Kind {
			case css_lexer.TOpenBrace:
				depth++
			case css_lexer.TCloseBrace:
				depth--
				if depth == 0 {
					rule.Block = p.convertRange(blockStart, p.index)
				}
			}
			p.advance()
		}
	} else {
		p.expect(css_lexer.TSemicolon)
	}
	return rule
}

func splitLeadingIdent(text string) (name, rest string) {
	text = strings.TrimSpace(text)
	i := 0
	for i < len(text) && (isIdentByte(text[i])) {
		i++
	}
	if i == 0 || i == len(text) {
		return "", text
	}
	return text[:i], strings.TrimSpace(text[i:])
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func trimParens(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}
