package css_parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

// parseDeclaration consumes "<ident> : <value> [!important]?" up to (but
// not including) the terminating ";"/"}" — the caller's loop advances
// past whichever delimiter follows. Mirrors esbuild's own declaration
// parsing in shape (collect the value as a token run, look for a
// trailing "!important", hand the value off for interpretation) but
// where esbuild always keeps the value as a token list (it never needs
// anything more than that to reprint or minify CSS), this parser
// additionally tries to resolve the value into one of css_ast.Value's
// typed leaves via the property table, falling back to Unparsed when the
// property is unknown, the value references a custom property, or the
// typed grammar for that property doesn't match — the "degrade to
// unparsed, never drop the declaration" rule this library's error model
// requires.
func (p *parser) parseDeclaration() (css_ast.Declaration, bool) {
	if !p.peek(css_lexer.TIdent) {
		t := p.current()
		p.log.Add(logger.Error, &p.tracker, t.Range, "Expected a property name but found "+t.Kind.String())
		recoverFrom := p.index
		for !p.peek(css_lexer.TSemicolon) && !p.peek(css_lexer.TCloseBrace) && !p.peek(css_lexer.TEndOfFile) {
			p.advance()
		}
		p.tracer.Debug("skipped malformed declaration start", zap.Int("from", recoverFrom), zap.Int("to", p.index))
		return css_ast.Declaration{}, false
	}

	start := p.index
	name := p.raw()
	p.advance()
	p.skipWhitespace()
	if !p.expect(css_lexer.TColon) {
		recoverFrom := p.index
		for !p.peek(css_lexer.TSemicolon) && !p.peek(css_lexer.TCloseBrace) && !p.peek(css_lexer.TEndOfFile) {
			p.advance()
		}
		p.tracer.Debug("skipped declaration missing colon", zap.Int("from", recoverFrom), zap.Int("to", p.index))
		return css_ast.Declaration{}, false
	}
	p.skipWhitespace()

	valueStart := p.index
	depth := 0
	important := false
	importantBangIndex := -1
loop:
	for {
		switch p.current().Kind {
		case css_lexer.TEndOfFile, css_lexer.TCloseBrace:
			break loop
		case css_lexer.TSemicolon:
			if depth == 0 {
				break loop
			}
		case css_lexer.TOpenParen, css_lexer.TOpenBracket, css_lexer.TOpenBrace:
			depth++
		case css_lexer.TCloseParen, css_lexer.TCloseBracket:
			depth--
		case css_lexer.TDelim:
			if depth == 0 && p.raw() == "!" {
				importantBangIndex = p.index
			}
		}
		p.advance()
	}
	valueEnd := p.index

	if importantBangIndex != -1 {
		s := p.state()
		p.index = importantBangIndex + 1
		p.skipWhitespace()
		if p.peek(css_lexer.TIdent) && strings.EqualFold(p.decoded(), "important") {
			important = true
			valueEnd = importantBangIndex
		}
		p.reset(s)
	}

	// Trim trailing whitespace tokens from the value range.
	for valueEnd > valueStart && (p.tokens[valueEnd-1].Kind == css_lexer.TWhitespace || p.tokens[valueEnd-1].Kind == css_lexer.TComment) {
		valueEnd--
	}

	isCustom := strings.HasPrefix(name, "--")
	var propertyID css_ast.PropertyID
	if isCustom {
		propertyID = css_ast.PCustomProperty
	} else {
		// Custom properties are case-sensitive (CSS Custom Properties 1
		// §2); every other property name is ASCII-case-insensitive, so
		// the stored name is normalized to lowercase here — this is also
		// what lets the cascade resolver group same-property
		// declarations by Name regardless of how each was written.
		name = strings.ToLower(name)
		propertyID = css_ast.LookupProperty(name)
	}

	value := p.parseValueForProperty(propertyID, valueStart, valueEnd)

	decl := css_ast.Declaration{
		Name:        name,
		Property:    propertyID,
		Value:       value,
		Important:   important,
		Range:       logger.Range{Loc: p.tokens[start].Range.Loc, Len: p.tokens[valueEnd-1].Range.End() - p.tokens[start].Range.Loc.Start},
		SourceOrder: p.nextSourceOrder(),
	}
	return decl, true
}

// containsVarOrCustomRef reports whether a value's token run references
// a var() or env() function, which forces the whole value to stay unparsed (CSS Variables 1: a
// var() reference can only be resolved at computed-value time, long
// after this library has finished parsing, so attempting a typed parse
// now would either fail or silently discard the reference).
func (p *parser) containsVarOrCustomRef(start, end int) bool {
	for i := start; i < end; i++ {
		t := p.tokens[i]
		if t.Kind == css_lexer.TFunction {
			name := strings.ToLower(t.DecodedText(p.source.Contents))
			if name == "var" || name == "env" {
				return true
			}
		}
	}
	return false
}
