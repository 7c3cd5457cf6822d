package css_printer

import (
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// printTokens reprints a raw Token tree (css_ast.Token, as stored on
// UnknownAtRule and on an unparsed Declaration.Value) back to source
// text, folding each token's HasWhitespaceAfter flag into a single
// space and recursing into Children for blocks/functions — the same
// shape esbuild's own printTokens walks (css_printer.go), minus the
// source-map/symbol/line-wrapping machinery this library has no
// equivalent surface for.
func (p *printer) printTokens(tokens []css_ast.Token, depth int) {
	for i, t := range tokens {
		p.printToken(t, depth)
		if t.HasWhitespaceAfter && i+1 < len(tokens) {
			p.printByte(' ')
		}
	}
}

func (p *printer) printToken(t css_ast.Token, depth int) {
	switch t.Kind {
	case css_lexer.TIdent:
		p.printIdent(t.Text, identNormal)
	case css_lexer.TFunction:
		p.printIdent(t.Text, identNormal)
		p.printByte('(')
	case css_lexer.TAtKeyword:
		p.printByte('@')
		p.printIdent(t.Text, identNormal)
	case css_lexer.THash:
		p.printByte('#')
		p.printIdent(t.Text, identHash)
	case css_lexer.TString:
		p.printQuoted(t.Text)
	case css_lexer.TURL:
		p.print("url(")
		p.printURLOrString(t.Text)
		p.printByte(')')
	case css_lexer.TDimension:
		p.print(t.DimensionValue())
		mode := identDimensionUnit
		unit := t.DimensionUnit()
		if strings.ContainsAny(t.DimensionValue(), "eE") {
			mode = identNormal
		}
		p.printIdent(unit, mode)
	case css_lexer.TOpenParen:
		p.printByte('(')
	case css_lexer.TOpenBracket:
		p.printByte('[')
	case css_lexer.TOpenBrace:
		p.printByte('{')
	default:
		p.print(t.Text)
	}

	if t.Children != nil {
		p.printTokens(*t.Children, depth)
		switch t.Kind {
		case css_lexer.TFunction:
			p.printByte(')')
		case css_lexer.TOpenParen:
			p.printByte(')')
		case css_lexer.TOpenBracket:
			p.printByte(']')
		case css_lexer.TOpenBrace:
			p.printByte('}')
		}
	}
}
