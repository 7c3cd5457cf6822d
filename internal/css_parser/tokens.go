package css_parser

import (
	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// convertRange turns a flat slice of the lexer's token stream into the
// AST's nested Token tree, folding each "(...)"/"[...]"/"{...}"/
// function-call span into a single Token whose Children holds the
// contents (with the opening/closing delimiters themselves dropped —
// they are implied by Kind). This is the boundary between the lexer's
// flat, context-free token stream and the AST's token-tree
// representation used for unparsed/custom-property values; esbuild's
// parser does the same flattening (its convertTokens) for the same
// reason: a declaration's value needs to be walked as a tree once it
// leaves the parser (by the printer, or by var()-substitution), and
// reconstructing nesting from a flat stream every time would mean
// re-deriving the same bracket matching over and over.
func (p *parser) convertRange(start, end int) []css_ast.Token {
	i := start
	var convert func() []css_ast.Token
	convert = func() []css_ast.Token {
		var out []css_ast.Token
		for i < end {
			t := p.tokens[i]
			switch t.Kind {
			case css_lexer.TWhitespace, css_lexer.TComment:
				i++
				if len(out) > 0 {
					out[len(out)-1].HasWhitespaceAfter = true
				}
				continue

			case css_lexer.TOpenParen, css_lexer.TOpenBracket, css_lexer.TOpenBrace, css_lexer.TFunction:
				text := t.DecodedText(p.source.Contents)
				kind := t.Kind
				i++
				children := convert() // consumes up to and including the matching close
				out = append(out, css_ast.Token{Text: text, Kind: kind, Children: &children})
				continue

			case css_lexer.TCloseParen, css_lexer.TCloseBracket, css_lexer.TCloseBrace:
				i++
				return out
			}

			out = append(out, css_ast.Token{
				Text:       t.DecodedText(p.source.Contents),
				Kind:       t.Kind,
				UnitOffset: t.UnitOffset,
			})
			i++
		}
		return out
	}
	return convert()
}

// parseComponentValue consumes one component value (CSS Syntax 3 §5.4.7):
// a single preserved token, or a simple block / function call along with
// everything up to its matching closing delimiter. Used by grammars that
// need to skip a value they don't otherwise parse (e.g. an @import
// condition) one component at a time rather than scanning for a
// delimiter byte, so nested parens/brackets are never mistaken for the
// end of the value.
func (p *parser) parseComponentValue() {
	switch p.current().Kind {
	case css_lexer.TFunction, css_lexer.TOpenParen:
		p.advance()
		for !p.peek(css_lexer.TCloseParen) && !p.peek(css_lexer.TEndOfFile) {
			p.parseComponentValue()
		}
		p.eat(css_lexer.TCloseParen)
	case css_lexer.TOpenBracket:
		p.advance()
		for !p.peek(css_lexer.TCloseBracket) && !p.peek(css_lexer.TEndOfFile) {
			p.parseComponentValue()
		}
		p.eat(css_lexer.TCloseBracket)
	case css_lexer.TOpenBrace:
		p.advance()
		for !p.peek(css_lexer.TCloseBrace) && !p.peek(css_lexer.TEndOfFile) {
			p.parseComponentValue()
		}
		p.eat(css_lexer.TCloseBrace)
	default:
		p.advance()
	}
}
