package css_ast

import (
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// Token is the AST-level, already-decoded counterpart of css_lexer.Token.
// Declarations whose property is unknown, whose value contains var(), or
// whose typed parse failed are preserved verbatim as a Token list (an
// "unparsed value" in the sense of CSS Syntax 3 §4.4 and the glossary
// entry for the same term). Typed value parsers do not use Token; they
// read the lexer's tokens directly.
//
// This mirrors esbuild's own css_ast.Token: a flat, memory-conscious
// struct where block/function contents are nested inline via Children
// rather than re-scanning the parent list.
type Token struct {
	// Text is the token's decoded text. For TDimension this is the full
	// "<number><unit>" text; use DimensionValue/DimensionUnit to split it.
	Text string

	// Children holds the component values of a simple block or function
	// token: "(...)", "[...]", "{...}", or "ident(...)" — the closing
	// delimiter is implicit and not itself stored.
	Children *[]Token

	UnitOffset uint16
	Kind       css_lexer.T

	// HasWhitespaceAfter records whether a TWhitespace token followed this
	// one in the original source. Whitespace is never stored as its own
	// Token; it is folded into this flag on the preceding token so value
	// parsers can test for significant whitespace (e.g. around calc's
	// "+"/"-") without filtering a separate token kind.
	HasWhitespaceAfter bool
}

func (t Token) DimensionValue() string {
	return t.Text[:t.UnitOffset]
}

func (t Token) DimensionUnit() string {
	return t.Text[t.UnitOffset:]
}
