// Package css_printer serializes the typed AST (internal/css_ast) back
// into CSS source text. It is grounded on esbuild's own
// internal/css_printer/css_printer.go: the escaping primitives
// (printIdent/printQuoted/bestQuoteCharForString/printWithEscape) are
// ported close to verbatim, since CSS Syntax 3's escaping rules don't
// depend on what's being escaped — an identifier is an identifier
// whether it came from a minifier's raw-token reprint or this
// library's typed declaration tree. What changes is everything above
// that layer: esbuild's printer walks a flat Rule/Token tree it never
// resolves past raw tokens, while this printer walks the typed
// Stylesheet/Declaration/Value/Selector model built during parsing,
// so rule/selector/value printing (rules.go, selectors.go, values.go)
// has no esbuild counterpart and is written fresh against this
// library's own AST shapes.
package css_printer

import (
	"fmt"
	"unicode/utf8"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// Options controls the printer's whitespace/indentation behavior. The
// zero value is minified output (esbuild's own Options.MinifyWhitespace
// defaults to false/pretty; this library instead defaults the zero
// value to the cheapest serialization, treating "minified" as the base
// case and "pretty" as the opt-in).
type Options struct {
	// Pretty, when true, emits one declaration per line, a newline after
	// each rule, and Indent-wide indentation per nesting level. When
	// false (the default), the printer emits the minimal CSS that still
	// parses back to the same tree.
	Pretty bool

	// Indent is the whitespace unit used per nesting level in pretty
	// mode. Defaults to two spaces (esbuild's own printIndent uses the
	// same width) when empty.
	Indent string
}

func (o Options) indentUnit() string {
	if o.Indent != "" {
		return o.Indent
	}
	return "  "
}

type printer struct {
	options Options
	css     []byte
}

// Print serializes a whole stylesheet.
func Print(sheet css_ast.Stylesheet, options Options) string {
	p := &printer{options: options}
	for _, rule := range sheet.Rules {
		p.printRule(rule, 0)
	}
	return string(p.css)
}

func (p *printer) print(text string) {
	p.css = append(p.css, text...)
}

func (p *printer) printByte(b byte) {
	p.css = append(p.css, b)
}

func (p *printer) printIndent(depth int) {
	if !p.options.Pretty {
		return
	}
	unit := p.options.indentUnit()
	for i := 0; i < depth; i++ {
		p.print(unit)
	}
}

func (p *printer) printNewline() {
	if p.options.Pretty {
		p.print("\n")
	}
}

// --- identifier/string escaping, ported from esbuild's own printIdent/
// printQuoted/printWithEscape (css_printer.go) ---

type escapeKind uint8

const (
	escapeNone escapeKind = iota
	escapeBackslash
	escapeHex
)

// printWithEscape writes c either verbatim, backslash-escaped, or as a
// hex escape sequence, matching CSS Syntax 3's serialization rules for
// code points that aren't safe to emit literally.
func (p *printer) printWithEscape(c rune, escape escapeKind, remainingText string) {
	var temp [utf8.UTFMax]byte

	if escape == escapeBackslash && ((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
		// A backslash followed by a hex digit would itself be read back as
		// the start of a hex escape, so such characters must use the
		// explicit \XX form instead of a bare backslash.
		escape = escapeHex
	}

	switch escape {
	case escapeNone:
		width := utf8.EncodeRune(temp[:], c)
		p.css = append(p.css, temp[:width]...)

	case escapeBackslash:
		p.css = append(p.css, '\\')
		width := utf8.EncodeRune(temp[:], c)
		p.css = append(p.css, temp[:width]...)

	case escapeHex:
		text := fmt.Sprintf("\\%x", c)
		p.css = append(p.css, text...)
		// A trailing space lets the hex escape terminate before the next
		// character if that character would otherwise extend it (another
		// hex digit, or whitespace the escape would otherwise consume).
		if next := utf8.RuneLen(c); next < len(remainingText) {
			nc := remainingText[next]
			if nc == ' ' || nc == '\t' || (nc >= '0' && nc <= '9') || (nc >= 'a' && nc <= 'f') || (nc >= 'A' && nc <= 'F') {
				p.css = append(p.css, ' ')
			}
		} else {
			p.css = append(p.css, ' ')
		}
	}
}

type identMode uint8

const (
	identNormal identMode = iota
	identHash
	identDimensionUnit
)

// printIdent escapes text for use as a CSS identifier (or hash/
// dimension-unit, whose first-character rules differ slightly):
// a leading digit needs a hex escape and the hyphen of a leading
// hyphen-digit ident a backslash escape, non-name-continue characters
// need a backslash escape, and control characters always need a hex
// escape.
func (p *printer) printIdent(text string, mode identMode) {
	n := len(text)

	initialEscape := escapeNone
	switch mode {
	case identNormal:
		if !css_lexer.WouldStartIdentifierWithoutEscapes(text) {
			initialEscape = escapeBackslash
		}
	case identDimensionUnit:
		if !css_lexer.WouldStartIdentifierWithoutEscapes(text) {
			initialEscape = escapeBackslash
		} else if n > 0 {
			if c := text[0]; c >= '0' && c <= '9' {
				initialEscape = escapeHex
			}
		}
	}

	if initialEscape == escapeNone {
		fastPath := true
		for i := 0; i < n; i++ {
			if c := text[i]; c >= 0x80 || !css_lexer.IsNameContinue(rune(c)) {
				fastPath = false
				break
			}
		}
		if fastPath {
			p.print(text)
			return
		}
	}

	for i, c := range text {
		escape := escapeNone
		switch {
		case c < 0x20 || c == 0x7F || c == '\uFEFF':
			escape = escapeHex
		case !css_lexer.IsNameContinue(c):
			escape = escapeBackslash
		}
		if i == 0 && initialEscape != escapeNone {
			escape = initialEscape
		}
		p.printWithEscape(c, escape, text[i:])
	}
}

// bestQuoteCharForString picks whichever of '\” or '"' needs fewer
// escapes, matching esbuild's own cost-counting heuristic (ties prefer
// double quotes).
func bestQuoteCharForString(text string) byte {
	singleCost, doubleCost := 0, 0
	for _, c := range text {
		switch c {
		case '\'':
			singleCost++
		case '"':
			doubleCost++
		case '\\', '\n', '\r', '\f':
			singleCost++
			doubleCost++
		}
	}
	if singleCost < doubleCost {
		return '\''
	}
	return '"'
}

// printQuoted writes text as a CSS <string-token>, escaping the chosen
// quote character, backslashes, and raw control characters.
func (p *printer) printQuoted(text string) {
	quote := bestQuoteCharForString(text)
	p.printByte(quote)
	for i, n := 0, len(text); i < n; {
		c, width := utf8.DecodeRuneInString(text[i:])
		escape := escapeNone
		switch {
		case c < 0x20 || c == 0x7F:
			escape = escapeHex
		case c == '\\' || byte(c) == quote:
			escape = escapeBackslash
		}
		if escape != escapeNone {
			p.printWithEscape(c, escape, text[i:])
		} else {
			p.css = append(p.css, text[i:i+width]...)
		}
		i += width
	}
	p.printByte(quote)
}

// printUnquotedURL writes text as the contents of an unquoted url(...)
// token, escaping whitespace, control characters, and the five
// characters CSS Syntax 3 bans from appearing literally in that
// position ('(', ')', '"', '\”, '\\').
func (p *printer) printUnquotedURL(text string) {
	for i, n := 0, len(text); i < n; {
		c, width := utf8.DecodeRuneInString(text[i:])
		escape := escapeNone
		switch c {
		case '\x00', '\r', '\n', '\f':
			escape = escapeHex
		case '(', ')', '"', '\'', '\\', ' ', '\t':
			escape = escapeBackslash
		default:
			if c < 0x20 || c == 0x7F {
				escape = escapeHex
			}
		}
		if escape != escapeNone {
			p.printWithEscape(c, escape, text[i:])
		} else {
			p.css = append(p.css, text[i:i+width]...)
		}
		i += width
	}
}

// canPrintAsURL reports whether text can be written as an unquoted
// url(...) token without escapes being forced on by whitespace/quote
// characters that would otherwise terminate the token early — used to
// decide between url(plain) and url("quoted") forms.
func canPrintAsURL(text string) bool {
	for _, c := range text {
		switch c {
		case '(', ')', '"', '\'', ' ', '\t', '\n', '\r', '\f', '\\':
			return false
		}
	}
	return true
}
