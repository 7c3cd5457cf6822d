package css_parser

import (
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// parseCalcLength parses the contents of a "calc(...)" function token
// into a CSSCalc[CSSLength] expression tree, implementing the
// precedence CSS Values 4 §10.1 specifies for the calc-sum/calc-product
// grammar: "+"/"-" bind loosest, "*"/"/" bind tighter, and parenthesized
// sub-expressions or nested min()/max()/clamp() calls bind tightest of
// all. The cursor is expected to sit on the "calc(" function token on
// entry and is left just past the matching ")" on success.
func parseCalcLength(c *valueCursor) (*css_ast.CSSCalc[css_ast.CSSLength], bool) {
	if !strings.EqualFold(c.text(), "calc") {
		return nil, false
	}
	argsEnd := matchingCloseParen(c.p, c.i)
	if argsEnd < 0 {
		return nil, false
	}
	inner := &valueCursor{p: c.p, i: c.i + 1, end: argsEnd}
	tree, ok := parseCalcSum(inner)
	if !ok {
		return nil, false
	}
	inner.skipWS()
	if !inner.done() {
		return nil, false
	}
	c.i = argsEnd + 1
	return &tree, true
}

// matchingCloseParen returns the index of the TCloseParen that matches
// the open-paren-like token (TFunction or TOpenParen) at funcIndex, or -1
// if the token stream ends first (malformed input already flagged by the
// lexer/earlier parsing stage).
func matchingCloseParen(p *parser, funcIndex int) int {
	depth := 1
	for i := funcIndex + 1; i < p.end; i++ {
		switch p.tokens[i].Kind {
		case css_lexer.TFunction, css_lexer.TOpenParen:
			depth++
		case css_lexer.TCloseParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// hasWhitespaceNext reports whether the token the cursor currently sits
// on is whitespace/a comment, without consuming it.
func hasWhitespaceNext(c *valueCursor) bool {
	return !c.done() && (c.tok().Kind == css_lexer.TWhitespace || c.tok().Kind == css_lexer.TComment)
}

func parseCalcSum(c *valueCursor) (css_ast.CSSCalc[css_ast.CSSLength], bool) {
	c.skipWS()
	left, ok := parseCalcProduct(c)
	if !ok {
		return css_ast.CSSCalc[css_ast.CSSLength]{}, false
	}
	for {
		save := c.i
		// CSS Values 4 §10.1 requires "+" and "-" to be surrounded by
		// whitespace on both sides (unlike "*"/"/") to disambiguate them
		// from a signed number's leading sign — "1px+ 2px" and
		// "1px +2px" are both invalid and must fall back to unparsed.
		if !hasWhitespaceNext(c) {
			break
		}
		c.skipWS()
		if c.done() || c.tok().Kind != css_lexer.TDelim {
			c.i = save
			break
		}
		op := c.text()
		if op != "+" && op != "-" {
			c.i = save
			break
		}
		c.i++
		if !hasWhitespaceNext(c) {
			c.i = save
			break
		}
		c.skipWS()
		right, ok := parseCalcProduct(c)
		if !ok {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		calcOp := css_ast.CalcAdd
		if op == "-" {
			calcOp = css_ast.CalcSub
		}
		left = css_ast.CalcOpNode(calcOp, left, right)
	}
	return left, true
}

func parseCalcProduct(c *valueCursor) (css_ast.CSSCalc[css_ast.CSSLength], bool) {
	left, ok := parseCalcValue(c)
	if !ok {
		return css_ast.CSSCalc[css_ast.CSSLength]{}, false
	}
	for {
		save := c.i
		c.skipWS()
		if c.done() || c.tok().Kind != css_lexer.TDelim {
			c.i = save
			break
		}
		op := c.text()
		if op != "*" && op != "/" {
			c.i = save
			break
		}
		c.i++
		c.skipWS()
		right, ok := parseCalcValue(c)
		if !ok {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		calcOp := css_ast.CalcMul
		if op == "/" {
			calcOp = css_ast.CalcDiv
		}
		left = css_ast.CalcOpNode(calcOp, left, right)
	}
	return left, true
}

func parseCalcValue(c *valueCursor) (css_ast.CSSCalc[css_ast.CSSLength], bool) {
	c.skipWS()
	if c.done() {
		return css_ast.CSSCalc[css_ast.CSSLength]{}, false
	}
	switch c.tok().Kind {
	case css_lexer.TNumber:
		n := parseNumeric(c)
		c.i++
		return css_ast.CalcNumberNode[css_ast.CSSLength](n), true
	case css_lexer.TDimension, css_lexer.TPercentage:
		dp, ok := parseLengthPercentage(c)
		if !ok || dp.Percentage != nil {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		return css_ast.CalcLeafNode(*dp.Dimension), true
	case css_lexer.TOpenParen:
		closeAt := matchingCloseParen(c.p, c.i)
		if closeAt < 0 {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		inner := &valueCursor{p: c.p, i: c.i + 1, end: closeAt}
		tree, ok := parseCalcSum(inner)
		if !ok {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		c.i = closeAt + 1
		return tree, true
	case css_lexer.TFunction:
		name := strings.ToLower(c.text())
		if name == "calc" {
			nested, ok := parseCalcLength(c)
			if !ok {
				return css_ast.CSSCalc[css_ast.CSSLength]{}, false
			}
			return *nested, true
		}
		var op css_ast.CalcOp
		switch name {
		case "min":
			op = css_ast.CalcMin
		case "max":
			op = css_ast.CalcMax
		case "clamp":
			op = css_ast.CalcClamp
		default:
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		closeAt := matchingCloseParen(c.p, c.i)
		if closeAt < 0 {
			return css_ast.CSSCalc[css_ast.CSSLength]{}, false
		}
		inner := &valueCursor{p: c.p, i: c.i + 1, end: closeAt}
		var args []css_ast.CSSCalc[css_ast.CSSLength]
		for {
			inner.skipWS()
			arg, ok := parseCalcSum(inner)
			if !ok {
				return css_ast.CSSCalc[css_ast.CSSLength]{}, false
			}
			args = append(args, arg)
			inner.skipWS()
			if !inner.done() && inner.tok().Kind == css_lexer.TComma {
				inner.i++
				continue
			}
			break
		}
		c.i = closeAt + 1
		return css_ast.CalcOpNode(op, args...), true
	}
	return css_ast.CSSCalc[css_ast.CSSLength]{}, false
}
