package css_parser

import (
	"strconv"
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
)

// valueCursor walks a bounded sub-range [i, end) of the parser's token
// slice independently of the parser's own index, so a typed value parse
// can be attempted and abandoned (falling back to Unparsed) without
// disturbing the caller's position — the same "parse a component value
// grammar against a fixed token span" need esbuild's own parser meets by
// re-slicing p.tokens for its value/selector sub-grammars.
type valueCursor struct {
	p   *parser
	i   int
	end int
}

func (c *valueCursor) skipWS() {
	for c.i < c.end && (c.p.tokens[c.i].Kind == css_lexer.TWhitespace || c.p.tokens[c.i].Kind == css_lexer.TComment) {
		c.i++
	}
}

func (c *valueCursor) done() bool { return c.i >= c.end }

func (c *valueCursor) tok() css_lexer.Token { return c.p.tokens[c.i] }

func (c *valueCursor) text() string { return c.tok().DecodedText(c.p.source.Contents) }

// parseValueForProperty is the declaration-value entry point: it tries a
// typed parse appropriate to propertyID, falling back to the raw token
// tree whenever the property is unknown/custom, the value contains a
// var()/env() reference, or the typed grammar doesn't fully consume the
// value (an exact-match requirement — a value that's valid CSS but not
// what this property expects is not this library's to repair, only to
// preserve — a malformed value degrades to an unparsed token list
// instead of being dropped).
func (p *parser) parseValueForProperty(propertyID css_ast.PropertyID, start, end int) css_ast.Value {
	if propertyID == css_ast.PUnknown || propertyID == css_ast.PCustomProperty || p.containsVarOrCustomRef(start, end) {
		return css_ast.Value{Unparsed: p.convertRange(start, end)}
	}

	switch propertyID {
	case css_ast.PColor, css_ast.PBackgroundColor, css_ast.PBorderColor, css_ast.POutlineColor:
		c := &valueCursor{p: p, i: start, end: end}
		c.skipWS()
		first := c.i
		if col, ok := parseColor(c); ok {
			c.skipWS()
			if c.done() {
				// A value that is only a color keyword ("red",
				// "transparent") keeps its written name as an Ident leaf;
				// every other color notation is stored as a typed Color.
				if p.tokens[first].Kind == css_lexer.TIdent {
					ident := p.tokens[first].DecodedText(p.source.Contents)
					return css_ast.Value{Ident: &ident}
				}
				return css_ast.Value{Color: &col}
			}
		}

	case css_ast.PWidth, css_ast.PHeight, css_ast.PMinWidth, css_ast.PMinHeight,
		css_ast.PMaxWidth, css_ast.PMaxHeight, css_ast.PMarginTop, css_ast.PMarginRight,
		css_ast.PMarginBottom, css_ast.PMarginLeft, css_ast.PPaddingTop, css_ast.PPaddingRight,
		css_ast.PPaddingBottom, css_ast.PPaddingLeft, css_ast.PTop, css_ast.PRight,
		css_ast.PBottom, css_ast.PLeft, css_ast.PFontSize, css_ast.PFlexBasis:
		c := &valueCursor{p: p, i: start, end: end}
		c.skipWS()
		if c.done() {
			break
		}
		// Keywords like "auto"/"inherit" stay as a plain Ident leaf.
		if c.tok().Kind == css_lexer.TIdent {
			ident := c.text()
			c.i++
			c.skipWS()
			if c.done() {
				return css_ast.Value{Ident: &ident}
			}
			break
		}
		if dp, ok := parseLengthPercentage(c); ok {
			c.skipWS()
			if c.done() {
				return css_ast.Value{Length: &dp}
			}
		}

	case css_ast.PZIndex:
		c := &valueCursor{p: p, i: start, end: end}
		c.skipWS()
		if c.tok().Kind == css_lexer.TNumber {
			n := parseNumeric(c)
			c.i++
			c.skipWS()
			if c.done() {
				return css_ast.Value{Number: &n}
			}
		}

	case css_ast.POpacity, css_ast.PFlexGrow, css_ast.PFlexShrink:
		c := &valueCursor{p: p, i: start, end: end}
		c.skipWS()
		switch c.tok().Kind {
		case css_lexer.TNumber:
			n := parseNumeric(c)
			c.i++
			c.skipWS()
			if c.done() {
				return css_ast.Value{Number: &n}
			}
		case css_lexer.TPercentage:
			pct := parsePercentageToken(c)
			c.i++
			c.skipWS()
			if c.done() {
				return css_ast.Value{Percentage: &pct}
			}
		}

	case css_ast.PFontFamily:
		c := &valueCursor{p: p, i: start, end: end}
		var list []css_ast.Value
		for !c.done() {
			c.skipWS()
			if c.done() {
				break
			}
			switch c.tok().Kind {
			case css_lexer.TString, css_lexer.TIdent:
				name := c.text()
				list = append(list, css_ast.Value{Ident: &name})
				c.i++
			default:
				return css_ast.Value{Unparsed: p.convertRange(start, end)}
			}
			c.skipWS()
			if !c.done() && c.tok().Kind == css_lexer.TComma {
				c.i++
				continue
			}
		}
		if len(list) > 0 {
			return css_ast.Value{List: list}
		}

	case css_ast.PDisplay, css_ast.PPosition:
		c := &valueCursor{p: p, i: start, end: end}
		c.skipWS()
		if c.tok().Kind == css_lexer.TIdent {
			ident := strings.ToLower(c.text())
			c.i++
			c.skipWS()
			if c.done() {
				return css_ast.Value{Ident: &ident}
			}
		}
	}

	return css_ast.Value{Unparsed: p.convertRange(start, end)}
}

// dimensionText splits a dimension token's decoded text into its numeric
// and unit parts using the lexer-recorded UnitOffset; for a non-dimension
// numeric token (TNumber/TPercentage) the whole decoded text is the
// numeric part and the unit part is empty.
func dimensionText(c *valueCursor) (numberText, unitText string) {
	t := c.tok()
	text := t.DecodedText(c.p.source.Contents)
	if t.Kind == css_lexer.TDimension {
		return text[:t.UnitOffset], text[t.UnitOffset:]
	}
	return text, ""
}

func dimensionUnit(c *valueCursor) string {
	_, unit := dimensionText(c)
	return strings.ToLower(unit)
}

// parseNumeric reads the numeric token under the cursor (TNumber or the
// numeric part of a TDimension) into the shared Numeric representation;
// it does not advance the cursor.
func parseNumeric(c *valueCursor) css_ast.Numeric {
	text, _ := dimensionText(c)
	value, _ := strconv.ParseFloat(text, 64)
	intValue, isInt := int64(0), false
	if iv, err := strconv.ParseInt(text, 10, 64); err == nil {
		intValue, isInt = iv, true
	}
	return css_ast.Numeric{
		Repr:     text,
		Value:    value,
		IntValue: intValue,
		IsInt:    isInt,
		HasSign:  len(text) > 0 && (text[0] == '+' || text[0] == '-'),
	}
}

func parsePercentageToken(c *valueCursor) css_ast.CSSPercentage {
	text := c.tok().DecodedText(c.p.source.Contents)
	raw := strings.TrimSuffix(text, "%")
	value, _ := strconv.ParseFloat(raw, 64)
	return css_ast.CSSPercentage{
		Numeric: css_ast.Numeric{Repr: raw, Value: value / 100},
		Repr:    text,
	}
}

// parseLengthPercentage parses a single <length-percentage>: a dimension
// token whose unit names a length, a percentage token, or a calc()
// function wrapping either (CSS Values 4 §8.2's dimension-percentage
// generic). Calc trees are handled by parseCalcLength (values_calc.go).
func parseLengthPercentage(c *valueCursor) (css_ast.CSSDimensionPercentage[css_ast.CSSLength], bool) {
	switch c.tok().Kind {
	case css_lexer.TDimension:
		unit := css_ast.LookupUnit(dimensionUnit(c))
		if !unit.IsLength() {
			return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{}, false
		}
		n := parseNumeric(c)
		length := css_ast.CSSLength{Numeric: n, Unit: unit}
		c.i++
		return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{Dimension: &length}, true
	case css_lexer.TNumber:
		// A bare "0" is valid anywhere a <length> is (CSS Values 4 §6.1).
		if c.text() == "0" {
			n := parseNumeric(c)
			length := css_ast.CSSLength{Numeric: n, Unit: UnitZero}
			c.i++
			return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{Dimension: &length}, true
		}
		return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{}, false
	case css_lexer.TPercentage:
		pct := parsePercentageToken(c)
		c.i++
		return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{Percentage: &pct}, true
	case css_lexer.TFunction:
		if strings.EqualFold(c.text(), "calc") {
			tree, ok := parseCalcLength(c)
			if ok {
				return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{Calc: tree}, true
			}
		}
	}
	return css_ast.CSSDimensionPercentage[css_ast.CSSLength]{}, false
}

// UnitZero is the unit assigned to a bare "0" used as a length. It is
// UnitPx, so such a value prints back as "0px".
const UnitZero = css_ast.UnitPx
