package css_printer

import (
	"strconv"
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
)

func (p *printer) printDeclaration(d css_ast.Declaration) {
	p.printIdent(d.Name, identNormal)
	p.printByte(':')
	if p.options.Pretty {
		p.printByte(' ')
	}
	p.printValue(d.Value)
	if d.Important {
		p.print(" !important")
	}
	p.print(";")
}

func (p *printer) printValue(v css_ast.Value) {
	switch {
	case v.Color != nil:
		p.printColor(*v.Color)
	case v.Length != nil:
		printDimensionPercentage(p, *v.Length, printLengthLeaf)
	case v.Angle != nil:
		printDimensionPercentage(p, *v.Angle, printAngleLeaf)
	case v.Time != nil:
		printDimensionPercentage(p, *v.Time, printTimeLeaf)
	case v.Resolution != nil:
		p.printNumeric(v.Resolution.Numeric)
		p.printIdent(v.Resolution.Unit.String(), identDimensionUnit)
	case v.Number != nil:
		p.printNumeric(*v.Number)
	case v.Percentage != nil:
		p.printPercentage(*v.Percentage)
	case v.Ident != nil:
		p.printIdent(*v.Ident, identNormal)
	case v.Str != nil:
		p.printQuoted(*v.Str)
	case v.List != nil:
		for i, item := range v.List {
			if i > 0 {
				p.print(",")
				if p.options.Pretty {
					p.printByte(' ')
				}
			}
			p.printValue(item)
		}
	case v.Unparsed != nil:
		p.printTokens(v.Unparsed, 0)
	}
}

// printNumeric formats a Numeric, preferring its preserved source
// representation (Repr) when present — the lossless round-trip path
// spec.md §4.8 requires for values that came from a parsed token —
// and otherwise falling back to the minimal decimal form: "-0" is
// preserved, and a trailing ".0" is added when the value is integral
// and its formatted text has neither a "." nor an exponent, so a
// programmatically constructed Numeric never collides with an
// <integer>-only grammar position by accident.
func (p *printer) printNumeric(n css_ast.Numeric) {
	if n.Repr != "" {
		p.print(n.Repr)
		return
	}
	p.print(formatMinimalNumber(n.Value))
}

func formatMinimalNumber(v float64) string {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if v == 0 && strings.HasPrefix(text, "-") {
		return "-0"
	}
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}

func (p *printer) printPercentage(pct css_ast.CSSPercentage) {
	if pct.Repr != "" {
		p.print(pct.Repr)
		return
	}
	p.print(formatMinimalNumber(pct.Numeric.Value * 100))
	p.printByte('%')
}

func printLengthLeaf(p *printer, l css_ast.CSSLength) {
	p.printNumeric(l.Numeric)
	p.printIdent(l.Unit.String(), identDimensionUnit)
}

func printAngleLeaf(p *printer, a css_ast.CSSAngle) {
	p.printNumeric(a.Numeric)
	p.printIdent(a.Unit.String(), identDimensionUnit)
}

func printTimeLeaf(p *printer, t css_ast.CSSTime) {
	p.printNumeric(t.Numeric)
	p.printIdent(t.Unit.String(), identDimensionUnit)
}

func printDimensionPercentage[D any](p *printer, dp css_ast.CSSDimensionPercentage[D], printLeaf func(*printer, D)) {
	switch {
	case dp.Dimension != nil:
		printLeaf(p, *dp.Dimension)
	case dp.Percentage != nil:
		p.printPercentage(*dp.Percentage)
	case dp.Calc != nil:
		p.print("calc(")
		printCalc(p, *dp.Calc, printLeaf)
		p.printByte(')')
	}
}

func printCalc[T any](p *printer, c css_ast.CSSCalc[T], printLeaf func(*printer, T)) {
	switch {
	case c.Leaf != nil:
		printLeaf(p, *c.Leaf)
	case c.Number != nil:
		p.printNumeric(*c.Number)
	case c.Op.IsInfix():
		op := infixOpString(c.Op)
		for i, arg := range c.Args {
			if i > 0 {
				p.printByte(' ')
				p.print(op)
				p.printByte(' ')
			}
			printCalc(p, arg, printLeaf)
		}
	default:
		p.print(c.Op.FuncName())
		p.printByte('(')
		for i, arg := range c.Args {
			if i > 0 {
				p.print(",")
				if p.options.Pretty {
					p.printByte(' ')
				}
			}
			printCalc(p, arg, printLeaf)
		}
		p.printByte(')')
	}
}

func infixOpString(op css_ast.CalcOp) string {
	switch op {
	case css_ast.CalcAdd:
		return "+"
	case css_ast.CalcSub:
		return "-"
	case css_ast.CalcMul:
		return "*"
	case css_ast.CalcDiv:
		return "/"
	default:
		return ""
	}
}
