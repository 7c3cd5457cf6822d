package css_printer

import (
	"strconv"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
)

func (p *printer) printSelectorList(list css_ast.SelectorList) {
	for i, sel := range list.Selectors {
		if i > 0 {
			p.print(",")
			if p.options.Pretty {
				p.printByte(' ')
			}
		}
		p.printSelector(sel)
	}
}

func (p *printer) printSelector(sel css_ast.Selector) {
	for i, part := range sel.Parts {
		if i > 0 || part.Combinator != css_ast.CombinatorDescendant {
			switch part.Combinator {
			case css_ast.CombinatorDescendant:
				p.printByte(' ')
			default:
				if p.options.Pretty {
					p.printByte(' ')
				}
				p.print(part.Combinator.String())
				if p.options.Pretty {
					p.printByte(' ')
				}
			}
		}
		p.printCompoundSelector(part.Compound)
	}
}

func (p *printer) printCompoundSelector(compound css_ast.CompoundSelector) {
	for _, c := range compound.Components {
		p.printSimpleSelector(c)
	}
}

func (p *printer) printSimpleSelector(c css_ast.SelectorComponent) {
	switch c.Kind {
	case css_ast.SelUniversal:
		p.printNamespace(c.Namespace)
		p.print("*")
	case css_ast.SelType:
		p.printNamespace(c.Namespace)
		p.printIdent(c.Name, identNormal)
	case css_ast.SelID:
		p.printByte('#')
		p.printIdent(c.Name, identHash)
	case css_ast.SelClass:
		p.printByte('.')
		p.printIdent(c.Name, identNormal)
	case css_ast.SelNesting:
		p.print("&")
	case css_ast.SelAttribute:
		p.printAttributeSelector(c.Attribute)
	case css_ast.SelPseudoClass, css_ast.SelPseudoElement:
		p.printPseudo(c)
	}
}

func (p *printer) printNamespace(ns string) {
	if ns == "" {
		return
	}
	if ns == "*" {
		p.print("*|")
		return
	}
	p.printIdent(ns, identNormal)
	p.printByte('|')
}

func (p *printer) printAttributeSelector(attr *css_ast.AttributeSelector) {
	p.printByte('[')
	p.printNamespace(attr.Namespace)
	p.printIdent(attr.Name, identNormal)
	if attr.Match != css_ast.AttrExists {
		p.print(attrMatchOp(attr.Match))
		if canPrintAsIdentValue(attr.Value) {
			p.printIdent(attr.Value, identNormal)
		} else {
			p.printQuoted(attr.Value)
		}
	}
	if attr.CaseSensitive != nil {
		p.printByte(' ')
		if *attr.CaseSensitive {
			p.print("s")
		} else {
			p.print("i")
		}
	}
	p.printByte(']')
}

func attrMatchOp(m css_ast.AttrMatch) string {
	switch m {
	case css_ast.AttrEquals:
		return "="
	case css_ast.AttrIncludes:
		return "~="
	case css_ast.AttrDashMatch:
		return "|="
	case css_ast.AttrPrefix:
		return "^="
	case css_ast.AttrSuffix:
		return "$="
	case css_ast.AttrSubstring:
		return "*="
	default:
		return "="
	}
}

func canPrintAsIdentValue(text string) bool {
	if text == "" {
		return false
	}
	if c := text[0]; c >= '0' && c <= '9' {
		return false
	}
	for _, c := range text {
		if c >= 0x80 {
			return false
		}
		if !isNameCharASCII(byte(c)) {
			return false
		}
	}
	return true
}

func isNameCharASCII(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *printer) printPseudo(c css_ast.SelectorComponent) {
	if c.Kind == css_ast.SelPseudoElement {
		p.print("::")
	} else {
		p.printByte(':')
	}
	p.printIdent(c.Name, identNormal)

	switch {
	case c.SelectorArg != nil:
		p.printByte('(')
		p.printSelectorList(*c.SelectorArg)
		p.printByte(')')
	case c.NthArg != nil:
		p.printByte('(')
		p.printANPlusB(*c.NthArg)
		if c.NthOfArg != nil {
			p.print(" of ")
			p.printSelectorList(*c.NthOfArg)
		}
		p.printByte(')')
	}
}

func (p *printer) printANPlusB(anb css_ast.ANPlusB) {
	switch {
	case anb.IsOdd:
		p.print("odd")
	case anb.IsEven:
		p.print("even")
	case anb.A == 0:
		p.print(strconv.Itoa(anb.B))
	default:
		switch anb.A {
		case 1:
			// bare "n"
		case -1:
			p.print("-")
		default:
			p.print(strconv.Itoa(anb.A))
		}
		p.print("n")
		if anb.B != 0 {
			if anb.B > 0 {
				p.print("+")
			}
			p.print(strconv.Itoa(anb.B))
		}
	}
}
