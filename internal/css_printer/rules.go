package css_printer

import (
	"strings"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
)

func (p *printer) printRule(rule css_ast.R, depth int) {
	p.printIndent(depth)
	switch r := rule.(type) {
	case *css_ast.StyleRule:
		p.printSelectorList(r.Selectors)
		p.printBlockOpen()
		p.printDeclsAndRules(r.Decls, r.Rules, depth+1)
		p.printBlockClose(depth)

	case *css_ast.ImportRule:
		p.print("@import ")
		p.printURLOrString(r.URL)
		if r.HasLayer {
			p.print(" layer")
			if r.LayerName != "" {
				p.printByte('(')
				p.printIdentDotted(r.LayerName)
				p.printByte(')')
			}
		}
		if r.Supports != "" {
			p.print(" supports(")
			p.print(r.Supports)
			p.printByte(')')
		}
		if r.MediaQuery != "" {
			p.printByte(' ')
			p.print(r.MediaQuery)
		}
		p.print(";")
		p.printNewline()

	case *css_ast.NamespaceRule:
		p.print("@namespace ")
		if r.Prefix != "" {
			p.printIdent(r.Prefix, identNormal)
			p.printByte(' ')
		}
		p.printURLOrString(r.URI)
		p.print(";")
		p.printNewline()

	case *css_ast.MediaRule:
		p.print("@media ")
		p.print(r.Query)
		p.printBlockOpen()
		p.printRuleList(r.Rules, depth+1)
		p.printBlockClose(depth)

	case *css_ast.SupportsRule:
		p.print("@supports ")
		p.print(r.Condition)
		p.printBlockOpen()
		p.printRuleList(r.Rules, depth+1)
		p.printBlockClose(depth)

	case *css_ast.KeyframesRule:
		p.print("@keyframes ")
		p.printIdent(r.Name, identNormal)
		p.printBlockOpen()
		for _, block := range r.Blocks {
			p.printIndent(depth + 1)
			for i, sel := range block.Selectors {
				if i > 0 {
					p.print(",")
					if p.options.Pretty {
						p.printByte(' ')
					}
				}
				p.print(sel)
			}
			p.printBlockOpen()
			p.printDeclsAndRules(block.Decls, nil, depth+2)
			p.printBlockClose(depth + 1)
			p.printNewline()
		}
		p.printBlockClose(depth)

	case *css_ast.LayerRule:
		p.print("@layer")
		if len(r.Names) > 0 {
			p.printByte(' ')
			for i, n := range r.Names {
				if i > 0 {
					p.print(",")
					if p.options.Pretty {
						p.printByte(' ')
					}
				}
				p.printIdentDotted(n)
			}
		}
		if r.Rules == nil {
			p.print(";")
			p.printNewline()
		} else {
			p.printBlockOpen()
			p.printRuleList(r.Rules, depth+1)
			p.printBlockClose(depth)
		}

	case *css_ast.ContainerRule:
		p.print("@container")
		if r.Name != "" {
			p.printByte(' ')
			p.printIdent(r.Name, identNormal)
		}
		if r.Condition != "" {
			p.printByte(' ')
			p.print(r.Condition)
		}
		p.printBlockOpen()
		p.printRuleList(r.Rules, depth+1)
		p.printBlockClose(depth)

	case *css_ast.ScopeRule:
		p.print("@scope")
		if r.Start != "" {
			p.print(" (")
			p.print(r.Start)
			p.printByte(')')
		}
		if r.End != "" {
			p.print(" to (")
			p.print(r.End)
			p.printByte(')')
		}
		p.printBlockOpen()
		p.printRuleList(r.Rules, depth+1)
		p.printBlockClose(depth)

	case *css_ast.CustomMediaRule:
		p.print("@custom-media ")
		p.printIdent(r.Name, identNormal)
		p.printByte(' ')
		p.print(r.Query)
		p.print(";")
		p.printNewline()

	case *css_ast.NestDeclarationsRule:
		p.print("&")
		p.printBlockOpen()
		p.printDeclsAndRules(r.Decls, nil, depth+1)
		p.printBlockClose(depth)

	case *css_ast.GenericAtRule:
		p.printByte('@')
		p.printIdent(r.Name, identNormal)
		if r.Prelude != "" {
			p.printByte(' ')
			p.print(r.Prelude)
		}
		if r.Rules == nil && r.Decls == nil {
			p.print(";")
			p.printNewline()
		} else {
			p.printBlockOpen()
			p.printDeclsAndRules(r.Decls, r.Rules, depth+1)
			p.printBlockClose(depth)
		}

	case *css_ast.UnknownAtRule:
		p.printByte('@')
		p.printIdent(r.Name, identNormal)
		if len(r.Prelude) > 0 {
			p.printByte(' ')
			p.printTokens(r.Prelude, depth)
		}
		if r.Block == nil {
			p.print(";")
			p.printNewline()
		} else {
			p.printBlockOpen()
			p.printIndent(depth + 1)
			p.printTokens(r.Block, depth+1)
			p.printNewline()
			p.printBlockClose(depth)
		}
	}
}

func (p *printer) printRuleList(rules []css_ast.R, depth int) {
	for _, r := range rules {
		p.printRule(r, depth)
	}
}

// printDeclsAndRules interleaves a style rule's own declarations with
// its nested rules in the order a spec-compliant parse produced them:
// callers already put a NestDeclarationsRule where CSS Nesting
// requires declarations after a nested rule to be hoisted, so Decls
// here is only ever the rule's leading declaration run.
func (p *printer) printDeclsAndRules(decls []css_ast.Declaration, rules []css_ast.R, depth int) {
	for _, d := range decls {
		p.printIndent(depth)
		p.printDeclaration(d)
		p.printNewline()
	}
	// Minified output drops the semicolon after a block's last
	// declaration when no nested rule follows it.
	if !p.options.Pretty && len(decls) > 0 && len(rules) == 0 {
		p.css = p.css[:len(p.css)-1]
	}
	p.printRuleList(rules, depth)
}

func (p *printer) printBlockOpen() {
	if p.options.Pretty {
		p.print(" {\n")
	} else {
		p.print("{")
	}
}

func (p *printer) printBlockClose(depth int) {
	p.printIndent(depth)
	p.print("}")
	p.printNewline()
}

func (p *printer) printURLOrString(text string) {
	if canPrintAsURL(text) {
		p.print("url(")
		p.printUnquotedURL(text)
		p.printByte(')')
	} else {
		p.printQuoted(text)
	}
}

// printIdentDotted prints a (possibly dotted, CSS Cascade Layers
// nested-name) layer name as a sequence of escaped ident segments
// joined by literal ".".
func (p *printer) printIdentDotted(name string) {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if i > 0 {
			p.printByte('.')
		}
		p.printIdent(part, identNormal)
	}
}
