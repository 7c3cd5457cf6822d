package css_printer

import (
	"strconv"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
)

func (p *printer) printColor(c css_ast.Color) {
	if c.Mix != nil {
		p.printColorMix(*c.Mix)
		return
	}
	switch c.Kind {
	case css_ast.ColorRGB:
		p.printFunctionalColor("rgb", []css_ast.Component{c.RGB.R, c.RGB.G, c.RGB.B}, c.RGB.Alpha, c.RelativeTo)
	case css_ast.ColorHSL:
		p.printHueColor("hsl", c.HSL.H, []css_ast.Component{c.HSL.S, c.HSL.L}, c.HSL.Alpha, c.RelativeTo)
	case css_ast.ColorHWB:
		p.printHueColor("hwb", c.HWB.H, []css_ast.Component{c.HWB.W, c.HWB.B}, c.HWB.Alpha, c.RelativeTo)
	case css_ast.ColorLab:
		p.printFunctionalColor("lab", []css_ast.Component{c.Lab.L, c.Lab.A, c.Lab.B}, c.Lab.Alpha, c.RelativeTo)
	case css_ast.ColorLCH:
		p.printHueColor("lch", c.LCH.H, []css_ast.Component{c.LCH.L, c.LCH.C}, c.LCH.Alpha, c.RelativeTo)
	case css_ast.ColorOklab:
		p.printFunctionalColor("oklab", []css_ast.Component{c.Oklab.L, c.Oklab.A, c.Oklab.B}, c.Oklab.Alpha, c.RelativeTo)
	case css_ast.ColorOklch:
		p.printHueColor("oklch", c.Oklch.H, []css_ast.Component{c.Oklch.L, c.Oklch.C}, c.Oklch.Alpha, c.RelativeTo)
	case css_ast.ColorFuncKind:
		p.printGeneralColorFunction(*c.ColorFunc, c.RelativeTo)
	}
}

// printRelativeFromPrefix emits the "from <color> " prelude shared by
// every relative-color function (CSS Color 5 §NN), or nothing when
// relativeTo is nil.
func (p *printer) printRelativeFromPrefix(relativeTo *css_ast.Color) {
	if relativeTo == nil {
		return
	}
	p.print("from ")
	p.printColor(*relativeTo)
	p.printByte(' ')
}

func (p *printer) printComponent(c css_ast.Component) {
	if c.IsNone {
		p.print("none")
		return
	}
	// Components keep no written form, so they print as the shortest
	// decimal ("1", "0.5"), without a trailing ".0".
	text := strconv.FormatFloat(c.Value, 'f', -1, 64)
	if c.Percent {
		p.print(text)
		p.printByte('%')
		return
	}
	p.print(text)
}

// printFunctionalColor prints the space-separated-components form CSS
// Color 4 standardized for every color function ("rgb(r g b / a)"):
// the legacy comma form is never re-emitted since this library has no
// way to distinguish which form the author originally wrote once the
// value has been resolved into Components, and the modern form is
// valid everywhere the legacy one is.
func (p *printer) printFunctionalColor(name string, comps []css_ast.Component, alpha css_ast.Component, relativeTo *css_ast.Color) {
	p.print(name)
	p.printByte('(')
	p.printRelativeFromPrefix(relativeTo)
	for i, c := range comps {
		if i > 0 {
			p.printByte(' ')
		}
		p.printComponent(c)
	}
	p.printAlphaTail(alpha)
	p.printByte(')')
}

func (p *printer) printHueColor(name string, hue css_ast.Numeric, comps []css_ast.Component, alpha css_ast.Component, relativeTo *css_ast.Color) {
	p.print(name)
	p.printByte('(')
	p.printRelativeFromPrefix(relativeTo)
	p.printNumeric(hue)
	for _, c := range comps {
		p.printByte(' ')
		p.printComponent(c)
	}
	p.printAlphaTail(alpha)
	p.printByte(')')
}

func (p *printer) printAlphaTail(alpha css_ast.Component) {
	if alpha.Omitted {
		return
	}
	if alpha.IsNone {
		p.print(" / none")
		return
	}
	p.print(" / ")
	p.printComponent(alpha)
}

func (p *printer) printGeneralColorFunction(f css_ast.ColorFunction, relativeTo *css_ast.Color) {
	p.print("color(")
	p.printRelativeFromPrefix(relativeTo)
	p.print(f.Space)
	for _, c := range f.Components {
		p.printByte(' ')
		p.printComponent(c)
	}
	p.printAlphaTail(f.Alpha)
	p.printByte(')')
}

func (p *printer) printColorMix(mix css_ast.ColorMix) {
	p.print("color-mix(in ")
	p.print(mix.InterpolationMethod)
	p.print(", ")
	p.printColor(mix.Color1)
	if mix.Percent1 != nil {
		p.printByte(' ')
		p.print(formatMinimalNumber(*mix.Percent1))
		p.printByte('%')
	}
	p.print(", ")
	p.printColor(mix.Color2)
	if mix.Percent2 != nil {
		p.printByte(' ')
		p.print(formatMinimalNumber(*mix.Percent2))
		p.printByte('%')
	}
	p.printByte(')')
}
