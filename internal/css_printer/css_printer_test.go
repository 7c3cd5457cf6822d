package css_printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6over3/CSSKit-sub004/internal/css_parser"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

func expectPrintedCommon(t *testing.T, name string, contents string, expected string, options Options) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		log := logger.NewLog()
		source := logger.Source{Contents: contents, PrettyPath: "<test>"}
		sheet := css_parser.Parse(log, source, css_parser.DefaultOptions())
		require.False(t, log.HasErrors(), "unexpected parse errors for input: %s", contents)
		result := Print(sheet, options)
		assert.Equal(t, expected, result)
	})
}

func expectPrinted(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, contents, expected, Options{})
}

func expectPrintedPretty(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, contents, expected, Options{Pretty: true})
}

func TestPrintStyleRuleMinified(t *testing.T) {
	expectPrinted(t, "a { color: red; }", "a{color:red}")
	expectPrinted(t, ".foo, .bar { width: 10px; }", ".foo,.bar{width:10px}")
	expectPrinted(t, "#id > .child { margin: 0; }", "#id>.child{margin:0}")
}

func TestPrintStyleRulePretty(t *testing.T) {
	expectPrintedPretty(t, "a{color:red}", "a {\n  color: red;\n}\n")
}

func TestPrintSelectors(t *testing.T) {
	expectPrinted(t, "a:nth-child(2n+1) { color: red; }", "a:nth-child(2n+1){color:red}")
	expectPrinted(t, "a:nth-child(odd) { color: red; }", "a:nth-child(odd){color:red}")
	expectPrinted(t, "a:not(.foo) { color: red; }", "a:not(.foo){color:red}")
	expectPrinted(t, "a::before { content: \"x\"; }", "a::before{content:\"x\"}")
	expectPrinted(t, "[href^=\"https\"] { color: red; }", "[href^=https]{color:red}")
}

func TestPrintDeclarationsColors(t *testing.T) {
	expectPrinted(t, "a { color: rgb(1 2 3 / 0.5); }", "a{color:rgb(1 2 3 / 0.5)}")
	expectPrinted(t, "a { color: hsl(120deg 50% 50%); }", "a{color:hsl(120deg 50% 50%)}")
}

func TestPrintDeclarationsCalc(t *testing.T) {
	expectPrinted(t, "a { width: calc(100% - 10px); }", "a{width:calc(100% - 10px)}")
}

func TestPrintAtRules(t *testing.T) {
	expectPrinted(t, "@media (min-width: 100px) { a { color: red; } }", "@media (min-width: 100px){a{color:red}}")
	expectPrinted(t, "@layer base, components;", "@layer base,components;")
	expectPrinted(t, "@import \"foo.css\" layer(base);", "@import url(foo.css) layer(base);")
}
