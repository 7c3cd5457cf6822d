package css_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

func parse(t *testing.T, contents string) css_ast.Stylesheet {
	t.Helper()
	log := logger.NewLog()
	source := logger.Source{Contents: contents}
	sheet := Parse(log, source, DefaultOptions())
	require.False(t, log.HasErrors(), "unexpected parse errors for input %q: %v", contents, log.Msgs())
	return sheet
}

func onlyStyleRule(t *testing.T, sheet css_ast.Stylesheet) *css_ast.StyleRule {
	t.Helper()
	require.Len(t, sheet.Rules, 1)
	rule, ok := sheet.Rules[0].(*css_ast.StyleRule)
	require.True(t, ok, "expected a style rule, got %T", sheet.Rules[0])
	return rule
}

func TestParseSimpleDeclaration(t *testing.T) {
	sheet := parse(t, "a { color: red; }")
	rule := onlyStyleRule(t, sheet)
	require.Len(t, rule.Decls, 1)
	decl := rule.Decls[0]
	assert.Equal(t, "color", decl.Name)
	assert.Equal(t, css_ast.PColor, decl.Property)
	require.NotNil(t, decl.Value.Ident)
	assert.Equal(t, "red", *decl.Value.Ident)
	assert.False(t, decl.Important)
}

func TestParseImportantDeclaration(t *testing.T) {
	sheet := parse(t, "a { color: red !important; }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	assert.True(t, decl.Important)
}

func TestParseLengthValue(t *testing.T) {
	sheet := parse(t, "a { width: 10px; }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	require.NotNil(t, decl.Value.Length)
	require.NotNil(t, decl.Value.Length.Dimension)
	assert.Equal(t, css_ast.UnitPx, decl.Value.Length.Dimension.Unit)
	assert.Equal(t, 10.0, decl.Value.Length.Dimension.Numeric.Value)
}

func TestParseCalcValue(t *testing.T) {
	sheet := parse(t, "a { width: calc(100% - 10px); }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	require.NotNil(t, decl.Value.Length)
	require.NotNil(t, decl.Value.Length.Calc)
	assert.Equal(t, css_ast.CalcSub, decl.Value.Length.Calc.Op)
	require.Len(t, decl.Value.Length.Calc.Args, 2)
}

func TestParseCalcRequiresWhitespaceAroundPlusMinus(t *testing.T) {
	sheet := parse(t, "a { width: calc(1px+ 2px); }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	assert.True(t, decl.Value.IsUnparsed(), "calc(1px+ 2px) must not parse as Add(1px, 2px) since + lacks leading whitespace")
}

func TestParseUnknownPropertyFallsBackToUnparsed(t *testing.T) {
	sheet := parse(t, "a { -webkit-some-future-thing: weird(1 2 3); }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	assert.True(t, decl.Value.IsUnparsed())
}

func TestParseCustomProperty(t *testing.T) {
	sheet := parse(t, "a { --accent: #ff0000; }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	assert.Equal(t, css_ast.PCustomProperty, decl.Property)
	assert.Equal(t, "--accent", decl.Name)
}

func TestParseStandardPropertyNameIsLowercased(t *testing.T) {
	sheet := parse(t, "a { COLOR: red; Background-Color: blue; }")
	decls := onlyStyleRule(t, sheet).Decls
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Name)
	assert.Equal(t, css_ast.PColor, decls[0].Property)
	assert.Equal(t, "background-color", decls[1].Name)
	assert.Equal(t, css_ast.PBackgroundColor, decls[1].Property)
}

func TestParseCustomPropertyNamePreservesCase(t *testing.T) {
	sheet := parse(t, "a { --Accent-Color: red; }")
	decl := onlyStyleRule(t, sheet).Decls[0]
	assert.Equal(t, css_ast.PCustomProperty, decl.Property)
	assert.Equal(t, "--Accent-Color", decl.Name)
}

func TestParseSelectorSpecificity(t *testing.T) {
	sheet := parse(t, "#id.class1.class2 span { color: red; }")
	rule := onlyStyleRule(t, sheet)
	require.Len(t, rule.Selectors.Selectors, 1)
	spec := rule.Selectors.Selectors[0].Specificity
	assert.Equal(t, css_ast.Specificity{IDs: 1, Classes: 2, Elements: 1}, spec)
}

func TestParseSelectorSpecificityNthChildOfAddsArgumentSpecificity(t *testing.T) {
	sheet := parse(t, "li:nth-child(2n of .a, #b) { color: red; }")
	rule := onlyStyleRule(t, sheet)
	require.Len(t, rule.Selectors.Selectors, 1)
	spec := rule.Selectors.Selectors[0].Specificity
	// li (1 element) + :nth-child (1 class) + "of .a, #b"'s max
	// specificity (#b wins: 1 id).
	assert.Equal(t, css_ast.Specificity{IDs: 1, Classes: 1, Elements: 1}, spec)
}

func TestParseSourceOrderIncreasesAcrossDeclarations(t *testing.T) {
	sheet := parse(t, "a { color: red; width: 1px; }")
	decls := onlyStyleRule(t, sheet).Decls
	require.Len(t, decls, 2)
	assert.Less(t, decls[0].SourceOrder, decls[1].SourceOrder)
}

func TestParseMediaRule(t *testing.T) {
	sheet := parse(t, "@media (min-width: 100px) { a { color: red; } }")
	require.Len(t, sheet.Rules, 1)
	media, ok := sheet.Rules[0].(*css_ast.MediaRule)
	require.True(t, ok)
	require.Len(t, media.Rules, 1)
	_, ok = media.Rules[0].(*css_ast.StyleRule)
	assert.True(t, ok)
}

func TestParseLayerStatementRegistersNoRules(t *testing.T) {
	sheet := parse(t, "@layer base, components;")
	require.Len(t, sheet.Rules, 1)
	layer, ok := sheet.Rules[0].(*css_ast.LayerRule)
	require.True(t, ok)
	assert.Equal(t, []string{"base", "components"}, layer.Names)
	assert.Nil(t, layer.Rules)
}

func TestParseNestedRuleHoistsTrailingDeclarations(t *testing.T) {
	sheet := parse(t, "a { color: red; & b { color: blue; } width: 1px; }")
	rule := onlyStyleRule(t, sheet)
	require.Len(t, rule.Decls, 1, "only the leading declaration run stays on Decls")
	require.NotEmpty(t, rule.Rules)
}

func TestParseMalformedDeclarationRecoversAndReportsError(t *testing.T) {
	log := logger.NewLog()
	source := logger.Source{Contents: "a { : red; color: blue; }"}
	sheet := Parse(log, source, DefaultOptions())
	require.True(t, log.HasErrors())
	rule := onlyStyleRule(t, sheet)
	require.Len(t, rule.Decls, 1)
	assert.Equal(t, "color", rule.Decls[0].Name)
}
