package csskit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/pkg/csskit"
)

func TestParseAndPrintRoundTrip(t *testing.T) {
	result := csskit.Parse("a { color: red; }", csskit.ParseOptions{})
	require.NoError(t, result.Err())
	assert.Empty(t, result.Warnings)
	out := csskit.Print(result.Stylesheet, csskit.PrintOptions{})
	assert.Equal(t, "a{color:red}", out)
}

func TestParseReportsErrorsViaMultierr(t *testing.T) {
	result := csskit.Parse("a { : red; }", csskit.ParseOptions{SourcePath: "input.css"})
	err := result.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.css")
}

func TestResolveCascadeGroupsDifferentlyCasedPropertyNames(t *testing.T) {
	result := csskit.Parse("a { COLOR: red; } a { color: blue; }", csskit.ParseOptions{})
	require.NoError(t, result.Err())
	rules := result.Stylesheet.Rules
	require.Len(t, rules, 2)

	first := rules[0].(*css_ast.StyleRule).Decls[0]
	second := rules[1].(*css_ast.StyleRule).Decls[0]
	require.Equal(t, "color", first.Name)
	require.Equal(t, "color", second.Name)

	candidates := []csskit.Candidate{
		{Declaration: first, Origin: css_ast.OriginAuthor},
		{Declaration: second, Origin: css_ast.OriginAuthor},
	}
	winners := csskit.ResolveCascade(candidates, csskit.CascadeOptions{})
	require.Len(t, winners, 1, "COLOR and color must cascade as the same property, not two unrelated ones")
	assert.Equal(t, "blue", *winners["color"].Value.Ident)
}

func TestResolveCascadePicksImportantOverHigherSpecificity(t *testing.T) {
	registry := csskit.NewLayerRegistry()
	_ = registry

	low := csskit.Candidate{
		Declaration: css_ast.Declaration{Name: "color", SourceOrder: 0},
		Specificity: css_ast.Specificity{Classes: 1},
		Origin:      css_ast.OriginAuthor,
	}
	important := csskit.Candidate{
		Declaration: css_ast.Declaration{Name: "color", Important: true, SourceOrder: 1},
		Specificity: css_ast.Specificity{},
		Origin:      css_ast.OriginAuthor,
	}

	winners := csskit.ResolveCascade([]csskit.Candidate{low, important}, csskit.CascadeOptions{})
	require.Contains(t, winners, "color")
	assert.True(t, winners["color"].Important)
}
