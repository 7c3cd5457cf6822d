package css_cascade

import (
	"testing"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decl(name string, important bool, order int) css_ast.Declaration {
	return css_ast.Declaration{Name: name, Important: important, SourceOrder: order}
}

func TestResolverWinnerEmpty(t *testing.T) {
	var r Resolver
	_, ok := r.Winner(nil)
	assert.False(t, ok)
}

func TestResolverWinnerImportantBeatsAuthorSpecificity(t *testing.T) {
	// p { font-weight: 700 !important; } p { font-weight: 400; }
	// equal specificity/origin, the !important declaration wins
	// regardless of which rule comes later in source order.
	low := Candidate{
		Declaration: decl("font-weight", false, 1),
		Specificity: css_ast.Specificity{Elements: 1},
		Origin:      css_ast.OriginAuthor,
	}
	high := Candidate{
		Declaration: decl("font-weight", true, 0),
		Specificity: css_ast.Specificity{Elements: 1},
		Origin:      css_ast.OriginAuthor,
	}
	var r Resolver
	winner, ok := r.Winner([]Candidate{low, high})
	require.True(t, ok)
	assert.True(t, winner.Declaration.Important)
}

func TestResolverWinnerHigherSpecificityWins(t *testing.T) {
	byElement := Candidate{
		Declaration: decl("color", false, 0),
		Specificity: css_ast.Specificity{Elements: 1},
		Origin:      css_ast.OriginAuthor,
	}
	byID := Candidate{
		Declaration: decl("color", false, 1),
		Specificity: css_ast.Specificity{IDs: 1},
		Origin:      css_ast.OriginAuthor,
	}
	var r Resolver
	winner, ok := r.Winner([]Candidate{byElement, byID})
	require.True(t, ok)
	assert.Equal(t, 1, winner.Declaration.SourceOrder)
}

func TestResolverWinnerSourceOrderTiesBreakLater(t *testing.T) {
	first := Candidate{Declaration: decl("color", false, 0), Origin: css_ast.OriginAuthor}
	second := Candidate{Declaration: decl("color", false, 1), Origin: css_ast.OriginAuthor}
	var r Resolver
	winner, ok := r.Winner([]Candidate{first, second})
	require.True(t, ok)
	assert.Equal(t, 1, winner.Declaration.SourceOrder)
}

func TestResolverWinnerOriginPrecedence(t *testing.T) {
	ua := Candidate{Declaration: decl("color", false, 5), Origin: css_ast.OriginUserAgent}
	author := Candidate{Declaration: decl("color", false, 0), Origin: css_ast.OriginAuthor}
	var r Resolver
	winner, ok := r.Winner([]Candidate{ua, author})
	require.True(t, ok)
	assert.Equal(t, css_ast.OriginAuthor, winner.Origin)
}

func TestResolverWinnerTransitionOutranksImportantUserAgent(t *testing.T) {
	uaImportant := Candidate{Declaration: decl("opacity", true, 0), Origin: css_ast.OriginUserAgent}
	transition := Candidate{Declaration: decl("opacity", false, 1), Origin: css_ast.OriginTransition}
	var r Resolver
	winner, ok := r.Winner([]Candidate{uaImportant, transition})
	require.True(t, ok)
	assert.Equal(t, css_ast.OriginTransition, winner.Origin)
}

func TestResolverSortIsStableAndAscending(t *testing.T) {
	a := Candidate{Declaration: decl("color", false, 0), Origin: css_ast.OriginAuthor}
	b := Candidate{Declaration: decl("color", false, 1), Origin: css_ast.OriginAuthor}
	var r Resolver
	sorted := r.Sort([]Candidate{b, a})
	require.Len(t, sorted, 2)
	assert.Equal(t, 0, sorted[0].Declaration.SourceOrder)
	assert.Equal(t, 1, sorted[1].Declaration.SourceOrder)
}

func TestResolveByPropertyGroupsByName(t *testing.T) {
	candidates := []Candidate{
		{Declaration: decl("color", false, 0), Origin: css_ast.OriginAuthor},
		{Declaration: decl("color", false, 1), Origin: css_ast.OriginAuthor},
		{Declaration: decl("--accent", false, 0), Origin: css_ast.OriginAuthor},
	}
	winners := ResolveByProperty(candidates)
	require.Len(t, winners, 2)
	assert.Equal(t, 1, winners["color"].SourceOrder)
	assert.Contains(t, winners, "--accent")
}

func TestLayerRegistryOrdersByFirstMention(t *testing.T) {
	reg := NewLayerRegistry()
	rules := []css_ast.R{
		&css_ast.LayerRule{Names: []string{"reset"}},
		&css_ast.LayerRule{Names: []string{"base"}},
		&css_ast.LayerRule{Names: []string{"reset"}}, // redeclared, same order
	}
	reg.Visit(rules, "")
	resetOrder, ok := reg.OrderOf("reset")
	require.True(t, ok)
	baseOrder, ok := reg.OrderOf("base")
	require.True(t, ok)
	assert.Less(t, resetOrder, baseOrder)
	assert.Equal(t, 2, reg.Count())
}

func TestLayerRegistryNestedLayersGetDottedNames(t *testing.T) {
	reg := NewLayerRegistry()
	rules := []css_ast.R{
		&css_ast.LayerRule{
			Names: []string{"framework"},
			Rules: []css_ast.R{
				&css_ast.LayerRule{Names: []string{"components"}},
			},
		},
	}
	reg.Visit(rules, "")
	_, ok := reg.OrderOf("framework.components")
	assert.True(t, ok)
}

func TestLayerRegistryAnonymousLayersNeverCollide(t *testing.T) {
	reg := NewLayerRegistry()
	rules := []css_ast.R{
		&css_ast.LayerRule{Rules: []css_ast.R{}},
		&css_ast.LayerRule{Rules: []css_ast.R{}},
	}
	reg.Visit(rules, "")
	assert.Equal(t, 2, reg.Count())
}

func TestLayerRegistryRecursesThroughConditionalRules(t *testing.T) {
	reg := NewLayerRegistry()
	rules := []css_ast.R{
		&css_ast.MediaRule{
			Rules: []css_ast.R{
				&css_ast.LayerRule{Names: []string{"print-only"}},
			},
		},
	}
	reg.Visit(rules, "")
	_, ok := reg.OrderOf("print-only")
	assert.True(t, ok)
}
