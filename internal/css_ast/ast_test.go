package css_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificityCompare(t *testing.T) {
	assert.Equal(t, 0, Specificity{}.Compare(Specificity{}))
	assert.Equal(t, 1, Specificity{IDs: 1}.Compare(Specificity{Classes: 100}))
	assert.Equal(t, -1, Specificity{Classes: 1}.Compare(Specificity{Classes: 2}))
	assert.Equal(t, 1, Specificity{Classes: 2, Elements: 0}.Compare(Specificity{Classes: 1, Elements: 100}))
}

func TestCascadeWeightLessLayerOrderingNormal(t *testing.T) {
	earlierLayer := CascadeWeight{Origin: OriginAuthor, HasLayer: true, LayerOrder: 0}
	laterLayer := CascadeWeight{Origin: OriginAuthor, HasLayer: true, LayerOrder: 1}
	unlayered := CascadeWeight{Origin: OriginAuthor, HasLayer: false}

	assert.True(t, earlierLayer.Less(laterLayer), "in normal cascade, earlier-declared layer loses to a later one")
	assert.True(t, laterLayer.Less(unlayered), "in normal cascade, any layer loses to the implicit unlayered bucket")
}

func TestCascadeWeightLessLayerOrderingImportant(t *testing.T) {
	earlierLayer := CascadeWeight{Origin: OriginAuthor, Important: true, HasLayer: true, LayerOrder: 0}
	laterLayer := CascadeWeight{Origin: OriginAuthor, Important: true, HasLayer: true, LayerOrder: 1}
	unlayered := CascadeWeight{Origin: OriginAuthor, Important: true, HasLayer: false}

	assert.True(t, laterLayer.Less(earlierLayer), "in important cascade, layer order inverts: later layer loses to earlier one")
	assert.True(t, unlayered.Less(earlierLayer), "in important cascade, the unlayered bucket loses to any named layer")
}

func TestCascadeWeightLessOriginPrecedence(t *testing.T) {
	ua := CascadeWeight{Origin: OriginUserAgent}
	user := CascadeWeight{Origin: OriginUser}
	author := CascadeWeight{Origin: OriginAuthor}

	assert.True(t, ua.Less(user))
	assert.True(t, user.Less(author))

	// Important inverts origin precedence too.
	uaImportant := CascadeWeight{Origin: OriginUserAgent, Important: true}
	authorImportant := CascadeWeight{Origin: OriginAuthor, Important: true}
	assert.True(t, authorImportant.Less(uaImportant))
}

func TestCascadeWeightLessTransitionAlwaysWins(t *testing.T) {
	transition := CascadeWeight{Origin: OriginTransition, SourceOrder: 0}
	uaImportant := CascadeWeight{Origin: OriginUserAgent, Important: true, SourceOrder: 100}

	assert.True(t, uaImportant.Less(transition), "transition origin outranks even user-agent !important")
}

func TestCascadeWeightLessSpecificityThenSourceOrder(t *testing.T) {
	lowSpec := CascadeWeight{Origin: OriginAuthor, Specificity: Specificity{Classes: 1}, SourceOrder: 5}
	highSpec := CascadeWeight{Origin: OriginAuthor, Specificity: Specificity{IDs: 1}, SourceOrder: 0}
	assert.True(t, lowSpec.Less(highSpec))

	tieEarlier := CascadeWeight{Origin: OriginAuthor, Specificity: Specificity{Classes: 1}, SourceOrder: 0}
	tieLater := CascadeWeight{Origin: OriginAuthor, Specificity: Specificity{Classes: 1}, SourceOrder: 1}
	assert.True(t, tieEarlier.Less(tieLater))
}
