package css_lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6over3/CSSKit-sub004/internal/logger"
)

func tokenize(t *testing.T, contents string) TokenizeResult {
	t.Helper()
	log := logger.NewLog()
	source := logger.Source{Contents: contents}
	result := Tokenize(log, source)
	require.False(t, log.HasErrors(), "unexpected lexer errors for input: %s", contents)
	return result
}

func kinds(result TokenizeResult) []T {
	var out []T
	for _, tok := range result.Tokens {
		if tok.Kind == TWhitespace {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeIdentAndFunction(t *testing.T) {
	result := tokenize(t, "color red rgb(")
	assert.Equal(t, []T{TIdent, TIdent, TFunction}, kinds(result))
}

func TestTokenizeHashDistinguishesIDFromPlain(t *testing.T) {
	result := tokenize(t, "#foo #123")
	require.Len(t, kinds(result), 2)
	assert.True(t, result.Tokens[0].IsID)
	// "#123" starts with a digit, so it's a valid hash token but not a
	// valid identifier.
	hashIndex := -1
	for i, tok := range result.Tokens {
		if tok.Kind == THash && !tok.IsID {
			hashIndex = i
		}
	}
	require.NotEqual(t, -1, hashIndex)
}

func TestTokenizeHashIsIDWhenNameLike(t *testing.T) {
	log := logger.NewLog()
	source := logger.Source{Contents: "#foo"}
	result := Tokenize(log, source)
	require.False(t, log.HasErrors())
	require.Len(t, result.Tokens, 1) // hash only; the end-of-file token is not stored
	assert.Equal(t, THash, result.Tokens[0].Kind)
	assert.True(t, result.Tokens[0].IsID)
}

func TestTokenizeDimensionAndPercentage(t *testing.T) {
	result := tokenize(t, "10px 50%")
	assert.Equal(t, []T{TDimension, TPercentage}, kinds(result))
}

func TestTokenizeStringWithEscapedQuote(t *testing.T) {
	log := logger.NewLog()
	source := logger.Source{Contents: `"a\"b"`}
	result := Tokenize(log, source)
	require.False(t, log.HasErrors())
	require.NotEmpty(t, result.Tokens)
	assert.Equal(t, TString, result.Tokens[0].Kind)
	assert.Equal(t, `a"b`, result.Tokens[0].DecodedText(source.Contents))
}

func TestTokenizeURLToken(t *testing.T) {
	result := tokenize(t, "url(foo.png)")
	assert.Equal(t, []T{TURL}, kinds(result))
}

func TestTokenizeUnicodeRange(t *testing.T) {
	result := tokenize(t, "U+26 U+0-7F U+4??")
	assert.Equal(t, []T{TUnicodeRange, TUnicodeRange, TUnicodeRange}, kinds(result))
}

func TestTokenizeAtKeyword(t *testing.T) {
	result := tokenize(t, "@media")
	assert.Equal(t, []T{TAtKeyword}, kinds(result))
}

func TestTokenizeSourceMappingURLComment(t *testing.T) {
	log := logger.NewLog()
	source := logger.Source{Contents: "a{}/*# sourceMappingURL=out.css.map */"}
	result := Tokenize(log, source)
	require.False(t, log.HasErrors())
	assert.Equal(t, "out.css.map", result.SourceMappingURL)
}
