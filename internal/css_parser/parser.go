// Package css_parser turns a token stream (internal/css_lexer) into the
// typed AST (internal/css_ast): rules, selectors, and property values.
//
// The cursor (advance/at/current/next/peek/eat/expect) is ported closely
// from esbuild's own css_parser.go — an index into the flat token slice
// rather than a recursive-descent parser consuming a stream, so
// backtracking (tryParse-style speculative parsing of a value grammar)
// is just saving and restoring an int. What differs: there is no
// minifier, no CSS-modules symbol table, no target-environment
// compat-prefix table — none of those are in scope (esbuild's own
// Options.minifySyntax/minifyWhitespace/minifyIdentifiers/symbolMode/
// cssPrefixData fields all belonged to its bundler integration, not to
// parsing CSS itself); in their place this parser builds the typed
// value/selector/specificity model esbuild's own AST never had.
package css_parser

import (
	"go.uber.org/zap"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_lexer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

type Options struct {
	// AllowNesting controls whether a nested style rule inside a style
	// rule body is recognized (CSS Nesting). When false, such content is
	// parsed as a declaration and reported as a syntax error, matching
	// callers that target browsers predating CSS Nesting.
	AllowNesting bool

	// Tracer receives debug-level events for speculative-parse rollback
	// and error-recovery token skipping. Left nil (the default), the
	// parser is silent; callers debugging a grammar disagreement can
	// pass a real *zap.Logger to see where the parser backtracked.
	Tracer *zap.Logger
}

func DefaultOptions() Options {
	return Options{AllowNesting: true}
}

func (o Options) tracer() *zap.Logger {
	if o.Tracer == nil {
		return zap.NewNop()
	}
	return o.Tracer
}

type parser struct {
	log     logger.Log
	source  logger.Source
	tokens  []css_lexer.Token
	tracker logger.LineColumnTracker
	stack   []css_lexer.T // closing-delimiter stack for nested-block recovery
	index   int
	end     int
	options Options
	tracer  *zap.Logger

	sourceOrder int // monotonically increasing; stamped onto every Declaration for cascade source-order tiebreaks
}

// Parse tokenizes and parses a full stylesheet.
func Parse(log logger.Log, source logger.Source, options Options) css_ast.Stylesheet {
	result := css_lexer.Tokenize(log, source)
	p := parser{
		log:     log,
		source:  source,
		tracker: logger.MakeLineColumnTracker(&source),
		tokens:  result.Tokens,
		options: options,
		tracer:  options.tracer(),
	}
	p.end = len(p.tokens)
	rules := p.parseListOfRules(ruleContext{isTopLevel: true})
	p.expect(css_lexer.TEndOfFile)
	return css_ast.Stylesheet{
		Rules:            rules,
		SourceMappingURL: result.SourceMappingURL,
		SourceURL:        result.SourceURL,
		Source:           source,
	}
}

func (p *parser) advance() {
	if p.index < p.end {
		p.index++
	}
}

func (p *parser) at(index int) css_lexer.Token {
	if index < p.end {
		return p.tokens[index]
	}
	if p.end < len(p.tokens) {
		return css_lexer.Token{Kind: css_lexer.TEndOfFile, Range: logger.Range{Loc: p.tokens[p.end].Range.Loc}}
	}
	return css_lexer.Token{Kind: css_lexer.TEndOfFile, Range: logger.Range{Loc: logger.Loc{Start: int32(len(p.source.Contents))}}}
}

func (p *parser) current() css_lexer.Token { return p.at(p.index) }
func (p *parser) next() css_lexer.Token    { return p.at(p.index + 1) }

func (p *parser) raw() string {
	t := p.current()
	return p.source.Contents[t.Range.Loc.Start:t.Range.End()]
}

func (p *parser) decoded() string {
	return p.current().DecodedText(p.source.Contents)
}

func (p *parser) peek(kind css_lexer.T) bool {
	return kind == p.current().Kind
}

func (p *parser) eat(kind css_lexer.T) bool {
	if p.peek(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind css_lexer.T) bool {
	if p.eat(kind) {
		return true
	}
	t := p.current()
	p.log.Add(logger.Error, &p.tracker, t.Range, "Expected "+kind.String()+" but found "+p.current().Kind.String())
	return false
}

// state/reset implement the speculative-parse (tryParse) pattern used
// throughout value grammars: save the cursor, attempt a parse, and roll
// back if it didn't pan out instead of threading a bool return through
// every helper.
type cursorState struct {
	index int
}

func (p *parser) state() cursorState  { return cursorState{index: p.index} }
func (p *parser) reset(s cursorState) { p.index = s.index }

// tryParse runs fn speculatively; if fn returns false the cursor is
// rewound to where it started, so fn is free to consume tokens before
// discovering its grammar doesn't match.
func (p *parser) tryParse(fn func() bool) bool {
	s := p.state()
	if fn() {
		return true
	}
	p.tracer.Debug("speculative parse rolled back", zap.Int("from", p.index), zap.Int("to", s.index))
	p.reset(s)
	return false
}

func (p *parser) skipWhitespace() {
	for p.peek(css_lexer.TWhitespace) || p.peek(css_lexer.TComment) {
		p.advance()
	}
}

// eatWhitespaceAndComments is the same as skipWhitespace spelled out for
// call sites that want to make clear they are deliberately ignoring
// comments mid-grammar (CSS comments are insignificant everywhere except
// inside an unparsed/unknown value where they must round-trip).
func (p *parser) eatWhitespaceAndComments() { p.skipWhitespace() }

func (p *parser) nextSourceOrder() int {
	v := p.sourceOrder
	p.sourceOrder++
	return v
}
