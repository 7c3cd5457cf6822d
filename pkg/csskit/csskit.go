// Package csskit exposes this module's tokenizer, parser, cascade
// resolver, and serializer as a single library surface, the way
// esbuild's pkg/api wraps its internal packages for outside callers.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/6over3/CSSKit-sub004/pkg/csskit"
//	)
//
//	func main() {
//		result := csskit.Parse("a { color: red; }", csskit.ParseOptions{})
//		if err := result.Err(); err != nil {
//			fmt.Println(err)
//			return
//		}
//		fmt.Println(csskit.Print(result.Stylesheet, csskit.PrintOptions{}))
//	}
package csskit

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/6over3/CSSKit-sub004/internal/css_ast"
	"github.com/6over3/CSSKit-sub004/internal/css_cascade"
	"github.com/6over3/CSSKit-sub004/internal/css_parser"
	"github.com/6over3/CSSKit-sub004/internal/css_printer"
	"github.com/6over3/CSSKit-sub004/internal/logger"
)

// Message is a single parse diagnostic, detached from the internal
// logger.Msg representation so callers outside this module never need
// to import internal/logger.
type Message struct {
	Text string

	// File/Line/Column/Length describe where in the source the
	// diagnostic applies; Line is 0-based, Column/Length are UTF-16
	// code units (the CSS source map convention). Column is 0 for
	// diagnostics with no associated location.
	File   string
	Line   int
	Column int
	Length int
}

func (m Message) String() string {
	if m.Column == 0 && m.Line == 0 && m.File == "" {
		return m.Text
	}
	file := m.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, m.Line+1, m.Column, m.Text)
}

func messageFromMsg(m logger.Msg) Message {
	if m.Data.Location == nil {
		return Message{Text: m.Data.Text}
	}
	loc := m.Data.Location
	return Message{
		Text:   m.Data.Text,
		File:   loc.File,
		Line:   loc.Line,
		Column: loc.Column,
		Length: loc.Length,
	}
}

// ParseOptions controls tokenizing/parsing behavior.
type ParseOptions struct {
	// AllowNesting enables CSS Nesting syntax (a nested style rule
	// inside a style rule body). The zero value leaves it off, unlike
	// css_parser.DefaultOptions, which turns it on.
	AllowNesting bool

	// SourcePath is attached to diagnostics as the file name; it has no
	// effect on parsing.
	SourcePath string

	// Tracer receives debug-level events for backtracking and error
	// recovery. Nil (the default) is silent.
	Tracer *zap.Logger
}

// ParseResult is the outcome of parsing one CSS source string.
type ParseResult struct {
	Stylesheet css_ast.Stylesheet
	Errors     []Message
	Warnings   []Message
}

// Err combines every reported error into a single error value via
// multierr, so a caller that wants to treat "did parsing succeed" as an
// ordinary Go error (e.g. to satisfy an error-returning API boundary at
// the embedding application) doesn't have to range over Errors by hand.
// It returns nil when there were no errors; warnings never contribute.
func (r ParseResult) Err() error {
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

// Error makes Message satisfy the error interface so ParseResult.Err
// can hand Messages straight to multierr.Append.
func (m Message) Error() string { return m.String() }

// Parse tokenizes and parses a full CSS stylesheet.
func Parse(source string, options ParseOptions) ParseResult {
	log := logger.NewLog()
	src := logger.Source{Contents: source, PrettyPath: options.SourcePath}
	sheet := css_parser.Parse(log, src, css_parser.Options{
		AllowNesting: options.AllowNesting,
		Tracer:       options.Tracer,
	})

	var errs, warns []Message
	for _, m := range log.Msgs() {
		msg := messageFromMsg(m)
		if m.Kind == logger.Warning {
			warns = append(warns, msg)
		} else {
			errs = append(errs, msg)
		}
	}
	return ParseResult{Stylesheet: sheet, Errors: errs, Warnings: warns}
}

// PrintOptions controls serialization. It mirrors css_printer.Options
// one-to-one; it's redeclared here so callers never need to import an
// internal package to call Print.
type PrintOptions struct {
	Pretty bool
	Indent string
}

// Print serializes a parsed stylesheet back to CSS source text.
func Print(sheet css_ast.Stylesheet, options PrintOptions) string {
	return css_printer.Print(sheet, css_printer.Options{Pretty: options.Pretty, Indent: options.Indent})
}

// Candidate is one declaration competing to set a property on some
// matched element, annotated with everything the cascade needs to rank
// it. Selector-to-element matching is the caller's responsibility —
// this library has no DOM of its own (see internal/css_cascade's
// package doc) — so Specificity/Origin/Layer must already be resolved
// by the time a Candidate is constructed.
type Candidate = css_cascade.Candidate

// LayerRef names the cascade layer a Candidate belongs to.
type LayerRef = css_cascade.LayerRef

// LayerRegistry assigns @layer blocks (named, nested, or anonymous) a
// first-occurrence order index per CSS Cascade 5 §6.1. Build one by
// calling Visit over a parsed Stylesheet's top-level Rules before
// constructing Candidates, so each Candidate's LayerRef.Order reflects
// where its enclosing @layer was declared.
type LayerRegistry = css_cascade.LayerRegistry

// NewLayerRegistry returns an empty LayerRegistry.
func NewLayerRegistry() *LayerRegistry {
	return css_cascade.NewLayerRegistry()
}

// CascadeOptions controls the cascade resolver's optional tracing.
type CascadeOptions struct {
	// Tracer receives a debug event each time the winning candidate for
	// a property changes while scanning a candidate set. Nil is silent.
	Tracer *zap.Logger
}

// ResolveCascade picks, for each distinct declaration name among
// candidates, the single winning declaration per CSS Cascade 4 §4
// (origin/importance, then layer, then specificity, then source
// order).
func ResolveCascade(candidates []Candidate, options CascadeOptions) map[string]css_ast.Declaration {
	byName := make(map[string][]Candidate)
	for _, c := range candidates {
		byName[c.Declaration.Name] = append(byName[c.Declaration.Name], c)
	}
	resolver := css_cascade.Resolver{Tracer: options.Tracer}
	winners := make(map[string]css_ast.Declaration, len(byName))
	for name, group := range byName {
		if w, ok := resolver.Winner(group); ok {
			winners[name] = w.Declaration
		}
	}
	return winners
}
