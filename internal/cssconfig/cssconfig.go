// Package cssconfig loads named presets for the parser/printer feature
// toggles from YAML, the way rupor-github-fb2cng's config package
// loads its LoggingConfig/other settings structs — struct tags decoded
// by gopkg.in/yaml.v3, with no filesystem access of its own: a caller
// supplies the io.Reader, keeping file I/O out of this library per its
// scope.
package cssconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/6over3/CSSKit-sub004/internal/css_parser"
	"github.com/6over3/CSSKit-sub004/internal/css_printer"
)

// Preset names a parser/printer configuration a caller can select
// without constructing the underlying option structs by hand.
type Preset struct {
	Name string `yaml:"name"`

	// AllowNesting mirrors css_parser.Options.AllowNesting.
	AllowNesting bool `yaml:"allow_nesting"`

	// Pretty and Indent mirror css_printer.Options.
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// ParserOptions projects p into a css_parser.Options.
func (p Preset) ParserOptions() css_parser.Options {
	return css_parser.Options{AllowNesting: p.AllowNesting}
}

// PrinterOptions projects p into a css_printer.Options.
func (p Preset) PrinterOptions() css_printer.Options {
	return css_printer.Options{Pretty: p.Pretty, Indent: p.Indent}
}

// Document is the top-level shape of a preset file: a named list of
// presets, so one file can hold e.g. both "minified" and "pretty-debug".
type Document struct {
	Presets []Preset `yaml:"presets"`
}

// Load decodes r into a Document.
func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("cssconfig: decode: %w", err)
	}
	return doc, nil
}

// Find returns the named preset, or ok=false if the document has none
// by that name.
func (d Document) Find(name string) (Preset, bool) {
	for _, p := range d.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
