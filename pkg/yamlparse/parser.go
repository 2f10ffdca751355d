// Package yamlparse turns raw resource bytes into the nested value model of
// package data.
package yamlparse

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"lingo-hq/cldr/pkg/data"
)

// Parser converts raw bytes into a nested value.
type Parser interface {
	Parse(raw []byte) (any, error)
}

// YAML parses YAML documents with gopkg.in/yaml.v3.
type YAML struct {
	// SymbolizeKeys converts every mapping key, at any depth, into a
	// data.Symbol. Without it mappings keep the decoder's native key types.
	SymbolizeKeys bool
}

// New returns a YAML parser. symbolize selects the key symbolization mode.
func New(symbolize bool) *YAML {
	return &YAML{SymbolizeKeys: symbolize}
}

// Parse decodes the first YAML document in raw. An empty input yields a nil
// value. Decoder errors are returned as produced by yaml.v3.
func (p *YAML) Parse(raw []byte) (any, error) {
	var out any
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if p.SymbolizeKeys {
		return data.SymbolizeKeys(out), nil
	}
	return out, nil
}

// Func adapts a plain function to the Parser interface.
type Func func(raw []byte) (any, error)

// Parse calls f(raw).
func (f Func) Parse(raw []byte) (any, error) {
	return f(raw)
}
