// Copyright 2026 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package yaml reads YAML streams into node trees and constructs them
// with the core schema.
//
// Parsing is delegated to one of two third-party parsers, selected with
// [WithParser]. Both produce alias-free trees: anchored values are
// copied into the places that reference them.
package yaml

import (
	"fmt"
	"io"

	"cuelang.org/yamlcore/construct"
	"cuelang.org/yamlcore/internal/encoding/goccy"
	yamlv3 "cuelang.org/yamlcore/internal/encoding/yaml"
	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/value"
)

// Parser selects the library that parses YAML text.
type Parser int

const (
	// YAMLv3 uses go.yaml.in/yaml/v3.
	YAMLv3 Parser = iota
	// Goccy uses github.com/goccy/go-yaml.
	Goccy
)

var parserNames = [...]string{
	YAMLv3: "yamlv3",
	Goccy:  "goccy",
}

func (p Parser) String() string {
	if p >= 0 && int(p) < len(parserNames) {
		return parserNames[p]
	}
	return fmt.Sprintf("Parser(%d)", int(p))
}

// ParseParser returns the parser with the given name, as printed by
// [Parser.String].
func ParseParser(name string) (Parser, error) {
	for p, n := range parserNames {
		if n == name {
			return Parser(p), nil
		}
	}
	return 0, fmt.Errorf("unknown parser %q", name)
}

type options struct {
	parser Parser
}

// An Option configures how a stream is parsed.
type Option func(*options)

// WithParser selects the parser. The default is [YAMLv3].
func WithParser(p Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// A Decoder reads the documents of a YAML stream one at a time.
type Decoder interface {
	// Decode returns the next document. It returns io.EOF once the
	// stream is exhausted, and repeats a syntax error on every later call.
	Decode() (*node.Document, error)
}

// NewDecoder returns a decoder for the YAML stream in data. The filename
// is used in node positions and error messages.
func NewDecoder(filename string, data []byte, opts ...Option) Decoder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch o.parser {
	case Goccy:
		return goccy.NewDecoder(filename, data)
	default:
		return yamlv3.NewDecoder(filename, data)
	}
}

// Parse reads every document of a YAML stream.
func Parse(filename string, data []byte, opts ...Option) ([]*node.Document, error) {
	d := NewDecoder(filename, data, opts...)
	var docs []*node.Document
	for {
		doc, err := d.Decode()
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// Unmarshal constructs the single document in data with
// [construct.Standard]. An empty stream yields [value.Null].
func Unmarshal(filename string, data []byte, opts ...Option) (value.Value, error) {
	d := NewDecoder(filename, data, opts...)
	doc, err := d.Decode()
	if err == io.EOF {
		return value.Null{}, nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := d.Decode(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: expected a single YAML document", filename)
	}
	return construct.Value(doc.Root())
}
