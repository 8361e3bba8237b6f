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

// Package yaml converts the node trees of go.yaml.in/yaml/v3 into
// alias-free [node.Document]s.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"cuelang.org/yamlcore/node"
)

// decoder wraps a [yaml.Decoder] to extract document trees.
type decoder struct {
	yamlDecoder yaml.Decoder
	filename    string

	// decodeErr is returned by any further calls to Decode when not nil.
	decodeErr error

	// extractingAliases ensures we don't loop forever when expanding YAML anchors.
	extractingAliases map[*yaml.Node]bool
}

// NewDecoder creates a decoder for the YAML stream in b.
//
// The filename is used for node positions as well as any errors
// encountered while decoding YAML.
func NewDecoder(filename string, b []byte) *decoder {
	return &decoder{
		filename:    filename,
		yamlDecoder: *yaml.NewDecoder(bytes.NewReader(b)),
	}
}

// Decode consumes a YAML document and returns its tree.
//
// A nil document with an io.EOF error is returned once no more
// documents are available. An empty stream has no documents.
func (d *decoder) Decode() (*node.Document, error) {
	if err := d.decodeErr; err != nil {
		return nil, err
	}
	var yn yaml.Node
	if err := d.yamlDecoder.Decode(&yn); err != nil {
		if err == io.EOF {
			// Any further Decode calls must return EOF to avoid an endless loop.
			d.decodeErr = io.EOF
			return nil, io.EOF
		}
		// Unfortunately, yaml.v3's syntax errors are opaque strings,
		// and they only include line numbers in some but not all cases.
		e := err.Error()
		if s, ok := strings.CutPrefix(e, "yaml: line "); ok {
			// From "yaml: line 3: some issue" to "foo.yaml:3: some issue".
			e = d.filename + ":" + s
		} else if s, ok := strings.CutPrefix(e, "yaml:"); ok {
			// From "yaml: some issue" to "foo.yaml: some issue".
			e = d.filename + ":" + s
		} else {
			return nil, err
		}
		err = errors.New(e)
		// Any further Decode calls repeat this error.
		d.decodeErr = err
		return nil, err
	}
	root, err := d.extract(&yn)
	if err != nil {
		return nil, err
	}
	return node.NewDocument(d.filename, root), nil
}

func (d *decoder) extract(yn *yaml.Node) (node.Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		return d.document(yn)
	case yaml.SequenceNode:
		return d.sequence(yn)
	case yaml.MappingNode:
		return d.mapping(yn)
	case yaml.ScalarNode:
		return d.scalar(yn), nil
	case yaml.AliasNode:
		return d.alias(yn)
	default:
		return nil, d.posErrorf(yn, "unknown yaml node kind: %d", yn.Kind)
	}
}

func (d *decoder) posErrorf(yn *yaml.Node, format string, args ...any) error {
	return fmt.Errorf(d.filename+":"+strconv.Itoa(yn.Line)+": "+format, args...)
}

func (d *decoder) pos(yn *yaml.Node) node.Pos {
	return node.Pos{Filename: d.filename, Line: yn.Line, Column: yn.Column}
}

func (d *decoder) document(yn *yaml.Node) (node.Node, error) {
	if n := len(yn.Content); n != 1 {
		return nil, d.posErrorf(yn, "yaml document nodes are meant to have one content node but have %d", n)
	}
	return d.extract(yn.Content[0])
}

func (d *decoder) sequence(yn *yaml.Node) (node.Node, error) {
	items := make([]node.Node, 0, len(yn.Content))
	for _, c := range yn.Content {
		elem, err := d.extract(c)
		if err != nil {
			return nil, err
		}
		items = append(items, elem)
	}
	return node.NewSequence(d.pos(yn), items...), nil
}

func (d *decoder) mapping(yn *yaml.Node) (node.Node, error) {
	l := len(yn.Content)
	if l%2 != 0 {
		return nil, d.posErrorf(yn, "yaml mapping nodes are meant to have an even number of content nodes but have %d", l)
	}
	pairs := make([]node.Pair, 0, l/2)
	for i := 0; i < l; i += 2 {
		k, err := d.extract(yn.Content[i])
		if err != nil {
			return nil, err
		}
		v, err := d.extract(yn.Content[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, node.Pair{Key: k, Value: v})
	}
	return node.NewMapping(d.pos(yn), pairs...), nil
}

const strTag = "!!str"

func (d *decoder) scalar(yn *yaml.Node) node.Node {
	return node.NewScalar(yn.Value, scalarStyle(yn), d.pos(yn))
}

// scalarStyle maps yaml.v3's style bits to a node style. An explicit
// !!str tag on a plain scalar makes it text; other tags are ignored.
func scalarStyle(yn *yaml.Node) node.Style {
	switch {
	case yn.Style&yaml.DoubleQuotedStyle != 0:
		return node.DoubleQuotedStyle
	case yn.Style&yaml.SingleQuotedStyle != 0:
		return node.SingleQuotedStyle
	case yn.Style&yaml.LiteralStyle != 0:
		return node.LiteralStyle
	case yn.Style&yaml.FoldedStyle != 0:
		return node.FoldedStyle
	case yn.Style&yaml.TaggedStyle != 0 && yn.ShortTag() == strTag:
		return node.OtherStyle
	}
	return node.PlainStyle
}

func (d *decoder) alias(yn *yaml.Node) (node.Node, error) {
	if d.extractingAliases[yn] {
		return nil, d.posErrorf(yn, "anchor %q value contains itself", yn.Value)
	}
	if d.extractingAliases == nil {
		d.extractingAliases = make(map[*yaml.Node]bool)
	}
	d.extractingAliases[yn] = true
	n, err := d.extract(yn.Alias)
	delete(d.extractingAliases, yn)
	return n, err
}
