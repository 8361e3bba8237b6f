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

// Package goccy converts the syntax trees of github.com/goccy/go-yaml
// into alias-free [node.Document]s.
//
// go-yaml types plain scalars itself; those types are discarded and only
// the source text is kept, so that resolution is left to package resolve.
package goccy

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"cuelang.org/yamlcore/node"
)

type decoder struct {
	filename string
	docs     []*ast.DocumentNode
	err      error

	// anchors holds the converted value of each anchor defined so far in
	// the current document; an anchor may be redefined later on.
	anchors map[string]node.Node
	// extracting holds the anchors whose values are being converted.
	extracting map[string]bool
}

// NewDecoder creates a decoder for the YAML stream in b. The whole stream
// is parsed up front; a syntax error is returned by the first call to
// Decode.
func NewDecoder(filename string, b []byte) *decoder {
	d := &decoder{filename: filename}
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		d.err = d.syntaxError(err)
		return d
	}
	for _, doc := range f.Docs {
		if doc == nil {
			continue
		}
		if _, ok := doc.Body.(*ast.DirectiveNode); ok {
			continue
		}
		// An input holding only comments or whitespace has no documents.
		if doc.Body == nil && doc.Start == nil {
			continue
		}
		d.docs = append(d.docs, doc)
	}
	return d
}

// Decode returns the next document, or io.EOF when there are no more.
func (d *decoder) Decode() (*node.Document, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len(d.docs) == 0 {
		d.err = io.EOF
		return nil, io.EOF
	}
	doc := d.docs[0]
	d.docs = d.docs[1:]

	d.anchors = map[string]node.Node{}
	d.extracting = map[string]bool{}
	if doc.Body == nil {
		// An explicit but empty document.
		return node.NewDocument(d.filename, node.NewScalar("", node.PlainStyle, d.tokenPos(doc.Start))), nil
	}
	root, err := d.extract(doc.Body)
	if err != nil {
		d.err = err
		return nil, err
	}
	return node.NewDocument(d.filename, root), nil
}

// syntaxError turns go-yaml's "[3:5] message" followed by a source
// excerpt into "foo.yaml:3:5: message".
func (d *decoder) syntaxError(err error) error {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	msg = strings.TrimSpace(msg)
	if rest, ok := strings.CutPrefix(msg, "["); ok {
		if loc, text, ok := strings.Cut(rest, "]"); ok {
			return fmt.Errorf("%s:%s: %s", d.filename, loc, strings.TrimSpace(text))
		}
	}
	return fmt.Errorf("%s: %s", d.filename, msg)
}

func (d *decoder) posErrorf(n ast.Node, format string, args ...any) error {
	return fmt.Errorf(d.pos(n).String()+": "+format, args...)
}

func (d *decoder) pos(n ast.Node) node.Pos {
	return d.tokenPos(n.GetToken())
}

func (d *decoder) tokenPos(tk *token.Token) node.Pos {
	pos := node.Pos{Filename: d.filename}
	if tk != nil && tk.Position != nil {
		pos.Line = tk.Position.Line
		pos.Column = tk.Position.Column
	}
	return pos
}

func (d *decoder) extract(n ast.Node) (node.Node, error) {
	switch n := n.(type) {
	case *ast.MappingNode:
		pairs := make([]node.Pair, 0, len(n.Values))
		for _, mv := range n.Values {
			p, err := d.pair(mv)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
		return node.NewMapping(d.pos(n), pairs...), nil

	case *ast.MappingValueNode:
		// A block mapping with a single key is not wrapped in a MappingNode.
		p, err := d.pair(n)
		if err != nil {
			return nil, err
		}
		return node.NewMapping(d.pos(n.Key), p), nil

	case *ast.MappingKeyNode:
		return d.extract(n.Value)

	case *ast.SequenceNode:
		items := make([]node.Node, 0, len(n.Values))
		for _, c := range n.Values {
			elem, err := d.extract(c)
			if err != nil {
				return nil, err
			}
			items = append(items, elem)
		}
		return node.NewSequence(d.pos(n), items...), nil

	case *ast.StringNode:
		style := node.PlainStyle
		switch n.GetToken().Type {
		case token.SingleQuoteType:
			style = node.SingleQuotedStyle
		case token.DoubleQuoteType:
			style = node.DoubleQuotedStyle
		}
		return node.NewScalar(n.Value, style, d.pos(n)), nil

	case *ast.LiteralNode:
		style := node.LiteralStyle
		if n.Start != nil && n.Start.Type == token.FoldedType {
			style = node.FoldedStyle
		}
		text := ""
		if n.Value != nil {
			text = n.Value.Value
		}
		return node.NewScalar(text, style, d.pos(n)), nil

	case *ast.NullNode, *ast.BoolNode, *ast.IntegerNode, *ast.FloatNode,
		*ast.InfinityNode, *ast.NanNode, *ast.MergeKeyNode:
		text := ""
		if tk := n.GetToken(); tk != nil {
			text = tk.Value
		}
		return node.NewScalar(text, node.PlainStyle, d.pos(n)), nil

	case *ast.TagNode:
		v, err := d.extract(n.Value)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(*node.Scalar); ok && s.Style().Plain() && n.Start != nil && n.Start.Value == "!!str" {
			return node.NewScalar(s.Value(), node.OtherStyle, s.Pos()), nil
		}
		return v, nil

	case *ast.AnchorNode:
		name := tokenValue(n.Name)
		d.extracting[name] = true
		v, err := d.extract(n.Value)
		delete(d.extracting, name)
		if err != nil {
			return nil, err
		}
		d.anchors[name] = v
		return v, nil

	case *ast.AliasNode:
		name := tokenValue(n.Value)
		if d.extracting[name] {
			return nil, d.posErrorf(n, "anchor %q value contains itself", name)
		}
		v, ok := d.anchors[name]
		if !ok {
			return nil, d.posErrorf(n, "unknown anchor %q referenced", name)
		}
		return v, nil

	case nil:
		return nil, fmt.Errorf("%s: missing yaml node", d.filename)
	}
	return nil, d.posErrorf(n, "unsupported yaml node %T", n)
}

func (d *decoder) pair(mv *ast.MappingValueNode) (node.Pair, error) {
	k, err := d.extract(mv.Key)
	if err != nil {
		return node.Pair{}, err
	}
	if mv.Value == nil {
		return node.Pair{Key: k, Value: node.NewScalar("", node.PlainStyle, k.Pos())}, nil
	}
	v, err := d.extract(mv.Value)
	if err != nil {
		return node.Pair{}, err
	}
	return node.Pair{Key: k, Value: v}, nil
}

func tokenValue(n ast.Node) string {
	if n == nil {
		return ""
	}
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return n.String()
}
