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

// Package node defines the read-only view of a parsed YAML document
// that the construct package walks.
//
// A node is exactly one of [*Scalar], [*Sequence] or [*Mapping].
// Parsers build trees with [NewScalar], [NewSequence] and [NewMapping];
// there are no mutators, so a finished tree may be shared between
// goroutines without locking.
//
// Anchors, aliases, tags and multi-document streams are the parser's
// business: a tree handed to this package is already alias-resolved
// and acyclic.
package node

import (
	"iter"
	"slices"
	"strconv"
)

// Kind identifies which of the three node variants a [Node] is.
type Kind int

const (
	_ Kind = iota

	ScalarKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one element of a document tree.
type Node interface {
	Kind() Kind
	Pos() Pos

	node()
}

// Scalar is a leaf holding the scalar's text after the parser has
// removed quoting, escapes and block indentation.
type Scalar struct {
	value string
	style Style
	pos   Pos
}

// NewScalar returns a scalar node.
func NewScalar(value string, style Style, pos Pos) *Scalar {
	return &Scalar{value: value, style: style, pos: pos}
}

func (s *Scalar) Kind() Kind { return ScalarKind }
func (s *Scalar) Pos() Pos   { return s.pos }

// Value returns the scalar text.
func (s *Scalar) Value() string { return s.value }

// Style returns the presentation style the scalar was written in.
func (s *Scalar) Style() Style { return s.style }

func (s *Scalar) node() {}

// Sequence is an ordered list of nodes.
type Sequence struct {
	items []Node
	pos   Pos
}

// NewSequence returns a sequence node holding a copy of items.
func NewSequence(pos Pos, items ...Node) *Sequence {
	return &Sequence{items: slices.Clone(items), pos: pos}
}

func (s *Sequence) Kind() Kind { return SequenceKind }
func (s *Sequence) Pos() Pos   { return s.pos }

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// Index returns the i'th item.
func (s *Sequence) Index(i int) Node { return s.items[i] }

// All iterates over the items in document order.
func (s *Sequence) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range s.items {
			if !yield(n) {
				return
			}
		}
	}
}

func (s *Sequence) node() {}

// Pair is one key/value entry of a [Mapping].
type Pair struct {
	Key   Node
	Value Node
}

// Mapping is an ordered list of key/value pairs. Keys are not
// deduplicated: a mapping written with a repeated key keeps both pairs.
type Mapping struct {
	pairs []Pair
	pos   Pos
}

// NewMapping returns a mapping node holding a copy of pairs.
func NewMapping(pos Pos, pairs ...Pair) *Mapping {
	return &Mapping{pairs: slices.Clone(pairs), pos: pos}
}

func (m *Mapping) Kind() Kind { return MappingKind }
func (m *Mapping) Pos() Pos   { return m.pos }

// Len returns the number of pairs.
func (m *Mapping) Len() int { return len(m.pairs) }

// Pair returns the i'th pair.
func (m *Mapping) Pair(i int) Pair { return m.pairs[i] }

// All iterates over the pairs in declaration order.
func (m *Mapping) All() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *Mapping) node() {}

// Document is a single parsed document.
type Document struct {
	filename string
	root     Node
}

// NewDocument returns a document rooted at root.
func NewDocument(filename string, root Node) *Document {
	return &Document{filename: filename, root: root}
}

// Root returns the top-level node.
func (d *Document) Root() Node { return d.root }

// Filename returns the name the document was parsed from, if any.
func (d *Document) Filename() string { return d.filename }
