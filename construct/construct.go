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

// Package construct turns document nodes into values of a type chosen
// by the caller.
//
// A [Builder] supplies one method per node variant. [Construct]
// dispatches a node to the matching method, and the helpers
// [CollectSequence] and [CollectMapping] give builders the default
// depth-first, left-to-right aggregation: the first error stops the
// traversal and is returned unchanged, with no partial result.
//
// [Standard] is the builder for the common case of producing
// [value.Value]s with YAML core schema resolution.
package construct

import (
	"errors"

	"cuelang.org/yamlcore/node"
)

// Builder constructs values of type T from each kind of node.
//
// Sequence and Mapping are normally written in terms of
// [CollectSequence] and [CollectMapping], which recurse through
// [Construct] with the same builder.
type Builder[T any] interface {
	Scalar(s *node.Scalar) (T, error)
	Sequence(s *node.Sequence) (T, error)
	Mapping(m *node.Mapping) (T, error)
}

// NodeConstructor may be implemented by a [Builder] to replace the
// default dispatch performed by [Construct]. Because the collection
// helpers recurse through Construct, the replacement applies at every
// level of the tree. An implementation that wants the default behaviour
// for some nodes calls [Dispatch], not Construct.
type NodeConstructor[T any] interface {
	Construct(n node.Node) (T, error)
}

// Pair is a constructed key/value pair.
type Pair[T any] struct {
	Key   T
	Value T
}

var errNilNode = errors.New("construct: nil node")

// Construct builds a value from n with b.
func Construct[T any](b Builder[T], n node.Node) (T, error) {
	if c, ok := b.(NodeConstructor[T]); ok {
		return c.Construct(n)
	}
	return Dispatch(b, n)
}

// Dispatch calls the method of b matching the kind of n and returns its
// result as is.
func Dispatch[T any](b Builder[T], n node.Node) (T, error) {
	switch n := n.(type) {
	case *node.Scalar:
		return b.Scalar(n)
	case *node.Sequence:
		return b.Sequence(n)
	case *node.Mapping:
		return b.Mapping(n)
	}
	// Node is sealed, so only a nil node gets here.
	var zero T
	return zero, errNilNode
}

// CollectSequence constructs the items of s in order. It stops at the
// first error and returns it unchanged.
func CollectSequence[T any](b Builder[T], s *node.Sequence) ([]T, error) {
	items := make([]T, 0, s.Len())
	for n := range s.All() {
		v, err := Construct(b, n)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// CollectMapping constructs the pairs of m in declaration order, the key
// of each pair before its value. It stops at the first error and
// returns it unchanged.
func CollectMapping[T any](b Builder[T], m *node.Mapping) ([]Pair[T], error) {
	pairs := make([]Pair[T], 0, m.Len())
	for kn, vn := range m.All() {
		k, err := Construct(b, kn)
		if err != nil {
			return nil, err
		}
		v, err := Construct(b, vn)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair[T]{Key: k, Value: v})
	}
	return pairs, nil
}
