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

// Package native constructs documents into plain Go values, the shape
// encoding/json produces: nil, bool, int64, float64, string, []any and
// map[string]any.
//
// Mapping keys must be scalars and are used verbatim, so a document
// like `1: one` yields the key "1". A repeated key is an error.
//
// With [Builder.Exact] set, numbers become *apd.Decimal values instead
// of int64 and float64, so integer literals of any size are accepted.
package native

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"cuelang.org/yamlcore/construct"
	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/resolve"
	"cuelang.org/yamlcore/value"
)

// Builder implements [construct.Builder] for plain Go values.
type Builder struct {
	// Exact makes decimal, octal and hex integers and finite floats
	// construct into *apd.Decimal.
	Exact bool
}

var _ construct.Builder[any] = Builder{}

// Unmarshal constructs n with a default [Builder].
func Unmarshal(n node.Node) (any, error) {
	return construct.Construct[any](Builder{}, n)
}

func (b Builder) Scalar(s *node.Scalar) (any, error) {
	text := s.Value()
	if b.Exact {
		switch class := resolve.Classify(text, s.Style()); class {
		case resolve.Decimal, resolve.Float:
			d, _, err := apd.NewFromString(text)
			if err != nil {
				return nil, posErrorf(s, "cannot construct %q as a decimal: %v", text, err)
			}
			return d, nil
		case resolve.Octal, resolve.Hex:
			base := 8
			if class == resolve.Hex {
				base = 16
			}
			var i big.Int
			if _, ok := i.SetString(text[2:], base); !ok {
				return nil, posErrorf(s, "cannot construct %q as a base %d integer", text, base)
			}
			return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(&i), 0), nil
		}
	}
	v, err := resolve.Scalar(text, s.Style())
	if err != nil {
		return nil, posError(s, err)
	}
	switch v := v.(type) {
	case value.Int:
		return int64(v), nil
	case value.Float:
		return float64(v), nil
	case value.String:
		return string(v), nil
	case value.Bool:
		return bool(v), nil
	case value.Null:
		return nil, nil
	}
	panic(fmt.Sprintf("unexpected scalar value %T", v))
}

func (b Builder) Sequence(s *node.Sequence) (any, error) {
	items, err := construct.CollectSequence[any](b, s)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Mapping checks each key before constructing its value, so that key
// errors are reported in document order alongside value errors.
func (b Builder) Mapping(m *node.Mapping) (any, error) {
	out := make(map[string]any, m.Len())
	seen := make(map[string]node.Pos, m.Len())
	for kn, vn := range m.All() {
		ks, ok := kn.(*node.Scalar)
		if !ok {
			return nil, &KeyError{Kind: kn.Kind(), Pos: kn.Pos()}
		}
		key := ks.Value()
		if first, dup := seen[key]; dup {
			return nil, &DuplicateKeyError{Key: key, First: first, Pos: ks.Pos()}
		}
		seen[key] = ks.Pos()
		v, err := construct.Construct[any](b, vn)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func posError(n node.Node, err error) error {
	if pos := n.Pos(); pos.IsValid() {
		return fmt.Errorf("%s: %w", pos, err)
	}
	return err
}

func posErrorf(n node.Node, format string, args ...any) error {
	return posError(n, fmt.Errorf(format, args...))
}

// KeyError reports a mapping key that is not a scalar.
type KeyError struct {
	Kind node.Kind
	Pos  node.Pos
}

func (e *KeyError) Error() string {
	return prefix(e.Pos) + fmt.Sprintf("invalid map key: %v keys are not supported", e.Kind)
}

// DuplicateKeyError reports a key that appears twice in one mapping,
// with the positions of both occurrences.
type DuplicateKeyError struct {
	Key   string
	First node.Pos
	Pos   node.Pos
}

func (e *DuplicateKeyError) Error() string {
	return prefix(e.Pos) + fmt.Sprintf("duplicate key %q (first at %s)", e.Key, e.First)
}

func prefix(pos node.Pos) string {
	if !pos.IsValid() {
		return ""
	}
	return pos.String() + ": "
}
