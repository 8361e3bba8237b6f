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

// Package value defines the standard value model that YAML documents
// are constructed into by [cuelang.org/yamlcore/construct.Standard].
//
// A [Value] is one of [Int], [Float], [String], [Null], [Bool],
// [Sequence] or [Mapping]. Values hold no reference to the nodes they
// were built from.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a [Value].
type Kind int

const (
	_ Kind = iota

	IntKind
	FloatKind
	StringKind
	NullKind
	BoolKind
	SequenceKind
	MappingKind
)

var kindNames = [...]string{
	IntKind:      "int",
	FloatKind:    "float",
	StringKind:   "string",
	NullKind:     "null",
	BoolKind:     "bool",
	SequenceKind: "sequence",
	MappingKind:  "mapping",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a constructed YAML value.
type Value interface {
	Kind() Kind

	// String returns a flow-style rendering of the value meant for
	// diagnostics and tests. It is not a YAML encoder: strings are
	// rendered with Go quoting.
	String() string

	value()
}

type (
	Int      int64
	Float    float64
	String   string
	Null     struct{}
	Bool     bool
	Sequence []Value
	Mapping  []Pair
)

// Pair is a key/value entry of a [Mapping].
type Pair struct {
	Key   Value
	Value Value
}

func (Int) Kind() Kind      { return IntKind }
func (Float) Kind() Kind    { return FloatKind }
func (String) Kind() Kind   { return StringKind }
func (Null) Kind() Kind     { return NullKind }
func (Bool) Kind() Kind     { return BoolKind }
func (Sequence) Kind() Kind { return SequenceKind }
func (Mapping) Kind() Kind  { return MappingKind }

func (Int) value()      {}
func (Float) value()    {}
func (String) value()   {}
func (Null) value()     {}
func (Bool) value()     {}
func (Sequence) value() {}
func (Mapping) value()  {}

func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }

func (x Float) String() string {
	f := float64(x)
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep floats distinguishable from integers.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (x String) String() string { return strconv.Quote(string(x)) }

func (Null) String() string { return "null" }

func (x Bool) String() string { return strconv.FormatBool(bool(x)) }

func (x Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range x {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(str(v))
	}
	b.WriteByte(']')
	return b.String()
}

func (x Mapping) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range x {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(str(p.Key))
		b.WriteString(": ")
		b.WriteString(str(p.Value))
	}
	b.WriteByte('}')
	return b.String()
}

// Lookup returns the value of the first pair whose key is [Equal] to
// key.
func (x Mapping) Lookup(key Value) (Value, bool) {
	for _, p := range x {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

func str(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// Equal reports whether x and y are structurally equal.
//
// Sequences and mappings are compared element by element in order, so
// two mappings holding the same pairs in a different order are not
// equal. Floats compare with ==, which makes NaN unequal to itself.
func Equal(x, y Value) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	switch x := x.(type) {
	case Sequence:
		y, ok := y.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Mapping:
		y, ok := y.(Mapping)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i].Key, y[i].Key) || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	}
	// The remaining variants are comparable scalars.
	return x == y
}
