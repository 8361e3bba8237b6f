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

package construct_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"cuelang.org/yamlcore/construct"
	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/resolve"
	"cuelang.org/yamlcore/value"
)

// approxFloats compares floats within rounding tolerance, treating
// matching infinities as equal.
var approxFloats = cmp.Comparer(func(x, y value.Float) bool {
	if math.IsInf(float64(x), 0) || math.IsInf(float64(y), 0) {
		return x == y
	}
	return math.Abs(float64(x-y)) < 1e-9
})

func plains(texts ...string) []node.Node {
	var ns []node.Node
	for _, s := range texts {
		ns = append(ns, scalar(s))
	}
	return ns
}

func TestStandard(t *testing.T) {
	tests := []struct {
		name string
		n    node.Node
		want value.Value
	}{{
		name: "integers",
		n:    seq(plains("1", "2", "3")...),
		want: value.Sequence{value.Int(1), value.Int(2), value.Int(3)},
	}, {
		name: "bases",
		n:    seq(plains("0o10", "0x21", "-30")...),
		want: value.Sequence{value.Int(8), value.Int(33), value.Int(-30)},
	}, {
		name: "floats",
		n:    seq(plains("0.3", "-.4", "1e+2", "-1.2e-3")...),
		want: value.Sequence{value.Float(0.3), value.Float(-0.4), value.Float(100), value.Float(-0.0012)},
	}, {
		name: "infinities",
		n:    seq(plains(".inf", "-.INF")...),
		want: value.Sequence{value.Float(math.Inf(1)), value.Float(math.Inf(-1))},
	}, {
		name: "misc",
		n:    seq(plains("yes", "False", "~")...),
		want: value.Sequence{value.Bool(true), value.Bool(false), value.Null{}},
	}, {
		name: "precedence",
		n:    seq(plains("1.0", "1")...),
		want: value.Sequence{value.Float(1), value.Int(1)},
	}, {
		name: "quoted",
		n: seq(
			node.NewScalar("123", node.DoubleQuotedStyle, node.Pos{}),
			node.NewScalar("true", node.SingleQuotedStyle, node.Pos{}),
			node.NewScalar("~\n", node.LiteralStyle, node.Pos{}),
		),
		want: value.Sequence{value.String("123"), value.String("true"), value.String("~\n")},
	}, {
		name: "mapping",
		n: mapping(
			scalar("name"), scalar("widget"),
			scalar("count"), scalar("3"),
			scalar("1"), seq(scalar("null")),
			scalar("name"), scalar("again"),
		),
		want: value.Mapping{
			{Key: value.String("name"), Value: value.String("widget")},
			{Key: value.String("count"), Value: value.Int(3)},
			{Key: value.Int(1), Value: value.Sequence{value.Null{}}},
			{Key: value.String("name"), Value: value.String("again")},
		},
	}, {
		name: "complexKey",
		n:    mapping(seq(scalar("a")), mapping(scalar("b"), scalar("c"))),
		want: value.Mapping{{
			Key:   value.Sequence{value.String("a")},
			Value: value.Mapping{{Key: value.String("b"), Value: value.String("c")}},
		}},
	}, {
		name: "empty",
		n:    seq(seq(), mapping()),
		want: value.Sequence{value.Sequence{}, value.Mapping{}},
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := construct.Value(test.n)
			qt.Assert(t, qt.IsNil(err))
			if diff := cmp.Diff(test.want, got, approxFloats); diff != "" {
				t.Errorf("unexpected value (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStandardOverflow(t *testing.T) {
	n := seq(
		scalar("1"),
		node.NewScalar("0x8000000000000000", node.PlainStyle, node.Pos{Filename: "in.yaml", Line: 2, Column: 5}),
		scalar("99999999999999999999"),
	)
	got, err := construct.Value(n)
	qt.Assert(t, qt.IsNil(got))
	qt.Assert(t, qt.ErrorIs(err, strconv.ErrRange))
	qt.Assert(t, qt.ErrorMatches(err, `in.yaml:2:5: cannot resolve "0x8000000000000000" as a base 16 integer: value out of range`))

	var rerr *resolve.RangeError
	qt.Assert(t, qt.IsTrue(errors.As(err, &rerr)))
	qt.Assert(t, qt.Equals(rerr.Base, 16))

	// Without a position the resolver error is returned as is.
	_, err = construct.Value(mapping(scalar("k"), scalar("-9223372036854775809")))
	qt.Assert(t, qt.ErrorMatches(err, `cannot resolve "-9223372036854775809" as a base 10 integer: value out of range`))
}

func TestStandardNoBackReference(t *testing.T) {
	s := seq(scalar("a"))
	v1, err := construct.Value(s)
	qt.Assert(t, qt.IsNil(err))
	v2, err := construct.Value(s)
	qt.Assert(t, qt.IsNil(err))

	// Values built from the same tree are independent.
	v1.(value.Sequence)[0] = value.Int(0)
	qt.Assert(t, qt.IsTrue(value.Equal(v2, value.Sequence{value.String("a")})))
}
