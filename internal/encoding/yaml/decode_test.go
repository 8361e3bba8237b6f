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

package yaml_test

import (
	"io"
	"testing"

	"github.com/go-quicktest/qt"

	"cuelang.org/yamlcore/construct"
	"cuelang.org/yamlcore/internal/encoding/yaml"
	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/value"
)

func decodeAll(t *testing.T, src string) []*node.Document {
	t.Helper()
	d := yaml.NewDecoder("t.yaml", []byte(src))
	var docs []*node.Document
	for {
		doc, err := d.Decode()
		if err == io.EOF {
			break
		}
		qt.Assert(t, qt.IsNil(err))
		docs = append(docs, doc)
	}
	return docs
}

func TestDecodeValues(t *testing.T) {
	tests := []struct {
		in   string
		want value.Value
	}{{
		in:   "[1, 2, 3]",
		want: value.Sequence{value.Int(1), value.Int(2), value.Int(3)},
	}, {
		in:   "a: 0o10\nb: 0x21\nc: '-30'\n",
		want: value.Mapping{{Key: value.String("a"), Value: value.Int(8)}, {Key: value.String("b"), Value: value.Int(33)}, {Key: value.String("c"), Value: value.String("-30")}},
	}, {
		in:   `["123", '1.5', !!str true, ~, null]`,
		want: value.Sequence{value.String("123"), value.String("1.5"), value.String("true"), value.Null{}, value.Null{}},
	}, {
		in:   "text: |\n  line one\n  line two\nfolded: >\n  7\n",
		want: value.Mapping{{Key: value.String("text"), Value: value.String("line one\nline two\n")}, {Key: value.String("folded"), Value: value.String("7\n")}},
	}, {
		in:   "base: &b {x: 1}\ncopy: *b\n",
		want: value.Mapping{{Key: value.String("base"), Value: value.Mapping{{Key: value.String("x"), Value: value.Int(1)}}}, {Key: value.String("copy"), Value: value.Mapping{{Key: value.String("x"), Value: value.Int(1)}}}},
	}}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			docs := decodeAll(t, test.in)
			qt.Assert(t, qt.HasLen(docs, 1))
			got, err := construct.Value(docs[0].Root())
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsTrue(value.Equal(got, test.want)), qt.Commentf("got %v, want %v", got, test.want))
		})
	}
}

func TestDecodeStyles(t *testing.T) {
	docs := decodeAll(t, "[a, 'b', \"c\", !!str d, !!int 1]")
	qt.Assert(t, qt.HasLen(docs, 1))
	seq := docs[0].Root().(*node.Sequence)
	var got []node.Style
	for n := range seq.All() {
		got = append(got, n.(*node.Scalar).Style())
	}
	qt.Assert(t, qt.DeepEquals(got, []node.Style{
		node.PlainStyle,
		node.SingleQuotedStyle,
		node.DoubleQuotedStyle,
		node.OtherStyle,
		node.PlainStyle,
	}))
}

func TestDecodePositions(t *testing.T) {
	docs := decodeAll(t, "a: 1\nb:\n  - x\n")
	qt.Assert(t, qt.HasLen(docs, 1))
	qt.Assert(t, qt.Equals(docs[0].Filename(), "t.yaml"))
	m := docs[0].Root().(*node.Mapping)
	qt.Assert(t, qt.Equals(m.Len(), 2))

	p := m.Pair(0)
	qt.Assert(t, qt.Equals(p.Key.Pos(), node.Pos{Filename: "t.yaml", Line: 1, Column: 1}))
	qt.Assert(t, qt.Equals(p.Value.Pos(), node.Pos{Filename: "t.yaml", Line: 1, Column: 4}))

	item := m.Pair(1).Value.(*node.Sequence).Index(0)
	qt.Assert(t, qt.Equals(item.Pos(), node.Pos{Filename: "t.yaml", Line: 3, Column: 5}))
}

func TestDecodeStream(t *testing.T) {
	d := yaml.NewDecoder("t.yaml", []byte("a: 1\n---\nb\n---\n[]\n"))
	var kinds []node.Kind
	for {
		doc, err := d.Decode()
		if err == io.EOF {
			break
		}
		qt.Assert(t, qt.IsNil(err))
		kinds = append(kinds, doc.Root().Kind())
	}
	qt.Assert(t, qt.DeepEquals(kinds, []node.Kind{node.MappingKind, node.ScalarKind, node.SequenceKind}))

	// Further calls keep reporting the end of the stream.
	for range 2 {
		doc, err := d.Decode()
		qt.Assert(t, qt.IsNil(doc))
		qt.Assert(t, qt.Equals(err, io.EOF))
	}
}

func TestDecodeEmpty(t *testing.T) {
	qt.Assert(t, qt.HasLen(decodeAll(t, ""), 0))
}

func TestDecodeSyntaxError(t *testing.T) {
	d := yaml.NewDecoder("bad.yaml", []byte("a: [1, 2\nb: c\n"))
	_, err := d.Decode()
	qt.Assert(t, qt.ErrorMatches(err, `bad.yaml:\d+: .*`))

	// The same error is reported again rather than resuming mid-stream.
	_, err2 := d.Decode()
	qt.Assert(t, qt.Equals(err2, err))
}

func TestDecodeAliasCycle(t *testing.T) {
	d := yaml.NewDecoder("t.yaml", []byte("&a [*a]"))
	_, err := d.Decode()
	qt.Assert(t, qt.ErrorMatches(err, `t.yaml:1: anchor "a" value contains itself`))
}
