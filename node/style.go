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

package node

import (
	"fmt"
	"strconv"
)

// Style is the presentation style of a scalar.
//
// Only [PlainStyle] scalars are subject to implicit typing; every other
// style is text regardless of its content.
type Style int

const (
	PlainStyle Style = iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle

	// OtherStyle covers scalars a parser knows to be text for reasons
	// other than quoting, such as an explicit !!str tag.
	OtherStyle
)

var styleNames = [...]string{
	PlainStyle:        "plain",
	SingleQuotedStyle: "single",
	DoubleQuotedStyle: "double",
	LiteralStyle:      "literal",
	FoldedStyle:       "folded",
	OtherStyle:        "other",
}

// Plain reports whether s is the plain style.
func (s Style) Plain() bool { return s == PlainStyle }

// Quoted reports whether s is one of the two flow quoting styles.
func (s Style) Quoted() bool { return s == SingleQuotedStyle || s == DoubleQuotedStyle }

func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyle returns the style whose [Style.String] is name.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, fmt.Errorf("unknown scalar style %q", name)
}

// Pos is a position in a source document. Line and Column are 1-based;
// zero means unknown.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

// IsValid reports whether the position carries a line number.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += strconv.Itoa(p.Line)
		if p.Column > 0 {
			s += ":" + strconv.Itoa(p.Column)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}
