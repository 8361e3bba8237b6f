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

// Package resolve implements YAML core schema resolution of scalars:
// deciding whether a plain scalar's text is an integer, a float, a
// boolean, null or a string, and parsing it accordingly.
//
// The rules are tried in a fixed order and the first whole-string match
// wins:
//
//	Decimal  [-+]?[0-9]+
//	Octal    0o[0-7]+
//	Hex      0x[0-9a-fA-F]+
//	Float    [-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?
//	PosInf   [+]?(\.inf|\.Inf|\.INF)
//	NegInf   -(\.inf|\.Inf|\.INF)
//	NaN      \.nan|\.NaN|\.NAN
//	Null     null|Null|NULL|~
//	True     true|True|TRUE|yes|Yes|YES
//	False    false|False|FALSE|no|No|NO
//
// Anything else, and any scalar that is not in the plain style, is Text.
package resolve

import (
	"math"
	"regexp"
	"strconv"
	"sync"

	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/value"
)

// Class is the outcome of classifying a scalar.
type Class int

const (
	Text Class = iota
	Decimal
	Octal
	Hex
	Float
	PosInf
	NegInf
	NaN
	Null
	True
	False
)

var classNames = [...]string{
	Text:    "text",
	Decimal: "decimal",
	Octal:   "octal",
	Hex:     "hex",
	Float:   "float",
	PosInf:  "+inf",
	NegInf:  "-inf",
	NaN:     "nan",
	Null:    "null",
	True:    "true",
	False:   "false",
}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// rule pairs a class with the anchored expression that selects it.
type rule struct {
	class Class
	rx    *regexp.Regexp
}

// rules is the classification order; earlier rules shadow later ones.
var rules = sync.OnceValue(func() []rule {
	return []rule{
		{Decimal, regexp.MustCompile(`^[-+]?[0-9]+$`)},
		{Octal, regexp.MustCompile(`^0o[0-7]+$`)},
		{Hex, regexp.MustCompile(`^0x[0-9a-fA-F]+$`)},
		{Float, regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)},
		{PosInf, regexp.MustCompile(`^[+]?(\.inf|\.Inf|\.INF)$`)},
		{NegInf, regexp.MustCompile(`^-(\.inf|\.Inf|\.INF)$`)},
		{NaN, regexp.MustCompile(`^(\.nan|\.NaN|\.NAN)$`)},
		{Null, regexp.MustCompile(`^(null|Null|NULL|~)$`)},
		{True, regexp.MustCompile(`^(true|True|TRUE|yes|Yes|YES)$`)},
		{False, regexp.MustCompile(`^(false|False|FALSE|no|No|NO)$`)},
	}
})

// Classify returns the class of a scalar with the given text and style.
// It never fails.
func Classify(text string, style node.Style) Class {
	if !style.Plain() {
		return Text
	}
	for _, r := range rules() {
		if r.rx.MatchString(text) {
			return r.class
		}
	}
	return Text
}

// Scalar resolves a scalar into a standard value.
//
// The only failure is an integer literal whose magnitude does not fit
// in an int64, reported as a [*RangeError]. Such literals are never
// wrapped or widened.
func Scalar(text string, style node.Style) (value.Value, error) {
	switch Classify(text, style) {
	case Decimal:
		return parseInt(text, text, 10)
	case Octal:
		return parseInt(text, text[len("0o"):], 8)
	case Hex:
		return parseInt(text, text[len("0x"):], 16)
	case Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !isRange(err) {
			// The float expression only admits valid syntax.
			panic(err)
		}
		// Out of range literals round to ±Inf or zero.
		return value.Float(f), nil
	case PosInf:
		return value.Float(math.Inf(1)), nil
	case NegInf:
		return value.Float(math.Inf(-1)), nil
	case NaN:
		return value.Float(math.NaN()), nil
	case Null:
		return value.Null{}, nil
	case True:
		return value.Bool(true), nil
	case False:
		return value.Bool(false), nil
	}
	return value.String(text), nil
}

func parseInt(text, digits string, base int) (value.Value, error) {
	i, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if isRange(err) {
			return nil, &RangeError{Text: text, Base: base, Err: strconv.ErrRange}
		}
		panic(err)
	}
	return value.Int(i), nil
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
