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

package construct

import (
	"fmt"

	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/resolve"
	"cuelang.org/yamlcore/value"
)

// Standard builds [value.Value]s, resolving plain scalars with the core
// schema rules of package resolve.
//
// Its only error is a [*resolve.RangeError] for an integer literal that
// does not fit in an int64, prefixed with the scalar's position when
// one is known.
type Standard struct{}

var _ Builder[value.Value] = Standard{}

func (Standard) Scalar(s *node.Scalar) (value.Value, error) {
	v, err := resolve.Scalar(s.Value(), s.Style())
	if err != nil {
		if pos := s.Pos(); pos.IsValid() {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}
		return nil, err
	}
	return v, nil
}

func (b Standard) Sequence(s *node.Sequence) (value.Value, error) {
	items, err := CollectSequence[value.Value](b, s)
	if err != nil {
		return nil, err
	}
	return value.Sequence(items), nil
}

func (b Standard) Mapping(m *node.Mapping) (value.Value, error) {
	pairs, err := CollectMapping[value.Value](b, m)
	if err != nil {
		return nil, err
	}
	out := make(value.Mapping, len(pairs))
	for i, p := range pairs {
		out[i] = value.Pair{Key: p.Key, Value: p.Value}
	}
	return out, nil
}

// Value constructs n with [Standard].
func Value(n node.Node) (value.Value, error) {
	return Construct[value.Value](Standard{}, n)
}
