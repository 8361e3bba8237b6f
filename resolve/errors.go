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

package resolve

import "fmt"

// RangeError reports an integer literal that does not fit in an int64.
type RangeError struct {
	// Text is the literal as written, including any 0o or 0x prefix.
	Text string
	// Base is 10, 8 or 16.
	Base int
	// Err is always strconv.ErrRange.
	Err error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cannot resolve %q as a base %d integer: %v", e.Text, e.Base, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }
