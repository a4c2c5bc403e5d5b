// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"fmt"
)

// ToVector flattens a structured value into its coordinates in canonical
// order: left to right, outermost to innermost, with no delimiters. The
// result has length exactly Dimension of V. Values containing a function
// space are refused with ErrUndefinedDimension.
func ToVector[V Vec](v V) ([]float64, error) {
	return v.encode(nil)
}

// FromVector rebuilds a structured value from flat coordinates, relying
// purely on the shape of V: each scalar consumes one leading element, and
// a product parses its left component from the full input and its right
// component from the remaining suffix. Structurally empty input decodes
// as zero, matching the zero-map default; input longer than the dimension
// of V is an error.
func FromVector[V Vec](xs []float64) (V, error) {
	var zero V
	v, rest, err := zero.decode(xs)
	if err != nil {
		return zero, err
	}
	if len(rest) != 0 {
		return zero, fmt.Errorf("linmap: %d trailing coordinates after decoding %s: %w",
			len(rest), ShapeOf[V](), ErrShapeMismatch)
	}
	return v.(V), nil
}
