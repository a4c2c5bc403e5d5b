// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Materialize converts a symbolic map into a dense matrix by structural
// recursion, using shape evidence to size and split blocks.
//
// Orientation is fixed: rows index the codomain and columns the domain,
// so Materialize(Compose(g, f)) equals Materialize(g) times
// Materialize(f) as an ordinary matrix product, and the first projection
// out of a scalar pair is the row [1 0]. Consequently a codomain pairing
// stacks its blocks vertically and a domain case-split concatenates its
// blocks horizontally.
//
// Expressions containing an unevaluated family form are refused with
// ErrUndefinedDimension: a function space has no fixed finite dimension.
// Maps into or out of zero-dimensional spaces materialize as the empty
// matrix.
func Materialize[A, B Vec](f LinMap[A, B]) (*mat.Dense, error) {
	return materializeNode(f.n)
}

// MaterializeExpr is Materialize for the erased world.
func MaterializeExpr(e Expr) (*mat.Dense, error) {
	return materializeNode(e.n)
}

func materializeNode(n node) (*mat.Dense, error) {
	if _, ok := n.(applyNode); ok {
		return nil, fmt.Errorf("linmap: materialize a stuck family evaluation: %w", ErrUndefinedDimension)
	}
	rows, err := n.cod().Dim()
	if err != nil {
		return nil, err
	}
	cols, err := n.dom().Dim()
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}
	switch m := n.(type) {
	case zeroNode:
		return mat.NewDense(rows, cols, nil), nil
	case scaleNode:
		d := mat.NewDense(rows, cols, nil)
		for i := 0; i < rows; i++ {
			d.Set(i, i, m.k)
		}
		return d, nil
	case sumNode:
		a, err := materializeNode(m.fst)
		if err != nil {
			return nil, err
		}
		b, err := materializeNode(m.snd)
		if err != nil {
			return nil, err
		}
		d := mat.NewDense(rows, cols, nil)
		d.Add(a, b)
		return d, nil
	case forkNode:
		topRows, err := m.fst.cod().Dim()
		if err != nil {
			return nil, err
		}
		a, err := materializeNode(m.fst)
		if err != nil {
			return nil, err
		}
		b, err := materializeNode(m.snd)
		if err != nil {
			return nil, err
		}
		d := mat.NewDense(rows, cols, nil)
		copyBlock(d, a, 0, 0)
		copyBlock(d, b, topRows, 0)
		return d, nil
	case joinNode:
		leftCols, err := m.fst.dom().Dim()
		if err != nil {
			return nil, err
		}
		a, err := materializeNode(m.fst)
		if err != nil {
			return nil, err
		}
		b, err := materializeNode(m.snd)
		if err != nil {
			return nil, err
		}
		d := mat.NewDense(rows, cols, nil)
		copyBlock(d, a, 0, 0)
		copyBlock(d, b, 0, leftCols)
		return d, nil
	}
	// familyNode is unreachable here: its codomain dimension already
	// refused, and applyNode is rejected before shape inspection.
	return nil, fmt.Errorf("linmap: materialize unhandled node %T: %w", n, ErrShapeMismatch)
}

// copyBlock writes src into dst with its top-left corner at (r0, c0).
// Empty blocks (a zero-dimensional component) contribute nothing.
func copyBlock(dst, src *mat.Dense, r0, c0 int) {
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(r0+i, c0+j, src.At(i, j))
		}
	}
}
