// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap_test

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"gonum.org/v1/gonum/mat"

	"code.hybscloud.com/linmap"
)

// tolerance for elementwise matrix comparison. All sampled entries are
// bounded, so absolute comparison suffices.
const eps = 1e-9

// pairS is the scalar plane, the workhorse domain of the law tests.
type pairS = linmap.Pair[linmap.Scalar, linmap.Scalar]

// material materializes f or fails the test.
func material[A, B linmap.Vec](tb testing.TB, f linmap.LinMap[A, B]) *mat.Dense {
	tb.Helper()
	m, err := linmap.Materialize(f)
	if err != nil {
		tb.Fatalf("materialize: %v", err)
	}
	return m
}

// lin22 builds the dense 2×2 map [[a b] [c d]] on the scalar plane:
// every 2×2 matrix is a pairing of two case-splits of scaled identities.
func lin22(a, b, c, d float64) linmap.LinMap[pairS, pairS] {
	row1 := linmap.Join(linmap.ScaledIdentity[linmap.Scalar](a), linmap.ScaledIdentity[linmap.Scalar](b))
	row2 := linmap.Join(linmap.ScaledIdentity[linmap.Scalar](c), linmap.ScaledIdentity[linmap.Scalar](d))
	return linmap.Fork(row1, row2)
}

// dense22 is the matrix lin22 denotes.
func dense22(a, b, c, d float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{a, b, c, d})
}

// boundedFloats is a quick.Config generating float64 arguments in
// [-10, 10), keeping products finite and comparisons meaningful.
var boundedFloats = &quick.Config{
	Values: func(vals []reflect.Value, r *rand.Rand) {
		for i := range vals {
			vals[i] = reflect.ValueOf(r.Float64()*20 - 10)
		}
	},
}
