// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

// Diff is a forward-mode differentiable function: at every point it
// produces the value together with the exact linear part (the derivative
// as a symbolic map). Only the linear part at a point is represented
// exactly; nothing here performs symbolic differentiation of the
// nonlinear residual.
type Diff[A, B Vec] func(A) (B, LinMap[A, B])

// ComposeD chains two differentiable functions: the value composes and
// the linear parts compose by the chain rule.
func ComposeD[A, B, C Vec](g Diff[B, C], f Diff[A, B]) Diff[A, C] {
	return func(x A) (C, LinMap[A, C]) {
		y, df := f(x)
		z, dg := g(y)
		return z, Compose(dg, df)
	}
}

// FanoutD pairs two differentiable functions sharing a domain.
func FanoutD[A, B, C Vec](f Diff[A, B], g Diff[A, C]) Diff[A, Pair[B, C]] {
	return func(x A) (Pair[B, C], LinMap[A, Pair[B, C]]) {
		y, df := f(x)
		z, dg := g(x)
		return Pair[B, C]{Fst: y, Snd: z}, Fork(df, dg)
	}
}

// IdentityD is the differentiable identity.
func IdentityD[A Vec]() Diff[A, A] {
	return func(x A) (A, LinMap[A, A]) { return x, Identity[A]() }
}

// ConstD is the constant function onto b; its linear part is zero.
func ConstD[A, B Vec](b B) Diff[A, B] {
	return func(A) (B, LinMap[A, B]) { return b, ZeroMap[A, B]() }
}

// Proj1D projects the first component; its linear part is the projection.
func Proj1D[A, B Vec]() Diff[Pair[A, B], A] {
	return func(x Pair[A, B]) (A, LinMap[Pair[A, B], A]) { return x.Fst, Proj1[A, B]() }
}

// Proj2D projects the second component; its linear part is the projection.
func Proj2D[A, B Vec]() Diff[Pair[A, B], B] {
	return func(x Pair[A, B]) (B, LinMap[Pair[A, B], B]) { return x.Snd, Proj2[A, B]() }
}

// AddD is scalar addition; its linear part is the row [1 1].
func AddD() Diff[Pair[Scalar, Scalar], Scalar] {
	return func(x Pair[Scalar, Scalar]) (Scalar, LinMap[Pair[Scalar, Scalar], Scalar]) {
		return x.Fst + x.Snd, Join(Identity[Scalar](), Identity[Scalar]())
	}
}

// MulD is scalar multiplication; its linear part at (x, y) is the row
// [y x], the product rule.
func MulD() Diff[Pair[Scalar, Scalar], Scalar] {
	return func(p Pair[Scalar, Scalar]) (Scalar, LinMap[Pair[Scalar, Scalar], Scalar]) {
		return p.Fst * p.Snd, Join(
			ScaledIdentity[Scalar](float64(p.Snd)),
			ScaledIdentity[Scalar](float64(p.Fst)),
		)
	}
}

// ScaleD multiplies by the constant k; it is its own linear part.
func ScaleD(k float64) Diff[Scalar, Scalar] {
	return func(x Scalar) (Scalar, LinMap[Scalar, Scalar]) {
		return Scalar(k) * x, ScaledIdentity[Scalar](k)
	}
}
