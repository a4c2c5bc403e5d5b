// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"errors"
	"fmt"
)

// LinMap is a linear map from A to B, represented symbolically as an
// expression tree. Values are immutable; the zero value is the zero map
// only when constructed through [ZeroMap] (the literal zero value of the
// struct carries no shape evidence and must not be used).
type LinMap[A, B Vec] struct {
	n node
}

// ZeroMap returns the zero map A ⊸ B.
func ZeroMap[A, B Vec]() LinMap[A, B] {
	return LinMap[A, B]{n: zeroNode{d: ShapeOf[A](), c: ShapeOf[B]()}}
}

// ScaledIdentity returns multiplication by k on A.
func ScaledIdentity[A Vec](k float64) LinMap[A, A] {
	return LinMap[A, A]{n: scaleNode{k: k, on: ShapeOf[A]()}}
}

// Identity returns the identity map on A.
func Identity[A Vec]() LinMap[A, A] {
	return ScaledIdentity[A](1)
}

// Fork pairs two maps sharing a domain into a map into the product
// codomain: Fork(f, g)(x) = (f(x), g(x)).
func Fork[A, B, C Vec](f LinMap[A, B], g LinMap[A, C]) LinMap[A, Pair[B, C]] {
	return LinMap[A, Pair[B, C]]{n: forkNode{fst: f.n, snd: g.n}}
}

// Join case-splits two maps sharing a codomain into a map from the product
// domain: Join(f, g)(x, y) = f(x) + g(y).
func Join[A, B, C Vec](f LinMap[A, C], g LinMap[B, C]) LinMap[Pair[A, B], C] {
	return LinMap[Pair[A, B], C]{n: joinNode{fst: f.n, snd: g.n}}
}

// Add returns the pointwise sum of two maps of identical shape.
func Add[A, B Vec](f, g LinMap[A, B]) LinMap[A, B] {
	return LinMap[A, B]{n: sumNode{fst: f.n, snd: g.n}}
}

// Compose returns g∘f, normalized by the structural reduction rules (see
// composeNode). Panics wrapping ErrNotYetSupported when a family form
// appears on the right of a reduction, and wrapping ErrShapeMismatch on
// malformed erased expressions; use [TryCompose] for a recovering variant.
func Compose[A, B, C Vec](g LinMap[B, C], f LinMap[A, B]) LinMap[A, C] {
	return LinMap[A, C]{n: composeNode(g.n, f.n)}
}

// TryCompose is Compose with the algebra's panics converted to errors.
func TryCompose[A, B, C Vec](g LinMap[B, C], f LinMap[A, B]) (h LinMap[A, C], err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || (!errors.Is(e, ErrNotYetSupported) && !errors.Is(e, ErrShapeMismatch)) {
			panic(r)
		}
		err = e
	}()
	return Compose(g, f), nil
}

// Scale returns k·f, distributing the scalar into every leaf.
func Scale[A, B Vec](k float64, f LinMap[A, B]) LinMap[A, B] {
	return LinMap[A, B]{n: scaleTree(k, f.n)}
}

// Proj1 returns the first projection Pair[A, B] ⊸ A.
func Proj1[A, B Vec]() LinMap[Pair[A, B], A] {
	return Join(Identity[A](), ZeroMap[B, A]())
}

// Proj2 returns the second projection Pair[A, B] ⊸ B.
func Proj2[A, B Vec]() LinMap[Pair[A, B], B] {
	return Join(ZeroMap[A, B](), Identity[B]())
}

// Inl returns the left injection A ⊸ Pair[A, B].
func Inl[A, B Vec]() LinMap[A, Pair[A, B]] {
	return Fork(Identity[A](), ZeroMap[A, B]())
}

// Inr returns the right injection B ⊸ Pair[A, B].
func Inr[A, B Vec]() LinMap[B, Pair[A, B]] {
	return Fork(ZeroMap[B, A](), Identity[B]())
}

// TerminalMap returns the unique map A ⊸ Unit.
func TerminalMap[A Vec]() LinMap[A, Unit] {
	return ZeroMap[A, Unit]()
}

// InitialMap returns the unique map Unit ⊸ A.
func InitialMap[A Vec]() LinMap[Unit, A] {
	return ZeroMap[Unit, A]()
}

// Distribute returns the canonical ((a, b), c) ↦ ((a, c), (b, c)).
// For linear maps products and coproducts coincide (biproducts), so the
// distributor is an honest map built from projections and pairings.
func Distribute[A, B, C Vec]() LinMap[Pair[Pair[A, B], C], Pair[Pair[A, C], Pair[B, C]]] {
	n := distributeNode(ShapeOf[A](), ShapeOf[B](), ShapeOf[C]())
	return LinMap[Pair[Pair[A, B], C], Pair[Pair[A, C], Pair[B, C]]]{n: n}
}

// Family builds an indexed family of maps keyed by K: a map whose output
// is itself a function of the discrete parameter.
func Family[K comparable, A, B Vec](at func(K) LinMap[A, B]) LinMap[A, Map[K, B]] {
	return LinMap[A, Map[K, B]]{
		n: familyNode{
			d:  ShapeOf[A](),
			at: func(key Obj) node { return at(key.(K)).n },
		},
	}
}

// At evaluates an indexed family at a fixed key, eliminating the family
// form when the underlying node is a literal family. Otherwise the
// evaluation stays symbolic until the family becomes literal.
func At[K comparable, A, B Vec](key K, f LinMap[A, Map[K, B]]) LinMap[A, B] {
	if fam, ok := f.n.(familyNode); ok {
		return LinMap[A, B]{n: fam.at(key)}
	}
	return LinMap[A, B]{n: applyNode{key: key, fam: f.n, out: ShapeOf[B]()}}
}

// Element embeds the vector b as a generalized element: the map
// Scalar ⊸ B sending k to k·b. Returns ErrUndefinedDimension when b
// contains a function space.
func Element[B Vec](b B) (LinMap[Scalar, B], error) {
	xs, err := b.encode(nil)
	if err != nil {
		return LinMap[Scalar, B]{}, err
	}
	n, rest := elementNode(ShapeOf[B](), xs)
	if len(rest) != 0 {
		panic(fmt.Errorf("linmap: element with %d stray coordinates: %w", len(rest), ErrShapeMismatch))
	}
	return LinMap[Scalar, B]{n: n}, nil
}

// elementNode builds the column of coordinates xs as a map from the
// scalar line, consuming coordinates left to right.
func elementNode(s Shape, xs []float64) (node, []float64) {
	switch s.kind {
	case shapeUnit:
		return zeroNode{d: scalarShape, c: unitShape}, xs
	case shapeScalar:
		return scaleNode{k: xs[0], on: scalarShape}, xs[1:]
	default:
		fst, rest := elementNode(*s.fst, xs)
		snd, rest := elementNode(*s.snd, rest)
		return forkNode{fst: fst, snd: snd}, rest
	}
}

// Apply evaluates f pointwise at x through flat coordinates, without
// building a matrix. Returns ErrUndefinedDimension when the expression
// contains an unapplied family (evaluate it with At first) and
// ErrNotYetSupported for stuck family evaluations.
func Apply[A, B Vec](f LinMap[A, B], x A) (B, error) {
	var zero B
	xs, err := ToVector(x)
	if err != nil {
		return zero, err
	}
	ys, err := applyFlat(f.n, xs)
	if err != nil {
		return zero, err
	}
	return FromVector[B](ys)
}

// applyFlat evaluates a node against domain coordinates, producing
// codomain coordinates.
func applyFlat(n node, xs []float64) ([]float64, error) {
	switch m := n.(type) {
	case zeroNode:
		d, err := m.c.Dim()
		if err != nil {
			return nil, err
		}
		return make([]float64, d), nil
	case scaleNode:
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = m.k * x
		}
		return out, nil
	case forkNode:
		a, err := applyFlat(m.fst, xs)
		if err != nil {
			return nil, err
		}
		b, err := applyFlat(m.snd, xs)
		if err != nil {
			return nil, err
		}
		return append(a, b...), nil
	case joinNode:
		dl, err := m.fst.dom().Dim()
		if err != nil {
			return nil, err
		}
		a, err := applyFlat(m.fst, xs[:dl])
		if err != nil {
			return nil, err
		}
		b, err := applyFlat(m.snd, xs[dl:])
		if err != nil {
			return nil, err
		}
		return addVec(a, b), nil
	case sumNode:
		a, err := applyFlat(m.fst, xs)
		if err != nil {
			return nil, err
		}
		b, err := applyFlat(m.snd, xs)
		if err != nil {
			return nil, err
		}
		return addVec(a, b), nil
	case familyNode:
		return nil, fmt.Errorf("linmap: pointwise evaluation of an unapplied family: %w", ErrUndefinedDimension)
	case applyNode:
		return nil, fmt.Errorf("linmap: pointwise evaluation of a stuck family evaluation: %w", ErrNotYetSupported)
	}
	return nil, fmt.Errorf("linmap: pointwise evaluation of unhandled node %T: %w", n, ErrShapeMismatch)
}

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
