// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"fmt"
)

// Expr is a type-erased linear-map expression: the morphism representation
// front ends build through [LinCat] when the vector-space types are not
// known at compile time. Shape evidence travels inside the tree; the typed
// world is recovered with [Typed].
type Expr struct {
	n node
}

// Dom returns the domain shape of the expression.
func (e Expr) Dom() Shape { return e.n.dom() }

// Cod returns the codomain shape of the expression.
func (e Expr) Cod() Shape { return e.n.cod() }

// Erase drops f to the erased world.
func Erase[A, B Vec](f LinMap[A, B]) Expr { return Expr{n: f.n} }

// Typed recovers a typed map from an erased expression, validating the
// shapes against A and B. Returns ErrShapeMismatch when they disagree.
func Typed[A, B Vec](e Expr) (LinMap[A, B], error) {
	if !e.n.dom().Equal(ShapeOf[A]()) || !e.n.cod().Equal(ShapeOf[B]()) {
		return LinMap[A, B]{}, fmt.Errorf("linmap: typed %s->%s from %s->%s: %w",
			ShapeOf[A](), ShapeOf[B](), e.n.dom(), e.n.cod(), ErrShapeMismatch)
	}
	return LinMap[A, B]{n: e.n}, nil
}

// LinCat is the linear-map algebra as a category instance over [Expr].
// Object descriptors must be [Shape] values. Products and coproducts
// coincide (biproducts): projections are case-splits against zero,
// injections are pairings with zero, and the normalization rules of the
// algebra apply on every composition.
//
// LinCat implements [Bicartesian]. It is not closed: the exponential-like
// structure of the algebra is the indexed family, reached through the
// typed [Family] and [At] operations, and it carries no finite dimension.
type LinCat struct{}

// shapeArg recovers the Shape descriptor from an erased object.
func shapeArg(a Obj) Shape {
	s, ok := a.(Shape)
	if !ok {
		panic(fmt.Errorf("linmap: object descriptor %T is not a Shape: %w", a, ErrShapeMismatch))
	}
	return s
}

// Identity returns the identity map on a.
func (LinCat) Identity(a Obj) Expr {
	return Expr{n: identityNode(shapeArg(a))}
}

// Compose returns g∘f, normalized.
func (LinCat) Compose(g, f Expr) Expr {
	return Expr{n: composeNode(g.n, f.n)}
}

// Terminal returns the zero map a ⊸ Unit.
func (LinCat) Terminal(a Obj) Expr {
	return Expr{n: zeroNode{d: shapeArg(a), c: unitShape}}
}

// Proj1 returns the case-split [id, 0] : a⊕b ⊸ a.
func (LinCat) Proj1(a, b Obj) Expr {
	return Expr{n: proj1Node(shapeArg(a), shapeArg(b))}
}

// Proj2 returns the case-split [0, id] : a⊕b ⊸ b.
func (LinCat) Proj2(a, b Obj) Expr {
	return Expr{n: proj2Node(shapeArg(a), shapeArg(b))}
}

// Fanout pairs two maps sharing a domain. Panics wrapping
// ErrShapeMismatch when the domains disagree.
func (LinCat) Fanout(f, g Expr) Expr {
	return Expr{n: forkN(f.n, g.n)}
}

// Initial returns the zero map Unit ⊸ a.
func (LinCat) Initial(a Obj) Expr {
	return Expr{n: zeroNode{d: unitShape, c: shapeArg(a)}}
}

// Inl returns the pairing ⟨id, 0⟩ : a ⊸ a⊕b.
func (LinCat) Inl(a, b Obj) Expr {
	return Expr{n: inlNode(shapeArg(a), shapeArg(b))}
}

// Inr returns the pairing ⟨0, id⟩ : b ⊸ a⊕b.
func (LinCat) Inr(a, b Obj) Expr {
	return Expr{n: inrNode(shapeArg(a), shapeArg(b))}
}

// Fanin case-splits two maps sharing a codomain. Panics wrapping
// ErrShapeMismatch when the codomains disagree.
func (LinCat) Fanin(f, g Expr) Expr {
	return Expr{n: joinN(f.n, g.n)}
}

// Distribute returns the canonical ((a,b),c) ⊸ ((a,c),(b,c)).
func (LinCat) Distribute(a, b, c Obj) Expr {
	return Expr{n: distributeNode(shapeArg(a), shapeArg(b), shapeArg(c))}
}
