// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"fmt"
)

// node is the closed tagged union of the symbolic algebra. Nodes are
// immutable pure data; trees may be shared freely between composite
// expressions. Concrete types are recovered by assertion at the facade
// boundary, following the kont Erased convention.
//
// Forms: zeroNode (zero map), scaleNode (scaled identity), forkNode
// (codomain pairing), joinNode (domain case-split), sumNode (sum of two
// maps of equal shape), familyNode (indexed family of maps), applyNode
// (family evaluation stuck on a non-literal family).
type node interface {
	dom() Shape
	cod() Shape
}

type zeroNode struct {
	d, c Shape
}

type scaleNode struct {
	k  float64
	on Shape
}

type forkNode struct {
	fst, snd node
}

type joinNode struct {
	fst, snd node
}

type sumNode struct {
	fst, snd node
}

type familyNode struct {
	d  Shape
	at func(key Obj) node
}

type applyNode struct {
	key Obj
	fam node
	out Shape
}

func (n zeroNode) dom() Shape { return n.d }
func (n zeroNode) cod() Shape { return n.c }

func (n scaleNode) dom() Shape { return n.on }
func (n scaleNode) cod() Shape { return n.on }

func (n forkNode) dom() Shape { return n.fst.dom() }
func (n forkNode) cod() Shape { return productShape(n.fst.cod(), n.snd.cod()) }

func (n joinNode) dom() Shape { return productShape(n.fst.dom(), n.snd.dom()) }
func (n joinNode) cod() Shape { return n.fst.cod() }

func (n sumNode) dom() Shape { return n.fst.dom() }
func (n sumNode) cod() Shape { return n.fst.cod() }

func (n familyNode) dom() Shape { return n.d }
func (n familyNode) cod() Shape { return mappingShape }

func (n applyNode) dom() Shape { return n.fam.dom() }
func (n applyNode) cod() Shape { return n.out }

// Validated constructors for the erased paths. The typed facade guarantees
// these invariants statically; expressions assembled through the erased
// interface are checked here and fail fast on malformed input.

func identityNode(on Shape) node { return scaleNode{k: 1, on: on} }

func forkN(fst, snd node) node {
	if !fst.dom().Equal(snd.dom()) {
		panic(fmt.Errorf("linmap: fork of %s and %s domains: %w", fst.dom(), snd.dom(), ErrShapeMismatch))
	}
	return forkNode{fst: fst, snd: snd}
}

func joinN(fst, snd node) node {
	if !fst.cod().Equal(snd.cod()) {
		panic(fmt.Errorf("linmap: join of %s and %s codomains: %w", fst.cod(), snd.cod(), ErrShapeMismatch))
	}
	return joinNode{fst: fst, snd: snd}
}

func sumN(fst, snd node) node {
	if !fst.dom().Equal(snd.dom()) || !fst.cod().Equal(snd.cod()) {
		panic(fmt.Errorf("linmap: sum of %s->%s and %s->%s: %w",
			fst.dom(), fst.cod(), snd.dom(), snd.cod(), ErrShapeMismatch))
	}
	return sumNode{fst: fst, snd: snd}
}

func proj1Node(a, b Shape) node { return joinN(identityNode(a), zeroNode{d: b, c: a}) }
func proj2Node(a, b Shape) node { return joinN(zeroNode{d: a, c: b}, identityNode(b)) }
func inlNode(a, b Shape) node   { return forkN(identityNode(a), zeroNode{d: a, c: b}) }
func inrNode(a, b Shape) node   { return forkN(zeroNode{d: b, c: a}, identityNode(b)) }

// distributeNode builds the canonical (a⊕b)⊕c-shaped distributor
// ((a,b),c) ↦ ((a,c),(b,c)) from projections and pairings.
func distributeNode(a, b, c Shape) node {
	ab := productShape(a, b)
	outer1 := proj1Node(ab, c) // ((a,b),c) → (a,b)
	outer2 := proj2Node(ab, c) // ((a,b),c) → c
	left := forkN(composeNode(proj1Node(a, b), outer1), outer2)
	right := forkN(composeNode(proj2Node(a, b), outer1), outer2)
	return forkN(left, right)
}

// scaleTree distributes a scalar into every leaf of the expression.
func scaleTree(k float64, n node) node {
	switch m := n.(type) {
	case zeroNode:
		return m
	case scaleNode:
		return scaleNode{k: k * m.k, on: m.on}
	case forkNode:
		return forkNode{fst: scaleTree(k, m.fst), snd: scaleTree(k, m.snd)}
	case joinNode:
		return joinNode{fst: scaleTree(k, m.fst), snd: scaleTree(k, m.snd)}
	case sumNode:
		return sumNode{fst: scaleTree(k, m.fst), snd: scaleTree(k, m.snd)}
	case familyNode:
		return familyNode{d: m.d, at: func(key Obj) node { return scaleTree(k, m.at(key)) }}
	case applyNode:
		return applyNode{key: m.key, fam: scaleTree(k, m.fam), out: m.out}
	}
	panic(fmt.Errorf("linmap: scale of unhandled node %T: %w", n, ErrShapeMismatch))
}

// composeNode normalizes g∘f by structural cases, first match wins,
// recursing until no rule applies:
//
//  1. a zero map on either side absorbs;
//  2. a scaled identity on either side scales the other;
//  3. a sum on the left distributes; 4. a sum on the right distributes;
//  5. a pairing on the left distributes over the composition;
//  6. a case-split on the right distributes, yielding a case-split;
//  7. a case-split on the left collapses against a pairing on the right
//     into a sum of the two matching compositions;
//  8. a family on the left distributes over the key; a family evaluation
//     on the left pushes inside; family forms on the right are refused
//     with ErrNotYetSupported.
//
// Rules 1-2 are checked before all others so absorbing and identity
// elements propagate canonically and the recursion terminates.
func composeNode(g, f node) node {
	if !g.dom().Equal(f.cod()) {
		panic(fmt.Errorf("linmap: compose %s->%s after %s->%s: %w",
			g.dom(), g.cod(), f.dom(), f.cod(), ErrShapeMismatch))
	}
	if z, ok := g.(zeroNode); ok {
		return zeroNode{d: f.dom(), c: z.c}
	}
	if z, ok := f.(zeroNode); ok {
		return zeroNode{d: z.d, c: g.cod()}
	}
	if s, ok := g.(scaleNode); ok {
		return scaleTree(s.k, f)
	}
	if s, ok := f.(scaleNode); ok {
		return scaleTree(s.k, g)
	}
	if s, ok := g.(sumNode); ok {
		return sumNode{fst: composeNode(s.fst, f), snd: composeNode(s.snd, f)}
	}
	if s, ok := f.(sumNode); ok {
		return sumNode{fst: composeNode(g, s.fst), snd: composeNode(g, s.snd)}
	}
	if fk, ok := g.(forkNode); ok {
		return forkNode{fst: composeNode(fk.fst, f), snd: composeNode(fk.snd, f)}
	}
	if j, ok := f.(joinNode); ok {
		return joinNode{fst: composeNode(g, j.fst), snd: composeNode(g, j.snd)}
	}
	if fam, ok := g.(familyNode); ok {
		return familyNode{d: f.dom(), at: func(key Obj) node { return composeNode(fam.at(key), f) }}
	}
	if ap, ok := g.(applyNode); ok {
		return applyNode{key: ap.key, fam: composeNode(ap.fam, f), out: ap.out}
	}
	if _, ok := f.(familyNode); ok {
		panic(fmt.Errorf("linmap: compose through a family on the right: %w", ErrNotYetSupported))
	}
	if _, ok := f.(applyNode); ok {
		panic(fmt.Errorf("linmap: compose through a family evaluation on the right: %w", ErrNotYetSupported))
	}
	if j, ok := g.(joinNode); ok {
		fk, ok := f.(forkNode)
		if !ok {
			panic(fmt.Errorf("linmap: case-split composed against %T: %w", f, ErrShapeMismatch))
		}
		return sumN(composeNode(j.fst, fk.fst), composeNode(j.snd, fk.snd))
	}
	panic(fmt.Errorf("linmap: unhandled composition %T after %T: %w", g, f, ErrShapeMismatch))
}
