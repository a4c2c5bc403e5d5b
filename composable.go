// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

// Composable represents a linear map A ⊸ B by its precomposition action:
// a transformer that, given any map into A from an arbitrary context,
// produces a map from that context into B. Composing two wrappers is
// plain function composition of the stored closures, so long pipelines
// cost O(1) per step instead of growing nested trees; all symbolic
// normalization is deferred to [Composable.Realize].
//
// This is also the representation under which indexed families behave as
// ordinary application: see [FamilyC] and [AtC].
type Composable[A, B Vec] struct {
	act func(pre node) node
}

// Wrap lifts a symbolic map into the composable representation.
func Wrap[A, B Vec](f LinMap[A, B]) Composable[A, B] {
	return Composable[A, B]{act: func(pre node) node { return composeNode(f.n, pre) }}
}

// IdentityC returns the identity wrapper: the neutral element of ComposeC.
func IdentityC[A Vec]() Composable[A, A] {
	return Composable[A, A]{act: func(pre node) node { return pre }}
}

// ComposeC returns g∘f by closure composition, without touching the
// symbolic algebra.
func ComposeC[A, B, C Vec](g Composable[B, C], f Composable[A, B]) Composable[A, C] {
	return Composable[A, C]{act: func(pre node) node { return g.act(f.act(pre)) }}
}

// Realize applies the transformer to the identity on A, recovering the
// normalized symbolic map.
func (c Composable[A, B]) Realize() LinMap[A, B] {
	return LinMap[A, B]{n: c.act(identityNode(ShapeOf[A]()))}
}

// FamilyC builds an indexed family in the composable representation:
// indexing is ordinary application inside the transformer.
func FamilyC[K comparable, A, B Vec](at func(K) Composable[A, B]) Composable[A, Map[K, B]] {
	return Composable[A, Map[K, B]]{act: func(pre node) node {
		return familyNode{
			d:  pre.dom(),
			at: func(key Obj) node { return at(key.(K)).act(pre) },
		}
	}}
}

// AtC evaluates a composable family at a fixed key. A literal family
// reduces immediately; anything else stays symbolic.
func AtC[K comparable, A, B Vec](key K, c Composable[A, Map[K, B]]) Composable[A, B] {
	return Composable[A, B]{act: func(pre node) node {
		n := c.act(pre)
		if fam, ok := n.(familyNode); ok {
			return fam.at(key)
		}
		return applyNode{key: key, fam: n, out: ShapeOf[B]()}
	}}
}
