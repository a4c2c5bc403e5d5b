// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

// Dual is the opposite category of Base: every arrow is interpreted as
// running backwards. Composition flips its arguments, the terminal object
// becomes initial, and cartesian structure is defined as the base's
// cocartesian structure and vice versa. Morphisms keep the base
// representation M; only their reading changes.
//
// Dual implements [Cartesian] and [Cocartesian] but not [Bicartesian]:
// the dual of a distributive category is not distributive in general.
type Dual[M any] struct {
	Base Bicartesian[M]
}

// NewDual wraps base in its opposite category.
func NewDual[M any](base Bicartesian[M]) Dual[M] {
	return Dual[M]{Base: base}
}

// Identity is self-dual.
func (d Dual[M]) Identity(a Obj) M { return d.Base.Identity(a) }

// Compose flips: g∘f in the dual is f∘g in the base.
func (d Dual[M]) Compose(g, f M) M { return d.Base.Compose(f, g) }

// Terminal is the base's Initial.
func (d Dual[M]) Terminal(a Obj) M { return d.Base.Initial(a) }

// Proj1 is the base's Inl.
func (d Dual[M]) Proj1(a, b Obj) M { return d.Base.Inl(a, b) }

// Proj2 is the base's Inr.
func (d Dual[M]) Proj2(a, b Obj) M { return d.Base.Inr(a, b) }

// Fanout is the base's Fanin.
func (d Dual[M]) Fanout(f, g M) M { return d.Base.Fanin(f, g) }

// Initial is the base's Terminal.
func (d Dual[M]) Initial(a Obj) M { return d.Base.Terminal(a) }

// Inl is the base's Proj1.
func (d Dual[M]) Inl(a, b Obj) M { return d.Base.Proj1(a, b) }

// Inr is the base's Proj2.
func (d Dual[M]) Inr(a, b Obj) M { return d.Base.Proj2(a, b) }

// Fanin is the base's Fanout.
func (d Dual[M]) Fanin(f, g M) M { return d.Base.Fanout(f, g) }
