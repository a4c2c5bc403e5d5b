// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"code.hybscloud.com/kont"
)

// Obj is an object descriptor: a type-erased description of a category
// object, recovered by assertion inside each instance. The function
// category ignores descriptors entirely; the linear-map category requires
// [Shape] values. Alias of [kont.Erased] to mark the type-erasure boundary.
type Obj = kont.Erased

// Category is the minimal contract for a morphism representation M:
// identity and associative composition.
//
// Laws: Compose(Identity(b), f) = f = Compose(f, Identity(a)) for f : a → b,
// and Compose(Compose(h, g), f) = Compose(h, Compose(g, f)).
type Category[M any] interface {
	// Identity returns the identity morphism on a.
	Identity(a Obj) M
	// Compose returns g after f.
	Compose(g, f M) M
}

// Cartesian extends Category with a terminal object and binary products.
//
// Laws: Compose(Proj1(a, b), Fanout(f, g)) = f and
// Compose(Proj2(a, b), Fanout(f, g)) = g; Fanout is the unique morphism
// with that property.
type Cartesian[M any] interface {
	Category[M]
	// Terminal returns the unique morphism a → 1.
	Terminal(a Obj) M
	// Proj1 returns the first projection a×b → a.
	Proj1(a, b Obj) M
	// Proj2 returns the second projection a×b → b.
	Proj2(a, b Obj) M
	// Fanout pairs f : x → a and g : x → b into x → a×b.
	Fanout(f, g M) M
}

// Cocartesian extends Category with an initial object and binary coproducts.
//
// Laws: Compose(Fanin(f, g), Inl(a, b)) = f and
// Compose(Fanin(f, g), Inr(a, b)) = g; Fanin is the unique such morphism.
type Cocartesian[M any] interface {
	Category[M]
	// Initial returns the unique morphism 0 → a.
	Initial(a Obj) M
	// Inl returns the left injection a → a+b.
	Inl(a, b Obj) M
	// Inr returns the right injection b → a+b.
	Inr(a, b Obj) M
	// Fanin case-splits f : a → x and g : b → x into a+b → x.
	Fanin(f, g M) M
}

// Bicartesian is a category with both structures and the distributivity
// morphism linking them, used to push case-splits through pairings.
type Bicartesian[M any] interface {
	Cartesian[M]
	Cocartesian[M]
	// Distribute returns the canonical (a+b)×c → (a×c)+(b×c).
	Distribute(a, b, c Obj) M
}

// Closed extends Cartesian with exponential objects: currying and
// application.
//
// Law: Compose(Eval(b, c), Fanout(Compose(Transpose(f), Proj1(a, b)),
// Proj2(a, b))) = f for f : a×b → c.
type Closed[M any] interface {
	Cartesian[M]
	// Eval returns the application morphism (c^b)×b → c.
	Eval(b, c Obj) M
	// Transpose curries f : a×b → c into a → c^b.
	Transpose(f M) M
}

// Pointed embeds constants as generalized elements: morphisms from an
// arbitrary domain.
type Pointed[M any] interface {
	// Embed returns the constant morphism dom → b sending everything to x.
	Embed(x Obj, dom Obj) M
}
