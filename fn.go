// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"code.hybscloud.com/kont"
)

// Arrow is the morphism representation of the function category: a plain
// Go function over type-erased values.
type Arrow = func(Obj) Obj

// Tuple is the product value of the function category.
type Tuple struct {
	Fst Obj
	Snd Obj
}

// FnCat is the category of functions: the reference instance that
// validates the interface laws. Products are [Tuple], coproducts are
// [kont.Either], exponentials are [Arrow] values, and Eval/Transpose are
// ordinary application and currying. Object descriptors are ignored:
// a function needs no evidence to be applied.
//
// FnCat implements [Bicartesian], [Closed] and [Pointed].
type FnCat struct{}

// Identity returns the identity function.
func (FnCat) Identity(Obj) Arrow {
	return func(x Obj) Obj { return x }
}

// Compose returns g after f.
func (FnCat) Compose(g, f Arrow) Arrow {
	return func(x Obj) Obj { return g(f(x)) }
}

// Terminal returns the constant function onto [Unit].
func (FnCat) Terminal(Obj) Arrow {
	return func(Obj) Obj { return Unit{} }
}

// Proj1 projects the first component of a [Tuple].
func (FnCat) Proj1(_, _ Obj) Arrow {
	return func(x Obj) Obj { return x.(Tuple).Fst }
}

// Proj2 projects the second component of a [Tuple].
func (FnCat) Proj2(_, _ Obj) Arrow {
	return func(x Obj) Obj { return x.(Tuple).Snd }
}

// Fanout pairs: Fanout(f, g)(x) = (f(x), g(x)).
func (FnCat) Fanout(f, g Arrow) Arrow {
	return func(x Obj) Obj { return Tuple{Fst: f(x), Snd: g(x)} }
}

// Initial returns the function out of the empty type. It can never be
// applied; doing so is a defect in the caller.
func (FnCat) Initial(Obj) Arrow {
	return func(Obj) Obj { panic("linmap: the initial object has no inhabitants") }
}

// Inl injects into the left of a coproduct.
func (FnCat) Inl(_, _ Obj) Arrow {
	return func(x Obj) Obj { return kont.Left[Obj, Obj](x) }
}

// Inr injects into the right of a coproduct.
func (FnCat) Inr(_, _ Obj) Arrow {
	return func(x Obj) Obj { return kont.Right[Obj, Obj](x) }
}

// Fanin case-splits on the coproduct tag.
func (FnCat) Fanin(f, g Arrow) Arrow {
	return func(x Obj) Obj {
		e := x.(kont.Either[Obj, Obj])
		if l, ok := e.GetLeft(); ok {
			return f(l)
		}
		r, _ := e.GetRight()
		return g(r)
	}
}

// Distribute pushes the coproduct tag through the pair:
// (Either(a, b), c) ↦ Either((a, c), (b, c)).
func (FnCat) Distribute(_, _, _ Obj) Arrow {
	return func(x Obj) Obj {
		t := x.(Tuple)
		e := t.Fst.(kont.Either[Obj, Obj])
		if l, ok := e.GetLeft(); ok {
			return kont.Left[Obj, Obj](Tuple{Fst: l, Snd: t.Snd})
		}
		r, _ := e.GetRight()
		return kont.Right[Obj, Obj](Tuple{Fst: r, Snd: t.Snd})
	}
}

// Eval applies an exponential value to its argument.
func (FnCat) Eval(_, _ Obj) Arrow {
	return func(x Obj) Obj {
		t := x.(Tuple)
		return t.Fst.(Arrow)(t.Snd)
	}
}

// Transpose curries f : a×b → c into a → (b → c).
func (FnCat) Transpose(f Arrow) Arrow {
	return func(a Obj) Obj {
		var curried Arrow = func(b Obj) Obj { return f(Tuple{Fst: a, Snd: b}) }
		return curried
	}
}

// Embed returns the constant function onto x.
func (FnCat) Embed(x Obj, _ Obj) Arrow {
	return func(Obj) Obj { return x }
}
