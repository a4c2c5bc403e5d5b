// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"code.hybscloud.com/linmap"
)

// TestFnCategoryLaws checks identity, associativity and the product and
// coproduct universal properties on the function instance pointwise.
func TestFnCategoryLaws(t *testing.T) {
	var c linmap.FnCat
	double := func(x linmap.Obj) linmap.Obj { return x.(int) * 2 }
	inc := func(x linmap.Obj) linmap.Obj { return x.(int) + 1 }
	neg := func(x linmap.Obj) linmap.Obj { return -x.(int) }

	law := func(x int) bool {
		idLeft := c.Compose(c.Identity(nil), double)(x) == double(x)
		idRight := c.Compose(double, c.Identity(nil))(x) == double(x)
		assoc := c.Compose(c.Compose(neg, inc), double)(x) ==
			c.Compose(neg, c.Compose(inc, double))(x)

		pair := c.Fanout(double, inc)
		prod1 := c.Compose(c.Proj1(nil, nil), pair)(x) == double(x)
		prod2 := c.Compose(c.Proj2(nil, nil), pair)(x) == inc(x)

		split := c.Fanin(double, inc)
		cop1 := c.Compose(split, c.Inl(nil, nil))(x) == double(x)
		cop2 := c.Compose(split, c.Inr(nil, nil))(x) == inc(x)

		return idLeft && idRight && assoc && prod1 && prod2 && cop1 && cop2
	}
	if err := quick.Check(law, nil); err != nil {
		t.Error(err)
	}
}

// TestFnClosedLaw checks eval∘⟨transpose(f)∘π1, π2⟩ = f.
func TestFnClosedLaw(t *testing.T) {
	var c linmap.FnCat
	f := func(x linmap.Obj) linmap.Obj {
		p := x.(linmap.Tuple)
		return p.Fst.(int)*10 + p.Snd.(int)
	}
	reconstructed := c.Compose(
		c.Eval(nil, nil),
		c.Fanout(c.Compose(c.Transpose(f), c.Proj1(nil, nil)), c.Proj2(nil, nil)),
	)
	law := func(a, b int) bool {
		x := linmap.Tuple{Fst: a, Snd: b}
		return reconstructed(x) == f(x)
	}
	if err := quick.Check(law, nil); err != nil {
		t.Error(err)
	}
}

// TestFnDistribute pushes the coproduct tag through a pair and recovers
// the components on both branches.
func TestFnDistribute(t *testing.T) {
	var c linmap.FnCat
	d := c.Distribute(nil, nil, nil)

	onLeft := d(linmap.Tuple{Fst: c.Inl(nil, nil)(1), Snd: "ctx"})
	got := c.Fanin(
		func(x linmap.Obj) linmap.Obj { return x.(linmap.Tuple).Snd },
		func(x linmap.Obj) linmap.Obj { return nil },
	)(onLeft)
	require.Equal(t, "ctx", got)

	onRight := d(linmap.Tuple{Fst: c.Inr(nil, nil)(2), Snd: "ctx"})
	got = c.Fanin(
		func(x linmap.Obj) linmap.Obj { return nil },
		func(x linmap.Obj) linmap.Obj { return x.(linmap.Tuple).Fst },
	)(onRight)
	require.Equal(t, 2, got)
}

// TestFnEmbed checks that generalized elements are constant morphisms.
func TestFnEmbed(t *testing.T) {
	var c linmap.FnCat
	k := c.Embed("answer", nil)
	require.Equal(t, "answer", k(1))
	require.Equal(t, "answer", k(linmap.Unit{}))
}

// TestDualSwapsStructure checks mechanically that the dual instance flips
// composition and exchanges cartesian with cocartesian structure.
func TestDualSwapsStructure(t *testing.T) {
	var base linmap.FnCat
	dual := linmap.NewDual[linmap.Arrow](base)

	double := func(x linmap.Obj) linmap.Obj { return x.(int) * 2 }
	inc := func(x linmap.Obj) linmap.Obj { return x.(int) + 1 }

	flip := func(x int) bool {
		// g∘f in the dual runs f after g in the base reading.
		return dual.Compose(double, inc)(x) == base.Compose(inc, double)(x)
	}
	if err := quick.Check(flip, nil); err != nil {
		t.Error(err)
	}

	// The dual's pairing is the base's case-split and its projections are
	// the base's injections, so the product law of the dual is the
	// coproduct law of the base.
	split := dual.Fanout(double, inc)
	require.Equal(t, 6, dual.Compose(dual.Proj1(nil, nil), split)(3))
	require.Equal(t, 4, dual.Compose(dual.Proj2(nil, nil), split)(3))
}

// TestLinMapCategoryLaws checks the identity and associativity laws of
// the linear-map algebra by comparing materialized matrices.
func TestLinMapCategoryLaws(t *testing.T) {
	law := func(a, b, c, d, e, f, g, h float64) bool {
		m1 := lin22(a, b, c, d)
		m2 := lin22(e, f, g, h)
		m3 := lin22(a+e, b-f, c*0.5, d+h)

		id := linmap.Identity[pairS]()
		idLeft := mat.EqualApprox(material(t, linmap.Compose(id, m1)), material(t, m1), eps)
		idRight := mat.EqualApprox(material(t, linmap.Compose(m1, id)), material(t, m1), eps)

		lhs := linmap.Compose(linmap.Compose(m3, m2), m1)
		rhs := linmap.Compose(m3, linmap.Compose(m2, m1))
		assoc := mat.EqualApprox(material(t, lhs), material(t, rhs), eps)

		return idLeft && idRight && assoc
	}
	if err := quick.Check(law, boundedFloats); err != nil {
		t.Error(err)
	}
}

// TestLinMapUniversalProperties checks π1∘⟨f,g⟩ = f, π2∘⟨f,g⟩ = g and the
// dual injection laws on materialized matrices.
func TestLinMapUniversalProperties(t *testing.T) {
	law := func(a, b, c, d, e, f, g, h float64) bool {
		u := lin22(a, b, c, d)
		v := lin22(e, f, g, h)

		pair := linmap.Fork(u, v)
		p1 := mat.EqualApprox(material(t, linmap.Compose(linmap.Proj1[pairS, pairS](), pair)), material(t, u), eps)
		p2 := mat.EqualApprox(material(t, linmap.Compose(linmap.Proj2[pairS, pairS](), pair)), material(t, v), eps)

		split := linmap.Join(u, v)
		c1 := mat.EqualApprox(material(t, linmap.Compose(split, linmap.Inl[pairS, pairS]())), material(t, u), eps)
		c2 := mat.EqualApprox(material(t, linmap.Compose(split, linmap.Inr[pairS, pairS]())), material(t, v), eps)

		return p1 && p2 && c1 && c2
	}
	if err := quick.Check(law, boundedFloats); err != nil {
		t.Error(err)
	}
}

// TestDistributivityRoundTrip rebuilds ((a,b),c) from the distributor's
// output and checks the round trip is the identity on the nested product.
func TestDistributivityRoundTrip(t *testing.T) {
	type s = linmap.Scalar
	type ab = linmap.Pair[s, s]
	type dom = linmap.Pair[ab, s] // ((a,b),c)

	distr := linmap.Distribute[s, s, s]()

	first := linmap.Proj1[ab, ab]()  // ((a,c),(b,c)) → (a,c)
	second := linmap.Proj2[ab, ab]() // ((a,c),(b,c)) → (b,c)
	rebuild := linmap.Fork(
		linmap.Fork(
			linmap.Compose(linmap.Proj1[s, s](), first),
			linmap.Compose(linmap.Proj1[s, s](), second),
		),
		linmap.Compose(linmap.Proj2[s, s](), first),
	)

	roundTrip := linmap.Compose(rebuild, distr)
	require.True(t, mat.EqualApprox(material(t, roundTrip), material(t, linmap.Identity[dom]()), eps))
}

// TestLinCatErasedAgainstTyped drives the erased instance and checks it
// agrees with the typed facade, including shape validation on recovery.
func TestLinCatErasedAgainstTyped(t *testing.T) {
	var c linmap.LinCat
	s := linmap.ScalarShape()

	u := lin22(1, 2, 3, 4)
	v := lin22(5, 6, 7, 8)

	erased := c.Compose(c.Fanout(c.Proj1(s, s), c.Proj2(s, s)), linmap.Erase(u))
	typed, err := linmap.Typed[pairS, pairS](erased)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(material(t, typed), material(t, u), eps))

	composed := c.Compose(linmap.Erase(v), linmap.Erase(u))
	m, err := linmap.MaterializeExpr(composed)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(m, material(t, linmap.Compose(v, u)), eps))

	_, err = linmap.Typed[linmap.Scalar, pairS](erased)
	require.ErrorIs(t, err, linmap.ErrShapeMismatch)
}

// TestLinCatMalformedFanout checks the fail-fast defect path for
// expressions assembled through the erased interface.
func TestLinCatMalformedFanout(t *testing.T) {
	var c linmap.LinCat
	s := linmap.ScalarShape()
	plane := linmap.ProductShape(s, s)

	require.PanicsWithError(t,
		"linmap: fork of R and (R*R) domains: linmap: shape mismatch",
		func() { c.Fanout(c.Identity(s), c.Identity(plane)) },
	)
}
