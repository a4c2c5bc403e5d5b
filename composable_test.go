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

// TestComposableAgreesWithTree checks that composing in the closure world
// and realizing gives the same map as composing symbolic trees.
func TestComposableAgreesWithTree(t *testing.T) {
	law := func(a, b, c, d, e, f, g, h float64) bool {
		u := lin22(a, b, c, d)
		v := lin22(e, f, g, h)
		wrapped := linmap.ComposeC(linmap.Wrap(v), linmap.Wrap(u)).Realize()
		return mat.EqualApprox(material(t, wrapped), material(t, linmap.Compose(v, u)), eps)
	}
	if err := quick.Check(law, boundedFloats); err != nil {
		t.Error(err)
	}
}

// TestComposableIdentityNeutral checks IdentityC is neutral on both sides.
func TestComposableIdentityNeutral(t *testing.T) {
	u := lin22(1, 2, 3, 4)
	left := linmap.ComposeC(linmap.IdentityC[pairS](), linmap.Wrap(u)).Realize()
	right := linmap.ComposeC(linmap.Wrap(u), linmap.IdentityC[pairS]()).Realize()
	require.True(t, mat.EqualApprox(material(t, left), material(t, u), eps))
	require.True(t, mat.EqualApprox(material(t, right), material(t, u), eps))
}

// TestComposableLongChain checks a long pipeline realizes to the expected
// product of scales: the wrapper composes without growing trees until
// Realize.
func TestComposableLongChain(t *testing.T) {
	c := linmap.IdentityC[linmap.Scalar]()
	for i := 0; i < 20; i++ {
		c = linmap.ComposeC(linmap.Wrap(linmap.ScaledIdentity[linmap.Scalar](2)), c)
	}
	m := material(t, c.Realize())
	require.InDelta(t, 1<<20, m.At(0, 0), eps)
}

// TestComposableFamilyIndexing checks that indexed families behave as
// ordinary application inside the transformer: AtC selects the member,
// and precomposition reaches through the family.
func TestComposableFamilyIndexing(t *testing.T) {
	fam := linmap.FamilyC(func(k int) linmap.Composable[linmap.Scalar, linmap.Scalar] {
		return linmap.Wrap(linmap.ScaledIdentity[linmap.Scalar](float64(k)))
	})
	selected := linmap.AtC(3, fam)

	pipeline := linmap.ComposeC(selected, linmap.Wrap(linmap.ScaledIdentity[linmap.Scalar](10)))
	m := material(t, pipeline.Realize())
	require.InDelta(t, 30, m.At(0, 0), eps)
}

// TestComposableFamilyRealizeRefusesMatrix checks that an unapplied
// family realized from the closure world still refuses materialization.
func TestComposableFamilyRealizeRefusesMatrix(t *testing.T) {
	fam := linmap.FamilyC(func(k int) linmap.Composable[linmap.Scalar, linmap.Scalar] {
		return linmap.Wrap(linmap.Identity[linmap.Scalar]())
	})
	_, err := linmap.Materialize(fam.Realize())
	require.ErrorIs(t, err, linmap.ErrUndefinedDimension)
}
