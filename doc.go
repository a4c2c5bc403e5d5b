// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package linmap provides a category-theoretic composition interface and a
// symbolic algebra of finite-dimensional linear maps built on it, for
// forward-mode-style derivative extraction and dense-matrix materialization.
//
// Maps are represented symbolically and never go through an explicit matrix
// until one is requested. Composition and scaling normalize the expression
// tree as it is built; dimension evidence is derived from the vector-space
// type alone and threaded as [Shape] values.
//
// # Architecture
//
//   - Interface: capability sets over a type-erased morphism representation —
//     [Category], [Cartesian], [Cocartesian], [Bicartesian], [Closed],
//     [Pointed]. Instances implement subsets; demanding a missing capability
//     fails at compile time.
//   - Instances: [FnCat] (plain functions; products are [Tuple], coproducts
//     are [code.hybscloud.com/kont.Either]) validates the laws, and [Dual]
//     flips any instance, swapping cartesian and cocartesian structure.
//     [LinCat] is the linear-map algebra over erased [Expr] values.
//   - Dual-world API: the typed tree world ([LinMap], [Compose], [Fork],
//     [Join], [Add], [Scale]) normalizes eagerly; the closure world
//     ([Composable], [ComposeC]) composes in O(1) by precomposition and
//     defers all normalization to [Composable.Realize]. Bridge via [Wrap]
//     and Realize, or to the erased world via [Erase] and [Typed].
//   - Families: [Family] and [At] (tree world), [FamilyC] and [AtC]
//     (closure world) model maps whose output is indexed by a discrete key.
//     Family-bearing expressions have no finite dimension.
//   - Extraction: [Materialize] produces a dense gonum matrix (rows index
//     the codomain); [Apply] evaluates pointwise through flat coordinates;
//     [ToVector] and [FromVector] flatten and rebuild structured values
//     with no delimiters.
//
// # Error Handling
//
//   - Malformed expressions (mismatched shapes) are defects: construction
//     and composition panic wrapping [ErrShapeMismatch].
//   - [Materialize], [Apply], [ToVector] refuse family-bearing input with
//     [ErrUndefinedDimension]; evaluate families with [At] instead.
//   - Composing through a family form on the right is a known modeling gap
//     reported via [ErrNotYetSupported]; [TryCompose] recovers it.
//
// # Example
//
//	f := linmap.Compose(
//		linmap.Join(linmap.Identity[linmap.Scalar](), linmap.Identity[linmap.Scalar]()),
//		linmap.Fork(
//			linmap.ScaledIdentity[linmap.Scalar](2),
//			linmap.ScaledIdentity[linmap.Scalar](3),
//		),
//	) // x ↦ 2x + 3x
//	m, _ := linmap.Materialize(f) // the 1×1 matrix [5]
//
// All values are immutable; expression trees may be shared freely between
// composites without synchronization.
package linmap
