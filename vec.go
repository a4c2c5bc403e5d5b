// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import (
	"fmt"
)

// Vec is the closed set of vector-space-like types the algebra ranges over:
// [Unit], [Scalar], [Pair], and [Map]. Every Vec type has a [Shape]
// determined by the type alone, so dimension evidence never depends on a
// runtime value. The methods are unexported; the set cannot be extended
// outside the package.
type Vec interface {
	shape() Shape
	encode(dst []float64) ([]float64, error)
	decode(src []float64) (Vec, []float64, error)
}

// Unit is the zero-dimensional space, the terminal and initial object.
type Unit struct{}

// Scalar is the one-dimensional space of float64 values.
type Scalar float64

// Pair is the direct sum of A and B. Its dimension is the sum of the
// component dimensions. Pair serves as both product and coproduct of the
// linear-map category (biproduct) and as the product of the value level.
type Pair[A, B Vec] struct {
	Fst A
	Snd B
}

// Map is the function space from a discrete index K to B. It models
// indexed families of vectors; it has no finite dimension, so values of
// this type cannot be serialized and maps into it cannot be materialized.
type Map[K comparable, B Vec] func(K) B

// P pairs two values. Shorthand constructor for nested literals.
func P[A, B Vec](a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }

func (Unit) shape() Shape { return unitShape }

func (Unit) encode(dst []float64) ([]float64, error) { return dst, nil }

func (Unit) decode(src []float64) (Vec, []float64, error) {
	return Unit{}, src, nil
}

func (Scalar) shape() Shape { return scalarShape }

func (s Scalar) encode(dst []float64) ([]float64, error) {
	return append(dst, float64(s)), nil
}

// decode consumes one leading coordinate. Structurally empty input decodes
// as zero, matching the zero-map default.
func (Scalar) decode(src []float64) (Vec, []float64, error) {
	if len(src) == 0 {
		return Scalar(0), src, nil
	}
	return Scalar(src[0]), src[1:], nil
}

func (Pair[A, B]) shape() Shape {
	var a A
	var b B
	return productShape(a.shape(), b.shape())
}

func (p Pair[A, B]) encode(dst []float64) ([]float64, error) {
	dst, err := p.Fst.encode(dst)
	if err != nil {
		return nil, err
	}
	return p.Snd.encode(dst)
}

// decode parses the first component from the full input, then the second
// from the remaining suffix, and returns the final remainder.
func (Pair[A, B]) decode(src []float64) (Vec, []float64, error) {
	var za A
	av, rest, err := za.decode(src)
	if err != nil {
		return nil, nil, err
	}
	var zb B
	bv, rest, err := zb.decode(rest)
	if err != nil {
		return nil, nil, err
	}
	return Pair[A, B]{Fst: av.(A), Snd: bv.(B)}, rest, nil
}

func (Map[K, B]) shape() Shape { return mappingShape }

func (Map[K, B]) encode([]float64) ([]float64, error) {
	return nil, fmt.Errorf("linmap: encode of a function space: %w", ErrUndefinedDimension)
}

func (Map[K, B]) decode([]float64) (Vec, []float64, error) {
	return nil, nil, fmt.Errorf("linmap: decode into a function space: %w", ErrUndefinedDimension)
}

// shapeKind tags the Shape variants.
type shapeKind uint8

const (
	shapeUnit shapeKind = iota
	shapeScalar
	shapeProduct
	shapeMapping
)

// Shape is the dimension descriptor of a Vec type: the evidence object
// passed wherever a dimension-dependent operation (matrix allocation,
// block splitting) occurs. Shapes are immutable values.
type Shape struct {
	kind shapeKind
	fst  *Shape
	snd  *Shape
}

var (
	unitShape    = Shape{kind: shapeUnit}
	scalarShape  = Shape{kind: shapeScalar}
	mappingShape = Shape{kind: shapeMapping}
)

// UnitShape describes the zero-dimensional space.
func UnitShape() Shape { return unitShape }

// ScalarShape describes the one-dimensional space.
func ScalarShape() Shape { return scalarShape }

// MappingShape describes a function space. It has no finite dimension.
func MappingShape() Shape { return mappingShape }

// ProductShape describes the direct sum of a and b.
func ProductShape(a, b Shape) Shape { return productShape(a, b) }

func productShape(a, b Shape) Shape {
	return Shape{kind: shapeProduct, fst: &a, snd: &b}
}

// ShapeOf returns the shape of V from the type alone.
func ShapeOf[V Vec]() Shape {
	var z V
	return z.shape()
}

// Dimension returns the dimension of V, or ErrUndefinedDimension when V
// contains a function space.
func Dimension[V Vec]() (int, error) {
	return ShapeOf[V]().Dim()
}

// Dim returns the number of scalar coordinates of the described space.
// Unit has dimension 0, Scalar 1, and a product the sum of its components.
// A function space has no finite dimension: ErrUndefinedDimension.
func (s Shape) Dim() (int, error) {
	switch s.kind {
	case shapeUnit:
		return 0, nil
	case shapeScalar:
		return 1, nil
	case shapeProduct:
		a, err := s.fst.Dim()
		if err != nil {
			return 0, err
		}
		b, err := s.snd.Dim()
		if err != nil {
			return 0, err
		}
		return a + b, nil
	default:
		return 0, fmt.Errorf("linmap: dimension of %s: %w", s, ErrUndefinedDimension)
	}
}

// MustDim is Dim for shapes known to be finite. It panics wrapping
// ErrUndefinedDimension on a function space.
func (s Shape) MustDim() int {
	d, err := s.Dim()
	if err != nil {
		panic(err)
	}
	return d
}

// Split decomposes a product shape into its components. The evidence used
// to recurse into block-structured matrices. ok is false for non-products.
func (s Shape) Split() (fst, snd Shape, ok bool) {
	if s.kind != shapeProduct {
		return Shape{}, Shape{}, false
	}
	return *s.fst, *s.snd, true
}

// Equal reports structural equality. Function spaces compare equal at the
// mapping boundary: the index and element types are erased from the
// descriptor.
func (s Shape) Equal(t Shape) bool {
	if s.kind != t.kind {
		return false
	}
	if s.kind != shapeProduct {
		return true
	}
	return s.fst.Equal(*t.fst) && s.snd.Equal(*t.snd)
}

// String renders the descriptor: "()", "R", products in parentheses, and
// "(_=>_)" for function spaces.
func (s Shape) String() string {
	switch s.kind {
	case shapeUnit:
		return "()"
	case shapeScalar:
		return "R"
	case shapeProduct:
		return "(" + s.fst.String() + "*" + s.snd.String() + ")"
	default:
		return "(_=>_)"
	}
}
