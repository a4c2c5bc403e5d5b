// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linmap

import "errors"

// Sentinel errors of the algebra. Every returned or panicked error wraps one
// of these; match with errors.Is.
var (
	// ErrShapeMismatch reports a malformed expression: operands whose domain
	// or codomain shapes disagree where the algebra requires them equal
	// (sums, pairings, case-splits, composition boundaries). It is a defect
	// in the caller; construction and composition panic with it wrapped
	// rather than produce a map that denotes nothing.
	ErrShapeMismatch = errors.New("linmap: shape mismatch")

	// ErrUndefinedDimension reports a refusal: the operation needs a finite
	// dimension and the expression contains a function-space (family) form.
	// Callers may evaluate pointwise via At and Apply instead.
	ErrUndefinedDimension = errors.New("linmap: undefined dimension")

	// ErrNotYetSupported reports a known modeling gap: the composition rules
	// do not define composing through a family or family-evaluation form on
	// the right-hand side. The gap is reported loudly, never silently
	// dropped. Recover with TryCompose.
	ErrNotYetSupported = errors.New("linmap: not yet supported")
)
