// SPDX-License-Identifier: MIT

package needleman

import "errors"

var (
	// ErrBadBounds indicates a substitution whose Min/Max are non-finite or inverted.
	ErrBadBounds = errors.New("needleman: substitution bounds must be finite with Min <= Max")

	// ErrDegenerateCosts indicates a cost model whose best and worst alignment
	// costs coincide, which leaves nothing to normalize against.
	ErrDegenerateCosts = errors.New("needleman: best and worst costs coincide")

	// ErrUnknownMemoryMode indicates an unrecognized memory mode name.
	ErrUnknownMemoryMode = errors.New("needleman: unknown memory mode")
)
