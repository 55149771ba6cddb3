// SPDX-License-Identifier: MIT

package substitution

import "errors"

var (
	// ErrNaNInf signals a NaN or ±Inf cost where a finite value is required.
	ErrNaNInf = errors.New("substitution: NaN or Inf cost")

	// ErrBadEntry signals a table entry whose endpoints are not exactly one symbol.
	ErrBadEntry = errors.New("substitution: table entry must map one symbol to one symbol")
)
