// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

package succinct

import "errors"

// Sentinel errors identifying the error kinds from the package contract.
// select and select_zero intentionally do NOT use these: "no such bit"
// is a designed return value (-1), not an error.
var (
	// ErrOutOfBounds is returned when a positional index is negative or
	// not smaller than the structure's logical length.
	ErrOutOfBounds = errors.New("succinct: index out of bounds")

	// ErrInvalidInput is returned at construction time when an
	// Elias-Fano sequence is given a decreasing value, or a value
	// larger than the declared maximum.
	ErrInvalidInput = errors.New("succinct: invalid input")

	// ErrEmptyStructure is returned when rank, rank_zero or at is called
	// on a structure of length 0, where the operation has no meaningful
	// answer.
	ErrEmptyStructure = errors.New("succinct: operation undefined on an empty structure")
)
