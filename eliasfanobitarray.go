// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

package succinct

import "sort"

// EliasFanoBitArray is a sparse BitArray: only the positions of its
// one-bits are stored, as an EliasFano sequence. Zero-bits past the last
// one-bit cost nothing; with the default low-bit width floor(p/m), for
// m one-bits whose last is at position p, the low part takes at most p
// bits and the unary high part at most 2m + 1 bits.
type EliasFanoBitArray struct {
	size int
	ones *EliasFano // nil when there are no one-bits
}

// NewEliasFanoBitArray builds an EliasFanoBitArray from a plain bit
// sequence, in the order given (bits[0] is position 0).
func NewEliasFanoBitArray(bitsIn []bool, opts ...EliasFanoOption) (*EliasFanoBitArray, error) {
	size := len(bitsIn)

	var onePositions []int
	for i, b := range bitsIn {
		if b {
			onePositions = append(onePositions, i)
		}
	}

	eba := &EliasFanoBitArray{size: size}
	if len(onePositions) == 0 {
		return eba, nil
	}

	maxOne := onePositions[len(onePositions)-1]
	ef, err := NewEliasFano(onePositions, len(onePositions), maxOne, opts...)
	if err != nil {
		return nil, err
	}
	eba.ones = ef
	return eba, nil
}

// Len returns the logical number of bits.
func (e *EliasFanoBitArray) Len() int { return e.size }

// At reports whether the bit at position i is set.
func (e *EliasFanoBitArray) At(i int) (bool, error) {
	if e.size == 0 {
		return false, ErrEmptyStructure
	}
	if i < 0 || i >= e.size {
		return false, ErrOutOfBounds
	}
	if e.ones == nil {
		return false, nil
	}
	idx := sort.Search(e.ones.Len(), func(k int) bool { return e.ones.At(k) >= i })
	return idx < e.ones.Len() && e.ones.At(idx) == i, nil
}

// Rank returns the number of one-bits in positions [0, i].
func (e *EliasFanoBitArray) Rank(i int) (int, error) {
	if e.size == 0 {
		return 0, ErrEmptyStructure
	}
	if i < 0 || i >= e.size {
		return 0, ErrOutOfBounds
	}
	if e.ones == nil {
		return 0, nil
	}
	return sort.Search(e.ones.Len(), func(k int) bool { return e.ones.At(k) > i }), nil
}

// RankZero returns the number of zero-bits in positions [0, i].
func (e *EliasFanoBitArray) RankZero(i int) (int, error) {
	r, err := e.Rank(i)
	if err != nil {
		return 0, err
	}
	return i - r + 1, nil
}

// Select returns the position of the r-th (0-indexed) one-bit, or -1 if
// no such bit exists.
func (e *EliasFanoBitArray) Select(r int) int {
	if e.ones == nil || r < 0 || r >= e.ones.Len() {
		return -1
	}
	return e.ones.At(r)
}

// SelectZero returns the position of the r-th (0-indexed) zero-bit, or
// -1 if no such bit exists.
func (e *EliasFanoBitArray) SelectZero(r int) int {
	if r < 0 || e.size == 0 {
		return -1
	}
	low, high := 0, e.size-1
	for low <= high {
		mid := (low + high) / 2
		rz, err := e.RankZero(mid)
		if err != nil {
			return -1
		}
		at, err := e.At(mid)
		if err != nil {
			return -1
		}
		switch {
		case !at && rz == r+1:
			return mid
		case rz <= r:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1
}
