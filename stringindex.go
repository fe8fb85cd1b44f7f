// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

package succinct

import (
	"sort"

	"github.com/miiohio/succinct/internal/sa"
)

// endCharacter is the sentinel appended to the concatenation of all
// strings before suffix-array construction. At never emits this byte, so
// zero bytes inside the input strings are dropped from At's results too.
const endCharacter = byte(0)

// StringIndex is a compressed dictionary over a static, ordered list of
// byte strings, built from their suffix array: a Psi permutation (next
// suffix-array rank, in the FM-index sense) plus a bit vector marking
// which suffix-array ranks start an original string. Reconstructing the
// k-th string walks forward through Psi, emitting one character per
// step, until the walk returns to a string-start rank.
//
// Retrieval does not guarantee I[k] reproduces the strings in their
// original input order — only that the full set (with multiplicity) of
// strings is recoverable by ranging over every k. See the package
// tests for the exact guarantee.
type StringIndex struct {
	size int

	alphabetDistinct []byte
	alphabetStarts   []int

	psi       *Permutation
	psiStarts *RunLengthEncodedBitArray
}

// NewStringIndex builds a StringIndex over strings, in the order given.
func NewStringIndex(strings []string) *StringIndex {
	idx := &StringIndex{size: len(strings)}
	if len(strings) == 0 {
		return idx
	}

	var t []byte
	var startLengths []int
	for _, s := range strings {
		t = append(t, []byte(s)...)
		startLengths = append(startLengths, len(s))
	}
	t = append(t, endCharacter)

	suffixArray := sa.Build(t)
	n := len(suffixArray)

	for i := 0; i < n; i++ {
		if i == 0 || t[suffixArray[i-1]] != t[suffixArray[i]] {
			idx.alphabetDistinct = append(idx.alphabetDistinct, t[suffixArray[i]])
			idx.alphabetStarts = append(idx.alphabetStarts, i)
		}
	}

	inverseSuffixArray := make([]int, n)
	for i, x := range suffixArray {
		inverseSuffixArray[x] = i
	}

	psiValues := make([]int, n)
	for j, x := range suffixArray {
		psiValues[j] = inverseSuffixArray[(x+1)%n]
	}
	idx.psi = NewPermutation(IntSequence(psiValues))

	starts := make([]bool, 0, n)
	for _, length := range startLengths {
		starts = append(starts, true)
		for k := 1; k < length; k++ {
			starts = append(starts, false)
		}
	}
	starts = append(starts, false)

	psiStartsBools := make([]bool, n)
	for i, x := range suffixArray {
		if starts[x] {
			psiStartsBools[i] = true
		}
	}
	idx.psiStarts = NewRunLengthEncodedBitArray(psiStartsBools)

	return idx
}

// Len returns the number of strings in the index.
func (idx *StringIndex) Len() int { return idx.size }

// getCharAt returns the first character of the suffix starting at the
// given suffix-array rank position, via a floor search over the
// alphabet-start sampling.
func (idx *StringIndex) getCharAt(position int) byte {
	i := sort.Search(len(idx.alphabetStarts), func(k int) bool {
		return idx.alphabetStarts[k] > position
	}) - 1
	return idx.alphabetDistinct[i]
}

// At returns the k-th string stored in the index.
func (idx *StringIndex) At(key int) (string, error) {
	if key < 0 || key >= idx.size {
		return "", ErrOutOfBounds
	}

	pos := idx.psiStarts.Select(key)
	var result []byte
	firstTime := true
	for {
		if !firstTime {
			atStart, err := idx.psiStarts.At(pos)
			if err != nil {
				return "", err
			}
			if atStart {
				break
			}
		}
		firstTime = false

		ch := idx.getCharAt(pos)
		if ch != endCharacter {
			result = append(result, ch)
		}
		pos = idx.psi.At(pos)
	}
	return string(result), nil
}
