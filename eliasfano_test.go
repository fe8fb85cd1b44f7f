// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

package succinct

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEliasFanoScenario2(t *testing.T) {
	values := []int{2, 3, 5, 7, 11, 13, 24}
	ef, err := NewEliasFano(values, len(values), 24)
	require.NoError(t, err)
	require.Equal(t, 7, ef.Len())

	for i, want := range values {
		require.Equalf(t, want, ef.At(i), "At(%d)", i)
	}
}

func TestEliasFanoRejectsOutOfOrder(t *testing.T) {
	_, err := NewEliasFano([]int{5, 3}, 2, 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEliasFanoRejectsTooLarge(t *testing.T) {
	_, err := NewEliasFano([]int{1, 100}, 2, 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEliasFanoAllZeros(t *testing.T) {
	values := []int{0, 0, 0, 0}
	ef, err := NewEliasFano(values, len(values), 0)
	require.NoError(t, err)
	for i := range values {
		require.Equal(t, 0, ef.At(i))
	}
}

func TestEliasFanoWithNumLowerBitsOverride(t *testing.T) {
	values := []int{2, 3, 5, 7, 11, 13, 24}
	ef, err := NewEliasFano(values, len(values), 24, WithNumLowerBits(2))
	require.NoError(t, err)
	for i, want := range values {
		require.Equalf(t, want, ef.At(i), "At(%d)", i)
	}
}

func TestEliasFanoProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	for trial := 0; trial < 20; trial++ {
		m := rng.IntN(200) + 1
		maxValue := rng.IntN(5000)
		values := make([]int, m)
		for i := range values {
			values[i] = rng.IntN(maxValue + 1)
		}
		sort.Ints(values)

		ef, err := NewEliasFano(values, m, maxValue)
		require.NoError(t, err)
		for i, want := range values {
			require.Equalf(t, want, ef.At(i), "trial=%d At(%d)", trial, i)
		}
	}
}
