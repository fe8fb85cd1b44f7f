// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

// Package sa builds the suffix array over a byte string used by
// StringIndex's Psi permutation. This is an implementation detail, not
// a structural invariant: any correct construction algorithm yields the
// same (unique) suffix array, so this package is free to use prefix
// doubling rather than a literal bucket-sort reimplementation.
package sa

import "sort"

// Build returns the suffix array of s: a permutation sa of [0, len(s))
// such that s[sa[0]:] < s[sa[1]:] < ... < s[sa[n-1]:] lexicographically.
// It runs in O(n log^2 n) via prefix doubling (Manber-Myers rank
// refinement): on round k, suffixes are ordered by their first 2k
// characters using the previous round's rank as a single comparison
// key, doubling the compared prefix length each round.
func Build(s []byte) []int {
	n := len(s)
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = i
		rank[i] = int(s[i])
	}

	next := make([]int, n)
	secondKey := func(i, k int) int {
		if i+k < n {
			return rank[i+k]
		}
		return -1
	}

	for k := 1; ; k *= 2 {
		sort.Slice(order, func(a, b int) bool {
			ia, ib := order[a], order[b]
			if rank[ia] != rank[ib] {
				return rank[ia] < rank[ib]
			}
			return secondKey(ia, k) < secondKey(ib, k)
		})

		next[order[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := order[i-1], order[i]
			same := rank[prev] == rank[cur] && secondKey(prev, k) == secondKey(cur, k)
			if same {
				next[cur] = next[prev]
			} else {
				next[cur] = next[prev] + 1
			}
		}
		copy(rank, next)

		if rank[order[n-1]] == n-1 {
			break
		}
	}
	return order
}
