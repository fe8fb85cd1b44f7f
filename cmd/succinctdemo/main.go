// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/miiohio/succinct"
)

func main() {
	log.SetFlags(log.Lmicroseconds)
	rng := rand.New(rand.NewPCG(42, 42))

	n := 1_000_000
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rng.IntN(3) == 0
	}

	ts := time.Now()
	poppy := succinct.NewPoppy(bits)
	log.Printf("built Poppy over %d bits in %v", n, time.Since(ts))

	r, err := poppy.Rank(n - 1)
	if err != nil {
		log.Fatalf("rank: %v", err)
	}
	log.Printf("rank(%d) = %d ones", n-1, r)

	for _, target := range []int{0, r / 2, r - 1} {
		pos := poppy.Select(target)
		log.Printf("select(%d) = %d", target, pos)
	}

	strings := []string{"alpha", "beta", "gamma", "alpha", "delta", "beta"}
	idx := succinct.NewStringIndex(strings)
	log.Printf("built StringIndex over %d strings", idx.Len())
	for i := 0; i < idx.Len(); i++ {
		s, err := idx.At(i)
		if err != nil {
			log.Fatalf("at(%d): %v", i, err)
		}
		log.Printf("I[%d] = %q", i, s)
	}
}
