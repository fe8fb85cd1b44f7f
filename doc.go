// Copyright (c) 2026 The succinct authors
// SPDX-License-Identifier: MIT

// Package succinct provides a small library of succinct and compressed
// data structures for static, read-mostly data: rank/select bit
// vectors, a monotone-integer Elias-Fano encoder, a LOUDS-encoded
// binary tree, a wavelet-tree-over-runs permutation, and a compressed
// string dictionary built on top of a suffix array.
//
// Every structure here is built once from its input and never mutated
// afterward; all queries are deterministic pure functions of the
// structure's construction input, which makes every exported type safe
// for unrestricted concurrent read access once constructed.
//
// The dependency order, leaves first, is:
//
//	Poppy -> EliasFano -> EliasFanoBitArray -> CompressedRunsBitArray
//	Poppy -> LoudsBinaryTree, Permutation
//	Permutation, RunLengthEncodedBitArray -> StringIndex
//
// select and select_zero return -1 (not an error) when no bit of the
// requested rank exists. See errors.go for the package's other error
// conventions.
package succinct
