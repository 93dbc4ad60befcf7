// Package gcm implements a Golomb-coded map: a compact, immutable, static
// associative structure that maps a fixed set of opaque byte-string
// elements to dense integer indices in [0, N), while allowing a controlled
// false-positive rate of 1/p for elements outside the set.
//
// # Overview
//
// A GCM is built once from a slice of distinct elements and never mutated
// afterward. Construction hashes every element into a bounded universe,
// sorts the hashes, and Golomb-codes the sorted, differenced sequence into
// a packed bit vector. A side lookup table lets a query land near its
// target bin without decoding from the start of the stream, turning an
// O(N) scan into an O(N/T) one.
//
// The output size approaches the information-theoretic lower bound of
// roughly log2(p) bits per stored element - tighter than a Bloom filter at
// the same false-positive rate, with the added benefit of returning a
// dense rank rather than a bare membership bit.
//
// # Basic usage
//
//	elements := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
//	m, err := gcm.Build(elements, 4, 2)
//	if err != nil {
//		// handle bad arguments
//	}
//	found, index := m.Query([]byte("b"))
//
// # Non-goals
//
// No dynamic insert/delete, no enumeration of stored elements, no
// cryptographic guarantees, and no persistence or wire format - the
// structure lives only in memory for the lifetime of its building
// process.
package gcm
