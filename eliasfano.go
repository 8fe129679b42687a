// Package eliasfano encodes and decodes a strictly increasing sequence
// of non-negative 32-bit integers, archetypally a posting list of
// document identifiers, into a compact byte stream using the
// Elias-Fano quasi-succinct representation.
//
// Basic usage for encoding:
//
//	w := make([]byte, 5*len(postings))
//	used, err := eliasfano.Encode(postings, w)
//
// Basic usage for decoding:
//
//	dst := make([]uint32, len(postings))
//	n, err := eliasfano.Decode(w, used, dst)
//
// The codec is a pure, allocation-free transform over caller-owned
// buffers: it performs no I/O, does no random access or rank/select
// over the compressed form, and decodes strictly sequentially from the
// start. See lib/eliasfano's Encode and Params for the buffer layout
// and its Err* sentinels for the error kinds.
package eliasfano

import "github.com/thebagchi/go-eliasfano/lib/eliasfano"

// BuildDecodingTables builds the process-wide decoding tables used by
// Decode. It is idempotent and safe to call from multiple goroutines;
// package init already calls it, so most callers never need to.
func BuildDecodingTables() {
	eliasfano.BuildDecodingTables()
}

// Encode serializes sorted into w and returns the number of bytes of w
// that make up the encoding. See lib/eliasfano.Encode for the full
// contract.
func Encode(sorted []uint32, w []byte) (usedBytes uint32, err error) {
	return eliasfano.Encode(sorted, w)
}

// Decode reconstructs the original sequence from w[0:usedBytes] into
// dst, returning the number of elements written. See
// lib/eliasfano.Decode for the full contract.
func Decode(w []byte, usedBytes uint32, dst []uint32) (count uint32, err error) {
	return eliasfano.Decode(w, usedBytes, dst)
}

// DeriveParams derives the wire layout for a sequence of n elements
// whose maximum value is max.
func DeriveParams(n uint32, max uint32) (eliasfano.Params, error) {
	return eliasfano.DeriveParams(n, max)
}

// DeriveParamsForUniverse derives the wire layout using an explicit
// universe bound u instead of the sequence maximum.
func DeriveParamsForUniverse(n uint32, u uint64, max uint32) (eliasfano.Params, error) {
	return eliasfano.DeriveParamsForUniverse(n, u, max)
}
