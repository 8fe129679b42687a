package eliasfano

import "github.com/thebagchi/go-eliasfano/lib/bitmath"

// maxL is the largest low-bits width this codec will ever choose, safe
// for values bounded by 2^32-1.
const maxL = 31

// headerLen is the fixed size, in bytes, of the n/L header.
const headerLen = 5

// Params is the wire layout derived from (n, max) or (n, u, max):
// the low-bits width L and the two stream start offsets.
type Params struct {
	N         uint32
	L         uint8
	LowStart  uint32
	HighStart uint32
}

// lowMask returns (1<<L)-1.
func (p Params) lowMask() uint64 {
	return (uint64(1) << p.L) - 1
}

// DeriveParams computes Params from element count n and the sequence
// maximum (v_{n-1}). This is the u == max convenience case of
// DeriveParamsForUniverse.
func DeriveParams(n uint32, max uint32) (Params, error) {
	return DeriveParamsForUniverse(n, uint64(max), max)
}

// DeriveParamsForUniverse computes Params from element count n, an
// explicit universe bound u, and the sequence maximum max. L is
// derived from u (floor(log2(u/n)), clamped to [0, 31]); max is still
// required so callers cannot supply a universe smaller than the data
// actually observed.
func DeriveParamsForUniverse(n uint32, u uint64, max uint32) (Params, error) {
	if n == 0 {
		return Params{}, newInvalidInput("n must be >= 1")
	}
	if max == 0 {
		return Params{}, newInvalidInput("max must be >= 1")
	}
	if u < uint64(max) {
		return Params{}, newInvalidInput("universe u must be >= max")
	}

	l := bitmath.ClampLog2(bitmath.FloorLog2(u, uint64(n)), maxL)
	lowStart := uint32(headerLen)
	highStart := uint32((uint64(n)*uint64(l))/8) + headerLen + 1

	return Params{
		N:         n,
		L:         uint8(l),
		LowStart:  lowStart,
		HighStart: highStart,
	}, nil
}
