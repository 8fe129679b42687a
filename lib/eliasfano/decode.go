package eliasfano

import (
	"encoding/binary"

	"github.com/thebagchi/go-eliasfano/lib/bitio"
)

const maxValue = uint64(1)<<32 - 1

// Decode reconstructs the original sequence from w[0:usedBytes] into
// dst, returning the number of elements written. BuildDecodingTables
// must have run first; package init already does this, so callers
// normally never call it themselves.
//
// The high stream is walked one byte at a time: tables.dnum[b] gives
// how many elements terminate in this byte, tables.hi[b][k] gives the
// k-th terminator's zero-run length in one lookup, and tables.carry[b]
// carries any zero-run that continues into the next byte. This avoids
// a bit-by-bit unary scan and is the decoder's performance core.
func Decode(w []byte, usedBytes uint32, dst []uint32) (count uint32, err error) {
	if uint32(len(w)) < headerLen || usedBytes < headerLen {
		return 0, newTruncated("input shorter than header")
	}

	n := binary.LittleEndian.Uint32(w[0:4])
	l := w[4]
	if l > maxL {
		return 0, newTruncated("header L out of range")
	}
	highStart := uint32((uint64(n)*uint64(l))/8) + headerLen + 1

	if usedBytes < highStart {
		return 0, newTruncated("input shorter than declared high stream")
	}
	if uint32(len(w)) < usedBytes {
		return 0, newTruncated("input shorter than usedBytes")
	}
	if uint32(len(dst)) < n {
		return 0, newBufferTooSmall("dst cannot hold n elements")
	}

	lowCodec := bitio.CreateReader(w[headerLen:highStart])

	var (
		idx          uint32
		last         uint64
		pendingCarry uint32
	)
	for p := highStart; p < usedBytes; p++ {
		b := w[p]
		k := tables.dnum[b]
		for i := uint8(0); i < k; i++ {
			var low uint64
			if l > 0 {
				low, err = lowCodec.Read(l)
				if err != nil {
					return 0, newTruncated("low stream exhausted: " + err.Error())
				}
			}

			hi := uint32(tables.hi[b][i])
			if i == 0 {
				hi += pendingCarry
			}

			value := (uint64(hi)<<l | low) + last + 1
			if value > maxValue {
				return 0, newDecodeOverflow("reconstructed value exceeds 2^32-1")
			}
			if idx >= uint32(len(dst)) {
				return 0, newBufferTooSmall("dst cannot hold n elements")
			}
			dst[idx] = uint32(value)
			idx++
			last = value
		}
		if k > 0 {
			// pendingCarry was already folded into this byte's first
			// element; only this byte's own trailing zeros carry on.
			pendingCarry = uint32(tables.carry[b])
		} else {
			// No terminator in this byte: the incoming carry is still
			// unconsumed and accumulates with this byte's zero run,
			// so a unary code spanning several all-zero bytes (e.g.
			// L=0 and a large gap) carries correctly across all of
			// them.
			pendingCarry += uint32(tables.carry[b])
		}
	}

	// A bit flip that turns a terminator into a zero merges two
	// elements' unary runs into one, so the high stream can run out
	// having produced fewer than n elements without ever exceeding
	// 2^32-1 or reading past usedBytes. That short decode is itself a
	// corruption signal and must not be reported as success.
	if idx != n {
		return 0, newTruncated("high stream element count does not match the header")
	}

	return idx, nil
}
