package eliasfano

import (
	"encoding/binary"

	"github.com/thebagchi/go-eliasfano/lib/bitio"
)

// Encode serializes the strictly increasing sequence sorted into w
// using the layout from DeriveParams, and returns the number of bytes
// of w that make up the encoding.
//
// Two independent bitio.Codec cursors are bound to disjoint windows of
// w, one over the low stream (w[5:highStart]), one over the high
// stream (w[highStart:]), so the two streams can never collide. Each
// cursor's own bound enforces it, reported back as ErrBufferTooSmall.
func Encode(sorted []uint32, w []byte) (usedBytes uint32, err error) {
	if err := validateSequence(sorted); err != nil {
		return 0, err
	}

	n := uint32(len(sorted))
	max := sorted[n-1]
	params, err := DeriveParams(n, max)
	if err != nil {
		return 0, err
	}
	if uint32(len(w)) < params.HighStart {
		return 0, newBufferTooSmall("w too small to hold header and low stream")
	}

	binary.LittleEndian.PutUint32(w[0:4], n)
	w[4] = params.L

	lowCodec := bitio.CreateBoundedWriter(w[headerLen:params.HighStart:params.HighStart])
	highCodec := bitio.CreateBoundedWriter(w[params.HighStart:len(w):len(w)])

	mask := params.lowMask()
	var last uint32
	for _, v := range sorted {
		d := uint64(v - last - 1)
		if params.L > 0 {
			if err := lowCodec.Write(params.L, d&mask); err != nil {
				return 0, newBufferTooSmall("low stream: " + err.Error())
			}
		}
		q := uint32(d >> params.L)
		if err := writeUnary(highCodec, q); err != nil {
			return 0, newBufferTooSmall("high stream: " + err.Error())
		}
		last = v
	}

	return params.HighStart + uint32(len(highCodec.Bytes())), nil
}

// writeUnary writes q zero bits followed by a single terminating 1
// bit, chunking through 64-bit-wide Write calls so a single element's
// quotient can exceed 63 without overflowing bitio.Codec.Write's
// 1..64 range.
func writeUnary(c *bitio.Codec, q uint32) error {
	for q >= 64 {
		if err := c.Write(64, 0); err != nil {
			return err
		}
		q -= 64
	}
	return c.Write(uint8(q+1), 1)
}

// validateSequence enforces the encoder's input constraints: strictly
// increasing, non-zero, non-empty, within [1, 2^32-1].
func validateSequence(sorted []uint32) error {
	if len(sorted) == 0 {
		return newInvalidInput("sequence must be non-empty")
	}
	if sorted[0] == 0 {
		return newInvalidInput("zero is not a legal value")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] <= sorted[i-1] {
			return newInvalidInput("sequence must be strictly increasing")
		}
	}
	return nil
}
