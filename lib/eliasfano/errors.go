package eliasfano

import "github.com/pkg/errors"

// Error kinds surfaced to callers. Never swallowed; every detected
// constraint violation aborts the operation and wraps one of these
// sentinels with github.com/pkg/errors so the caller gets a stack
// trace at the point of failure. Use errors.Is against these values to
// classify a returned error.
var (
	// ErrInvalidInput: empty sequence, non-monotone, contains zero,
	// exceeds 2^32-1, or an invalid (n, max, u) combination.
	ErrInvalidInput = errors.New("eliasfano: invalid input")

	// ErrBufferTooSmall: the output buffer cannot hold the encoding,
	// or the destination slice cannot hold n elements.
	ErrBufferTooSmall = errors.New("eliasfano: buffer too small")

	// ErrTruncated: the input byte slice is shorter than the header
	// or shorter than the declared streams.
	ErrTruncated = errors.New("eliasfano: truncated input")

	// ErrDecodeOverflow: reconstruction would exceed 2^32-1, a
	// corruption indicator.
	ErrDecodeOverflow = errors.New("eliasfano: decode overflow")
)

func newInvalidInput(reason string) error {
	return errors.Wrap(ErrInvalidInput, reason)
}

func newBufferTooSmall(reason string) error {
	return errors.Wrap(ErrBufferTooSmall, reason)
}

func newTruncated(reason string) error {
	return errors.Wrap(ErrTruncated, reason)
}

func newDecodeOverflow(reason string) error {
	return errors.Wrap(ErrDecodeOverflow, reason)
}
