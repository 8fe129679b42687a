package eliasfano

import "sync"

// decodingTables is the process-wide, read-only-after-init triple
// built once and shared by every decoder. The shape, a byte-indexed
// lookup table consulted in the decode hot loop instead of scanning
// bit-by-bit, follows the table-driven entropy decode pattern found in
// mrjoshuak-go-jpeg2000's internal/entropy package (t1_luts.go, mqc.go).
type decodingTables struct {
	// dnum[b] is the number of 1-bits in byte b.
	dnum [256]uint8
	// hi[b][k] is the number of 0-bits preceding the k-th 1-bit in
	// byte b, scanning MSB to LSB, for k in [0, dnum[b]).
	hi [256][8]uint8
	// carry[b] is the number of trailing zero bits after the last
	// 1-bit in byte b (8 if b == 0).
	carry [256]uint8
}

var (
	tablesOnce sync.Once
	tables     decodingTables
)

// BuildDecodingTables builds the process-wide decoding tables. It is
// idempotent (guarded by sync.Once) and must be called before any
// Decode call; the package init below calls it eagerly, so most
// callers never need to invoke it directly.
func BuildDecodingTables() {
	tablesOnce.Do(func() {
		for b := 0; b < 256; b++ {
			var count uint8
			var zeros uint8
			for bitPos := 7; bitPos >= 0; bitPos-- {
				if b&(1<<uint(bitPos)) != 0 {
					tables.hi[b][count] = zeros
					count++
					zeros = 0
				} else {
					zeros++
				}
			}
			tables.dnum[b] = count
			tables.carry[b] = zeros
		}
	})
}

func init() {
	BuildDecodingTables()
}
