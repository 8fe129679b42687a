package main

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	eliasfano "github.com/thebagchi/go-eliasfano"
	"github.com/thebagchi/go-eliasfano/internal/casefile"
	"github.com/thebagchi/go-eliasfano/lib/bitmath"
)

func newSelftestCmd(logger *zap.Logger) *cobra.Command {
	var (
		casesFile string
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip generated sequences and report any mismatch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadCases(casesFile)
			if nil != err {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			for _, c := range cases {
				if err := runSelftestCase(logger, rng, c); nil != err {
					return errors.Wrapf(err, "case n=%d max=%d", c.N, c.Max)
				}
			}
			logger.Info("selftest passed", zap.Int("cases", len(cases)))
			return nil
		},
	}
	cmd.Flags().StringVar(&casesFile, "cases", "", "path to a casefile of \"n,max\" lines; defaults to a built-in case list")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for sequence generation")
	return cmd
}

// defaultCases is the built-in case list used when --cases is not
// given: small, medium, and large element counts over universes that
// force L through several widths. It is a fixed list, not a geometric
// progression of n, and max differs from case to case.
var defaultCases = []casefile.Case{
	{N: 1, Max: 1},
	{N: 8, Max: 8},
	{N: 5, Max: 11},
	{N: 1, Max: 1000000},
	{N: 100, Max: 1000},
	{N: 10000, Max: 1000000000},
}

func loadCases(path string) ([]casefile.Case, error) {
	if path == "" {
		return defaultCases, nil
	}
	return casefile.Load(path)
}

func runSelftestCase(logger *zap.Logger, rng *rand.Rand, c casefile.Case) error {
	values := generateSequence(rng, c.N, c.Max)

	params, err := eliasfano.DeriveParams(uint32(len(values)), c.Max)
	if nil != err {
		return errors.Wrap(err, "DeriveParams")
	}
	bound := bitmath.EncodedByteBound(uint32(len(values)), params.L, uint64(c.Max))

	w := make([]byte, bound)
	used, err := eliasfano.Encode(values, w)
	if nil != err {
		return errors.Wrap(err, "Encode")
	}

	dst := make([]uint32, len(values))
	count, err := eliasfano.Decode(w, used, dst)
	if nil != err {
		return errors.Wrap(err, "Decode")
	}
	if int(count) != len(values) {
		return errors.Errorf("decoded %d elements, want %d", count, len(values))
	}
	for i, v := range values {
		if dst[i] != v {
			return errors.Errorf("element %d: decoded %d, want %d", i, dst[i], v)
		}
	}

	logger.Debug("case ok",
		zap.Int("n", len(values)),
		zap.Uint32("max", c.Max),
		zap.Uint8("L", params.L),
		zap.Uint32("usedBytes", used),
		zap.Uint64("bound", bound),
	)
	return nil
}

// generateSequence draws n distinct values uniformly from [1, max] and
// returns them sorted, matching the codec's strictly-increasing,
// non-zero precondition. If max is too small to fit n distinct values
// it generates a dense run starting at 1 instead.
func generateSequence(rng *rand.Rand, n uint32, max uint32) []uint32 {
	if uint64(max) < uint64(n) {
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(i) + 1
		}
		return out
	}
	seen := make(map[uint32]bool, n)
	values := make([]uint32, 0, n)
	for uint32(len(values)) < n {
		v := uint32(rng.Int63n(int64(max))) + 1
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}
