package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	eliasfano "github.com/thebagchi/go-eliasfano"
	"github.com/thebagchi/go-eliasfano/internal/casefile"
	"github.com/thebagchi/go-eliasfano/lib/bitmath"
)

func newBenchCmd(logger *zap.Logger) *cobra.Command {
	var (
		casesFile string
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Encode generated sequences and report bits/element and buffer-sizing slack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadCases(casesFile)
			if nil != err {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			for _, c := range cases {
				if err := runBenchCase(logger, rng, c); nil != err {
					return errors.Wrapf(err, "case n=%d max=%d", c.N, c.Max)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&casesFile, "cases", "", "path to a casefile of \"n,max\" lines; defaults to a built-in case list")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for sequence generation")
	return cmd
}

func runBenchCase(logger *zap.Logger, rng *rand.Rand, c casefile.Case) error {
	values := generateSequence(rng, c.N, c.Max)

	params, err := eliasfano.DeriveParams(uint32(len(values)), c.Max)
	if nil != err {
		return errors.Wrap(err, "DeriveParams")
	}

	heuristic := uint64(5 * len(values))
	exact := bitmath.EncodedByteBound(uint32(len(values)), params.L, uint64(c.Max))

	w := make([]byte, heuristic)
	if exact > heuristic {
		w = make([]byte, exact)
	}

	start := time.Now()
	used, err := eliasfano.Encode(values, w)
	if nil != err {
		return errors.Wrap(err, "Encode")
	}
	elapsed := time.Since(start)

	bitsPerElement := float64(used) * 8 / float64(len(values))
	logger.Info("bench result",
		zap.Int("n", len(values)),
		zap.Uint32("max", c.Max),
		zap.Uint8("L", params.L),
		zap.Uint32("usedBytes", used),
		zap.Uint64("heuristicBound", heuristic),
		zap.Uint64("exactBound", exact),
		zap.Duration("encodeElapsed", elapsed),
	)
	fmt.Printf("n=%d max=%d L=%d usedBytes=%d bits/element=%.2f heuristicBound=%d exactBound=%d\n",
		len(values), c.Max, params.L, used, bitsPerElement, heuristic, exact)
	return nil
}
