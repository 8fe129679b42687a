// Command eliasfanoctl drives the eliasfano codec from the command
// line: selftest round-trips generated sequences and bench reports
// achieved bits/element alongside the 5*n heuristic and the
// bitmath.EncodedByteBound buffer bounds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if nil != err {
		fmt.Fprintln(os.Stderr, "eliasfanoctl: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCmd(logger)
	if err := root.Execute(); nil != err {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "eliasfanoctl",
		Short: "Elias-Fano codec self-test and benchmark driver",
	}
	root.AddCommand(newSelftestCmd(logger))
	root.AddCommand(newBenchCmd(logger))
	return root
}
