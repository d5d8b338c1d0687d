package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	groupNumber   = "number"
	groupSequence = "sequence"
	groupGraph    = "graph"
)

// state is shared by every subcommand of one root.
type state struct {
	logger  *zap.Logger
	verbose bool
}

// NewRootCmd creates the cptoolkit root command with all subcommands attached.
// logger may be nil, in which case one is built before the first command runs.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	st := &state{logger: logger}

	rootCmd := &cobra.Command{
		Use:   "cptoolkit",
		Short: "cptoolkit - competitive-programming primitives from the command line",
		Long: `cptoolkit exposes the toolkit packages for quick manual checks:
primality and factorization, modular arithmetic, Z-arrays, coordinate
compression, union-find and minimum spanning trees.

Negative numeric arguments must follow "--", e.g. cptoolkit extgcd -- -4 6.`,
		Version:      buildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if st.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if st.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			st.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&st.verbose, "verbose", false, "Log each computation at debug level")

	rootCmd.AddGroup(&cobra.Group{ID: groupNumber, Title: "Number Theory"})
	rootCmd.AddGroup(&cobra.Group{ID: groupSequence, Title: "Sequences"})
	rootCmd.AddGroup(&cobra.Group{ID: groupGraph, Title: "Graphs"})

	for _, c := range []*cobra.Command{
		newIsPrimeCmd(st), newFactorCmd(st), newDivisorsCmd(st),
		newSieveCmd(st), newModPowCmd(st), newExtGCDCmd(st),
	} {
		c.GroupID = groupNumber
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{newZArrayCmd(st), newCompressCmd(st)} {
		c.GroupID = groupSequence
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{newDSUCmd(st), newMSTCmd(st)} {
		c.GroupID = groupGraph
		rootCmd.AddCommand(c)
	}

	return rootCmd
}

// buildVersion reports the module version recorded in the binary, if any.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "development"
}
