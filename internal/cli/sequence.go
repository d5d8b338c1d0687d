package cli

import (
	"fmt"

	"github.com/mutekichi/cptoolkit/coordcomp"
	"github.com/mutekichi/cptoolkit/zarray"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newZArrayCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "zarray S",
		Short: "Print the Z-array of the bytes of S",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z := zarray.BuildString(args[0])
			st.logger.Debug("zarray", zap.Int("length", len(z)))
			fmt.Fprintln(cmd.OutOrStdout(), join(z))

			return nil
		},
	}
}

func newCompressCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "compress V...",
		Short: "Replace each integer by its rank among the distinct values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseInt64s(args)
			if err != nil {
				return err
			}
			c := coordcomp.New(vs)
			ranks, err := c.RankAll(vs)
			if err != nil {
				return err
			}
			st.logger.Debug("compressed", zap.Int("values", len(vs)), zap.Int("distinct", c.Size()))
			fmt.Fprintln(cmd.OutOrStdout(), join(ranks))

			return nil
		},
	}
}
