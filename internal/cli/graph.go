package cli

import (
	"fmt"

	"github.com/mutekichi/cptoolkit/dsu"
	"github.com/mutekichi/cptoolkit/mst"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDSUCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dsu N",
		Short: "Apply unions read from stdin to N singletons",
		Long: `Read pairs "x y" from standard input and unite their classes in order.

For each pair one line "x y merged size" is printed, where merged reports
whether two distinct classes were joined and size is the resulting class size.
A final line "classes=K" gives the number of classes left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			uf, err := dsu.New(n)
			if err != nil {
				return err
			}
			pairs, err := readRecords(cmd.InOrStdin(), 2)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range pairs {
				x, y := int(p[0]), int(p[1])
				merged, err := uf.Unite(x, y)
				if err != nil {
					return err
				}
				size, err := uf.Size(x)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d %d %t %d\n", x, y, merged, size)
			}
			st.logger.Debug("unions applied", zap.Int("n", n), zap.Int("pairs", len(pairs)), zap.Int("classes", uf.Count()))
			fmt.Fprintf(out, "classes=%d\n", uf.Count())

			return nil
		},
	}
}

func newMSTCmd(st *state) *cobra.Command {
	var (
		method string
		root   int
	)

	cmd := &cobra.Command{
		Use:   "mst N",
		Short: "Minimum spanning tree of edges \"u v w\" read from stdin",
		Long: `Read undirected weighted edges "u v w" over vertices 0..N-1 from standard
input and print the total weight of a minimum spanning tree followed by its
edges, one "u v w" per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			records, err := readRecords(cmd.InOrStdin(), 3)
			if err != nil {
				return err
			}
			edges := make([]mst.Edge, len(records))
			for i, r := range records {
				edges[i] = mst.Edge{From: int(r[0]), To: int(r[1]), Weight: r[2]}
			}
			tree, total, err := mst.Compute(n, edges, mst.WithMethod(method), mst.WithRoot(root))
			if err != nil {
				return err
			}
			st.logger.Debug("spanning tree",
				zap.String("method", method), zap.Int("n", n), zap.Int("edges", len(edges)), zap.Int64("total", total))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, total)
			for _, e := range tree {
				fmt.Fprintf(out, "%d %d %d\n", e.From, e.To, e.Weight)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", mst.MethodKruskal, "Algorithm: kruskal or prim")
	cmd.Flags().IntVar(&root, "root", 0, "Start vertex for prim")

	return cmd
}
