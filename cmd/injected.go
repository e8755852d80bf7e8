package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rprtr258/poolreuse/flow/pool"
	reducer "github.com/rprtr258/poolreuse/pkg"
)

var (
	runs        int
	injectedCmd = cobra.Command{
		Use:   "injected",
		Short: "Create one pool and reuse it for several computations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPool(workers)
			if err != nil {
				return err
			}
			defer p.Shutdown()

			ctx := cmd.Context()
			for i := 0; i < runs; i++ {
				res, err := reducer.Compute(ctx, p)
				if err != nil {
					return errors.Wrapf(err, "run %d", i)
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}

			// the pool outlives every computation
			fut, err := pool.Submit(p, func() (bool, error) { return true, nil })
			if err != nil {
				return errors.Wrap(err, "reuse pool")
			}
			if _, err := fut.Get(ctx); err != nil {
				return errors.Wrap(err, "reuse pool")
			}
			return nil
		},
		Example: "poolreuse injected --runs 3",
	}
)

func init() {
	injectedCmd.Flags().IntVarP(&runs, "runs", "n", 1, "how many computations share the pool")

	rootCmd.AddCommand(&injectedCmd)
}
