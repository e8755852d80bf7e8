package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rprtr258/poolreuse/flow/pool"
	reducer "github.com/rprtr258/poolreuse/pkg"
)

var ownedCmd = cobra.Command{
	Use:   "owned",
	Short: "Create a pool, compute once, shut the pool down.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := reducer.Default().RunOwned(cmd.Context(), func(int) (pool.Pool, error) {
			return newPool(workers)
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
	Example: "poolreuse owned --backend pond --workers 4",
}

func init() {
	rootCmd.AddCommand(&ownedCmd)
}
