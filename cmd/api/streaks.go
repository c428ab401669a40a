package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Maintain the cached streak columns",
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute [habit-id...]",
	Short: "Recompute streaks now, for the given habits or every active habit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			n, err := a.scheduler.RefreshAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d habits\n", n)
			return nil
		}

		for _, id := range args {
			if err := a.worker.Recompute(cmd.Context(), id); err != nil {
				return fmt.Errorf("habit %s: %w", id, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d habits\n", len(args))
		return nil
	},
}

func init() {
	streaksCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(streaksCmd)
}
