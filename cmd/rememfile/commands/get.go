package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:     "get [files...]",
	Aliases: []string{"g"},
	Short:   "Retrieve stored file paths that share the same hash sum",
	RunE: func(cmd *cobra.Command, args []string) error {
		if RF == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx := context.Background()

		ts, err := targets(args)
		if err != nil {
			return err
		}

		for _, t := range ts {
			res, err := RF.Tracker.Get(ctx, t.Abs)
			if err != nil {
				return err
			}
			RF.Printer.PrintMatches(t, res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
