package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var unsetCmd = &cobra.Command{
	Use:     "unset [files...]",
	Aliases: []string{"u"},
	Short:   "Remove specific file paths from the database",
	Long:    `Remove entries by path. The files are not read, so entries of deleted files can be removed too.`,
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
			res, err := RF.Tracker.Unset(ctx, t.Abs)
			if err != nil {
				return err
			}
			RF.Printer.PrintResult(t, res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}
