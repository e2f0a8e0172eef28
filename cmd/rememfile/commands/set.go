package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:     "set [files...]",
	Aliases: []string{"s"},
	Short:   "Store the hash sums of the given files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if RF == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx := context.Background()

		ts, err := targets(args)
		if err != nil {
			return err
		}

		// 逐个处理：hash -> 写库 -> 输出，然后才轮到下一个
		for _, t := range ts {
			res, err := RF.Tracker.Set(ctx, t.Abs)
			if err != nil {
				return err
			}
			RF.Printer.PrintResult(t, res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
