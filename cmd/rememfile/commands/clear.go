package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"c"},
	Short:   "Remove all entries from the database",
	// 文件参数被忽略
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if RF == nil {
			return fmt.Errorf("app not initialized")
		}

		count, err := RF.Tracker.Clear(context.Background())
		if err != nil {
			return err
		}
		RF.Printer.PrintCleared(count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
