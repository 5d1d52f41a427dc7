package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var previewableCmd = &cobra.Command{
	Use:   "previewable <file>",
	Short: "List the keys governed by the channel's extraction rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := engine.PreviewableKeys(args[0], flagChannel)
		if err != nil {
			return err
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewableCmd)
}
