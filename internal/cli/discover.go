package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [dir]",
	Short: "List files matching the channel's glob patterns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		files, err := engine.Discover(dir, flagChannel)
		if err != nil {
			return err
		}

		for _, file := range files {
			fmt.Println(file)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
