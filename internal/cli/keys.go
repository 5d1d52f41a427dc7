package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keysFlat bool

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List every addressable key in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := engine.Keys(args[0])
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if keysFlat {
				fmt.Println(entry.Path)
				continue
			}

			indent := strings.Repeat("  ", entry.Depth-1)
			if entry.IsLeaf {
				fmt.Printf("%s%s  %s\n", indent, leafColor(entry.Display), dimColor(entry.Path))
			} else {
				fmt.Printf("%s%s\n", indent, containerColor(entry.Display))
			}
		}
		return nil
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysFlat, "flat", false, "print full key paths without indentation")
	rootCmd.AddCommand(keysCmd)
}
