package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List configured channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := engine.Config()

		names := make([]string, 0, len(cfg.Channels))
		for name := range cfg.Channels {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ch := cfg.Channels[name]

			marker := " "
			if name == cfg.DefaultChannel {
				marker = "*"
			}

			state := ""
			if !ch.IsEnabled() {
				state = dimColor("  (disabled)")
			}

			fmt.Printf("%s %s  %s%s\n",
				marker,
				containerColor(name),
				dimColor(fmt.Sprintf("%d globs, %d rules", len(ch.GlobPatterns), len(ch.Rules))),
				state,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(channelsCmd)
}
