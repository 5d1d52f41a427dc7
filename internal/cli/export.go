package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/vq/internal/export"
)

var (
	exportDir      string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Write every value the channel's wildcard rules designate to files",
	Long: `Write every value the channel's wildcard rules designate to one
file per value. Names are rendered from the naming template, slugged, and
numbered on collision. Template data: .File, .Key, .Label, .Index and
.Meta (the rule's metadata values, e.g. {{ index .Meta "request.method" }}).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter := export.New(engine)
		opts := export.Options{
			Dir:      exportDir,
			Channel:  flagChannel,
			Template: exportTemplate,
		}

		total := 0
		for _, file := range args {
			exported, err := exporter.File(file, opts)
			if err != nil {
				return err
			}
			for _, e := range exported {
				fmt.Printf("%s  %s\n", e.Path, dimColor(e.Key))
			}
			total += len(exported)
		}

		fmt.Printf("exported %d values\n", total)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "output directory")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "naming template (default "+export.DefaultTemplate+")")
	rootCmd.AddCommand(exportCmd)
}
