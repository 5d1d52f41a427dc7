package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/vq/internal/preview"
)

var previewFields string

var previewCmd = &cobra.Command{
	Use:   "preview <file> [key]",
	Short: "Render the value at a key through the channel's rules",
	Long: `Render the value at a key through the channel's extraction rules.
Without a key, every previewable key of the file is rendered in turn.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch previewFields {
		case "content", "metadata", "all":
		default:
			return fmt.Errorf("unknown fields %q (want content, metadata or all)", previewFields)
		}

		if len(args) == 2 {
			result, err := engine.Preview(args[0], args[1], flagChannel)
			if err != nil {
				return err
			}
			printPreview(args[1], result)
			return nil
		}

		previews, err := engine.PreviewFile(args[0], flagChannel)
		if err != nil {
			return err
		}
		for i, p := range previews {
			if i > 0 {
				fmt.Println()
			}
			printPreview(p.Path, p.Result)
		}
		return nil
	},
}

func printPreview(key string, result *preview.Result) {
	if previewFields != "content" {
		if result.Label != "" {
			fmt.Printf("%s  %s\n", labelColor(result.Label), dimColor(key))
		} else {
			fmt.Println(dimColor(key))
		}
		for _, entry := range result.Metadata {
			fmt.Printf("%s: %s\n", leafColor(entry.Key), entry.Value)
		}
	}

	if previewFields != "metadata" {
		fmt.Println(result.Content)
	}
}

func init() {
	previewCmd.Flags().StringVarP(&previewFields, "fields", "f", "all", "which fields to print: content, metadata or all")
	rootCmd.AddCommand(previewCmd)
}
