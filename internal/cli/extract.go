package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/vq/internal/format"
)

var extractFormat string

var extractCmd = &cobra.Command{
	Use:   "extract <file> <pattern>",
	Short: "Print every value a wildcard pattern designates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := engine.ExtractFormatted(args[0], args[1], extractFormat)
		if err != nil {
			return err
		}

		for i, content := range contents {
			if i > 0 {
				fmt.Println(dimColor("---"))
			}
			fmt.Println(content)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", format.NameYAML, "formatter for extracted values")
	rootCmd.AddCommand(extractCmd)
}
