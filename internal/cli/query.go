package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/vq/internal/bodyquery"
	"github.com/jacoelho/vq/internal/format"
)

var (
	queryRegex bool
	queryGroup int
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <key> <expression>",
	Short: "Run a JSONPath or regex query against the body at a key",
	Long: `Run a query against the scalar value at a concrete key. The
expression is a JSONPath by default; with --regex it is a regular
expression and --group selects the capture group to print.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := engine.Resolve(args[0], args[1])
		if err != nil {
			return err
		}
		body := []byte(format.Plain(value))

		if queryRegex {
			out, err := bodyquery.Regex(body, args[2], queryGroup)
			if err != nil {
				return err
			}
			fmt.Println(engine.Redact(out))
			return nil
		}

		out, err := bodyquery.JSONPathString(body, args[2])
		if err != nil {
			return err
		}
		fmt.Println(engine.Redact(out))
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryRegex, "regex", false, "treat the expression as a regular expression")
	queryCmd.Flags().IntVar(&queryGroup, "group", 0, "capture group to print with --regex")
	rootCmd.AddCommand(queryCmd)
}
