// Package cli implements the vq command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jacoelho/vq/internal/config"
	"github.com/jacoelho/vq/internal/preview"
)

var (
	flagChannel string
	flagDebug   bool
	flagNoColor bool

	engine *preview.Engine
)

var rootCmd = &cobra.Command{
	Use:           "vq",
	Short:         "Preview and extract values from VCR-style YAML cassettes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}

		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}

		if flagDebug {
			if global := config.GlobalPath(); global != "" {
				fmt.Fprintf(os.Stderr, "config: global %s\n", global)
			}
			for _, src := range config.Sources(wd) {
				fmt.Fprintf(os.Stderr, "config: local %s\n", src)
			}
		}

		engine = preview.New(config.Load(wd))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagChannel, "channel", "c", "", "channel to use (default from configuration)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "print configuration provenance to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vq: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}
