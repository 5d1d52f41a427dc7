package cli

import "github.com/fatih/color"

var (
	containerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	leafColor      = color.New(color.FgGreen).SprintFunc()
	labelColor     = color.New(color.FgYellow, color.Bold).SprintFunc()
	dimColor       = color.New(color.Faint).SprintFunc()
)
