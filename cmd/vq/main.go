package main

import (
	"os"

	"github.com/jacoelho/vq/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
