package main

import (
	"os"

	"github.com/firefly-engineering/spaces/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
