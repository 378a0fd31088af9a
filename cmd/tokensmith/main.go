package main

import (
	"os"

	"tokensmith.app/forge/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}
