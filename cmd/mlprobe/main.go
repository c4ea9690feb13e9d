// Package main is the entry point for the mlprobe CLI.
package main

import (
	"os"

	"github.com/thoreinstein/mlprobe/cmd/mlprobe/commands"
)

func main() {
	os.Exit(commands.Execute())
}
