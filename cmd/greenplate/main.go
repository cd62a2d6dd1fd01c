// Package main is the entry point for the greenplate CLI.
package main

import (
	"os"

	"github.com/greenplate/greenplate/cmd/greenplate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
