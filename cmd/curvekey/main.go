package main

import (
	"os"

	"curvekey/cmd/curvekey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
