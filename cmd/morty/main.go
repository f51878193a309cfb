package main

import (
	"os"

	"github.com/technopolitica/morty/cmd/morty/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
