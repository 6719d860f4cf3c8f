package main

import (
	"os"

	"github.com/visual-poker/pokerxl/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
