package main

import (
	"os"

	"github.com/SuperB747/walnutbook-sub002/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
