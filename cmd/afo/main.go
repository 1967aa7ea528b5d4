package main

import (
	"os"

	"github.com/the-hitesh/auto-file-organizer/internal/commands"
)

func main() {
	os.Exit(commands.Run(os.Args))
}
