package commands

import (
	"fmt"
	"os"

	"github.com/the-hitesh/auto-file-organizer/internal/meta"
)

func Run(args []string) int {
	if len(args) < 2 {
		return runInteractive()
	}

	sub := args[1]
	switch sub {
	case "help", "-h", "--help":
		printRootUsage()
		return 0
	case "run":
		return runOrganize(args[2:])
	case "watch":
		return runWatch(args[2:])
	case "version", "-v", "--version":
		fmt.Println("afo " + meta.Version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", sub)
		printRootUsage()
		return 2
	}
}

func printRootUsage() {
	fmt.Println("afo - auto file organizer")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  afo run [flags] <path>     Sort files in a folder into category subfolders")
	fmt.Println("  afo watch [flags] <path>   Watch a folder and auto-sort on changes")
	fmt.Println("")
	fmt.Println("Nothing is moved unless --apply is given; the default is a dry run.")
	fmt.Println("")
	fmt.Println("Shared per-command flags:")
	fmt.Println("  --apply              Actually move files instead of printing a plan")
	fmt.Println("  --config FILE        Rules file (default ~/" + configFileName + ")")
	fmt.Println("  --no-color           Disable ANSI colors")
	fmt.Println("  --no-emoji           Disable emoji in output")
	fmt.Println("")
}
