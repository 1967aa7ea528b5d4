package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
	"github.com/the-hitesh/auto-file-organizer/internal/ui"
)

func runOrganize(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	apply := fs.Bool("apply", false, "actually move files (default is a dry run)")
	recursive := fs.Bool("recursive", false, "organize subfolders too, preserving their layout under each category")
	configPath := fs.String("config", "", "rules file (default ~/"+configFileName+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: afo run [--apply] [--recursive] [--config FILE] [--no-color] [--no-emoji] <path>")
		return 2
	}
	theme := applyCommonFlags(common)

	root, err := expandPath(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "path error: %v\n", err)
		return 1
	}
	rules, err := loadRules(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	mode := "dry-run"
	if *apply {
		mode = "apply"
	}
	fmt.Printf("%s on %s (recursive=%v)\n", mode, root, *recursive)

	outcomes, err := organize.Organize(root, rules, organize.Options{
		DryRun:    !*apply,
		Recursive: *recursive,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "organize error: %v\n", err)
		return 1
	}
	if len(outcomes) == 0 {
		fmt.Println("No files found. Nothing to do.")
		return 0
	}

	if !*apply && isatty.IsTerminal(os.Stdout.Fd()) {
		ui.PlanTable(os.Stdout, outcomes)
	} else {
		for _, o := range outcomes {
			fmt.Println(theme.MoveLine(o))
		}
	}

	moved, failed := tally(outcomes)
	if *apply {
		fmt.Printf("done: %d moved, %d failed\n", moved, failed)
	} else {
		fmt.Printf("plan: %d files would move\n", moved)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func tally(outcomes []organize.Outcome) (moved, failed int) {
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			continue
		}
		moved++
	}
	return moved, failed
}
