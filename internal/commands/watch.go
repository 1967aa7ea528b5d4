package commands

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
	"github.com/the-hitesh/auto-file-organizer/internal/singleinstance"
	"github.com/the-hitesh/auto-file-organizer/internal/watch"
)

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	apply := fs.Bool("apply", false, "actually move files (default is a dry run)")
	configPath := fs.String("config", "", "rules file (default ~/"+configFileName+")")
	debounce := fs.Float64("debounce", 1.0, "seconds of quiet after the last event before organizing")
	duration := fs.Float64("duration", 0, "seconds to keep watching (0 = until interrupted)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: afo watch [--apply] [--config FILE] [--debounce SECONDS] [--duration SECONDS] [--no-color] [--no-emoji] <path>")
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

	ok, err := singleinstance.Acquire(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "instance guard failed: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "another watch session is already organizing %s\n", root)
		return 1
	}
	defer singleinstance.Release()

	session, err := watch.Start(watch.Config{
		Root:     root,
		Rules:    rules,
		DryRun:   !*apply,
		Debounce: time.Duration(*debounce * float64(time.Second)),
		OnEvent: func(op, path string) {
			fmt.Printf("event %s %s\n", op, path)
		},
		OnPassStart: func() {
			fmt.Println("quiet period over - organizing...")
		},
		OnPass: func(outcomes []organize.Outcome, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "pass failed: %v\n", err)
				return
			}
			for _, o := range outcomes {
				fmt.Println(theme.MoveLine(o))
			}
			moved, failed := tally(outcomes)
			fmt.Printf("pass done: %d handled, %d failed\n", moved, failed)
		},
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "watch start failed: %v\n", err)
		return 1
	}
	defer session.Stop()

	fmt.Printf("watching %s (debounce=%.1fs)\n", session.Root(), *debounce)
	if !*apply {
		fmt.Println("dry-run enabled; pass --apply to move files")
	}
	fmt.Println("press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	if *duration > 0 {
		select {
		case <-sig:
		case <-time.After(time.Duration(*duration * float64(time.Second))):
		}
	} else {
		<-sig
	}
	fmt.Println("stopping watcher")
	return 0
}
