package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

func runInteractive() int {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		printRootUsage()
		return 2
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "home error: %v\n", err)
		return 1
	}
	downloads := filepath.Join(home, "Downloads")
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("afo - quick start")
	fmt.Println("1) Preview sorting a folder (dry run)")
	fmt.Println("2) Sort a folder now")
	fmt.Println("3) Watch a folder (auto-sort)")
	fmt.Println("4) Help")
	fmt.Print("Select [1-4, default 1]: ")
	choice := readLineOrDefault(reader, "1")

	switch choice {
	case "1":
		fmt.Printf("Path [default: %s]: ", downloads)
		path := readLineOrDefault(reader, downloads)
		return runOrganize([]string{path})
	case "2":
		fmt.Printf("Path [default: %s]: ", downloads)
		path := readLineOrDefault(reader, downloads)
		return runOrganize([]string{"--apply", path})
	case "3":
		fmt.Printf("Path to watch [default: %s]: ", downloads)
		path := readLineOrDefault(reader, downloads)
		fmt.Print("Apply moves? [y/N]: ")
		applyAnswer := strings.ToLower(readLineOrDefault(reader, "n"))
		if applyAnswer == "y" || applyAnswer == "yes" {
			return runWatch([]string{"--apply", path})
		}
		return runWatch([]string{path})
	case "4":
		printRootUsage()
		return 0
	default:
		fmt.Fprintln(os.Stderr, "invalid choice")
		return 2
	}
}

func readLineOrDefault(r *bufio.Reader, fallback string) string {
	line, err := r.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
