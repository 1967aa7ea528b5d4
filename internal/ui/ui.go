package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
)

type Theme struct {
	NoColor bool
	NoEmoji bool
}

func (t Theme) Emoji(s string) string {
	if t.NoEmoji {
		return ""
	}
	return s + " "
}

// MoveLine renders one human-readable line for an outcome.
func (t Theme) MoveLine(o organize.Outcome) string {
	if o.Err != nil {
		tag := "failed"
		if !t.NoColor {
			tag = color.New(color.FgRed).Sprint(tag)
		}
		if o.DryRun {
			tag = "[dry] " + tag
		}
		return fmt.Sprintf("%s%s %s -> %s (%v)", t.Emoji("⚠️"), tag, o.Source, o.Dest, o.Err)
	}
	if o.DryRun {
		tag := "[dry]"
		if !t.NoColor {
			tag = color.New(color.FgYellow).Sprint(tag)
		}
		return fmt.Sprintf("%s would move %s -> %s", tag, o.Source, o.Dest)
	}
	tag := "moved"
	if !t.NoColor {
		tag = color.New(color.FgGreen).Sprint(tag)
	}
	return fmt.Sprintf("%s%s %s -> %s", t.Emoji("📦"), tag, o.Source, o.Dest)
}

// PlanTable renders a dry-run plan as a table. Used on interactive terminals;
// plain MoveLine output covers everything else.
func PlanTable(w io.Writer, outcomes []organize.Outcome) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Source", "Destination", "Size"})
	for _, o := range outcomes {
		tw.AppendRow(table.Row{o.Source, o.Dest, HumanBytes(o.Size)})
	}
	tw.Render()
}

func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n >= unit*div && exp < 5 {
		div *= unit
		exp++
	}
	value := float64(n) / float64(div)
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f %s", value, units[exp])
}
