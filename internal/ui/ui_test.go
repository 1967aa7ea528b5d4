package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
)

func TestMoveLineModes(t *testing.T) {
	theme := Theme{NoColor: true, NoEmoji: true}

	dry := theme.MoveLine(organize.Outcome{Source: "/d/a.pdf", Dest: "/d/Documents/a.pdf", DryRun: true})
	if !strings.HasPrefix(dry, "[dry]") {
		t.Fatalf("dry line missing mode tag: %q", dry)
	}

	applied := theme.MoveLine(organize.Outcome{Source: "/d/a.pdf", Dest: "/d/Documents/a.pdf"})
	if !strings.HasPrefix(applied, "moved") {
		t.Fatalf("applied line missing mode tag: %q", applied)
	}

	failed := theme.MoveLine(organize.Outcome{Source: "/d/a.pdf", Dest: "/d/Documents/a.pdf", Err: errors.New("boom")})
	if !strings.HasPrefix(failed, "failed") {
		t.Fatalf("error line missing mode tag: %q", failed)
	}
	if !strings.Contains(failed, "boom") {
		t.Fatalf("error line missing cause: %q", failed)
	}
}

func TestHumanBytes(t *testing.T) {
	if got := HumanBytes(512); got != "512 B" {
		t.Fatalf("got %q want %q", got, "512 B")
	}
	if got := HumanBytes(2 * 1024 * 1024); got != "2.0 MB" {
		t.Fatalf("got %q want %q", got, "2.0 MB")
	}
}
