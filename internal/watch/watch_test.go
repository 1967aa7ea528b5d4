package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
)

func TestSessionOrganizesOnChange(t *testing.T) {
	root := t.TempDir()
	var passes atomic.Int32

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		Debounce: 100 * time.Millisecond,
		OnPass: func(outcomes []organize.Outcome, err error) {
			if err != nil {
				t.Errorf("pass error: %v", err)
			}
			passes.Add(1)
		},
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop()

	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "b.jpg"))

	moved := filepath.Join(root, "Documents", "a.pdf")
	waitForPath(t, moved)
	waitForPath(t, filepath.Join(root, "Images", "b.jpg"))

	// The organizer's own moves must not retrigger it indefinitely.
	time.Sleep(500 * time.Millisecond)
	if got := passes.Load(); got < 1 || got > 2 {
		t.Fatalf("pass count: got %d want 1 or 2", got)
	}
}

func TestSessionIgnoresCategoryEvents(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Documents"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	var passes atomic.Int32

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		Debounce: 50 * time.Millisecond,
		OnPass:   func([]organize.Outcome, error) { passes.Add(1) },
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop()

	writeFile(t, filepath.Join(root, "Documents", "sorted.pdf"))
	time.Sleep(300 * time.Millisecond)
	if got := passes.Load(); got != 0 {
		t.Fatalf("events inside a category folder triggered %d passes", got)
	}
}

func TestSessionFlush(t *testing.T) {
	root := t.TempDir()
	var passes atomic.Int32

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		Debounce: time.Hour,
		OnPass:   func([]organize.Outcome, error) { passes.Add(1) },
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop()

	writeFile(t, filepath.Join(root, "a.pdf"))
	waitFor(t, 2*time.Second, func() bool { return s.debounce.Pending() })

	s.Flush()
	if got := passes.Load(); got != 1 {
		t.Fatalf("pass count after flush: got %d want 1", got)
	}
	if _, err := os.Stat(filepath.Join(root, "Documents", "a.pdf")); err != nil {
		t.Fatalf("flush should have organized the file: %v", err)
	}
}

func TestSessionDryRun(t *testing.T) {
	root := t.TempDir()
	results := make(chan []organize.Outcome, 1)

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		DryRun:   true,
		Debounce: time.Hour,
		OnPass: func(outcomes []organize.Outcome, err error) {
			if err == nil {
				results <- outcomes
			}
		},
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop()

	writeFile(t, filepath.Join(root, "a.pdf"))
	waitFor(t, 2*time.Second, func() bool { return s.debounce.Pending() })
	s.Flush()

	select {
	case outcomes := <-results:
		if len(outcomes) != 1 || !outcomes[0].DryRun {
			t.Fatalf("unexpected outcomes: %+v", outcomes)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no pass reported")
	}
	if _, err := os.Stat(filepath.Join(root, "a.pdf")); err != nil {
		t.Fatalf("dry-run session must not move files: %v", err)
	}
}

func TestSessionSurvivesFailingPass(t *testing.T) {
	root := t.TempDir()
	// A regular file on the Documents name makes every pdf move fail.
	writeFile(t, filepath.Join(root, "Documents"))
	var passes, failures atomic.Int32

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		Debounce: 100 * time.Millisecond,
		OnPass: func(outcomes []organize.Outcome, err error) {
			passes.Add(1)
			for _, o := range outcomes {
				if o.Err != nil {
					failures.Add(1)
				}
			}
		},
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop()

	writeFile(t, filepath.Join(root, "a.pdf"))
	waitFor(t, 5*time.Second, func() bool { return failures.Load() >= 1 })

	// The failed pass must not terminate the session: a later change still
	// triggers a pass that organizes what it can.
	writeFile(t, filepath.Join(root, "b.jpg"))
	waitForPath(t, filepath.Join(root, "Images", "b.jpg"))
	if passes.Load() < 2 {
		t.Fatalf("pass count: got %d want at least 2", passes.Load())
	}
	if _, err := os.Stat(filepath.Join(root, "a.pdf")); err != nil {
		t.Fatalf("failing file must stay put: %v", err)
	}
}

func TestSessionStopCancelsPending(t *testing.T) {
	root := t.TempDir()
	var passes atomic.Int32

	s, err := Start(Config{
		Root:     root,
		Rules:    organize.DefaultRules(),
		Debounce: 200 * time.Millisecond,
		OnPass:   func([]organize.Outcome, error) { passes.Add(1) },
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	writeFile(t, filepath.Join(root, "a.pdf"))
	waitFor(t, 2*time.Second, func() bool { return s.debounce.Pending() })
	s.Stop()
	s.Stop() // idempotent

	time.Sleep(400 * time.Millisecond)
	if got := passes.Load(); got != 0 {
		t.Fatalf("stopped session ran %d passes", got)
	}
	if _, err := os.Stat(filepath.Join(root, "a.pdf")); err != nil {
		t.Fatalf("file must be untouched after stop: %v", err)
	}
}

func TestStartMissingRoot(t *testing.T) {
	_, err := Start(Config{
		Root:  filepath.Join(t.TempDir(), "nope"),
		Rules: organize.DefaultRules(),
	})
	if err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func waitForPath(t *testing.T, path string) {
	t.Helper()
	waitFor(t, 5*time.Second, func() bool {
		_, err := os.Stat(path)
		return err == nil
	})
}
