package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
)

// Config describes one watch session. Callbacks are optional; they are invoked
// from the session's goroutines and must not block for long.
type Config struct {
	Root     string
	Rules    organize.Rules
	DryRun   bool
	Debounce time.Duration

	// OnEvent fires for each eligible raw filesystem event.
	OnEvent func(op, path string)
	// OnPassStart fires when a debounced trigger begins an organize pass.
	OnPassStart func()
	// OnPass reports the result of each triggered organize pass.
	OnPass func(outcomes []organize.Outcome, err error)
	// OnError reports watcher infrastructure errors that occur mid-session.
	OnError func(err error)
}

// Session watches a root recursively and debounces change events into
// organize passes. Passes triggered by the session are always recursive.
type Session struct {
	cfg        Config
	root       string
	categories map[string]struct{}
	watcher    *fsnotify.Watcher
	debounce   *Debouncer
	done       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// Start validates the root, sets up the recursive subscription and begins
// consuming events. Failure to establish the subscription means the session
// never starts.
func Start(cfg Config) (*Session, error) {
	root, err := filepath.Abs(filepath.Clean(cfg.Root))
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("watch target not usable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch target not a directory: %s", root)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = time.Second
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher setup: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		root:       root,
		categories: cfg.Rules.Categories(),
		watcher:    watcher,
		done:       make(chan struct{}),
	}
	s.debounce = NewDebouncer(cfg.Debounce, s.runPass)

	if err := s.addRecursive(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch add: %w", err)
	}

	s.wg.Add(1)
	go s.loop()
	return s, nil
}

// Stop cancels any pending trigger, tears down the subscription and waits for
// the event goroutine. A pass already in flight finishes on its own; no new
// one is scheduled after Stop begins.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.debounce.Stop()
		close(s.done)
		_ = s.watcher.Close()
		s.wg.Wait()
	})
}

// Flush synchronously runs a pending debounced pass now. Intended for tests
// and scripted shutdowns; no-op when nothing is pending.
func (s *Session) Flush() {
	s.debounce.Flush()
}

// Root returns the absolute organizing root of the session.
func (s *Session) Root() string {
	return s.root
}

func (s *Session) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handle(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			if s.cfg.OnError != nil {
				s.cfg.OnError(err)
			}
		}
	}
}

func (s *Session) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	// Events under a destination category are the organizer's own output;
	// reacting to them would retrigger forever.
	if !organize.Eligible(s.root, event.Name, s.categories) {
		return
	}
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		// New subdirectory: extend the subscription, but directory events
		// never trigger a pass.
		_ = s.addRecursive(event.Name)
		return
	}
	if s.cfg.OnEvent != nil {
		s.cfg.OnEvent(event.Op.String(), event.Name)
	}
	s.debounce.Trigger()
}

func (s *Session) runPass() {
	if s.cfg.OnPassStart != nil {
		s.cfg.OnPassStart()
	}
	outcomes, err := organize.Organize(s.root, s.cfg.Rules, organize.Options{
		DryRun:    s.cfg.DryRun,
		Recursive: true,
	})
	if s.cfg.OnPass != nil {
		s.cfg.OnPass(outcomes, err)
	}
}

// addRecursive subscribes to root and every non-category descendant
// directory. Unreadable directories and symlinks are skipped.
func (s *Session) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}
		if d.Type()&os.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != s.root && !organize.Eligible(s.root, path, s.categories) {
			return filepath.SkipDir
		}
		if err := s.watcher.Add(path); err != nil {
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return err
		}
		return nil
	})
}
