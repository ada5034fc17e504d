package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/mathpad/format"
)

func TestFileWatcherScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.la")
	writeFile(t, path, "2+3")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "1")

	w := New(dir, nil)
	var seen []Change
	fw := NewFileWatcher(w, func(c Change) { seen = append(seen, c) })

	changes := fw.Scan()
	if len(changes) != 1 || changes[0].Path != path {
		t.Fatalf("first scan = %v, want one change for %s", changes, path)
	}
	if got := format.Text(changes[0].Doc.Result.Simplified); got != "5" {
		t.Errorf("result = %q, want 5", got)
	}
	if len(seen) != 1 {
		t.Errorf("onChange called %d times, want 1", len(seen))
	}

	if changes := fw.Scan(); len(changes) != 0 {
		t.Errorf("unchanged scan = %v, want none", changes)
	}

	writeFile(t, path, "<1,2>+<3,4>")
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	changes = fw.Scan()
	if len(changes) != 1 {
		t.Fatalf("scan after edit = %v, want one change", changes)
	}
	if got := format.Text(changes[0].Doc.Result.Simplified); got != "<4, 6>" {
		t.Errorf("result = %q, want <4, 6>", got)
	}
	if changes[0].Doc.Version != 2 {
		t.Errorf("Version = %d, want 2", changes[0].Doc.Version)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	changes = fw.Scan()
	if len(changes) != 1 || changes[0].Doc != nil {
		t.Fatalf("scan after removal = %v, want one removal", changes)
	}
	if w.GetFile(path) != nil {
		t.Error("removed file still in workspace")
	}
}

func TestFileWatcherStartStop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.la"), "1")

	w := New(dir, nil)
	done := make(chan Change, 1)
	fw := NewFileWatcher(w, func(c Change) {
		select {
		case done <- c:
		default:
		}
	})
	fw.Start()
	defer fw.Stop()

	select {
	case c := <-done:
		if c.Doc == nil {
			t.Errorf("got removal for %s, want an update", c.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the initial scan")
	}

	fw.Stop()
}
