package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change describes a document that was added, re-evaluated or removed by a
// FileWatcher scan. Doc is nil for removals.
type Change struct {
	Path string
	Doc  *Document
}

// FileWatcher polls the workspace root and re-evaluates source files whose
// modification time changed.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(Change)
}

func NewFileWatcher(w *Workspace, onChange func(Change)) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: w.Config().Watch.Interval,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() { close(fw.stopCh) })
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.Scan()
		}
	}
}

// Scan performs one polling pass and reports every change it applied.
func (fw *FileWatcher) Scan() []Change {
	var changes []Change
	currentFiles := make(map[string]bool)
	root := fw.workspace.RootDir()

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fw.workspace.Config().HasSourceExt(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			if err := fw.workspace.ScanFile(path); err != nil {
				log.Warningf("rescan %s: %s", path, err)
				return nil
			}
			changes = append(changes, Change{Path: path, Doc: fw.workspace.GetFile(path)})
		}
		return nil
	})

	for path := range fw.modTimes {
		if !currentFiles[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
			changes = append(changes, Change{Path: path})
		}
	}

	if fw.onChange != nil {
		for _, c := range changes {
			fw.onChange(c)
		}
	}
	return changes
}
