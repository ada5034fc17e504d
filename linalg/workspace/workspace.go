package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/project"
)

var log = commonlog.GetLogger("mathpad.workspace")

// Workspace holds the latest evaluation of every known document. Each update
// re-runs the whole pipeline and replaces the previous result.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	config  *project.Config
	docs    map[string]*Document
}

type Document struct {
	Path    string
	Version int
	Content string
	Result  *linalg.Result
}

func New(rootDir string, config *project.Config) *Workspace {
	if config == nil {
		config = project.DefaultConfig()
	}
	return &Workspace{
		rootDir: rootDir,
		config:  config,
		docs:    make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) Config() *project.Config {
	return w.config
}

// ScanAll evaluates every source file below the root directory. Directories
// starting with a dot are skipped.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.config.HasSourceExt(path) {
			if err := w.ScanFile(path); err != nil {
				log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, string(content))
	return nil
}

// UpdateFile evaluates content and stores it under path, bumping the
// document version.
func (w *Workspace) UpdateFile(path string, content string) *Document {
	result := linalg.FromSource(content)

	w.mu.Lock()
	defer w.mu.Unlock()

	version := 1
	if prev, ok := w.docs[path]; ok {
		version = prev.Version + 1
	}
	return w.storeLocked(path, version, content, result)
}

// SetFile stores content under an explicit version, as reported by an
// editor. Updates older than the stored version are ignored.
func (w *Workspace) SetFile(path string, version int, content string) *Document {
	result := linalg.FromSource(content)

	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.docs[path]; ok && prev.Version > version {
		log.Debugf("dropping stale update for %s: version %d < %d", path, version, prev.Version)
		return prev
	}
	return w.storeLocked(path, version, content, result)
}

func (w *Workspace) storeLocked(path string, version int, content string, result *linalg.Result) *Document {
	doc := &Document{
		Path:    path,
		Version: version,
		Content: content,
		Result:  result,
	}
	w.docs[path] = doc
	log.Debugf("evaluated %s (version %d, %d diagnostics)", path, version, len(result.Diagnostics))
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// Paths returns the paths of all documents in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.docs))
	for path := range w.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
