package infrastructure

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// BlobWatcher observes the file backing the share-record blob and
// invokes onChange when another process rewrites it. The file store is
// last-write-wins with no cross-process locking, so this is how a
// long-running server notices edits made behind its back.
type BlobWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	log      *zap.Logger
	stopCh   chan struct{}
}

func NewBlobWatcher(path string, onChange func(), log *zap.Logger) (*BlobWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// watch the directory: editors typically replace the file, and a
	// watch on the file itself dies with the old inode
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &BlobWatcher{
		watcher:  watcher,
		path:     path,
		onChange: onChange,
		log:      log.Named("blobwatch"),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start runs the watch loop until Stop is called.
func (w *BlobWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.log.Debug("share blob changed on disk", zap.String("op", event.Op.String()))
					w.onChange()
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch error", zap.Error(err))
			case <-w.stopCh:
				return
			}
		}
	}()
}

func (w *BlobWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}
