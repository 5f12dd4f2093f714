package fswatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

var fs = afero.NewOsFs()

// Excluder returns whether the slash separated path, relative to the watched
// root, should be ignored.
type Excluder func(relPath string) bool

// Watch watches for changes to the directory tree at `root`. It sends an
// event on the returned channel whenever something below `root` changes.
// Events that arrive while the previous one hasn't been consumed yet are
// combined.
//
// Directories created after the watch starts are watched as well.
func Watch(root string, excluded Excluder) (chan struct{}, error) {
	pathsToWatch, err := getPathsToWatch(root, excluded)
	if err != nil {
		return nil, errors.WithContext(err, "get paths")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WithContext(err, "create watcher")
	}

	for _, path := range pathsToWatch {
		if err := watcher.Add(path); err != nil {
			// Close the watcher so that we release the file handlers for the
			// previously added paths.
			if err := watcher.Close(); err != nil {
				log.WithError(err).Warn("Failed to close file watcher")
			}

			return nil, errors.WithContext(err, fmt.Sprintf("watch %q", path))
		}
	}

	go func() {
		for err := range watcher.Errors {
			log.WithError(err).Warn("File watcher error")
		}
	}()

	return combineUpdates(watcher.Events, func(event fsnotify.Event) {
		watchNewDir(watcher, root, excluded, event)
	}), nil
}

func combineUpdates(updates <-chan fsnotify.Event, onEvent func(fsnotify.Event)) chan struct{} {
	combined := make(chan struct{}, 1)
	go func() {
		for event := range updates {
			if onEvent != nil {
				onEvent(event)
			}

			select {
			case combined <- struct{}{}:
			default:
			}
		}
	}()
	return combined
}

// pathAdder is the part of fsnotify.Watcher used to start watching new
// directories.
type pathAdder interface {
	Add(string) error
}

func watchNewDir(watcher pathAdder, root string, excluded Excluder, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}

	fi, err := fs.Stat(event.Name)
	if err != nil || !fi.IsDir() {
		return
	}

	// The new directory may already contain subdirectories by the time we
	// get to it, e.g. if it was moved into the tree.
	paths, err := getChildren(root, event.Name, excluded)
	if err != nil {
		log.WithError(err).WithField("path", event.Name).Warn("Failed to watch new directory")
		return
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			log.WithError(err).WithField("path", path).Warn("Failed to watch new directory")
		}
	}
}

// getPathsToWatch returns `root` and every directory below it that isn't
// excluded. fsnotify doesn't watch directories recursively, but a watch on a
// directory reports changes to the files inside it.
func getPathsToWatch(root string, excluded Excluder) ([]string, error) {
	fi, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound{Path: root}
		}
		return nil, errors.WithContext(err, "stat")
	}

	if !fi.IsDir() {
		return nil, errors.NewFriendlyError("%s is not a directory", root)
	}
	return getChildren(root, root, excluded)
}

// getChildren returns `dir` and the directories below it, unless they're
// excluded.
func getChildren(root, dir string, excluded Excluder) (paths []string, err error) {
	err = afero.Walk(fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return errors.WithContext(err, "walk error")
		}

		if !fi.IsDir() {
			return nil
		}

		if path != root {
			// Exclusions are relative to the root so that the rules are the
			// same no matter where the command runs from.
			relativePath, err := filepath.Rel(root, path)
			if err != nil || strings.HasPrefix(relativePath, "..") {
				return errors.WithContext(err, "normalized path")
			}

			if excluded != nil && excluded(filepath.ToSlash(relativePath)) {
				return filepath.SkipDir
			}
		}

		paths = append(paths, path)
		return nil
	})
	return paths, err
}

// Run calls `sync` immediately, and then again after each event from
// `events` and every `pollInterval`, until `ctx` is cancelled. Polling
// catches changes that the watcher misses, or all changes if `events` is
// nil.
func Run(ctx context.Context, clock clockwork.Clock, events <-chan struct{},
	pollInterval time.Duration, sync func()) {

	for {
		sync()

		select {
		case <-ctx.Done():
			return
		case <-events:
		case <-clock.After(pollInterval):
		}
	}
}
