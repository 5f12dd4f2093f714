package sync

import (
	"fmt"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// PathEntry is a single member of the client's directory tree.
type PathEntry struct {
	Path  string
	IsDir bool
}

// ChangeSet is an incremental alternative to declaring the full tree.
type ChangeSet struct {
	Created []PathEntry
	Deleted []PathEntry
}

// Report lists the absolute paths that a structural operation created or
// removed.
type Report struct {
	Created []string
	Removed []string
}

// Reconcile makes the directory structure below the root match `entries`.
// Every directory entry is created if it's missing, and everything below the
// root that isn't listed in `entries` is removed. Files aren't created; their
// contents are synced separately. A listed path whose type on the server
// differs from the declared one is removed first, so that a file can become
// a directory and the other way around.
//
// The first failure aborts the reconciliation. Changes that were already made
// are not rolled back.
func (r *Root) Reconcile(entries []PathEntry) (Report, error) {
	keep := mapset.NewThreadUnsafeSet[string]()
	var declared []PathEntry
	for _, entry := range entries {
		path, err := r.sanitizer.CleanEntry(entry.Path)
		if err != nil {
			return Report{}, err
		}

		if keep.Add(path) {
			declared = append(declared, PathEntry{Path: path, IsDir: entry.IsDir})
		}
	}

	// Parents sort before their children, so a replaced parent is handled
	// before anything below it is looked at.
	sortEntries(declared)

	var report Report
	var dirs []string
	for _, entry := range declared {
		replaced, err := r.removeMismatched(entry.Path, entry.IsDir)
		if err != nil {
			return report, err
		}
		if replaced {
			report.Removed = append(report.Removed, entry.Path)
		}
		if entry.IsDir {
			dirs = append(dirs, entry.Path)
		}
	}

	for _, dir := range dirs {
		created, err := r.mkdirAll(dir)
		if err != nil {
			return report, err
		}
		if created {
			report.Created = append(report.Created, dir)
		}
	}

	stale, err := r.collectStale(keep)
	if err != nil {
		return report, errors.WithContext(err, "walk root")
	}

	for _, entry := range stale {
		if err := r.remove(entry.path, entry.isDir); err != nil {
			return report, err
		}
		report.Removed = append(report.Removed, entry.path)
	}
	return report, nil
}

type staleEntry struct {
	path  string
	isDir bool
}

// collectStale returns the entries below the root that aren't in `keep`. A
// stale directory is returned without its children, since removing it
// removes them as well. Nothing is removed during the walk.
func (r *Root) collectStale(keep mapset.Set[string]) ([]staleEntry, error) {
	root := r.Path()

	var stale []staleEntry
	err := afero.Walk(r.fs, root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == root || keep.Contains(path) {
			return nil
		}

		stale = append(stale, staleEntry{path: path, isDir: fi.IsDir()})
		if fi.IsDir() {
			return filepath.SkipDir
		}
		return nil
	})
	return stale, err
}

// ApplyChangeSet creates the directories in `changes.Created`, and removes
// every path in `changes.Deleted`. Removing a path that doesn't exist isn't
// an error, so applying the same change-set twice is harmless.
//
// A created path that exists with the other type is replaced. A deleted
// path that exists with the other type was replaced by a creation, and is
// left alone.
//
// All paths are checked before anything is changed. After that, the first
// failure aborts the remaining operations without undoing earlier ones.
func (r *Root) ApplyChangeSet(changes ChangeSet) (Report, error) {
	created, err := r.resolveAll(changes.Created)
	if err != nil {
		return Report{}, err
	}

	deleted, err := r.resolveAll(changes.Deleted)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for i, entry := range changes.Created {
		replaced, err := r.removeMismatched(created[i], entry.IsDir)
		if err != nil {
			return report, err
		}
		if replaced {
			report.Removed = append(report.Removed, created[i])
		}
		if !entry.IsDir {
			continue
		}

		madeDir, err := r.mkdirAll(created[i])
		if err != nil {
			return report, err
		}
		if madeDir {
			report.Created = append(report.Created, created[i])
		}
	}

	for i, entry := range changes.Deleted {
		fi, err := r.lstat(deleted[i])
		if err != nil && !os.IsNotExist(err) {
			return report, errors.WithContext(err, fmt.Sprintf("stat %s", deleted[i]))
		}
		if err == nil && fi.IsDir() != entry.IsDir {
			log.WithField("path", deleted[i]).Debug("Skipping removal of replaced path")
			continue
		}

		if err := r.remove(deleted[i], entry.IsDir); err != nil {
			return report, err
		}
		report.Removed = append(report.Removed, deleted[i])
	}
	return report, nil
}

func (r *Root) resolveAll(entries []PathEntry) ([]string, error) {
	var paths []string
	for _, entry := range entries {
		path, err := r.sanitizer.CleanEntry(entry.Path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// removeMismatched removes `path` if it exists but isn't of the declared
// type. It returns whether anything was removed.
func (r *Root) removeMismatched(path string, isDir bool) (bool, error) {
	fi, err := r.lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithContext(err, fmt.Sprintf("stat %s", path))
	}
	if fi.IsDir() == isDir {
		return false, nil
	}

	log.WithFields(log.Fields{
		"path":  path,
		"isDir": isDir,
	}).Debug("Replacing path of the wrong type")
	return true, r.remove(path, fi.IsDir())
}

// lstat doesn't follow a symlink at `path` when the filesystem supports it.
func (r *Root) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := r.fs.(afero.Lstater); ok {
		fi, _, err := lstater.LstatIfPossible(path)
		return fi, err
	}
	return r.fs.Stat(path)
}

// mkdirAll creates `dir` and its parents. It returns whether the directory
// had to be created.
func (r *Root) mkdirAll(dir string) (bool, error) {
	exists, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return false, errors.WithContext(err, fmt.Sprintf("stat %s", dir))
	}
	if exists {
		return false, nil
	}

	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return false, errors.WithContext(err, fmt.Sprintf("create directory %s", dir))
	}
	log.WithField("path", dir).Debug("Created directory")
	return true, nil
}

// remove removes `path` and evicts it from the index. Directories are removed
// recursively, and every index entry below them is evicted too.
func (r *Root) remove(path string, isDir bool) error {
	if isDir {
		if err := r.fs.RemoveAll(path); err != nil {
			return errors.WithContext(err, fmt.Sprintf("remove directory %s", path))
		}
		r.index.ForgetTree(path)
	} else {
		if err := r.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.WithContext(err, fmt.Sprintf("remove file %s", path))
		}
		r.index.Forget(path)
	}
	log.WithField("path", path).Debug("Removed path")
	return nil
}
