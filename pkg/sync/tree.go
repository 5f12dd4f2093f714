package sync

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	mapset "github.com/deckarep/golang-set/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// FileAttributes contains the metadata used to decide whether a local file
// changed between two snapshots.
type FileAttributes struct {
	Digest  Digest
	Mode    os.FileMode
	Size    int64
	ModTime time.Time
}

// Equal returns whether two files are equal (i.e. whether a sync is necessary).
func (f FileAttributes) Equal(other FileAttributes) bool {
	return f.Digest == other.Digest &&
		f.Mode == other.Mode &&
		f.Size == other.Size &&
		f.ModTime.Equal(other.ModTime)
}

// A LocalFile is a file that exists on the user's machine.
type LocalFile struct {
	// Path is the slash separated path of the file relative to the directory
	// being pushed. It's the path the server knows the file by.
	Path string

	// ContentsPath is the path that can be opened to read the file.
	ContentsPath string

	FileAttributes
}

// LocalSnapshot is the state of the directory being pushed at a point in
// time.
type LocalSnapshot struct {
	Files map[string]LocalFile
	Dirs  mapset.Set[string]
}

// NewLocalSnapshot returns an empty snapshot.
func NewLocalSnapshot() LocalSnapshot {
	return LocalSnapshot{
		Files: map[string]LocalFile{},
		Dirs:  mapset.NewThreadUnsafeSet[string](),
	}
}

// Entries returns the full tree declaration for a structural sync, sorted by
// path.
func (snapshot LocalSnapshot) Entries() []PathEntry {
	var entries []PathEntry
	for dir := range snapshot.Dirs.Iter() {
		entries = append(entries, PathEntry{Path: dir, IsDir: true})
	}
	for path := range snapshot.Files {
		entries = append(entries, PathEntry{Path: path})
	}
	sortEntries(entries)
	return entries
}

// SortedFiles returns the files in the snapshot sorted by path.
func (snapshot LocalSnapshot) SortedFiles() []LocalFile {
	var files []LocalFile
	for _, f := range snapshot.Files {
		files = append(files, f)
	}
	sortFiles(files)
	return files
}

// Diff returns the structural changes needed to turn `prev` into
// `snapshot`, and the files whose contents have to be synced.
func (snapshot LocalSnapshot) Diff(prev LocalSnapshot) (changes ChangeSet, toSync []LocalFile) {
	for dir := range snapshot.Dirs.Difference(prev.Dirs).Iter() {
		changes.Created = append(changes.Created, PathEntry{Path: dir, IsDir: true})
	}
	for dir := range prev.Dirs.Difference(snapshot.Dirs).Iter() {
		changes.Deleted = append(changes.Deleted, PathEntry{Path: dir, IsDir: true})
	}

	for _, exp := range snapshot.Files {
		curr, ok := prev.Files[exp.Path]
		if !ok || !curr.FileAttributes.Equal(exp.FileAttributes) {
			toSync = append(toSync, exp)
		}
	}

	for _, curr := range prev.Files {
		if _, ok := snapshot.Files[curr.Path]; !ok {
			changes.Deleted = append(changes.Deleted, PathEntry{Path: curr.Path})
		}
	}

	sortEntries(changes.Created)
	sortEntries(changes.Deleted)
	sortFiles(toSync)
	return changes, toSync
}

func sortEntries(entries []PathEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}

func sortFiles(files []LocalFile) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
}

// digestCacheSize is the number of file digests remembered between
// snapshots.
const digestCacheSize = 8192

type digestCacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Snapshotter takes snapshots of a local directory. Files whose size and
// modification time haven't changed since the last snapshot aren't hashed
// again.
type Snapshotter struct {
	fs       afero.Fs
	root     string
	excludes []string
	hasher   Hasher
	digests  *lru.Cache[digestCacheKey, Digest]
}

// NewSnapshotter returns a Snapshotter for the directory at `root`. Paths
// matching any of the `excludes` globs (in doublestar syntax, relative to
// root) are left out of every snapshot. A pattern without a slash matches
// the base name at any depth.
func NewSnapshotter(fs afero.Fs, root string, hasher Hasher, excludes []string) (*Snapshotter, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.New("invalid exclude pattern %q", pattern)
		}
	}

	fi, err := fs.Stat(root)
	if err != nil {
		return nil, errors.WithContext(err, "stat root")
	}
	if !fi.IsDir() {
		return nil, errors.NewFriendlyError("%s is not a directory", root)
	}

	digests, err := lru.New[digestCacheKey, Digest](digestCacheSize)
	if err != nil {
		return nil, errors.WithContext(err, "create digest cache")
	}

	return &Snapshotter{
		fs:       fs,
		root:     root,
		excludes: excludes,
		hasher:   hasher,
		digests:  digests,
	}, nil
}

// Root returns the directory being snapshotted.
func (s *Snapshotter) Root() string {
	return s.root
}

// Excluded returns whether the slash separated relative path matches one of
// the exclude patterns.
func (s *Snapshotter) Excluded(relPath string) bool {
	for _, pattern := range s.excludes {
		name := relPath
		if !strings.Contains(pattern, "/") {
			name = path.Base(relPath)
		}

		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Snapshot walks the root and returns every directory and regular file in
// it. Other file types, such as symlinks, are skipped, and so are files that
// are removed while the walk is in progress.
func (s *Snapshotter) Snapshot() (LocalSnapshot, error) {
	snapshot := NewLocalSnapshot()
	err := afero.Walk(s.fs, s.root, func(contentsPath string, fi os.FileInfo, err error) error {
		if err != nil {
			if contentsPath != s.root && os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if contentsPath == s.root {
			return nil
		}

		relPath, err := filepath.Rel(s.root, contentsPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return errors.WithContext(err, "normalize path")
		}
		relPath = filepath.ToSlash(relPath)

		if s.Excluded(relPath) {
			if fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case fi.IsDir():
			snapshot.Dirs.Add(relPath)
		case fi.Mode().IsRegular():
			digest, ok, err := s.digest(contentsPath, fi)
			if err != nil {
				return errors.WithContext(err, relPath)
			}
			if !ok {
				log.WithField("path", relPath).Debug("File removed during snapshot")
				return nil
			}

			snapshot.Files[relPath] = LocalFile{
				Path:         relPath,
				ContentsPath: contentsPath,
				FileAttributes: FileAttributes{
					Digest:  digest,
					Mode:    fi.Mode(),
					Size:    fi.Size(),
					ModTime: fi.ModTime(),
				},
			}
		}
		return nil
	})
	if err != nil {
		return LocalSnapshot{}, err
	}
	return snapshot, nil
}

// digest returns the digest of the file at `contentsPath`, and false if the
// file no longer exists.
func (s *Snapshotter) digest(contentsPath string, fi os.FileInfo) (Digest, bool, error) {
	key := digestCacheKey{
		path:    contentsPath,
		size:    fi.Size(),
		modTime: fi.ModTime().UnixNano(),
	}
	if digest, ok := s.digests.Get(key); ok {
		return digest, true, nil
	}

	digest, err := s.hasher.FileDigest(s.fs, contentsPath)
	if err != nil {
		return Digest{}, false, err
	}
	if digest == nil {
		return Digest{}, false, nil
	}

	s.digests.Add(key, *digest)
	return *digest, true, nil
}
