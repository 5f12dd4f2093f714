package sync

import (
	"io"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// ChunkSource returns the chunks of a streamed file in arrival order. It
// returns io.EOF once the client has finished sending.
type ChunkSource func() ([]byte, error)

// ReceiveFile creates or truncates the file at `relative`, and appends every
// chunk returned by `next` to it. The file is synced to disk once `next`
// returns io.EOF.
//
// If receiving fails partway through, the partially written file is left in
// place.
func (r *Root) ReceiveFile(relative string, next ChunkSource) (UploadResult, error) {
	target, err := r.sanitizer.CleanEntry(relative)
	if err != nil {
		return UploadResult{}, err
	}
	if err := r.checkParent(target); err != nil {
		return UploadResult{}, err
	}

	r.index.Forget(target)
	f, err := r.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return UploadResult{}, errors.WithContext(err, "create")
	}
	defer f.Close()

	hash := r.hasher.newHash()
	w := io.MultiWriter(f, hash)
	result := UploadResult{Path: target}
	for {
		chunk, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return UploadResult{}, err
		}

		n, err := w.Write(chunk)
		result.BytesWritten += int64(n)
		if err != nil {
			return UploadResult{}, errors.WithContext(err, "write")
		}
	}

	if err := f.Sync(); err != nil {
		return UploadResult{}, errors.WithContext(err, "sync")
	}

	copy(result.Digest[:], hash.Sum(nil))
	r.index.Record(target, result.Digest)
	return result, nil
}

// FileInfo is an entry in a directory listing.
type FileInfo struct {
	Name string
	Size int64
}

// ListFiles returns the regular files directly inside the root, sorted by
// name.
func (r *Root) ListFiles() ([]FileInfo, error) {
	infos, err := afero.ReadDir(r.fs, r.Path())
	if err != nil {
		return nil, errors.WithContext(err, "read root")
	}

	var files []FileInfo
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileInfo{Name: info.Name(), Size: info.Size()})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// Delete removes the file or directory at `relative`. Directories are
// removed along with their contents.
func (r *Root) Delete(relative string) (string, error) {
	target, err := r.sanitizer.CleanEntry(relative)
	if err != nil {
		return "", err
	}

	fi, err := r.lstat(target)
	if os.IsNotExist(err) {
		return "", errors.FileNotFound{Path: relative}
	}
	if err != nil {
		return "", errors.WithContext(err, "stat")
	}
	return target, r.remove(target, fi.IsDir())
}
