package client

import (
	"io"
	"os"
	goSync "sync"
	"sync/atomic"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
)

// Pusher makes the server's copy of a local directory match the local one.
type Pusher struct {
	client      Client
	fs          afero.Fs
	snapshotter *sync.Snapshotter
	blockSize   int
	workers     int

	// prev is the last snapshot that was pushed successfully.
	prev     sync.LocalSnapshot
	pushed   bool
	prevLock goSync.Mutex
}

// PushStats summarizes the work done by a push.
type PushStats struct {
	// Unchanged is the number of files the server already had. This
	// includes files that the server copied from another path.
	Unchanged int64

	// Patched is the number of files that were updated by sending the
	// changed blocks.
	Patched int64

	// Uploaded is the number of files that were sent in full.
	Uploaded int64

	// Skipped is the number of files that changed or disappeared while they
	// were being pushed. They're pushed again by the next call to PushChanges.
	Skipped int64

	BytesSent int64
}

// NewPusher returns a Pusher that pushes the directory tracked by
// `snapshotter` using `workers` concurrent file syncs.
func NewPusher(client Client, fs afero.Fs, snapshotter *sync.Snapshotter,
	blockSize, workers int) *Pusher {

	if workers <= 0 {
		workers = 1
	}
	return &Pusher{
		client:      client,
		fs:          fs,
		snapshotter: snapshotter,
		blockSize:   blockSize,
		workers:     workers,
		prev:        sync.NewLocalSnapshot(),
	}
}

// Push declares the full local tree to the server, and then syncs the
// contents of every file.
func (p *Pusher) Push() (PushStats, error) {
	snapshot, err := p.snapshotter.Snapshot()
	if err != nil {
		return PushStats{}, errors.WithContext(err, "snapshot")
	}

	if err := p.client.SyncStructure(snapshot.Entries()); err != nil {
		return PushStats{}, errors.WithContext(err, "sync structure")
	}

	return p.syncFiles(snapshot, snapshot.SortedFiles())
}

// PushChanges pushes the changes made since the last successful push. It
// falls back to a full Push if nothing was pushed yet.
func (p *Pusher) PushChanges() (PushStats, error) {
	p.prevLock.Lock()
	prev, pushed := p.prev, p.pushed
	p.prevLock.Unlock()

	if !pushed {
		return p.Push()
	}

	snapshot, err := p.snapshotter.Snapshot()
	if err != nil {
		return PushStats{}, errors.WithContext(err, "snapshot")
	}

	changes, toSync := snapshot.Diff(prev)
	if len(changes.Created) > 0 || len(changes.Deleted) > 0 {
		if err := p.client.DiffStructure(changes); err != nil {
			return PushStats{}, errors.WithContext(err, "sync structure changes")
		}
		log.WithFields(log.Fields{
			"created": len(changes.Created),
			"deleted": len(changes.Deleted),
		}).Debug("Pushed structure changes")
	}

	return p.syncFiles(snapshot, toSync)
}

func (p *Pusher) syncFiles(snapshot sync.LocalSnapshot, files []sync.LocalFile) (PushStats, error) {
	var stats PushStats
	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			err := p.syncFile(f, &stats)
			if errors.Is(err, errors.ErrFileChanged) {
				log.WithField("path", f.Path).Warn(
					"File changed while it was being pushed. It will be pushed again.")
				atomic.AddInt64(&stats.Skipped, 1)
				return nil
			}
			return errors.WithContext(err, f.Path)
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	// Skipped files are recorded with the attributes they had when the
	// snapshot was taken. If they changed since, the next snapshot won't
	// match and they'll be pushed again.
	p.prevLock.Lock()
	p.prev = snapshot
	p.pushed = true
	p.prevLock.Unlock()

	log.WithFields(log.Fields{
		"unchanged": stats.Unchanged,
		"patched":   stats.Patched,
		"uploaded":  stats.Uploaded,
		"skipped":   stats.Skipped,
		"sent":      humanize.Bytes(uint64(stats.BytesSent)),
	}).Debug("Pushed file contents")
	return stats, nil
}

func (p *Pusher) syncFile(f sync.LocalFile, stats *PushStats) error {
	remote, err := p.client.GetChecksum(f.Path, p.blockSize, f.Digest)
	if err != nil {
		return errors.WithContext(err, "get checksum")
	}

	if remote.Synced {
		atomic.AddInt64(&stats.Unchanged, 1)
		return nil
	}

	local, err := p.fs.Open(f.ContentsPath)
	if err != nil {
		if os.IsNotExist(err) {
			// The file was removed after the snapshot was taken. These are
			// usually temporary files like vim's .swp files.
			return errors.ErrFileChanged
		}
		return errors.WithContext(err, "open")
	}
	defer local.Close()

	if len(remote.Checksums) == 0 {
		// There's nothing on the server to diff against, so stream the
		// whole file.
		counter := &countingReader{r: local}
		if err := p.client.AddBook(f.Path, counter); err != nil {
			return errors.WithContext(err, "upload")
		}
		atomic.AddInt64(&stats.Uploaded, 1)
		atomic.AddInt64(&stats.BytesSent, counter.n)
		return nil
	}

	digest := f.Digest
	written, err := p.client.UploadBlocks(sync.UploadMetadata{
		Path:      f.Path,
		BlockSize: p.blockSize,
		Size:      f.Size,
		Checksum:  &digest,
	}, local, remote.Checksums)
	if err != nil {
		return errors.WithContext(err, "upload blocks")
	}

	atomic.AddInt64(&stats.Patched, 1)
	atomic.AddInt64(&stats.BytesSent, int64(written))
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
