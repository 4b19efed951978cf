package document

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// File lock acquisition parameters. Another process holding the lock for
// longer than the timeout surfaces as an error rather than a hang.
const (
	lockTimeout       = 3 * time.Second
	lockRetryInterval = 100 * time.Millisecond
)

// File persists each document as <key>.json inside a data directory. Writes
// use the temp-file, fsync, rename pattern so a crash never leaves a
// half-written document behind.
//
// The mutex serializes goroutines of this process; the flock file guards
// against other processes pointed at the same directory. flock is per file
// descriptor, so it cannot replace the mutex in-process. Documents are small,
// so every operation simply takes the exclusive lock.
type File struct {
	mu      sync.Mutex
	dataDir string
	flock   *flock.Flock
}

// NewFile opens (creating if needed) dataDir as a file-backed store.
func NewFile(dataDir string) (*File, error) {
	if dataDir == "" {
		return nil, types.ErrDataDirEmpty
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &File{
		dataDir: dataDir,
		flock:   flock.New(filepath.Join(dataDir, ".lock")),
	}, nil
}

// Get returns the document stored in <key>.json. A missing or empty file
// reports ok=false.
func (f *File) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquire()
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	doc, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading document %s: %w", key, err)
	}
	if len(doc) == 0 {
		// A zero-byte file carries no document; treat it like an absent key.
		return nil, false, nil
	}
	return doc, true, nil
}

// Set atomically replaces <key>.json with doc.
func (f *File) Set(key string, doc []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	return writeFileAtomic(f.path(key), doc)
}

// Remove deletes <key>.json. Removing an absent key succeeds.
func (f *File) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing document %s: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dataDir, key+".json")
}

// acquire takes the cross-process lock, retrying until lockTimeout, and
// returns the unlock function.
func (f *File) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := f.flock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquiring file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("file lock held by another process")
	}
	return func() { _ = f.flock.Unlock() }, nil
}

// writeFileAtomic writes doc to path using the temp-file, fsync, rename
// pattern.
func writeFileAtomic(path string, doc []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".doc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
