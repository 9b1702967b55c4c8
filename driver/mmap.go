package driver

import (
	"io"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

// MMap is a read-only handle over a memory-mapped file. It keeps its own
// cursor so it can serve the same sequential surface as FileIO; every
// mutating operation reports ErrReadOnly.
type MMap struct {
	readAt   *mmap.ReaderAt
	fileName string
	off      int64
	flk      *flock.Flock
}

// NewMMap maps fileName for reading.
func NewMMap(fileName string) (*MMap, error) {
	readAt, err := mmap.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "mmap open")
	}
	return &MMap{readAt: readAt, fileName: fileName}, nil
}

func (m *MMap) Name() string {
	return m.fileName
}

func (m *MMap) Read(bytes []byte) (int, error) {
	n, err := m.readAt.ReadAt(bytes, m.off)
	m.off += int64(n)
	if err == io.EOF && n > 0 {
		// a partial read is not yet end-of-stream
		err = nil
	}
	return n, err
}

func (m *MMap) ReadAt(bytes []byte, offset int64) (int, error) {
	return m.readAt.ReadAt(bytes, offset)
}

func (m *MMap) Write([]byte) (int, error) {
	return 0, ErrReadOnly
}

func (m *MMap) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.off + offset
	case io.SeekEnd:
		abs = int64(m.readAt.Len()) + offset
	default:
		return 0, errors.Errorf("mmap seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("mmap seek: negative position")
	}
	m.off = abs
	return abs, nil
}

func (m *MMap) Sync() error {
	return nil
}

func (m *MMap) Close() error {
	if m.flk != nil {
		_ = m.flk.Unlock()
		m.flk = nil
	}
	return m.readAt.Close()
}

func (m *MMap) Size() (int64, error) {
	return int64(m.readAt.Len()), nil
}

func (m *MMap) lock() *flock.Flock {
	if m.flk == nil {
		m.flk = flock.New(m.fileName)
	}
	return m.flk
}

// Lock takes a shared advisory lock; the mapping never writes.
func (m *MMap) Lock() error {
	return m.lock().RLock()
}

// TryLock attempts the shared lock without blocking.
func (m *MMap) TryLock() (bool, error) {
	return m.lock().TryRLock()
}

// Unlock releases the advisory lock, if held.
func (m *MMap) Unlock() error {
	if m.flk == nil {
		return nil
	}
	return m.flk.Unlock()
}
