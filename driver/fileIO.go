package driver

import (
	"os"

	"github.com/gofrs/flock"
)

// FileIO Standard file IO handle
type FileIO struct {
	// System file descriptor
	fd *os.File

	flk *flock.Flock

	// temp files are unlinked when the handle is closed
	removeOnClose bool
}

// NewFileIO opens fileName with a C-style mode string.
func NewFileIO(fileName string, mode string) (*FileIO, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	fd, err := os.OpenFile(fileName, flag, DataFilePerm)
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd}, nil
}

// WrapFile adopts an already-open descriptor. The caller must not keep
// using fd independently afterward.
func WrapFile(fd *os.File) *FileIO {
	return &FileIO{fd: fd}
}

// NewTempFile opens a fresh temporary file that is removed on Close.
func NewTempFile() (*FileIO, error) {
	fd, err := os.CreateTemp("", "fstream-*")
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd, removeOnClose: true}, nil
}

// File returns the wrapped descriptor.
func (f *FileIO) File() *os.File {
	return f.fd
}

func (f *FileIO) Name() string {
	return f.fd.Name()
}

func (f *FileIO) Read(bytes []byte) (int, error) {
	return f.fd.Read(bytes)
}

func (f *FileIO) ReadAt(bytes []byte, offset int64) (int, error) {
	return f.fd.ReadAt(bytes, offset)
}

func (f *FileIO) Write(bytes []byte) (int, error) {
	return f.fd.Write(bytes)
}

func (f *FileIO) Seek(offset int64, whence int) (int64, error) {
	return f.fd.Seek(offset, whence)
}

func (f *FileIO) Sync() error {
	return f.fd.Sync()
}

func (f *FileIO) Close() error {
	if f.flk != nil {
		_ = f.flk.Unlock()
		f.flk = nil
	}
	name := f.fd.Name()
	err := f.fd.Close()
	if f.removeOnClose {
		_ = os.Remove(name)
	}
	return err
}

func (f *FileIO) Size() (int64, error) {
	stat, err := f.fd.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

func (f *FileIO) lock() *flock.Flock {
	if f.flk == nil {
		f.flk = flock.New(f.fd.Name())
	}
	return f.flk
}

// Lock takes an exclusive advisory lock on the file, blocking until acquired.
func (f *FileIO) Lock() error {
	return f.lock().Lock()
}

// TryLock attempts the exclusive lock without blocking.
func (f *FileIO) TryLock() (bool, error) {
	return f.lock().TryLock()
}

// Unlock releases the advisory lock, if held.
func (f *FileIO) Unlock() error {
	if f.flk == nil {
		return nil
	}
	return f.flk.Unlock()
}
