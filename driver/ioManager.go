package driver

import (
	"errors"
	"io"
)

const (
	DataFilePerm = 0644
)

var (
	ErrInvalidMode   = errors.New("invalid open mode string")
	ErrReadOnly      = errors.New("the handle is read only")
	ErrUnknownDriver = errors.New("unknown driver type")
)

// Handle is a native file-stream resource a Stream can own.
type Handle interface {
	// Read reads from the current cursor position
	io.Reader

	// Write writes at the current cursor position
	io.Writer

	// Seek repositions the cursor
	io.Seeker

	// ReadAt reads at an absolute offset without moving the cursor
	io.ReaderAt

	// Close releases the resource
	io.Closer

	// Name the name of the underlying resource
	Name() string

	// Sync Make data persistent
	Sync() error

	Size() (int64, error)
}

// Locker is implemented by handles that support advisory locking.
type Locker interface {
	Lock() error
	Unlock() error
}

// TryLocker is implemented by handles whose lock can be polled.
type TryLocker interface {
	Locker
	TryLock() (bool, error)
}

type HandleType = int8

const (
	// StandardIO opens a plain OS file handle
	StandardIO HandleType = iota

	// MMapIO opens a read-only memory-mapped handle
	MMapIO
)

// NewHandle Init Handle instance for the given driver type
func NewHandle(typ HandleType, fileName string, mode string) (Handle, error) {
	switch typ {
	case StandardIO:
		return NewFileIO(fileName, mode)
	case MMapIO:
		return NewMMap(fileName)
	default:
		return nil, ErrUnknownDriver
	}
}
