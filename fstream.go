package fstream

import (
	"github.com/go-git/go-billy/v5"

	"github.com/Kirov7/fstream/driver"
)

// Stream owns at most one driver.Handle and forwards the C-style I/O
// surface to it. The zero value is a valid empty stream.
//
// Ownership is exclusive: a handle must never be reachable from two live
// streams. Pass a Stream by pointer; hand a handle off with Release and
// Reset rather than by copying the struct.
type Stream struct {
	handle driver.Handle

	// sticky end-of-stream and error flags, cleared by ClearError
	eof bool
	err error

	// one byte of pushback for UnreadByte
	unreadByte byte
	hasUnread  bool
}

// New returns an empty stream owning no resource.
func New() *Stream {
	return &Stream{}
}

// NewStream adopts an already-open handle. The caller must not use the
// handle independently afterward.
func NewStream(h driver.Handle) *Stream {
	return &Stream{handle: h}
}

// Open opens path with a C-style mode string. On failure the returned
// stream is empty, observable only through IsValid.
func Open(path, mode string) *Stream {
	return New().Open(path, mode)
}

// OpenFile opens path with the driver selected in opt.
func OpenFile(path, mode string, opt OpenOptions) *Stream {
	h, err := driver.NewHandle(opt.Driver, path, mode)
	if err != nil {
		return &Stream{}
	}
	return &Stream{handle: h}
}

// OpenMapped opens a read-only memory-mapped stream over path.
func OpenMapped(path string) *Stream {
	h, err := driver.NewMMap(path)
	if err != nil {
		return &Stream{}
	}
	return &Stream{handle: h}
}

// OpenIn opens path on a billy filesystem, such as memfs for in-memory
// streams or osfs for a rooted view of the disk.
func OpenIn(fsys billy.Filesystem, path, mode string) *Stream {
	h, err := driver.NewBillyIO(fsys, path, mode)
	if err != nil {
		return &Stream{}
	}
	return &Stream{handle: h}
}

// IsValid reports whether the stream owns a handle.
func (s *Stream) IsValid() bool {
	return s.handle != nil
}

// Get returns the owned handle without transferring ownership. It is nil
// for an empty stream.
func (s *Stream) Get() driver.Handle {
	return s.handle
}

// Reset closes the current handle, if any, and adopts h (which may be nil).
func (s *Stream) Reset(h driver.Handle) {
	if old := s.handle; old != nil {
		_ = old.Close()
	}
	s.handle = h
	s.clearState()
}

// Swap exchanges the owned handles and stream state of s and other.
// No resource is opened or closed.
func (s *Stream) Swap(other *Stream) {
	s.handle, other.handle = other.handle, s.handle
	s.eof, other.eof = other.eof, s.eof
	s.err, other.err = other.err, s.err
	s.unreadByte, other.unreadByte = other.unreadByte, s.unreadByte
	s.hasUnread, other.hasUnread = other.hasUnread, s.hasUnread
}

// Release relinquishes ownership of the handle without closing it and
// leaves the stream empty.
func (s *Stream) Release() driver.Handle {
	h := s.handle
	s.handle = nil
	s.clearState()
	return h
}

// Open closes any current handle and attempts to open path with a C-style
// mode string. On failure the stream is left empty. Returns s for chaining.
func (s *Stream) Open(path, mode string) *Stream {
	var h driver.Handle
	if fio, err := driver.NewFileIO(path, mode); err == nil {
		h = fio
	}
	s.Reset(h)
	return s
}

// Reopen reassociates the stream with path, closing the previous resource
// first. On failure the stream is left empty. Returns s for chaining.
func (s *Stream) Reopen(path, mode string) *Stream {
	return s.Open(path, mode)
}

// Close closes the handle and empties the stream. Closing an empty stream
// is a safe no-op, so a second Close never double-releases the resource.
func (s *Stream) Close() error {
	h := s.handle
	s.handle = nil
	s.clearState()
	if h == nil {
		return nil
	}
	return h.Close()
}

// Flush forces buffered writes of the underlying resource to stable storage.
func (s *Stream) Flush() error {
	if s.handle == nil {
		return ErrNotOpen
	}
	return s.handle.Sync()
}

func (s *Stream) clearState() {
	s.eof = false
	s.err = nil
	s.hasUnread = false
}
