package fstream

import "io"

// Tell returns the current logical position, accounting for pushback.
func (s *Stream) Tell() (int64, error) {
	if s.handle == nil {
		return -1, ErrNotOpen
	}
	pos, err := s.handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, err
	}
	if s.hasUnread {
		pos--
	}
	return pos, nil
}

// Seek repositions the cursor; whence is io.SeekStart, io.SeekCurrent or
// io.SeekEnd. A successful seek discards pushback and clears the EOF flag.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.handle == nil {
		return -1, ErrNotOpen
	}
	if s.hasUnread && whence == io.SeekCurrent {
		// the logical position is one behind the physical one
		offset--
	}
	pos, err := s.handle.Seek(offset, whence)
	if err != nil {
		s.err = err
		return pos, err
	}
	s.hasUnread = false
	s.eof = false
	return pos, nil
}

// Rewind moves the cursor back to the start of the stream and clears the
// sticky flags.
func (s *Stream) Rewind() {
	if s.handle == nil {
		return
	}
	if _, err := s.handle.Seek(0, io.SeekStart); err != nil {
		s.err = err
		return
	}
	s.hasUnread = false
	s.ClearError()
}

// Position is an opaque stream position captured by (*Stream).Position and
// restored by SetPosition.
type Position struct {
	offset int64
}

// Position captures the current position for a later SetPosition.
func (s *Stream) Position() (Position, error) {
	off, err := s.Tell()
	if err != nil {
		return Position{}, err
	}
	return Position{offset: off}, nil
}

// SetPosition restores a position captured by Position.
func (s *Stream) SetPosition(pos Position) error {
	_, err := s.Seek(pos.offset, io.SeekStart)
	return err
}

// ReadAt reads from an absolute offset without moving the cursor or
// consuming pushback.
func (s *Stream) ReadAt(p []byte, off int64) (int, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	return s.handle.ReadAt(p, off)
}

// Size returns the current size of the underlying resource.
func (s *Stream) Size() (int64, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	return s.handle.Size()
}

// Name returns the name of the underlying resource, or "" for an empty
// stream.
func (s *Stream) Name() string {
	if s.handle == nil {
		return ""
	}
	return s.handle.Name()
}
