package fstream

import (
	"fmt"
	"io"
)

// Read fills p from the stream, consuming any pushback byte first.
// Reaching the end of the stream sets the sticky EOF flag; any other
// failure sets the sticky error.
func (s *Stream) Read(p []byte) (int, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	if len(p) == 0 {
		return 0, nil
	}
	var n int
	if s.hasUnread {
		p[0] = s.unreadByte
		s.hasUnread = false
		n = 1
		if len(p) == 1 {
			return n, nil
		}
		p = p[1:]
	}
	m, err := s.handle.Read(p)
	n += m
	if err != nil {
		if err == io.EOF {
			s.eof = true
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
		s.err = err
		return n, err
	}
	return n, nil
}

// Write writes p at the current position. Failures set the sticky error.
func (s *Stream) Write(p []byte) (int, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	n, err := s.handle.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// ReadByte reads and returns a single byte.
func (s *Stream) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := s.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

// WriteByte writes a single byte.
func (s *Stream) WriteByte(c byte) error {
	buf := [1]byte{c}
	n, err := s.Write(buf[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// WriteString writes str and returns the number of bytes written.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// UnreadByte pushes c back onto the stream; the next read returns it
// first. Only one byte of pushback is available. Clears the EOF flag.
func (s *Stream) UnreadByte(c byte) error {
	if s.handle == nil {
		return ErrNotOpen
	}
	if s.hasUnread {
		return ErrPushbackFull
	}
	s.unreadByte = c
	s.hasUnread = true
	s.eof = false
	return nil
}

// ReadLine reads bytes until a newline is consumed, limit bytes have been
// read, or the stream ends. The newline, if found, is kept. A limit of
// zero or less means no limit. When nothing could be read, the underlying
// error is returned with a nil slice.
func (s *Stream) ReadLine(limit int) ([]byte, error) {
	if s.handle == nil {
		return nil, ErrNotOpen
	}
	var line []byte
	for limit <= 0 || len(line) < limit {
		c, err := s.ReadByte()
		if err != nil {
			if len(line) > 0 {
				return line, nil
			}
			return nil, err
		}
		line = append(line, c)
		if c == '\n' {
			break
		}
	}
	return line, nil
}

// Printf writes formatted output to the stream.
func (s *Stream) Printf(format string, args ...any) (int, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	return fmt.Fprintf(s, format, args...)
}

// Scanf reads formatted input from the stream.
func (s *Stream) Scanf(format string, args ...any) (int, error) {
	if s.handle == nil {
		return 0, ErrNotOpen
	}
	return fmt.Fscanf(s, format, args...)
}

// IsAtEnd reports whether a read has attempted to pass the end of the
// stream since the flag was last cleared.
func (s *Stream) IsAtEnd() bool {
	return s.eof
}

// HasError reports whether a sticky I/O error has been recorded.
func (s *Stream) HasError() bool {
	return s.err != nil
}

// Err returns the sticky I/O error, if any.
func (s *Stream) Err() error {
	return s.err
}

// ClearError resets the sticky end-of-stream and error flags.
func (s *Stream) ClearError() {
	s.eof = false
	s.err = nil
}
