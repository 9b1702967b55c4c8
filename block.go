package fstream

import (
	"io"
	"unsafe"
)

// Scalar restricts block and value I/O to fixed-width numeric types whose
// in-memory layout is the on-stream layout.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ReadBlock reads up to count values of T in host memory order and returns
// the values actually read. A short read yields a short slice, not an
// error; the stream's sticky flags record the cause. Allocation failure
// panics, as any allocation does.
func ReadBlock[T Scalar](s *Stream, count int) []T {
	if count <= 0 {
		return nil
	}
	buf := make([]T, count)
	size := int(unsafe.Sizeof(buf[0]))
	n := readFull(s, rawBytes(buf))
	return buf[:n/size]
}

// WriteBlock writes the values of buf in host memory order and returns the
// number of whole values written.
func WriteBlock[T Scalar](s *Stream, buf []T) int {
	if len(buf) == 0 {
		return 0
	}
	size := int(unsafe.Sizeof(buf[0]))
	n, _ := s.Write(rawBytes(buf))
	return n / size
}

// ReadValue reads a single T in host memory order. ok is false when fewer
// than a full value could be read; no partial value is exposed.
func ReadValue[T Scalar](s *Stream) (value T, ok bool) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	if readFull(s, b) != len(b) {
		var zero T
		return zero, false
	}
	return value, true
}

// WriteValue writes a single T in host memory order.
func WriteValue[T Scalar](s *Stream, value T) bool {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	n, err := s.Write(b)
	return err == nil && n == len(b)
}

// rawBytes reinterprets a scalar slice as its backing bytes.
func rawBytes[T Scalar](buf []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*int(unsafe.Sizeof(buf[0])))
}

// readFull reads until b is full or the stream ends, mirroring the
// whole-elements-transferred contract of block reads.
func readFull(s *Stream, b []byte) int {
	n, _ := io.ReadFull(s, b)
	return n
}
