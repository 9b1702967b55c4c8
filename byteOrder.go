package fstream

import (
	"encoding/binary"
	"io"
	"math/bits"
	"unsafe"
)

// ByteOrder selects how multi-byte unsigned integers on the stream are
// interpreted relative to the host.
type ByteOrder uint8

const (
	// LittleEndian converts from little-endian to host order.
	LittleEndian ByteOrder = iota
	// BigEndian converts from big-endian to host order.
	BigEndian
	// Host leaves the value in host order.
	Host
	// Swapped unconditionally reverses the byte order.
	Swapped
)

func (bo ByteOrder) String() string {
	switch bo {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	case Host:
		return "host"
	case Swapped:
		return "swapped"
	default:
		return "unknown"
	}
}

// UnsignedInt restricts the byte-order helpers to unsigned integer types
// of width 2, 4 or 8; any other operand type fails to compile. uint and
// uintptr are excluded because their width is platform-defined.
type UnsignedInt interface {
	~uint16 | ~uint32 | ~uint64
}

// ReadUint reads one unsigned integer of the width of T and converts it
// from order to host order. ok is false when fewer than the full width of
// bytes could be read; a short read never reaches the conversion.
func ReadUint[T UnsignedInt](s *Stream, order ByteOrder) (value T, ok bool) {
	size := int(unsafe.Sizeof(value))
	var buf [8]byte
	if _, err := io.ReadFull(s, buf[:size]); err != nil {
		return 0, false
	}
	return T(decodeUint(buf[:size], order)), true
}

// ReadUintLittle reads a little-endian unsigned integer and converts it to
// host order.
func ReadUintLittle[T UnsignedInt](s *Stream) (T, bool) {
	return ReadUint[T](s, LittleEndian)
}

// ReadUintBig reads a big-endian unsigned integer and converts it to host
// order.
func ReadUintBig[T UnsignedInt](s *Stream) (T, bool) {
	return ReadUint[T](s, BigEndian)
}

// ReadUintSwapped reads an unsigned integer and reverses its byte order.
func ReadUintSwapped[T UnsignedInt](s *Stream) (T, bool) {
	return ReadUint[T](s, Swapped)
}

// ReadUintHost reads an unsigned integer in host order.
func ReadUintHost[T UnsignedInt](s *Stream) (T, bool) {
	return ReadUint[T](s, Host)
}

// WriteUint writes v in order, the inverse conversion of ReadUint.
// ok is false when fewer than the full width of bytes could be written.
func WriteUint[T UnsignedInt](s *Stream, v T, order ByteOrder) bool {
	size := int(unsafe.Sizeof(v))
	var buf [8]byte
	encodeUint(buf[:size], uint64(v), order)
	n, err := s.Write(buf[:size])
	return err == nil && n == size
}

// WriteUintLittle writes v in little-endian order.
func WriteUintLittle[T UnsignedInt](s *Stream, v T) bool {
	return WriteUint(s, v, LittleEndian)
}

// WriteUintBig writes v in big-endian order.
func WriteUintBig[T UnsignedInt](s *Stream, v T) bool {
	return WriteUint(s, v, BigEndian)
}

// WriteUintSwapped writes v with its byte order reversed.
func WriteUintSwapped[T UnsignedInt](s *Stream, v T) bool {
	return WriteUint(s, v, Swapped)
}

func decodeUint(b []byte, order ByteOrder) uint64 {
	switch order {
	case LittleEndian:
		switch len(b) {
		case 2:
			return uint64(binary.LittleEndian.Uint16(b))
		case 4:
			return uint64(binary.LittleEndian.Uint32(b))
		default:
			return binary.LittleEndian.Uint64(b)
		}
	case BigEndian:
		switch len(b) {
		case 2:
			return uint64(binary.BigEndian.Uint16(b))
		case 4:
			return uint64(binary.BigEndian.Uint32(b))
		default:
			return binary.BigEndian.Uint64(b)
		}
	default:
		// Host and Swapped both start from the raw host-order value.
		var v uint64
		switch len(b) {
		case 2:
			v = uint64(binary.NativeEndian.Uint16(b))
		case 4:
			v = uint64(binary.NativeEndian.Uint32(b))
		default:
			v = binary.NativeEndian.Uint64(b)
		}
		if order == Swapped {
			v = reverseUint(v, len(b))
		}
		return v
	}
}

func encodeUint(b []byte, v uint64, order ByteOrder) {
	switch order {
	case LittleEndian:
		switch len(b) {
		case 2:
			binary.LittleEndian.PutUint16(b, uint16(v))
		case 4:
			binary.LittleEndian.PutUint32(b, uint32(v))
		default:
			binary.LittleEndian.PutUint64(b, v)
		}
	case BigEndian:
		switch len(b) {
		case 2:
			binary.BigEndian.PutUint16(b, uint16(v))
		case 4:
			binary.BigEndian.PutUint32(b, uint32(v))
		default:
			binary.BigEndian.PutUint64(b, v)
		}
	default:
		if order == Swapped {
			v = reverseUint(v, len(b))
		}
		switch len(b) {
		case 2:
			binary.NativeEndian.PutUint16(b, uint16(v))
		case 4:
			binary.NativeEndian.PutUint32(b, uint32(v))
		default:
			binary.NativeEndian.PutUint64(b, v)
		}
	}
}

func reverseUint(v uint64, width int) uint64 {
	switch width {
	case 2:
		return uint64(bits.ReverseBytes16(uint16(v)))
	case 4:
		return uint64(bits.ReverseBytes32(uint32(v)))
	default:
		return bits.ReverseBytes64(v)
	}
}
